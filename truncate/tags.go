package truncate

import (
	"strings"

	"github.com/randalmurphal/htmlkit/htmlvocab"
)

// openTag is an opening tag that has been scanned but may not be written yet.
type openTag struct {
	name       string
	attrs      string // raw text between the name and '>'
	void       bool
	optional   bool
	selfClosed bool
}

func newOpenTag(name, attrs string) openTag {
	return openTag{
		name:       name,
		attrs:      attrs,
		void:       htmlvocab.IsVoid(name),
		optional:   htmlvocab.IsOptionalClosing(name),
		selfClosed: strings.HasSuffix(strings.TrimSpace(attrs), "/"),
	}
}

// String returns the tag as it appeared in the source.
func (t openTag) String() string {
	return "<" + t.name + t.attrs + ">"
}

// closable reports whether emitting the tag creates an obligation to close it.
func (t openTag) closable() bool {
	return !t.void && !t.optional && !t.selfClosed
}

// standalone reports whether the tag can be written without any content.
func (t openTag) standalone() bool {
	return t.void || t.selfClosed
}

func (t openTag) closer() string {
	return "</" + t.name + ">"
}

// scanOpenTag scans an opening tag whose name starts at src[start], just
// after the '<'. The name is a run of letters and digits; everything up to
// the closing '>' is kept verbatim as attributes. A '>' inside a quoted
// attribute value does not end the tag.
func scanOpenTag(src []rune, start int) (openTag, int, bool) {
	i := start
	for i < len(src) && (isLetter(src[i]) || isDigit(src[i])) {
		i++
	}
	if i == start {
		return openTag{}, start, false
	}
	name := string(src[start:i])
	attrStart := i

	var quote, prev rune
	for ; i < len(src); i++ {
		c := src[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case (c == '"' || c == '\'') && prev == '=':
			quote = c
		case c == '>':
			return newOpenTag(name, string(src[attrStart:i])), i + 1, true
		}
		if !isSpace(c) {
			prev = c
		}
	}
	return openTag{}, start, false
}

// scanCloseTag scans a closing tag whose name starts at src[start], just
// after "</". Everything up to the next '>' is the name.
func scanCloseTag(src []rune, start int) (string, int, bool) {
	for i := start; i < len(src); i++ {
		if src[i] == '>' {
			return string(src[start:i]), i + 1, true
		}
	}
	return "", start, false
}

// scanComment scans a comment body starting at src[start], just after
// "<!--". It returns the body and the index just past "-->".
func scanComment(src []rune, start int) ([]rune, int, bool) {
	for i := start; i+2 < len(src); i++ {
		if src[i] == '-' && src[i+1] == '-' && src[i+2] == '>' {
			return src[start:i], i + 3, true
		}
	}
	return nil, start, false
}

// scanEntity scans an entity reference whose name starts at src[start], just
// after the '&'. It returns the whole reference including '&' and ';'.
// Whitespace, '<' or another '&' before the ';' means it is not an entity.
func scanEntity(src []rune, start int) (string, int, bool) {
	for i := start; i < len(src); i++ {
		switch c := src[i]; {
		case c == ';':
			if i == start {
				return "", start, false
			}
			return string(src[start-1 : i+1]), i + 1, true
		case c == '<' || c == '&' || isSpace(c):
			return "", start, false
		}
	}
	return "", start, false
}

func isComment(src []rune, i int) bool {
	return i+3 < len(src) && src[i+1] == '!' && src[i+2] == '-' && src[i+3] == '-'
}
