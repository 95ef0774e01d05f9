package htmlvocab

import (
	"strings"

	"golang.org/x/net/html/atom"
)

// voidElements never take content, so they are never closed.
var voidElements = map[atom.Atom]bool{
	atom.Area:    true,
	atom.Base:    true,
	atom.Br:      true,
	atom.Col:     true,
	atom.Command: true,
	atom.Embed:   true,
	atom.Hr:      true,
	atom.Img:     true,
	atom.Input:   true,
	atom.Keygen:  true,
	atom.Link:    true,
	atom.Meta:    true,
	atom.Param:   true,
	atom.Source:  true,
	atom.Track:   true,
	atom.Wbr:     true,
}

// optionalClosingElements may appear without their closing tag.
var optionalClosingElements = map[atom.Atom]bool{
	atom.Li: true,
}

// lookup resolves a tag name to its atom. Names outside the HTML vocabulary
// resolve to the zero atom, which is in neither table.
func lookup(name string) atom.Atom {
	return atom.Lookup([]byte(strings.ToLower(strings.TrimSpace(name))))
}

// IsVoid reports whether name is a void element such as img or br.
func IsVoid(name string) bool {
	return voidElements[lookup(name)]
}

// IsOptionalClosing reports whether name is an element whose closing tag may
// be omitted.
func IsOptionalClosing(name string) bool {
	return optionalClosingElements[lookup(name)]
}

// MustHaveClosingTag reports whether an opened name element has to be closed
// explicitly.
func MustHaveClosingTag(name string) bool {
	a := lookup(name)
	return !voidElements[a] && !optionalClosingElements[a]
}
