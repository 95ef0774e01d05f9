package truncate

import "strings"

// suffixState is a one-shot latch guarding the suffix.
type suffixState int

const (
	suffixPending suffixState = iota
	suffixAppended
)

// scanState holds all mutable state of a single truncation pass.
//
// Opening tags are not written when scanned. They wait in queue until text
// inside them is about to be written, or until a closing tag forces them out.
// closers records the closing tag of every written element that still has
// to be closed, innermost last.
type scanState struct {
	src    []rune
	length int
	opts   Options

	// i is the scan cursor into src.
	i int

	// current counts visible units already written to out.
	current int

	out strings.Builder

	// word holds visible units not yet written. A unit is one code point
	// or one whole entity reference.
	word []string

	// inWord is set once word holds something other than whitespace.
	inWord bool

	queue   []openTag
	closers []string
	suffix  suffixState
}

func newScanState(source string, length int, opts Options) *scanState {
	if length < 0 {
		length = 0
	}
	return &scanState{
		src:    []rune(source),
		length: length,
		opts:   opts,
	}
}

func (s *scanState) remaining() int {
	return s.length - s.current
}

func (s *scanState) exhausted() bool {
	return s.current >= s.length
}

// flushWord writes pending units to the output as far as the budget allows.
// With BreakWords it writes as many leading units as fit; otherwise the whole
// word or nothing. It returns false when no progress could be made.
func (s *scanState) flushWord() bool {
	if len(s.word) == 0 {
		s.inWord = false
		return true
	}

	n := len(s.word)
	if s.opts.BreakWords {
		n = min(s.remaining(), n)
		if n <= 0 {
			return false
		}
	} else if s.current+n > s.length {
		return false
	}

	// Text is about to be shown, so every element it sits in must be open.
	s.emitQueued(false)
	for _, u := range s.word[:n] {
		s.out.WriteString(u)
	}
	s.current += n
	s.word = s.word[n:]
	s.inWord = false
	return true
}

// pushUnit appends a visible unit to the pending word.
func (s *scanState) pushUnit(u string, wordChar bool) {
	if wordChar {
		s.inWord = true
	}
	s.word = append(s.word, u)
}

// emitQueued writes queued opening tags in document order. With
// standaloneOnly it stops at the first tag that needs content to be shown.
func (s *scanState) emitQueued(standaloneOnly bool) {
	for len(s.queue) > 0 {
		tag := s.queue[0]
		if standaloneOnly && !tag.standalone() {
			return
		}
		s.queue = s.queue[1:]
		s.out.WriteString(tag.String())
		if tag.closable() {
			s.closers = append(s.closers, tag.closer())
		}
	}
}

// popCloser discards open elements down to and including the one closed by
// name. Elements above it lose their closing obligation. It returns false
// when no open element matches.
func (s *scanState) popCloser(name string) bool {
	want := "</" + strings.TrimSpace(name) + ">"
	for len(s.closers) > 0 {
		top := s.closers[len(s.closers)-1]
		s.closers = s.closers[:len(s.closers)-1]
		if strings.EqualFold(top, want) {
			return true
		}
	}
	return false
}

// appendSuffix writes the configured suffix the first time it is called.
func (s *scanState) appendSuffix() {
	if s.suffix == suffixAppended {
		return
	}
	s.suffix = suffixAppended
	if text, ok := s.opts.resolveSuffix(); ok {
		s.out.WriteString(text)
	}
}

// finish closes everything still open and places the suffix.
func (s *scanState) finish() string {
	s.emitQueued(true)
	s.flushWord()

	if s.opts.EncloseSuffixInTags {
		s.appendSuffix()
	}
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.out.WriteString(s.closers[i])
	}
	s.closers = nil
	s.appendSuffix()

	return s.out.String()
}
