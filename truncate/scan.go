package truncate

import "github.com/randalmurphal/htmlkit/htmlvocab"

// run scans the source until the budget is spent or the input ends.
func (s *scanState) run() (string, error) {
scan:
	for !s.exhausted() && s.i < len(s.src) {
		switch s.src[s.i] {
		case '<':
			if !s.flushWord() {
				break scan
			}
			ok, err := s.markup()
			if err != nil {
				return "", err
			}
			if !ok {
				break scan
			}
		case '&':
			if !s.entity() {
				break scan
			}
		default:
			if !s.text(s.src[s.i]) {
				break scan
			}
		}
	}
	return s.finish(), nil
}

// text handles one ordinary character. A non-letter ends the current word.
func (s *scanState) text(c rune) bool {
	ok := true
	if !isLetter(c) && s.inWord {
		ok = s.flushWord()
	}
	s.pushUnit(string(c), !isSpace(c))
	s.i++
	return ok
}

// entity handles '&'. A complete reference becomes one unit of the current
// word; anything else leaves a literal '&'.
func (s *scanState) entity() bool {
	ref, next, ok := scanEntity(s.src, s.i+1)
	if !ok {
		return s.text('&')
	}
	s.pushUnit(ref, true)
	s.i = next
	return true
}

// markup handles '<' once the pending word has been flushed.
func (s *scanState) markup() (bool, error) {
	switch s.peek(1) {
	case '!':
		if isComment(s.src, s.i) {
			if s.comment() {
				return true, nil
			}
		}
		return s.text('<'), nil
	case '/':
		return s.closeTag()
	default:
		tag, next, ok := scanOpenTag(s.src, s.i+1)
		if !ok {
			return s.text('<'), nil
		}
		s.queue = append(s.queue, tag)
		s.i = next
		return true, nil
	}
}

// comment writes a whole comment. Its body counts as visible text.
func (s *scanState) comment() bool {
	body, next, ok := scanComment(s.src, s.i+4)
	if !ok {
		return false
	}
	s.emitQueued(false)
	s.out.WriteString("<!--")
	s.out.WriteString(string(body))
	s.out.WriteString("-->")
	s.current += len(body)
	s.i = next
	return true
}

// closeTag handles "</name>". Everything queued is written first, then the
// matching open element is popped.
func (s *scanState) closeTag() (bool, error) {
	start := s.i
	name, next, ok := scanCloseTag(s.src, s.i+2)
	if !ok {
		return s.text('<'), nil
	}

	s.emitQueued(false)
	if htmlvocab.MustHaveClosingTag(name) && !s.popCloser(name) {
		return false, &MismatchError{Tag: name, Offset: start}
	}
	if s.opts.EncloseSuffixInTags && s.exhausted() {
		s.appendSuffix()
	}
	s.out.WriteString("</" + name + ">")
	s.i = next
	return true, nil
}

func (s *scanState) peek(n int) rune {
	if s.i+n < len(s.src) {
		return s.src[s.i+n]
	}
	return 0
}
