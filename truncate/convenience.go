package truncate

// HTML truncates source to length visible characters.
func HTML(source string, length int, opts Options) (string, error) {
	return New(opts).Truncate(source, length)
}

// HTMLWithSuffix truncates source with default options and the given suffix.
func HTMLWithSuffix(source string, length int, suffix string) (string, error) {
	return HTML(source, length, SuffixOptions(suffix))
}

// MustHTML is like HTML but panics on mismatched markup.
// Intended for trusted input such as templates.
func MustHTML(source string, length int, opts Options) string {
	out, err := HTML(source, length, opts)
	if err != nil {
		panic(err)
	}
	return out
}

// VisibleLength counts the visible characters of source the way truncation
// does: tags count zero, an entity reference counts one, a comment counts its
// body, and anything that fails to parse as markup counts as literal text.
func VisibleLength(source string) int {
	src := []rune(source)
	n := 0
	for i := 0; i < len(src); {
		switch src[i] {
		case '<':
			if units, next, ok := markupSpan(src, i); ok {
				n += units
				i = next
				continue
			}
		case '&':
			if _, next, ok := scanEntity(src, i+1); ok {
				n++
				i = next
				continue
			}
		}
		n++
		i++
	}
	return n
}

// markupSpan measures the markup starting at src[i] == '<'.
func markupSpan(src []rune, i int) (int, int, bool) {
	if i+1 >= len(src) {
		return 0, i, false
	}
	switch src[i+1] {
	case '!':
		if !isComment(src, i) {
			return 0, i, false
		}
		body, next, ok := scanComment(src, i+4)
		return len(body), next, ok
	case '/':
		_, next, ok := scanCloseTag(src, i+2)
		return 0, next, ok
	default:
		_, next, ok := scanOpenTag(src, i+1)
		return 0, next, ok
	}
}
