package truncate

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/randalmurphal/htmlkit/htmlvocab"
)

// checkBalanced tokenizes out and verifies that every element which must be
// closed is closed, innermost first, and that void elements are never closed.
func checkBalanced(out string) error {
	z := html.NewTokenizer(strings.NewReader(out))
	var open []string
	for {
		switch z.Next() {
		case html.ErrorToken:
			if !errors.Is(z.Err(), io.EOF) {
				return z.Err()
			}
			if len(open) > 0 {
				return fmt.Errorf("unclosed elements %v in %q", open, out)
			}
			return nil
		case html.StartTagToken:
			name, _ := z.TagName()
			if htmlvocab.MustHaveClosingTag(string(name)) {
				open = append(open, string(name))
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			if htmlvocab.IsVoid(string(name)) {
				return fmt.Errorf("void element </%s> closed in %q", name, out)
			}
			if !htmlvocab.MustHaveClosingTag(string(name)) {
				continue
			}
			if len(open) == 0 || open[len(open)-1] != string(name) {
				return fmt.Errorf("unexpected </%s> with open %v in %q", name, open, out)
			}
			open = open[:len(open)-1]
		}
	}
}
