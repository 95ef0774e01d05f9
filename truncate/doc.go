// Package truncate shortens HTML to a budget of visible characters while
// keeping the markup well formed.
//
// Only text outside of tags counts against the budget. An entity reference
// such as &amp; or &#8230; counts as a single character and is never split.
// Every element opened in the kept region is closed again in the right order;
// void elements (img, br, ...) and self-closed XHTML tags are left alone.
// Opening tags are held back until text inside them is actually shown, so
// elements that would end up empty are dropped.
//
// # Basic Usage
//
//	out, err := truncate.HTML("<p>Hello <b>world</b></p>", 7, truncate.DefaultOptions())
//	// out: "<p>Hello <b>w</b></p>"
//
// With a suffix, the bare-string shorthand:
//
//	out, err := truncate.HTMLWithSuffix(src, 120, "…")
//
// # Options
//
//   - BreakWords (default true): a word may be cut at the budget. When false,
//     a word that does not fit is dropped whole.
//   - Suffix / SuffixFunc: text appended exactly once at the end.
//   - EncloseSuffixInTags: place the suffix before the synthesized closing
//     tags instead of after them.
//
// # Counting
//
// The unit of counting is the Unicode code point. Comment bodies count as
// visible text, one unit per code point. VisibleLength reports the total
// a document would consume:
//
//	n := truncate.VisibleLength("A&amp;B") // 3
//
// # Errors
//
// The only failure is a closing tag that matches no open element. It is
// reported as a *MismatchError wrapping ErrMarkupMismatch and no partial
// output is returned.
//
// # Configuration
//
// Config bundles a length with Options and can be loaded from YAML, TOML,
// JSON or HTMLKIT_* environment variables. WatchConfig reloads a config file
// whenever it changes.
package truncate
