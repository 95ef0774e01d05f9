// Package htmlvocab classifies HTML element names by how their closing tag
// behaves.
//
// Three classes matter when markup is cut short and has to be closed again:
//
//   - Void elements (img, br, hr, ...) never have content or a closing tag.
//   - Optional-closing elements (li) may omit their closing tag.
//   - Everything else must be closed explicitly.
//
// # Usage
//
//	htmlvocab.IsVoid("BR")               // true
//	htmlvocab.IsOptionalClosing("li")    // true
//	htmlvocab.MustHaveClosingTag("div")  // true
//
// Lookups are ASCII case-insensitive. Unknown names, including custom
// elements, must be closed.
package htmlvocab
