// Package htmlkit provides utilities for shortening HTML for previews,
// feeds and notifications.
//
// Each subpackage can be used independently:
//
//   - truncate: Cut HTML to a visible-character budget with balanced markup
//   - htmlvocab: Classify element names as void, optional-closing or closable
//
// # Quick Start
//
// Truncation:
//
//	import "github.com/randalmurphal/htmlkit/truncate"
//	out, err := truncate.HTMLWithSuffix("<p>Hello <b>world</b></p>", 8, "…")
//	// out: "<p>Hello <b>wo</b></p>…"
//
// Configuration from a file:
//
//	cfg, err := truncate.LoadConfig("truncate.yaml")
//	out, err := cfg.Apply(src)
//
// # Design Philosophy
//
// htmlkit follows these principles:
//
//   - Single pass over the input, no DOM
//   - Well-formed output or an error, never half-closed markup
//   - Sensible defaults with full configurability
//   - Concrete types for simplicity
package htmlkit
