package truncate

// SuffixFunc produces the suffix on demand. It is called at most once per
// truncation and only when the suffix is actually written.
type SuffixFunc func() string

// Options controls how HTML is truncated.
type Options struct {
	// BreakWords allows a word to be cut at the budget.
	// When false, a word that does not fit is dropped whole.
	// Default: true.
	BreakWords bool `json:"break_words" yaml:"break_words" toml:"break_words" jsonschema:"default=true"`

	// Suffix is appended once to the output, e.g. "…".
	// Empty means no suffix.
	Suffix string `json:"suffix,omitempty" yaml:"suffix,omitempty" toml:"suffix,omitempty"`

	// SuffixFunc produces the suffix lazily. Takes precedence over Suffix.
	SuffixFunc SuffixFunc `json:"-" yaml:"-" toml:"-"`

	// EncloseSuffixInTags writes the suffix before the synthesized closing
	// tags, so it ends up inside the innermost open element.
	// Default: false.
	EncloseSuffixInTags bool `json:"enclose_suffix_in_tags" yaml:"enclose_suffix_in_tags" toml:"enclose_suffix_in_tags"`
}

// DefaultOptions returns Options with word breaking enabled and no suffix.
func DefaultOptions() Options {
	return Options{
		BreakWords: true,
	}
}

// SuffixOptions returns the default Options with the given suffix.
func SuffixOptions(suffix string) Options {
	return DefaultOptions().WithSuffix(suffix)
}

// WithBreakWords returns a copy of the options with word breaking set.
func (o Options) WithBreakWords(breakWords bool) Options {
	o.BreakWords = breakWords
	return o
}

// WithSuffix returns a copy of the options with a literal suffix.
func (o Options) WithSuffix(suffix string) Options {
	o.Suffix = suffix
	return o
}

// WithSuffixFunc returns a copy of the options with a suffix producer.
func (o Options) WithSuffixFunc(fn SuffixFunc) Options {
	o.SuffixFunc = fn
	return o
}

// WithEncloseSuffixInTags returns a copy of the options with suffix placement set.
func (o Options) WithEncloseSuffixInTags(enclose bool) Options {
	o.EncloseSuffixInTags = enclose
	return o
}

// HasSuffix reports whether a suffix is configured.
func (o Options) HasSuffix() bool {
	return o.SuffixFunc != nil || o.Suffix != ""
}

func (o Options) resolveSuffix() (string, bool) {
	if o.SuffixFunc != nil {
		return o.SuffixFunc(), true
	}
	if o.Suffix != "" {
		return o.Suffix, true
	}
	return "", false
}
