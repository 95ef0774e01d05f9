package truncate

import (
	"io"
	"log/slog"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// Truncator truncates HTML with a fixed set of options.
// It holds no per-call state and is safe for concurrent use once configured.
type Truncator struct {
	opts   Options
	logger *slog.Logger
}

// New creates a truncator with the given options.
func New(opts Options) *Truncator {
	return &Truncator{
		opts:   opts,
		logger: discardLogger,
	}
}

// NewDefault creates a truncator with DefaultOptions.
func NewDefault() *Truncator {
	return New(DefaultOptions())
}

// WithLogger sets the logger used for debug records. Nil discards them.
func (t *Truncator) WithLogger(logger *slog.Logger) *Truncator {
	if logger == nil {
		logger = discardLogger
	}
	t.logger = logger
	return t
}

// Options returns the truncator's options.
func (t *Truncator) Options() Options {
	return t.opts
}

// Truncate cuts source down to length visible characters.
// A negative length is treated as zero. The only error is a closing tag
// without a matching open element, reported as a *MismatchError.
func (t *Truncator) Truncate(source string, length int) (string, error) {
	s := newScanState(source, length, t.opts)
	out, err := s.run()
	if err != nil {
		t.logger.Debug("html truncation failed",
			slog.Int("length", length),
			slog.String("error", err.Error()))
		return "", err
	}
	if s.exhausted() {
		t.logger.Debug("html truncated",
			slog.Int("length", s.length),
			slog.Int("source_runes", len(s.src)),
			slog.Int("output_bytes", len(out)))
	}
	return out, nil
}
