package truncate

import (
	"errors"
	"fmt"
)

// Sentinel errors for truncation and configuration.
var (
	// ErrMarkupMismatch is returned when a closing tag does not match any
	// element that is currently open.
	ErrMarkupMismatch = errors.New("closing tag does not match an open tag")

	// ErrUnknownFormat is returned when a config file format is not supported.
	ErrUnknownFormat = errors.New("unknown config format")
)

// MismatchError reports a closing tag that could not be matched.
type MismatchError struct {
	Tag    string // Tag name as written in the source
	Offset int    // Code point offset of the closing tag's '<'
}

// Error implements the error interface.
func (e *MismatchError) Error() string {
	return fmt.Sprintf("%v: </%s> at offset %d", ErrMarkupMismatch, e.Tag, e.Offset)
}

// Unwrap returns ErrMarkupMismatch for errors.Is support.
func (e *MismatchError) Unwrap() error {
	return ErrMarkupMismatch
}

// IsMarkupMismatch checks if an error was caused by an unmatched closing tag.
func IsMarkupMismatch(err error) bool {
	return errors.Is(err, ErrMarkupMismatch)
}
