package nlq

import (
	"errors"
	"fmt"
)

// Configuration errors surface at adapter construction and prevent use.
var (
	ErrEmptyContainer  = errors.New("container name must not be empty")
	ErrEmptyIdentifier = errors.New("identifier must not be empty")
	ErrNoNodeLabels    = errors.New("graph vocabulary requires at least one node label")
	ErrNilDecoder      = errors.New("decoder must not be nil")
)

// GenerationError wraps a decoder failure for a single request. The
// adapter itself is unaffected; a later call may succeed.
type GenerationError struct {
	Language string
	Err      error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("%s query generation failed: %v", e.Language, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }
