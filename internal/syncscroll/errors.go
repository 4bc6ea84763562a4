package syncscroll

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfiguration is returned when targets are missing or an
	// option is outside its domain (negative duration, zero cycle length).
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrNotBound is returned by operations that need both targets bound.
	ErrNotBound = fmt.Errorf("%w: targets not bound", ErrInvalidConfiguration)
)
