package runtime

import (
	"fmt"

	"github.com/aretw0/samuel/pkg/domain"
)

// LengthMismatchError reports diverging working buffers at reconstruction.
type LengthMismatchError struct {
	Symbols   int
	Colours   int
	Displayed domain.Sequence
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("%s: %d symbols, %d colours (displayed %s)", domain.ErrLengthMismatch, e.Symbols, e.Colours, e.Displayed)
}

func (e *LengthMismatchError) Unwrap() error {
	return domain.ErrLengthMismatch
}

// ActionError wraps a failure raised by a rule action.
type ActionError struct {
	Colour domain.Colour
	Rule   int
	Err    error
}

func (e *ActionError) Error() string {
	return fmt.Sprintf("%s action %d failed: %v", e.Colour, e.Rule, e.Err)
}

func (e *ActionError) Unwrap() error {
	return e.Err
}
