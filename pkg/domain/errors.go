package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidSequence is returned when a displayed sequence is not 3 or 4 valid elements long.
var ErrInvalidSequence = errors.New("invalid displayed sequence")

// ErrLengthMismatch signals that the working symbol and colour buffers
// diverged in length. It always indicates a rule table bug.
var ErrLengthMismatch = errors.New("symbol and colour counts differ")

// ErrInvalidStage is returned when position selection is asked for a stage outside 1..4.
var ErrInvalidStage = errors.New("invalid stage number")

// ErrMorseNotFound is returned when no Morse letter has the requested length.
var ErrMorseNotFound = errors.New("no morse letter of requested length")

// ErrPuzzleSolved is returned when a puzzle is asked to advance past its last stage.
var ErrPuzzleSolved = errors.New("puzzle has no stages left")

// ErrPuzzleNotFound is returned when a puzzle ID cannot be found in the store.
var ErrPuzzleNotFound = errors.New("puzzle not found")

// InvalidStageError carries the offending stage number.
type InvalidStageError struct {
	Stage int
}

func (e *InvalidStageError) Error() string {
	return fmt.Sprintf("%s: %d (want 1-4)", ErrInvalidStage, e.Stage)
}

func (e *InvalidStageError) Unwrap() error {
	return ErrInvalidStage
}
