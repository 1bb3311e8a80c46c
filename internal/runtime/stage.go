package runtime

import "github.com/aretw0/samuel/pkg/domain"

const rulesPerColour = 5

// stage is the working state of one ExpectedSubmission call. It owns the
// symbol and colour buffers for the duration of the call.
type stage struct {
	number   int
	snapshot domain.Snapshot
	cross    *domain.CrossStageState

	displayed        domain.Sequence
	displayedPattern string

	symbols []domain.Symbol
	colours []domain.Colour

	blueSeenAtPositionThree    bool
	moreThanOneYellowDisplayed bool

	applied [domain.ColourCount][rulesPerColour]bool
}

func newStage(number int, displayed domain.Sequence, snap domain.Snapshot, cross *domain.CrossStageState) *stage {
	st := &stage{
		number:           number,
		snapshot:         snap,
		cross:            cross,
		displayed:        displayed,
		displayedPattern: displayed.Pattern(),
		symbols:          displayed.Symbols(),
		colours:          displayed.Colours(),
	}
	st.moreThanOneYellowDisplayed = displayed.Count(domain.Yellow) >= 2
	if !displayed.Contains(domain.Red) {
		cross.MarkRedMissing()
	}
	return st
}

// checkBlueAtPositionThree latches once the third colour has been Blue.
func (st *stage) checkBlueAtPositionThree() {
	if !st.blueSeenAtPositionThree && len(st.colours) >= 3 && st.colours[2] == domain.Blue {
		st.blueSeenAtPositionThree = true
	}
}

// sequence rebuilds the coloured sequence from the working buffers.
func (st *stage) sequence() (domain.Sequence, error) {
	if len(st.symbols) != len(st.colours) {
		return nil, &LengthMismatchError{
			Symbols:   len(st.symbols),
			Colours:   len(st.colours),
			Displayed: st.displayed,
		}
	}
	seq := make(domain.Sequence, len(st.symbols))
	for i := range st.symbols {
		seq[i] = domain.ColouredSymbol{Colour: st.colours[i], Symbol: st.symbols[i]}
	}
	return seq, nil
}
