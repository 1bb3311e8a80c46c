package samuel

import (
	"fmt"

	"github.com/aretw0/samuel/pkg/domain"
)

// Stage is the outcome of advancing a puzzle once.
type Stage struct {
	Number    int             `json:"number"`
	Displayed domain.Sequence `json:"displayed"`
	Result    *Result         `json:"result"`
}

// Expected returns the coloured symbol the defuser must submit.
func (s *Stage) Expected() domain.ColouredSymbol {
	return s.Result.Submission
}

// Report renders the stage the way it appears in the bomb log: a banner, the
// displayed sequence, one line per trace event and the expected response.
func (s *Stage) Report() []string {
	lines := make([]string, 0, len(s.Result.Trace)+3)
	lines = append(lines,
		fmt.Sprintf("================== Stage %d ==================", s.Number),
		fmt.Sprintf("The displayed sequence is %s.", s.Displayed),
	)
	for _, ev := range s.Result.Trace {
		lines = append(lines, ev.Message)
	}
	return append(lines, fmt.Sprintf("The expected response is %s.", s.Result.Submission))
}
