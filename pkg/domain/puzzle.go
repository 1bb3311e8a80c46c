package domain

// StageCount is the number of stages the engine handles. A fifth, final stage
// exists in the game but is resolved by the orchestrator, not the engine.
const StageCount = 4

// PuzzleState is everything that must survive between stages of one puzzle.
type PuzzleState struct {
	ID       string          `json:"id"`
	Snapshot Snapshot        `json:"snapshot"`
	Cross    CrossStageState `json:"cross"`

	// Stage is the current stage number; zero before the first stage.
	Stage int `json:"stage"`

	// Displayed is the sequence shown for the current stage.
	Displayed Sequence `json:"displayed,omitempty"`

	// Submissions holds the expected submission of every stage so far.
	Submissions []ColouredSymbol `json:"submissions,omitempty"`
}

// NewPuzzleState creates a puzzle that has not started its first stage.
func NewPuzzleState(id string, snap Snapshot) *PuzzleState {
	return &PuzzleState{
		ID:       id,
		Snapshot: snap,
	}
}

// Expected returns the expected submission for the current stage.
func (p *PuzzleState) Expected() (ColouredSymbol, bool) {
	if p.Stage == 0 || len(p.Submissions) < p.Stage {
		return ColouredSymbol{}, false
	}
	return p.Submissions[p.Stage-1], true
}

// Solved reports whether every engine stage has been played.
func (p *PuzzleState) Solved() bool {
	return p.Stage >= StageCount
}

// Clone returns a deep copy.
func (p *PuzzleState) Clone() *PuzzleState {
	out := *p
	if p.Displayed != nil {
		out.Displayed = p.Displayed.Clone()
	}
	if p.Submissions != nil {
		out.Submissions = make([]ColouredSymbol, len(p.Submissions))
		copy(out.Submissions, p.Submissions)
	}
	return &out
}
