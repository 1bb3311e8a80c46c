package samuel

import (
	"context"

	"github.com/aretw0/samuel/internal/runtime"
	"github.com/aretw0/samuel/pkg/domain"
)

// Result is the outcome of one stage: the expected submission, the position
// it was taken from, the rewritten sequence and the decision trace.
type Result = runtime.Result

// ExpectedSubmission runs the rule tables once without a Puzzle. cross is
// read and updated in place; pass the same value to every stage of a puzzle.
func ExpectedSubmission(ctx context.Context, displayed domain.Sequence, stage int, snap domain.Snapshot, cross *domain.CrossStageState, opts ...Option) (*Result, error) {
	p := newPuzzle(domain.NewPuzzleState("", snap), opts...)
	return p.engine.ExpectedSubmission(ctx, displayed, stage, snap, cross)
}

// Rules lists all twenty rule table rows in colour order.
func Rules() []domain.RuleInfo {
	return runtime.Rules()
}
