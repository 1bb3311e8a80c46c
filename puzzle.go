package samuel

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aretw0/samuel/internal/logging"
	"github.com/aretw0/samuel/internal/runtime"
	"github.com/aretw0/samuel/pkg/domain"
	"github.com/aretw0/samuel/pkg/generator"
	"github.com/aretw0/samuel/pkg/ports"
	"github.com/aretw0/samuel/pkg/snapshot"
	"github.com/google/uuid"
)

// Puzzle is one instance of the module on one bomb. It is not safe for
// concurrent use; pkg/session serialises access when puzzles are shared.
type Puzzle struct {
	state     *domain.PuzzleState
	engine    *runtime.Engine
	generator ports.SequenceGenerator
	logger    *slog.Logger
	hooks     domain.RuleHooks
}

// Option defines a functional option for configuring a Puzzle.
type Option func(*Puzzle)

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Puzzle) {
		p.logger = logger
	}
}

// WithHooks registers observability hooks.
func WithHooks(hooks domain.RuleHooks) Option {
	return func(p *Puzzle) {
		p.hooks = p.hooks.Merge(hooks)
	}
}

// WithGenerator sets the source of displayed sequences used by Advance.
func WithGenerator(gen ports.SequenceGenerator) Option {
	return func(p *Puzzle) {
		p.generator = gen
	}
}

// WithID overrides the generated puzzle ID.
func WithID(id string) Option {
	return func(p *Puzzle) {
		p.state.ID = id
	}
}

// New captures the bomb and returns a puzzle that has not started its first
// stage.
func New(bomb ports.BombInfo, opts ...Option) *Puzzle {
	return NewFromSnapshot(snapshot.Capture(bomb), opts...)
}

// NewFromSnapshot starts a puzzle from an already captured snapshot.
func NewFromSnapshot(snap domain.Snapshot, opts ...Option) *Puzzle {
	return newPuzzle(domain.NewPuzzleState(uuid.NewString(), snap), opts...)
}

// FromState resumes a puzzle from stored state. The state is copied.
func FromState(state *domain.PuzzleState, opts ...Option) *Puzzle {
	return newPuzzle(state.Clone(), opts...)
}

func newPuzzle(state *domain.PuzzleState, opts ...Option) *Puzzle {
	p := &Puzzle{state: state}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = logging.NewNop()
	}
	if p.generator == nil {
		p.generator = generator.NewRandom()
	}
	p.engine = runtime.NewEngine(
		runtime.WithLogger(p.logger.With("puzzle", p.state.ID)),
		runtime.WithHooks(p.hooks),
	)
	return p
}

// ID returns the puzzle identifier.
func (p *Puzzle) ID() string { return p.state.ID }

// Snapshot returns the bomb counters captured at creation.
func (p *Puzzle) Snapshot() domain.Snapshot { return p.state.Snapshot }

// StageNumber returns the current stage, zero before the first Advance.
func (p *Puzzle) StageNumber() int { return p.state.Stage }

// State returns a copy of the puzzle's persistent state.
func (p *Puzzle) State() *domain.PuzzleState { return p.state.Clone() }

// Solved reports whether all four stages have been played.
func (p *Puzzle) Solved() bool { return p.state.Solved() }

// Advance moves to the next stage with a generated sequence.
// Returns domain.ErrPuzzleSolved after the fourth stage.
func (p *Puzzle) Advance(ctx context.Context) (*Stage, error) {
	if p.state.Solved() {
		return nil, domain.ErrPuzzleSolved
	}
	return p.AdvanceWith(ctx, p.generator.Generate())
}

// AdvanceWith moves to the next stage using the given displayed sequence.
// The puzzle is left unchanged if the computation fails.
func (p *Puzzle) AdvanceWith(ctx context.Context, displayed domain.Sequence) (*Stage, error) {
	if p.state.Solved() {
		return nil, domain.ErrPuzzleSolved
	}

	number := p.state.Stage + 1
	cross := p.state.Cross
	res, err := p.engine.ExpectedSubmission(ctx, displayed, number, p.state.Snapshot, &cross)
	if err != nil {
		return nil, fmt.Errorf("stage %d: %w", number, err)
	}

	p.state.Stage = number
	p.state.Cross = cross
	p.state.Displayed = displayed.Clone()
	p.state.Submissions = append(p.state.Submissions, res.Submission)

	p.logger.Info("Stage advanced",
		"puzzle", p.state.ID,
		"stage", number,
		"displayed", displayed.Tokens(),
		"expected", res.Submission.String(),
	)

	return &Stage{
		Number:    number,
		Displayed: p.state.Displayed.Clone(),
		Result:    res,
	}, nil
}

// Check reports whether submission is the expected answer for the current
// stage. It is always false before the first stage.
func (p *Puzzle) Check(submission domain.ColouredSymbol) bool {
	expected, ok := p.state.Expected()
	return ok && expected == submission
}
