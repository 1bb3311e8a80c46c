package runtime

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aretw0/samuel/internal/logging"
	"github.com/aretw0/samuel/pkg/domain"
)

// Engine transforms a displayed sequence into the expected submission.
// It holds no per-puzzle state: the snapshot and cross-stage flags are passed
// in on every call.
type Engine struct {
	logger *slog.Logger
	hooks  domain.RuleHooks
}

// EngineOption configures the Engine.
type EngineOption func(*Engine)

// WithLogger sets the structured logger used for trace output.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithHooks registers observability hooks.
func WithHooks(hooks domain.RuleHooks) EngineOption {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// NewEngine creates a new engine.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Result is the outcome of one stage.
type Result struct {
	Submission domain.ColouredSymbol `json:"submission"`
	Position   int                   `json:"position"`
	Modified   domain.Sequence       `json:"modified"`
	Trace      []domain.TraceEvent   `json:"trace"`
}

// ExpectedSubmission runs every displayed symbol through its colour's rule
// table, in display order, and picks the submission from the rewritten
// sequence. cross is updated in place.
func (e *Engine) ExpectedSubmission(ctx context.Context, displayed domain.Sequence, stageNumber int, snap domain.Snapshot, cross *domain.CrossStageState) (*Result, error) {
	if err := displayed.Validate(); err != nil {
		return nil, err
	}
	if _, _, _, err := positionQuantity(stageNumber, snap); err != nil {
		return nil, err
	}
	if cross == nil {
		return nil, fmt.Errorf("cross-stage state is required")
	}

	st := newStage(stageNumber, displayed.Clone(), snap, cross)
	res := &Result{}

	for _, cs := range st.displayed {
		if err := e.apply(ctx, st, cs.Colour, res); err != nil {
			return nil, err
		}
	}

	modified, err := st.sequence()
	if err != nil {
		return nil, err
	}

	position, ev, err := selectPosition(stageNumber, snap, len(modified))
	if err != nil {
		return nil, err
	}
	e.record(ctx, res, ev)

	res.Modified = modified
	res.Position = position
	res.Submission = modified[position]
	return res, nil
}

// apply selects and runs one rule for a displayed symbol of colour c.
func (e *Engine) apply(ctx context.Context, st *stage, c domain.Colour, res *Result) error {
	st.checkBlueAtPositionThree()
	table := &ruleTables[c]

	matched := 0
	for !table[matched].when(st) {
		matched++
	}
	e.record(ctx, res, domain.TraceEvent{
		Type:    domain.TraceConditionMatched,
		Stage:   st.number,
		Colour:  c,
		Rule:    matched + 1,
		Message: fmt.Sprintf("%s: Condition %d applies.", c, matched+1),
	})

	// A rule already used for this colour this stage falls back to the previous one.
	active := matched
	for st.applied[c][active] {
		e.record(ctx, res, domain.TraceEvent{
			Type:    domain.TraceRuleSkipped,
			Stage:   st.number,
			Colour:  c,
			Rule:    active + 1,
			Message: fmt.Sprintf("Action %d has already been applied.", active+1),
		})
		active = (active + rulesPerColour - 1) % rulesPerColour
	}
	st.applied[c][active] = true

	e.record(ctx, res, domain.TraceEvent{
		Type:    domain.TraceActionApplied,
		Stage:   st.number,
		Colour:  c,
		Rule:    active + 1,
		Message: fmt.Sprintf("Applying action %d.", active+1),
	})

	if err := table[active].apply(st); err != nil {
		return &ActionError{Colour: c, Rule: active + 1, Err: err}
	}
	return nil
}

func (e *Engine) record(ctx context.Context, res *Result, ev domain.TraceEvent) {
	res.Trace = append(res.Trace, ev)

	attrs := []any{"stage", ev.Stage, "event", string(ev.Type)}
	if ev.Type == domain.TracePositionSelected {
		attrs = append(attrs, "position", ev.Position+1)
	} else {
		attrs = append(attrs, "colour", ev.Colour.String(), "rule", ev.Rule)
	}
	e.logger.Debug(ev.Message, attrs...)
	e.hooks.Emit(ctx, &ev)
}
