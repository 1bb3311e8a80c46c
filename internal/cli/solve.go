package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/aretw0/samuel"
	"github.com/aretw0/samuel/internal/presentation/graph"
	"github.com/aretw0/samuel/pkg/domain"
)

// Output formats accepted by the solve and rules commands.
const (
	FormatText    = "text"
	FormatJSON    = "json"
	FormatMermaid = "mermaid"
)

// SolveOptions configures a one-shot computation of an expected submission.
type SolveOptions struct {
	Options
	Displayed string
	Stage     int
	// GreenSeen and RedMissing seed the cross-stage flags of earlier stages.
	GreenSeen  bool
	RedMissing bool
	Format     string
}

// solveOutput is the JSON document printed by --format json.
type solveOutput struct {
	Result *samuel.Result         `json:"result"`
	Cross  domain.CrossStageState `json:"cross"`
}

// RunSolve computes the expected submission for a single stage and writes it
// to out in the requested format.
func RunSolve(ctx context.Context, out io.Writer, opts SolveOptions) error {
	logger, err := createLogger(opts.LogLevel, opts.Debug)
	if err != nil {
		return err
	}
	displayed, err := domain.ParseSequence(opts.Displayed)
	if err != nil {
		return err
	}
	snap, err := opts.resolveSnapshot()
	if err != nil {
		return err
	}
	cross := &domain.CrossStageState{
		GreenHasAppearedBefore: opts.GreenSeen,
		RedHasFailedToAppear:   opts.RedMissing,
	}

	puzzleOpts := []samuel.Option{samuel.WithLogger(logger)}
	if opts.Debug {
		puzzleOpts = append(puzzleOpts, samuel.WithHooks(createDebugHooks(logger)))
	}
	result, err := samuel.ExpectedSubmission(ctx, displayed, opts.Stage, snap, cross, puzzleOpts...)
	if err != nil {
		return err
	}

	switch opts.Format {
	case "", FormatText:
		stage := &samuel.Stage{Number: opts.Stage, Displayed: displayed, Result: result}
		return newPrinter(out).Stage(stage)
	case FormatJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(solveOutput{Result: result, Cross: *cross})
	case FormatMermaid:
		_, err := fmt.Fprint(out, graph.GenerateMermaid(samuel.Rules(), &graph.TraceOverlay{Trace: result.Trace}))
		return err
	default:
		return fmt.Errorf("unknown format %q", opts.Format)
	}
}

// RunRules prints every rule table in the requested format.
func RunRules(out io.Writer, format string) error {
	rules := samuel.Rules()
	switch format {
	case "", FormatText:
		newPrinter(out).Rules(rules)
		return nil
	case FormatJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(rules)
	case FormatMermaid:
		_, err := fmt.Fprint(out, graph.GenerateMermaid(rules, nil))
		return err
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
