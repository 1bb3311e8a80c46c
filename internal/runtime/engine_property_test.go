package runtime_test

import (
	"context"
	"testing"

	"github.com/aretw0/samuel/internal/runtime"
	"github.com/aretw0/samuel/pkg/domain"
	"github.com/stretchr/testify/require"
)

// allSequences enumerates every displayed sequence of the given length.
func allSequences(length int) []domain.Sequence {
	var elements []domain.ColouredSymbol
	for _, c := range domain.Colours {
		for _, s := range []domain.Symbol{domain.Dot, domain.Dash} {
			elements = append(elements, domain.ColouredSymbol{Colour: c, Symbol: s})
		}
	}

	out := []domain.Sequence{{}}
	for i := 0; i < length; i++ {
		var next []domain.Sequence
		for _, prefix := range out {
			for _, el := range elements {
				s := append(prefix.Clone(), el)
				next = append(next, s)
			}
		}
		out = next
	}
	return out
}

var propertySnapshots = []domain.Snapshot{
	{},
	{ModuleNameContainsRed: true, SimonVariantPresent: true, BatteryCount: 1, TotalPorts: 2, UniquePortTypes: 1, LitIndicators: 1, UnlitIndicators: 2, SerialDigitSum: 13, ModuleCount: 5},
	{BatteryCount: 4, TotalPorts: 7, UniquePortTypes: 3, LitIndicators: 3, SerialDigitSum: 31, ModuleCount: 12},
}

func TestEngine_Properties(t *testing.T) {
	engine := runtime.NewEngine()
	ctx := context.Background()

	for _, length := range []int{3, 4} {
		for _, displayed := range allSequences(length) {
			for _, snap := range propertySnapshots {
				for stage := 1; stage <= 4; stage++ {
					cross := domain.CrossStageState{}
					res, err := engine.ExpectedSubmission(ctx, displayed, stage, snap, &cross)
					require.NoError(t, err, "displayed %s stage %d", displayed.Tokens(), stage)

					n := len(res.Modified)
					require.True(t, n == 3 || n == 4, "length %d for %s", n, displayed.Tokens())
					require.True(t, res.Position >= 0 && res.Position < n)
					require.Equal(t, res.Modified[res.Position], res.Submission)

					type key struct {
						colour domain.Colour
						rule   int
					}
					seen := map[key]bool{}
					yellowTwo := false
					for _, ev := range res.Trace {
						if ev.Type != domain.TraceActionApplied {
							continue
						}
						k := key{ev.Colour, ev.Rule}
						require.False(t, seen[k], "%s action %d applied twice for %s", ev.Colour, ev.Rule, displayed.Tokens())
						seen[k] = true
						if ev.Colour == domain.Yellow && ev.Rule == 2 {
							yellowTwo = true
						}
					}
					require.Len(t, seen, length, "one action per displayed symbol")

					// Only Yellow action 2 inserts or removes an element.
					if !yellowTwo {
						require.Len(t, res.Modified, length)
					}
				}
			}
		}
	}
}

func TestEngine_CrossStageFlagsAreSticky(t *testing.T) {
	engine := runtime.NewEngine()
	ctx := context.Background()
	cross := domain.CrossStageState{}
	snap := domain.Snapshot{BatteryCount: 2, TotalPorts: 3, UniquePortTypes: 9, ModuleCount: 4}

	// Stage 1 lacks Red and reaches Green rule 3.
	_, err := engine.ExpectedSubmission(ctx, seq(t, "g. y. b-"), 1, snap, &cross)
	require.NoError(t, err)
	require.True(t, cross.RedHasFailedToAppear)
	require.True(t, cross.GreenHasAppearedBefore)

	// Later stages with Red and without Green never clear the flags.
	for stage, displayed := range []string{"r. r. r.", "r- y- b- r-", "r. b. y."} {
		_, err := engine.ExpectedSubmission(ctx, seq(t, displayed), stage+2, snap, &cross)
		require.NoError(t, err)
		require.True(t, cross.RedHasFailedToAppear)
		require.True(t, cross.GreenHasAppearedBefore)
	}
}
