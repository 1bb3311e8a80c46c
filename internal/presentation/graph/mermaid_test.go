package graph_test

import (
	"context"
	"strings"
	"testing"

	"github.com/aretw0/samuel"
	"github.com/aretw0/samuel/internal/presentation/graph"
	"github.com/aretw0/samuel/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateMermaid_Tables(t *testing.T) {
	out := graph.GenerateMermaid(samuel.Rules(), nil)

	assert.True(t, strings.HasPrefix(out, "graph TD\n"))
	for _, want := range []string{
		"subgraph Red",
		"subgraph Blue",
		`r_start(("Red symbol"))`,
		`r_c1{"displayed pattern is '.-.'"}`,
		`r_a1["1: invert every symbol"]`,
		"r_start --> r_c1",
		"r_c1 -- yes --> r_a1",
		"r_c1 -- no --> r_c2",
		`r_c4 -- "otherwise" --> r_a5`,
		`r_a1 -. "already applied" .-> r_a5`,
		`b_a3 -. "already applied" .-> b_a2`,
	} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "r_c5", "the fallback row has no decision node")
	assert.NotContains(t, out, "classDef")
	assert.Equal(t, 4, strings.Count(out, "    end\n"))
}

func TestGenerateMermaid_Overlay(t *testing.T) {
	displayed, err := domain.ParseSequence("b- y- b- y.")
	require.NoError(t, err)

	var cross domain.CrossStageState
	res, err := samuel.ExpectedSubmission(context.Background(), displayed, 1, domain.Snapshot{BatteryCount: 5}, &cross)
	require.NoError(t, err)

	out := graph.GenerateMermaid(samuel.Rules(), &graph.TraceOverlay{Trace: res.Trace})

	assert.Contains(t, out, "class b_c2 matched;")
	assert.Contains(t, out, "class b_a2 applied;")
	assert.Contains(t, out, "class b_a2 skipped;")
	assert.Contains(t, out, "class b_a1 applied;")
	assert.Contains(t, out, "class y_a5 applied;")
	assert.Equal(t, 1, strings.Count(out, "class b_c2 matched;"), "repeated events are styled once")
}
