package mcp

import (
	"context"
	"testing"

	"github.com/aretw0/samuel/pkg/adapters/memory"
	"github.com/aretw0/samuel/pkg/domain"
	"github.com/aretw0/samuel/pkg/session"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const stageOneSnapshot = `{"battery_count": 5, "total_ports": 2, "unique_port_types": 2, "lit_indicators": 1, "unlit_indicators": 1, "serial_digit_sum": 7, "module_count": 6}`

func newTestServer() *Server {
	return NewServer(session.NewManager(memory.NewStore(), session.WithIDGenerator(func() string { return "p1" })))
}

func TestHandleSolveStage(t *testing.T) {
	s := newTestServer()

	resp, err := s.handleSolveStage(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{
		"displayed": "b- y- b- y.",
		"stage":     float64(1),
		"snapshot":  stageOneSnapshot,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.ColouredSymbol{Colour: domain.Yellow, Symbol: domain.Dash}, resp.Result.Submission)
	assert.True(t, resp.Cross.RedHasFailedToAppear)
}

func TestHandleSolveStage_Errors(t *testing.T) {
	s := newTestServer()
	ctx := context.Background()

	for name, args := range map[string]map[string]interface{}{
		"bad sequence": {"displayed": "r.", "stage": float64(1)},
		"no stage":     {"displayed": "r. r. r."},
		"bad stage":    {"displayed": "r. r. r.", "stage": float64(9)},
		"bad snapshot": {"displayed": "r. r. r.", "stage": float64(1), "snapshot": "{"},
		"bad cross":    {"displayed": "r. r. r.", "stage": float64(1), "cross": "[]"},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := s.handleSolveStage(ctx, mcp.CallToolRequest{}, args)
			assert.Error(t, err)
		})
	}
}

func TestHandlePuzzleTools(t *testing.T) {
	s := newTestServer()
	ctx := context.Background()

	created, err := s.handleCreatePuzzle(ctx, mcp.CallToolRequest{}, map[string]interface{}{
		"snapshot": stageOneSnapshot,
	})
	require.NoError(t, err)
	assert.Equal(t, "p1", created.Puzzle.ID)

	advanced, err := s.handleAdvancePuzzle(ctx, mcp.CallToolRequest{}, map[string]interface{}{
		"puzzle_id": "p1",
		"displayed": "b- y- b- y.",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, advanced.Puzzle.Stage)
	assert.Equal(t, domain.Yellow, advanced.Stage.Expected().Colour)

	for i := 2; i <= domain.StageCount; i++ {
		_, err = s.handleAdvancePuzzle(ctx, mcp.CallToolRequest{}, map[string]interface{}{"puzzle_id": "p1"})
		require.NoError(t, err)
	}
	_, err = s.handleAdvancePuzzle(ctx, mcp.CallToolRequest{}, map[string]interface{}{"puzzle_id": "p1"})
	assert.ErrorIs(t, err, domain.ErrPuzzleSolved)

	_, err = s.handleAdvancePuzzle(ctx, mcp.CallToolRequest{}, map[string]interface{}{"puzzle_id": "nope"})
	assert.ErrorIs(t, err, domain.ErrPuzzleNotFound)
}

func TestHandleCreatePuzzle_FromBomb(t *testing.T) {
	s := newTestServer()

	created, err := s.handleCreatePuzzle(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{
		"bomb": `{"modules": ["Samuel Says", "Red Herring"], "batteries": 1}`,
	})
	require.NoError(t, err)
	assert.True(t, created.Puzzle.Snapshot.ModuleNameContainsRed)

	_, err = s.handleCreatePuzzle(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{})
	assert.Error(t, err)
}
