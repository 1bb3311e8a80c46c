package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/aretw0/samuel/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const snapshotJSON = `{"battery_count":5,"total_ports":2,"unique_port_types":2,"lit_indicators":1,"unlit_indicators":1,"serial_digit_sum":7,"module_count":6}`

// Same counters as snapshotJSON.
const bombYAML = `
modules: [Samuel Says, Wires, Keypad, Maze, Password, Memory]
batteries: 5
ports: [Serial, Parallel]
indicators:
  lit: [FRK]
  unlit: [CAR]
serial: AB34CD
`

func writeBomb(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bomb.yaml")
	require.NoError(t, os.WriteFile(path, []byte(bombYAML), 0644))
	return path
}

func TestRunSolve(t *testing.T) {
	ctx := context.Background()

	t.Run("Text from snapshot", func(t *testing.T) {
		var out bytes.Buffer
		err := RunSolve(ctx, &out, SolveOptions{
			Options:   Options{Snapshot: snapshotJSON, LogLevel: "error"},
			Displayed: "b- y- b- y.",
			Stage:     1,
		})
		require.NoError(t, err)
		assert.Contains(t, out.String(), "================== Stage 1 ==================")
		assert.Contains(t, out.String(), "The expected response is Yellow dash.")
	})

	t.Run("Text from bomb file", func(t *testing.T) {
		var out bytes.Buffer
		err := RunSolve(ctx, &out, SolveOptions{
			Options:   Options{BombFile: writeBomb(t), LogLevel: "error"},
			Displayed: "b- y- b- y.",
			Stage:     1,
		})
		require.NoError(t, err)
		assert.Contains(t, out.String(), "The expected response is Yellow dash.")
	})

	t.Run("JSON", func(t *testing.T) {
		var out bytes.Buffer
		err := RunSolve(ctx, &out, SolveOptions{
			Options:   Options{Snapshot: snapshotJSON, LogLevel: "error"},
			Displayed: "b- y- b- y.",
			Stage:     1,
			Format:    FormatJSON,
		})
		require.NoError(t, err)

		var doc struct {
			Result struct {
				Submission struct {
					Colour string `json:"colour"`
					Symbol string `json:"symbol"`
				} `json:"submission"`
				Position int `json:"position"`
			} `json:"result"`
		}
		require.NoError(t, json.Unmarshal(out.Bytes(), &doc))
		assert.Equal(t, "Yellow", doc.Result.Submission.Colour)
		assert.Equal(t, "-", doc.Result.Submission.Symbol)
		assert.Equal(t, 1, doc.Result.Position)
	})

	t.Run("Mermaid", func(t *testing.T) {
		var out bytes.Buffer
		err := RunSolve(ctx, &out, SolveOptions{
			Options:   Options{Snapshot: snapshotJSON, LogLevel: "error"},
			Displayed: "b- y- b- y.",
			Stage:     1,
			Format:    FormatMermaid,
		})
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(out.String(), "graph TD"))
		assert.Contains(t, out.String(), "classDef applied")
	})

	t.Run("Errors", func(t *testing.T) {
		cases := []struct {
			name string
			opts SolveOptions
		}{
			{"No bomb", SolveOptions{Options: Options{LogLevel: "error"}, Displayed: "r. r. r.", Stage: 1}},
			{"Bad snapshot", SolveOptions{Options: Options{Snapshot: "{", LogLevel: "error"}, Displayed: "r. r. r.", Stage: 1}},
			{"Bad sequence", SolveOptions{Options: Options{Snapshot: snapshotJSON, LogLevel: "error"}, Displayed: "r. r.", Stage: 1}},
			{"Bad stage", SolveOptions{Options: Options{Snapshot: snapshotJSON, LogLevel: "error"}, Displayed: "r. r. r.", Stage: 5}},
			{"Bad level", SolveOptions{Options: Options{Snapshot: snapshotJSON, LogLevel: "loud"}, Displayed: "r. r. r.", Stage: 1}},
			{"Bad format", SolveOptions{Options: Options{Snapshot: snapshotJSON, LogLevel: "error"}, Displayed: "r. r. r.", Stage: 1, Format: "xml"}},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				assert.Error(t, RunSolve(ctx, &bytes.Buffer{}, tc.opts))
			})
		}
	})
}

func TestRunRules(t *testing.T) {
	t.Run("Text", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, RunRules(&out, FormatText))
		for _, colour := range []string{"Red", "Yellow", "Green", "Blue"} {
			assert.Contains(t, out.String(), colour)
		}
		assert.Equal(t, 20, strings.Count(out.String(), ". If "))
	})

	t.Run("JSON", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, RunRules(&out, FormatJSON))
		var rules []map[string]any
		require.NoError(t, json.Unmarshal(out.Bytes(), &rules))
		assert.Len(t, rules, 20)
	})

	t.Run("Unknown", func(t *testing.T) {
		assert.Error(t, RunRules(&bytes.Buffer{}, "xml"))
	})
}

func TestRunPlay(t *testing.T) {
	ctx := context.Background()
	base := Options{Snapshot: snapshotJSON, Seed: 1, LogLevel: "error"}

	t.Run("Auto", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, RunPlay(ctx, strings.NewReader(""), &out, PlayOptions{Options: base, Auto: true}))
		assert.Equal(t, 4, strings.Count(out.String(), "The expected response is"))
		assert.Contains(t, out.String(), ">>> Module solved with 0 strike(s).")
	})

	t.Run("Answers every stage", func(t *testing.T) {
		var out bytes.Buffer
		in := strings.NewReader(strings.Repeat("red dot\n", 4))
		require.NoError(t, RunPlay(ctx, in, &out, PlayOptions{Options: base}))
		answered := strings.Count(out.String(), "Correct.") + strings.Count(out.String(), "Strike!")
		assert.Equal(t, 4, answered)
		assert.Contains(t, out.String(), "Stage 4")
		assert.Contains(t, out.String(), ">>> Module solved")
	})

	t.Run("Invalid answer then quit", func(t *testing.T) {
		var out bytes.Buffer
		in := strings.NewReader("purple\n\nquit\n")
		require.NoError(t, RunPlay(ctx, in, &out, PlayOptions{Options: base}))
		assert.Contains(t, out.String(), `Invalid answer "purple"`)
		assert.Contains(t, out.String(), ">>> Goodbye.")
		assert.NotContains(t, out.String(), "Stage 2")
	})

	t.Run("End of input", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, RunPlay(ctx, strings.NewReader(""), &out, PlayOptions{Options: base}))
		assert.NotContains(t, out.String(), "Module solved")
	})

	t.Run("Cancelled", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		var out bytes.Buffer
		require.NoError(t, RunPlay(cancelled, strings.NewReader("r.\n"), &out, PlayOptions{Options: base}))
		assert.NotContains(t, out.String(), "Correct.")
		assert.NotContains(t, out.String(), "Interrupted")
	})

	t.Run("Signalled", func(t *testing.T) {
		for _, tc := range []struct {
			sig  os.Signal
			want string
		}{
			{os.Interrupt, "[CTRL+C]\n>>> Interrupted at stage 1."},
			{syscall.SIGTERM, ">>> Terminated at stage 1 (terminated)."},
		} {
			cancelled, cancel := context.WithCancel(ctx)
			cancel()
			sc := &SignalContext{Context: cancelled, Cancel: cancel, sigVal: tc.sig}
			var out bytes.Buffer
			require.NoError(t, RunPlay(sc, strings.NewReader("r.\n"), &out, PlayOptions{Options: base}))
			assert.Contains(t, out.String(), tc.want)
			assert.NotContains(t, out.String(), "Correct.")
		}
	})
}

func TestLogInterruption_NoSignal(t *testing.T) {
	var out bytes.Buffer
	logInterruption(&out, 2, nil)
	assert.Empty(t, out.String())
}

func TestCreateLogger(t *testing.T) {
	_, err := createLogger("warn", false)
	assert.NoError(t, err)

	logger, err := createLogger("loud", true)
	require.NoError(t, err)
	assert.True(t, logger.Enabled(context.Background(), -4))

	_, err = createLogger("loud", false)
	assert.Error(t, err)
}

func TestHandleExecutionError(t *testing.T) {
	assert.NoError(t, handleExecutionError(nil))
	assert.NoError(t, handleExecutionError(context.Canceled))
	assert.NoError(t, handleExecutionError(errInterrupted))
	assert.Error(t, handleExecutionError(assert.AnError))
}

func TestInterruptibleReader(t *testing.T) {
	cancel := make(chan struct{})
	r := NewInterruptibleReader(strings.NewReader("abc"), cancel)
	buf := make([]byte, 3)
	n, err := r.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	close(cancel)
	_, err = r.Read(buf)
	assert.ErrorIs(t, err, errInterrupted)
}

func TestRunServe_ShutsDownOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := RunServe(ctx, ServeOptions{Options: Options{LogLevel: "error"}, Addr: "127.0.0.1:0"})
	assert.NoError(t, err)
}

func TestNewSessions(t *testing.T) {
	ctx := context.Background()
	logger, err := createLogger("error", false)
	require.NoError(t, err)

	t.Run("Memory", func(t *testing.T) {
		mgr, closeStore, err := newSessions(ctx, StoreOptions{}, logger)
		require.NoError(t, err)
		defer closeStore()
		_, err = mgr.Create(ctx, domain.Snapshot{})
		assert.NoError(t, err)
	})

	t.Run("Redis", func(t *testing.T) {
		mr := miniredis.RunT(t)
		mgr, closeStore, err := newSessions(ctx, StoreOptions{RedisAddr: mr.Addr(), PuzzleTTL: time.Minute}, logger)
		require.NoError(t, err)
		defer closeStore()

		state, err := mgr.Create(ctx, domain.Snapshot{})
		require.NoError(t, err)
		assert.True(t, mr.Exists("samuel:puzzle:"+state.ID))
		assert.Equal(t, time.Minute, mr.TTL("samuel:puzzle:"+state.ID))
	})

	t.Run("Redis unreachable", func(t *testing.T) {
		mr := miniredis.RunT(t)
		addr := mr.Addr()
		mr.Close()
		_, _, err := newSessions(ctx, StoreOptions{RedisAddr: addr}, logger)
		assert.ErrorContains(t, err, "failed to connect to redis")
	})
}
