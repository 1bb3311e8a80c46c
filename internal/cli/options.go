package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aretw0/samuel"
	"github.com/aretw0/samuel/pkg/adapters/file"
	"github.com/aretw0/samuel/pkg/domain"
	"github.com/aretw0/samuel/pkg/generator"
	"github.com/aretw0/samuel/pkg/ports"
	"github.com/aretw0/samuel/pkg/snapshot"
)

// Options holds the settings shared by every command.
type Options struct {
	BombFile string
	// Snapshot is a raw JSON snapshot, used instead of BombFile when set.
	Snapshot string
	Seed     uint64
	LogLevel string
	Debug    bool
}

// resolveSnapshot reads the snapshot from Snapshot or, failing that, from
// the bomb file.
func (o Options) resolveSnapshot() (domain.Snapshot, error) {
	if o.Snapshot != "" {
		var snap domain.Snapshot
		if err := json.Unmarshal([]byte(o.Snapshot), &snap); err != nil {
			return domain.Snapshot{}, fmt.Errorf("error parsing --snapshot JSON: %w", err)
		}
		return snap, nil
	}
	if o.BombFile == "" {
		return domain.Snapshot{}, errors.New("a bomb file (--bomb or SAMUEL_BOMB_FILE) or --snapshot is required")
	}
	bomb, err := file.Load(o.BombFile)
	if err != nil {
		return domain.Snapshot{}, err
	}
	return snapshot.Capture(bomb), nil
}

func (o Options) generator() ports.SequenceGenerator {
	if o.Seed != 0 {
		return generator.NewRandom(generator.WithSeed(o.Seed))
	}
	return generator.NewRandom()
}

// puzzleOptions builds the options shared by every puzzle a command creates.
func (o Options) puzzleOptions(logger *slog.Logger) []samuel.Option {
	opts := []samuel.Option{
		samuel.WithLogger(logger),
		samuel.WithGenerator(o.generator()),
	}
	if o.Debug {
		opts = append(opts, samuel.WithHooks(createDebugHooks(logger)))
	}
	return opts
}
