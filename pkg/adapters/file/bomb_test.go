package file_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/samuel/pkg/adapters/file"
	"github.com/aretw0/samuel/pkg/ports"
	"github.com/aretw0/samuel/pkg/snapshot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ ports.BombInfo = (*file.Bomb)(nil)

const bombYAML = `
modules:
  - Samuel Says
  - Simon Shouts
  - Wires
batteries: "2"
ports: [Serial, Parallel, Serial]
indicators:
  lit: [FRK]
  unlit: [CAR, SND]
serial: AB1C23
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_YAML(t *testing.T) {
	bomb, err := file.Load(writeFile(t, "bomb.yaml", bombYAML))
	require.NoError(t, err)

	assert.Equal(t, []string{"Samuel Says", "Simon Shouts", "Wires"}, bomb.ModuleNames())
	assert.Equal(t, 2, bomb.BatteryCount())
	assert.Equal(t, []string{"FRK"}, bomb.OnIndicators())
	assert.Equal(t, "AB1C23", bomb.SerialNumber())

	snap := snapshot.Capture(bomb)
	assert.True(t, snap.SimonVariantPresent)
	assert.Equal(t, 2, snap.UniquePortTypes)
	assert.Equal(t, 6, snap.SerialDigitSum)
}

func TestLoad_JSON(t *testing.T) {
	path := writeFile(t, "bomb.json", `{
		"modules": ["Samuel Says", "Red Arrows"],
		"batteries": 4,
		"ports": [],
		"serial": 123456
	}`)

	bomb, err := file.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4, bomb.BatteryCount())
	assert.Equal(t, "123456", bomb.SerialNumber())
	assert.Empty(t, bomb.OffIndicators())
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"malformed yaml", "bomb.yaml", "modules: [unclosed"},
		{"malformed json", "bomb.json", "{"},
		{"unknown key", "bomb.yaml", "modules: [Wires]\nbatterys: 2\n"},
		{"negative batteries", "bomb.yaml", "modules: [Wires]\nbatteries: -1\n"},
		{"no modules", "bomb.yaml", "batteries: 1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := file.Load(writeFile(t, tt.file, tt.content))
			assert.Error(t, err)
		})
	}

	_, err := file.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
