// Package file loads bomb descriptions from YAML or JSON files.
package file

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Bomb is a static bomb description. It implements ports.BombInfo.
type Bomb struct {
	Modules    []string   `mapstructure:"modules"`
	Batteries  int        `mapstructure:"batteries"`
	PortTypes  []string   `mapstructure:"ports"`
	Indicators Indicators `mapstructure:"indicators"`
	Serial     string     `mapstructure:"serial"`
}

// Indicators splits indicator labels by lit state.
type Indicators struct {
	Lit   []string `mapstructure:"lit"`
	Unlit []string `mapstructure:"unlit"`
}

func (b *Bomb) ModuleNames() []string   { return b.Modules }
func (b *Bomb) BatteryCount() int       { return b.Batteries }
func (b *Bomb) Ports() []string         { return b.PortTypes }
func (b *Bomb) OnIndicators() []string  { return b.Indicators.Lit }
func (b *Bomb) OffIndicators() []string { return b.Indicators.Unlit }
func (b *Bomb) SerialNumber() string    { return b.Serial }

// Validate rejects descriptions the snapshot cannot be derived from.
func (b *Bomb) Validate() error {
	if b.Batteries < 0 {
		return fmt.Errorf("batteries must not be negative, got %d", b.Batteries)
	}
	if len(b.Modules) == 0 {
		return errors.New("at least one module is required")
	}
	return nil
}

// Load reads a bomb description. Files ending in .json are parsed as JSON,
// everything else as YAML.
func Load(path string) (*Bomb, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read bomb file: %w", err)
	}

	format := "yaml"
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		format = "json"
	}
	bomb, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return bomb, nil
}

// Parse decodes a bomb description in the given format ("json" or "yaml").
// Scalars are weakly typed, so `batteries: "3"` and `serial: 123456` work.
func Parse(data []byte, format string) (*Bomb, error) {
	var raw map[string]any
	switch format {
	case "json":
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse bomb json: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse bomb yaml: %w", err)
		}
	}

	var bomb Bomb
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           &bomb,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("invalid bomb description: %w", err)
	}
	if err := bomb.Validate(); err != nil {
		return nil, fmt.Errorf("invalid bomb description: %w", err)
	}
	return &bomb, nil
}
