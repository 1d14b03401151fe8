package cli

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Preset is a TOML file holding generation settings, so often-used maze
// configurations can be kept under version control and shared.
//
// Example:
//
//	width = 40
//	height = 20
//	seed = 12345
//	threshold = 30
//	format = "text"
type Preset struct {
	Width     uint32 `toml:"width"`
	Height    uint32 `toml:"height"`
	Seed      uint64 `toml:"seed"`
	Threshold int    `toml:"threshold"`
	Format    string `toml:"format"`
}

// loadPreset reads and parses a preset file.
func loadPreset(path string) (Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Preset{}, fmt.Errorf("read preset: %w", err)
	}

	var p Preset
	if err := toml.Unmarshal(data, &p); err != nil {
		return Preset{}, fmt.Errorf("parse preset %s: %w", path, err)
	}
	return p, nil
}
