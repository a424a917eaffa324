package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed tuning.yaml
var tuningYAML []byte

// Tuning is the part of the configuration that tuning.yaml can override.
type Tuning struct {
	Player    PlayerConfig    `yaml:"player"`
	Evolution EvolutionConfig `yaml:"evolution"`
}

// CurrentTuning returns the values in effect.
func CurrentTuning() Tuning {
	return Tuning{Player: Player, Evolution: Evolution}
}

// ApplyTuning replaces the values in effect.
func ApplyTuning(t Tuning) {
	Player = t.Player
	Evolution = t.Evolution
}

// ParseTuning overlays data onto base. Keys missing from data keep the base
// value.
func ParseTuning(data []byte, base Tuning) (Tuning, error) {
	t := base
	if err := yaml.Unmarshal(data, &t); err != nil {
		return base, fmt.Errorf("config: unmarshal tuning: %w", err)
	}
	return t, nil
}

// LoadTuning reads path, or the embedded tuning.yaml when path is empty, and
// applies it over the current values.
func LoadTuning(path string) error {
	data := tuningYAML
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("config: load %s: %w", path, err)
		}
	}
	t, err := ParseTuning(data, CurrentTuning())
	if err != nil {
		return err
	}
	ApplyTuning(t)
	return nil
}
