// Package config loads generation settings from YAML files and the
// environment, producing a validated layout configuration.
package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/lawnchairsociety/deckforge/internal/layout"
)

// fileConfig is the YAML shape of the generation section. Fields whose
// zero value is a legal setting (a branching factor of 0 turns branching
// off) are pointers so an absent key keeps the default.
type fileConfig struct {
	Generation struct {
		Kind              string   `yaml:"kind"`
		NumRooms          int      `yaml:"num_rooms"`
		Width             int      `yaml:"width"`
		Height            int      `yaml:"height"`
		Decks             int      `yaml:"decks"`
		RoomsPerDeck      int      `yaml:"rooms_per_deck"`
		BranchingFactor   *float64 `yaml:"branching_factor"`
		DirectionalBias   *float64 `yaml:"directional_bias"`
		MinSecondaryLinks *int     `yaml:"min_secondary_links"`
		MaxSecondaryLinks *int     `yaml:"max_secondary_links"`
		CellSize          int      `yaml:"cell_size"`
		Archetype         string   `yaml:"archetype"`
	} `yaml:"generation"`
}

// envOverrides maps the environment variables that win over file settings
type envOverrides struct {
	Kind      string `env:"DECKFORGE_KIND"`
	NumRooms  int    `env:"DECKFORGE_ROOMS"`
	Archetype string `env:"DECKFORGE_ARCHETYPE"`
}

// Load builds a generation config: layout defaults, overlaid by the
// generation section of the YAML file at path if one exists, overlaid by
// environment variables, then validated. A missing file is not an error.
func Load(path string) (layout.Config, error) {
	cfg := layout.DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return cfg, fmt.Errorf("reading config %s: %w", path, err)
		}
		if err == nil {
			var file fileConfig
			if err := yaml.Unmarshal(data, &file); err != nil {
				return cfg, fmt.Errorf("parsing config %s: %w", path, err)
			}
			if err := mergeFile(&cfg, file); err != nil {
				return cfg, err
			}
		}
	}

	var overrides envOverrides
	if err := env.Parse(&overrides); err != nil {
		return cfg, fmt.Errorf("parsing env overrides: %w", err)
	}
	if overrides.Kind != "" {
		kind, ok := layout.ParseLayoutKind(overrides.Kind)
		if !ok {
			return cfg, fmt.Errorf("%w: unknown layout kind %q", layout.ErrInvalidConfig, overrides.Kind)
		}
		cfg.Kind = kind
	}
	if overrides.NumRooms > 0 {
		cfg.NumRooms = overrides.NumRooms
	}
	if overrides.Archetype != "" {
		cfg.Archetype = overrides.Archetype
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func mergeFile(cfg *layout.Config, file fileConfig) error {
	section := file.Generation

	if section.Kind != "" {
		kind, ok := layout.ParseLayoutKind(section.Kind)
		if !ok {
			return fmt.Errorf("%w: unknown layout kind %q", layout.ErrInvalidConfig, section.Kind)
		}
		cfg.Kind = kind
	}
	if section.NumRooms > 0 {
		cfg.NumRooms = section.NumRooms
	}
	if section.Width > 0 {
		cfg.Width = section.Width
	}
	if section.Height > 0 {
		cfg.Height = section.Height
	}
	if section.Decks > 0 {
		cfg.Decks = section.Decks
	}
	if section.RoomsPerDeck > 0 {
		cfg.RoomsPerDeck = section.RoomsPerDeck
	}
	if section.BranchingFactor != nil {
		cfg.BranchingFactor = *section.BranchingFactor
	}
	if section.DirectionalBias != nil {
		cfg.DirectionalBias = *section.DirectionalBias
	}
	if section.MinSecondaryLinks != nil {
		cfg.MinSecondaryLinks = *section.MinSecondaryLinks
	}
	if section.MaxSecondaryLinks != nil {
		cfg.MaxSecondaryLinks = *section.MaxSecondaryLinks
	}
	if section.CellSize > 0 {
		cfg.CellSize = section.CellSize
	}
	if section.Archetype != "" {
		cfg.Archetype = section.Archetype
	}
	return nil
}
