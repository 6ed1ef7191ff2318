package layout

import (
	"errors"
	"fmt"
)

// LayoutKind selects the generation strategy
type LayoutKind int

const (
	KindDungeon LayoutKind = iota // Biased walk with branches
	KindShip                      // Deck rows around a central spine
)

// String returns the string representation of a LayoutKind
func (k LayoutKind) String() string {
	switch k {
	case KindDungeon:
		return "dungeon"
	case KindShip:
		return "ship"
	default:
		return "unknown"
	}
}

// ParseLayoutKind converts a string to a LayoutKind
func ParseLayoutKind(s string) (LayoutKind, bool) {
	switch s {
	case "dungeon":
		return KindDungeon, true
	case "ship":
		return KindShip, true
	default:
		return KindDungeon, false
	}
}

// ErrInvalidConfig indicates a generation config that fails validation.
var ErrInvalidConfig = errors.New("invalid layout config")

// Config holds the tunables for one generation run.
type Config struct {
	Kind LayoutKind

	NumRooms int
	Width    int
	Height   int

	// Ship variant: deck row count and row width.
	Decks        int
	RoomsPerDeck int

	// BranchingFactor sets what share of rooms go to branches instead of
	// the main path. DirectionalBias is the chance the main path keeps its
	// previous heading. Both are fractions in [0, 1].
	BranchingFactor float64
	DirectionalBias float64

	MinSecondaryLinks int
	MaxSecondaryLinks int

	// CellSize is the edge length, in grid tiles, that one room cell
	// expands to when building the walkability grid.
	CellSize int

	Archetype string
}

// DefaultConfig returns a config with sensible defaults
func DefaultConfig() Config {
	return Config{
		Kind:              KindDungeon,
		NumRooms:          12,
		Width:             9,
		Height:            9,
		Decks:             4,
		RoomsPerDeck:      3,
		BranchingFactor:   0.3,
		DirectionalBias:   0.6,
		MinSecondaryLinks: 1,
		MaxSecondaryLinks: 3,
		CellSize:          6,
		Archetype:         "default",
	}
}

// Validate checks the config. All violations are reported as
// ErrInvalidConfig wrapped with detail.
func (c *Config) Validate() error {
	if c.NumRooms < 2 {
		return fmt.Errorf("%w: num_rooms must be at least 2, got %d", ErrInvalidConfig, c.NumRooms)
	}
	if c.Width < 3 || c.Height < 3 {
		return fmt.Errorf("%w: grid must be at least 3x3, got %dx%d", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.NumRooms > c.Width*c.Height {
		return fmt.Errorf("%w: %d rooms cannot fit a %dx%d grid", ErrInvalidConfig, c.NumRooms, c.Width, c.Height)
	}
	if c.BranchingFactor < 0 || c.BranchingFactor > 1 {
		return fmt.Errorf("%w: branching_factor must be in [0, 1], got %v", ErrInvalidConfig, c.BranchingFactor)
	}
	if c.DirectionalBias < 0 || c.DirectionalBias > 1 {
		return fmt.Errorf("%w: directional_bias must be in [0, 1], got %v", ErrInvalidConfig, c.DirectionalBias)
	}
	if c.MinSecondaryLinks < 0 {
		return fmt.Errorf("%w: min_secondary_links must not be negative, got %d", ErrInvalidConfig, c.MinSecondaryLinks)
	}
	if c.MaxSecondaryLinks < c.MinSecondaryLinks {
		return fmt.Errorf("%w: max_secondary_links %d below min %d", ErrInvalidConfig, c.MaxSecondaryLinks, c.MinSecondaryLinks)
	}
	if c.CellSize < 3 {
		return fmt.Errorf("%w: cell_size must be at least 3, got %d", ErrInvalidConfig, c.CellSize)
	}
	if c.Kind == KindShip {
		if c.Decks < 2 {
			return fmt.Errorf("%w: ship layouts need at least 2 decks, got %d", ErrInvalidConfig, c.Decks)
		}
		if c.Decks > c.Height {
			return fmt.Errorf("%w: %d decks cannot fit a grid %d high", ErrInvalidConfig, c.Decks, c.Height)
		}
		if c.RoomsPerDeck < 1 {
			return fmt.Errorf("%w: rooms_per_deck must be at least 1, got %d", ErrInvalidConfig, c.RoomsPerDeck)
		}
	}
	return nil
}

// MainPathRooms returns how many rooms the main path targets: the rooms
// left over after the branching share, floored, but never fewer than 2.
func (c *Config) MainPathRooms() int {
	n := int(float64(c.NumRooms) * (1 - c.BranchingFactor))
	if n < 2 {
		n = 2
	}
	return n
}
