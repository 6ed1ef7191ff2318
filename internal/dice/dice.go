// Package dice implements uniform die rolls over a shared random source.
package dice

import (
	"errors"

	"github.com/lawnchairsociety/deckforge/internal/rng"
)

// ErrInvalidSides indicates a roll was requested with fewer than one side.
var ErrInvalidSides = errors.New("dice must have at least one side")

// ErrInvalidQuantity indicates a roll was requested with fewer than one die.
var ErrInvalidQuantity = errors.New("at least one die must be rolled")

// Result captures the outcome of a roll.
type Result struct {
	Total int
	Rolls []int
}

// Roller rolls dice against a caller-owned random source. It never creates
// its own source; every roll consumes draws from the run's single sequence,
// which keeps generation reproducible for a given seed.
type Roller struct {
	src *rng.Source
}

// NewRoller creates a Roller over src.
func NewRoller(src *rng.Source) *Roller {
	return &Roller{src: src}
}

// Roll rolls quantity dice with the given number of sides and returns the
// total along with each individual die value, in roll order. Sides and
// quantity must both be at least 1.
func (r *Roller) Roll(sides, quantity int) (Result, error) {
	if sides < 1 {
		return Result{}, ErrInvalidSides
	}
	if quantity < 1 {
		return Result{}, ErrInvalidQuantity
	}

	rolls := make([]int, quantity)
	total := 0
	for i := 0; i < quantity; i++ {
		v := r.src.IntRange(1, sides)
		rolls[i] = v
		total += v
	}

	return Result{Total: total, Rolls: rolls}, nil
}

// D rolls a single die with the given number of sides. Sides must be at
// least 1; invalid values panic, since every call site passes a constant.
func (r *Roller) D(sides int) int {
	res, err := r.Roll(sides, 1)
	if err != nil {
		panic(err)
	}
	return res.Total
}
