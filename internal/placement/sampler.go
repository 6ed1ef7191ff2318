package placement

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/lawnchairsociety/deckforge/internal/archetype"
	"github.com/lawnchairsociety/deckforge/internal/rng"
)

// maxSampleAttempts bounds the resample loop when a weighted draw keeps
// hitting unique types that are already placed. An all-unique weight
// table would otherwise never terminate once every unique type is taken.
const maxSampleAttempts = 64

// SampleTypes returns exactly count room types for an archetype. The
// guaranteed list seeds the result first (unique types deduplicated),
// then weighted draws from the archetype's table fill the rest. Draws
// that collide with an already-placed unique type are retried up to
// maxSampleAttempts; after that the slot takes the table's first
// non-unique type so the result always reaches count.
func SampleTypes(src *rng.Source, arch *archetype.Archetype, count int, guaranteed []archetype.RoomType) []archetype.RoomType {
	if count <= 0 {
		return nil
	}

	result := make([]archetype.RoomType, 0, count)
	placedUnique := mapset.New[archetype.RoomType]()

	for _, t := range guaranteed {
		if len(result) == count {
			break
		}
		if t.IsUnique() {
			if placedUnique.Has(t) {
				continue
			}
			placedUnique.Put(t)
		}
		result = append(result, t)
	}

	totalWeight := 0
	for _, tw := range arch.Weights {
		totalWeight += tw.Weight
	}

	for len(result) < count {
		t, ok := drawType(src, arch.Weights, totalWeight, &placedUnique)
		if !ok {
			t = fallbackType(arch.Weights)
		}
		if t.IsUnique() {
			placedUnique.Put(t)
		}
		result = append(result, t)
	}

	return result
}

// drawType performs inverse-CDF draws over the weight table until it finds
// a type that is not an already-placed unique, or the attempt cap runs out.
func drawType(src *rng.Source, weights []archetype.TypeWeight, totalWeight int, placedUnique *mapset.Set[archetype.RoomType]) (archetype.RoomType, bool) {
	if len(weights) == 0 || totalWeight < 1 {
		return archetype.TypeUnassigned, false
	}

	for attempt := 0; attempt < maxSampleAttempts; attempt++ {
		roll := src.IntRange(1, totalWeight)
		cumulative := 0
		for _, tw := range weights {
			cumulative += tw.Weight
			if roll > cumulative {
				continue
			}
			if tw.Type.IsUnique() && placedUnique.Has(tw.Type) {
				break // collision, redraw
			}
			return tw.Type, true
		}
	}
	return archetype.TypeUnassigned, false
}

// fallbackType returns the table's first non-unique type, or the generic
// chamber when the table holds nothing but uniques.
func fallbackType(weights []archetype.TypeWeight) archetype.RoomType {
	for _, tw := range weights {
		if !tw.Type.IsUnique() {
			return tw.Type
		}
	}
	return archetype.TypeChamber
}
