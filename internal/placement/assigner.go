package placement

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/lawnchairsociety/deckforge/internal/archetype"
	"github.com/lawnchairsociety/deckforge/internal/layout"
	"github.com/lawnchairsociety/deckforge/internal/logger"
	"github.com/lawnchairsociety/deckforge/internal/rng"
)

// Assignment reports what one type-assignment pass did. Dropped holds the
// sampled types that found no position, in sample order; a degraded
// generation run leaves fewer rooms than the configured type count, and
// those leftovers must stay visible to the caller.
type Assignment struct {
	Assigned int
	Dropped  []archetype.RoomType
}

// AssignTypes samples typeCount room types for the archetype and assigns
// them to the graph's rooms one at a time: each type goes to the free
// position where deck fit plus neighbor compatibility scores highest,
// earliest-inserted room winning ties. Guaranteed types come first in the
// sample, so they claim the best positions. Rooms are renamed from their
// assigned types afterwards. Greedy and deterministic for a fixed source;
// not globally optimal.
func AssignTypes(graph *layout.Graph, arch *archetype.Archetype, src *rng.Source, typeCount int) Assignment {
	types := SampleTypes(src, arch, typeCount, arch.Guaranteed)

	_, minY, _, maxY := graph.Extent()
	totalDecks := maxY - minY + 1

	assigned := mapset.New[string]()
	result := Assignment{}

	for _, t := range types {
		room := bestPosition(graph, arch, &assigned, t, totalDecks, minY)
		if room == nil {
			result.Dropped = append(result.Dropped, t)
			continue
		}
		room.Type = t
		assigned.Put(room.ID)
		result.Assigned++
	}

	if len(result.Dropped) > 0 {
		logger.Warning("Dropped room types with no free position",
			"dropped", len(result.Dropped),
			"assigned", result.Assigned)
	}

	applyNames(graph)
	return result
}

// bestPosition scores every unassigned room for the type and returns the
// arg-max, or nil when every room is taken. Iteration follows room
// insertion order and only a strictly better score displaces the best, so
// ties resolve to the earliest room.
func bestPosition(graph *layout.Graph, arch *archetype.Archetype, assigned *mapset.Set[string], t archetype.RoomType, totalDecks, minY int) *layout.Room {
	var best *layout.Room
	bestScore := 0

	for _, room := range graph.Rooms() {
		if assigned.Has(room.ID) {
			continue
		}

		score := DeckPositionScore(t, arch, totalDecks, room.Y-minY)
		for _, neighbor := range graph.Neighbors(room.ID) {
			if neighbor.Type == archetype.TypeUnassigned {
				continue
			}
			score += AdjacencyScore(t, neighbor.Type, arch)
		}

		if best == nil || score > bestScore {
			best = room
			bestScore = score
		}
	}

	return best
}

// applyNames renames rooms from their assigned types. A type with a single
// instance gets the bare display name; multiple instances are numbered in
// room insertion order. Unassigned rooms keep their generated names.
func applyNames(graph *layout.Graph) {
	counts := make(map[archetype.RoomType]int)
	for _, room := range graph.Rooms() {
		if room.Type != archetype.TypeUnassigned {
			counts[room.Type]++
		}
	}

	ordinals := make(map[archetype.RoomType]int)
	for _, room := range graph.Rooms() {
		if room.Type == archetype.TypeUnassigned {
			continue
		}
		if counts[room.Type] == 1 {
			room.Name = room.Type.DisplayName()
			continue
		}
		ordinals[room.Type]++
		room.Name = fmt.Sprintf("%s %d", room.Type.DisplayName(), ordinals[room.Type])
	}
}
