// Package placement samples semantic room types and assigns them to layout
// positions by scoring deck fit and neighbor compatibility against
// archetype rule tables. The assignment is greedy: good layouts, not
// optimal ones.
package placement

import "github.com/lawnchairsociety/deckforge/internal/archetype"

const (
	minDeckScore = -50
	maxDeckScore = 10

	minAdjacencyScore = -10
	maxAdjacencyScore = 10

	// Drive machinery on the top deck is never acceptable, whatever the
	// zone tables say.
	propulsionTopDeckPenalty = 20

	selfClusterBonus = 5
)

// zoneForDeck maps a deck index to its vertical third. Boundaries sit at
// 33% and 67% of the deck count, so small layouts bias toward the upper
// zones.
func zoneForDeck(deckIndex, totalDecks int) archetype.DeckZone {
	if totalDecks <= 0 {
		return archetype.ZoneUpper
	}
	frac := float64(deckIndex) / float64(totalDecks)
	switch {
	case frac < 0.33:
		return archetype.ZoneUpper
	case frac < 0.67:
		return archetype.ZoneMiddle
	default:
		return archetype.ZoneLower
	}
}

// DeckPositionScore scores how well a room type fits a deck. The type's
// rule (with archetype overrides) yields its weight when the deck's zone
// matches the preferred zone, a half-weight penalty for a zone that is
// neither preferred nor avoided, and a triple-weight penalty for the
// avoided zone. Propulsion types take an extra fixed penalty on the
// uppermost deck. The result is clamped to [minDeckScore, maxDeckScore]
// and the function is total: unknown types score against a neutral rule.
func DeckPositionScore(t archetype.RoomType, arch *archetype.Archetype, totalDecks, deckIndex int) int {
	rule := archetype.DeckRuleFor(t, arch)
	zone := zoneForDeck(deckIndex, totalDecks)

	var score int
	switch {
	case rule.Zone == archetype.ZoneAny || rule.Zone == zone:
		score = rule.Weight
	case rule.Avoid != archetype.ZoneAny && rule.Avoid == zone:
		score = -3 * rule.Weight
	default:
		score = -rule.Weight / 2
	}

	if t.IsPropulsion() && deckIndex == 0 {
		score -= propulsionTopDeckPenalty
	}

	return clamp(score, minDeckScore, maxDeckScore)
}

// AdjacencyScore scores placing two room types next to each other. Both
// types' rules contribute: +10 when one requires the other, +5 when
// preferred, -7 when avoided, summed over both directions and clamped to
// [minAdjacencyScore, maxAdjacencyScore]. A type next to itself scores
// the cluster bonus only when it self-clusters, otherwise zero. Symmetric
// by construction.
func AdjacencyScore(a, b archetype.RoomType, arch *archetype.Archetype) int {
	if a == b {
		if a.IsSelfClustering() {
			return selfClusterBonus
		}
		return 0
	}

	score := directionalScore(a, b, arch) + directionalScore(b, a, arch)
	return clamp(score, minAdjacencyScore, maxAdjacencyScore)
}

func directionalScore(from, to archetype.RoomType, arch *archetype.Archetype) int {
	rule := archetype.AdjacencyRuleFor(from, arch)
	switch {
	case rule.Requires(to):
		return 10
	case rule.Prefers(to):
		return 5
	case rule.Avoids(to):
		return -7
	default:
		return 0
	}
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
