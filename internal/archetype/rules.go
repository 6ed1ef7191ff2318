package archetype

// DeckZone represents a coarse vertical band of a layout's decks
type DeckZone int

const (
	ZoneAny    DeckZone = iota // No preference (also disables Avoid)
	ZoneUpper                  // Top third of decks
	ZoneMiddle                 // Middle third
	ZoneLower                  // Bottom third
)

// String returns the string representation of a DeckZone
func (z DeckZone) String() string {
	switch z {
	case ZoneAny:
		return "any"
	case ZoneUpper:
		return "upper"
	case ZoneMiddle:
		return "middle"
	case ZoneLower:
		return "lower"
	default:
		return "unknown"
	}
}

// ParseDeckZone converts a string to a DeckZone
func ParseDeckZone(s string) (DeckZone, bool) {
	switch s {
	case "any", "":
		return ZoneAny, true
	case "upper":
		return ZoneUpper, true
	case "middle":
		return ZoneMiddle, true
	case "lower":
		return ZoneLower, true
	default:
		return ZoneAny, false
	}
}

// DeckRule describes where a room type wants to sit vertically. Weight sets
// how strongly the preference counts when scoring candidate positions.
type DeckRule struct {
	Zone   DeckZone // preferred band, ZoneAny matches everywhere
	Avoid  DeckZone // penalized band, ZoneAny means none
	Weight int
}

// AdjacencyRule describes which neighbors a room type wants and shuns.
type AdjacencyRule struct {
	Required  []RoomType
	Preferred []RoomType
	Avoided   []RoomType
}

// Requires reports whether t appears in the rule's required list
func (r AdjacencyRule) Requires(t RoomType) bool {
	return containsType(r.Required, t)
}

// Prefers reports whether t appears in the rule's preferred list
func (r AdjacencyRule) Prefers(t RoomType) bool {
	return containsType(r.Preferred, t)
}

// Avoids reports whether t appears in the rule's avoided list
func (r AdjacencyRule) Avoids(t RoomType) bool {
	return containsType(r.Avoided, t)
}

func containsType(types []RoomType, t RoomType) bool {
	for _, candidate := range types {
		if candidate == t {
			return true
		}
	}
	return false
}

// defaultDeckRules holds the per-type placement defaults. Archetypes may
// override individual entries.
var defaultDeckRules = map[RoomType]DeckRule{
	TypeBridge:      {Zone: ZoneUpper, Avoid: ZoneLower, Weight: 8},
	TypeSensorSuite: {Zone: ZoneUpper, Avoid: ZoneLower, Weight: 5},
	TypeEngineRoom:  {Zone: ZoneLower, Avoid: ZoneUpper, Weight: 8},
	TypeJumpDrive:   {Zone: ZoneLower, Avoid: ZoneUpper, Weight: 7},
	TypeReactor:     {Zone: ZoneLower, Avoid: ZoneUpper, Weight: 7},
	TypeCargoHold:   {Zone: ZoneLower, Avoid: ZoneAny, Weight: 4},
	TypeWorkshop:    {Zone: ZoneLower, Avoid: ZoneAny, Weight: 3},
	TypeQuarters:    {Zone: ZoneMiddle, Avoid: ZoneAny, Weight: 4},
	TypeMedbay:      {Zone: ZoneMiddle, Avoid: ZoneAny, Weight: 5},
	TypeGalley:      {Zone: ZoneMiddle, Avoid: ZoneAny, Weight: 3},
	TypeArmory:      {Zone: ZoneMiddle, Avoid: ZoneAny, Weight: 3},
	TypeChamber:     {Zone: ZoneAny, Avoid: ZoneAny, Weight: 1},
}

// defaultAdjacency holds the per-type neighbor defaults. Archetypes may
// override individual entries.
var defaultAdjacency = map[RoomType]AdjacencyRule{
	TypeBridge: {
		Preferred: []RoomType{TypeSensorSuite, TypeQuarters},
		Avoided:   []RoomType{TypeEngineRoom, TypeReactor, TypeJumpDrive},
	},
	TypeSensorSuite: {
		Preferred: []RoomType{TypeBridge},
	},
	TypeEngineRoom: {
		Required:  []RoomType{TypeReactor},
		Preferred: []RoomType{TypeWorkshop},
		Avoided:   []RoomType{TypeQuarters, TypeMedbay},
	},
	TypeJumpDrive: {
		Required: []RoomType{TypeReactor},
		Avoided:  []RoomType{TypeQuarters},
	},
	TypeReactor: {
		Preferred: []RoomType{TypeEngineRoom, TypeJumpDrive},
		Avoided:   []RoomType{TypeQuarters, TypeMedbay, TypeGalley},
	},
	TypeCargoHold: {
		Preferred: []RoomType{TypeWorkshop},
	},
	TypeQuarters: {
		Preferred: []RoomType{TypeGalley, TypeMedbay},
		Avoided:   []RoomType{TypeReactor, TypeEngineRoom},
	},
	TypeMedbay: {
		Preferred: []RoomType{TypeQuarters},
		Avoided:   []RoomType{TypeReactor},
	},
	TypeGalley: {
		Preferred: []RoomType{TypeQuarters, TypeCargoHold},
	},
	TypeArmory: {
		Preferred: []RoomType{TypeBridge},
	},
	TypeWorkshop: {
		Preferred: []RoomType{TypeEngineRoom, TypeCargoHold},
	},
}

// DeckRuleFor returns the deck rule for a type under an archetype. Archetype
// overrides win over the built-in defaults; unknown types fall back to a
// neutral any-zone rule so the scoring engine stays total.
func DeckRuleFor(t RoomType, a *Archetype) DeckRule {
	if a != nil {
		if rule, ok := a.DeckRules[t]; ok {
			return rule
		}
	}
	if rule, ok := defaultDeckRules[t]; ok {
		return rule
	}
	return DeckRule{Zone: ZoneAny, Avoid: ZoneAny, Weight: 1}
}

// AdjacencyRuleFor returns the adjacency rule for a type under an archetype,
// with the same override and neutral-fallback semantics as DeckRuleFor.
func AdjacencyRuleFor(t RoomType, a *Archetype) AdjacencyRule {
	if a != nil {
		if rule, ok := a.Adjacency[t]; ok {
			return rule
		}
	}
	if rule, ok := defaultAdjacency[t]; ok {
		return rule
	}
	return AdjacencyRule{}
}
