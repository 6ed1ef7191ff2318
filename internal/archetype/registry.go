package archetype

// TypeWeight pairs a room type with its sampling weight. Weight tables are
// slices, not maps, so cumulative-weight sampling walks them in a fixed
// order and stays reproducible.
type TypeWeight struct {
	Type   RoomType
	Weight int
}

// Archetype defines the configuration for a named layout flavor.
type Archetype struct {
	Name        string                     // Registry key: "freighter"
	Description string                     // Short flavor line
	Weights     []TypeWeight               // Sampling distribution, fixed order
	Guaranteed  []RoomType                 // Types seeded before weighted fill
	DeckRules   map[RoomType]DeckRule      // Per-type overrides of the defaults
	Adjacency   map[RoomType]AdjacencyRule // Per-type overrides of the defaults
}

// DefaultName is the registry key every unknown archetype falls back to.
const DefaultName = "default"

// archetypes holds all archetype definitions.
var archetypes = map[string]*Archetype{
	DefaultName: {
		Name:        DefaultName,
		Description: "Balanced mix suitable for any hull or dungeon",
		Weights: []TypeWeight{
			{TypeChamber, 20},
			{TypeQuarters, 14},
			{TypeCargoHold, 12},
			{TypeWorkshop, 10},
			{TypeGalley, 8},
			{TypeMedbay, 8},
			{TypeArmory, 6},
			{TypeSensorSuite, 5},
			{TypeReactor, 5},
			{TypeJumpDrive, 4},
			{TypeBridge, 4},
			{TypeEngineRoom, 4},
		},
		Guaranteed: []RoomType{TypeBridge, TypeEngineRoom},
	},
	"freighter": {
		Name:        "freighter",
		Description: "Bulk hauler, most of the hull is cargo space",
		Weights: []TypeWeight{
			{TypeCargoHold, 34},
			{TypeQuarters, 12},
			{TypeWorkshop, 12},
			{TypeGalley, 8},
			{TypeChamber, 8},
			{TypeMedbay, 6},
			{TypeReactor, 5},
			{TypeSensorSuite, 4},
			{TypeJumpDrive, 4},
			{TypeBridge, 3},
			{TypeEngineRoom, 3},
			{TypeArmory, 1},
		},
		Guaranteed: []RoomType{TypeBridge, TypeEngineRoom, TypeCargoHold},
		DeckRules: map[RoomType]DeckRule{
			// Freighters stack cargo through the midline, not just the keel.
			TypeCargoHold: {Zone: ZoneMiddle, Avoid: ZoneAny, Weight: 5},
		},
	},
	"raider": {
		Name:        "raider",
		Description: "Fast attack hull, armed and cramped",
		Weights: []TypeWeight{
			{TypeArmory, 22},
			{TypeQuarters, 16},
			{TypeChamber, 10},
			{TypeWorkshop, 10},
			{TypeGalley, 8},
			{TypeCargoHold, 8},
			{TypeReactor, 7},
			{TypeMedbay, 6},
			{TypeJumpDrive, 5},
			{TypeBridge, 3},
			{TypeEngineRoom, 3},
			{TypeSensorSuite, 2},
		},
		Guaranteed: []RoomType{TypeBridge, TypeEngineRoom, TypeArmory},
		Adjacency: map[RoomType]AdjacencyRule{
			// Boarding crews bunk next to the weapons locker.
			TypeArmory: {Preferred: []RoomType{TypeQuarters, TypeBridge}},
		},
	},
	"explorer": {
		Name:        "explorer",
		Description: "Long-range survey hull, sensors and sickbay first",
		Weights: []TypeWeight{
			{TypeSensorSuite, 16},
			{TypeMedbay, 14},
			{TypeQuarters, 14},
			{TypeChamber, 10},
			{TypeCargoHold, 10},
			{TypeGalley, 8},
			{TypeWorkshop, 8},
			{TypeReactor, 6},
			{TypeJumpDrive, 6},
			{TypeBridge, 4},
			{TypeEngineRoom, 3},
			{TypeArmory, 1},
		},
		Guaranteed: []RoomType{TypeBridge, TypeEngineRoom, TypeSensorSuite, TypeMedbay},
		DeckRules: map[RoomType]DeckRule{
			TypeMedbay: {Zone: ZoneMiddle, Avoid: ZoneLower, Weight: 6},
		},
	},
}

// Get returns the archetype for a given name, falling back to the default
// table for unknown names. It never returns nil.
func Get(name string) *Archetype {
	if a, ok := archetypes[name]; ok {
		return a
	}
	return archetypes[DefaultName]
}

// Register adds or replaces an archetype definition. Registration is not
// synchronized; load custom archetypes during startup, before generation.
func Register(a *Archetype) {
	archetypes[a.Name] = a
}

// Names returns all registered archetype names. Order is unspecified.
func Names() []string {
	result := make([]string, 0, len(archetypes))
	for name := range archetypes {
		result = append(result, name)
	}
	return result
}
