// Package archetype defines the semantic room type vocabulary and the named
// weight tables and placement rules that drive type sampling and assignment.
package archetype

// RoomType represents the semantic type assigned to a room
type RoomType int

const (
	TypeUnassigned  RoomType = iota // No type yet (zero value for freshly generated rooms)
	TypeBridge                      // Command deck
	TypeEngineRoom                  // Main drive machinery
	TypeJumpDrive                   // FTL drive housing
	TypeReactor                     // Power plant
	TypeCargoHold                   // Bulk storage
	TypeQuarters                    // Crew berths
	TypeMedbay                      // Medical bay
	TypeGalley                      // Mess and food prep
	TypeArmory                      // Weapons locker
	TypeWorkshop                    // Repair and fabrication
	TypeSensorSuite                 // Sensor and comms cluster
	TypeChamber                     // Generic room (dungeon filler)
)

// String returns the string representation of a RoomType
func (t RoomType) String() string {
	switch t {
	case TypeUnassigned:
		return "unassigned"
	case TypeBridge:
		return "bridge"
	case TypeEngineRoom:
		return "engine_room"
	case TypeJumpDrive:
		return "jump_drive"
	case TypeReactor:
		return "reactor"
	case TypeCargoHold:
		return "cargo_hold"
	case TypeQuarters:
		return "quarters"
	case TypeMedbay:
		return "medbay"
	case TypeGalley:
		return "galley"
	case TypeArmory:
		return "armory"
	case TypeWorkshop:
		return "workshop"
	case TypeSensorSuite:
		return "sensor_suite"
	case TypeChamber:
		return "chamber"
	default:
		return "unknown"
	}
}

// DisplayName returns the human-readable name stem used for room naming
func (t RoomType) DisplayName() string {
	switch t {
	case TypeBridge:
		return "Bridge"
	case TypeEngineRoom:
		return "Engine Room"
	case TypeJumpDrive:
		return "Jump Drive"
	case TypeReactor:
		return "Reactor"
	case TypeCargoHold:
		return "Cargo Hold"
	case TypeQuarters:
		return "Quarters"
	case TypeMedbay:
		return "Medbay"
	case TypeGalley:
		return "Galley"
	case TypeArmory:
		return "Armory"
	case TypeWorkshop:
		return "Workshop"
	case TypeSensorSuite:
		return "Sensor Suite"
	case TypeChamber:
		return "Chamber"
	default:
		return "Room"
	}
}

// ParseRoomType converts a string to a RoomType
func ParseRoomType(s string) (RoomType, bool) {
	switch s {
	case "bridge":
		return TypeBridge, true
	case "engine_room":
		return TypeEngineRoom, true
	case "jump_drive":
		return TypeJumpDrive, true
	case "reactor":
		return TypeReactor, true
	case "cargo_hold":
		return TypeCargoHold, true
	case "quarters":
		return TypeQuarters, true
	case "medbay":
		return TypeMedbay, true
	case "galley":
		return TypeGalley, true
	case "armory":
		return TypeArmory, true
	case "workshop":
		return TypeWorkshop, true
	case "sensor_suite":
		return TypeSensorSuite, true
	case "chamber":
		return TypeChamber, true
	default:
		return TypeUnassigned, false
	}
}

// IsUnique returns true if at most one room of this type may exist per layout
func (t RoomType) IsUnique() bool {
	switch t {
	case TypeBridge, TypeEngineRoom, TypeJumpDrive, TypeReactor, TypeSensorSuite:
		return true
	default:
		return false
	}
}

// IsSelfClustering returns true if placing this type next to itself is
// desirable (cargo bays and berth blocks group naturally)
func (t RoomType) IsSelfClustering() bool {
	switch t {
	case TypeCargoHold, TypeQuarters, TypeChamber:
		return true
	default:
		return false
	}
}

// IsPropulsion returns true for drive-section types that must never end up
// on the uppermost deck
func (t RoomType) IsPropulsion() bool {
	switch t {
	case TypeEngineRoom, TypeJumpDrive, TypeReactor:
		return true
	default:
		return false
	}
}

// AllRoomTypes returns every assignable room type in declaration order
func AllRoomTypes() []RoomType {
	return []RoomType{
		TypeBridge,
		TypeEngineRoom,
		TypeJumpDrive,
		TypeReactor,
		TypeCargoHold,
		TypeQuarters,
		TypeMedbay,
		TypeGalley,
		TypeArmory,
		TypeWorkshop,
		TypeSensorSuite,
		TypeChamber,
	}
}
