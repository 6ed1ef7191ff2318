package archetype

import "testing"

func TestRoomTypeString(t *testing.T) {
	tests := []struct {
		rt   RoomType
		want string
	}{
		{TypeUnassigned, "unassigned"},
		{TypeBridge, "bridge"},
		{TypeEngineRoom, "engine_room"},
		{TypeJumpDrive, "jump_drive"},
		{TypeReactor, "reactor"},
		{TypeCargoHold, "cargo_hold"},
		{TypeQuarters, "quarters"},
		{TypeMedbay, "medbay"},
		{TypeGalley, "galley"},
		{TypeArmory, "armory"},
		{TypeWorkshop, "workshop"},
		{TypeSensorSuite, "sensor_suite"},
		{TypeChamber, "chamber"},
	}

	for _, tt := range tests {
		if got := tt.rt.String(); got != tt.want {
			t.Errorf("RoomType(%d).String() = %q, want %q", tt.rt, got, tt.want)
		}
	}
}

func TestParseRoomTypeRoundTrip(t *testing.T) {
	for _, rt := range AllRoomTypes() {
		got, ok := ParseRoomType(rt.String())
		if !ok || got != rt {
			t.Errorf("ParseRoomType(%q) = (%v, %v), want (%v, true)", rt.String(), got, ok, rt)
		}
	}

	if _, ok := ParseRoomType("holodeck"); ok {
		t.Error("ParseRoomType accepted an unknown type name")
	}
}

func TestRoomTypeFlags(t *testing.T) {
	if !TypeBridge.IsUnique() {
		t.Error("Bridge should be unique")
	}
	if TypeCargoHold.IsUnique() {
		t.Error("Cargo hold should not be unique")
	}
	if !TypeReactor.IsPropulsion() {
		t.Error("Reactor should be propulsion class")
	}
	if TypeBridge.IsPropulsion() {
		t.Error("Bridge should not be propulsion class")
	}
	if !TypeQuarters.IsSelfClustering() {
		t.Error("Quarters should self-cluster")
	}
	if TypeBridge.IsSelfClustering() {
		t.Error("Bridge should not self-cluster")
	}
}

func TestPropulsionTypesAreUnique(t *testing.T) {
	// The drive section is one of everything; sampling relies on that.
	for _, rt := range AllRoomTypes() {
		if rt.IsPropulsion() && !rt.IsUnique() {
			t.Errorf("%v is propulsion class but not unique", rt)
		}
	}
}
