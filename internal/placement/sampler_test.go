package placement

import (
	"testing"

	"github.com/lawnchairsociety/deckforge/internal/archetype"
	"github.com/lawnchairsociety/deckforge/internal/rng"
)

func countType(types []archetype.RoomType, t archetype.RoomType) int {
	n := 0
	for _, candidate := range types {
		if candidate == t {
			n++
		}
	}
	return n
}

func TestSampleTypesExactCount(t *testing.T) {
	arch := archetype.Get("default")

	for _, seed := range []int64{1, 7, 42, 99, 1234} {
		for _, count := range []int{1, 2, 3, 5, 8, 12, 20} {
			src := rng.New(seed)
			got := SampleTypes(src, arch, count, arch.Guaranteed)
			if len(got) != count {
				t.Fatalf("seed %d count %d: got %d types", seed, count, len(got))
			}
			for i, rt := range got {
				if rt == archetype.TypeUnassigned {
					t.Errorf("seed %d count %d: slot %d is unassigned", seed, count, i)
				}
			}
		}
	}
}

func TestSampleTypesSeedsGuaranteedFirst(t *testing.T) {
	arch := archetype.Get("default")
	src := rng.New(7)

	got := SampleTypes(src, arch, 6, arch.Guaranteed)

	if got[0] != archetype.TypeBridge || got[1] != archetype.TypeEngineRoom {
		t.Errorf("guaranteed types not seeded first: %v", got[:2])
	}
}

func TestSampleTypesDeduplicatesGuaranteed(t *testing.T) {
	arch := archetype.Get("default")
	guaranteed := []archetype.RoomType{
		archetype.TypeBridge,
		archetype.TypeBridge,
		archetype.TypeEngineRoom,
	}

	got := SampleTypes(rng.New(11), arch, 3, guaranteed)

	if len(got) != 3 {
		t.Fatalf("got %d types, want 3", len(got))
	}
	if n := countType(got, archetype.TypeBridge); n != 1 {
		t.Errorf("bridge appears %d times, want 1", n)
	}
	if n := countType(got, archetype.TypeEngineRoom); n != 1 {
		t.Errorf("engine room appears %d times, want 1", n)
	}
}

func TestSampleTypesTruncatesGuaranteedOverflow(t *testing.T) {
	arch := archetype.Get("default")
	guaranteed := []archetype.RoomType{
		archetype.TypeBridge,
		archetype.TypeEngineRoom,
		archetype.TypeSensorSuite,
		archetype.TypeReactor,
		archetype.TypeJumpDrive,
	}

	got := SampleTypes(rng.New(3), arch, 3, guaranteed)

	want := guaranteed[:3]
	if len(got) != 3 {
		t.Fatalf("got %d types, want 3", len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("slot %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestSampleTypesUniquesNeverRepeat(t *testing.T) {
	for _, name := range []string{"default", "freighter", "raider", "explorer"} {
		arch := archetype.Get(name)
		for _, seed := range []int64{2, 19, 42, 250, 8080} {
			src := rng.New(seed)
			got := SampleTypes(src, arch, 24, arch.Guaranteed)

			for _, rt := range archetype.AllRoomTypes() {
				if !rt.IsUnique() {
					continue
				}
				if n := countType(got, rt); n > 1 {
					t.Errorf("%s seed %d: unique type %v drawn %d times", name, seed, rt, n)
				}
			}
		}
	}
}

func TestSampleTypesAllUniqueTableFallsBack(t *testing.T) {
	arch := &archetype.Archetype{
		Name: "uniques-only",
		Weights: []archetype.TypeWeight{
			{Type: archetype.TypeBridge, Weight: 5},
			{Type: archetype.TypeReactor, Weight: 5},
		},
	}

	got := SampleTypes(rng.New(5), arch, 6, nil)

	if len(got) != 6 {
		t.Fatalf("got %d types, want 6", len(got))
	}
	if n := countType(got, archetype.TypeBridge); n > 1 {
		t.Errorf("bridge drawn %d times, want at most 1", n)
	}
	if n := countType(got, archetype.TypeReactor); n > 1 {
		t.Errorf("reactor drawn %d times, want at most 1", n)
	}
	// Once both uniques are taken every draw collides, so the remaining
	// slots must fall back to the generic chamber.
	if n := countType(got, archetype.TypeChamber); n < 4 {
		t.Errorf("chamber fills %d slots, want at least 4", n)
	}
}

func TestSampleTypesZeroCount(t *testing.T) {
	arch := archetype.Get("default")

	if got := SampleTypes(rng.New(1), arch, 0, arch.Guaranteed); len(got) != 0 {
		t.Errorf("count 0 returned %d types", len(got))
	}
}

func TestSampleTypesDeterministic(t *testing.T) {
	arch := archetype.Get("freighter")

	first := SampleTypes(rng.New(42), arch, 10, arch.Guaranteed)
	second := SampleTypes(rng.New(42), arch, 10, arch.Guaranteed)

	if len(first) != len(second) {
		t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("slot %d differs: %v vs %v", i, first[i], second[i])
		}
	}
}
