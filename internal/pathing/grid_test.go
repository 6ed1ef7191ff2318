package pathing

import (
	"testing"

	"github.com/lawnchairsociety/deckforge/internal/layout"
)

// buildLinkedRooms returns a graph with rooms at the given cells, each
// room linked to the previous one.
func buildLinkedRooms(t *testing.T, cells []layout.Cell) *layout.Graph {
	t.Helper()

	g := layout.NewGraph()
	ids := []string{"a", "b", "c", "d"}
	for i, cell := range cells {
		room := &layout.Room{ID: ids[i], X: cell.X, Y: cell.Y, Name: ids[i]}
		if err := g.AddRoom(room); err != nil {
			t.Fatalf("AddRoom(%s): %v", ids[i], err)
		}
		if i > 0 {
			if err := g.AddLink(ids[i-1], ids[i], layout.LinkDoor); err != nil {
				t.Fatalf("AddLink(%s, %s): %v", ids[i-1], ids[i], err)
			}
		}
	}
	return g
}

func TestFromGraphFootprintsAndGutters(t *testing.T) {
	g := buildLinkedRooms(t, []layout.Cell{{X: 0, Y: 0}, {X: 1, Y: 0}})

	gr := FromGraph(g, 6)

	if gr.Width() != 12 || gr.Height() != 6 {
		t.Fatalf("grid is %dx%d, want 12x6", gr.Width(), gr.Height())
	}

	// cellSize 6 gives a margin of 1: the footprint of room a covers
	// columns 1-4 and rows 1-4, the outer ring stays free.
	footprint := []layout.Cell{{X: 1, Y: 1}, {X: 4, Y: 4}, {X: 2, Y: 2}}
	for _, c := range footprint {
		if gr.KindAt(c) != CellRoom {
			t.Errorf("cell %v kind = %v, want room", c, gr.KindAt(c))
		}
	}

	gutters := []layout.Cell{{X: 0, Y: 0}, {X: 5, Y: 3}, {X: 6, Y: 3}, {X: 11, Y: 5}}
	for _, c := range gutters {
		if !gr.Walkable(c) {
			t.Errorf("gutter cell %v is not walkable", c)
		}
	}
}

func TestFromGraphNormalizesNegativeCoordinates(t *testing.T) {
	// A dungeon walk can wander into negative room coordinates; the grid
	// must shift them back to index zero.
	g := buildLinkedRooms(t, []layout.Cell{{X: -1, Y: 2}, {X: 0, Y: 2}})

	gr := FromGraph(g, 6)

	if gr.Width() != 12 || gr.Height() != 6 {
		t.Fatalf("grid is %dx%d, want 12x6", gr.Width(), gr.Height())
	}
	if gr.KindAt(layout.Cell{X: 2, Y: 2}) != CellRoom {
		t.Errorf("room at negative coordinates did not map to the grid origin")
	}

	start, goal, ok := gr.DoorCells(g.RoomByID("a"), g.RoomByID("b"))
	if !ok {
		t.Fatal("DoorCells reported non-adjacent rooms")
	}
	if (start != layout.Cell{X: 5, Y: 3}) || (goal != layout.Cell{X: 6, Y: 3}) {
		t.Errorf("door cells = %v, %v, want {5 3}, {6 3}", start, goal)
	}
}

func TestDoorCells(t *testing.T) {
	horizontal := buildLinkedRooms(t, []layout.Cell{{X: 0, Y: 0}, {X: 1, Y: 0}})
	vertical := buildLinkedRooms(t, []layout.Cell{{X: 0, Y: 0}, {X: 0, Y: 1}})

	hGrid := FromGraph(horizontal, 6)
	start, goal, ok := hGrid.DoorCells(horizontal.RoomByID("a"), horizontal.RoomByID("b"))
	if !ok {
		t.Fatal("horizontal DoorCells reported non-adjacent rooms")
	}
	if (start != layout.Cell{X: 5, Y: 3}) || (goal != layout.Cell{X: 6, Y: 3}) {
		t.Errorf("horizontal doors = %v, %v, want {5 3}, {6 3}", start, goal)
	}

	// Swapping the rooms swaps the endpoints.
	rStart, rGoal, _ := hGrid.DoorCells(horizontal.RoomByID("b"), horizontal.RoomByID("a"))
	if rStart != goal || rGoal != start {
		t.Errorf("reversed doors = %v, %v, want %v, %v", rStart, rGoal, goal, start)
	}

	vGrid := FromGraph(vertical, 6)
	start, goal, ok = vGrid.DoorCells(vertical.RoomByID("a"), vertical.RoomByID("b"))
	if !ok {
		t.Fatal("vertical DoorCells reported non-adjacent rooms")
	}
	if (start != layout.Cell{X: 3, Y: 5}) || (goal != layout.Cell{X: 3, Y: 6}) {
		t.Errorf("vertical doors = %v, %v, want {3 5}, {3 6}", start, goal)
	}

	if !hGrid.Walkable(layout.Cell{X: 5, Y: 3}) || !hGrid.Walkable(layout.Cell{X: 6, Y: 3}) {
		t.Error("door cells must sit in the walkable gutter")
	}
}

func TestDoorCellsRejectNonAdjacentRooms(t *testing.T) {
	g := layout.NewGraph()
	a := &layout.Room{ID: "a", X: 0, Y: 0}
	b := &layout.Room{ID: "b", X: 2, Y: 0}
	if err := g.AddRoom(a); err != nil {
		t.Fatalf("AddRoom(a): %v", err)
	}
	if err := g.AddRoom(b); err != nil {
		t.Fatalf("AddRoom(b): %v", err)
	}

	gr := FromGraph(g, 6)
	if _, _, ok := gr.DoorCells(a, b); ok {
		t.Error("DoorCells accepted rooms two cells apart")
	}
	if _, _, ok := gr.DoorCells(a, nil); ok {
		t.Error("DoorCells accepted a nil room")
	}
}

func TestStampPathMarksCorridors(t *testing.T) {
	gr := NewGrid(6, 6)
	corridor := []layout.Cell{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}

	gr.StampPath(corridor)

	for _, c := range corridor {
		if gr.Walkable(c) {
			t.Errorf("stamped cell %v still walkable", c)
		}
		if gr.KindAt(c) != CellCorridor {
			t.Errorf("stamped cell %v kind = %v, want corridor", c, gr.KindAt(c))
		}
	}

	// Stamping must not overwrite room footprints.
	room := layout.Cell{X: 4, Y: 4}
	gr.Block(room)
	gr.StampPath([]layout.Cell{room})
	if gr.KindAt(room) != CellRoom {
		t.Errorf("stamp overwrote a room cell, kind = %v", gr.KindAt(room))
	}
}

func TestRouteLinksRoutesAdjacentRooms(t *testing.T) {
	g := buildLinkedRooms(t, []layout.Cell{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}})
	gr := FromGraph(g, 6)

	routes, unrouted := RouteLinks(g, gr)

	if len(unrouted) != 0 {
		t.Fatalf("%d links unrouted, want 0", len(unrouted))
	}
	if len(routes) != 2 {
		t.Fatalf("%d routes, want 2", len(routes))
	}

	// Facing doors sit in adjacent gutter cells, so each corridor is the
	// two-cell hop between them.
	for _, route := range routes {
		if len(route.Cells) != 2 {
			t.Errorf("link %s-%s corridor has %d cells, want 2", route.Link.From, route.Link.To, len(route.Cells))
		}
		for _, c := range route.Cells {
			if gr.KindAt(c) != CellCorridor {
				t.Errorf("corridor cell %v not stamped", c)
			}
		}
	}
}

func TestRouteLinksReportsBlockedLinks(t *testing.T) {
	g := buildLinkedRooms(t, []layout.Cell{{X: 0, Y: 0}, {X: 1, Y: 0}})
	gr := FromGraph(g, 6)

	// Bury both door cells before routing.
	gr.Block(layout.Cell{X: 5, Y: 3})
	gr.Block(layout.Cell{X: 6, Y: 3})

	routes, unrouted := RouteLinks(g, gr)

	if len(routes) != 0 {
		t.Errorf("%d routes, want 0", len(routes))
	}
	if len(unrouted) != 1 {
		t.Fatalf("%d links unrouted, want 1", len(unrouted))
	}
	if unrouted[0].From != "a" || unrouted[0].To != "b" {
		t.Errorf("unrouted link = %s-%s, want a-b", unrouted[0].From, unrouted[0].To)
	}
}

func TestLaterPathsAvoidStampedCorridors(t *testing.T) {
	g := buildLinkedRooms(t, []layout.Cell{{X: 0, Y: 0}, {X: 1, Y: 0}})
	gr := FromGraph(g, 6)

	routes, unrouted := RouteLinks(g, gr)
	if len(unrouted) != 0 || len(routes) != 1 {
		t.Fatalf("routes = %d, unrouted = %d, want 1 and 0", len(routes), len(unrouted))
	}

	// The corridor crosses the gutter between the two rooms at row 3. A
	// later route down that gutter has to detour around it.
	start := layout.Cell{X: 5, Y: 0}
	goal := layout.Cell{X: 5, Y: 5}
	path := gr.FindPath(start, goal)

	assertValidPath(t, gr, path, start, goal)
	for _, c := range path {
		for _, stamped := range routes[0].Cells {
			if c == stamped {
				t.Errorf("path reuses stamped corridor cell %v", c)
			}
		}
	}
}
