package main

import (
	"fmt"
	"strings"

	"github.com/lawnchairsociety/deckforge/internal/archetype"
	"github.com/lawnchairsociety/deckforge/internal/layout"
	"github.com/lawnchairsociety/deckforge/internal/pathing"
)

// roomSymbol maps a room type to the single character drawn in the map cell
func roomSymbol(t archetype.RoomType) string {
	switch t {
	case archetype.TypeBridge:
		return "B"
	case archetype.TypeEngineRoom:
		return "E"
	case archetype.TypeJumpDrive:
		return "J"
	case archetype.TypeReactor:
		return "R"
	case archetype.TypeCargoHold:
		return "C"
	case archetype.TypeQuarters:
		return "Q"
	case archetype.TypeMedbay:
		return "M"
	case archetype.TypeGalley:
		return "G"
	case archetype.TypeArmory:
		return "A"
	case archetype.TypeWorkshop:
		return "W"
	case archetype.TypeSensorSuite:
		return "S"
	case archetype.TypeChamber:
		return "#"
	default:
		return "?"
	}
}

// linkedAt reports whether room has a direct link to the room one cell away
// in the given direction, if any room is there at all.
func linkedAt(g *layout.Graph, room *layout.Room, dx, dy int) bool {
	neighbor := g.RoomAt(room.X+dx, room.Y+dy)
	if neighbor == nil {
		return false
	}
	return g.Linked(room.ID, neighbor.ID)
}

// renderLayout draws the room graph as an ASCII map with a legend and a
// room listing. Each room renders as [X] with dashes and bars marking the
// links to its grid neighbors.
func renderLayout(g *layout.Graph) string {
	var sb strings.Builder

	minX, minY, maxX, maxY := g.Extent()

	sb.WriteString("=== Layout Map ===\n\n")

	for y := minY; y <= maxY; y++ {
		// Connection row: bars for links to the row above
		var topRow strings.Builder
		var midRow strings.Builder
		for x := minX; x <= maxX; x++ {
			room := g.RoomAt(x, y)
			if room == nil {
				topRow.WriteString("     ")
				midRow.WriteString("     ")
				continue
			}

			if linkedAt(g, room, 0, -1) {
				topRow.WriteString("  |  ")
			} else {
				topRow.WriteString("     ")
			}

			if linkedAt(g, room, -1, 0) {
				midRow.WriteString("-")
			} else {
				midRow.WriteString(" ")
			}
			midRow.WriteString("[" + roomSymbol(room.Type) + "]")
			if linkedAt(g, room, 1, 0) {
				midRow.WriteString("-")
			} else {
				midRow.WriteString(" ")
			}
		}
		if y > minY {
			sb.WriteString(topRow.String())
			sb.WriteString("\n")
		}
		sb.WriteString(midRow.String())
		sb.WriteString("\n")
	}

	sb.WriteString("\nLegend:\n")
	seen := make(map[archetype.RoomType]bool)
	for _, room := range g.Rooms() {
		seen[room.Type] = true
	}
	for _, t := range archetype.AllRoomTypes() {
		if seen[t] {
			fmt.Fprintf(&sb, "  [%s] %s\n", roomSymbol(t), t.DisplayName())
		}
	}
	if seen[archetype.TypeUnassigned] {
		sb.WriteString("  [?] Unassigned\n")
	}

	sb.WriteString("\nRooms:\n")
	for _, room := range g.Rooms() {
		fmt.Fprintf(&sb, "  [%s] %-16s (%d,%d)  branch %d\n",
			roomSymbol(room.Type), room.Name, room.X, room.Y, room.Branch)
	}

	return sb.String()
}

// renderGrid draws the tile grid used for corridor routing. Room footprints
// render as '#', carved corridors as '+', open tiles as '.'.
func renderGrid(grid *pathing.Grid) string {
	var sb strings.Builder

	sb.WriteString("=== Tile Grid ===\n\n")
	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			switch grid.KindAt(layout.Cell{X: x, Y: y}) {
			case pathing.CellRoom:
				sb.WriteString("#")
			case pathing.CellCorridor:
				sb.WriteString("+")
			default:
				sb.WriteString(".")
			}
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n  # room   + corridor   . open\n")

	return sb.String()
}
