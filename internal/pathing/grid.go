// Package pathing turns a room graph into a walkability grid and routes
// corridors between linked rooms with a cost-biased A* search.
package pathing

import (
	"github.com/lawnchairsociety/deckforge/internal/layout"
	"github.com/lawnchairsociety/deckforge/internal/logger"
)

// CellKind classifies one grid cell
type CellKind byte

const (
	CellFree     CellKind = iota // Open space, routable
	CellRoom                     // Inside a room footprint
	CellCorridor                 // Stamped by a routed link
)

// Grid is the fine-grained walkability view of a room graph. Every room
// cell expands to a cellSize square block whose inner footprint is solid;
// the margin around each footprint stays free so corridors can route
// between rooms. A cell is walkable while nothing has been stamped on it.
type Grid struct {
	width    int
	height   int
	cellSize int
	margin   int

	// Room-space origin, so graphs with negative coordinates map onto
	// grid indexes starting at zero.
	offsetX int
	offsetY int

	kinds [][]CellKind
}

// NewGrid creates an all-free grid of the given dimensions
func NewGrid(width, height int) *Grid {
	kinds := make([][]CellKind, height)
	for y := range kinds {
		kinds[y] = make([]CellKind, width)
	}
	return &Grid{width: width, height: height, cellSize: 1, margin: 1, kinds: kinds}
}

// FromGraph builds the walkability grid for a graph. The grid covers the
// graph's bounding extent, one cellSize square block per room cell, with
// each room's footprint stamped solid.
func FromGraph(g *layout.Graph, cellSize int) *Grid {
	minX, minY, maxX, maxY := g.Extent()

	grid := NewGrid((maxX-minX+1)*cellSize, (maxY-minY+1)*cellSize)
	grid.cellSize = cellSize
	grid.margin = footprintMargin(cellSize)
	grid.offsetX = minX
	grid.offsetY = minY

	for _, room := range g.Rooms() {
		grid.stampFootprint(room)
	}
	return grid
}

// footprintMargin is the gutter width left around each room footprint,
// a quarter of the cell size but at least one cell.
func footprintMargin(cellSize int) int {
	m := cellSize / 4
	if m < 1 {
		m = 1
	}
	return m
}

// Width returns the grid width in cells
func (gr *Grid) Width() int {
	return gr.width
}

// Height returns the grid height in cells
func (gr *Grid) Height() int {
	return gr.height
}

// CellSize returns the room-to-grid expansion factor
func (gr *Grid) CellSize() int {
	return gr.cellSize
}

// InBounds reports whether the cell lies inside the grid
func (gr *Grid) InBounds(c layout.Cell) bool {
	return c.X >= 0 && c.X < gr.width && c.Y >= 0 && c.Y < gr.height
}

// Walkable reports whether the cell is inside the grid and still free
func (gr *Grid) Walkable(c layout.Cell) bool {
	return gr.InBounds(c) && gr.kinds[c.Y][c.X] == CellFree
}

// KindAt returns the cell's classification; out-of-bounds cells read as free
func (gr *Grid) KindAt(c layout.Cell) CellKind {
	if !gr.InBounds(c) {
		return CellFree
	}
	return gr.kinds[c.Y][c.X]
}

// Block marks a single cell as room space. Out-of-bounds cells are ignored.
func (gr *Grid) Block(c layout.Cell) {
	if gr.InBounds(c) {
		gr.kinds[c.Y][c.X] = CellRoom
	}
}

// StampPath marks a routed corridor as occupied so later routes avoid it
func (gr *Grid) StampPath(cells []layout.Cell) {
	for _, c := range cells {
		if gr.InBounds(c) && gr.kinds[c.Y][c.X] == CellFree {
			gr.kinds[c.Y][c.X] = CellCorridor
		}
	}
}

// stampFootprint fills the room's inner block, leaving the margin free
func (gr *Grid) stampFootprint(room *layout.Room) {
	originX := (room.X - gr.offsetX) * gr.cellSize
	originY := (room.Y - gr.offsetY) * gr.cellSize

	for y := originY + gr.margin; y < originY+gr.cellSize-gr.margin; y++ {
		for x := originX + gr.margin; x < originX+gr.cellSize-gr.margin; x++ {
			gr.kinds[y][x] = CellRoom
		}
	}
}

// DoorCells returns the corridor endpoints for a link between two rooms:
// the free margin cell outside the midpoint of each room's facing
// footprint edge. Returns false when the rooms are not grid-adjacent.
func (gr *Grid) DoorCells(from, to *layout.Room) (layout.Cell, layout.Cell, bool) {
	if from == nil || to == nil {
		return layout.Cell{}, layout.Cell{}, false
	}

	dx := to.X - from.X
	dy := to.Y - from.Y
	if absInt(dx)+absInt(dy) != 1 {
		return layout.Cell{}, layout.Cell{}, false
	}

	return gr.doorCell(from, dx, dy), gr.doorCell(to, -dx, -dy), true
}

// doorCell picks the margin cell just outside the midpoint of the room's
// footprint edge facing direction (dx, dy).
func (gr *Grid) doorCell(room *layout.Room, dx, dy int) layout.Cell {
	originX := (room.X - gr.offsetX) * gr.cellSize
	originY := (room.Y - gr.offsetY) * gr.cellSize
	midX := originX + gr.cellSize/2
	midY := originY + gr.cellSize/2

	switch {
	case dx > 0:
		return layout.Cell{X: originX + gr.cellSize - gr.margin, Y: midY}
	case dx < 0:
		return layout.Cell{X: originX + gr.margin - 1, Y: midY}
	case dy > 0:
		return layout.Cell{X: midX, Y: originY + gr.cellSize - gr.margin}
	default:
		return layout.Cell{X: midX, Y: originY + gr.margin - 1}
	}
}

// Route pairs a link with the ordered grid cells its corridor occupies
type Route struct {
	Link  layout.Link
	Cells []layout.Cell
}

// RouteLinks routes a corridor for every link in the graph, in link order.
// Each successful route is stamped into the grid so later corridors steer
// around it. Links whose endpoints are already buried or whose route is
// blocked come back in the unrouted list; the caller decides whether a
// partially routed layout is acceptable.
func RouteLinks(g *layout.Graph, grid *Grid) ([]Route, []layout.Link) {
	var routes []Route
	var unrouted []layout.Link

	for _, link := range g.Links() {
		start, goal, ok := grid.DoorCells(g.RoomByID(link.From), g.RoomByID(link.To))
		if !ok {
			unrouted = append(unrouted, link)
			continue
		}

		path := grid.FindPath(start, goal)
		if len(path) == 0 {
			unrouted = append(unrouted, link)
			continue
		}

		grid.StampPath(path)
		routes = append(routes, Route{Link: link, Cells: path})
	}

	if len(unrouted) > 0 {
		logger.Warning("Some links could not be routed",
			"routed", len(routes),
			"unrouted", len(unrouted))
	}
	return routes, unrouted
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
