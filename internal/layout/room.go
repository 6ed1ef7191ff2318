// Package layout builds and validates room graphs: the rooms, the doors and
// secondary passages between them, and the grid cells they occupy.
package layout

import (
	"errors"

	"github.com/lawnchairsociety/deckforge/internal/archetype"
)

// LinkKind distinguishes structural doors from extra connectivity
type LinkKind int

const (
	LinkDoor      LinkKind = iota // Primary structural connection
	LinkSecondary                 // Extra passage added for loops
)

// String returns the string representation of a LinkKind
func (k LinkKind) String() string {
	switch k {
	case LinkDoor:
		return "door"
	case LinkSecondary:
		return "secondary"
	default:
		return "unknown"
	}
}

// Cell identifies a single grid position
type Cell struct {
	X, Y int
}

// Room is one node of the layout graph. Type stays TypeUnassigned until the
// placement pass runs. Branch records which generation branch placed the
// room; the main path is branch 0.
type Room struct {
	ID     string
	X, Y   int
	Type   archetype.RoomType
	Name   string
	Branch int
}

// Cell returns the grid cell the room occupies
func (r *Room) Cell() Cell {
	return Cell{r.X, r.Y}
}

// Link is an edge between two rooms, identified by their ids.
type Link struct {
	From string
	To   string
	Kind LinkKind
}

var (
	// ErrDuplicateRoom indicates a room id was added twice.
	ErrDuplicateRoom = errors.New("room id already exists")
	// ErrCellOccupied indicates two rooms would share a grid cell.
	ErrCellOccupied = errors.New("grid cell already occupied")
	// ErrRoomNotFound indicates a link referenced an unknown room id.
	ErrRoomNotFound = errors.New("link references an unknown room")
	// ErrNotAdjacent indicates a link between rooms that are not exactly one
	// grid unit apart.
	ErrNotAdjacent = errors.New("linked rooms are not grid-adjacent")
	// ErrAlreadyLinked indicates a second direct link between the same pair.
	ErrAlreadyLinked = errors.New("rooms are already directly linked")
)

// Graph holds the rooms and links of one layout. Rooms and links are kept
// in insertion order so that every consumer iterates deterministically;
// the maps are lookup indexes only.
type Graph struct {
	rooms     []*Room
	links     []Link
	byID      map[string]*Room
	byCell    map[Cell]*Room
	neighbors map[string][]*Room
	linked    map[linkPair]bool
}

// linkPair is the order-normalized key for a directly linked room pair.
type linkPair struct {
	a, b string
}

func pairOf(a, b string) linkPair {
	if b < a {
		a, b = b, a
	}
	return linkPair{a: a, b: b}
}

// NewGraph creates an empty layout graph
func NewGraph() *Graph {
	return &Graph{
		byID:      make(map[string]*Room),
		byCell:    make(map[Cell]*Room),
		neighbors: make(map[string][]*Room),
		linked:    make(map[linkPair]bool),
	}
}

// AddRoom inserts a room into the graph. The id must be unused and the
// room's cell must be free.
func (g *Graph) AddRoom(room *Room) error {
	if _, exists := g.byID[room.ID]; exists {
		return ErrDuplicateRoom
	}
	if _, occupied := g.byCell[room.Cell()]; occupied {
		return ErrCellOccupied
	}

	g.rooms = append(g.rooms, room)
	g.byID[room.ID] = room
	g.byCell[room.Cell()] = room
	return nil
}

// AddLink inserts a link between two existing rooms. The rooms must occupy
// cells exactly one unit apart on one axis, and the pair must not already
// be directly linked.
func (g *Graph) AddLink(fromID, toID string, kind LinkKind) error {
	from, ok := g.byID[fromID]
	if !ok {
		return ErrRoomNotFound
	}
	to, ok := g.byID[toID]
	if !ok {
		return ErrRoomNotFound
	}

	dx := abs(from.X - to.X)
	dy := abs(from.Y - to.Y)
	if dx+dy != 1 {
		return ErrNotAdjacent
	}

	pair := pairOf(fromID, toID)
	if g.linked[pair] {
		return ErrAlreadyLinked
	}

	g.links = append(g.links, Link{From: fromID, To: toID, Kind: kind})
	g.linked[pair] = true
	g.neighbors[fromID] = append(g.neighbors[fromID], to)
	g.neighbors[toID] = append(g.neighbors[toID], from)
	return nil
}

// RoomByID returns the room with the given id, or nil
func (g *Graph) RoomByID(id string) *Room {
	return g.byID[id]
}

// RoomAt returns the room occupying the given cell, or nil
func (g *Graph) RoomAt(x, y int) *Room {
	return g.byCell[Cell{x, y}]
}

// Rooms returns all rooms in insertion order
func (g *Graph) Rooms() []*Room {
	return g.rooms
}

// Links returns all links in insertion order
func (g *Graph) Links() []Link {
	return g.links
}

// RoomCount returns the number of rooms
func (g *Graph) RoomCount() int {
	return len(g.rooms)
}

// LinkCount returns the number of links
func (g *Graph) LinkCount() int {
	return len(g.links)
}

// Linked reports whether two rooms share a direct link in either direction
func (g *Graph) Linked(aID, bID string) bool {
	return g.linked[pairOf(aID, bID)]
}

// Neighbors returns the rooms directly linked to the given room, in link
// insertion order.
func (g *Graph) Neighbors(id string) []*Room {
	return g.neighbors[id]
}

// Extent returns the bounding rectangle of all room cells. An empty graph
// reports all zeros.
func (g *Graph) Extent() (minX, minY, maxX, maxY int) {
	if len(g.rooms) == 0 {
		return 0, 0, 0, 0
	}
	first := g.rooms[0]
	minX, minY, maxX, maxY = first.X, first.Y, first.X, first.Y
	for _, room := range g.rooms[1:] {
		if room.X < minX {
			minX = room.X
		}
		if room.X > maxX {
			maxX = room.X
		}
		if room.Y < minY {
			minY = room.Y
		}
		if room.Y > maxY {
			maxY = room.Y
		}
	}
	return minX, minY, maxX, maxY
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
