package layout

import (
	"fmt"

	"github.com/lawnchairsociety/deckforge/internal/dice"
	"github.com/lawnchairsociety/deckforge/internal/logger"
	"github.com/lawnchairsociety/deckforge/internal/rng"
)

// retryFactor scales the per-phase attempt budget. Branch placement can
// fail repeatedly on a crowded grid; the budget turns a potential spin
// into an early, logged termination.
const retryFactor = 10

// Generator builds room graphs from a config and a seeded source. All
// random draws go through the one source (directly or via the dice
// roller), so a seed fully determines the output.
type Generator struct {
	cfg        Config
	src        *rng.Source
	roller     *dice.Roller
	nextBranch int
}

// NewGenerator creates a generator for the given config and source. The
// config is validated up front; generation itself cannot fail, it only
// degrades.
func NewGenerator(cfg Config, src *rng.Source) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Generator{
		cfg:    cfg,
		src:    src,
		roller: dice.NewRoller(src),
	}, nil
}

// Generate builds the room graph in phases: main structure first, then
// secondary links. An undersized graph is a valid result; callers decide
// what to do with it after running Validate.
func (g *Generator) Generate() *Graph {
	graph := NewGraph()

	switch g.cfg.Kind {
	case KindShip:
		g.buildDecks(graph)
	default:
		g.buildMainPath(graph)
		g.buildBranches(graph)
	}

	g.addSecondaryLinks(graph)

	logger.Debug("Generated layout",
		"kind", g.cfg.Kind.String(),
		"rooms", graph.RoomCount(),
		"links", graph.LinkCount())
	return graph
}

// buildMainPath grows a biased walk from the grid center until the main
// path quota is met or the walk head runs out of free neighbors.
func (g *Generator) buildMainPath(graph *Graph) {
	target := g.cfg.MainPathRooms()

	head, err := g.placeRoom(graph, g.cfg.Width/2, g.cfg.Height/2, 0)
	if err != nil {
		return
	}

	heading := North
	hasHeading := false
	for graph.RoomCount() < target {
		dir, ok := g.pickDirection(graph, head, heading, hasHeading)
		if !ok {
			logger.Warning("Main path blocked before reaching target",
				"placed", graph.RoomCount(),
				"target", target)
			return
		}

		dx, dy := dir.Delta()
		room, err := g.placeRoom(graph, head.X+dx, head.Y+dy, 0)
		if err != nil {
			return
		}
		if err := graph.AddLink(room.ID, head.ID, LinkDoor); err != nil {
			return
		}

		head = room
		heading = dir
		hasHeading = true
	}
}

// pickDirection chooses the next step for the walk head: keep the current
// heading with probability DirectionalBias when that cell is free,
// otherwise a uniform pick among the free directions.
func (g *Generator) pickDirection(graph *Graph, from *Room, heading Direction, hasHeading bool) (Direction, bool) {
	var free []Direction
	for _, dir := range AllDirections() {
		dx, dy := dir.Delta()
		if g.cellFree(graph, from.X+dx, from.Y+dy) {
			free = append(free, dir)
		}
	}
	if len(free) == 0 {
		return North, false
	}

	if hasHeading {
		for _, dir := range free {
			if dir == heading {
				if g.src.Float64() < g.cfg.DirectionalBias {
					return heading, true
				}
				break
			}
		}
	}

	return free[g.roller.D(len(free))-1], true
}

// buildBranches attaches rooms to random existing rooms until the room
// quota is met or the attempt budget runs out. A room attached to the main
// path starts a new branch; a room attached to a branch continues it. A
// candidate cell is vetoed when it would touch more than one room of the
// branch it is joining, which keeps branches from folding into short
// loops with themselves.
func (g *Generator) buildBranches(graph *Graph) {
	budget := g.cfg.NumRooms * retryFactor

	for attempt := 0; attempt < budget && graph.RoomCount() < g.cfg.NumRooms; attempt++ {
		parents := g.roomsWithFreeNeighbors(graph)
		if len(parents) == 0 {
			break
		}

		parent := parents[g.roller.D(len(parents))-1]
		branch := parent.Branch
		if branch == 0 {
			branch = g.nextBranch + 1
		}

		var cells []Cell
		for _, dir := range AllDirections() {
			dx, dy := dir.Delta()
			x, y := parent.X+dx, parent.Y+dy
			if !g.cellFree(graph, x, y) {
				continue
			}
			if g.sameBranchNeighbors(graph, x, y, branch) > 1 {
				continue
			}
			cells = append(cells, Cell{x, y})
		}
		if len(cells) == 0 {
			continue
		}

		cell := cells[g.roller.D(len(cells))-1]
		room, err := g.placeRoom(graph, cell.X, cell.Y, branch)
		if err != nil {
			continue
		}
		if parent.Branch == 0 {
			g.nextBranch++
		}
		if err := graph.AddLink(room.ID, parent.ID, LinkDoor); err != nil {
			continue
		}
	}

	if graph.RoomCount() < g.cfg.NumRooms {
		logger.Warning("Branching stopped short of room target",
			"placed", graph.RoomCount(),
			"target", g.cfg.NumRooms)
	}
}

// buildDecks lays out the ship variant: one row per deck, grown outward
// from a central spine column. Spine rooms link vertically deck to deck;
// every other room links toward the spine along its row.
func (g *Generator) buildDecks(graph *Graph) {
	spineX := g.cfg.Width / 2
	var prevSpine *Room

	for deck := 0; deck < g.cfg.Decks && graph.RoomCount() < g.cfg.NumRooms; deck++ {
		spine, err := g.placeRoom(graph, spineX, deck, 0)
		if err != nil {
			break
		}
		if prevSpine != nil {
			if err := graph.AddLink(spine.ID, prevSpine.ID, LinkDoor); err != nil {
				break
			}
		}
		prevSpine = spine

		rightOff, leftOff := 1, 1
		for i := 1; i < g.cfg.RoomsPerDeck && graph.RoomCount() < g.cfg.NumRooms; i++ {
			x, ok := g.pickDeckCell(spineX, &rightOff, &leftOff)
			if !ok {
				break
			}

			room, err := g.placeRoom(graph, x, deck, 0)
			if err != nil {
				break
			}

			towardSpine := x - 1
			if x < spineX {
				towardSpine = x + 1
			}
			neighbor := graph.RoomAt(towardSpine, deck)
			if neighbor == nil {
				break
			}
			if err := graph.AddLink(room.ID, neighbor.ID, LinkDoor); err != nil {
				break
			}
		}
	}

	if graph.RoomCount() < g.cfg.NumRooms {
		logger.Warning("Hull filled before reaching room target",
			"placed", graph.RoomCount(),
			"target", g.cfg.NumRooms)
	}
}

// pickDeckCell chooses which side of the spine the next deck room grows
// on, falling back to the other side at the hull edge. Offsets advance
// per side so rows stay contiguous.
func (g *Generator) pickDeckCell(spineX int, rightOff, leftOff *int) (int, bool) {
	right := spineX + *rightOff
	left := spineX - *leftOff
	rightOK := right < g.cfg.Width
	leftOK := left >= 0

	switch {
	case rightOK && leftOK:
		if g.roller.D(2) == 1 {
			*rightOff++
			return right, true
		}
		*leftOff++
		return left, true
	case rightOK:
		*rightOff++
		return right, true
	case leftOK:
		*leftOff++
		return left, true
	default:
		return 0, false
	}
}

// addSecondaryLinks connects a random selection of grid-adjacent room
// pairs that have no direct link yet. The draw for how many comes first so
// the sequence stays stable even when fewer candidates exist.
func (g *Generator) addSecondaryLinks(graph *Graph) {
	target := g.src.IntRange(g.cfg.MinSecondaryLinks, g.cfg.MaxSecondaryLinks)
	if target == 0 {
		return
	}

	type pair struct {
		from, to string
	}
	var candidates []pair
	for _, room := range graph.Rooms() {
		for _, dir := range []Direction{East, South} {
			dx, dy := dir.Delta()
			other := graph.RoomAt(room.X+dx, room.Y+dy)
			if other == nil || graph.Linked(room.ID, other.ID) {
				continue
			}
			candidates = append(candidates, pair{from: room.ID, to: other.ID})
		}
	}

	added := 0
	for added < target && len(candidates) > 0 {
		idx := g.roller.D(len(candidates)) - 1
		c := candidates[idx]
		candidates = append(candidates[:idx], candidates[idx+1:]...)

		if err := graph.AddLink(c.from, c.to, LinkSecondary); err != nil {
			continue
		}
		added++
	}

	if added < g.cfg.MinSecondaryLinks {
		logger.Debug("Fewer secondary links than requested",
			"added", added,
			"requested", target)
	}
}

// placeRoom creates and inserts a room at the given cell. Callers check
// cell freeness first, so an insertion error means the caller's phase is
// out of step with the graph; the phase treats it as a failed attempt.
func (g *Generator) placeRoom(graph *Graph, x, y, branch int) (*Room, error) {
	ordinal := graph.RoomCount() + 1
	stem := "Chamber"
	if g.cfg.Kind == KindShip {
		stem = "Compartment"
	}

	room := &Room{
		ID:     fmt.Sprintf("room_%d", ordinal),
		X:      x,
		Y:      y,
		Name:   fmt.Sprintf("%s %d", stem, ordinal),
		Branch: branch,
	}
	if err := graph.AddRoom(room); err != nil {
		return nil, err
	}
	return room, nil
}

// roomsWithFreeNeighbors returns the rooms that still have at least one
// free adjacent cell, in insertion order.
func (g *Generator) roomsWithFreeNeighbors(graph *Graph) []*Room {
	var result []*Room
	for _, room := range graph.Rooms() {
		for _, dir := range AllDirections() {
			dx, dy := dir.Delta()
			if g.cellFree(graph, room.X+dx, room.Y+dy) {
				result = append(result, room)
				break
			}
		}
	}
	return result
}

// sameBranchNeighbors counts occupied neighbors of a cell that belong to
// the given branch.
func (g *Generator) sameBranchNeighbors(graph *Graph, x, y, branch int) int {
	count := 0
	for _, dir := range AllDirections() {
		dx, dy := dir.Delta()
		if room := graph.RoomAt(x+dx, y+dy); room != nil && room.Branch == branch {
			count++
		}
	}
	return count
}

// cellFree reports whether a cell is inside the grid and unoccupied
func (g *Generator) cellFree(graph *Graph, x, y int) bool {
	if x < 0 || x >= g.cfg.Width || y < 0 || y >= g.cfg.Height {
		return false
	}
	return graph.RoomAt(x, y) == nil
}
