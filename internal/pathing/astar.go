package pathing

import (
	"container/heap"
	"math"

	"github.com/zyedidia/generic/mapset"

	"github.com/lawnchairsociety/deckforge/internal/layout"
)

// Cost model for corridor routing. The search is biased toward long
// straight runs: turning costs far more than a step, continuing straight
// earns a small rebate, and steps are pushed onto whichever axis still has
// the larger offset to the goal. The floor keeps every step cost positive
// so the search terminates. Routes are deliberately not shortest paths.
const (
	baseStepCost   = 1.0
	turnPenalty    = 8.0
	straightBonus  = 0.25
	offAxisPenalty = 2.0
	axisBonusScale = 0.1
	maxAxisBonus   = 2.0
	minStepCost    = 0.05
)

// node is one A* search state. Arrival direction is part of the state
// because the step cost depends on it, but cells close on first pop
// regardless of direction, so the search trades strict optimality for
// speed and straighter results.
type node struct {
	x, y    int
	dx, dy  int // arrival direction, zero for the start node
	g, h, f float64
	parent  *node
}

// nodeQueue implements heap.Interface ordered by f, then h for ties, so
// that of two equally priced nodes the one closer to the goal pops first.
type nodeQueue []*node

func (q nodeQueue) Len() int { return len(q) }
func (q nodeQueue) Less(i, j int) bool {
	if q[i].f != q[j].f {
		return q[i].f < q[j].f
	}
	return q[i].h < q[j].h
}
func (q nodeQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
}
func (q *nodeQueue) Push(x any) {
	*q = append(*q, x.(*node))
}
func (q *nodeQueue) Pop() any {
	old := *q
	n := old[len(old)-1]
	old[len(old)-1] = nil
	*q = old[:len(old)-1]
	return n
}

// steps is the fixed neighbor expansion order
var steps = [4]struct{ dx, dy int }{
	{0, -1},
	{1, 0},
	{0, 1},
	{-1, 0},
}

// FindPath routes between two walkable cells with 4-directional movement
// under the biased cost model. The returned path includes both endpoints.
// An empty path means no route exists; that is a normal outcome, not an
// error. Searching from a cell to itself returns just that cell.
func (gr *Grid) FindPath(start, goal layout.Cell) []layout.Cell {
	if !gr.Walkable(start) || !gr.Walkable(goal) {
		return nil
	}
	if start == goal {
		return []layout.Cell{start}
	}

	open := &nodeQueue{}
	heap.Init(open)
	closed := mapset.New[layout.Cell]()

	h := heuristic(start.X, start.Y, goal.X, goal.Y)
	heap.Push(open, &node{x: start.X, y: start.Y, h: h, f: h})

	for open.Len() > 0 {
		current := heap.Pop(open).(*node)
		cell := layout.Cell{X: current.x, Y: current.y}

		// A cheaper copy of this cell may already have closed it.
		if closed.Has(cell) {
			continue
		}
		closed.Put(cell)

		if cell == goal {
			return reconstruct(current)
		}

		for _, s := range steps {
			next := layout.Cell{X: current.x + s.dx, Y: current.y + s.dy}
			if !gr.Walkable(next) || closed.Has(next) {
				continue
			}

			g := current.g + stepCost(current, s.dx, s.dy, goal)
			nh := heuristic(next.X, next.Y, goal.X, goal.Y)
			heap.Push(open, &node{
				x:      next.X,
				y:      next.Y,
				dx:     s.dx,
				dy:     s.dy,
				g:      g,
				h:      nh,
				f:      g + nh,
				parent: current,
			})
		}
	}

	return nil
}

// stepCost prices a move from the current node in direction (dx, dy).
func stepCost(current *node, dx, dy int, goal layout.Cell) float64 {
	cost := baseStepCost

	if current.dx != 0 || current.dy != 0 {
		if dx == current.dx && dy == current.dy {
			cost -= straightBonus
		} else {
			cost += turnPenalty
		}
	}

	remX := goal.X - current.x
	remY := goal.Y - current.y
	absX := absInt(remX)
	absY := absInt(remY)

	switch {
	case absX > absY:
		if dx == 0 {
			cost += offAxis(absX, absY)
		} else if sameSign(dx, remX) {
			cost -= axisBonus(absX)
		}
	case absY > absX:
		if dy == 0 {
			cost += offAxis(absY, absX)
		} else if sameSign(dy, remY) {
			cost -= axisBonus(absY)
		}
	}

	if cost < minStepCost {
		cost = minStepCost
	}
	return cost
}

// offAxis penalizes leaving the dominant axis, twice as hard when the
// dominant offset clearly outweighs the other.
func offAxis(dominant, other int) float64 {
	if dominant > 2*other {
		return 2 * offAxisPenalty
	}
	return offAxisPenalty
}

// axisBonus rewards progress along the dominant axis, scaled by how much
// offset remains, capped so it can never dwarf the other terms.
func axisBonus(remaining int) float64 {
	b := axisBonusScale * float64(remaining)
	if b > maxAxisBonus {
		return maxAxisBonus
	}
	return b
}

func sameSign(step, remaining int) bool {
	return (step > 0 && remaining > 0) || (step < 0 && remaining < 0)
}

// heuristic is an octile-style distance. It is not a strict lower bound
// once the directional penalties apply, which suits the aesthetic goal:
// fewer expansions and straighter corridors over provably shortest ones.
func heuristic(x, y, gx, gy int) float64 {
	dx := math.Abs(float64(gx - x))
	dy := math.Abs(float64(gy - y))
	shorter := dx
	if dy < shorter {
		shorter = dy
	}
	return dx + dy + (math.Sqrt2-2)*shorter
}

// reconstruct walks parent links back to the start and reverses the result
func reconstruct(n *node) []layout.Cell {
	var path []layout.Cell
	for current := n; current != nil; current = current.parent {
		path = append(path, layout.Cell{X: current.x, Y: current.y})
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
