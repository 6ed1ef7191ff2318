package layout

import "github.com/zyedidia/generic/mapset"

// ValidationResult reports graph reachability. Connected is true when a
// traversal from the first room reaches every room.
type ValidationResult struct {
	Connected bool
	Reachable int
	Total     int
}

// Validate walks the graph from the first room, following links in either
// direction, and counts the distinct rooms reached. It uses an explicit
// stack rather than recursion so pathological graphs cannot blow the call
// stack. Diagnostic only: it never repairs anything.
func Validate(g *Graph) ValidationResult {
	total := g.RoomCount()
	if total == 0 {
		return ValidationResult{Connected: true}
	}

	visited := mapset.New[string]()
	stack := []string{g.Rooms()[0].ID}

	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if visited.Has(id) {
			continue
		}
		visited.Put(id)

		for _, neighbor := range g.Neighbors(id) {
			if !visited.Has(neighbor.ID) {
				stack = append(stack, neighbor.ID)
			}
		}
	}

	return ValidationResult{
		Connected: visited.Size() == total,
		Reachable: visited.Size(),
		Total:     total,
	}
}
