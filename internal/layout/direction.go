package layout

// Direction represents a cardinal direction in the grid
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// String returns the string representation of a Direction
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	default:
		return "unknown"
	}
}

// Opposite returns the opposite direction
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case East:
		return West
	case South:
		return North
	case West:
		return East
	default:
		return d
	}
}

// Delta returns the grid offset for a direction. Y grows downward, so
// North is toward deck 0.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	case West:
		return -1, 0
	default:
		return 0, 0
	}
}

// AllDirections returns all four cardinal directions
func AllDirections() []Direction {
	return []Direction{North, East, South, West}
}
