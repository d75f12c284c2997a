package core

import "fmt"

// Coordinate represents a (column, row) position on the game board
type Coordinate struct {
	X, Y int
}

// NewCoordinate creates a new coordinate with the given column and row
func NewCoordinate(x, y int) Coordinate {
	return Coordinate{X: x, Y: y}
}

// FromIndex creates a coordinate from a board array index using row-major ordering
func FromIndex(idx, width int) Coordinate {
	return Coordinate{
		X: idx % width,
		Y: idx / width,
	}
}

// IsValid checks if the coordinate is within the given bounds
func (c Coordinate) IsValid(width, height int) bool {
	return c.X >= 0 && c.X < width && c.Y >= 0 && c.Y < height
}

// ToIndex converts the coordinate to a board array index using row-major ordering
func (c Coordinate) ToIndex(width int) int {
	return c.Y*width + c.X
}

// Add returns a new coordinate that is the sum of this coordinate and another
func (c Coordinate) Add(other Coordinate) Coordinate {
	return Coordinate{
		X: c.X + other.X,
		Y: c.Y + other.Y,
	}
}

// Equal checks if two coordinates are equal
func (c Coordinate) Equal(other Coordinate) bool {
	return c.X == other.X && c.Y == other.Y
}

// String returns a string representation of the coordinate
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Direction is one of the six hex directions, numbered clockwise from north.
type Direction int

const (
	North Direction = iota
	NorthEast
	SouthEast
	South
	SouthWest
	NorthWest
)

// NumDirections is the number of neighbours a hex tile can have.
const NumDirections = 6

// Opposite returns the direction pointing back the way d came.
func (d Direction) Opposite() Direction {
	return (d + 3) % NumDirections
}

func (d Direction) String() string {
	switch d {
	case North:
		return "N"
	case NorthEast:
		return "NE"
	case SouthEast:
		return "SE"
	case South:
		return "S"
	case SouthWest:
		return "SW"
	case NorthWest:
		return "NW"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Flat-top hexes in offset columns: odd columns sit half a row higher than
// even ones, so the diagonal offsets depend on column parity.
var (
	evenColumnOffsets = [NumDirections]Coordinate{
		North:     {X: 0, Y: -1},
		NorthEast: {X: 1, Y: 0},
		SouthEast: {X: 1, Y: 1},
		South:     {X: 0, Y: 1},
		SouthWest: {X: -1, Y: 1},
		NorthWest: {X: -1, Y: 0},
	}
	oddColumnOffsets = [NumDirections]Coordinate{
		North:     {X: 0, Y: -1},
		NorthEast: {X: 1, Y: -1},
		SouthEast: {X: 1, Y: 0},
		South:     {X: 0, Y: 1},
		SouthWest: {X: -1, Y: 0},
		NorthWest: {X: -1, Y: -1},
	}
)

// Move returns the coordinate one step away in the given direction. The
// result may lie outside the board.
func (c Coordinate) Move(d Direction) Coordinate {
	if d < 0 || d >= NumDirections {
		return c
	}
	if c.X%2 == 0 {
		return c.Add(evenColumnOffsets[d])
	}
	return c.Add(oddColumnOffsets[d])
}

// Neighbor is an optional neighbouring coordinate.
type Neighbor struct {
	Coordinate
	Valid bool
}

// NeighborCoordinates returns the six neighbours of c in clockwise order
// starting north. Neighbours outside a width x height board are marked invalid.
func NeighborCoordinates(c Coordinate, width, height int) [NumDirections]Neighbor {
	var out [NumDirections]Neighbor
	for d := Direction(0); d < NumDirections; d++ {
		n := c.Move(d)
		out[d] = Neighbor{Coordinate: n, Valid: n.IsValid(width, height)}
	}
	return out
}

// DirectionTo returns the direction from c to an adjacent coordinate, or -1
// if the two are not hex neighbours.
func (c Coordinate) DirectionTo(other Coordinate) Direction {
	for d := Direction(0); d < NumDirections; d++ {
		if c.Move(d).Equal(other) {
			return d
		}
	}
	return -1
}
