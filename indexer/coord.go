package indexer

// Direction is one of the four orthogonal grid directions.
type Direction uint8

const (
	// Up decreases Y.
	Up Direction = iota
	// Right increases X.
	Right
	// Down increases Y.
	Down
	// Left decreases X.
	Left

	// NumDirections is the number of orthogonal directions.
	NumDirections = 4
)

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	return (d + 2) % NumDirections
}

// String returns a single-letter name: U, R, D or L.
func (d Direction) String() string {
	switch d {
	case Up:
		return "U"
	case Right:
		return "R"
	case Down:
		return "D"
	case Left:
		return "L"
	default:
		return "?"
	}
}

// Coord is a non-negative 2D grid coordinate. X grows rightward, Y grows
// downward (row-major screen convention).
type Coord struct {
	X, Y int
}

// C is shorthand for Coord{X: x, Y: y}.
func C(x, y int) Coord { return Coord{X: x, Y: y} }

// CoordIndexer maps every coordinate of a Width×Height grid onto the
// dense range 0..Width*Height in row-major order.
type CoordIndexer struct {
	Width, Height int
}

// NewCoordIndexer returns a CoordIndexer for a width×height grid.
func NewCoordIndexer(width, height int) CoordIndexer {
	return CoordIndexer{Width: width, Height: height}
}

// Len returns Width*Height.
func (ci CoordIndexer) Len() int { return ci.Width * ci.Height }

// IndexOf returns the row-major slot of c.
func (ci CoordIndexer) IndexOf(c Coord) int { return c.Y*ci.Width + c.X }

// KeyAt returns the coordinate stored at slot i.
func (ci CoordIndexer) KeyAt(i int) Coord {
	return Coord{X: i % ci.Width, Y: i / ci.Width}
}

// Contains reports whether c lies within the grid bounds.
func (ci CoordIndexer) Contains(c Coord) bool {
	return c.X >= 0 && c.X < ci.Width && c.Y >= 0 && c.Y < ci.Height
}

// Step returns the coordinate one step from c in direction d and true,
// or the zero Coord and false when the step would leave the grid.
func (ci CoordIndexer) Step(c Coord, d Direction) (Coord, bool) {
	switch d {
	case Up:
		if c.Y > 0 {
			return Coord{X: c.X, Y: c.Y - 1}, true
		}
	case Right:
		if c.X+1 < ci.Width {
			return Coord{X: c.X + 1, Y: c.Y}, true
		}
	case Down:
		if c.Y+1 < ci.Height {
			return Coord{X: c.X, Y: c.Y + 1}, true
		}
	case Left:
		if c.X > 0 {
			return Coord{X: c.X - 1, Y: c.Y}, true
		}
	}

	return Coord{}, false
}

// DirectedCoord is a coordinate paired with a heading, the usual state
// shape for turn-cost path problems.
type DirectedCoord struct {
	Coord Coord
	Dir   Direction
}

// DirectedCoordIndexer maps DirectedCoord onto 0..Width*Height*4,
// coordinate-major (all four headings of a cell are adjacent slots).
type DirectedCoordIndexer struct {
	CoordIndexer
}

// NewDirectedCoordIndexer returns a DirectedCoordIndexer for a
// width×height grid.
func NewDirectedCoordIndexer(width, height int) DirectedCoordIndexer {
	return DirectedCoordIndexer{CoordIndexer: NewCoordIndexer(width, height)}
}

// Len returns Width*Height*4.
func (di DirectedCoordIndexer) Len() int { return di.CoordIndexer.Len() * NumDirections }

// IndexOf returns the slot of dc.
func (di DirectedCoordIndexer) IndexOf(dc DirectedCoord) int {
	return di.CoordIndexer.IndexOf(dc.Coord)*NumDirections + int(dc.Dir)
}

// KeyAt returns the DirectedCoord stored at slot i.
func (di DirectedCoordIndexer) KeyAt(i int) DirectedCoord {
	return DirectedCoord{
		Coord: di.CoordIndexer.KeyAt(i / NumDirections),
		Dir:   Direction(i % NumDirections),
	}
}
