package core

// ColumnStep is the number of terminal columns between horizontally adjacent
// cells. Terminal cells are roughly twice as tall as they are wide, so moving
// two columns per step keeps the snake's speed the same on both axes.
const ColumnStep = 2

// Coordinate identifies a grid cell by terminal column and row.
type Coordinate struct {
	Col int
	Row int
}

// At creates a coordinate.
func At(col, row int) Coordinate {
	return Coordinate{Col: col, Row: row}
}

// Less orders coordinates by row, then column.
func (c Coordinate) Less(other Coordinate) bool {
	if c.Row != other.Row {
		return c.Row < other.Row
	}
	return c.Col < other.Col
}

// Step returns the neighbouring cell in direction d.
func (c Coordinate) Step(d Direction) Coordinate {
	dc, dr := d.Delta()
	return Coordinate{Col: c.Col + dc, Row: c.Row + dr}
}

// Direction represents a heading on the grid.
type Direction int

const (
	DirUp Direction = iota
	DirRight
	DirDown
	DirLeft
)

// Directions lists every heading in declaration order.
var Directions = [...]Direction{DirUp, DirRight, DirDown, DirLeft}

// Opposite returns the heading pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

// IsOpposite reports whether other points directly against d.
func (d Direction) IsOpposite(other Direction) bool {
	return d.Valid() && other.Valid() && d.Opposite() == other
}

// Valid reports whether d is one of the four headings.
func (d Direction) Valid() bool {
	return d >= DirUp && d <= DirLeft
}

// Delta returns the column and row offsets of one step.
func (d Direction) Delta() (dc, dr int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirRight:
		return ColumnStep, 0
	case DirDown:
		return 0, 1
	case DirLeft:
		return -ColumnStep, 0
	default:
		return 0, 0
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	default:
		return "unknown"
	}
}
