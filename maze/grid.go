package maze

import "errors"

// ErrInvalidSize is returned for a maze side length below 1
var ErrInvalidSize = errors.New("maze size must be at least 1")

type Point struct {
	X, Y int
}

// Direction is one of the four cardinal moves
type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// Directions lists cardinal moves in neighbor scan order
var Directions = [4]Direction{Up, Right, Down, Left}

// Delta returns the unit step for d in grid coordinates (Y grows downward)
func (d Direction) Delta() Point {
	switch d {
	case Up:
		return Point{0, -1}
	case Right:
		return Point{1, 0}
	case Down:
		return Point{0, 1}
	default:
		return Point{-1, 0}
	}
}

// Opposite returns the reverse direction
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	}
	return "unknown"
}

// Walls holds the four independent wall flags of a cell, true = wall present
type Walls struct {
	Top, Right, Bottom, Left bool
}

// Has returns the wall flag on side d
func (w Walls) Has(d Direction) bool {
	switch d {
	case Up:
		return w.Top
	case Right:
		return w.Right
	case Down:
		return w.Bottom
	default:
		return w.Left
	}
}

func (w *Walls) set(d Direction, v bool) {
	switch d {
	case Up:
		w.Top = v
	case Right:
		w.Right = v
	case Down:
		w.Bottom = v
	default:
		w.Left = v
	}
}

type Cell struct {
	X, Y    int
	Walls   Walls
	visited bool // Generation only
}

// Grid is a size × size maze indexed Cells[y][x]
type Grid struct {
	Size  int
	Cells [][]Cell
}

// newGrid returns a grid with every wall present and nothing visited
func newGrid(size int) *Grid {
	cells := make([][]Cell, size)
	for y := range cells {
		cells[y] = make([]Cell, size)
		for x := range cells[y] {
			cells[y][x] = Cell{
				X:     x,
				Y:     y,
				Walls: Walls{Top: true, Right: true, Bottom: true, Left: true},
			}
		}
	}
	return &Grid{Size: size, Cells: cells}
}

// InBounds reports whether p is a valid cell coordinate
func (g *Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.Size && p.Y >= 0 && p.Y < g.Size
}

// Cell returns the cell at p; p must be in bounds
func (g *Grid) Cell(p Point) *Cell {
	return &g.Cells[p.Y][p.X]
}

// Open reports whether a move from p in direction d is passable
func (g *Grid) Open(p Point, d Direction) bool {
	if !g.InBounds(p) {
		return false
	}
	next := Point{p.X + d.Delta().X, p.Y + d.Delta().Y}
	return g.InBounds(next) && !g.Cell(p).Walls.Has(d)
}

// carve removes the shared wall between p and its neighbor in direction d
// Both sides are updated together so the matched-pair invariant holds
func (g *Grid) carve(p Point, d Direction) Point {
	next := Point{p.X + d.Delta().X, p.Y + d.Delta().Y}
	g.Cell(p).Walls.set(d, false)
	g.Cell(next).Walls.set(d.Opposite(), false)
	return next
}

// PassageCount returns the number of removed wall pairs between adjacent cells
func (g *Grid) PassageCount() int {
	n := 0
	for y := 0; y < g.Size; y++ {
		for x := 0; x < g.Size; x++ {
			w := g.Cells[y][x].Walls
			if x < g.Size-1 && !w.Right {
				n++
			}
			if y < g.Size-1 && !w.Bottom {
				n++
			}
		}
	}
	return n
}
