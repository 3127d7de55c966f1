package maze

// Raster expands the cell grid into a (2·size+1)² wall bitmap indexed [y][x]
// Cell (x, y) sits at (2x+1, 2y+1); the odd/even positions between cells hold shared walls
func (g *Grid) Raster() [][]bool {
	n := 2*g.Size + 1
	r := make([][]bool, n)
	for y := range r {
		r[y] = make([]bool, n)
		for x := range r[y] {
			// Lattice corners and the outer frame are always solid
			r[y][x] = x%2 == 0 || y%2 == 0
		}
	}

	for y := 0; y < g.Size; y++ {
		for x := 0; x < g.Size; x++ {
			w := g.Cells[y][x].Walls
			rx, ry := 2*x+1, 2*y+1
			if x < g.Size-1 && !w.Right {
				r[ry][rx+1] = false
			}
			if y < g.Size-1 && !w.Bottom {
				r[ry+1][rx] = false
			}
		}
	}
	return r
}

// RasterPoint maps a cell coordinate to its raster position
func RasterPoint(p Point) Point {
	return Point{X: 2*p.X + 1, Y: 2*p.Y + 1}
}

// RasterPath expands a cell path into the raster positions it passes through
// including the opened wall slot between consecutive cells
func RasterPath(path []Point) []Point {
	if len(path) == 0 {
		return nil
	}
	out := make([]Point, 0, 2*len(path)-1)
	for i, p := range path {
		rp := RasterPoint(p)
		if i > 0 {
			prev := RasterPoint(path[i-1])
			out = append(out, Point{X: (prev.X + rp.X) / 2, Y: (prev.Y + rp.Y) / 2})
		}
		out = append(out, rp)
	}
	return out
}
