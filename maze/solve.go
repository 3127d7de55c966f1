package maze

// Reachable returns the set of cells reachable from start through open passages
func (g *Grid) Reachable(start Point) map[Point]bool {
	visited := make(map[Point]bool, g.Size*g.Size)
	if !g.InBounds(start) {
		return visited
	}

	queue := []Point{start}
	visited[start] = true
	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]
		for _, d := range Directions {
			if !g.Open(curr, d) {
				continue
			}
			next := Point{curr.X + d.Delta().X, curr.Y + d.Delta().Y}
			if !visited[next] {
				visited[next] = true
				queue = append(queue, next)
			}
		}
	}
	return visited
}

// SolutionPath returns the cell sequence from start to end inclusive, nil if unreachable
func (g *Grid) SolutionPath(start, end Point) []Point {
	if !g.InBounds(start) || !g.InBounds(end) {
		return nil
	}

	queue := []Point{start}
	cameFrom := make(map[Point]Point)
	visited := map[Point]bool{start: true}

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]

		if curr == end {
			path := []Point{}
			for curr != start {
				path = append(path, curr)
				curr = cameFrom[curr]
			}
			path = append(path, start)
			// Reverse in place
			for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
				path[i], path[j] = path[j], path[i]
			}
			return path
		}

		for _, d := range Directions {
			if !g.Open(curr, d) {
				continue
			}
			next := Point{curr.X + d.Delta().X, curr.Y + d.Delta().Y}
			if !visited[next] {
				visited[next] = true
				cameFrom[next] = curr
				queue = append(queue, next)
			}
		}
	}
	return nil
}

// PathDirections converts a cell path into the moves that walk it
func PathDirections(path []Point) []Direction {
	if len(path) < 2 {
		return nil
	}
	dirs := make([]Direction, 0, len(path)-1)
	for i := 1; i < len(path); i++ {
		dx, dy := path[i].X-path[i-1].X, path[i].Y-path[i-1].Y
		for _, d := range Directions {
			if d.Delta() == (Point{dx, dy}) {
				dirs = append(dirs, d)
				break
			}
		}
	}
	return dirs
}
