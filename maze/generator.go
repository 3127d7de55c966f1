package maze

import (
	"math/rand"
	"time"
)

type Config struct {
	Size int
	Seed int64 // Optional (0 = Random)
}

// Preset pairs a maze side length with its on-screen cell size
type Preset struct {
	Size     int
	CellSize int // Pixels per cell in the reference layout
}

// Generate builds a perfect maze with a randomized recursive backtracker
// Result is a spanning tree of the grid graph: size²-1 passages, one path between any two cells
func Generate(cfg Config) (*Grid, error) {
	if cfg.Size < 1 {
		return nil, ErrInvalidSize
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	g := newGrid(cfg.Size)
	recursiveBacktracker(g, rng)
	return g, nil
}

func recursiveBacktracker(g *Grid, rng *rand.Rand) {
	origin := Point{0, 0}
	g.Cell(origin).visited = true
	stack := []Point{origin}

	candidates := make([]Direction, 0, 4)

	for len(stack) > 0 {
		curr := stack[len(stack)-1]
		candidates = candidates[:0]

		for _, d := range Directions {
			next := Point{curr.X + d.Delta().X, curr.Y + d.Delta().Y}
			if g.InBounds(next) && !g.Cell(next).visited {
				candidates = append(candidates, d)
			}
		}

		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		d := candidates[rng.Intn(len(candidates))]
		next := g.carve(curr, d)
		g.Cell(next).visited = true
		stack = append(stack, next)
	}
}
