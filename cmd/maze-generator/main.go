package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/lixenwraith/orbit-sweeper/game"
	"github.com/lixenwraith/orbit-sweeper/maze"
)

func main() {
	reader := bufio.NewReader(os.Stdin)

	for {
		fmt.Println("\n=== ORBIT SWEEPER MAZE PREVIEW ===")

		diff := getDifficulty(reader, "Difficulty [easy/medium/hard] (default medium): ")
		preset := diff.Preset()
		size := getInt(reader, fmt.Sprintf("Size (default %d): ", preset.Size), preset.Size)
		seed := int64(getInt(reader, "Seed (default random): ", 0))

		cfg := maze.Config{Size: size, Seed: seed}

		fmt.Println("\nGenerating...")
		startT := time.Now()
		grid, err := maze.Generate(cfg)
		dur := time.Since(startT)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			continue
		}

		start, goal := maze.Point{}, maze.Point{X: size - 1, Y: size - 1}
		path := grid.SolutionPath(start, goal)

		fmt.Printf("Done in %v\n", dur)
		fmt.Printf("Grid: %dx%d cells, %d passages\n", grid.Size, grid.Size, grid.PassageCount())
		fmt.Printf("Reachable: %d/%d cells\n", len(grid.Reachable(start)), grid.Size*grid.Size)
		if path != nil {
			fmt.Printf("Solution Path Length: %d moves\n", len(path)-1)
			fmt.Printf("Moves: %s\n", moveString(maze.PathDirections(path)))
		} else {
			fmt.Println("Status: Unsolvable")
		}

		draw(grid, start, goal, path)

		fmt.Print("\nGenerate another? [Y/n]: ")
		cont, _ := reader.ReadString('\n')
		if strings.ToLower(strings.TrimSpace(cont)) == "n" {
			break
		}
	}
}

func draw(grid *maze.Grid, start, goal maze.Point, path []maze.Point) {
	onPath := make(map[maze.Point]bool)
	for _, p := range maze.RasterPath(path) {
		onPath[p] = true
	}
	s, e := maze.RasterPoint(start), maze.RasterPoint(goal)

	var b strings.Builder
	for y, row := range grid.Raster() {
		for x, isWall := range row {
			p := maze.Point{X: x, Y: y}

			switch {
			case p == s:
				b.WriteString("S ")
			case p == e:
				b.WriteString("E ")
			case isWall:
				b.WriteString("██")
			case onPath[p]:
				b.WriteString("• ")
			default:
				b.WriteString("  ")
			}
		}
		b.WriteByte('\n')
	}
	fmt.Print(b.String())
}

// moveString abbreviates each direction to its initial
func moveString(moves []maze.Direction) string {
	var b strings.Builder
	for _, d := range moves {
		b.WriteString(strings.ToUpper(d.String()[:1]))
	}
	return b.String()
}

// --- Input Helpers ---

func getInt(r *bufio.Reader, prompt string, def int) int {
	fmt.Print(prompt)
	s, _ := r.ReadString('\n')
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}

func getDifficulty(r *bufio.Reader, prompt string) game.Difficulty {
	fmt.Print(prompt)
	s, _ := r.ReadString('\n')
	d, err := game.ParseDifficulty(s)
	if err != nil {
		fmt.Printf("%v, using medium\n", err)
	}
	return d
}
