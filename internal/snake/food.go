package snake

// maxFoodAttempts bounds rejection sampling before falling back to an
// explicit free-cell scan.
const maxFoodAttempts = 64

// placeFood puts the food on a cell chosen uniformly among the cells the
// snake does not cover. With no free cell left the food is removed.
func (g *Game) placeFood() {
	n := g.opts.GridSize
	if len(g.snake) >= n*n {
		g.food = Position{X: -1, Y: -1}
		g.hasFood = false
		return
	}

	// Random probing stays uniform over free cells and is cheap while the
	// snake covers a small part of the grid.
	for range maxFoodAttempts {
		p := Position{X: g.rng.Intn(n), Y: g.rng.Intn(n)}
		if !g.occupied(p) {
			g.food = p
			g.hasFood = true
			return
		}
	}

	free := g.freeCells()
	g.food = free[g.rng.Intn(len(free))]
	g.hasFood = true
}

// freeCells lists every cell not covered by the snake, row by row.
func (g *Game) freeCells() []Position {
	n := g.opts.GridSize
	taken := make(map[Position]struct{}, len(g.snake))
	for _, seg := range g.snake {
		taken[seg] = struct{}{}
	}

	cells := make([]Position, 0, n*n-len(taken))
	for y := range n {
		for x := range n {
			p := Position{X: x, Y: y}
			if _, ok := taken[p]; !ok {
				cells = append(cells, p)
			}
		}
	}
	return cells
}
