package mines

// floodReveal uncovers start and, when it turns out blank, the whole
// connected blank region around it together with its numbered border.
// Flagged cells are left alone. It returns how many cells were opened.
func (g *Grid) floodReveal(start Point) (opened int) {
	uncover := func(p Point) {
		if c := g.At(p); c.covered {
			c.Uncover()
			opened++
		}
	}

	uncover(start)
	if !g.At(start).IsBlank() {
		return
	}

	visited := make([]bool, len(g.cells))
	visited[g.index(start)] = true
	stack := []Point{start}

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for n := range g.Neighbours(p) {
			c := g.At(n)
			if c.flagged || c.mine {
				continue
			}
			uncover(n)
			if i := g.index(n); c.IsBlank() && !visited[i] {
				visited[i] = true
				stack = append(stack, n)
			}
		}
	}

	return
}
