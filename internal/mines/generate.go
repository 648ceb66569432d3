package mines

import (
	"math/rand/v2"
)

// placeMines scatters count mines over the grid, never at exclude.
//
// Candidates are drawn without replacement: the chosen slot is overwritten
// by the last live candidate and the list shrinks by one, so placement
// takes exactly count draws.
func (g *Grid) placeMines(exclude Point, count int, r *rand.Rand) {
	candidates := make([]Point, 0, len(g.cells))
	for p := range g.Points() {
		if p != exclude {
			candidates = append(candidates, p)
		}
	}

	k := len(candidates)
	for range count {
		i := r.IntN(k)
		g.addMine(candidates[i])
		k--
		candidates[i] = candidates[k]
	}
}

// addMine marks p as a mine and bumps the count of every non-mine neighbour.
func (g *Grid) addMine(p Point) {
	c := g.At(p)
	if c.mine {
		return
	}
	c.SetMine()
	for n := range g.Neighbours(p) {
		if nc := g.At(n); !nc.mine {
			nc.SetAdjacent(nc.adjacent + 1)
		}
	}
}
