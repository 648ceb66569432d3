package mines

import (
	"fmt"
	"iter"
)

type Point struct {
	Row, Col int
}

func (p Point) String() string {
	return fmt.Sprintf("%c%d", 'A'+p.Col, p.Row)
}

// Grid is a square board stored row-major.
type Grid struct {
	size  int
	cells []Cell
}

func NewGrid(size int) *Grid {
	cells := make([]Cell, size*size)
	for i := range cells {
		cells[i] = newCell()
	}
	return &Grid{size: size, cells: cells}
}

func (g *Grid) Size() int {
	return g.size
}

func (g *Grid) InBounds(p Point) bool {
	return 0 <= p.Row && p.Row < g.size && 0 <= p.Col && p.Col < g.size
}

func (g *Grid) index(p Point) int {
	return p.Row*g.size + p.Col
}

func (g *Grid) point(i int) Point {
	return Point{Row: i / g.size, Col: i % g.size}
}

// At returns the cell at p. The caller is responsible for bounds.
func (g *Grid) At(p Point) *Cell {
	return &g.cells[g.index(p)]
}

// Neighbours yields the up to 8 in-bounds points around p.
func (g *Grid) Neighbours(p Point) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for dr := -1; dr <= 1; dr++ {
			for dc := -1; dc <= 1; dc++ {
				if dr == 0 && dc == 0 {
					continue
				}
				n := Point{Row: p.Row + dr, Col: p.Col + dc}
				if !g.InBounds(n) {
					continue
				}
				if !yield(n) {
					return
				}
			}
		}
	}
}

// Points yields every point of the grid in row-major order.
func (g *Grid) Points() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for i := range g.cells {
			if !yield(g.point(i)) {
				return
			}
		}
	}
}

func (g *Grid) Mines() (count int) {
	for _, c := range g.cells {
		if c.mine {
			count++
		}
	}
	return
}

// minedNeighbours counts mines around p from scratch.
func (g *Grid) minedNeighbours(p Point) (count int) {
	for n := range g.Neighbours(p) {
		if g.At(n).mine {
			count++
		}
	}
	return
}
