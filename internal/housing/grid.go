// Package housing keeps the lot grid of rental houses and answers queries
// and rentals against it.
package housing

import (
	"fmt"
	"sync"
)

// Default grid dimensions.
const (
	DefaultRows = 50
	DefaultCols = 20
)

// Grid is a fixed rows x cols registry of houses addressed by lot code.
// A nil cell means no house stands on that lot.
type Grid struct {
	mu    sync.RWMutex
	rows  int
	cols  int
	cells [][]*House
}

// NewGrid returns an empty grid. It panics on non-positive dimensions or on
// more columns than a lot letter can address.
func NewGrid(rows, cols int) *Grid {
	if rows <= 0 || cols <= 0 || cols > MaxCols {
		panic(fmt.Sprintf("housing: invalid grid size %dx%d", rows, cols))
	}
	cells := make([][]*House, rows)
	for i := range cells {
		cells[i] = make([]*House, cols)
	}
	return &Grid{rows: rows, cols: cols, cells: cells}
}

// Rows returns the number of grid rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of grid columns.
func (g *Grid) Cols() int { return g.cols }

// Len returns how many houses are on the grid.
func (g *Grid) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n := 0
	g.each(func(Address, *House) bool {
		n++
		return true
	})
	return n
}

// Find returns the house with the given id.
func (g *Grid) Find(id int) (House, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if h := g.find(id); h != nil {
		return *h, true
	}
	return House{}, false
}

// At returns the house standing at addr, if any.
func (g *Grid) At(addr Address) (House, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.inBounds(addr) || g.cells[addr.Row][addr.Col] == nil {
		return House{}, false
	}
	return *g.cells[addr.Row][addr.Col], true
}

// Houses lists every house in row-major order.
func (g *Grid) Houses() []House {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var houses []House
	g.each(func(_ Address, h *House) bool {
		houses = append(houses, *h)
		return true
	})
	return houses
}

// locate checks that lot decodes to a cell of this grid.
func (g *Grid) locate(lot string) (Address, error) {
	addr, err := ParseLot(lot)
	if err != nil {
		return Address{}, err
	}
	if !g.inBounds(addr) {
		return Address{}, &OutOfBoundsError{Lot: lot, Address: addr, Rows: g.rows, Cols: g.cols}
	}
	return addr, nil
}

func (g *Grid) inBounds(addr Address) bool {
	return addr.Row >= 0 && addr.Row < g.rows && addr.Col >= 0 && addr.Col < g.cols
}

// find scans row-major for id. Callers hold mu.
func (g *Grid) find(id int) *House {
	var found *House
	g.each(func(_ Address, h *House) bool {
		if h.ID == id {
			found = h
			return false
		}
		return true
	})
	return found
}

// each visits present cells row-major until fn returns false. Callers hold mu.
func (g *Grid) each(fn func(Address, *House) bool) {
	for r, row := range g.cells {
		for c, h := range row {
			if h == nil {
				continue
			}
			if !fn(Address{Row: r, Col: c}, h) {
				return
			}
		}
	}
}
