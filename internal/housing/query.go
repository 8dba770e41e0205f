package housing

import "math"

// AnyColor in a Filter matches houses of every color.
const AnyColor = "*"

// Filter selects houses for Match.
type Filter struct {
	MaxPrice    float64
	Color       string
	MinBedrooms int
}

// MatchAll is a filter every house passes.
var MatchAll = Filter{MaxPrice: math.Inf(1), Color: AnyColor, MinBedrooms: math.MinInt}

func (f Filter) matches(h *House) bool {
	return h.Price <= f.MaxPrice &&
		(f.Color == AnyColor || h.Color == f.Color) &&
		h.Bedrooms >= f.MinBedrooms
}

// IsAvailable reports whether house id exists and can be rented. An unknown id
// is reported as unavailable; use Status to tell the two apart.
func (g *Grid) IsAvailable(id int) bool {
	status, err := g.Status(id)
	return err == nil && status == Available
}

// Status returns the availability of house id, or ErrHouseNotFound.
func (g *Grid) Status(id int) (Availability, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	h := g.find(id)
	if h == nil {
		return 0, ErrHouseNotFound
	}
	return h.Availability, nil
}

// Match lists the houses passing f in row-major order. Color comparison is
// exact and case-sensitive.
func (g *Grid) Match(f Filter) []House {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var houses []House
	g.each(func(_ Address, h *House) bool {
		if f.matches(h) {
			houses = append(houses, *h)
		}
		return true
	})
	return houses
}

// Neighbors counts the booked houses among the eight lots surrounding house id.
func (g *Grid) Neighbors(id int) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	h := g.find(id)
	if h == nil {
		return 0, ErrHouseNotFound
	}
	// Placed houses always carry a lot that decodes inside the grid.
	at, err := g.locate(h.Lot)
	if err != nil {
		return 0, err
	}

	n := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			if g.booked(Address{Row: at.Row + dr, Col: at.Col + dc}) {
				n++
			}
		}
	}
	return n, nil
}

func (g *Grid) booked(addr Address) bool {
	if !g.inBounds(addr) {
		return false
	}
	h := g.cells[addr.Row][addr.Col]
	return h != nil && h.Availability == Booked
}
