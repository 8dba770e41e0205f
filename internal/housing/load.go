package housing

import (
	"fmt"
	"log"
)

// LoadPolicy decides what Load does with a record it cannot place.
type LoadPolicy string

const (
	// LoadContinue skips bad records and keeps loading.
	LoadContinue LoadPolicy = "continue"
	// LoadAbort stops at the first bad record.
	LoadAbort LoadPolicy = "abort"
)

// ParseLoadPolicy validates a policy name from configuration.
func ParseLoadPolicy(s string) (LoadPolicy, error) {
	switch p := LoadPolicy(s); p {
	case LoadContinue, LoadAbort:
		return p, nil
	}
	return "", fmt.Errorf("unknown load policy %q", s)
}

// Rejection is a record Load refused to place.
type Rejection struct {
	Index int
	House House
	Err   error
}

// LoadReport summarizes a Load call.
type LoadReport struct {
	Loaded   int
	Rejected []Rejection
}

// Load writes each house into the cell its lot code names, replacing whatever
// stood there. Records with malformed or out-of-grid lots, or with an id
// already placed on another lot, are rejected according to policy.
func (g *Grid) Load(houses []House, policy LoadPolicy) (LoadReport, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	var report LoadReport
	for i, h := range houses {
		if err := g.place(h); err != nil {
			if policy == LoadAbort {
				return report, fmt.Errorf("record %d: %w", i+1, err)
			}
			log.Printf("registry: rejected record %d: %v", i+1, err)
			report.Rejected = append(report.Rejected, Rejection{Index: i, House: h, Err: err})
			continue
		}
		report.Loaded++
	}
	return report, nil
}

// place validates h and stores a copy of it, replacing any occupant of its
// cell. Ids are checked against the houses placed so far. Callers hold mu.
func (g *Grid) place(h House) error {
	addr, err := g.locate(h.Lot)
	if err != nil {
		return err
	}

	var dup error
	g.each(func(at Address, existing *House) bool {
		if existing.ID == h.ID && at != addr {
			dup = &DuplicateIDError{ID: h.ID, Lot: h.Lot, Existing: existing.Lot}
			return false
		}
		return true
	})
	if dup != nil {
		return dup
	}

	stored := h
	g.cells[addr.Row][addr.Col] = &stored
	return nil
}
