package housing

// RentOutcome is the result of a rental attempt.
type RentOutcome int

const (
	// Rented means the house was available and is now booked.
	Rented RentOutcome = iota
	// AlreadyBooked means the house exists but was taken.
	AlreadyBooked
	// NotFound means no house has the id.
	NotFound
)

func (o RentOutcome) String() string {
	switch o {
	case Rented:
		return "rented"
	case AlreadyBooked:
		return "already booked"
	case NotFound:
		return "not found"
	}
	return "unknown"
}

// Rent books house id if it is available. The lookup and the booking happen
// under one write lock.
func (g *Grid) Rent(id int) RentOutcome {
	g.mu.Lock()
	defer g.mu.Unlock()

	h := g.find(id)
	switch {
	case h == nil:
		return NotFound
	case h.Availability == Booked:
		return AlreadyBooked
	}
	h.Availability = Booked
	return Rented
}
