package housing

import "fmt"

// Availability is whether a house can still be rented.
type Availability int

const (
	Available Availability = iota
	Booked
)

// ParseAvailability reads the load-file spelling of an availability.
func ParseAvailability(s string) (Availability, error) {
	switch s {
	case "available":
		return Available, nil
	case "booked":
		return Booked, nil
	}
	return 0, fmt.Errorf("unknown availability %q", s)
}

func (a Availability) String() string {
	if a == Booked {
		return "booked"
	}
	return "available"
}

// MarshalText implements encoding.TextMarshaler.
func (a Availability) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Availability) UnmarshalText(text []byte) error {
	parsed, err := ParseAvailability(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// House is a rental unit sitting on a lot of the grid.
type House struct {
	ID           int          `json:"id" yaml:"id"`
	Lot          string       `json:"lot" yaml:"lot"`
	Price        float64      `json:"price" yaml:"price"`
	Bedrooms     int          `json:"bedrooms" yaml:"bedrooms"`
	Color        string       `json:"color" yaml:"color"`
	Availability Availability `json:"availability" yaml:"availability"`
}
