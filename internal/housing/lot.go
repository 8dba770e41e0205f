package housing

import (
	"strconv"
)

// MaxCols is the number of columns a single-letter lot code can address.
const MaxCols = 26

// Address is a zero-based grid position.
type Address struct {
	Row int
	Col int
}

// Lot encodes the address back into a lot code. Col must be below MaxCols.
func (a Address) Lot() string {
	return string(rune('A'+a.Col)) + strconv.Itoa(a.Row+1)
}

// Column decodes the column letter of a lot code, A being column 0.
func Column(lot string) (int, error) {
	if lot == "" {
		return 0, &MalformedLotError{Lot: lot, Reason: "empty"}
	}
	c := lot[0]
	if c < 'A' || c > 'Z' {
		return 0, &MalformedLotError{Lot: lot, Reason: "column must be an uppercase letter"}
	}
	return int(c - 'A'), nil
}

// Row decodes the 1-indexed row number of a lot code to a zero-based row.
func Row(lot string) (int, error) {
	if len(lot) < 2 {
		return 0, &MalformedLotError{Lot: lot, Reason: "missing row number"}
	}
	digits := lot[1:]
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return 0, &MalformedLotError{Lot: lot, Reason: "row must be decimal digits"}
		}
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, &MalformedLotError{Lot: lot, Reason: "row number out of range"}
	}
	if n < 1 {
		return 0, &MalformedLotError{Lot: lot, Reason: "rows start at 1"}
	}
	return n - 1, nil
}

// ParseLot decodes a lot code such as "C12" to its grid address.
func ParseLot(lot string) (Address, error) {
	col, err := Column(lot)
	if err != nil {
		return Address{}, err
	}
	row, err := Row(lot)
	if err != nil {
		return Address{}, err
	}
	return Address{Row: row, Col: col}, nil
}
