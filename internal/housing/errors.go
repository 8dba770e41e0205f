package housing

import (
	"errors"
	"fmt"
)

// ErrHouseNotFound reports an id that matches no house on the grid.
var ErrHouseNotFound = errors.New("house not found")

// MalformedLotError reports a lot code that cannot be decoded to an address.
type MalformedLotError struct {
	Lot    string
	Reason string
}

// Error implements the error interface.
func (e *MalformedLotError) Error() string {
	return fmt.Sprintf("malformed lot code %q: %s", e.Lot, e.Reason)
}

// OutOfBoundsError reports a well-formed lot code that falls outside the grid.
type OutOfBoundsError struct {
	Lot     string
	Address Address
	Rows    int
	Cols    int
}

// Error implements the error interface.
func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("lot %q at row %d col %d is outside the %dx%d grid",
		e.Lot, e.Address.Row, e.Address.Col, e.Rows, e.Cols)
}

// DuplicateIDError reports a house id already present on another lot.
type DuplicateIDError struct {
	ID       int
	Lot      string
	Existing string
}

// Error implements the error interface.
func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("house %d on lot %q already placed on lot %q", e.ID, e.Lot, e.Existing)
}
