package console

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/RyanHill92/housing/internal/housing"
)

type handler struct {
	grid *housing.Grid
	out  io.Writer
}

// Availability answers whether a house can be rented.
func (h *handler) Availability(args *argList) (bool, error) {
	id, err := args.nextInt("house id")
	if err != nil {
		return false, err
	}

	status, err := h.grid.Status(id)
	switch {
	case errors.Is(err, housing.ErrHouseNotFound):
		return false, h.printf("House %d doesn't exist\n", id)
	case err != nil:
		return false, err
	case status == housing.Available:
		return false, h.printf("House %d is available\n", id)
	}
	return false, h.printf("Sorry, House %d is not available\n", id)
}

// Matching lists houses within a budget, of a color, with enough bedrooms.
func (h *handler) Matching(args *argList) (bool, error) {
	price, err := args.nextFloat("price")
	if err != nil {
		return false, err
	}
	color := args.next()
	bedrooms, err := args.nextInt("bedrooms")
	if err != nil {
		return false, err
	}

	if err := h.printf("Matching Houses:\n"); err != nil {
		return false, err
	}
	for _, house := range h.grid.Match(housing.Filter{MaxPrice: price, Color: color, MinBedrooms: bedrooms}) {
		if err := h.printf("%s\n", FormatHouse(house)); err != nil {
			return false, err
		}
	}
	return false, nil
}

// Neighbors reports how many booked houses surround a house.
func (h *handler) Neighbors(args *argList) (bool, error) {
	id, err := args.nextInt("house id")
	if err != nil {
		return false, err
	}

	n, err := h.grid.Neighbors(id)
	switch {
	case errors.Is(err, housing.ErrHouseNotFound):
		return false, h.printf("House %d doesn't exist\n", id)
	case err != nil:
		return false, err
	case n == 0:
		return false, h.printf("You have no neighbors, practice your drums!\n")
	}
	return false, h.printf("You have %d neighbors!\n", n)
}

// Rent books a house. A successful rental ends the session.
func (h *handler) Rent(args *argList) (bool, error) {
	id, err := args.nextInt("house id")
	if err != nil {
		return false, err
	}

	switch h.grid.Rent(id) {
	case housing.Rented:
		return true, h.printf("Congrats, you rented a house! Hope your door knobs don't fall off\n")
	case housing.AlreadyBooked:
		return false, h.printf("Too late...I hear the dumpster behind hill has some spaces open\n")
	}
	return false, h.printf("You can't rent a house that doesn't exist, but good try\n")
}

func (h *handler) printf(format string, a ...interface{}) error {
	_, err := fmt.Fprintf(h.out, format, a...)
	return err
}

// FormatHouse renders one house on a single line.
func FormatHouse(house housing.House) string {
	available := "No"
	if house.Availability == housing.Available {
		available = "Yes"
	}
	return fmt.Sprintf("Id: %d Lot: %s Color: %s Price: %s Bedrooms: %d Available: %s",
		house.ID, house.Lot, house.Color,
		strconv.FormatFloat(house.Price, 'f', -1, 64),
		house.Bedrooms, available)
}
