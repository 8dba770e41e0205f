// Package records reads house records from load files and SQL tables.
package records

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/RyanHill92/housing/internal/housing"
)

// ErrTruncated reports a load file with fewer records than its count announces.
var ErrTruncated = errors.New("unexpected end of input")

// fieldsPerRecord is id, lot, price, bedrooms, color, availability.
const fieldsPerRecord = 6

// ParseText reads the whitespace-separated load format: a record count N
// followed by N records of "id lot price bedrooms color availability".
// Anything after the Nth record is ignored.
func ParseText(r io.Reader) ([]housing.House, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	next := func() (string, error) {
		if scanner.Scan() {
			return scanner.Text(), nil
		}
		if err := scanner.Err(); err != nil {
			return "", err
		}
		return "", ErrTruncated
	}

	countField, err := next()
	if err != nil {
		return nil, fmt.Errorf("reading record count: %w", err)
	}
	count, err := strconv.Atoi(countField)
	if err != nil || count < 0 {
		return nil, fmt.Errorf("record count %q is not a non-negative integer", countField)
	}

	houses := make([]housing.House, 0, count)
	for i := 1; i <= count; i++ {
		var fields [fieldsPerRecord]string
		for f := range fields {
			if fields[f], err = next(); err != nil {
				return nil, fmt.Errorf("record %d of %d: %w", i, count, err)
			}
		}
		h, err := parseFields(fields)
		if err != nil {
			return nil, fmt.Errorf("record %d of %d: %w", i, count, err)
		}
		houses = append(houses, h)
	}
	return houses, nil
}

func parseFields(fields [fieldsPerRecord]string) (housing.House, error) {
	var h housing.House
	var err error

	if h.ID, err = strconv.Atoi(fields[0]); err != nil {
		return h, fmt.Errorf("id %q is not an integer", fields[0])
	}
	h.Lot = fields[1]
	if h.Price, err = strconv.ParseFloat(fields[2], 64); err != nil {
		return h, fmt.Errorf("price %q is not a number", fields[2])
	}
	if h.Bedrooms, err = strconv.Atoi(fields[3]); err != nil {
		return h, fmt.Errorf("bedrooms %q is not an integer", fields[3])
	}
	h.Color = fields[4]
	if h.Availability, err = housing.ParseAvailability(fields[5]); err != nil {
		return h, err
	}
	return h, nil
}
