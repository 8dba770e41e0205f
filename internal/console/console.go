// Package console runs the interactive query loop over a house grid.
//
// Commands are single tokens followed by their arguments, all separated by
// whitespace:
//
//	a <id>                      is the house available
//	m <price> <color> <beds>    houses at most price, of color, with at least beds
//	n <id>                      booked neighbors around the house
//	r <id>                      rent the house; the loop ends on success
//	q                           quit
//
// A command's arguments are read in full before any is parsed, so a malformed
// argument discards the whole command and the next token starts a new one.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/RyanHill92/housing/internal/housing"
)

// Prompt is written before every command.
const Prompt = "query-> "

// errInput marks an argument that could not be parsed.
var errInput = errors.New("invalid input")

type command struct {
	arity int
	run   func(h *handler, args *argList) (done bool, err error)
}

var commands = map[string]command{
	"a": {arity: 1, run: (*handler).Availability},
	"m": {arity: 3, run: (*handler).Matching},
	"n": {arity: 1, run: (*handler).Neighbors},
	"r": {arity: 1, run: (*handler).Rent},
	"q": {run: func(*handler, *argList) (bool, error) { return true, nil }},
}

// Run reads commands from r and writes answers to w until the user quits,
// a rental succeeds, input ends, or ctx is cancelled between commands.
func Run(ctx context.Context, r io.Reader, w io.Writer, grid *housing.Grid) error {
	h := &handler{grid: grid, out: w}
	in := newTokens(r)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := io.WriteString(w, Prompt); err != nil {
			return err
		}

		name, err := in.next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading command: %w", err)
		}

		cmd, ok := commands[name]
		if !ok {
			if err := h.printf("Unknown command %s\n", name); err != nil {
				return err
			}
			continue
		}

		args, err := in.take(cmd.arity)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading %s arguments: %w", name, err)
		}

		done, err := cmd.run(h, args)
		switch {
		case errors.Is(err, errInput):
			if err := h.printf("Command %s: %v\n", name, err); err != nil {
				return err
			}
		case err != nil:
			return err
		case done:
			return nil
		}
	}
}

// tokens splits input on whitespace the way a formatted stream read does.
type tokens struct {
	scanner *bufio.Scanner
}

func newTokens(r io.Reader) *tokens {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	return &tokens{scanner: scanner}
}

func (t *tokens) next() (string, error) {
	if t.scanner.Scan() {
		return t.scanner.Text(), nil
	}
	if err := t.scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

// take reads the n tokens following a command.
func (t *tokens) take(n int) (*argList, error) {
	fields := make([]string, n)
	for i := range fields {
		var err error
		if fields[i], err = t.next(); err != nil {
			return nil, err
		}
	}
	return &argList{fields: fields}, nil
}

// argList hands out a command's arguments in order.
type argList struct {
	fields []string
	pos    int
}

func (a *argList) next() string {
	s := a.fields[a.pos]
	a.pos++
	return s
}

func (a *argList) nextInt(what string) (int, error) {
	s := a.next()
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not an integer", errInput, what, s)
	}
	return n, nil
}

func (a *argList) nextFloat(what string) (float64, error) {
	s := a.next()
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not a number", errInput, what, s)
	}
	return f, nil
}
