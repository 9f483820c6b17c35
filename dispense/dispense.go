// Package dispense splits an amount into banknotes of fixed denominations.
//
// The split starts from the highest denomination and falls back one
// denomination at a time: a denomination that divides what is left takes
// it all, otherwise it takes as many notes as fit, minus one when the
// leftover could not be paid by the next lower denomination. For example
// 110 in {20, 50} becomes 50x1 20x3 rather than 50x2 with 10 left over.
// Amounts that cannot be paid exactly report a Remainder.
package dispense

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

var (
	// ErrBadDenomination indicates an empty list or a non-positive denomination.
	ErrBadDenomination = errors.New("dispense: denominations must be positive")
	// ErrNotAscending indicates denominations not in strictly ascending order.
	ErrNotAscending = errors.New("dispense: denominations must be in ascending order")
	// ErrBadAmount indicates a non-positive amount.
	ErrBadAmount = errors.New("dispense: amount must be positive")
)

// Order is the result of a dispense: notes per denomination and whatever
// could not be paid in notes.
type Order struct {
	Notes     map[int]int
	Remainder int
}

// String lists the notes handed out, highest denomination first, as
// "$50x5 $20x3". Denominations with no notes are skipped.
func (o Order) String() string {
	dens := make([]int, 0, len(o.Notes))
	for d, n := range o.Notes {
		if n > 0 {
			dens = append(dens, d)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(dens)))
	parts := make([]string, len(dens))
	for i, d := range dens {
		parts[i] = fmt.Sprintf("$%dx%d", d, o.Notes[d])
	}
	return strings.Join(parts, " ")
}

// Total returns the value of the notes in o.
func (o Order) Total() int {
	sum := 0
	for d, n := range o.Notes {
		sum += d * n
	}
	return sum
}

// dispenser carries the state of one split.
type dispenser struct {
	dens   []int
	notes  map[int]int
	amount int
}

// Dispense splits amount into notes of the given denominations, which must
// be positive and strictly ascending.
func Dispense(denominations []int, amount int) (Order, error) {
	if err := validate(denominations); err != nil {
		return Order{}, err
	}
	if amount <= 0 {
		return Order{}, fmt.Errorf("%w: got %d", ErrBadAmount, amount)
	}

	d := &dispenser{
		dens:   denominations,
		notes:  make(map[int]int, len(denominations)),
		amount: amount,
	}
	for _, den := range denominations {
		d.notes[den] = 0
	}
	d.level(0)

	return Order{Notes: d.notes, Remainder: d.amount}, nil
}

// level settles denomination dens[i] after all higher ones have been settled.
func (d *dispenser) level(i int) {
	if i >= len(d.dens) {
		return
	}
	den := d.dens[i]
	if d.amount%den == 0 {
		d.level(i + 1)
		d.notes[den] += d.amount / den
		d.amount %= den
		return
	}

	d.level(i + 1)
	if d.amount%den == 0 {
		d.notes[den] += d.amount / den
		d.amount = 0
		return
	}
	n := d.amount / den
	// Leave one note back if the lower denomination cannot cover the rest.
	if n > 0 && i > 0 && (d.amount%den)%d.dens[i-1] != 0 {
		n--
	}
	d.notes[den] += n
	d.amount -= n * den
}

func validate(dens []int) error {
	if len(dens) == 0 {
		return fmt.Errorf("%w: none given", ErrBadDenomination)
	}
	for i, den := range dens {
		if den <= 0 {
			return fmt.Errorf("%w: got %d", ErrBadDenomination, den)
		}
		if i > 0 && den <= dens[i-1] {
			return fmt.Errorf("%w: %d after %d", ErrNotAscending, den, dens[i-1])
		}
	}
	return nil
}

// ParseDenominations parses a comma-separated list such as "20,50".
func ParseDenominations(s string) ([]int, error) {
	fields := strings.Split(s, ",")
	dens := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrBadDenomination, f)
		}
		dens = append(dens, v)
	}
	if err := validate(dens); err != nil {
		return nil, err
	}
	return dens, nil
}
