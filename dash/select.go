package dash

import (
	"errors"
	"strconv"
	"strings"
)

var ErrIndex = errors.New("invalid index")

// Selector turns the cells of a row into the values of a dataset.
type Selector interface {
	Select(row []string) ([]float32, error)
	// Width is the number of values given for one row.
	Width() int
	// Indices lists the cells read from a row.
	Indices() []int
}

// columns keeps one value per cell.
type columns []int

func SelectSingle(i int) Selector {
	return columns{i}
}

func SelectMulti(index []int) Selector {
	return columns(index)
}

func (c columns) Width() int {
	return len(c)
}

func (c columns) Indices() []int {
	return c
}

func (c columns) Select(row []string) ([]float32, error) {
	values := make([]float32, len(c))
	for j, i := range c {
		f, err := parseCell(row, i)
		if err != nil {
			return nil, err
		}
		values[j] = f
	}
	return values, nil
}

// total merges its cells into a single value.
type total []int

func SelectSum(index []int) Selector {
	return total(index)
}

func (t total) Width() int {
	return 1
}

func (t total) Indices() []int {
	return t
}

func (t total) Select(row []string) ([]float32, error) {
	var acc float32
	for _, i := range t {
		f, err := parseCell(row, i)
		if err != nil {
			return nil, err
		}
		acc += f
	}
	return []float32{acc}, nil
}

// chain concatenates the values of its selectors.
type chain []Selector

func Combined(xs ...Selector) Selector {
	return chain(xs)
}

func (c chain) Width() int {
	var n int
	for _, s := range c {
		n += s.Width()
	}
	return n
}

func (c chain) Indices() []int {
	var index []int
	for _, s := range c {
		index = append(index, s.Indices()...)
	}
	return index
}

func (c chain) Select(row []string) ([]float32, error) {
	values := make([]float32, 0, c.Width())
	for _, s := range c {
		vs, err := s.Select(row)
		if err != nil {
			return nil, err
		}
		values = append(values, vs...)
	}
	return values, nil
}

// ExpandRange lists the indices from fst to lst, both included.
func ExpandRange(fst, lst int) []int {
	if lst < fst {
		return nil
	}
	index := make([]int, 0, lst-fst+1)
	for i := fst; i <= lst; i++ {
		index = append(index, i)
	}
	return index
}

func parseCell(row []string, i int) (float32, error) {
	if i < 0 || i >= len(row) {
		return 0, ErrIndex
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(row[i]), 32)
	if err != nil {
		return 0, err
	}
	return float32(f), nil
}
