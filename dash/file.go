package dash

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/midbel/slices"
)

const (
	RenderVBar    = "vbar"
	RenderHBar    = "hbar"
	RenderLine    = "line"
	RenderArea    = "area"
	RenderScatter = "scatter"
)

// Limit restricts the rows of a file to the window [Beg, End). A zero End
// keeps every row after Beg.
type Limit struct {
	Beg int `toml:"beg"`
	End int `toml:"end"`
}

func (i Limit) apply(rows [][]string) [][]string {
	beg, end := i.Beg, i.End
	if beg < 0 || beg > len(rows) {
		beg = len(rows)
	}
	if end <= 0 || end > len(rows) {
		end = len(rows)
	}
	if beg >= end {
		return nil
	}
	return rows[beg:end]
}

// File describes one view of a chart and the data it draws.
type File struct {
	Type     string `toml:"type"`
	Ident    string `toml:"ident"`
	Path     string `toml:"path"`
	Sheet    string `toml:"sheet"`
	Data     string `toml:"data"`
	Delim    string `toml:"delimiter"`
	X        int    `toml:"x"`
	Y        []int  `toml:"y"`
	Sum      bool   `toml:"sum"`
	NoHeader bool   `toml:"no-header"`
	Limit    Limit  `toml:"limit"`
	Style
}

func (f File) Name() string {
	if f.Ident != "" {
		return f.Ident
	}
	if f.Path == "" {
		return f.Type
	}
	return strings.TrimSuffix(filepath.Base(f.Path), filepath.Ext(f.Path))
}

func (f File) source() DataSource {
	if f.Data != "" {
		return LocalData{
			Content: f.Data,
			Delim:   f.Delim,
		}
	}
	switch strings.ToLower(filepath.Ext(f.Path)) {
	case ".xlsx", ".xlsm", ".xltx", ".xltm":
		return XlsxFile{
			Path:  f.Path,
			Sheet: f.Sheet,
		}
	default:
		return CsvFile{
			Path:  f.Path,
			Delim: f.Delim,
		}
	}
}

func (f File) selector() Selector {
	switch {
	case len(f.Y) == 0:
		return SelectSingle(1)
	case f.Sum:
		return SelectSum(f.Y)
	default:
		return SelectMulti(f.Y)
	}
}

// dataset holds the rows of a file once split in keys (the x column) and
// selected values.
type dataset struct {
	Names  []string
	Keys   []string
	Values [][]float32
}

// Series transposes the values: the i-th series holds the i-th selected
// value of every row.
func (d dataset) Series() [][]float32 {
	var width int
	for _, vs := range d.Values {
		if len(vs) > width {
			width = len(vs)
		}
	}
	list := make([][]float32, width)
	for _, vs := range d.Values {
		for i, v := range vs {
			list[i] = append(list[i], v)
		}
	}
	return list
}

// Column returns the first selected value of every row.
func (d dataset) Column() []float32 {
	list := make([]float32, 0, len(d.Values))
	for _, vs := range d.Values {
		list = append(list, slices.Fst(vs))
	}
	return list
}

// Numbers parses the keys as numbers.
func (d dataset) Numbers() ([]float32, error) {
	list := make([]float32, 0, len(d.Keys))
	for _, k := range d.Keys {
		f, err := strconv.ParseFloat(strings.TrimSpace(k), 32)
		if err != nil {
			return nil, err
		}
		list = append(list, float32(f))
	}
	return list, nil
}

func (f File) load() (dataset, error) {
	var ds dataset
	rows, err := f.source().Rows()
	if err != nil {
		return ds, fmt.Errorf("%s: %w", f.Name(), err)
	}
	sel := f.selector()
	if !f.NoHeader && len(rows) > 0 {
		ds.Names = seriesNames(slices.Fst(rows), sel)
		rows = slices.Rest(rows)
	}
	for i, row := range f.Limit.apply(rows) {
		if f.X < 0 || f.X >= len(row) {
			return ds, fmt.Errorf("%s: row %d: %w", f.Name(), i+1, ErrIndex)
		}
		values, err := sel.Select(row)
		if err != nil {
			return ds, fmt.Errorf("%s: row %d: %w", f.Name(), i+1, err)
		}
		ds.Keys = append(ds.Keys, row[f.X])
		ds.Values = append(ds.Values, values)
	}
	return ds, nil
}

// seriesNames takes the name of each selected column from header. Summed
// columns have no name of their own.
func seriesNames(header []string, sel Selector) []string {
	index := sel.Indices()
	if sel.Width() != len(index) {
		return nil
	}
	var list []string
	for _, i := range index {
		list = append(list, slices.At(header, i))
	}
	return list
}
