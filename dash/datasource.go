package dash

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gwenn/yacr"
	"github.com/xuri/excelize/v2"
)

var ErrSource = errors.New("unsupported data source")

// DataSource gives the raw rows of a dataset, header included.
type DataSource interface {
	Rows() ([][]string, error)
}

type CsvFile struct {
	Path  string
	Delim string
}

func (f CsvFile) Rows() ([][]string, error) {
	r, err := readFrom(f.Path)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return readCsv(r, f.Delim)
}

type XlsxFile struct {
	Path  string
	Sheet string
}

func (f XlsxFile) Rows() ([][]string, error) {
	x, err := excelize.OpenFile(f.Path)
	if err != nil {
		return nil, err
	}
	defer x.Close()

	sheet := f.Sheet
	if sheet == "" {
		sheet = x.GetSheetName(0)
	}
	if sheet == "" {
		return nil, fmt.Errorf("%s: no sheet found", f.Path)
	}
	return x.GetRows(sheet)
}

// LocalData is a dataset written inline in the chart description.
type LocalData struct {
	Content string
	Delim   string
}

func (d LocalData) Rows() ([][]string, error) {
	return readCsv(strings.NewReader(strings.TrimSpace(d.Content)), d.Delim)
}

// readCsv reads the records of r. Blank lines are skipped and unquoted
// values are trimmed.
func readCsv(r io.Reader, delim string) ([][]string, error) {
	sep := byte(',')
	if delim != "" {
		sep = delim[0]
	}
	rs := yacr.NewReader(r, sep, true, false)
	rs.Trim = true

	var (
		list [][]string
		row  []string
	)
	for rs.Scan() {
		row = append(row, rs.Text())
		if !rs.EndOfRecord() {
			continue
		}
		if len(row) > 1 || row[0] != "" {
			list = append(list, row)
		}
		row = nil
	}
	if err := rs.Err(); err != nil {
		return nil, err
	}
	return list, nil
}

// readFrom opens a local data file. Locations with a scheme other than
// file:// are refused.
func readFrom(location string) (io.ReadCloser, error) {
	if scheme, rest, ok := strings.Cut(location, "://"); ok {
		if scheme != "file" {
			return nil, fmt.Errorf("%s: %w", scheme, ErrSource)
		}
		location = rest
	}
	return os.Open(location)
}
