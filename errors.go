package lcharts

import (
	"errors"
	"fmt"
)

var (
	ErrDataIsEmpty                = errors.New("data is empty")
	ErrCategoriesCountDoesntEqual = errors.New("categories count doesn't equal the data count")
	ErrCategoriesCountIsLess      = errors.New("categories count is less than the data count")
)

type SaveFileError struct {
	Path string
	Err  error
}

func (e SaveFileError) Error() string {
	return fmt.Sprintf("%s: unable to save chart: %s", e.Path, e.Err)
}

func (e SaveFileError) Unwrap() error {
	return e.Err
}
