package lcharts

import (
	"github.com/midbel/svg"
)

const DefaultPointSize = 5

type PointType int

const (
	PointCircle PointType = iota
	PointSquare
	PointX
)

func (p PointType) String() string {
	switch p {
	case PointCircle:
		return "circle"
	case PointSquare:
		return "square"
	case PointX:
		return "x"
	default:
		return "unknown"
	}
}

// MarkerFunc draws a marker centered on the origin.
type MarkerFunc func(size float32, fill, stroke Color) svg.Element

func (p PointType) Marker() MarkerFunc {
	switch p {
	case PointSquare:
		return GetSquare
	case PointX:
		return GetCross
	default:
		return GetCircle
	}
}

func GetCircle(size float32, fill, stroke Color) svg.Element {
	var el svg.Circle
	el.Pos = svg.NewPos(0, 0)
	el.Radius = float64(size)
	el.Fill = svg.NewFill(fill.String())
	el.Stroke = svg.NewStroke(stroke.String(), 1)
	return el.AsElement()
}

func GetSquare(size float32, fill, stroke Color) svg.Element {
	var el svg.Rect
	el.Pos = newPos(-size, -size)
	el.Dim = newDim(2*size, 2*size)
	el.Fill = svg.NewFill(fill.String())
	el.Stroke = svg.NewStroke(stroke.String(), 1)
	return el.AsElement()
}

func GetCross(size float32, _, stroke Color) svg.Element {
	var (
		grp svg.Group
		sk  = svg.NewStroke(stroke.String(), 2)
	)
	fst := svg.NewLine(newPos(-size, -size), newPos(size, size))
	fst.Stroke = sk
	lst := svg.NewLine(newPos(size, -size), newPos(-size, size))
	lst.Stroke = sk

	grp.Append(fst.AsElement())
	grp.Append(lst.AsElement())
	return grp.AsElement()
}
