package lcharts

import (
	"github.com/midbel/svg"
)

const (
	barLabelOffsetHorizontal float32 = 12
	barLabelOffsetVertical   float32 = 16
)

type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

type BarLabelPosition int

const (
	StartOutside BarLabelPosition = iota
	StartInside
	Center
	EndInside
	EndOutside
)

// Bar is one segment of a stacked bar. Start and End are the pixel bounds of
// the segment along the value axis, Offset and Width its placement along the
// category axis. Size is the data value drawn by the segment.
type Bar struct {
	Start       float32
	End         float32
	Size        float32
	Width       float32
	Offset      float32
	Orientation Orientation

	Fill   Color
	Stroke Color

	LabelVisible  bool
	LabelPosition BarLabelPosition
}

func NewBar(start, end, size, width, offset float32, orient Orientation) Bar {
	return Bar{
		Start:         start,
		End:           end,
		Size:          size,
		Width:         width,
		Offset:        offset,
		Orientation:   orient,
		Fill:          ColorBlue2,
		Stroke:        ColorBlue1,
		LabelVisible:  true,
		LabelPosition: Center,
	}
}

func (b Bar) Length() float32 {
	return span(b.Start, b.End)
}

func (b Bar) LabelAnchor() string {
	if b.Orientation != Horizontal {
		return anchorMiddle
	}
	switch b.LabelPosition {
	case StartOutside, EndInside:
		return anchorEnd
	case StartInside, EndOutside:
		return anchorStart
	default:
		return anchorMiddle
	}
}

// LabelCoord gives the position of the label along the value axis.
func (b Bar) LabelCoord() float32 {
	horizontal := b.Orientation == Horizontal
	switch b.LabelPosition {
	case StartOutside:
		if horizontal {
			return b.Start - barLabelOffsetHorizontal
		}
		return b.End + barLabelOffsetVertical
	case StartInside:
		if horizontal {
			return b.Start + barLabelOffsetHorizontal
		}
		return b.End - barLabelOffsetVertical
	case EndInside:
		if horizontal {
			return b.End - barLabelOffsetVertical
		}
		return b.Start + barLabelOffsetHorizontal
	case EndOutside:
		if horizontal {
			return b.End + barLabelOffsetVertical
		}
		return b.Start - barLabelOffsetHorizontal
	default:
		return b.Start + b.Length()/2
	}
}

func (b Bar) Render() svg.Element {
	var grp svg.Group
	if b.Orientation == Horizontal {
		grp = translateGroup(0, b.Offset, classBar)
	} else {
		grp = translateGroup(b.Offset, 0, classBar)
	}

	var el svg.Rect
	el.Rendering = "crispEdges"
	el.Fill = svg.NewFill(b.Fill.String())
	el.Stroke = svg.NewStroke(b.Stroke.String(), 1)
	// negative values give a segment running backward
	beg, length := b.Start, b.Length()
	if length < 0 {
		beg, length = b.End, -length
	}
	if b.Orientation == Horizontal {
		el.Pos = newPos(beg, 0)
		el.Dim = newDim(length, b.Width)
	} else {
		el.Pos = newPos(0, beg)
		el.Dim = newDim(b.Width, length)
	}
	grp.Append(el.AsElement())

	if !b.LabelVisible {
		return grp.AsElement()
	}
	pos := newPos(b.LabelCoord(), b.Width/2)
	if b.Orientation != Horizontal {
		pos = newPos(b.Width/2, b.LabelCoord())
	}
	text := getBaseText(formatValue(b.Size), LabelFontSize, pos, b.LabelAnchor())
	grp.Append(text.AsElement())
	return grp.AsElement()
}

func newDim(w, h float32) svg.Dim {
	return svg.NewDim(float64(w), float64(h))
}
