package lcharts

import (
	"fmt"

	"github.com/midbel/svg"
)

const (
	pointLabelSideX    float32 = 8
	pointLabelBetweenX float32 = 4

	pointLabelSideY    float32 = 12
	pointLabelBetweenY float32 = 8
)

type PointLabelPosition int

const (
	LabelTop PointLabelPosition = iota
	LabelTopRight
	LabelTopLeft
	LabelLeft
	LabelRight
	LabelBottom
	LabelBottomLeft
	LabelBottomRight
)

// Point is a marker drawn at pixel position X, Y with an optional label.
// XLabel is only set for scatter data, the label then shows both values.
type Point struct {
	X float32
	Y float32

	Type PointType
	Size float32

	XLabel string
	YLabel string

	Fill   Color
	Stroke Color

	PointVisible  bool
	LabelVisible  bool
	LabelPosition PointLabelPosition
}

func NewPoint(x, y float32, kind PointType, size float32, label string, fill, stroke Color) Point {
	return Point{
		X:             x,
		Y:             y,
		Type:          kind,
		Size:          size,
		YLabel:        label,
		Fill:          fill,
		Stroke:        stroke,
		PointVisible:  true,
		LabelVisible:  true,
		LabelPosition: LabelTop,
	}
}

func (p Point) Label() string {
	if p.XLabel == "" {
		return p.YLabel
	}
	return fmt.Sprintf("(%s,%s)", p.XLabel, p.YLabel)
}

func (p Point) LabelAnchor() string {
	switch p.LabelPosition {
	case LabelTopRight, LabelRight, LabelBottomRight:
		return anchorStart
	case LabelTopLeft, LabelLeft, LabelBottomLeft:
		return anchorEnd
	default:
		return anchorMiddle
	}
}

// LabelPos gives the label position relative to the point.
func (p Point) LabelPos() (float32, float32) {
	var x, y float32
	switch p.LabelPosition {
	case LabelTopRight, LabelBottomRight:
		x = p.Size + pointLabelBetweenX
	case LabelRight:
		x = p.Size + pointLabelSideX
	case LabelTopLeft, LabelBottomLeft:
		x = -p.Size - pointLabelBetweenX
	case LabelLeft:
		x = -p.Size - pointLabelSideX
	}
	switch p.LabelPosition {
	case LabelTop:
		y = -p.Size - pointLabelSideY
	case LabelTopRight, LabelTopLeft:
		y = -p.Size - pointLabelBetweenY
	case LabelBottomRight, LabelBottomLeft:
		y = p.Size + pointLabelBetweenY
	case LabelBottom:
		y = p.Size + pointLabelSideY
	}
	return x, y
}

func (p Point) Render() svg.Element {
	grp := translateGroup(p.X, p.Y, classPoint)
	if p.PointVisible {
		marker := p.Type.Marker()
		grp.Append(marker(p.Size, p.Fill, p.Stroke))
	}
	if p.LabelVisible {
		x, y := p.LabelPos()
		text := getBaseText(p.Label(), LabelFontSize, newPos(x, y), p.LabelAnchor())
		grp.Append(text.AsElement())
	}
	return grp.AsElement()
}
