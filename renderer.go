package lcharts

import (
	"strconv"

	"github.com/midbel/svg"
)

const (
	FontSize      = 12.0
	LabelFontSize = 14.0
	TitleFontSize = 24.0

	fontFamily  = "sans-serif"
	fontColor   = "#080808"
	strokeColor = "#bbbbbb"
	fillNone    = "none"

	// baseline shift of a text, relative to its font size
	textShift = 0.35
)

const (
	classArea  = "area"
	classBar   = "bar"
	classChart = "chart"
	classViews = "views"
	classXAxis = "x-axis"
	classYAxis = "y-axis"
	classTick  = "tick"
	classTitle = "title"
	classPoint = "point"
	classLine  = "line"
)

const (
	anchorStart  = "start"
	anchorMiddle = "middle"
	anchorEnd    = "end"
)

// View is a set of shapes computed from a dataset and ready to be drawn.
type View interface {
	Render() svg.Element
}

func getBaseText(str string, size float64, pos svg.Pos, anchor string) svg.Text {
	txt := svg.NewText(str)
	txt.Pos = pos
	txt.Anchor = anchor
	txt.Shift = svg.NewPos(0, size*textShift)
	txt.Font = svg.NewFont(size, fontFamily)
	txt.Font.Fill = fontColor
	txt.Fill = svg.NewFill(fontColor)
	return txt
}

func getBasePath(fill, stroke Color, width float64) svg.Path {
	var pat svg.Path
	pat.Rendering = "geometricPrecision"
	pat.Stroke = svg.NewStroke(stroke.String(), width)
	if fill == "" {
		pat.Fill = svg.NewFill(fillNone)
	} else {
		pat.Fill = svg.NewFill(fill.String())
	}
	return pat
}

func getBaseGroup(color string, class ...string) svg.Group {
	var g svg.Group
	if color != "" {
		g.Fill = svg.NewFill(color)
		g.Stroke = svg.NewStroke(color, 1)
	}
	g.Class = class
	return g
}

func translateGroup(x, y float32, class ...string) svg.Group {
	g := getBaseGroup("", class...)
	g.Transform = svg.Translate(float64(x), float64(y))
	return g
}

func newPos(x, y float32) svg.Pos {
	return svg.NewPos(float64(x), float64(y))
}

// formatValue gives the shortest decimal text that reads back as f.
func formatValue(f float32) string {
	return strconv.FormatFloat(float64(f), 'f', -1, 32)
}
