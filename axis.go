package lcharts

import (
	"fmt"

	"github.com/midbel/svg"
)

const (
	tickLength = 6

	tickLabelOffsetHorizontal = 16
	tickLabelOffsetVertical   = 12
)

type AxisPosition int

const (
	AxisTop AxisPosition = 1 << iota
	AxisRight
	AxisBottom
	AxisLeft
)

func (p AxisPosition) String() string {
	switch p {
	case AxisTop:
		return "top"
	case AxisRight:
		return "right"
	case AxisBottom:
		return "bottom"
	case AxisLeft:
		return "left"
	default:
		return "unknown"
	}
}

// Vertical reports whether the axis runs along the y direction.
func (p AxisPosition) Vertical() bool {
	return p == AxisLeft || p == AxisRight
}

// Reverse reports whether ticks grow towards negative coordinates.
func (p AxisPosition) Reverse() bool {
	return p == AxisLeft || p == AxisTop
}

// AxisTick is one tick of an axis, positioned along the axis line.
type AxisTick struct {
	Offset        float32
	Label         string
	LabelOffset   int
	LabelRotation int
	Position      AxisPosition
}

func makeAxisTick(offset float32, label string, pos AxisPosition) AxisTick {
	t := AxisTick{
		Offset:      offset,
		Label:       label,
		LabelOffset: tickLabelOffsetHorizontal,
		Position:    pos,
	}
	if pos.Vertical() {
		t.LabelOffset = tickLabelOffsetVertical
	}
	return t
}

// Translate gives the position of the tick group relative to the axis origin.
func (t AxisTick) Translate() (float32, float32) {
	if t.Position.Vertical() {
		return 0, t.Offset
	}
	return t.Offset, 0
}

// LinePos gives the end of the tick line, its start being the tick origin.
func (t AxisTick) LinePos() (float32, float32) {
	size := float32(tickLength)
	if t.Position.Reverse() {
		size = -size
	}
	if t.Position.Vertical() {
		return size, 0
	}
	return 0, size
}

func (t AxisTick) LabelPos() (float32, float32) {
	size := float32(t.LabelOffset)
	if t.Position.Reverse() {
		size = -size
	}
	if t.Position.Vertical() {
		return size, 0
	}
	return 0, size
}

func (t AxisTick) LabelAnchor() string {
	switch t.Position {
	case AxisLeft:
		return anchorEnd
	case AxisRight:
		return anchorStart
	default:
		return anchorMiddle
	}
}

func (t AxisTick) Render() svg.Element {
	var (
		tx, ty = t.Translate()
		grp    = translateGroup(tx, ty, classTick)
	)
	x2, y2 := t.LinePos()
	line := lineTick(newPos(x2, y2))
	grp.Append(line.AsElement())

	x, y := t.LabelPos()
	text := getBaseText(t.Label, FontSize, newPos(x, y), t.LabelAnchor())
	text.Transform.Rotate(float64(t.LabelRotation), float64(x), float64(y))
	grp.Append(text.AsElement())
	return grp.AsElement()
}

// AxisLine is the domain line of an axis, starting at the axis origin.
type AxisLine struct {
	X2 float32
	Y2 float32
}

func (a AxisLine) Render() svg.Element {
	line := domainLine(newPos(a.X2, a.Y2))
	return line.AsElement()
}

type Axis struct {
	ticks    []AxisTick
	line     AxisLine
	position AxisPosition

	label         string
	labelX        float32
	labelY        float32
	labelRotation int
}

// NewAxis lays out the ticks of scale along one side of a view of the given
// dimension.
func NewAxis[T any](scale Scale[T], pos AxisPosition, viewWidth, viewHeight int) Axis {
	a := Axis{
		position: pos,
		line:     axisLine(pos, viewWidth, viewHeight),
	}
	var (
		ticks  = scale.Ticks()
		offset = scale.TickOffset()
	)
	a.ticks = make([]AxisTick, 0, len(ticks))
	for _, t := range ticks {
		tick := makeAxisTick(scale.Scale(t)+offset, formatTick(t), pos)
		a.ticks = append(a.ticks, tick)
	}

	length := float32(viewWidth)
	if pos.Vertical() {
		length = float32(viewHeight)
	}
	a.labelX = length / 2
	switch pos {
	case AxisTop:
		a.labelY = -32
	case AxisBottom:
		a.labelY = 42
	case AxisLeft:
		a.labelX = -length / 2
		a.labelY = -42
		a.labelRotation = -90
	case AxisRight:
		a.labelY = -28
		a.labelRotation = 90
	}
	return a
}

func (a Axis) SetLabel(label string) Axis {
	a.label = label
	return a
}

func (a Axis) Ticks() []AxisTick {
	list := make([]AxisTick, len(a.ticks))
	copy(list, a.ticks)
	return list
}

func (a Axis) Line() AxisLine {
	return a.line
}

func (a Axis) Position() AxisPosition {
	return a.position
}

func (a Axis) Label() string {
	return a.label
}

func (a Axis) LabelPos() (float32, float32) {
	return a.labelX, a.labelY
}

func (a Axis) LabelRotation() int {
	return a.labelRotation
}

func (a Axis) Render() svg.Element {
	class := classXAxis
	if a.position.Vertical() {
		class = classYAxis
	}
	grp := getBaseGroup("", class)
	grp.Append(a.line.Render())
	for _, t := range a.ticks {
		grp.Append(t.Render())
	}
	if a.label == "" {
		return grp.AsElement()
	}
	text := getBaseText(a.label, LabelFontSize, newPos(a.labelX, a.labelY), anchorMiddle)
	text.Shift = svg.Pos{}
	text.Transform.Rotate(float64(a.labelRotation), 0, 0)
	grp.Append(text.AsElement())
	return grp.AsElement()
}

func axisLine(pos AxisPosition, width, height int) AxisLine {
	if pos.Vertical() {
		return AxisLine{Y2: float32(height)}
	}
	return AxisLine{X2: float32(width)}
}

func formatTick[T any](v T) string {
	switch v := any(v).(type) {
	case float32:
		return formatValue(v)
	case string:
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}

func domainLine(end svg.Pos) svg.Line {
	d := svg.NewLine(svg.NewPos(0, 0), end)
	d.Stroke = svg.NewStroke(strokeColor, 1)
	d.Rendering = "crispEdges"
	return d
}

func lineTick(end svg.Pos) svg.Line {
	tick := svg.NewLine(svg.NewPos(0, 0), end)
	tick.Stroke = svg.NewStroke(strokeColor, 1)
	tick.Rendering = "crispEdges"
	return tick
}
