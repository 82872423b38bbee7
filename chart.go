package lcharts

import (
	"bufio"
	"io"
	"os"

	"github.com/midbel/svg"
)

const (
	DefaultWidth  = 800
	DefaultHeight = 600

	titleOffset = 25
)

type Padding struct {
	Top    int
	Right  int
	Bottom int
	Left   int
}

func DefaultPadding() Padding {
	return Padding{
		Top:    90,
		Right:  40,
		Bottom: 50,
		Left:   60,
	}
}

func (p Padding) Horizontal() int {
	return p.Left + p.Right
}

func (p Padding) Vertical() int {
	return p.Top + p.Bottom
}

// Chart composes axes and views into one document. Views are drawn in a
// frame translated by the left and top margins.
type Chart struct {
	Title  string
	Width  int
	Height int
	Padding

	axes   map[AxisPosition]Axis
	labels map[AxisPosition]string
	views  []View
}

func NewChart() Chart {
	return Chart{
		Width:   DefaultWidth,
		Height:  DefaultHeight,
		Padding: DefaultPadding(),
		axes:    make(map[AxisPosition]Axis),
		labels:  make(map[AxisPosition]string),
	}
}

func (c Chart) SetWidth(width int) Chart {
	c.Width = width
	return c
}

func (c Chart) SetHeight(height int) Chart {
	c.Height = height
	return c
}

func (c Chart) SetMarginTop(margin int) Chart {
	c.Padding.Top = margin
	return c
}

func (c Chart) SetMarginBottom(margin int) Chart {
	c.Padding.Bottom = margin
	return c
}

func (c Chart) SetMarginLeft(margin int) Chart {
	c.Padding.Left = margin
	return c
}

func (c Chart) SetMarginRight(margin int) Chart {
	c.Padding.Right = margin
	return c
}

func (c Chart) SetMargins(top, bottom, left, right int) Chart {
	c.Padding = Padding{
		Top:    top,
		Bottom: bottom,
		Left:   left,
		Right:  right,
	}
	return c
}

func (c Chart) SetTitle(title string) Chart {
	c.Title = title
	return c
}

// DrawingWidth is the width left to the views once margins are removed.
func (c Chart) DrawingWidth() int {
	return c.Width - c.Padding.Horizontal()
}

func (c Chart) DrawingHeight() int {
	return c.Height - c.Padding.Vertical()
}

func (c Chart) SetAxisTopBand(scale BandScale) Chart {
	return c.setAxis(NewAxis[string](scale, AxisTop, c.DrawingWidth(), c.DrawingHeight()))
}

func (c Chart) SetAxisTopLinear(scale LinearScale) Chart {
	return c.setAxis(NewAxis[float32](scale, AxisTop, c.DrawingWidth(), c.DrawingHeight()))
}

func (c Chart) SetAxisBottomBand(scale BandScale) Chart {
	return c.setAxis(NewAxis[string](scale, AxisBottom, c.DrawingWidth(), c.DrawingHeight()))
}

func (c Chart) SetAxisBottomLinear(scale LinearScale) Chart {
	return c.setAxis(NewAxis[float32](scale, AxisBottom, c.DrawingWidth(), c.DrawingHeight()))
}

func (c Chart) SetAxisLeftBand(scale BandScale) Chart {
	return c.setAxis(NewAxis[string](scale, AxisLeft, c.DrawingWidth(), c.DrawingHeight()))
}

func (c Chart) SetAxisLeftLinear(scale LinearScale) Chart {
	return c.setAxis(NewAxis[float32](scale, AxisLeft, c.DrawingWidth(), c.DrawingHeight()))
}

func (c Chart) SetAxisRightBand(scale BandScale) Chart {
	return c.setAxis(NewAxis[string](scale, AxisRight, c.DrawingWidth(), c.DrawingHeight()))
}

func (c Chart) SetAxisRightLinear(scale LinearScale) Chart {
	return c.setAxis(NewAxis[float32](scale, AxisRight, c.DrawingWidth(), c.DrawingHeight()))
}

func (c Chart) SetAxisTopLabel(label string) Chart {
	return c.SetAxisLabel(AxisTop, label)
}

func (c Chart) SetAxisBottomLabel(label string) Chart {
	return c.SetAxisLabel(AxisBottom, label)
}

func (c Chart) SetAxisLeftLabel(label string) Chart {
	return c.SetAxisLabel(AxisLeft, label)
}

func (c Chart) SetAxisRightLabel(label string) Chart {
	return c.SetAxisLabel(AxisRight, label)
}

// SetAxisLabel sets the label of the axis drawn at pos. The label is kept if
// the axis is replaced.
func (c Chart) SetAxisLabel(pos AxisPosition, label string) Chart {
	x := c.clone()
	x.labels[pos] = label
	return x
}

// Axis returns the axis drawn at pos with its label applied.
func (c Chart) Axis(pos AxisPosition) (Axis, bool) {
	a, ok := c.axes[pos]
	if !ok {
		return a, ok
	}
	if label, ok := c.labels[pos]; ok {
		a = a.SetLabel(label)
	}
	return a, true
}

func (c Chart) AddView(v View) Chart {
	x := c.clone()
	x.views = append(x.views, v)
	return x
}

func (c Chart) Views() []View {
	return c.views
}

func (c Chart) Render(w io.Writer) error {
	el := svg.NewSVG()
	el.Dim = svg.NewDim(float64(c.Width), float64(c.Height))

	grp := getBaseGroup("", classChart)
	grp.Append(c.drawAxis())
	grp.Append(c.drawViews())
	if t := c.drawTitle(); t != nil {
		grp.Append(t)
	}
	el.Append(grp.AsElement())

	bw := bufio.NewWriter(w)
	el.Render(bw)
	return bw.Flush()
}

func (c Chart) Save(file string) error {
	w, err := os.Create(file)
	if err != nil {
		return SaveFileError{Path: file, Err: err}
	}
	defer w.Close()
	if err := c.Render(w); err != nil {
		return SaveFileError{Path: file, Err: err}
	}
	if err := w.Close(); err != nil {
		return SaveFileError{Path: file, Err: err}
	}
	return nil
}

func (c Chart) setAxis(a Axis) Chart {
	x := c.clone()
	x.axes[a.Position()] = a
	return x
}

func (c Chart) drawAxis() svg.Element {
	var grp svg.Group
	positions := []AxisPosition{AxisTop, AxisBottom, AxisLeft, AxisRight}
	for _, pos := range positions {
		a, ok := c.Axis(pos)
		if !ok {
			continue
		}
		var x, y int
		switch pos {
		case AxisTop, AxisLeft:
			x, y = c.Padding.Left, c.Padding.Top
		case AxisBottom:
			x, y = c.Padding.Left, c.Height-c.Padding.Bottom
		case AxisRight:
			x, y = c.Width-c.Padding.Right, c.Padding.Top
		}
		g := translateGroup(float32(x), float32(y))
		g.Append(a.Render())
		grp.Append(g.AsElement())
	}
	return grp.AsElement()
}

func (c Chart) drawViews() svg.Element {
	grp := translateGroup(float32(c.Padding.Left), float32(c.Padding.Top), classViews)
	for _, v := range c.views {
		grp.Append(v.Render())
	}
	return grp.AsElement()
}

func (c Chart) drawTitle() svg.Element {
	if c.Title == "" {
		return nil
	}
	grp := translateGroup(float32(c.Width)/2, titleOffset, classTitle)
	text := getBaseText(c.Title, TitleFontSize, svg.NewPos(0, 0), anchorMiddle)
	grp.Append(text.AsElement())
	return grp.AsElement()
}

func (c Chart) clone() Chart {
	x := c
	x.axes = make(map[AxisPosition]Axis, len(c.axes))
	for k, v := range c.axes {
		x.axes[k] = v
	}
	x.labels = make(map[AxisPosition]string, len(c.labels))
	for k, v := range c.labels {
		x.labels[k] = v
	}
	x.views = append([]View(nil), c.views...)
	return x
}
