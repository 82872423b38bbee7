package lcharts

import (
	"github.com/midbel/svg"
)

type barOptions struct {
	LabelVisible  bool
	LabelPosition BarLabelPosition
}

func defaultBarOptions() barOptions {
	return barOptions{
		LabelVisible:  true,
		LabelPosition: Center,
	}
}

// stackBars stacks the values of each category along the value scale.
func stackBars(series []BarsValues, category BandScale, value LinearScale, orient Orientation, opts barOptions) ([]Bar, error) {
	categories := category.Ticks()
	groups, err := groupByCategory(series, categories)
	if err != nil {
		return nil, err
	}
	var bars []Bar
	for _, c := range categories {
		var (
			acc   float32
			start = value.Scale(acc)
			end   = start
		)
		for _, cv := range groups[c] {
			acc += cv.value
			if value.IsRangeReversed() {
				end = start
				start = value.Scale(acc)
			} else {
				start = end
				end = value.Scale(acc)
			}
			bar := NewBar(start, end, cv.value, category.Bandwidth(), category.Scale(c), orient)
			bar.Fill = cv.fill
			bar.Stroke = cv.stroke
			bar.LabelVisible = opts.LabelVisible
			bar.LabelPosition = opts.LabelPosition
			bars = append(bars, bar)
		}
	}
	return bars, nil
}

func renderBars(bars []Bar) svg.Element {
	var grp svg.Group
	for _, b := range bars {
		grp.Append(b.Render())
	}
	return grp.AsElement()
}

// VerticalBarView draws stacked bars growing along the y axis.
type VerticalBarView struct {
	X BandScale
	Y LinearScale
	barOptions

	bars []Bar
}

func NewVerticalBarView(x BandScale, y LinearScale) VerticalBarView {
	return VerticalBarView{
		X:          x,
		Y:          y,
		barOptions: defaultBarOptions(),
	}
}

func (v VerticalBarView) SetData(series []BarsValues) (VerticalBarView, error) {
	bars, err := stackBars(series, v.X, v.Y, Vertical, v.barOptions)
	if err != nil {
		return v, err
	}
	v.bars = bars
	return v, nil
}

func (v VerticalBarView) Bars() []Bar {
	return v.bars
}

func (v VerticalBarView) Render() svg.Element {
	return renderBars(v.bars)
}

// HorizontalBarView draws stacked bars growing along the x axis.
type HorizontalBarView struct {
	X LinearScale
	Y BandScale
	barOptions

	bars []Bar
}

func NewHorizontalBarView(x LinearScale, y BandScale) HorizontalBarView {
	return HorizontalBarView{
		X:          x,
		Y:          y,
		barOptions: defaultBarOptions(),
	}
}

func (v HorizontalBarView) SetData(series []BarsValues) (HorizontalBarView, error) {
	bars, err := stackBars(series, v.Y, v.X, Horizontal, v.barOptions)
	if err != nil {
		return v, err
	}
	v.bars = bars
	return v, nil
}

func (v HorizontalBarView) Bars() []Bar {
	return v.bars
}

func (v HorizontalBarView) Render() svg.Element {
	return renderBars(v.bars)
}
