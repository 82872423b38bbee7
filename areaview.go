package lcharts

import (
	"github.com/midbel/slices"
	"github.com/midbel/svg"
)

// AreaView draws the surface between the values of each category and the
// origin of the y scale.
type AreaView struct {
	X      BandScale
	Y      LinearScale
	Fill   Color
	Stroke Color
	pointOptions

	area Area
}

func NewAreaView(x BandScale, y LinearScale) AreaView {
	return AreaView{
		X:            x,
		Y:            y,
		Fill:         ColorGreen5,
		Stroke:       ColorGreen1,
		pointOptions: defaultPointOptions(ColorGreen4, ColorGreen1),
	}
}

func (v AreaView) SetData(data []float32) (AreaView, error) {
	points, err := categoryPoints(data, v.X, v.Y, v.pointOptions)
	if err != nil {
		return v, err
	}
	var (
		categories = v.X.Ticks()
		xoff       = bandOffset[string](v.X)
		origin     = float32(v.Y.RangeEnd())
	)
	if v.Y.IsRangeReversed() {
		origin = float32(v.Y.RangeStart())
	}
	closing := func(category string) Point {
		pt := v.makePoint(v.X.Scale(category)+xoff, origin, formatValue(slices.Fst(data)))
		pt.PointVisible = false
		pt.LabelVisible = false
		return pt
	}
	points = append(points, closing(slices.Lst(categories)), closing(slices.Fst(categories)))

	v.area = NewArea(points, v.Fill, v.Stroke)
	return v, nil
}

func (v AreaView) Area() Area {
	return v.area
}

func (v AreaView) Render() svg.Element {
	return v.area.Render()
}
