package lcharts

import (
	"github.com/midbel/svg"
)

// ScatterPoint is one (x, y) pair of a scatter view.
type ScatterPoint struct {
	X float32
	Y float32
}

type ScatterView struct {
	X LinearScale
	Y LinearScale
	pointOptions

	points []Point
}

func NewScatterView(x, y LinearScale) ScatterView {
	return ScatterView{
		X:            x,
		Y:            y,
		pointOptions: defaultPointOptions(ColorBlue4, ColorBlue3),
	}
}

func (v ScatterView) SetData(data []ScatterPoint) (ScatterView, error) {
	if len(data) == 0 {
		return v, ErrDataIsEmpty
	}
	var (
		xoff   = bandOffset[float32](v.X)
		yoff   = bandOffset[float32](v.Y)
		points = make([]Point, 0, len(data))
	)
	for _, d := range data {
		pt := v.makePoint(v.X.Scale(d.X)+xoff, v.Y.Scale(d.Y)+yoff, formatValue(d.Y))
		pt.XLabel = formatValue(d.X)
		points = append(points, pt)
	}
	v.points = points
	return v, nil
}

func (v ScatterView) Points() []Point {
	return v.points
}

func (v ScatterView) Render() svg.Element {
	var grp svg.Group
	for _, pt := range v.points {
		grp.Append(pt.Render())
	}
	return grp.AsElement()
}
