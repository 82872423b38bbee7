package lcharts

import (
	"github.com/midbel/slices"
	"github.com/midbel/svg"
)

const lineStrokeWidth = 2

type pointOptions struct {
	PointType     PointType
	PointVisible  bool
	PointFill     Color
	PointStroke   Color
	LabelVisible  bool
	LabelPosition PointLabelPosition
}

func defaultPointOptions(fill, stroke Color) pointOptions {
	return pointOptions{
		PointType:     PointCircle,
		PointVisible:  true,
		PointFill:     fill,
		PointStroke:   stroke,
		LabelVisible:  true,
		LabelPosition: LabelTop,
	}
}

func (o pointOptions) makePoint(x, y float32, label string) Point {
	pt := NewPoint(x, y, o.PointType, DefaultPointSize, label, o.PointFill, o.PointStroke)
	pt.PointVisible = o.PointVisible
	pt.LabelVisible = o.LabelVisible
	pt.LabelPosition = o.LabelPosition
	return pt
}

// bandOffset moves a coordinate to the middle of its band, towards the end of
// the range.
func bandOffset[T any](s Scale[T]) float32 {
	if s.IsRangeReversed() {
		return -s.TickOffset()
	}
	return s.TickOffset()
}

// categoryPoints places one point per category of x, the i-th value going
// to the i-th category.
func categoryPoints(data []float32, x BandScale, y LinearScale, opts pointOptions) ([]Point, error) {
	if len(data) == 0 {
		return nil, ErrDataIsEmpty
	}
	categories := x.Ticks()
	if len(data) != len(categories) {
		return nil, ErrCategoriesCountDoesntEqual
	}
	var (
		xoff   = bandOffset[string](x)
		yoff   = bandOffset[float32](y)
		points = make([]Point, 0, len(data))
	)
	for i, v := range data {
		pt := opts.makePoint(x.Scale(categories[i])+xoff, y.Scale(v)+yoff, formatValue(v))
		points = append(points, pt)
	}
	return points, nil
}

// LineView draws a polyline going through one point per category.
type LineView struct {
	X      BandScale
	Y      LinearScale
	Stroke Color
	pointOptions

	points []Point
}

func NewLineView(x BandScale, y LinearScale) LineView {
	return LineView{
		X:            x,
		Y:            y,
		Stroke:       ColorBlue1,
		pointOptions: defaultPointOptions(ColorBlue2, ColorBlue1),
	}
}

func (v LineView) SetData(data []float32) (LineView, error) {
	points, err := categoryPoints(data, v.X, v.Y, v.pointOptions)
	if err != nil {
		return v, err
	}
	v.points = points
	return v, nil
}

func (v LineView) Points() []Point {
	return v.points
}

func (v LineView) Render() svg.Element {
	grp := getBaseGroup("", classLine)
	if len(v.points) == 0 {
		return grp.AsElement()
	}
	pat := getBasePath("", v.Stroke, lineStrokeWidth)
	fst := slices.Fst(v.points)
	pat.AbsMoveTo(newPos(fst.X, fst.Y))
	for _, pt := range slices.Rest(v.points) {
		pat.AbsLineTo(newPos(pt.X, pt.Y))
	}
	for _, pt := range v.points {
		grp.Append(pt.Render())
	}
	grp.Append(pat.AsElement())
	return grp.AsElement()
}
