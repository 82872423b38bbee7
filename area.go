package lcharts

import (
	"github.com/midbel/slices"
	"github.com/midbel/svg"
)

// Area is a closed polygon going through its points.
type Area struct {
	Points []Point
	Fill   Color
	Stroke Color
}

func NewArea(points []Point, fill, stroke Color) Area {
	return Area{
		Points: points,
		Fill:   fill,
		Stroke: stroke,
	}
}

func (a Area) Render() svg.Element {
	grp := getBaseGroup("", classArea)
	if len(a.Points) == 0 {
		return grp.AsElement()
	}
	pat := getBasePath(a.Fill, a.Stroke, 1)
	fst := slices.Fst(a.Points)
	pat.AbsMoveTo(newPos(fst.X, fst.Y))
	for _, pt := range slices.Rest(a.Points) {
		pat.AbsLineTo(newPos(pt.X, pt.Y))
	}
	pat.ClosePath()
	grp.Append(pat.AsElement())
	for _, pt := range a.Points {
		grp.Append(pt.Render())
	}
	return grp.AsElement()
}
