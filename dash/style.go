package dash

import (
	"fmt"

	"github.com/midbel/lcharts"
)

// Style controls how the shapes of a view are drawn. Empty fields take the
// value of the global style.
type Style struct {
	Fill          string `toml:"fill"`
	Stroke        string `toml:"stroke"`
	Point         string `toml:"point"`
	LabelPosition string `toml:"label-position"`
	HideLabels    bool   `toml:"hide-labels"`
	HidePoints    bool   `toml:"hide-points"`
}

func GlobalStyle() Style {
	return Style{
		Point: "circle",
	}
}

func (s Style) merge(g Style) Style {
	if s.Fill == "" {
		s.Fill = g.Fill
	}
	if s.Stroke == "" {
		s.Stroke = g.Stroke
	}
	if s.Point == "" {
		s.Point = g.Point
	}
	if s.LabelPosition == "" {
		s.LabelPosition = g.LabelPosition
	}
	s.HideLabels = s.HideLabels || g.HideLabels
	s.HidePoints = s.HidePoints || g.HidePoints
	return s
}

func (s Style) fill(def lcharts.Color) lcharts.Color {
	if s.Fill == "" {
		return def
	}
	return lcharts.NewColorFromHex(s.Fill)
}

func (s Style) stroke(def lcharts.Color) lcharts.Color {
	if s.Stroke == "" {
		return def
	}
	return lcharts.NewColorFromHex(s.Stroke)
}

func (s Style) getPointType() (lcharts.PointType, error) {
	switch s.Point {
	case "", "circle":
		return lcharts.PointCircle, nil
	case "square":
		return lcharts.PointSquare, nil
	case "x", "cross":
		return lcharts.PointX, nil
	default:
		return 0, fmt.Errorf("%s: unknown point type", s.Point)
	}
}

func (s Style) getBarLabelPosition() (lcharts.BarLabelPosition, error) {
	switch s.LabelPosition {
	case "", "center":
		return lcharts.Center, nil
	case "start-outside":
		return lcharts.StartOutside, nil
	case "start-inside":
		return lcharts.StartInside, nil
	case "end-inside":
		return lcharts.EndInside, nil
	case "end-outside":
		return lcharts.EndOutside, nil
	default:
		return 0, fmt.Errorf("%s: unknown bar label position", s.LabelPosition)
	}
}

func (s Style) getPointLabelPosition() (lcharts.PointLabelPosition, error) {
	switch s.LabelPosition {
	case "", "top":
		return lcharts.LabelTop, nil
	case "top-right":
		return lcharts.LabelTopRight, nil
	case "top-left":
		return lcharts.LabelTopLeft, nil
	case "left":
		return lcharts.LabelLeft, nil
	case "right":
		return lcharts.LabelRight, nil
	case "bottom":
		return lcharts.LabelBottom, nil
	case "bottom-left":
		return lcharts.LabelBottomLeft, nil
	case "bottom-right":
		return lcharts.LabelBottomRight, nil
	default:
		return 0, fmt.Errorf("%s: unknown point label position", s.LabelPosition)
	}
}
