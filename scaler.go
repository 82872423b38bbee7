package lcharts

import (
	"github.com/chewxy/math32"
)

// epsilon is the float32 machine epsilon.
const epsilon float32 = 1.1920929e-07

type ScaleKind int

const (
	KindLinear ScaleKind = iota
	KindBand
)

func (k ScaleKind) String() string {
	switch k {
	case KindLinear:
		return "linear"
	case KindBand:
		return "band"
	default:
		return "unknown"
	}
}

// Scale maps a value of its domain onto a pixel coordinate.
type Scale[T any] interface {
	Scale(T) float32
	Ticks() []T
	Kind() ScaleKind
	Bandwidth() float32
	IsRangeReversed() bool
	TickOffset() float32
}

// normalize returns the relative position of v between fst and lst. A
// degenerate interval maps every value to its midpoint.
func normalize(fst, lst, v float32) float32 {
	diff := lst - fst
	if math32.Abs(diff) < epsilon {
		return 0.5
	}
	return (v - fst) / diff
}

func interpolate(fst, lst, v float32) float32 {
	return span(fst, lst)*v + fst
}

func span(fst, lst float32) float32 {
	return lst - fst
}
