package dash

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
	"github.com/midbel/lcharts"
)

var errDomain = errors.New("domain expects exactly two values")

const (
	PosTop    = "top"
	PosRight  = "right"
	PosBottom = "bottom"
	PosLeft   = "left"
)

// Domain configures the scale and the axis of one dimension of a chart.
type Domain struct {
	Label        string    `toml:"label"`
	Position     string    `toml:"position"`
	Domain       []float32 `toml:"domain"`
	Categories   []string  `toml:"categories"`
	Ticks        int       `toml:"ticks"`
	InnerPadding *float32  `toml:"inner-padding"`
	OuterPadding *float32  `toml:"outer-padding"`
	NoBoundaries bool      `toml:"no-boundaries"`
	Hidden       bool      `toml:"hidden"`
}

func (d Domain) makeLinearScale(ext extent, rangeStart, rangeEnd int) (lcharts.LinearScale, error) {
	fst, lst := ext.min, ext.max
	switch len(d.Domain) {
	case 0:
	case 2:
		fst, lst = d.Domain[0], d.Domain[1]
	default:
		return lcharts.LinearScale{}, errDomain
	}
	scale := lcharts.NewLinearScale(fst, lst, rangeStart, rangeEnd)
	if d.Ticks > 0 {
		scale = scale.WithTickCount(d.Ticks)
	}
	return scale, nil
}

func (d Domain) makeBandScale(keys []string, rangeStart, rangeEnd int) lcharts.BandScale {
	labels := d.Categories
	if len(labels) == 0 {
		labels = keys
	}
	scale := lcharts.NewBandScale(labels, rangeStart, rangeEnd)
	if d.InnerPadding != nil {
		scale = scale.SetInnerPadding(*d.InnerPadding)
	}
	if d.OuterPadding != nil {
		scale = scale.SetOuterPadding(*d.OuterPadding)
	}
	if d.NoBoundaries {
		scale = scale.SetNoBoundariesOffset(true)
	}
	return scale
}

func (d Domain) getPosition(def lcharts.AxisPosition, vertical bool) (lcharts.AxisPosition, error) {
	var pos lcharts.AxisPosition
	switch d.Position {
	case "":
		return def, nil
	case PosTop:
		pos = lcharts.AxisTop
	case PosBottom:
		pos = lcharts.AxisBottom
	case PosLeft:
		pos = lcharts.AxisLeft
	case PosRight:
		pos = lcharts.AxisRight
	default:
		return 0, fmt.Errorf("%s: unknown axis position", d.Position)
	}
	if pos.Vertical() != vertical {
		return 0, fmt.Errorf("%s: axis position does not fit the dimension", d.Position)
	}
	return pos, nil
}

type extent struct {
	min float32
	max float32
	set bool
}

func (e extent) add(vs ...float32) extent {
	for _, v := range vs {
		if !e.set {
			e.min, e.max, e.set = v, v, true
			continue
		}
		e.min = math32.Min(e.min, v)
		e.max = math32.Max(e.max, v)
	}
	return e
}

func (e extent) merge(other extent) extent {
	if !other.set {
		return e
	}
	return e.add(other.min, other.max)
}

// stacked gives the extent of the values of series stacked per position.
func stacked(series [][]float32) extent {
	var (
		pos []float32
		neg []float32
	)
	for _, s := range series {
		for i, v := range s {
			for len(pos) <= i {
				pos = append(pos, 0)
				neg = append(neg, 0)
			}
			if v < 0 {
				neg[i] += v
			} else {
				pos[i] += v
			}
		}
	}
	var e extent
	e = e.add(0)
	e = e.add(pos...)
	return e.add(neg...)
}
