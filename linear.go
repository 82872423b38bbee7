package lcharts

import (
	"github.com/chewxy/math32"
)

const DefaultTickCount = 11

var (
	tickBreak10 = math32.Sqrt(50)
	tickBreak5  = math32.Sqrt(10)
	tickBreak2  = math32.Sqrt(2)
)

// LinearScale maps a continuous float32 domain onto a pixel range.
type LinearScale struct {
	domainStart float32
	domainEnd   float32
	rangeStart  int
	rangeEnd    int
	tickCount   int
}

func NewLinearScale(domainStart, domainEnd float32, rangeStart, rangeEnd int) LinearScale {
	return LinearScale{
		domainStart: domainStart,
		domainEnd:   domainEnd,
		rangeStart:  rangeStart,
		rangeEnd:    rangeEnd,
		tickCount:   DefaultTickCount,
	}
}

func (s LinearScale) WithTickCount(count int) LinearScale {
	x := s
	x.tickCount = count
	return x
}

func (s LinearScale) Domain() (float32, float32) {
	return s.domainStart, s.domainEnd
}

func (s LinearScale) RangeStart() int {
	return s.rangeStart
}

func (s LinearScale) RangeEnd() int {
	return s.rangeEnd
}

func (s LinearScale) TickCount() int {
	return s.tickCount
}

func (s LinearScale) Kind() ScaleKind {
	return KindLinear
}

func (s LinearScale) Scale(v float32) float32 {
	n := normalize(s.domainStart, s.domainEnd, v)
	return interpolate(float32(s.rangeStart), float32(s.rangeEnd), n)
}

func (s LinearScale) Bandwidth() float32 {
	return 0
}

func (s LinearScale) TickOffset() float32 {
	return 0
}

func (s LinearScale) IsRangeReversed() bool {
	return s.rangeStart > s.rangeEnd
}

// Ticks returns "nice" values covering the domain. A reversed domain yields
// the same ticks as its ordered counterpart.
func (s LinearScale) Ticks() []float32 {
	if s.tickCount <= 0 {
		return []float32{}
	}
	fst, lst := s.domainStart, s.domainEnd
	if math32.Abs(lst-fst) < epsilon {
		return []float32{fst}
	}
	if fst > lst {
		fst, lst = lst, fst
	}
	step := tickStep(fst, lst, s.tickCount)
	if step == 0 || math32.IsNaN(step) || math32.IsInf(step, 0) {
		return []float32{fst}
	}

	var (
		list []float32
		beg  float32
		end  float32
	)
	if step > 0 {
		beg, end = math32.Ceil(fst/step), math32.Floor(lst/step)
		count := tickTotal(end - beg + 1)
		list = make([]float32, 0, count)
		for i := 0; i < count; i++ {
			list = append(list, positiveZero((beg+float32(i))*step))
		}
	} else {
		beg, end = math32.Floor(fst*step), math32.Ceil(lst*step)
		count := tickTotal(beg - end + 1)
		list = make([]float32, 0, count)
		for i := 0; i < count; i++ {
			list = append(list, positiveZero((beg-float32(i))/step))
		}
	}
	return list
}

// tickStep returns the distance between two ticks. A negative result is the
// inverse of the step, used when the step is below 1 to keep the values
// exact.
func tickStep(fst, lst float32, count int) float32 {
	var (
		step  = span(fst, lst) / float32(count)
		power = math32.Trunc(math32.Log(step) / math32.Log(10))
		diff  = step / math32.Pow(10, power)
		mul   float32
	)
	switch {
	case diff >= tickBreak10:
		mul = 10
	case diff >= tickBreak5:
		mul = 5
	case diff >= tickBreak2:
		mul = 2
	default:
		mul = 1
	}
	if power < 0 {
		return -math32.Pow(10, -power) / mul
	}
	return mul * math32.Pow(10, power)
}

func tickTotal(f float32) int {
	n := int(math32.Ceil(f))
	if n < 0 {
		return 0
	}
	return n
}

func positiveZero(f float32) float32 {
	if f == 0 {
		return 0
	}
	return f
}
