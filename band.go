package lcharts

import (
	"github.com/chewxy/math32"
	"github.com/midbel/slices"
)

const (
	DefaultInnerPadding float32 = 0.1
	DefaultOuterPadding float32 = 0.1
	DefaultAlign        float32 = 0.5
)

// BandScale maps a list of distinct labels onto evenly spaced bands of a
// pixel range.
type BandScale struct {
	domain     []string
	rangeStart int
	rangeEnd   int

	step         float32
	bandwidth    float32
	paddingInner float32
	paddingOuter float32
	align        float32

	index   map[string]int
	offsets []float32

	noBoundariesOffset bool
}

func NewBandScale(labels []string, rangeStart, rangeEnd int) BandScale {
	s := BandScale{
		domain:       uniqueLabels(labels),
		rangeStart:   rangeStart,
		rangeEnd:     rangeEnd,
		step:         1,
		bandwidth:    1,
		paddingInner: DefaultInnerPadding,
		paddingOuter: DefaultOuterPadding,
		align:        DefaultAlign,
	}
	return s.rescale()
}

func (s BandScale) SetInnerPadding(padding float32) BandScale {
	x := s.clone()
	x.paddingInner = padding
	return x.rescale()
}

func (s BandScale) SetOuterPadding(padding float32) BandScale {
	x := s.clone()
	x.paddingOuter = padding
	return x.rescale()
}

func (s BandScale) SetAlign(align float32) BandScale {
	x := s.clone()
	x.align = align
	return x.rescale()
}

// SetNoBoundariesOffset makes the first and last labels sit on the range
// boundaries instead of at the center of their band.
func (s BandScale) SetNoBoundariesOffset(set bool) BandScale {
	x := s.clone()
	x.noBoundariesOffset = set
	return x.rescale()
}

func (s BandScale) Kind() ScaleKind {
	return KindBand
}

func (s BandScale) Scale(label string) float32 {
	f, _ := s.Lookup(label)
	return f
}

// Lookup returns the offset of label and whether the label belongs to the
// domain.
func (s BandScale) Lookup(label string) (float32, bool) {
	i, ok := s.index[label]
	if !ok || i >= len(s.offsets) {
		return 0, false
	}
	return s.offsets[i], true
}

func (s BandScale) Ticks() []string {
	list := make([]string, len(s.domain))
	copy(list, s.domain)
	return list
}

func (s BandScale) Bandwidth() float32 {
	return s.bandwidth
}

func (s BandScale) Step() float32 {
	return s.step
}

func (s BandScale) TickOffset() float32 {
	if s.noBoundariesOffset {
		return 0
	}
	return s.bandwidth / 2
}

func (s BandScale) IsRangeReversed() bool {
	return s.rangeStart > s.rangeEnd
}

func (s BandScale) RangeStart() int {
	return s.rangeStart
}

func (s BandScale) RangeEnd() int {
	return s.rangeEnd
}

func (s BandScale) Len() int {
	return len(s.domain)
}

func (s BandScale) Offsets() []float32 {
	list := make([]float32, len(s.offsets))
	copy(list, s.offsets)
	return list
}

func (s BandScale) rescale() BandScale {
	var (
		count      = float32(len(s.domain))
		boundaries = len(s.domain) - 1
		fst        = float32(s.rangeStart)
		lst        = float32(s.rangeEnd)
		reverse    = s.IsRangeReversed()
	)
	if s.noBoundariesOffset {
		count--
		boundaries++
	}
	if reverse {
		fst, lst = lst, fst
	}
	var (
		length = span(fst, lst)
		padded = count - s.paddingInner
	)
	s.step = length / math32.Max(1, padded+2*s.paddingOuter)
	fst += (length - s.step*padded) * s.align
	s.bandwidth = s.step * (1 - s.paddingInner)

	s.index = make(map[string]int, len(s.domain))
	s.offsets = make([]float32, 0, boundaries+1)
	if len(s.domain) == 0 {
		return s
	}
	for i := 0; i <= boundaries; i++ {
		s.offsets = append(s.offsets, fst+s.step*float32(i))
	}
	if reverse {
		s.offsets = slices.Reverse(s.offsets)
	}
	for i, label := range s.domain {
		s.index[label] = i
	}
	return s
}

func (s BandScale) clone() BandScale {
	x := s
	x.domain = make([]string, len(s.domain))
	copy(x.domain, s.domain)
	return x
}

func uniqueLabels(labels []string) []string {
	var (
		list = make([]string, 0, len(labels))
		seen = make(map[string]struct{})
	)
	for _, str := range labels {
		if _, ok := seen[str]; ok {
			continue
		}
		seen[str] = struct{}{}
		list = append(list, str)
	}
	return list
}
