package lcharts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLinearScale_Scale(t *testing.T) {
	tests := []struct {
		Name  string
		Scale LinearScale
		Value float32
		Want  float32
	}{
		{
			Name:  "reversed-range",
			Scale: NewLinearScale(0, 200, 540, 0),
			Value: 24,
			Want:  475.2,
		},
		{
			Name:  "ordered-range",
			Scale: NewLinearScale(0, 100, 0, 1000),
			Value: 42,
			Want:  420,
		},
		{
			Name:  "outside-domain",
			Scale: NewLinearScale(0, 10, 0, 100),
			Value: 15,
			Want:  150,
		},
		{
			Name:  "degenerate-domain",
			Scale: NewLinearScale(5, 5, 0, 100),
			Value: 42,
			Want:  50,
		},
	}
	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			assert.InDelta(t, tt.Want, tt.Scale.Scale(tt.Value), 1e-3)
		})
	}
}

func TestLinearScale_Ticks(t *testing.T) {
	tests := []struct {
		Name  string
		Scale LinearScale
		Want  []float32
	}{
		{
			Name:  "hundreds",
			Scale: NewLinearScale(0, 200, 540, 0),
			Want:  []float32{0, 20, 40, 60, 80, 100, 120, 140, 160, 180, 200},
		},
		{
			Name:  "tens",
			Scale: NewLinearScale(0, 100, 0, 100),
			Want:  []float32{0, 10, 20, 30, 40, 50, 60, 70, 80, 90, 100},
		},
		{
			Name:  "fractions",
			Scale: NewLinearScale(0, 0.5, 0, 100),
			Want:  []float32{0, 0.1, 0.2, 0.3, 0.4, 0.5},
		},
		{
			Name:  "small-domain",
			Scale: NewLinearScale(0, 2, 0, 100),
			Want:  []float32{0, 1, 2},
		},
		{
			Name:  "reversed-domain",
			Scale: NewLinearScale(200, 0, 0, 540),
			Want:  []float32{0, 20, 40, 60, 80, 100, 120, 140, 160, 180, 200},
		},
		{
			Name:  "degenerate-domain",
			Scale: NewLinearScale(7, 7, 0, 100),
			Want:  []float32{7},
		},
		{
			Name:  "no-ticks",
			Scale: NewLinearScale(0, 100, 0, 100).WithTickCount(0),
			Want:  []float32{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			got := tt.Scale.Ticks()
			assert.Len(t, got, len(tt.Want))
			assert.InDeltaSlice(t, tt.Want, got, 1e-5)
		})
	}
}

func TestLinearScale_WithTickCount(t *testing.T) {
	var (
		base  = NewLinearScale(0, 100, 0, 100)
		other = base.WithTickCount(5)
	)
	assert.Equal(t, DefaultTickCount, base.TickCount())
	assert.Equal(t, 5, other.TickCount())
	assert.Equal(t, []float32{0, 20, 40, 60, 80, 100}, other.Ticks())
}

func TestLinearScale_Properties(t *testing.T) {
	s := NewLinearScale(0, 100, 540, 0)
	assert.True(t, s.IsRangeReversed())
	assert.Equal(t, KindLinear, s.Kind())
	assert.Zero(t, s.Bandwidth())
	assert.Zero(t, s.TickOffset())
	assert.Equal(t, 540, s.RangeStart())
	assert.Equal(t, 0, s.RangeEnd())

	s = NewLinearScale(0, 100, 0, 540)
	assert.False(t, s.IsRangeReversed())
}
