package lcharts

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineView(t *testing.T) {
	var (
		x = NewBandScale([]string{"A", "B", "C"}, 0, 300)
		y = NewLinearScale(0, 100, 200, 0)
	)
	view, err := NewLineView(x, y).SetData([]float32{10, 50, 100})
	require.NoError(t, err)

	points := view.Points()
	require.Len(t, points, 3)
	for i, c := range []string{"A", "B", "C"} {
		assert.InDelta(t, x.Scale(c)+x.TickOffset(), points[i].X, 1e-4)
	}
	assert.InDelta(t, 180, points[0].Y, 1e-3)
	assert.InDelta(t, 100, points[1].Y, 1e-3)
	assert.InDelta(t, 0, points[2].Y, 1e-3)
	assert.Equal(t, "50", points[1].Label())
	assert.Equal(t, ColorBlue2, points[0].Fill)

	var buf bytes.Buffer
	view.Render().Render(&buf)
	str := buf.String()
	assert.Contains(t, str, `class="line"`)
	assert.Contains(t, str, "<path")
}

func TestLineView_Errors(t *testing.T) {
	var (
		x = NewBandScale([]string{"A", "B", "C", "D"}, 0, 300)
		y = NewLinearScale(0, 100, 200, 0)
	)
	_, err := NewLineView(x, y).SetData([]float32{1, 2, 3})
	assert.ErrorIs(t, err, ErrCategoriesCountDoesntEqual)

	_, err = NewLineView(x, y).SetData(nil)
	assert.ErrorIs(t, err, ErrDataIsEmpty)
}

func TestLineView_Options(t *testing.T) {
	var (
		x = NewBandScale([]string{"A", "B"}, 0, 300)
		y = NewLinearScale(0, 100, 200, 0)
	)
	view := NewLineView(x, y)
	view.PointType = PointSquare
	view.PointVisible = false
	view.LabelPosition = LabelBottom

	view, err := view.SetData([]float32{1, 2})
	require.NoError(t, err)
	for _, pt := range view.Points() {
		assert.Equal(t, PointSquare, pt.Type)
		assert.False(t, pt.PointVisible)
		assert.Equal(t, LabelBottom, pt.LabelPosition)
	}
}

func TestAreaView(t *testing.T) {
	var (
		x = NewBandScale([]string{"A", "B", "C"}, 0, 300)
		y = NewLinearScale(0, 100, 200, 0)
	)
	view, err := NewAreaView(x, y).SetData([]float32{10, 20, 30})
	require.NoError(t, err)

	area := view.Area()
	require.Len(t, area.Points, 5)
	assert.Equal(t, ColorGreen5, area.Fill)
	assert.Equal(t, ColorGreen1, area.Stroke)

	var (
		last  = area.Points[3]
		first = area.Points[4]
	)
	assert.InDelta(t, area.Points[2].X, last.X, 1e-4)
	assert.InDelta(t, area.Points[0].X, first.X, 1e-4)
	assert.Equal(t, float32(200), last.Y)
	assert.Equal(t, float32(200), first.Y)
	assert.False(t, last.PointVisible)
	assert.False(t, last.LabelVisible)
	assert.True(t, area.Points[0].PointVisible)
}

func TestAreaView_Origin(t *testing.T) {
	var (
		x = NewBandScale([]string{"A", "B"}, 0, 300)
		y = NewLinearScale(0, 100, 0, 200)
	)
	view, err := NewAreaView(x, y).SetData([]float32{10, 20})
	require.NoError(t, err)

	points := view.Area().Points
	require.Len(t, points, 4)
	assert.Equal(t, float32(200), points[2].Y)
	assert.Equal(t, float32(200), points[3].Y)
}

func TestAreaView_Errors(t *testing.T) {
	var (
		x = NewBandScale([]string{"A", "B"}, 0, 300)
		y = NewLinearScale(0, 100, 200, 0)
	)
	_, err := NewAreaView(x, y).SetData([]float32{1, 2, 3})
	assert.ErrorIs(t, err, ErrCategoriesCountDoesntEqual)

	_, err = NewAreaView(x, y).SetData(nil)
	assert.ErrorIs(t, err, ErrDataIsEmpty)
}

func TestScatterView(t *testing.T) {
	var (
		x = NewLinearScale(0, 10, 0, 100)
		y = NewLinearScale(0, 10, 100, 0)
	)
	view, err := NewScatterView(x, y).SetData([]ScatterPoint{
		{X: 1, Y: 2},
		{X: 5, Y: 7.5},
	})
	require.NoError(t, err)

	points := view.Points()
	require.Len(t, points, 2)
	assert.InDelta(t, 10, points[0].X, 1e-4)
	assert.InDelta(t, 80, points[0].Y, 1e-4)
	assert.Equal(t, "(1,2)", points[0].Label())
	assert.Equal(t, "(5,7.5)", points[1].Label())
	assert.Equal(t, ColorBlue4, points[0].Fill)

	_, err = NewScatterView(x, y).SetData(nil)
	assert.ErrorIs(t, err, ErrDataIsEmpty)
}
