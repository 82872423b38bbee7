package dash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelect(t *testing.T) {
	row := []string{"jan", "1", " 2.5", "3", "x"}

	t.Run("single", func(t *testing.T) {
		got, err := SelectSingle(1).Select(row)
		require.NoError(t, err)
		assert.Equal(t, []float32{1}, got)
	})
	t.Run("multi", func(t *testing.T) {
		got, err := SelectMulti([]int{1, 2, 3}).Select(row)
		require.NoError(t, err)
		assert.Equal(t, []float32{1, 2.5, 3}, got)
	})
	t.Run("sum", func(t *testing.T) {
		got, err := SelectSum(ExpandRange(1, 3)).Select(row)
		require.NoError(t, err)
		assert.Equal(t, []float32{6.5}, got)
	})
	t.Run("combined", func(t *testing.T) {
		sel := Combined(SelectSingle(3), SelectSum([]int{1, 2}))
		got, err := sel.Select(row)
		require.NoError(t, err)
		assert.Equal(t, []float32{3, 3.5}, got)
		assert.Equal(t, 2, sel.Width())
		assert.Equal(t, []int{3, 1, 2}, sel.Indices())
	})
	t.Run("index", func(t *testing.T) {
		_, err := SelectSingle(10).Select(row)
		assert.ErrorIs(t, err, ErrIndex)

		_, err = SelectMulti([]int{1, -1}).Select(row)
		assert.ErrorIs(t, err, ErrIndex)
	})
	t.Run("number", func(t *testing.T) {
		_, err := SelectSingle(4).Select(row)
		assert.Error(t, err)
	})
}

func TestSelector_Width(t *testing.T) {
	tests := []struct {
		Name    string
		Sel     Selector
		Width   int
		Indices []int
	}{
		{Name: "single", Sel: SelectSingle(1), Width: 1, Indices: []int{1}},
		{Name: "multi", Sel: SelectMulti([]int{1, 2, 3}), Width: 3, Indices: []int{1, 2, 3}},
		{Name: "sum", Sel: SelectSum([]int{1, 2, 3}), Width: 1, Indices: []int{1, 2, 3}},
		{Name: "combined", Sel: Combined(SelectSum([]int{1, 2}), SelectMulti([]int{4, 5})), Width: 3, Indices: []int{1, 2, 4, 5}},
	}
	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			assert.Equal(t, tt.Width, tt.Sel.Width())
			assert.Equal(t, tt.Indices, tt.Sel.Indices())
		})
	}
}

func TestExpandRange(t *testing.T) {
	assert.Equal(t, []int{2, 3, 4}, ExpandRange(2, 4))
	assert.Empty(t, ExpandRange(4, 2))
}
