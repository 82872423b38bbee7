package dash

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/midbel/lcharts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
title  = "sales"
width  = 400
height = 300

[margin]
top    = 30
bottom = 40
left   = 50
right  = 20

[x]
label = "month"

[y]
label = "amount"
ticks = 5

[style]
label-position = "end-inside"

[[view]]
type  = "vbar"
ident = "regions"
y     = [1, 2]
data  = """
month,north,south
jan,10,5
feb,20,10
mar,5,5
"""
`

func TestDecode(t *testing.T) {
	cfg, err := Decode(strings.NewReader(sample))
	require.NoError(t, err)

	assert.Equal(t, "sales", cfg.Title)
	assert.Equal(t, 400, cfg.Width)
	assert.Equal(t, 300, cfg.Height)
	assert.Equal(t, DefaultPath, cfg.File)
	assert.Equal(t, lcharts.Padding{Top: 30, Bottom: 40, Left: 50, Right: 20}, cfg.Margin)
	assert.Equal(t, "month", cfg.X.Label)
	assert.Equal(t, 5, cfg.Y.Ticks)
	assert.Equal(t, "end-inside", cfg.Style.LabelPosition)
	assert.Equal(t, "circle", cfg.Style.Point)

	require.Len(t, cfg.Views, 1)
	view := cfg.Views[0]
	assert.Equal(t, RenderVBar, view.Type)
	assert.Equal(t, "regions", view.Name())
	assert.Equal(t, []int{1, 2}, view.Y)
}

func TestDecode_Unknown(t *testing.T) {
	_, err := Decode(strings.NewReader("colour = \"red\"\n"))
	assert.Error(t, err)
}

func TestBuild_Bars(t *testing.T) {
	cfg, err := Decode(strings.NewReader(sample))
	require.NoError(t, err)

	ch, err := cfg.Build()
	require.NoError(t, err)
	assert.Equal(t, 330, ch.DrawingWidth())
	assert.Equal(t, 230, ch.DrawingHeight())

	views := ch.Views()
	require.Len(t, views, 1)
	bars, ok := views[0].(lcharts.VerticalBarView)
	require.True(t, ok)
	assert.Equal(t, []string{"jan", "feb", "mar"}, bars.X.Ticks())
	assert.Len(t, bars.Bars(), 6)
	assert.Equal(t, lcharts.EndInside, bars.LabelPosition)

	lo, hi := bars.Y.Domain()
	assert.Equal(t, float32(0), lo)
	assert.Equal(t, float32(30), hi)
	assert.Equal(t, 5, bars.Y.TickCount())

	a, ok := ch.Axis(lcharts.AxisBottom)
	require.True(t, ok)
	assert.Equal(t, "month", a.Label())
	a, ok = ch.Axis(lcharts.AxisLeft)
	require.True(t, ok)
	assert.Equal(t, "amount", a.Label())

	var buf bytes.Buffer
	require.NoError(t, cfg.Render(&buf))
	assert.Contains(t, buf.String(), ">sales<")
}

func TestBuild_Lines(t *testing.T) {
	cfg := Default()
	cfg.Y.Domain = []float32{0, 100}
	cfg.Views = []File{
		{
			Type: RenderLine,
			Data: "month,value\njan,10\nfeb,20\n",
		},
		{
			Type:  RenderArea,
			Data:  "month,value\njan,30\nfeb,40\n",
			Style: Style{Fill: "#ff0000", Stroke: "#00ff00"},
		},
	}
	ch, err := cfg.Build()
	require.NoError(t, err)

	views := ch.Views()
	require.Len(t, views, 2)

	line, ok := views[0].(lcharts.LineView)
	require.True(t, ok)
	assert.Len(t, line.Points(), 2)

	area, ok := views[1].(lcharts.AreaView)
	require.True(t, ok)
	assert.Equal(t, lcharts.Color("#ff0000"), area.Fill)
	assert.Equal(t, lcharts.Color("#ff0000"), area.PointFill)
	assert.Equal(t, lcharts.Color("#00ff00"), area.Stroke)
	assert.Equal(t, lcharts.Color("#00ff00"), area.PointStroke)

	points := area.Area().Points
	require.Len(t, points, 4)
	assert.Equal(t, lcharts.Color("#ff0000"), points[0].Fill)
	assert.Equal(t, lcharts.Color("#00ff00"), points[0].Stroke)
	assert.Equal(t, line.PointFill, line.Points()[0].Fill)
}

func TestBuild_HorizontalBars(t *testing.T) {
	cfg := Default()
	cfg.Y.Position = PosRight
	cfg.Views = []File{
		{
			Type: RenderHBar,
			Data: "name,value\na,10\nb,-5\n",
		},
	}
	ch, err := cfg.Build()
	require.NoError(t, err)

	views := ch.Views()
	require.Len(t, views, 1)
	bars, ok := views[0].(lcharts.HorizontalBarView)
	require.True(t, ok)
	assert.Len(t, bars.Bars(), 2)

	lo, hi := bars.X.Domain()
	assert.Equal(t, float32(-5), lo)
	assert.Equal(t, float32(10), hi)

	_, ok = ch.Axis(lcharts.AxisRight)
	assert.True(t, ok)
	_, ok = ch.Axis(lcharts.AxisLeft)
	assert.False(t, ok)
}

func TestBuild_Scatter(t *testing.T) {
	cfg := Default()
	cfg.X.Hidden = true
	cfg.Views = []File{
		{
			Type:  RenderScatter,
			Data:  "x,y\n1,2\n3,4\n",
			Style: Style{Point: "square", HideLabels: true},
		},
	}
	ch, err := cfg.Build()
	require.NoError(t, err)

	views := ch.Views()
	require.Len(t, views, 1)
	scatter, ok := views[0].(lcharts.ScatterView)
	require.True(t, ok)

	points := scatter.Points()
	require.Len(t, points, 2)
	assert.Equal(t, lcharts.PointSquare, points[0].Type)
	assert.False(t, points[0].LabelVisible)

	_, ok = ch.Axis(lcharts.AxisBottom)
	assert.False(t, ok)
}

func TestBuild_Errors(t *testing.T) {
	tests := []struct {
		Name  string
		Views []File
		Err   error
	}{
		{
			Name: "no-view",
			Err:  ErrView,
		},
		{
			Name:  "unknown-type",
			Views: []File{{Type: "pie", Data: "a,1"}},
			Err:   ErrRender,
		},
		{
			Name: "layout",
			Views: []File{
				{Type: RenderVBar, Data: "a,1"},
				{Type: RenderHBar, Data: "a,1"},
			},
			Err: ErrLayout,
		},
		{
			Name: "missing-category",
			Views: []File{
				{Type: RenderVBar, Data: "k,v\na,1\nb,2"},
				{Type: RenderLine, Data: "k,v\na,1"},
			},
			Err: errMissing,
		},
		{
			Name:  "index",
			Views: []File{{Type: RenderVBar, Data: "k,v\na,1", Y: []int{3}}},
			Err:   ErrIndex,
		},
	}
	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			cfg := Default()
			cfg.Views = tt.Views
			_, err := cfg.Build()
			assert.ErrorIs(t, err, tt.Err)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "data.csv"), []byte("month,value\njan,10\nfeb,20\n"), 0o644))

	desc := `
title = "from file"
file  = "chart.svg"

[[view]]
type = "line"
path = "data.csv"
`
	file := filepath.Join(dir, "chart.toml")
	require.NoError(t, os.WriteFile(file, []byte(desc), 0o644))

	cfg, err := Load(file)
	require.NoError(t, err)
	require.Len(t, cfg.Views, 1)
	assert.Equal(t, filepath.Join(dir, "data.csv"), cfg.Views[0].Path)
	assert.Equal(t, "data", cfg.Views[0].Name())

	ch, err := cfg.Build()
	require.NoError(t, err)
	assert.Len(t, ch.Views(), 1)

	cfg.File = filepath.Join(dir, cfg.File)
	require.NoError(t, cfg.Save())
	_, err = os.Stat(cfg.File)
	assert.NoError(t, err)
}

func TestLimit(t *testing.T) {
	rows := [][]string{{"a"}, {"b"}, {"c"}, {"d"}}

	assert.Equal(t, rows, Limit{}.apply(rows))
	assert.Equal(t, rows[1:3], Limit{Beg: 1, End: 3}.apply(rows))
	assert.Equal(t, rows[2:], Limit{Beg: 2}.apply(rows))
	assert.Empty(t, Limit{Beg: 3, End: 2}.apply(rows))
	assert.Empty(t, Limit{Beg: 10}.apply(rows))
}

func TestFile_Load(t *testing.T) {
	f := File{
		Data:  "month,north,south\njan,1,2\nfeb,3,4\nmar,5,6\n",
		Y:     []int{1, 2},
		Limit: Limit{End: 2},
	}
	ds, err := f.load()
	require.NoError(t, err)
	assert.Equal(t, []string{"north", "south"}, ds.Names)
	assert.Equal(t, []string{"jan", "feb"}, ds.Keys)
	assert.Equal(t, [][]float32{{1, 3}, {2, 4}}, ds.Series())

	f.Sum = true
	ds, err = f.load()
	require.NoError(t, err)
	assert.Nil(t, ds.Names)
	assert.Equal(t, []float32{3, 7}, ds.Column())
}
