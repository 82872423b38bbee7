package dash

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/midbel/lcharts"
	"github.com/pelletier/go-toml/v2"
)

var (
	DefaultWidth  = lcharts.DefaultWidth
	DefaultHeight = lcharts.DefaultHeight
	DefaultPath   = "out.svg"
)

var (
	ErrView    = errors.New("chart has no view")
	ErrLayout  = errors.New("views can not share the same axes")
	ErrRender  = errors.New("unknown view type")
	errMissing = errors.New("missing value for category")
)

type layout int

const (
	layoutColumn layout = iota + 1
	layoutRow
	layoutScatter
)

func layoutOf(kind string) (layout, error) {
	switch kind {
	case RenderVBar, RenderLine, RenderArea:
		return layoutColumn, nil
	case RenderHBar:
		return layoutRow, nil
	case RenderScatter:
		return layoutScatter, nil
	default:
		return 0, fmt.Errorf("%s: %w", kind, ErrRender)
	}
}

// Config is the description of a chart, as read from a TOML document.
type Config struct {
	Title  string          `toml:"title"`
	File   string          `toml:"file"`
	Width  int             `toml:"width"`
	Height int             `toml:"height"`
	Margin lcharts.Padding `toml:"margin"`

	X     Domain `toml:"x"`
	Y     Domain `toml:"y"`
	Style Style  `toml:"style"`
	Views []File `toml:"view"`
}

func Default() Config {
	return Config{
		File:   DefaultPath,
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Margin: lcharts.DefaultPadding(),
		Style:  GlobalStyle(),
	}
}

// Decode reads a chart description. Options missing from r keep their
// default value.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	if err := toml.NewDecoder(r).DisallowUnknownFields().Decode(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Load reads the chart description in file. Relative data paths are
// resolved from the directory of file.
func Load(file string) (Config, error) {
	r, err := os.Open(file)
	if err != nil {
		return Config{}, err
	}
	defer r.Close()

	cfg, err := Decode(r)
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", file, err)
	}
	dir := filepath.Dir(file)
	for i := range cfg.Views {
		p := cfg.Views[i].Path
		if p == "" || filepath.IsAbs(p) {
			continue
		}
		cfg.Views[i].Path = filepath.Join(dir, p)
	}
	return cfg, nil
}

func (c Config) Render(w io.Writer) error {
	ch, err := c.Build()
	if err != nil {
		return err
	}
	return ch.Render(w)
}

func (c Config) Save() error {
	ch, err := c.Build()
	if err != nil {
		return err
	}
	file := c.File
	if file == "" {
		file = DefaultPath
	}
	return ch.Save(file)
}

// Build loads the data of every view and composes the chart.
func (c Config) Build() (lcharts.Chart, error) {
	ch := lcharts.NewChart().
		SetWidth(c.Width).
		SetHeight(c.Height).
		SetMargins(c.Margin.Top, c.Margin.Bottom, c.Margin.Left, c.Margin.Right).
		SetTitle(c.Title)
	if len(c.Views) == 0 {
		return ch, ErrView
	}
	lay, err := layoutOf(c.Views[0].Type)
	if err != nil {
		return ch, err
	}
	sets := make([]dataset, len(c.Views))
	for i, f := range c.Views {
		other, err := layoutOf(f.Type)
		if err != nil {
			return ch, err
		}
		if other != lay {
			return ch, fmt.Errorf("%s/%s: %w", c.Views[0].Type, f.Type, ErrLayout)
		}
		if sets[i], err = f.load(); err != nil {
			return ch, err
		}
	}
	switch lay {
	case layoutColumn:
		return c.makeColumnChart(ch, sets)
	case layoutRow:
		return c.makeRowChart(ch, sets)
	default:
		return c.makeScatterChart(ch, sets)
	}
}

func (c Config) makeColumnChart(ch lcharts.Chart, sets []dataset) (lcharts.Chart, error) {
	var (
		width  = ch.DrawingWidth()
		height = ch.DrawingHeight()
		ext    extent
	)
	xscale := c.X.makeBandScale(allKeys(sets), 0, width)
	for i, f := range c.Views {
		if f.Type == RenderVBar {
			ext = ext.merge(stacked(sets[i].Series()))
			continue
		}
		ext = ext.add(sets[i].Column()...)
		if f.Type == RenderArea {
			ext = ext.add(0)
		}
	}
	yscale, err := c.Y.makeLinearScale(ext, height, 0)
	if err != nil {
		return ch, err
	}
	for i, f := range c.Views {
		var (
			view lcharts.View
			ds   = sets[i]
		)
		switch f.Type {
		case RenderVBar:
			view, err = c.makeVerticalBars(f, ds, xscale, yscale)
		case RenderLine:
			view, err = c.makeLine(f, ds, xscale, yscale)
		case RenderArea:
			view, err = c.makeArea(f, ds, xscale, yscale)
		}
		if err != nil {
			return ch, fmt.Errorf("%s: %w", f.Name(), err)
		}
		ch = ch.AddView(view)
	}
	return c.setAxes(ch, xscale, yscale, lcharts.AxisBottom, lcharts.AxisLeft)
}

func (c Config) makeRowChart(ch lcharts.Chart, sets []dataset) (lcharts.Chart, error) {
	var (
		width  = ch.DrawingWidth()
		height = ch.DrawingHeight()
		ext    extent
	)
	for i := range sets {
		ext = ext.merge(stacked(sets[i].Series()))
	}
	xscale, err := c.X.makeLinearScale(ext, 0, width)
	if err != nil {
		return ch, err
	}
	yscale := c.Y.makeBandScale(allKeys(sets), 0, height)
	for i, f := range c.Views {
		series, err := c.makeBarsValues(f, sets[i], yscale)
		if err != nil {
			return ch, fmt.Errorf("%s: %w", f.Name(), err)
		}
		view := lcharts.NewHorizontalBarView(xscale, yscale)
		style := f.Style.merge(c.Style)
		view.LabelVisible = !style.HideLabels
		if view.LabelPosition, err = style.getBarLabelPosition(); err != nil {
			return ch, err
		}
		if view, err = view.SetData(series); err != nil {
			return ch, fmt.Errorf("%s: %w", f.Name(), err)
		}
		ch = ch.AddView(view)
	}
	return c.setAxes(ch, xscale, yscale, lcharts.AxisBottom, lcharts.AxisLeft)
}

func (c Config) makeScatterChart(ch lcharts.Chart, sets []dataset) (lcharts.Chart, error) {
	var (
		width  = ch.DrawingWidth()
		height = ch.DrawingHeight()
		xext   extent
		yext   extent
		data   = make([][]lcharts.ScatterPoint, len(sets))
	)
	for i, ds := range sets {
		xs, err := ds.Numbers()
		if err != nil {
			return ch, fmt.Errorf("%s: %w", c.Views[i].Name(), err)
		}
		ys := ds.Column()
		for j := range xs {
			data[i] = append(data[i], lcharts.ScatterPoint{X: xs[j], Y: ys[j]})
		}
		xext = xext.add(xs...)
		yext = yext.add(ys...)
	}
	xscale, err := c.X.makeLinearScale(xext, 0, width)
	if err != nil {
		return ch, err
	}
	yscale, err := c.Y.makeLinearScale(yext, height, 0)
	if err != nil {
		return ch, err
	}
	for i, f := range c.Views {
		view := lcharts.NewScatterView(xscale, yscale)
		style := f.Style.merge(c.Style)
		view.PointFill = style.fill(view.PointFill)
		view.PointStroke = style.stroke(view.PointStroke)
		if err := applyPointStyle(&view.PointType, &view.LabelPosition, style); err != nil {
			return ch, err
		}
		view.PointVisible = !style.HidePoints
		view.LabelVisible = !style.HideLabels
		if view, err = view.SetData(data[i]); err != nil {
			return ch, fmt.Errorf("%s: %w", f.Name(), err)
		}
		ch = ch.AddView(view)
	}
	return c.setAxes(ch, xscale, yscale, lcharts.AxisBottom, lcharts.AxisLeft)
}

func (c Config) makeVerticalBars(f File, ds dataset, x lcharts.BandScale, y lcharts.LinearScale) (lcharts.View, error) {
	series, err := c.makeBarsValues(f, ds, x)
	if err != nil {
		return nil, err
	}
	view := lcharts.NewVerticalBarView(x, y)
	style := f.Style.merge(c.Style)
	view.LabelVisible = !style.HideLabels
	if view.LabelPosition, err = style.getBarLabelPosition(); err != nil {
		return nil, err
	}
	return view.SetData(series)
}

func (c Config) makeLine(f File, ds dataset, x lcharts.BandScale, y lcharts.LinearScale) (lcharts.View, error) {
	values, err := alignColumn(ds, x.Ticks())
	if err != nil {
		return nil, err
	}
	view := lcharts.NewLineView(x, y)
	style := f.Style.merge(c.Style)
	view.Stroke = style.stroke(view.Stroke)
	view.PointFill = style.fill(view.PointFill)
	view.PointStroke = style.stroke(view.PointStroke)
	if err := applyPointStyle(&view.PointType, &view.LabelPosition, style); err != nil {
		return nil, err
	}
	view.PointVisible = !style.HidePoints
	view.LabelVisible = !style.HideLabels
	return view.SetData(values)
}

func (c Config) makeArea(f File, ds dataset, x lcharts.BandScale, y lcharts.LinearScale) (lcharts.View, error) {
	values, err := alignColumn(ds, x.Ticks())
	if err != nil {
		return nil, err
	}
	view := lcharts.NewAreaView(x, y)
	style := f.Style.merge(c.Style)
	view.Fill = style.fill(view.Fill)
	view.Stroke = style.stroke(view.Stroke)
	view.PointFill = style.fill(view.PointFill)
	view.PointStroke = style.stroke(view.PointStroke)
	if err := applyPointStyle(&view.PointType, &view.LabelPosition, style); err != nil {
		return nil, err
	}
	view.PointVisible = !style.HidePoints
	view.LabelVisible = !style.HideLabels
	return view.SetData(values)
}

// makeBarsValues gives one series per selected column, each value placed at
// the position of its key among the categories.
func (c Config) makeBarsValues(f File, ds dataset, categories lcharts.BandScale) ([]lcharts.BarsValues, error) {
	var (
		style  = f.Style.merge(c.Style)
		ticks  = categories.Ticks()
		index  = make(map[string]int, len(ticks))
		series []lcharts.BarsValues
	)
	for i, t := range ticks {
		index[t] = i
	}
	for i, s := range ds.Series() {
		values := make([]float32, len(ticks))
		for j, v := range s {
			if k, ok := index[ds.Keys[j]]; ok {
				values[k] += v
			}
		}
		bv := lcharts.NewBarsValues(values)
		if i < len(ds.Names) {
			bv.Title = ds.Names[i]
		}
		if i == 0 {
			bv.Fill = style.fill(bv.Fill)
		} else {
			bv.Fill = lcharts.Tableau10.At(i)
		}
		bv.Stroke = style.stroke(bv.Stroke)
		series = append(series, bv)
	}
	return series, nil
}

func (c Config) setAxes(ch lcharts.Chart, x, y any, xpos, ypos lcharts.AxisPosition) (lcharts.Chart, error) {
	xpos, err := c.X.getPosition(xpos, false)
	if err != nil {
		return ch, err
	}
	ypos, err = c.Y.getPosition(ypos, true)
	if err != nil {
		return ch, err
	}
	if !c.X.Hidden {
		ch = setAxis(ch, x, xpos).SetAxisLabel(xpos, c.X.Label)
	}
	if !c.Y.Hidden {
		ch = setAxis(ch, y, ypos).SetAxisLabel(ypos, c.Y.Label)
	}
	return ch, nil
}

func setAxis(ch lcharts.Chart, scale any, pos lcharts.AxisPosition) lcharts.Chart {
	switch s := scale.(type) {
	case lcharts.BandScale:
		switch pos {
		case lcharts.AxisTop:
			return ch.SetAxisTopBand(s)
		case lcharts.AxisBottom:
			return ch.SetAxisBottomBand(s)
		case lcharts.AxisLeft:
			return ch.SetAxisLeftBand(s)
		case lcharts.AxisRight:
			return ch.SetAxisRightBand(s)
		}
	case lcharts.LinearScale:
		switch pos {
		case lcharts.AxisTop:
			return ch.SetAxisTopLinear(s)
		case lcharts.AxisBottom:
			return ch.SetAxisBottomLinear(s)
		case lcharts.AxisLeft:
			return ch.SetAxisLeftLinear(s)
		case lcharts.AxisRight:
			return ch.SetAxisRightLinear(s)
		}
	}
	return ch
}

func applyPointStyle(kind *lcharts.PointType, pos *lcharts.PointLabelPosition, style Style) error {
	var err error
	if *kind, err = style.getPointType(); err != nil {
		return err
	}
	*pos, err = style.getPointLabelPosition()
	return err
}

func alignColumn(ds dataset, categories []string) ([]float32, error) {
	var (
		column = ds.Column()
		values = make(map[string]float32, len(column))
		list   = make([]float32, 0, len(categories))
	)
	for i, k := range ds.Keys {
		values[k] = column[i]
	}
	for _, c := range categories {
		v, ok := values[c]
		if !ok {
			return nil, fmt.Errorf("%s: %w", c, errMissing)
		}
		list = append(list, v)
	}
	return list, nil
}

func allKeys(sets []dataset) []string {
	var list []string
	for _, ds := range sets {
		list = append(list, ds.Keys...)
	}
	return list
}
