package lcharts

// BarsValues is one series of a bar view: its i-th value is stacked on the
// i-th category of the view.
type BarsValues struct {
	Title  string
	Values []float32
	Fill   Color
	Stroke Color
}

func NewBarsValues(values []float32) BarsValues {
	return BarsValues{
		Values: values,
		Fill:   ColorBlue2,
		Stroke: ColorBlue1,
	}
}

func (b BarsValues) SetFill(c Color) BarsValues {
	b.Fill = c
	return b
}

func (b BarsValues) SetStroke(c Color) BarsValues {
	b.Stroke = c
	return b
}

func (b BarsValues) Len() int {
	return len(b.Values)
}

type categoryValue struct {
	value  float32
	fill   Color
	stroke Color
}

// groupByCategory gathers the values of every series per category, keeping
// the series order inside a category.
func groupByCategory(series []BarsValues, categories []string) (map[string][]categoryValue, error) {
	if len(series) == 0 {
		return nil, ErrDataIsEmpty
	}
	groups := make(map[string][]categoryValue, len(categories))
	for _, s := range series {
		if s.Len() > len(categories) {
			return nil, ErrCategoriesCountIsLess
		}
		for i, v := range s.Values {
			cv := categoryValue{
				value:  v,
				fill:   s.Fill,
				stroke: s.Stroke,
			}
			groups[categories[i]] = append(groups[categories[i]], cv)
		}
	}
	return groups, nil
}
