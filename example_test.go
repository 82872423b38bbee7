package lcharts_test

import (
	"fmt"
	"os"

	"github.com/midbel/lcharts"
)

func ExampleLinearScale_Ticks() {
	scale := lcharts.NewLinearScale(0, 200, 540, 0)
	fmt.Println(scale.Ticks())
	// Output: [0 20 40 60 80 100 120 140 160 180 200]
}

func ExampleBandScale_Ticks() {
	scale := lcharts.NewBandScale([]string{"A", "B", "B", "C"}, 0, 300)
	fmt.Println(scale.Ticks())
	// Output: [A B C]
}

func ExampleChart() {
	ch := lcharts.NewChart().SetTitle("Stacked bars")

	var (
		x = lcharts.NewBandScale([]string{"A", "B", "C"}, 0, ch.DrawingWidth())
		y = lcharts.NewLinearScale(0, 50, ch.DrawingHeight(), 0)
	)
	view, err := lcharts.NewVerticalBarView(x, y).SetData([]lcharts.BarsValues{
		lcharts.NewBarsValues([]float32{10, 20, 30}),
		lcharts.NewBarsValues([]float32{5, 10, 15}).SetFill(lcharts.ColorGreen2),
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	ch = ch.
		SetAxisBottomBand(x).
		SetAxisLeftLinear(y).
		AddView(view)
	if err := ch.Render(os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
}
