package lcharts

import (
	"fmt"
)

const (
	ColorBlue1 Color = "#0e3569"
	ColorBlue2 Color = "#1960b2"
	ColorBlue3 Color = "#3a88e2"
	ColorBlue4 Color = "#5095e5"
	ColorBlue5 Color = "#a5c9f2"

	ColorGreen1 Color = "#0c3300"
	ColorGreen2 Color = "#00400e"
	ColorGreen3 Color = "#005813"
	ColorGreen4 Color = "#117401"
	ColorGreen5 Color = "#038d05"
)

type Color string

func DefaultColor() Color {
	return ColorBlue2
}

func NewColorFromHex(hex string) Color {
	return Color(hex)
}

func NewColorFromRGB(r, g, b uint8) Color {
	return Color(fmt.Sprintf("rgb(%d,%d,%d)", r, g, b))
}

func (c Color) String() string {
	return string(c)
}

type Palette []Color

// At cycles through the palette.
func (p Palette) At(i int) Color {
	if len(p) == 0 {
		return DefaultColor()
	}
	return p[i%len(p)]
}

var (
	Category10 Palette
	Tableau10  Palette
)

func init() {
	Category10 = splitColorString("1f77b4ff7f0e2ca02cd627289467bd8c564be377c27f7f7fbcbd2217becf")
	Tableau10 = splitColorString("4e79a7f28e2ce1575976b7b259a14fedc949af7aa1ff9da79c755fbab0ab")
}

func splitColorString(str string) Palette {
	var arr Palette
	for i := 0; i+6 <= len(str); i += 6 {
		arr = append(arr, NewColorFromHex("#"+str[i:i+6]))
	}
	return arr
}
