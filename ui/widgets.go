package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	ColorBg     = color.RGBA{20, 25, 30, 255}
	ColorPanel  = color.RGBA{25, 30, 38, 255}
	ColorBorder = color.RGBA{50, 58, 70, 255}
	ColorGreen  = color.RGBA{50, 200, 80, 255}
	ColorRed    = color.RGBA{255, 60, 60, 255}
	ColorYellow = color.RGBA{255, 220, 50, 255}
)

// Panel draws a bordered background rectangle.
func Panel(screen *ebiten.Image, x, y, w, h float32) {
	vector.DrawFilledRect(screen, x, y, w, h, ColorPanel, false)
	vector.StrokeRect(screen, x, y, w, h, 1, ColorBorder, false)
}

// StatusLight draws an on/off indicator followed by a label.
func StatusLight(screen *ebiten.Image, x, y float32, on bool, label string) {
	c := ColorRed
	if on {
		c = ColorGreen
	}
	vector.DrawFilledCircle(screen, x+5, y+7, 4, c, false)
	ebitenutil.DebugPrintAt(screen, label, int(x)+14, int(y))
}

// Label draws plain debug text.
func Label(screen *ebiten.Image, x, y int, text string) {
	ebitenutil.DebugPrintAt(screen, text, x, y)
}
