package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/heatmap-visualization/internal/config"
	"github.com/iburimskiy/heatmap-visualization/internal/source"
)

var (
	panelColor    = color.RGBA{R: 50, G: 50, B: 50, A: 255}
	activeColor   = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	inactiveColor = color.RGBA{R: 100, G: 100, B: 100, A: 255}
	hoverColor    = color.RGBA{R: 140, G: 140, B: 140, A: 255}
	labelColor    = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	borderColor   = color.RGBA{R: 150, G: 170, B: 200, A: 255}
)

type button struct {
	x, y, w, h int
	label      string
}

func (b button) contains(x, y int) bool {
	return x >= b.x && x <= b.x+b.w && y >= b.y && y <= b.y+b.h
}

var (
	mouseButton = button{x: config.MouseButtonX, y: config.ModeButtonY, w: config.ButtonWidth, h: config.ButtonHeight, label: "Mouse"}
	csvButton   = button{x: config.CSVButtonX, y: config.ModeButtonY, w: config.ButtonWidth, h: config.ButtonHeight, label: "CSV"}
	openButton  = button{x: config.OpenButtonX, y: config.ModeButtonY, w: config.OpenButtonW, h: config.ButtonHeight, label: "Open..."}
)

func (g *Game) drawControls(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, config.PanelX, config.PanelY, config.PanelWidth, config.PanelHeight, panelColor, false)

	live := g.state.Mode() == source.ModeLive
	g.drawButton(screen, mouseButton, live)
	g.drawButton(screen, csvButton, !live)
	g.drawButton(screen, openButton, false)
}

func (g *Game) drawButton(screen *ebiten.Image, b button, active bool) {
	var bg color.Color = inactiveColor
	switch {
	case active:
		bg = activeColor
	case b.contains(g.mouseX, g.mouseY):
		bg = hoverColor
	}
	vector.DrawFilledRect(screen, float32(b.x), float32(b.y), float32(b.w), float32(b.h), bg, false)
	vector.StrokeRect(screen, float32(b.x), float32(b.y), float32(b.w), float32(b.h), 1, borderColor, false)

	face := g.smallFace
	w, h := text.Measure(b.label, face, 0)
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(b.x)+(float64(b.w)-w)/2, float64(b.y)+(float64(b.h)-h)/2)
	op.ColorScale.ScaleWithColor(labelColor)
	text.Draw(screen, b.label, face, op)
}
