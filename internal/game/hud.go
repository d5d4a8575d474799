package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/iburimskiy/heatmap-visualization/internal/config"
	"github.com/iburimskiy/heatmap-visualization/internal/heatmap"
	"github.com/iburimskiy/heatmap-visualization/internal/source"
)

var statsColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}

func (g *Game) drawStats(screen *ebiten.Image, st heatmap.Stats) {
	g.drawText(screen, fmt.Sprintf("Time: %ds", int(st.Elapsed.Seconds())), g.statsFace, 10, 10)
	g.drawText(screen, fmt.Sprintf("Coverage: %.1f%%", st.Coverage*100), g.statsFace, 10, 50)
	g.drawText(screen, fmt.Sprintf("(%d, %d)  peak %.2f", st.Point.X, st.Point.Y, st.Max), g.smallFace, 10, 120)

	if st.Mode == source.ModeReplay {
		r := g.state.Replay()
		line := "Replay: no path loaded"
		if r.Len() > 0 {
			line = fmt.Sprintf("Replay: %s  %s / %s  (%s)",
				g.pathName,
				formatDuration(frameTime(r.Index(), g.cfg.TPS)),
				formatDuration(frameTime(r.Len(), g.cfg.TPS)),
				r.Policy())
		}
		g.drawText(screen, line, g.smallFace, 10, 92)
	}
}

func (g *Game) drawStatus(screen *ebiten.Image) {
	status := "M: mouse  C: csv  O: open path  S: save trail  Esc/Q: quit"
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 12, config.WindowHeight-16)
}

func (g *Game) drawText(screen *ebiten.Image, s string, face text.Face, x, y float64) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(statsColor)
	text.Draw(screen, s, face, op)
}
