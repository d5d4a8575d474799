// Package game is the ebiten front end: it owns the window-side resources,
// feeds pointer input into the heat-map pipeline and presents each frame.
package game

import (
	"bytes"
	"errors"
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	pkgerrors "github.com/pkg/errors"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/iburimskiy/heatmap-visualization/internal/audio"
	"github.com/iburimskiy/heatmap-visualization/internal/config"
	"github.com/iburimskiy/heatmap-visualization/internal/heatmap"
	"github.com/iburimskiy/heatmap-visualization/internal/source"
)

// cursor reads the pointer from ebiten.
type cursor struct{}

func (cursor) Position() (int, int) { return ebiten.CursorPosition() }

// Game implements ebiten.Game. Update advances the pipeline one frame and
// Draw presents it; ebiten calls them from one goroutine.
type Game struct {
	cfg   *config.Config
	log   *slog.Logger
	state *heatmap.State
	audio *audio.Player
	trail *source.Recorder

	heatLayer *ebiten.Image
	statsFace text.Face
	smallFace text.Face

	pathName string
	lastErr  error

	mouseX, mouseY int
}

// New loads fonts and builds the pipeline. player may be nil when audio cues
// are disabled. path is the initial replay path and may be empty.
func New(cfg *config.Config, log *slog.Logger, player *audio.Player, path []source.Point, pathName string) (*Game, error) {
	opts, err := cfg.HeatmapOptions()
	if err != nil {
		return nil, pkgerrors.Wrap(err, "config")
	}

	fontSrc, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, pkgerrors.Wrap(err, "load font")
	}
	log.Debug("font loaded", "face", "Go Regular")

	return &Game{
		cfg:       cfg,
		log:       log,
		state:     heatmap.New(opts, cursor{}, path, time.Now()),
		audio:     player,
		trail:     source.NewRecorder(cfg.RecordSize),
		heatLayer: ebiten.NewImage(opts.Width, opts.Height),
		statsFace: &text.GoTextFace{Source: fontSrc, Size: config.StatsFontSize},
		smallFace: &text.GoTextFace{Source: fontSrc, Size: config.SmallFontSize},
		pathName:  pathName,
	}, nil
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	g.mouseX, g.mouseY = ebiten.CursorPosition()
	g.handleInput()

	p := g.state.Step()
	if g.state.Mode() == source.ModeLive {
		g.trail.Add(p)
	}

	if g.state.Looped() {
		g.log.Debug("replay wrapped", "passes", g.state.Replay().Wrapped())
		g.audio.Play(audio.CueReplayLoop)
	}
	return nil
}

func (g *Game) handleInput() {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		switch {
		case mouseButton.contains(g.mouseX, g.mouseY):
			g.setMode(source.ModeLive)
		case csvButton.contains(g.mouseX, g.mouseY):
			g.setMode(source.ModeReplay)
		case openButton.contains(g.mouseX, g.mouseY):
			g.report(g.openPathDialog())
		}
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyM):
		g.setMode(source.ModeLive)
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		g.setMode(source.ModeReplay)
	case inpututil.IsKeyJustPressed(ebiten.KeyO):
		g.report(g.openPathDialog())
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		g.report(g.saveTrailDialog())
	}
}

func (g *Game) setMode(m source.Mode) {
	if g.state.Mode() == m {
		return
	}
	g.state.SetMode(m)
	g.log.Info("position source changed", "mode", m.String())
	if m == source.ModeReplay {
		if g.state.Replay().Len() == 0 {
			g.log.Warn("replay has no samples, holding position")
		}
		g.audio.Play(audio.CueReplayMode)
	} else {
		g.audio.Play(audio.CueLiveMode)
	}
}

// report keeps the last dialog error for the status line.
func (g *Game) report(err error) {
	if err == nil {
		return
	}
	g.lastErr = err
	g.log.Error("dialog failed", "err", err)
}

func (g *Game) Draw(screen *ebiten.Image) {
	img := g.state.Render()
	g.heatLayer.WritePixels(img.Pix)
	screen.DrawImage(g.heatLayer, nil)

	g.drawStats(screen, g.state.Stats(time.Now()))
	g.drawControls(screen)
	g.drawStatus(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}

// Run opens the window and blocks until it is closed. A normal quit returns
// nil.
func (g *Game) Run() error {
	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetTPS(g.cfg.TPS)

	g.log.Info("visualizer started",
		"mode", g.state.Mode().String(),
		"tps", g.cfg.TPS,
		"replay_samples", g.state.Replay().Len(),
		"replay_end", g.state.Replay().Policy().String())

	err := ebiten.RunGame(g)
	st := g.state.Stats(time.Now())
	g.log.Info("visualizer stopped",
		"frames", st.Frames,
		"coverage", st.Coverage,
		"elapsed", st.Elapsed.Round(time.Second).String())
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return pkgerrors.Wrap(err, "run game")
	}
	return nil
}
