package game

import (
	"errors"
	"path/filepath"

	"github.com/ncruces/zenity"

	"github.com/iburimskiy/heatmap-visualization/internal/audio"
	"github.com/iburimskiy/heatmap-visualization/internal/pathdata"
	"github.com/iburimskiy/heatmap-visualization/internal/source"
)

var csvFilter = zenity.FileFilters{{
	Name:     "Movement path",
	Patterns: []string{"*.csv"},
}}

// openPathDialog asks for a CSV file and switches to replaying it.
func (g *Game) openPathDialog() error {
	filename, err := zenity.SelectFile(
		zenity.Title("Open Movement Path"),
		csvFilter,
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}
	if err := g.loadPath(filename); err != nil {
		return err
	}
	g.setMode(source.ModeReplay)
	return nil
}

// loadPath reads filename into the replay source.
func (g *Game) loadPath(filename string) error {
	res, err := pathdata.ReadFile(filename)
	if err != nil {
		return err
	}
	if res.Skipped > 0 {
		g.log.Warn("skipped malformed path rows", "file", filename, "rows", res.Skipped)
	}
	g.state.LoadPath(res.Points)
	g.pathName = filepath.Base(filename)
	g.log.Info("path loaded", "file", filename, "samples", len(res.Points))
	g.audio.Play(audio.CuePathLoaded)
	return nil
}

// saveTrailDialog writes the recorded live trail to a CSV chosen by the user
// and starts a fresh recording.
func (g *Game) saveTrailDialog() error {
	pts := g.trail.Snapshot(0)
	if len(pts) == 0 {
		g.log.Info("nothing recorded yet")
		return nil
	}
	filename, err := zenity.SelectFileSave(
		zenity.Title("Save Trail"),
		zenity.Filename("trail.csv"),
		zenity.ConfirmOverwrite(),
		csvFilter,
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}
	if err := pathdata.WriteFile(filename, pathdata.FromPoints(pts)); err != nil {
		return err
	}
	g.log.Info("trail saved", "file", filename, "samples", len(pts))
	g.trail.Reset()
	return nil
}

// ReportFatal shows a startup failure to the user once.
func ReportFatal(err error) {
	_ = zenity.Error(err.Error(),
		zenity.Title("Heatmap Visualizer"),
		zenity.ErrorIcon,
	)
}
