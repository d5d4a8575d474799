package main

import (
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/iburimskiy/heatmap-visualization/internal/config"
	"github.com/iburimskiy/heatmap-visualization/internal/pathdata"
	"github.com/iburimskiy/heatmap-visualization/internal/source"
)

func TestRenderWritesSnapshots(t *testing.T) {
	dir := t.TempDir()
	pathFile := filepath.Join(dir, "path.csv")
	pts := []source.Point{{X: 100, Y: 100}, {X: 200, Y: 150}, {X: 300, Y: 200}}
	if err := pathdata.WriteFile(pathFile, pathdata.FromPoints(pts)); err != nil {
		t.Fatal(err)
	}

	cfg := config.Default()
	cfg.PathFile = pathFile
	cfg.Kernel = "binomial3"
	out := filepath.Join(dir, "frames")
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	if err := render(cfg, out, 2, 3, log); err != nil {
		t.Fatalf("render() error = %v", err)
	}
	for _, name := range []string{"frame_00002.png", "frame_00003.png"} {
		f, err := os.Open(filepath.Join(out, name))
		if err != nil {
			t.Fatalf("missing snapshot %s: %v", name, err)
		}
		cfgImg, err := png.DecodeConfig(f)
		f.Close()
		if err != nil {
			t.Fatalf("decode %s: %v", name, err)
		}
		if cfgImg.Width != config.WindowWidth || cfgImg.Height != config.WindowHeight {
			t.Errorf("%s is %dx%d, want %dx%d", name, cfgImg.Width, cfgImg.Height, config.WindowWidth, config.WindowHeight)
		}
	}
	if _, err := os.Stat(filepath.Join(out, "frame_00001.png")); !os.IsNotExist(err) {
		t.Error("frame 1 should not have been written")
	}
}

func TestRenderEmptyPathFails(t *testing.T) {
	dir := t.TempDir()
	pathFile := filepath.Join(dir, "empty.csv")
	if err := os.WriteFile(pathFile, []byte("frame,x,y\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := config.Default()
	cfg.PathFile = pathFile
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	if err := render(cfg, filepath.Join(dir, "out"), 1, 1, log); err == nil {
		t.Error("render() with an empty path should fail")
	}
}
