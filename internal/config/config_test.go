package config

import (
	"flag"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/iburimskiy/heatmap-visualization/internal/source"
)

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if *cfg != *Default() {
		t.Errorf("Load() = %+v, want defaults", cfg)
	}
}

func TestLoadOverridesOnlyGivenFields(t *testing.T) {
	name := filepath.Join(t.TempDir(), "cfg.json")
	if err := os.WriteFile(name, []byte(`{"radius": 12, "replay_end": "hold"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(name)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Radius != 12 || cfg.ReplayEnd != "hold" {
		t.Errorf("Load() = %+v, want radius 12 and hold", cfg)
	}
	if cfg.Increment != DepositIncrement {
		t.Errorf("Increment = %v, want default %v", cfg.Increment, DepositIncrement)
	}
}

func TestLoadBadJSON(t *testing.T) {
	name := filepath.Join(t.TempDir(), "cfg.json")
	if err := os.WriteFile(name, []byte(`{radius`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(name); err == nil {
		t.Error("Load() of malformed JSON should fail")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	name := filepath.Join(t.TempDir(), "cfg.json")
	want := Default()
	want.Kernel = "binomial3"
	want.TPS = 60
	if err := Save(want, name); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	got, err := Load(name)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if *got != *want {
		t.Errorf("round trip = %+v, want %+v", got, want)
	}
}

func TestBindFlagsOverride(t *testing.T) {
	cfg := Default()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.BindFlags(fs)
	if err := fs.Parse([]string{"-mode", "replay", "-radius", "8", "-log-level", "debug"}); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	mode, err := cfg.SourceMode()
	if err != nil || mode != source.ModeReplay {
		t.Errorf("SourceMode() = %v, %v; want replay", mode, err)
	}
	if lvl, _ := cfg.Level(); lvl != slog.LevelDebug {
		t.Errorf("Level() = %v, want debug", lvl)
	}
	if cfg.Radius != 8 {
		t.Errorf("Radius = %d, want 8", cfg.Radius)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative radius", func(c *Config) { c.Radius = -1 }},
		{"radius beyond canvas", func(c *Config) { c.Radius = 100000 }},
		{"negative increment", func(c *Config) { c.Increment = -0.1 }},
		{"zero tps", func(c *Config) { c.TPS = 0 }},
		{"bad mode", func(c *Config) { c.Mode = "joystick" }},
		{"bad end", func(c *Config) { c.ReplayEnd = "bounce" }},
		{"bad kernel", func(c *Config) { c.Kernel = "box" }},
		{"bad level", func(c *Config) { c.LogLevel = "loud" }},
	}
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
	edge := Default()
	edge.Radius = MaxRadius
	if err := edge.Validate(); err != nil {
		t.Errorf("Validate() with radius %d = %v", MaxRadius, err)
	}
	for _, tt := range tests {
		cfg := Default()
		tt.mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: Validate() = nil, want error", tt.name)
		}
	}
}

func TestHeatmapOptions(t *testing.T) {
	cfg := Default()
	cfg.ReplayEnd = "hold"
	cfg.Kernel = "binomial3"
	opts, err := cfg.HeatmapOptions()
	if err != nil {
		t.Fatalf("HeatmapOptions() error = %v", err)
	}
	if opts.Width != WindowWidth || opts.Height != WindowHeight {
		t.Errorf("canvas = %dx%d, want %dx%d", opts.Width, opts.Height, WindowWidth, WindowHeight)
	}
	if opts.EndPolicy != source.EndHold || opts.Kernel.Size != 3 {
		t.Errorf("opts = %+v, want hold policy and 3x3 kernel", opts)
	}
}
