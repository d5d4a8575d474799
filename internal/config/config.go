package config

import (
	"encoding/json"
	"flag"
	"log/slog"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/iburimskiy/heatmap-visualization/internal/heat"
	"github.com/iburimskiy/heatmap-visualization/internal/heatmap"
	"github.com/iburimskiy/heatmap-visualization/internal/source"
)

const (
	WindowWidth  = 800
	WindowHeight = 600
	WindowTitle  = "Interactive Heatmap Visualizer - M: mouse, C: csv, O: open path, S: save trail, Esc/Q: quit"

	TargetTPS = 30

	TrailRingSize = 8192

	// Control panel
	PanelX      = 10
	PanelY      = WindowHeight - 80
	PanelWidth  = 310
	PanelHeight = 60

	// Mode buttons
	ButtonWidth   = 80
	ButtonHeight  = 40
	MouseButtonX  = 20
	CSVButtonX    = 120
	ModeButtonY   = WindowHeight - 70
	OpenButtonX   = 220
	OpenButtonW   = 90
	StatsFontSize = 28
	SmallFontSize = 18

	// Heat parameters
	MaxRadius        = 1000 // canvas diagonal; larger discs cover nothing more
	DepositRadius    = 20
	DepositIncrement = 0.1
	MarkerRadius     = 5
	PaletteSize      = 256
)

// Config is the user-tunable part of the visualizer. Zero values are never
// used directly; start from Default.
type Config struct {
	PathFile   string  `json:"path_file"`
	Generate   bool    `json:"generate_if_missing"`
	Mode       string  `json:"mode"`       // "live" or "replay"
	ReplayEnd  string  `json:"replay_end"` // "wrap" or "hold"
	Kernel     string  `json:"kernel"`     // "gaussian5" or "binomial3"
	Radius     int     `json:"radius"`
	Increment  float64 `json:"increment"`
	TPS        int     `json:"tps"`
	AudioCues  bool    `json:"audio_cues"`
	CueVolume  float64 `json:"cue_volume"`
	LogLevel   string  `json:"log_level"`
	RecordSize int     `json:"record_size"`
}

// Default returns the stock configuration.
func Default() *Config {
	return &Config{
		PathFile:   "movement_path.csv",
		Generate:   true,
		Mode:       "live",
		ReplayEnd:  "wrap",
		Kernel:     "gaussian5",
		Radius:     DepositRadius,
		Increment:  DepositIncrement,
		TPS:        TargetTPS,
		AudioCues:  false,
		CueVolume:  0.3,
		LogLevel:   "info",
		RecordSize: TrailRingSize,
	}
}

// Load reads a JSON config. A missing file yields Default; fields absent
// from the file keep their default values.
func Load(filename string) (*Config, error) {
	cfg := Default()
	if filename == "" {
		return cfg, nil
	}
	file, err := os.Open(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, errors.Wrapf(err, "open config %s", filename)
	}
	defer file.Close()

	if err := json.NewDecoder(file).Decode(cfg); err != nil {
		return nil, errors.Wrapf(err, "decode config %s", filename)
	}
	return cfg, nil
}

// Save writes cfg as indented JSON.
func Save(cfg *Config, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return errors.Wrapf(err, "create config %s", filename)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	return errors.Wrap(encoder.Encode(cfg), "encode config")
}

// BindFlags registers command-line overrides for cfg on fs. Call it after
// Load so flags win over the file.
func (c *Config) BindFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.PathFile, "path", c.PathFile, "movement path CSV for replay mode")
	fs.BoolVar(&c.Generate, "generate", c.Generate, "generate the path CSV if it does not exist")
	fs.StringVar(&c.Mode, "mode", c.Mode, "initial position source: live or replay")
	fs.StringVar(&c.ReplayEnd, "replay-end", c.ReplayEnd, "what replay does at the end of the path: wrap or hold")
	fs.StringVar(&c.Kernel, "kernel", c.Kernel, "smoothing kernel: gaussian5 or binomial3")
	fs.IntVar(&c.Radius, "radius", c.Radius, "deposit radius in cells")
	fs.Float64Var(&c.Increment, "increment", c.Increment, "intensity added per frame")
	fs.IntVar(&c.TPS, "tps", c.TPS, "target frames per second")
	fs.BoolVar(&c.AudioCues, "audio", c.AudioCues, "play audio cues on mode switch and replay loop")
	fs.Float64Var(&c.CueVolume, "volume", c.CueVolume, "audio cue volume in [0,1]")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "debug, info, warn or error")
}

// Validate checks ranges and enum values.
func (c *Config) Validate() error {
	if c.Radius < 0 || c.Radius > MaxRadius {
		return errors.Errorf("radius must be in [0,%d], got %d", MaxRadius, c.Radius)
	}
	if c.Increment < 0 {
		return errors.Errorf("increment must be >= 0, got %v", c.Increment)
	}
	if c.TPS <= 0 {
		return errors.Errorf("tps must be > 0, got %d", c.TPS)
	}
	if c.RecordSize <= 0 {
		return errors.Errorf("record_size must be > 0, got %d", c.RecordSize)
	}
	if _, err := c.SourceMode(); err != nil {
		return err
	}
	if _, err := source.ParseEndPolicy(c.ReplayEnd); err != nil {
		return err
	}
	if _, err := heat.KernelByName(c.Kernel); err != nil {
		return err
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// SourceMode parses Mode.
func (c *Config) SourceMode() (source.Mode, error) {
	switch strings.ToLower(c.Mode) {
	case "live", "mouse", "":
		return source.ModeLive, nil
	case "replay", "csv":
		return source.ModeReplay, nil
	}
	return source.ModeLive, errors.Errorf("unknown mode %q", c.Mode)
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, errors.Wrapf(err, "log level %q", c.LogLevel)
	}
	return l, nil
}

// HeatmapOptions converts the config into pipeline options for the fixed
// window canvas.
func (c *Config) HeatmapOptions() (heatmap.Options, error) {
	if err := c.Validate(); err != nil {
		return heatmap.Options{}, err
	}
	mode, _ := c.SourceMode()
	end, _ := source.ParseEndPolicy(c.ReplayEnd)
	k, _ := heat.KernelByName(c.Kernel)

	opts := heatmap.DefaultOptions()
	opts.Width, opts.Height = WindowWidth, WindowHeight
	opts.Radius = c.Radius
	opts.Increment = c.Increment
	opts.Kernel = k
	opts.PaletteSize = PaletteSize
	opts.MarkerRadius = MarkerRadius
	opts.EndPolicy = end
	opts.Mode = mode
	return opts, nil
}
