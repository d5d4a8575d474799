package main

import (
	"errors"
	"flag"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"path/filepath"
	"time"

	pkgerrors "github.com/pkg/errors"

	"github.com/iburimskiy/heatmap-visualization/internal/audio"
	"github.com/iburimskiy/heatmap-visualization/internal/config"
	"github.com/iburimskiy/heatmap-visualization/internal/game"
	"github.com/iburimskiy/heatmap-visualization/internal/pathdata"
	"github.com/iburimskiy/heatmap-visualization/internal/source"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		slog.Error("fatal", "err", err)
		game.ReportFatal(err)
		os.Exit(1)
	}
}

// configFile finds -config in args so the file can be loaded before the real
// flag set is bound on top of it. Everything else is parsed into a throwaway
// config.
func configFile(args []string) (string, bool) {
	fs := flag.NewFlagSet("heatmap", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	name := fs.String("config", defaultConfig, "")
	write := fs.Bool("write-config", false, "")
	config.Default().BindFlags(fs)
	_ = fs.Parse(args)
	return *name, *write
}

const defaultConfig = "heatmap.json"

func run(args []string) error {
	cfgFile, writeCfg := configFile(args)
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("heatmap", flag.ContinueOnError)
	fs.String("config", defaultConfig, "JSON config file (optional)")
	fs.Bool("write-config", false, "write the effective config to -config and exit")
	cfg.BindFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, _ := cfg.Level()
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(log)

	if writeCfg {
		if err := config.Save(cfg, cfgFile); err != nil {
			return err
		}
		log.Info("config written", "file", cfgFile)
		return nil
	}

	path := loadPath(cfg, log)

	var player *audio.Player
	if cfg.AudioCues {
		player, err = audio.Open(cfg.CueVolume, log)
		if err != nil {
			return err
		}
		defer player.Close()
	}

	g, err := game.New(cfg, log, player, path, filepath.Base(cfg.PathFile))
	if err != nil {
		return pkgerrors.Wrap(err, "start visualizer")
	}
	return g.Run()
}

// loadPath reads the replay path, generating it first when allowed. Any
// failure leaves replay with no samples so the tracked point simply holds.
func loadPath(cfg *config.Config, log *slog.Logger) []source.Point {
	if cfg.PathFile == "" {
		return nil
	}
	if _, err := os.Stat(cfg.PathFile); os.IsNotExist(err) && cfg.Generate {
		seed := uint64(time.Now().UnixNano())
		samples := pathdata.Generate(pathdata.DefaultGenerateOptions(), rand.New(rand.NewPCG(seed, seed>>1)))
		if err := pathdata.WriteFile(cfg.PathFile, samples); err != nil {
			log.Warn("could not generate path", "file", cfg.PathFile, "err", err)
			return nil
		}
		log.Info("generated path", "file", cfg.PathFile, "samples", len(samples))
	}

	res, err := pathdata.ReadFile(cfg.PathFile)
	if err != nil {
		log.Warn("replay path unavailable, replay will hold position", "err", err)
		return nil
	}
	if res.Skipped > 0 {
		log.Warn("skipped malformed path rows", "file", cfg.PathFile, "rows", res.Skipped)
	}
	return res.Points
}
