package main

import (
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/raymover/internal/application/game"
	"github.com/younwookim/raymover/internal/application/scene/sandbox"
	"github.com/younwookim/raymover/internal/application/trace"
	"github.com/younwookim/raymover/internal/infrastructure/config"
)

func main() {
	configDir := flag.String("config", "", "Config directory (default: embedded configs)")
	stageName := flag.String("stage", "demo", "Stage to load from stages/")
	recordPath := flag.String("record", "", "Record a trace (e.g., -record trace.csv, or -record auto)")
	replayPath := flag.String("replay", "", "Drive the player from a recorded trace")
	headless := flag.Int("headless", 0, "Run N ticks without a window and write the trace")
	verbose := flag.Bool("v", false, "Enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg, err := loadConfig(*configDir, *stageName)
	if err != nil {
		slog.Error("failed to load config", "err", err)
		os.Exit(1)
	}

	var replay []trace.Frame
	if *replayPath != "" {
		replay, err = trace.Load(*replayPath)
		if err != nil {
			slog.Error("failed to load replay", "path", *replayPath, "err", err)
			os.Exit(1)
		}
	}

	if *headless > 0 {
		if _, err := runHeadless(cfg, *headless, replay, *recordPath); err != nil {
			slog.Error("headless run failed", "err", err)
			os.Exit(1)
		}
		return
	}

	s, err := sandbox.New(cfg, sandbox.Options{RecordPath: *recordPath, Replay: replay})
	if err != nil {
		slog.Error("failed to build sandbox", "err", err)
		os.Exit(1)
	}
	g := game.New(s, cfg.Physics.Display)
	defer g.Close()

	display := cfg.Physics.Display
	ebiten.SetWindowSize(display.ScreenWidth*display.Scale, display.ScreenHeight*display.Scale)
	ebiten.SetWindowTitle(fmt.Sprintf("raymover - %s", cfg.Stage.Name))
	ebiten.SetTPS(display.Framerate)

	if err := ebiten.RunGame(g); err != nil {
		slog.Error("game exited", "err", err)
	}
}

// loadConfig reads physics.yaml and the stage from dir, or from the
// embedded configs when dir is empty
func loadConfig(dir, stage string) (*config.GameConfig, error) {
	if dir != "" {
		return config.NewLoader(dir).LoadAll(stage)
	}

	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("failed to get config subfs: %w", err)
	}
	return config.NewFSLoader(fsys, "configs").LoadAll(stage)
}
