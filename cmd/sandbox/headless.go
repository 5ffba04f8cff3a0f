package main

import (
	"fmt"
	"log/slog"

	"github.com/younwookim/raymover/internal/application/system"
	"github.com/younwookim/raymover/internal/application/trace"
	"github.com/younwookim/raymover/internal/infrastructure/config"
)

// runHeadless ticks the stage without a window. Replayed inputs are used
// first; any remaining ticks run with no input. The resulting trace is
// written to out and its path returned.
func runHeadless(cfg *config.GameConfig, ticks int, replay []trace.Frame, out string) (string, error) {
	sim, _, err := system.BuildSimulation(cfg, nil)
	if err != nil {
		return "", err
	}

	frames := replay
	if len(frames) > ticks {
		frames = frames[:ticks]
	}
	frames = append(frames[:len(frames):len(frames)], trace.Idle(ticks-len(frames))...)

	dt := 1.0 / float64(cfg.Physics.Display.Framerate)
	result := trace.Replay(sim, frames, dt)

	if out == "" || out == "auto" {
		out = trace.GenerateFilename(cfg.Stage.ID)
	}
	if err := trace.Save(out, result); err != nil {
		return "", fmt.Errorf("saving trace: %w", err)
	}

	last := result[len(result)-1]
	slog.Info("headless run finished",
		"ticks", len(result),
		"x", last.X,
		"y", last.Y,
		"below", last.Below,
		"trace", out)
	return out, nil
}
