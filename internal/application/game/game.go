// Package game provides the ebiten loop that hosts sandbox scenes.
package game

import (
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/raymover/internal/application/scene"
	"github.com/younwookim/raymover/internal/infrastructure/config"
)

// Game implements ebiten.Game and manages Scene transitions.
type Game struct {
	current scene.Scene
	screenW int
	screenH int
	dt      float64
}

// New creates a new Game with the given initial scene. The simulation steps
// at a fixed 1/framerate seconds per update regardless of real frame time.
// The initial scene's OnEnter is called immediately.
func New(initialScene scene.Scene, display config.DisplayConfig) *Game {
	g := &Game{
		current: initialScene,
		screenW: display.ScreenWidth,
		screenH: display.ScreenHeight,
		dt:      1.0 / 60.0,
	}
	if display.Framerate > 0 {
		g.dt = 1.0 / float64(display.Framerate)
	}
	g.current.OnEnter()
	return g
}

// Update updates the current scene and handles scene transitions.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	next, err := g.current.Update(g.dt)
	if err != nil {
		return err
	}

	if next != nil {
		slog.Debug("scene transition")
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}

	return nil
}

// Draw renders the current scene.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the sandbox's logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// Close exits the current scene so it can flush anything it holds.
// ebiten does not call OnExit when the window closes.
func (g *Game) Close() {
	g.current.OnExit()
}

// DT returns the fixed step in seconds
func (g *Game) DT() float64 {
	return g.dt
}
