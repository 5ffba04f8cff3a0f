// Package sandbox provides the interactive scene that hosts the simulation.
package sandbox

import (
	"fmt"
	"image/color"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/younwookim/raymover/internal/application/scene"
	"github.com/younwookim/raymover/internal/application/state"
	"github.com/younwookim/raymover/internal/application/system"
	"github.com/younwookim/raymover/internal/application/trace"
	"github.com/younwookim/raymover/internal/domain/entity"
	"github.com/younwookim/raymover/internal/infrastructure/config"
	"github.com/younwookim/raymover/internal/infrastructure/render"
)

// Colors for rendering
var (
	colorBG       = color.RGBA{26, 26, 46, 255}
	colorSolid    = color.RGBA{80, 80, 100, 255}
	colorPlatform = color.RGBA{180, 140, 60, 255}
	colorPlayer   = color.RGBA{100, 200, 100, 255}
	colorGrounded = color.RGBA{220, 240, 220, 255}
	colorPath     = color.RGBA{120, 120, 160, 255}
	colorWaypoint = color.RGBA{240, 200, 80, 255}
	colorOverlay  = color.RGBA{0, 0, 0, 128}
)

// Options configures a sandbox scene
type Options struct {
	// RecordPath enables trace recording; "auto" picks a timestamped name
	RecordPath string
	// Replay feeds recorded inputs instead of the keyboard
	Replay []trace.Frame
}

// Sandbox runs one stage: keyboard or replayed input in, debug view out
type Sandbox struct {
	cfg    *config.GameConfig
	stage  *entity.Stage
	sim    *system.Simulation
	input  *system.InputSystem
	debug  *render.DebugDraw
	camera *render.Camera
	state  state.RunState

	recorder   *trace.Recorder
	recordPath string
	replay     *trace.Player
}

// New builds the stage's simulation and wraps it in a scene
func New(cfg *config.GameConfig, opts Options) (*Sandbox, error) {
	debug := render.NewDebugDraw()
	sim, stage, err := system.BuildSimulation(cfg, debug)
	if err != nil {
		return nil, fmt.Errorf("building stage %s: %w", cfg.Stage.ID, err)
	}

	display := cfg.Physics.Display
	s := &Sandbox{
		cfg:        cfg,
		stage:      stage,
		sim:        sim,
		input:      system.NewInputSystem(),
		debug:      debug,
		camera:     render.NewCamera(display.PixelsPerUnit, display.ScreenWidth, display.ScreenHeight),
		state:      state.StateRunning,
		recordPath: opts.RecordPath,
	}

	if opts.Replay != nil {
		s.replay = trace.NewPlayer(opts.Replay)
		s.state = state.StateReplaying
		slog.Info("replay loaded", "frames", len(opts.Replay))
	}
	if opts.RecordPath != "" {
		s.recorder = trace.NewRecorder()
		slog.Info("recording enabled", "path", opts.RecordPath)
	}

	return s, nil
}

// Update proceeds the sandbox by one fixed step (implements scene.Scene)
func (s *Sandbox) Update(dt float64) (scene.Scene, error) {
	s.handleKeys()

	if !s.state.Advances() {
		return nil, nil
	}

	input, ok := s.nextInput()
	if !ok {
		s.state = state.StateFinished
		slog.Info("replay finished", "ticks", s.sim.TickCount())
		return nil, nil
	}

	s.Step(dt, input)
	s.state = s.state.AfterTick()

	return nil, nil
}

// Step runs one simulation tick with the given input
func (s *Sandbox) Step(dt float64, input system.InputState) {
	s.debug.Reset()
	s.sim.Tick(dt, input)

	if s.recorder != nil {
		s.recorder.RecordFrame(s.sim, input)
	}
}

func (s *Sandbox) handleKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.state = s.state.TogglePause(s.replay != nil)
		slog.Info("pause toggled", "state", s.state)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyPeriod) && s.state == state.StatePaused {
		s.state = state.StateStepping
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		s.debug.SetEnabled(!s.debug.Enabled())
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		s.saveTrace()
	}
}

func (s *Sandbox) nextInput() (system.InputState, bool) {
	if s.replay != nil {
		return s.replay.GetInput()
	}
	return s.input.GetInput(), true
}

// saveTrace writes the recording so far to file
func (s *Sandbox) saveTrace() {
	if s.recorder == nil || s.recorder.FrameCount() == 0 {
		return
	}

	filename := s.recordPath
	if filename == "" || filename == "auto" {
		filename = trace.GenerateFilename(s.cfg.Stage.ID)
	}

	if err := s.recorder.Save(filename); err != nil {
		slog.Error("failed to save trace", "path", filename, "err", err)
		return
	}
	slog.Info("trace saved", "path", filename, "frames", s.recorder.FrameCount())
}

// Draw renders the sandbox
func (s *Sandbox) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	w := s.sim.World()
	if player := s.sim.Player(); player != nil {
		s.camera.Follow(w.Position(player.Controller().ID()), s.stageBounds())
	}

	s.drawSolids(screen)
	s.drawPlatforms(screen)
	s.drawPlayer(screen)

	if s.debug.Enabled() {
		s.debug.Draw(screen, s.camera)
	}

	s.drawHUD(screen)

	if s.state == state.StatePaused {
		s.drawPauseOverlay(screen)
	}
}

func (s *Sandbox) stageBounds() entity.AABB {
	return entity.AABB{
		Max: entity.V(float64(s.stage.Width)*s.stage.TileSize, float64(s.stage.Height)*s.stage.TileSize),
	}
}

func (s *Sandbox) drawSolids(screen *ebiten.Image) {
	w := s.sim.World()
	for id := range w.IsSolid {
		if _, platform := w.IsPlatform[id]; platform {
			continue
		}
		render.FillBox(screen, s.camera, w.Bounds(id), colorSolid)
	}
}

func (s *Sandbox) drawPlatforms(screen *ebiten.Image) {
	w := s.sim.World()
	for _, p := range s.sim.Platforms() {
		points := p.Waypoints()
		render.Path(screen, s.camera, points, p.Cyclic(), colorPath)
		for _, pt := range points {
			render.Cross(screen, s.camera, pt, 3, colorWaypoint)
		}
		render.FillBox(screen, s.camera, w.Bounds(p.ID()), colorPlatform)
	}
}

func (s *Sandbox) drawPlayer(screen *ebiten.Image) {
	player := s.sim.Player()
	if player == nil {
		return
	}
	c := player.Controller()
	render.FillBox(screen, s.camera, s.sim.World().Bounds(c.ID()), colorPlayer)
	if c.Collisions().Below {
		render.StrokeBox(screen, s.camera, s.sim.World().Bounds(c.ID()), colorGrounded)
	}
}

func (s *Sandbox) drawHUD(screen *ebiten.Image) {
	text := fmt.Sprintf("%s  tick %d  TPS %.0f\n", s.state, s.sim.TickCount(), ebiten.ActualTPS())

	if player := s.sim.Player(); player != nil {
		c := player.Controller()
		pos := s.sim.World().Position(c.ID())
		vel := player.Velocity()
		col := c.Collisions()
		text += fmt.Sprintf("pos %.3f, %.3f  vel %.2f, %.2f\n", pos.X, pos.Y, vel.X, vel.Y)
		text += fmt.Sprintf("above %t below %t left %t right %t\n", col.Above, col.Below, col.Left, col.Right)
	}

	text += "A/D: Move | W/Space: Jump | ESC: Pause | .: Step | F3: Rays | F5: Save trace"
	ebitenutil.DebugPrint(screen, text)
}

func (s *Sandbox) drawPauseOverlay(screen *ebiten.Image) {
	sw, sh := s.camera.ScreenW, s.camera.ScreenH
	vector.FillRect(screen, 0, 0, float32(sw), float32(sh), colorOverlay, false)

	ebitenutil.DebugPrintAt(screen, "PAUSED\n\nESC to resume, . to step", sw/2-70, sh/2-20)
}

// OnEnter is called when entering this scene
func (s *Sandbox) OnEnter() {
	slog.Info("sandbox started", "stage", s.cfg.Stage.ID, "platforms", len(s.sim.Platforms()))
}

// OnExit is called when leaving this scene
func (s *Sandbox) OnExit() {
	s.saveTrace()
}

// Simulation returns the hosted simulation
func (s *Sandbox) Simulation() *system.Simulation {
	return s.sim
}

// State returns how the sandbox is currently advancing
func (s *Sandbox) State() state.RunState {
	return s.state
}
