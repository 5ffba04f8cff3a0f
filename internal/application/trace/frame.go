package trace

import (
	"github.com/younwookim/raymover/internal/application/system"
)

// Frame is one simulation tick: the input fed in and where the player ended up
type Frame struct {
	Tick        uint64 `csv:"tick"`
	Left        bool   `csv:"left"`
	Right       bool   `csv:"right"`
	Jump        bool   `csv:"jump"`
	JumpPressed bool   `csv:"jump_pressed"`

	X float64 `csv:"x"`
	Y float64 `csv:"y"`

	Above        bool `csv:"above"`
	Below        bool `csv:"below"`
	ContactLeft  bool `csv:"contact_left"`
	ContactRight bool `csv:"contact_right"`
}

// Input returns the recorded input state
func (f Frame) Input() system.InputState {
	return system.InputState{
		Left:        f.Left,
		Right:       f.Right,
		Jump:        f.Jump,
		JumpPressed: f.JumpPressed,
	}
}

// Capture builds a frame from the simulation's state after a tick
func Capture(sim *system.Simulation, input system.InputState) Frame {
	f := Frame{
		Tick:        sim.TickCount(),
		Left:        input.Left,
		Right:       input.Right,
		Jump:        input.Jump,
		JumpPressed: input.JumpPressed,
	}

	player := sim.Player()
	if player == nil {
		return f
	}
	id := player.Controller().ID()
	pos := sim.World().Position(id)
	c := player.Controller().Collisions()

	f.X, f.Y = pos.X, pos.Y
	f.Above, f.Below = c.Above, c.Below
	f.ContactLeft, f.ContactRight = c.Left, c.Right
	return f
}
