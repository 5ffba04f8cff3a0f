package state

// RunState is how the sandbox advances the simulation
type RunState int

const (
	StateRunning RunState = iota
	StatePaused
	StateStepping
	StateReplaying
	StateFinished
)

// String returns the string representation of the run state
func (s RunState) String() string {
	switch s {
	case StateRunning:
		return "Running"
	case StatePaused:
		return "Paused"
	case StateStepping:
		return "Stepping"
	case StateReplaying:
		return "Replaying"
	case StateFinished:
		return "Finished"
	default:
		return "Unknown"
	}
}

// Advances reports whether the simulation ticks this frame
func (s RunState) Advances() bool {
	return s == StateRunning || s == StateStepping || s == StateReplaying
}

// TogglePause switches between running and paused. Replays pause too and
// resume as replays.
func (s RunState) TogglePause(replaying bool) RunState {
	switch s {
	case StatePaused, StateStepping:
		if replaying {
			return StateReplaying
		}
		return StateRunning
	case StateRunning, StateReplaying:
		return StatePaused
	default:
		return s
	}
}

// AfterTick returns the state once a tick has run. A single step falls back
// to paused.
func (s RunState) AfterTick() RunState {
	if s == StateStepping {
		return StatePaused
	}
	return s
}
