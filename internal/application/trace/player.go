package trace

import (
	"fmt"
	"io"
	"os"

	"github.com/gocarina/gocsv"

	"github.com/younwookim/raymover/internal/application/system"
)

// Read decodes a CSV trace
func Read(r io.Reader) ([]Frame, error) {
	var frames []Frame
	if err := gocsv.Unmarshal(r, &frames); err != nil {
		return nil, fmt.Errorf("failed to decode trace: %w", err)
	}
	return frames, nil
}

// Load reads a CSV trace from a file
func Load(filename string) ([]Frame, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return Read(file)
}

// Player feeds recorded inputs back one tick at a time
type Player struct {
	frames []Frame
	frame  int
}

// NewPlayer creates a player over frames
func NewPlayer(frames []Frame) *Player {
	return &Player{frames: frames}
}

// GetInput returns the input for the current frame and advances
func (p *Player) GetInput() (system.InputState, bool) {
	if p.frame >= len(p.frames) {
		return system.InputState{}, false
	}

	f := p.frames[p.frame]
	p.frame++
	return f.Input(), true
}

// CurrentFrame returns the current frame number
func (p *Player) CurrentFrame() int {
	return p.frame
}

// TotalFrames returns the total number of frames
func (p *Player) TotalFrames() int {
	return len(p.frames)
}

// Reset rewinds to the first frame
func (p *Player) Reset() {
	p.frame = 0
}

// Replay runs sim with every recorded input at a fixed dt and returns the
// resulting trace
func Replay(sim *system.Simulation, frames []Frame, dt float64) []Frame {
	p := NewPlayer(frames)
	rec := NewRecorder()
	for {
		input, ok := p.GetInput()
		if !ok {
			break
		}
		sim.Tick(dt, input)
		rec.RecordFrame(sim, input)
	}
	return rec.Frames()
}

// Idle returns n frames with no input held
func Idle(n int) []Frame {
	frames := make([]Frame, n)
	for i := range frames {
		frames[i].Tick = uint64(i + 1)
	}
	return frames
}
