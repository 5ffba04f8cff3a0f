package trace

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gocarina/gocsv"

	"github.com/younwookim/raymover/internal/application/system"
)

// ErrEmptyTrace is returned when saving a trace with no frames
var ErrEmptyTrace = errors.New("no frames to save")

// Recorder collects one Frame per tick
type Recorder struct {
	frames    []Frame
	recording bool
}

// NewRecorder creates a recorder that starts recording immediately
func NewRecorder() *Recorder {
	return &Recorder{
		frames:    make([]Frame, 0, 3600), // ~1 minute at 60fps
		recording: true,
	}
}

// RecordFrame captures the simulation after a tick driven by input
func (r *Recorder) RecordFrame(sim *system.Simulation, input system.InputState) {
	if !r.recording {
		return
	}
	r.frames = append(r.frames, Capture(sim, input))
}

// Write encodes the recorded frames as CSV with a header row
func (r *Recorder) Write(w io.Writer) error {
	return Write(w, r.frames)
}

// Save writes the recorded frames to a file
func (r *Recorder) Save(filename string) error {
	return Save(filename, r.frames)
}

// Stop stops recording
func (r *Recorder) Stop() {
	r.recording = false
}

// IsRecording returns whether recording is active
func (r *Recorder) IsRecording() bool {
	return r.recording
}

// FrameCount returns the number of recorded frames
func (r *Recorder) FrameCount() int {
	return len(r.frames)
}

// Frames returns the recorded frames
func (r *Recorder) Frames() []Frame {
	return r.frames
}

// GenerateFilename creates a filename based on the stage and current time
func GenerateFilename(stage string) string {
	return fmt.Sprintf("trace_%s_%s.csv", stage, time.Now().Format("20060102_150405"))
}

// Write encodes frames as CSV with a header row
func Write(w io.Writer, frames []Frame) error {
	if len(frames) == 0 {
		return ErrEmptyTrace
	}
	if err := gocsv.Marshal(frames, w); err != nil {
		return fmt.Errorf("writing trace: %w", err)
	}
	return nil
}

// Save writes frames to a CSV file
func Save(filename string, frames []Frame) error {
	if len(frames) == 0 {
		return ErrEmptyTrace
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return Write(file, frames)
}
