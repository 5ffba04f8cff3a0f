package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/younwookim/raymover/internal/domain/entity"
)

var (
	colorRayMiss = color.RGBA{230, 60, 60, 255}
	colorRayHit  = color.RGBA{60, 230, 90, 255}
)

// Segment is one cast ray as drawn: from origin to where it stopped
type Segment struct {
	From, To entity.Vec
	Hit      bool
}

// DebugDraw collects the rays cast during a tick so they can be drawn
// after it. It implements system.DebugSink.
type DebugDraw struct {
	segments []Segment
	enabled  bool
}

// NewDebugDraw creates an enabled ray collector
func NewDebugDraw() *DebugDraw {
	return &DebugDraw{enabled: true}
}

// DrawRay records a ray. Nothing is kept while disabled.
func (d *DebugDraw) DrawRay(origin, dir entity.Vec, length float64, hit bool) {
	if !d.enabled {
		return
	}
	d.segments = append(d.segments, Segment{
		From: origin,
		To:   r2.Add(origin, r2.Scale(length, dir)),
		Hit:  hit,
	})
}

// Reset drops the recorded rays; call once per tick before simulating
func (d *DebugDraw) Reset() {
	d.segments = d.segments[:0]
}

// Segments returns the rays recorded since the last Reset
func (d *DebugDraw) Segments() []Segment {
	return d.segments
}

// SetEnabled turns ray collection on or off
func (d *DebugDraw) SetEnabled(enabled bool) {
	d.enabled = enabled
	if !enabled {
		d.Reset()
	}
}

// Enabled reports whether rays are being collected
func (d *DebugDraw) Enabled() bool {
	return d.enabled
}

// Draw strokes every recorded ray; hits in green, misses in red
func (d *DebugDraw) Draw(screen *ebiten.Image, cam *Camera) {
	for _, s := range d.segments {
		x0, y0 := cam.ToScreen(s.From)
		x1, y1 := cam.ToScreen(s.To)
		c := colorRayMiss
		if s.Hit {
			c = colorRayHit
		}
		vector.StrokeLine(screen, x0, y0, x1, y1, 1, c, false)
	}
}
