// Package render draws the world and its debug overlays with ebiten.
package render

import (
	"github.com/younwookim/raymover/internal/domain/entity"
)

// Camera maps y-up world units to y-down screen pixels.
// Origin is the world point at the screen's bottom-left corner.
type Camera struct {
	PixelsPerUnit float64
	ScreenW       int
	ScreenH       int
	Origin        entity.Vec
}

// NewCamera creates a camera looking at the world origin
func NewCamera(pixelsPerUnit float64, screenW, screenH int) *Camera {
	return &Camera{
		PixelsPerUnit: pixelsPerUnit,
		ScreenW:       screenW,
		ScreenH:       screenH,
	}
}

// ViewSize returns the visible area in world units
func (c *Camera) ViewSize() entity.Vec {
	return entity.V(float64(c.ScreenW)/c.PixelsPerUnit, float64(c.ScreenH)/c.PixelsPerUnit)
}

// Follow centers the view on target, clamped so it stays inside bounds.
// Bounds smaller than the view are centered instead.
func (c *Camera) Follow(target entity.Vec, bounds entity.AABB) {
	view := c.ViewSize()
	c.Origin = entity.V(
		follow(target.X, view.X, bounds.Min.X, bounds.Max.X),
		follow(target.Y, view.Y, bounds.Min.Y, bounds.Max.Y),
	)
}

func follow(target, view, lo, hi float64) float64 {
	if hi-lo <= view {
		return lo + (hi-lo)/2 - view/2
	}
	origin := target - view/2
	if origin < lo {
		origin = lo
	}
	if origin > hi-view {
		origin = hi - view
	}
	return origin
}

// ToScreen converts a world point to screen pixels
func (c *Camera) ToScreen(p entity.Vec) (float32, float32) {
	x := (p.X - c.Origin.X) * c.PixelsPerUnit
	y := float64(c.ScreenH) - (p.Y-c.Origin.Y)*c.PixelsPerUnit
	return float32(x), float32(y)
}

// RectToScreen converts a world box to a screen rectangle (top-left, size)
func (c *Camera) RectToScreen(b entity.AABB) (x, y, w, h float32) {
	x, y = c.ToScreen(entity.V(b.Min.X, b.Max.Y))
	size := b.Size()
	return x, y, float32(size.X * c.PixelsPerUnit), float32(size.Y * c.PixelsPerUnit)
}
