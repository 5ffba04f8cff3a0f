package system

import (
	"errors"

	"github.com/younwookim/raymover/internal/domain/entity"
	"github.com/younwookim/raymover/internal/ecs"
)

// ErrDegenerateBounds is returned when a collider is too thin to shrink by
// the skin width on both sides
var ErrDegenerateBounds = errors.New("collider bounds must exceed twice the skin width")

// Caster is the spatial query every sweep runs against.
// It returns the closest hit within maxDistance accepted by filter.
type Caster interface {
	Cast(origin, dir entity.Vec, maxDistance float64, filter entity.Filter) (entity.Hit, bool)
}

// Transform gives movers access to entity extents and applies displacement
type Transform interface {
	Bounds(id entity.EntityID) entity.AABB
	Position(id entity.EntityID) entity.Vec
	Translate(id entity.EntityID, delta entity.Vec)
}

// DebugSink receives every ray cast for visualization
type DebugSink interface {
	DrawRay(origin, dir entity.Vec, length float64, hit bool)
}

type nopSink struct{}

func (nopSink) DrawRay(entity.Vec, entity.Vec, float64, bool) {}

// RaycastOrigins are the corners of the skin-shrunk collider
type RaycastOrigins struct {
	TopLeft, TopRight       entity.Vec
	BottomLeft, BottomRight entity.Vec
}

// RaySpacing is the gap between parallel rays.
// Horizontal rays are stacked along Y, vertical rays along X.
type RaySpacing struct {
	Horizontal float64
	Vertical   float64
}

// ComputeOrigins shrinks bounds by the skin on every side and returns its corners
func ComputeOrigins(bounds entity.AABB) RaycastOrigins {
	b := bounds.Expand(-2 * entity.SkinWidth)
	return RaycastOrigins{
		BottomLeft:  entity.V(b.Min.X, b.Min.Y),
		BottomRight: entity.V(b.Max.X, b.Min.Y),
		TopLeft:     entity.V(b.Min.X, b.Max.Y),
		TopRight:    entity.V(b.Max.X, b.Max.Y),
	}
}

// ComputeSpacing clamps the ray counts to at least 2 per axis and spreads
// them evenly over the shrunk bounds. It returns the clamped counts.
func ComputeSpacing(bounds entity.AABB, counts ecs.RayCounts) (RaySpacing, ecs.RayCounts) {
	counts = counts.Clamped()
	size := bounds.Expand(-2 * entity.SkinWidth).Size()
	return RaySpacing{
		Horizontal: size.Y / float64(counts.Horizontal-1),
		Vertical:   size.X / float64(counts.Vertical-1),
	}, counts
}

// Sweep is everything a resolver needs for one entity's ray pass this tick.
// It is rebuilt from current bounds on every move and never reused.
type Sweep struct {
	Origins RaycastOrigins
	Spacing RaySpacing
	Counts  ecs.RayCounts
	Filter  entity.Filter
}

// NewSweep derives origins and spacing from the entity's current bounds
func NewSweep(bounds entity.AABB, counts ecs.RayCounts, filter entity.Filter) Sweep {
	spacing, clamped := ComputeSpacing(bounds, counts)
	return Sweep{
		Origins: ComputeOrigins(bounds),
		Spacing: spacing,
		Counts:  clamped,
		Filter:  filter,
	}
}

func checkBounds(bounds entity.AABB) error {
	size := bounds.Size()
	if size.X <= entity.MinColliderSize || size.Y <= entity.MinColliderSize {
		return ErrDegenerateBounds
	}
	return nil
}
