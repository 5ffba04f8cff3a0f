package system

import (
	"github.com/younwookim/raymover/internal/domain/entity"
)

// Resolver clamps a requested displacement against solid geometry using
// parallel ray sweeps. It never moves anything itself.
type Resolver struct {
	caster Caster
	debug  DebugSink
}

// NewResolver creates a resolver. A nil debug sink disables ray drawing.
func NewResolver(caster Caster, debug DebugSink) *Resolver {
	if debug == nil {
		debug = nopSink{}
	}
	return &Resolver{caster: caster, debug: debug}
}

// Resolve runs the horizontal pass then the vertical pass, shrinking vel in
// place and setting contact flags. Zero components are skipped without casting.
func (r *Resolver) Resolve(vel *entity.Vec, sw Sweep, collisions *entity.CollisionState) {
	if vel.X != 0 {
		r.HorizontalCollisions(vel, sw, collisions)
	}
	if vel.Y != 0 {
		r.VerticalCollisions(vel, sw, collisions)
	}
}

// HorizontalCollisions sweeps rays stacked up from the leading bottom corner.
// Each hit shortens the remaining rays so a later ray cannot report a
// farther contact. A hit at distance 0 still resolves, backing the mover out
// by the skin width.
func (r *Resolver) HorizontalCollisions(vel *entity.Vec, sw Sweep, collisions *entity.CollisionState) {
	dirX := entity.Sign(vel.X)
	rayLength := abs(vel.X) + entity.SkinWidth

	for i := 0; i < sw.Counts.Horizontal; i++ {
		origin := sw.Origins.BottomRight
		if dirX == -1 {
			origin = sw.Origins.BottomLeft
		}
		origin.Y += sw.Spacing.Horizontal * float64(i)

		hit, ok := r.cast(origin, entity.V(dirX, 0), rayLength, sw.Filter)
		if !ok {
			continue
		}

		vel.X = (hit.Distance - entity.SkinWidth) * dirX
		rayLength = hit.Distance

		collisions.Left = dirX == -1
		collisions.Right = dirX == 1
	}
}

// VerticalCollisions sweeps rays along the leading horizontal edge. Origins
// are offset by the already-resolved vel.X so a diagonal move is checked from
// where the horizontal pass left the mover.
func (r *Resolver) VerticalCollisions(vel *entity.Vec, sw Sweep, collisions *entity.CollisionState) {
	dirY := entity.Sign(vel.Y)
	rayLength := abs(vel.Y) + entity.SkinWidth

	for i := 0; i < sw.Counts.Vertical; i++ {
		origin := sw.Origins.TopLeft
		if dirY == -1 {
			origin = sw.Origins.BottomLeft
		}
		origin.X += sw.Spacing.Vertical*float64(i) + vel.X

		hit, ok := r.cast(origin, entity.V(0, dirY), rayLength, sw.Filter)
		if !ok {
			continue
		}

		vel.Y = (hit.Distance - entity.SkinWidth) * dirY
		rayLength = hit.Distance

		collisions.Below = dirY == -1
		collisions.Above = dirY == 1
	}
}

// cast forwards to the caster and reports the ray to the debug sink
func (r *Resolver) cast(origin, dir entity.Vec, length float64, filter entity.Filter) (entity.Hit, bool) {
	hit, ok := r.caster.Cast(origin, dir, length, filter)
	if ok {
		r.debug.DrawRay(origin, dir, hit.Distance, true)
	} else {
		r.debug.DrawRay(origin, dir, length, false)
	}
	return hit, ok
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
