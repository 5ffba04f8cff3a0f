package ecs

import (
	"math"

	"github.com/younwookim/raymover/internal/domain/entity"
)

// Cast returns the closest entity accepted by filter whose box is crossed by
// the ray from origin along dir within maxDistance. dir must be a unit vector.
// An origin inside (or on the entering face of) a box hits at distance 0.
// Equal distances resolve to the lower entity ID so results are deterministic.
func (w *World) Cast(origin, dir entity.Vec, maxDistance float64, filter entity.Filter) (entity.Hit, bool) {
	best := entity.Hit{Distance: math.Inf(1)}
	found := false

	for id, body := range w.Body {
		if filter != nil && !filter.IsCollidable(id) {
			continue
		}
		d, ok := rayBox(origin, dir, body.Bounds())
		if !ok || d > maxDistance {
			continue
		}
		if d < best.Distance || (d == best.Distance && id < best.Target) {
			best = entity.Hit{Distance: d, Target: id}
			found = true
		}
	}

	return best, found
}

// rayBox is the slab test. It returns the entry distance along dir, clamped
// to 0 when the origin already lies in the box. Rays that only leave the box
// (exit distance 0) do not count.
func rayBox(origin, dir entity.Vec, box entity.AABB) (float64, bool) {
	tMin, tMax := math.Inf(-1), math.Inf(1)

	if !slab(origin.X, dir.X, box.Min.X, box.Max.X, &tMin, &tMax) {
		return 0, false
	}
	if !slab(origin.Y, dir.Y, box.Min.Y, box.Max.Y, &tMin, &tMax) {
		return 0, false
	}
	if tMax <= 0 || tMin > tMax {
		return 0, false
	}
	return math.Max(tMin, 0), true
}

func slab(o, d, lo, hi float64, tMin, tMax *float64) bool {
	if d == 0 {
		// Parallel: must already be within the slab
		return o >= lo && o <= hi
	}
	t1 := (lo - o) / d
	t2 := (hi - o) / d
	if t1 > t2 {
		t1, t2 = t2, t1
	}
	*tMin = math.Max(*tMin, t1)
	*tMax = math.Min(*tMax, t2)
	return true
}
