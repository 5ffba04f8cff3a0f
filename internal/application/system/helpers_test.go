package system

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/younwookim/raymover/internal/domain/entity"
	"github.com/younwookim/raymover/internal/ecs"
)

func box(minX, minY, maxX, maxY float64) entity.AABB {
	return entity.AABB{Min: entity.V(minX, minY), Max: entity.V(maxX, maxY)}
}

// countingCaster records how many rays were cast
type countingCaster struct {
	Caster
	calls int
}

func (c *countingCaster) Cast(origin, dir entity.Vec, maxDistance float64, filter entity.Filter) (entity.Hit, bool) {
	c.calls++
	return c.Caster.Cast(origin, dir, maxDistance, filter)
}

// rayLog captures debug rays
type rayLog struct {
	rays []loggedRay
}

type loggedRay struct {
	origin, dir entity.Vec
	length      float64
	hit         bool
}

func (l *rayLog) DrawRay(origin, dir entity.Vec, length float64, hit bool) {
	l.rays = append(l.rays, loggedRay{origin, dir, length, hit})
}

// newMover adds a passenger-tagged 1x1 mover centered at (x, y) with a controller
func newMover(t *testing.T, sim *Simulation, x, y float64) *Controller {
	t.Helper()
	id := sim.World().CreatePlayer(x, y, 1, 1, ecs.DefaultRayCounts)
	c, err := sim.AddController(id)
	require.NoError(t, err)
	return c
}
