package system

import (
	"fmt"

	"github.com/younwookim/raymover/internal/domain/entity"
	"github.com/younwookim/raymover/internal/ecs"
)

// Controller moves one entity through the scene, stopping it at solid
// geometry and recording which sides made contact.
type Controller struct {
	id         entity.EntityID
	transform  Transform
	resolver   *Resolver
	counts     ecs.RayCounts
	filter     entity.Filter
	collisions entity.CollisionState
}

// NewController creates a controller for id. filter selects what the entity
// collides with and should not accept the entity itself.
func NewController(id entity.EntityID, transform Transform, resolver *Resolver, counts ecs.RayCounts, filter entity.Filter) (*Controller, error) {
	if err := checkBounds(transform.Bounds(id)); err != nil {
		return nil, fmt.Errorf("controller %d: %w", id, err)
	}
	return &Controller{
		id:        id,
		transform: transform,
		resolver:  resolver,
		counts:    counts.Clamped(),
		filter:    filter,
	}, nil
}

// Move resolves velocity (a displacement for this tick) against geometry and
// applies it. standingOnPlatform forces Below when a platform carries the
// entity, even if no ray registered the platform this tick.
// It returns the displacement actually applied.
func (c *Controller) Move(velocity entity.Vec, standingOnPlatform bool) entity.Vec {
	sw := NewSweep(c.transform.Bounds(c.id), c.counts, c.filter)
	c.collisions.Reset()

	c.resolver.Resolve(&velocity, sw, &c.collisions)

	c.transform.Translate(c.id, velocity)

	if standingOnPlatform {
		c.collisions.Below = true
	}
	return velocity
}

// Collisions returns the contact flags from the most recent Move
func (c *Controller) Collisions() entity.CollisionState {
	return c.collisions
}

// ID returns the controlled entity
func (c *Controller) ID() entity.EntityID {
	return c.id
}
