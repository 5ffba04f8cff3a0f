package ecs

import "github.com/younwookim/raymover/internal/domain/entity"

// Body is the collider extent of an entity (center position + size)
type Body = entity.Body

// Name labels an entity for logs and traces
type Name string

// RayCounts is the number of parallel rays swept along each axis
type RayCounts struct {
	Horizontal int
	Vertical   int
}

// DefaultRayCounts matches the usual 4x4 sweep
var DefaultRayCounts = RayCounts{Horizontal: 4, Vertical: 4}

// Clamped returns the counts with each axis raised to at least 2
func (c RayCounts) Clamped() RayCounts {
	return RayCounts{Horizontal: max(c.Horizontal, 2), Vertical: max(c.Vertical, 2)}
}
