package entity

import (
	"errors"
	"fmt"
	"slices"
)

// ErrTooFewWaypoints is returned when a path has fewer than two points
var ErrTooFewWaypoints = errors.New("waypoint path needs at least 2 points")

// ErrDuplicateWaypoint is returned when two consecutive waypoints coincide
var ErrDuplicateWaypoint = errors.New("consecutive waypoints must differ")

// Path is an ordered list of world positions a platform travels between.
// Cyclic paths wrap from the last point back to the first; non-cyclic paths
// ping-pong by reversing their point order in place at the end.
type Path struct {
	Points []Vec
	Cyclic bool
}

// NewPath builds a global path by offsetting local waypoints from origin
func NewPath(origin Vec, local []Vec, cyclic bool) Path {
	points := make([]Vec, len(local))
	for i, p := range local {
		points[i] = Vec{X: origin.X + p.X, Y: origin.Y + p.Y}
	}
	return Path{Points: points, Cyclic: cyclic}
}

// Validate checks the path can be traversed
func (p Path) Validate() error {
	if len(p.Points) < 2 {
		return fmt.Errorf("%w: got %d", ErrTooFewWaypoints, len(p.Points))
	}
	for i := range p.Points {
		next := i + 1
		if next == len(p.Points) {
			if !p.Cyclic {
				break
			}
			next = 0
		}
		if p.Points[i] == p.Points[next] {
			return fmt.Errorf("%w: index %d and %d", ErrDuplicateWaypoint, i, next)
		}
	}
	return nil
}

// Len returns the number of points
func (p Path) Len() int {
	return len(p.Points)
}

// Reverse flips the point order in place
func (p *Path) Reverse() {
	slices.Reverse(p.Points)
}
