package entity

import "gonum.org/v1/gonum/spatial/r2"

// Vec is a 2D world-space vector. World space is y-up: positive Y points
// towards the top of the scene.
type Vec = r2.Vec

// Common unit directions
var (
	Up    = Vec{X: 0, Y: 1}
	Down  = Vec{X: 0, Y: -1}
	Right = Vec{X: 1, Y: 0}
	Left  = Vec{X: -1, Y: 0}
)

// V is shorthand for Vec{X: x, Y: y}
func V(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

// Sign returns -1 for negative values and 1 otherwise.
// Zero maps to 1 so a direction is always defined.
func Sign(x float64) float64 {
	if x < 0 {
		return -1
	}
	return 1
}

// Lerp interpolates between a and b by t, clamping t to [0,1].
func Lerp(a, b Vec, t float64) Vec {
	t = Clamp01(t)
	return r2.Add(a, r2.Scale(t, r2.Sub(b, a)))
}

// Clamp01 clamps x to [0,1]
func Clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// Distance returns the euclidean distance between a and b
func Distance(a, b Vec) float64 {
	return r2.Norm(r2.Sub(b, a))
}
