package system

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/younwookim/raymover/internal/domain/entity"
)

// PlayerSettings tunes how input turns into velocity
type PlayerSettings struct {
	JumpHeight               float64
	TimeToJumpApex           float64
	AccelerationTimeAirborne float64
	AccelerationTimeGrounded float64
	MoveSpeed                float64
}

// PlayerDriver turns input into a per-tick displacement for a Controller,
// applying gravity, jumping and smoothed horizontal acceleration.
type PlayerDriver struct {
	controller *Controller
	settings   PlayerSettings

	gravity      float64
	jumpVelocity float64

	velocity           entity.Vec
	velocityXSmoothing float64
}

// NewPlayerDriver derives gravity and jump velocity so a jump peaks at
// JumpHeight after TimeToJumpApex seconds
func NewPlayerDriver(controller *Controller, settings PlayerSettings) *PlayerDriver {
	gravity := -(2 * settings.JumpHeight) / math.Pow(settings.TimeToJumpApex, 2)
	return &PlayerDriver{
		controller:   controller,
		settings:     settings,
		gravity:      gravity,
		jumpVelocity: math.Abs(gravity) * settings.TimeToJumpApex,
	}
}

// Update applies one tick of input and moves the controller
func (d *PlayerDriver) Update(input InputState, dt float64) {
	collisions := d.controller.Collisions()

	if collisions.Above || collisions.Below {
		d.velocity.Y = 0
	}

	if input.JumpPressed && collisions.Below {
		d.velocity.Y = d.jumpVelocity
	}

	targetVelocityX := input.AxisX() * d.settings.MoveSpeed
	smoothTime := d.settings.AccelerationTimeAirborne
	if collisions.Below {
		smoothTime = d.settings.AccelerationTimeGrounded
	}
	d.velocity.X = SmoothDamp(d.velocity.X, targetVelocityX, &d.velocityXSmoothing, smoothTime, dt)

	d.velocity.Y += d.gravity * dt
	d.controller.Move(r2.Scale(dt, d.velocity), false)
}

// Gravity returns the derived downward acceleration (negative)
func (d *PlayerDriver) Gravity() float64 {
	return d.gravity
}

// JumpVelocity returns the derived takeoff speed
func (d *PlayerDriver) JumpVelocity() float64 {
	return d.jumpVelocity
}

// Velocity returns the current velocity in units per second
func (d *PlayerDriver) Velocity() entity.Vec {
	return d.velocity
}

// Controller returns the driven controller
func (d *PlayerDriver) Controller() *Controller {
	return d.controller
}

// SmoothDamp moves current towards target like a critically damped spring
// that settles in roughly smoothTime seconds. currentVelocity carries the
// spring's state between calls. The result never overshoots target.
func SmoothDamp(current, target float64, currentVelocity *float64, smoothTime, dt float64) float64 {
	smoothTime = math.Max(0.0001, smoothTime)
	omega := 2 / smoothTime

	x := omega * dt
	exp := 1 / (1 + x + 0.48*x*x + 0.235*x*x*x)
	change := current - target
	originalTo := target

	temp := (*currentVelocity + omega*change) * dt
	*currentVelocity = (*currentVelocity - omega*temp) * exp
	output := target + (change+temp)*exp

	if (originalTo-current > 0) == (output > originalTo) {
		output = originalTo
		if dt > 0 {
			*currentVelocity = (output - originalTo) / dt
		}
	}
	return output
}
