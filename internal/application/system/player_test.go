package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/raymover/internal/ecs"
)

func testPlayerSettings() PlayerSettings {
	return PlayerSettings{
		JumpHeight:               4,
		TimeToJumpApex:           0.4,
		AccelerationTimeAirborne: 0.2,
		AccelerationTimeGrounded: 0.1,
		MoveSpeed:                6,
	}
}

func newTestPlayer(t *testing.T, x, y float64) (*Simulation, *PlayerDriver) {
	t.Helper()
	w := ecs.NewWorld()
	w.CreateSolid(box(-20, -1, 20, 0))
	sim := NewSimulation(w, nil)
	id := w.CreatePlayer(x, y, 1, 1, ecs.DefaultRayCounts)
	p, err := sim.SetPlayer(id, testPlayerSettings())
	require.NoError(t, err)
	return sim, p
}

func TestPlayerDriver_DerivesGravityAndJump(t *testing.T) {
	_, p := newTestPlayer(t, 0, 0.5)

	assert.InDelta(t, -50.0, p.Gravity(), 1e-9)
	assert.InDelta(t, 20.0, p.JumpVelocity(), 1e-9)
}

func TestPlayerDriver_FallsAndLands(t *testing.T) {
	sim, p := newTestPlayer(t, 0, 3)
	const dt = 1.0 / 60

	for i := 0; i < 120; i++ {
		p.Update(InputState{}, dt)
	}

	assert.True(t, p.Controller().Collisions().Below)
	assert.InDelta(t, 0.5, sim.World().Position(p.Controller().ID()).Y, 1e-6)
}

func TestPlayerDriver_JumpRequiresGround(t *testing.T) {
	const dt = 1.0 / 60

	t.Run("airborne", func(t *testing.T) {
		_, p := newTestPlayer(t, 0, 5)
		p.Update(InputState{Jump: true, JumpPressed: true}, dt)
		assert.InDelta(t, -50*dt, p.Velocity().Y, 1e-9)
	})

	t.Run("grounded", func(t *testing.T) {
		_, p := newTestPlayer(t, 0, 0.5)
		p.Update(InputState{}, dt)
		require.True(t, p.Controller().Collisions().Below)

		p.Update(InputState{Jump: true, JumpPressed: true}, dt)
		assert.InDelta(t, 20-50*dt, p.Velocity().Y, 1e-9)
		assert.False(t, p.Controller().Collisions().Below)
	})
}

func TestPlayerDriver_RunsTowardsInput(t *testing.T) {
	_, p := newTestPlayer(t, 0, 0.5)
	const dt = 1.0 / 60

	for i := 0; i < 120; i++ {
		p.Update(InputState{Right: true}, dt)
		assert.LessOrEqual(t, p.Velocity().X, 6.0+1e-9)
	}
	assert.InDelta(t, 6.0, p.Velocity().X, 1e-3)
}

func TestSmoothDamp(t *testing.T) {
	t.Run("converges without overshoot", func(t *testing.T) {
		current, vel := 0.0, 0.0
		for i := 0; i < 120; i++ {
			current = SmoothDamp(current, 6, &vel, 0.1, 1.0/60)
			assert.LessOrEqual(t, current, 6.0)
		}
		assert.InDelta(t, 6.0, current, 1e-3)
	})

	t.Run("decelerates to rest", func(t *testing.T) {
		current, vel := 6.0, 0.0
		for i := 0; i < 120; i++ {
			current = SmoothDamp(current, 0, &vel, 0.2, 1.0/60)
			assert.GreaterOrEqual(t, current, 0.0)
		}
		assert.InDelta(t, 0.0, current, 1e-2)
	})

	t.Run("at target stays put", func(t *testing.T) {
		vel := 0.0
		assert.Equal(t, 3.0, SmoothDamp(3, 3, &vel, 0.1, 1.0/60))
		assert.Equal(t, 0.0, vel)
	})
}

func TestInputState_AxisX(t *testing.T) {
	assert.Equal(t, 0.0, InputState{}.AxisX())
	assert.Equal(t, -1.0, InputState{Left: true}.AxisX())
	assert.Equal(t, 1.0, InputState{Right: true}.AxisX())
	assert.Equal(t, 0.0, InputState{Left: true, Right: true}.AxisX())
}
