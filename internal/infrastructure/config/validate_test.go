package config

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/raymover/internal/domain/entity"
)

func validPhysics() PhysicsConfig {
	return PhysicsConfig{
		Display: DisplayConfig{ScreenWidth: 320, ScreenHeight: 240, Scale: 2, Framerate: 60, PixelsPerUnit: 16},
		Player: PlayerConfig{
			Width: 1, Height: 1,
			JumpHeight: 4, TimeToJumpApex: 0.4,
			AccelerationTimeAirborne: 0.2, AccelerationTimeGrounded: 0.1,
			MoveSpeed: 6,
		},
	}
}

func validPlatform() PlatformConfig {
	return PlatformConfig{
		ID:        "p",
		Size:      SizeConfig{W: 3, H: 0.5},
		Waypoints: []PositionConfig{{X: 0, Y: 0}, {X: 0, Y: 4}},
		Speed:     2,
	}
}

func TestPhysicsConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *PhysicsConfig)
		wantErr error
	}{
		{"valid", func(c *PhysicsConfig) {}, nil},
		{"zero framerate", func(c *PhysicsConfig) { c.Display.Framerate = 0 }, ErrInvalidDisplay},
		{"zero pixels per unit", func(c *PhysicsConfig) { c.Display.PixelsPerUnit = 0 }, ErrInvalidDisplay},
		{"thin player", func(c *PhysicsConfig) { c.Player.Width = 0.02 }, ErrDegenerateBox},
		{"no jump", func(c *PhysicsConfig) { c.Player.JumpHeight = 0 }, ErrInvalidPlayer},
		{"negative smoothing", func(c *PhysicsConfig) { c.Player.AccelerationTimeGrounded = -1 }, ErrInvalidPlayer},
		{"instant acceleration is allowed", func(c *PhysicsConfig) { c.Player.AccelerationTimeAirborne = 0 }, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validPhysics()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestPlatformConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(p *PlatformConfig)
		wantErr error
	}{
		{"valid", func(p *PlatformConfig) {}, nil},
		{"max ease", func(p *PlatformConfig) { p.EaseAmount = 2 }, nil},
		{"ease too high", func(p *PlatformConfig) { p.EaseAmount = 2.5 }, ErrInvalidEaseAmount},
		{"negative ease", func(p *PlatformConfig) { p.EaseAmount = -0.1 }, ErrInvalidEaseAmount},
		{"stopped", func(p *PlatformConfig) { p.Speed = 0 }, ErrInvalidSpeed},
		{"negative wait", func(p *PlatformConfig) { p.WaitTime = -1 }, ErrInvalidWaitTime},
		{"degenerate size", func(p *PlatformConfig) { p.Size.H = 0.01 }, ErrDegenerateBox},
		{"one waypoint", func(p *PlatformConfig) { p.Waypoints = p.Waypoints[:1] }, entity.ErrTooFewWaypoints},
		{"repeated waypoint", func(p *PlatformConfig) {
			p.Waypoints = []PositionConfig{{X: 1, Y: 1}, {X: 1, Y: 1}}
		}, entity.ErrDuplicateWaypoint},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validPlatform()
			tt.mutate(&p)
			err := p.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestPlatformConfig_Path(t *testing.T) {
	p := validPlatform()
	p.Position = PositionConfig{X: 5, Y: 2}
	p.Cyclic = true

	path := p.Path()

	assert.Equal(t, []entity.Vec{entity.V(5, 2), entity.V(5, 6)}, path.Points)
	assert.True(t, path.Cyclic)
}

func TestStageConfig_Validate(t *testing.T) {
	s := StageConfig{TileSize: 1, Platforms: []PlatformConfig{validPlatform()}}
	assert.NoError(t, s.Validate())

	s.TileSize = 0
	assert.ErrorIs(t, s.Validate(), ErrInvalidTileSize)

	s.TileSize = 1
	s.Platforms[0].Speed = -1
	assert.ErrorIs(t, s.Validate(), ErrInvalidSpeed)
}
