package config

import (
	"errors"
	"fmt"

	"github.com/younwookim/raymover/internal/domain/entity"
)

var (
	ErrDegenerateBox     = errors.New("collider must exceed twice the skin width on both axes")
	ErrInvalidEaseAmount = errors.New("easeAmount must be within [0, 2]")
	ErrInvalidSpeed      = errors.New("platform speed must be positive")
	ErrInvalidWaitTime   = errors.New("waitTime must not be negative")
	ErrInvalidDisplay    = errors.New("display settings must be positive")
	ErrInvalidPlayer     = errors.New("player movement settings must be positive")
	ErrInvalidTileSize   = errors.New("tileSize must be positive")
)

// Validate checks physics.yaml values
func (c *PhysicsConfig) Validate() error {
	d := c.Display
	if d.ScreenWidth <= 0 || d.ScreenHeight <= 0 || d.Scale <= 0 || d.Framerate <= 0 || d.PixelsPerUnit <= 0 {
		return ErrInvalidDisplay
	}

	p := c.Player
	if err := checkBox("player", p.Width, p.Height); err != nil {
		return err
	}
	if p.JumpHeight <= 0 || p.TimeToJumpApex <= 0 || p.MoveSpeed <= 0 {
		return ErrInvalidPlayer
	}
	if p.AccelerationTimeAirborne < 0 || p.AccelerationTimeGrounded < 0 {
		return ErrInvalidPlayer
	}
	return nil
}

// Validate checks a stage and all of its platforms
func (s *StageConfig) Validate() error {
	if s.TileSize <= 0 {
		return ErrInvalidTileSize
	}
	for i, p := range s.Platforms {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("platform %d (%s): %w", i, p.ID, err)
		}
	}
	return nil
}

// Validate checks a platform's collider and waypoint path
func (p PlatformConfig) Validate() error {
	if err := checkBox("platform", p.Size.W, p.Size.H); err != nil {
		return err
	}
	if p.Speed <= 0 {
		return ErrInvalidSpeed
	}
	if p.WaitTime < 0 {
		return ErrInvalidWaitTime
	}
	if p.EaseAmount < 0 || p.EaseAmount > 2 {
		return ErrInvalidEaseAmount
	}
	return p.Path().Validate()
}

// Path converts the local waypoints into a global path
func (p PlatformConfig) Path() entity.Path {
	local := make([]entity.Vec, len(p.Waypoints))
	for i, w := range p.Waypoints {
		local[i] = entity.V(w.X, w.Y)
	}
	return entity.NewPath(entity.V(p.Position.X, p.Position.Y), local, p.Cyclic)
}

func checkBox(what string, w, h float64) error {
	if w <= entity.MinColliderSize || h <= entity.MinColliderSize {
		return fmt.Errorf("%s %gx%g: %w", what, w, h, ErrDegenerateBox)
	}
	return nil
}
