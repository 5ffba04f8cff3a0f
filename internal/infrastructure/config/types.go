package config

// PhysicsConfig is the root config for physics.yaml
type PhysicsConfig struct {
	Display   DisplayConfig   `yaml:"display"`
	Collision CollisionConfig `yaml:"collision"`
	Player    PlayerConfig    `yaml:"player"`
}

type DisplayConfig struct {
	ScreenWidth   int     `yaml:"screenWidth"`
	ScreenHeight  int     `yaml:"screenHeight"`
	Scale         int     `yaml:"scale"`
	Framerate     int     `yaml:"framerate"`
	PixelsPerUnit float64 `yaml:"pixelsPerUnit"`
}

// CollisionConfig sets the default ray sweep density.
// Counts below 2 are clamped to 2 at use.
type CollisionConfig struct {
	HorizontalRayCount int `yaml:"horizontalRayCount"`
	VerticalRayCount   int `yaml:"verticalRayCount"`
}

// PlayerConfig configures the player's collider and movement feel
type PlayerConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	JumpHeight               float64 `yaml:"jumpHeight"`               // world units
	TimeToJumpApex           float64 `yaml:"timeToJumpApex"`           // seconds
	AccelerationTimeAirborne float64 `yaml:"accelerationTimeAirborne"` // seconds to reach target speed
	AccelerationTimeGrounded float64 `yaml:"accelerationTimeGrounded"` // seconds to reach target speed
	MoveSpeed                float64 `yaml:"moveSpeed"`                // world units per second
}
