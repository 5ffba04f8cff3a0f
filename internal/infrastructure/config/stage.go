package config

// StageConfig is the root config for stage YAML files
type StageConfig struct {
	ID          string                       `yaml:"id"`
	Name        string                       `yaml:"name"`
	TileSize    float64                      `yaml:"tileSize"`
	PlayerSpawn PositionConfig               `yaml:"playerSpawn"`
	Layers      LayersConfig                 `yaml:"layers"`
	TileMapping map[string]TileMappingConfig `yaml:"tileMapping"`
	Platforms   []PlatformConfig             `yaml:"platforms"`
}

type PositionConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type SizeConfig struct {
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// LayersConfig holds the tile rows, top row first
type LayersConfig struct {
	Collision []string `yaml:"collision"`
}

type TileMappingConfig struct {
	Type  string `yaml:"type"`
	Solid bool   `yaml:"solid"`
}

// PlatformConfig describes a moving platform.
// Waypoints are offsets from Position.
type PlatformConfig struct {
	ID         string           `yaml:"id"`
	Position   PositionConfig   `yaml:"position"`
	Size       SizeConfig       `yaml:"size"`
	Waypoints  []PositionConfig `yaml:"waypoints"`
	Speed      float64          `yaml:"speed"`
	Cyclic     bool             `yaml:"cyclic"`
	WaitTime   float64          `yaml:"waitTime"`
	EaseAmount float64          `yaml:"easeAmount"` // 0 = linear, up to 2

	// Optional per-platform sweep density; zero falls back to physics.yaml
	HorizontalRayCount int `yaml:"horizontalRayCount,omitempty"`
	VerticalRayCount   int `yaml:"verticalRayCount,omitempty"`
}
