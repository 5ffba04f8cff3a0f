package system

import (
	"fmt"
	"log/slog"

	"github.com/younwookim/raymover/internal/domain/entity"
	"github.com/younwookim/raymover/internal/ecs"
	"github.com/younwookim/raymover/internal/infrastructure/config"
)

// LoadStage converts a StageConfig into a Stage entity
func LoadStage(cfg *config.StageConfig) *entity.Stage {
	tileWidth := 0
	for _, row := range cfg.Layers.Collision {
		tileWidth = max(tileWidth, len(row))
	}
	tileHeight := len(cfg.Layers.Collision)

	tiles := make([][]entity.Tile, tileHeight)
	for y, row := range cfg.Layers.Collision {
		tiles[y] = make([]entity.Tile, tileWidth)
		for x, char := range row {
			mapping, ok := cfg.TileMapping[string(char)]
			if !ok {
				tiles[y][x] = entity.Tile{Type: entity.TileEmpty, Solid: false}
				continue
			}

			tileType := entity.TileEmpty
			if mapping.Type == "wall" {
				tileType = entity.TileWall
			}

			tiles[y][x] = entity.Tile{
				Type:  tileType,
				Solid: mapping.Solid,
			}
		}
	}

	return &entity.Stage{
		Width:    tileWidth,
		Height:   tileHeight,
		TileSize: cfg.TileSize,
		Tiles:    tiles,
		SpawnX:   cfg.PlayerSpawn.X,
		SpawnY:   cfg.PlayerSpawn.Y,
	}
}

// BuildSimulation creates the world for a stage: merged solid tiles, moving
// platforms and the player at the spawn point
func BuildSimulation(cfg *config.GameConfig, debug DebugSink) (*Simulation, *entity.Stage, error) {
	stage := LoadStage(cfg.Stage)
	world := ecs.NewWorld()

	for _, run := range stage.SolidRuns() {
		world.CreateSolid(run)
	}

	sim := NewSimulation(world, debug)
	defaults := ecs.RayCounts{
		Horizontal: cfg.Physics.Collision.HorizontalRayCount,
		Vertical:   cfg.Physics.Collision.VerticalRayCount,
	}

	for _, pc := range cfg.Stage.Platforms {
		counts := defaults
		if pc.HorizontalRayCount != 0 {
			counts.Horizontal = pc.HorizontalRayCount
		}
		if pc.VerticalRayCount != 0 {
			counts.Vertical = pc.VerticalRayCount
		}

		id := world.CreatePlatform(pc.ID, pc.Position.X, pc.Position.Y, pc.Size.W, pc.Size.H, counts)
		settings := PlatformSettings{
			Path:       pc.Path(),
			Speed:      pc.Speed,
			WaitTime:   pc.WaitTime,
			EaseAmount: pc.EaseAmount,
		}
		if _, err := sim.AddPlatform(id, settings); err != nil {
			return nil, nil, fmt.Errorf("platform %s: %w", pc.ID, err)
		}
		slog.Debug("platform created", "id", pc.ID, "waypoints", len(pc.Waypoints), "cyclic", pc.Cyclic)
	}

	pl := cfg.Physics.Player
	playerID := world.CreatePlayer(stage.SpawnX, stage.SpawnY, pl.Width, pl.Height, defaults)
	if _, err := sim.SetPlayer(playerID, PlayerSettings{
		JumpHeight:               pl.JumpHeight,
		TimeToJumpApex:           pl.TimeToJumpApex,
		AccelerationTimeAirborne: pl.AccelerationTimeAirborne,
		AccelerationTimeGrounded: pl.AccelerationTimeGrounded,
		MoveSpeed:                pl.MoveSpeed,
	}); err != nil {
		return nil, nil, fmt.Errorf("player: %w", err)
	}

	slog.Info("simulation built",
		"stage", cfg.Stage.ID,
		"solids", world.CountSolids()-len(sim.Platforms()),
		"platforms", len(sim.Platforms()))

	return sim, stage, nil
}
