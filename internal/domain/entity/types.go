package entity

// EntityID is a unique identifier for an entity
type EntityID uint32

// TileType represents the type of a tile
type TileType int

const (
	TileEmpty TileType = iota
	TileWall
)

// Tile represents a single tile in the stage
type Tile struct {
	Type  TileType
	Solid bool
}

// Stage is the static tile grid of a scene.
// Row 0 is the top row; world space is y-up, so row r spans
// [(Height-1-r)*TileSize, (Height-r)*TileSize) vertically.
type Stage struct {
	Width    int
	Height   int
	TileSize float64
	Tiles    [][]Tile
	SpawnX   float64
	SpawnY   float64
}

// GetTile returns the tile at the given tile coordinates
func (s *Stage) GetTile(tx, ty int) Tile {
	if tx < 0 || tx >= s.Width || ty < 0 || ty >= s.Height {
		return Tile{Type: TileWall, Solid: true}
	}
	return s.Tiles[ty][tx]
}

// TileAt returns the tile covering the given world point
func (s *Stage) TileAt(x, y float64) Tile {
	tx := floorDiv(x, s.TileSize)
	ty := s.Height - 1 - floorDiv(y, s.TileSize)
	return s.GetTile(tx, ty)
}

// IsSolidAt checks if the tile at the world point is solid
func (s *Stage) IsSolidAt(x, y float64) bool {
	return s.TileAt(x, y).Solid
}

// TileBounds returns the world box of a tile
func (s *Stage) TileBounds(tx, ty int) AABB {
	minY := float64(s.Height-1-ty) * s.TileSize
	minX := float64(tx) * s.TileSize
	return AABB{
		Min: Vec{X: minX, Y: minY},
		Max: Vec{X: minX + s.TileSize, Y: minY + s.TileSize},
	}
}

// SolidRuns merges horizontally adjacent solid tiles of each row into boxes.
// Rows are scanned top to bottom, tiles left to right.
func (s *Stage) SolidRuns() []AABB {
	var runs []AABB
	for ty := 0; ty < s.Height; ty++ {
		start := -1
		for tx := 0; tx <= s.Width; tx++ {
			solid := tx < s.Width && s.Tiles[ty][tx].Solid
			switch {
			case solid && start < 0:
				start = tx
			case !solid && start >= 0:
				first := s.TileBounds(start, ty)
				last := s.TileBounds(tx-1, ty)
				runs = append(runs, AABB{Min: first.Min, Max: last.Max})
				start = -1
			}
		}
	}
	return runs
}

func floorDiv(v, size float64) int {
	q := v / size
	i := int(q)
	if q < 0 && float64(i) != q {
		i--
	}
	return i
}
