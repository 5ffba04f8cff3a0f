package ecs

import (
	"github.com/younwookim/raymover/internal/domain/entity"
)

// EntityID is a unique identifier for an entity (never recycled)
type EntityID = entity.EntityID

// World holds all component maps and the next entity ID
type World struct {
	nextID EntityID

	// Components
	Body      map[EntityID]Body
	Name      map[EntityID]Name
	RayCounts map[EntityID]RayCounts

	// Tags
	IsSolid     map[EntityID]struct{}
	IsPassenger map[EntityID]struct{}
	IsPlatform  map[EntityID]struct{}
	IsPlayer    map[EntityID]struct{}

	// Singleton references
	PlayerID EntityID
}

// NewWorld creates a new empty world
func NewWorld() *World {
	return &World{
		nextID:      1, // 0 is "nil"
		Body:        make(map[EntityID]Body),
		Name:        make(map[EntityID]Name),
		RayCounts:   make(map[EntityID]RayCounts),
		IsSolid:     make(map[EntityID]struct{}),
		IsPassenger: make(map[EntityID]struct{}),
		IsPlatform:  make(map[EntityID]struct{}),
		IsPlayer:    make(map[EntityID]struct{}),
	}
}

// NewEntity returns a new unique entity ID
func (w *World) NewEntity() EntityID {
	id := w.nextID
	w.nextID++
	return id
}

// DestroyEntity removes all components for an entity
func (w *World) DestroyEntity(id EntityID) {
	delete(w.Body, id)
	delete(w.Name, id)
	delete(w.RayCounts, id)
	delete(w.IsSolid, id)
	delete(w.IsPassenger, id)
	delete(w.IsPlatform, id)
	delete(w.IsPlayer, id)
	if w.PlayerID == id {
		w.PlayerID = 0
	}
}

// Exists checks if an entity has a Body component
func (w *World) Exists(id EntityID) bool {
	_, ok := w.Body[id]
	return ok
}

// CreateSolid creates a static solid box
func (w *World) CreateSolid(bounds entity.AABB) EntityID {
	id := w.NewEntity()

	w.Body[id] = Body{Position: bounds.Center(), Size: bounds.Size()}
	w.IsSolid[id] = struct{}{}

	return id
}

// CreatePlayer creates a player entity centered at (x, y).
// Players are passengers: platforms may carry or push them.
func (w *World) CreatePlayer(x, y, width, height float64, rays RayCounts) EntityID {
	id := w.NewEntity()

	w.Body[id] = entity.NewBody(x, y, width, height)
	w.Name[id] = "player"
	w.RayCounts[id] = rays
	w.IsPassenger[id] = struct{}{}
	w.IsPlayer[id] = struct{}{}

	w.PlayerID = id
	return id
}

// CreatePlatform creates a moving platform centered at (x, y).
// Platforms are solid so movers standing on them register contact.
func (w *World) CreatePlatform(name string, x, y, width, height float64, rays RayCounts) EntityID {
	id := w.NewEntity()

	w.Body[id] = entity.NewBody(x, y, width, height)
	w.Name[id] = Name(name)
	w.RayCounts[id] = rays
	w.IsSolid[id] = struct{}{}
	w.IsPlatform[id] = struct{}{}

	return id
}

// Bounds returns the collider box of an entity
func (w *World) Bounds(id EntityID) entity.AABB {
	return w.Body[id].Bounds()
}

// Position returns the collider center of an entity
func (w *World) Position(id EntityID) entity.Vec {
	return w.Body[id].Position
}

// Translate moves an entity by delta. Unknown entities are ignored.
func (w *World) Translate(id EntityID, delta entity.Vec) {
	body, ok := w.Body[id]
	if !ok {
		return
	}
	body.Translate(delta)
	w.Body[id] = body
}

// GetPlayerPosition returns the player's position
func (w *World) GetPlayerPosition() entity.Vec {
	return w.Body[w.PlayerID].Position
}

// CountSolids returns the number of solid entities, platforms included
func (w *World) CountSolids() int {
	return len(w.IsSolid)
}

// Solids returns a filter accepting solid entities
func (w *World) Solids() entity.Filter {
	return tagFilter(w.IsSolid)
}

// Passengers returns a filter accepting passenger entities
func (w *World) Passengers() entity.Filter {
	return tagFilter(w.IsPassenger)
}

type tagFilter map[EntityID]struct{}

func (t tagFilter) IsCollidable(id EntityID) bool {
	_, ok := t[id]
	return ok
}
