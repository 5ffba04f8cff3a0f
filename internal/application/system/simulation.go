package system

import (
	"fmt"
	"slices"

	"github.com/younwookim/raymover/internal/domain/entity"
	"github.com/younwookim/raymover/internal/ecs"
)

// Simulation owns the movers of one scene and advances them a tick at a time.
// It is single-threaded; callers drive it from their own loop.
type Simulation struct {
	world       *ecs.World
	resolver    *Resolver
	controllers map[entity.EntityID]*Controller
	platforms   []*Platform
	player      *PlayerDriver
	tick        uint64
}

// NewSimulation creates an empty simulation over world
func NewSimulation(world *ecs.World, debug DebugSink) *Simulation {
	return &Simulation{
		world:       world,
		resolver:    NewResolver(world, debug),
		controllers: make(map[entity.EntityID]*Controller),
	}
}

// AddController attaches a kinematic controller to an existing entity.
// The entity collides with every solid except itself.
func (s *Simulation) AddController(id entity.EntityID) (*Controller, error) {
	if !s.world.Exists(id) {
		return nil, fmt.Errorf("controller %d: entity does not exist", id)
	}
	c, err := NewController(id, s.world, s.resolver, s.rayCounts(id), entity.Except(s.world.Solids(), id))
	if err != nil {
		return nil, err
	}
	s.controllers[id] = c
	return c, nil
}

// AddPlatform attaches waypoint movement to an existing entity.
// Platforms tick in the order they were added.
func (s *Simulation) AddPlatform(id entity.EntityID, settings PlatformSettings) (*Platform, error) {
	if !s.world.Exists(id) {
		return nil, fmt.Errorf("platform %d: entity does not exist", id)
	}
	p, err := NewPlatform(id, s.world, s.resolver, s.rayCounts(id), s.world.Passengers(), s, settings)
	if err != nil {
		return nil, err
	}
	s.platforms = append(s.platforms, p)
	return p, nil
}

// SetPlayer makes id the input-driven entity, creating its controller if needed
func (s *Simulation) SetPlayer(id entity.EntityID, settings PlayerSettings) (*PlayerDriver, error) {
	c, ok := s.Controller(id)
	if !ok {
		var err error
		if c, err = s.AddController(id); err != nil {
			return nil, err
		}
	}
	s.player = NewPlayerDriver(c, settings)
	return s.player, nil
}

// Controller implements PassengerLookup. Controllers of destroyed entities
// are dropped on lookup.
func (s *Simulation) Controller(id entity.EntityID) (*Controller, bool) {
	c, ok := s.controllers[id]
	if !ok {
		return nil, false
	}
	if !s.world.Exists(id) {
		delete(s.controllers, id)
		return nil, false
	}
	return c, true
}

// Move moves a controlled entity directly, outside of the tick loop
func (s *Simulation) Move(id entity.EntityID, velocity entity.Vec, standingOnPlatform bool) (entity.Vec, bool) {
	c, ok := s.Controller(id)
	if !ok {
		return entity.Vec{}, false
	}
	return c.Move(velocity, standingOnPlatform), true
}

// CollisionState returns the contact flags of a controlled entity
func (s *Simulation) CollisionState(id entity.EntityID) (entity.CollisionState, bool) {
	c, ok := s.Controller(id)
	if !ok {
		return entity.CollisionState{}, false
	}
	return c.Collisions(), true
}

// Destroy removes an entity and everything attached to it
func (s *Simulation) Destroy(id entity.EntityID) {
	s.world.DestroyEntity(id)
	delete(s.controllers, id)
	s.platforms = slices.DeleteFunc(s.platforms, func(p *Platform) bool { return p.ID() == id })
	if s.player != nil && s.player.Controller().ID() == id {
		s.player = nil
	}
}

// Tick advances every platform, then the player, by dt seconds
func (s *Simulation) Tick(dt float64, input InputState) {
	s.tick++

	for _, p := range s.platforms {
		p.Tick(dt)
	}
	if s.player != nil {
		s.player.Update(input, dt)
	}
}

// World returns the underlying entity store
func (s *Simulation) World() *ecs.World {
	return s.world
}

// Player returns the input-driven mover, or nil
func (s *Simulation) Player() *PlayerDriver {
	return s.player
}

// Platforms returns the platforms in tick order
func (s *Simulation) Platforms() []*Platform {
	return s.platforms
}

// TickCount returns the number of completed ticks
func (s *Simulation) TickCount() uint64 {
	return s.tick
}

func (s *Simulation) rayCounts(id entity.EntityID) ecs.RayCounts {
	if counts, ok := s.world.RayCounts[id]; ok {
		return counts
	}
	return ecs.DefaultRayCounts
}
