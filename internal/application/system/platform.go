package system

import (
	"fmt"
	"log/slog"
	"math"
	"slices"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/younwookim/raymover/internal/domain/entity"
	"github.com/younwookim/raymover/internal/ecs"
)

// PassengerLookup resolves a passenger entity to its controller.
// It must report false for entities that no longer exist.
type PassengerLookup interface {
	Controller(id entity.EntityID) (*Controller, bool)
}

// PassengerMove is the displacement a platform imposes on one passenger
// during a single tick
type PassengerMove struct {
	ID                 entity.EntityID
	Velocity           entity.Vec
	StandingOnPlatform bool
	MoveBeforePlatform bool
}

// PlatformSettings configures waypoint traversal
type PlatformSettings struct {
	Path       entity.Path // global waypoints
	Speed      float64     // world units per second
	WaitTime   float64     // dwell at each waypoint, seconds
	EaseAmount float64     // 0 = linear, 1-2 = increasingly smooth
}

// Platform moves an entity along a waypoint path and carries or pushes the
// passengers its rays touch.
type Platform struct {
	id        entity.EntityID
	transform Transform
	resolver  *Resolver
	counts    ecs.RayCounts
	filter    entity.Filter // passengers
	lookup    PassengerLookup

	path       entity.Path
	speed      float64
	waitTime   float64
	easeAmount float64

	fromIndex    int
	percent      float64
	clock        float64
	nextMoveTime float64

	moves      []PassengerMove
	passengers map[entity.EntityID]*Controller
}

// NewPlatform creates a platform for id. passengerFilter selects which
// entities can ride or be pushed; lookup maps them to their controllers.
func NewPlatform(id entity.EntityID, transform Transform, resolver *Resolver, counts ecs.RayCounts,
	passengerFilter entity.Filter, lookup PassengerLookup, settings PlatformSettings) (*Platform, error) {
	if err := checkBounds(transform.Bounds(id)); err != nil {
		return nil, fmt.Errorf("platform %d: %w", id, err)
	}
	if err := settings.Path.Validate(); err != nil {
		return nil, fmt.Errorf("platform %d: %w", id, err)
	}

	// Copied so in-place reversal stays local to this platform
	path := entity.Path{
		Points: append([]entity.Vec(nil), settings.Path.Points...),
		Cyclic: settings.Path.Cyclic,
	}

	return &Platform{
		id:         id,
		transform:  transform,
		resolver:   resolver,
		counts:     counts.Clamped(),
		filter:     passengerFilter,
		lookup:     lookup,
		path:       path,
		speed:      settings.Speed,
		waitTime:   settings.WaitTime,
		easeAmount: settings.EaseAmount,
		passengers: make(map[entity.EntityID]*Controller),
	}, nil
}

// Tick advances the platform by dt seconds. Passengers that must lead the
// platform move first, then the platform, then passengers riding on top.
// It returns the platform's displacement.
func (p *Platform) Tick(dt float64) entity.Vec {
	p.prunePassengers()

	velocity := p.CalculateMovement(dt)
	p.moves = p.CalculatePassengerMovement(velocity)

	p.MovePassengers(true)
	p.transform.Translate(p.id, velocity)
	p.MovePassengers(false)

	return velocity
}

// Ease maps linear progress x in [0,1] to a slow-in/slow-out weight
func Ease(x, easeAmount float64) float64 {
	a := easeAmount + 1
	xa := math.Pow(x, a)
	return xa / (xa + math.Pow(1-x, a))
}

// CalculateMovement advances the waypoint cursor and returns the displacement
// from the current position to the new point on the path. While waiting at
// a waypoint it returns zero.
func (p *Platform) CalculateMovement(dt float64) entity.Vec {
	p.clock += dt
	if p.clock < p.nextMoveTime {
		return entity.Vec{}
	}

	n := p.path.Len()
	p.fromIndex %= n
	toIndex := (p.fromIndex + 1) % n
	from, to := p.path.Points[p.fromIndex], p.path.Points[toIndex]

	p.percent += dt * p.speed / entity.Distance(from, to)
	p.percent = entity.Clamp01(p.percent)
	eased := Ease(p.percent, p.easeAmount)

	newPos := entity.Lerp(from, to, eased)

	if p.percent >= 1 {
		p.percent = 0
		p.fromIndex++

		if !p.path.Cyclic && p.fromIndex >= n-1 {
			p.fromIndex = 0
			p.path.Reverse()
		}
		p.nextMoveTime = p.clock + p.waitTime
	}

	return r2.Sub(newPos, p.transform.Position(p.id))
}

// CalculatePassengerMovement casts from the platform's current bounds to find
// passengers affected by velocity. Each passenger appears at most once; the
// vertical pass wins over the horizontal pass, which wins over riders on top.
func (p *Platform) CalculatePassengerMovement(velocity entity.Vec) []PassengerMove {
	sw := NewSweep(p.transform.Bounds(p.id), p.counts, p.filter)
	moved := make(map[entity.EntityID]struct{})
	var moves []PassengerMove

	dirX := entity.Sign(velocity.X)
	dirY := entity.Sign(velocity.Y)

	add := func(m PassengerMove) {
		if _, seen := moved[m.ID]; seen {
			return
		}
		moved[m.ID] = struct{}{}
		moves = append(moves, m)
	}

	// Vertically moving platform
	if velocity.Y != 0 {
		rayLength := abs(velocity.Y) + entity.SkinWidth

		for i := 0; i < sw.Counts.Vertical; i++ {
			origin := sw.Origins.TopLeft
			if dirY == -1 {
				origin = sw.Origins.BottomLeft
			}
			origin.X += sw.Spacing.Vertical * float64(i)

			hit, ok := p.resolver.cast(origin, entity.V(0, dirY), rayLength, sw.Filter)
			if !ok {
				continue
			}
			pushX := 0.0
			if dirY == 1 {
				pushX = velocity.X
			}
			pushY := velocity.Y - (hit.Distance-entity.SkinWidth)*dirY
			add(PassengerMove{
				ID:                 hit.Target,
				Velocity:           entity.V(pushX, pushY),
				StandingOnPlatform: dirY == 1,
				MoveBeforePlatform: true,
			})
		}
	}

	// Horizontally moving platform
	if velocity.X != 0 {
		rayLength := abs(velocity.X) + entity.SkinWidth

		for i := 0; i < sw.Counts.Horizontal; i++ {
			origin := sw.Origins.BottomRight
			if dirX == -1 {
				origin = sw.Origins.BottomLeft
			}
			origin.Y += sw.Spacing.Horizontal * float64(i)

			hit, ok := p.resolver.cast(origin, entity.V(dirX, 0), rayLength, sw.Filter)
			if !ok {
				continue
			}
			pushX := velocity.X - (hit.Distance-entity.SkinWidth)*dirX
			add(PassengerMove{
				ID:                 hit.Target,
				Velocity:           entity.V(pushX, -entity.SkinWidth),
				StandingOnPlatform: false,
				MoveBeforePlatform: true,
			})
		}
	}

	// Passenger on top of a platform moving down or purely sideways
	if dirY == -1 || velocity.Y == 0 && velocity.X != 0 {
		rayLength := entity.SkinWidth * 2

		for i := 0; i < sw.Counts.Vertical; i++ {
			origin := sw.Origins.TopLeft
			origin.X += sw.Spacing.Vertical * float64(i)

			hit, ok := p.resolver.cast(origin, entity.Up, rayLength, sw.Filter)
			if !ok {
				continue
			}
			add(PassengerMove{
				ID:                 hit.Target,
				Velocity:           velocity,
				StandingOnPlatform: true,
				MoveBeforePlatform: false,
			})
		}
	}

	return moves
}

// MovePassengers applies this tick's moves for one phase
func (p *Platform) MovePassengers(beforeMovePlatform bool) {
	for _, m := range p.moves {
		if m.MoveBeforePlatform != beforeMovePlatform {
			continue
		}
		c, ok := p.passenger(m.ID)
		if !ok {
			continue
		}
		c.Move(m.Velocity, m.StandingOnPlatform)
	}
}

func (p *Platform) passenger(id entity.EntityID) (*Controller, bool) {
	if c, ok := p.passengers[id]; ok {
		return c, true
	}
	c, ok := p.lookup.Controller(id)
	if !ok {
		return nil, false
	}
	p.passengers[id] = c
	return c, true
}

// prunePassengers drops cached controllers whose entities are gone
func (p *Platform) prunePassengers() {
	for id := range p.passengers {
		if _, ok := p.lookup.Controller(id); !ok {
			delete(p.passengers, id)
			slog.Debug("platform passenger pruned", "platform", p.id, "passenger", id)
		}
	}
}

// ID returns the platform entity
func (p *Platform) ID() entity.EntityID {
	return p.id
}

// FromIndex returns the index of the waypoint the platform is leaving
func (p *Platform) FromIndex() int {
	return p.fromIndex % p.path.Len()
}

// Percent returns linear progress between the current pair of waypoints
func (p *Platform) Percent() float64 {
	return p.percent
}

// Waiting reports whether the platform is dwelling at a waypoint
func (p *Platform) Waiting() bool {
	return p.clock < p.nextMoveTime
}

// Waypoints returns a copy of the path in its current traversal order
func (p *Platform) Waypoints() []entity.Vec {
	return slices.Clone(p.path.Points)
}

// Cyclic reports whether the path loops back to its first waypoint
func (p *Platform) Cyclic() bool {
	return p.path.Cyclic
}

// PassengerMoves returns the moves computed on the most recent tick
func (p *Platform) PassengerMoves() []PassengerMove {
	return p.moves
}
