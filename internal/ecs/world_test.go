package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/raymover/internal/domain/entity"
)

func TestNewWorld(t *testing.T) {
	w := NewWorld()

	assert.NotNil(t, w)
	assert.Equal(t, EntityID(1), w.nextID)
	assert.NotNil(t, w.Body)
	assert.NotNil(t, w.IsSolid)
	assert.NotNil(t, w.IsPassenger)
}

func TestNewEntity(t *testing.T) {
	w := NewWorld()

	id1 := w.NewEntity()
	id2 := w.NewEntity()
	id3 := w.NewEntity()

	assert.Equal(t, EntityID(1), id1)
	assert.Equal(t, EntityID(2), id2)
	assert.Equal(t, EntityID(3), id3)
	assert.Equal(t, EntityID(4), w.nextID)
}

func TestEntityIDNeverRecycled(t *testing.T) {
	w := NewWorld()

	id1 := w.CreateSolid(entity.AABB{Max: entity.V(1, 1)})
	w.DestroyEntity(id1)

	id2 := w.NewEntity()
	assert.NotEqual(t, id1, id2, "Entity IDs should never be recycled")
	assert.Equal(t, EntityID(2), id2)
}

func TestDestroyEntity(t *testing.T) {
	w := NewWorld()
	id := w.CreatePlayer(0, 0, 1, 1, DefaultRayCounts)

	require.True(t, w.Exists(id))
	require.Equal(t, id, w.PlayerID)

	w.DestroyEntity(id)

	assert.False(t, w.Exists(id))
	_, hasRays := w.RayCounts[id]
	assert.False(t, hasRays)
	_, isPassenger := w.IsPassenger[id]
	assert.False(t, isPassenger)
	assert.Equal(t, EntityID(0), w.PlayerID, "player singleton cleared")
}

func TestCreatePlatform_IsSolidButNotPassenger(t *testing.T) {
	w := NewWorld()
	id := w.CreatePlatform("lift", 2, 3, 4, 0.5, DefaultRayCounts)

	assert.True(t, w.Solids().IsCollidable(id))
	assert.False(t, w.Passengers().IsCollidable(id))
	assert.Equal(t, Name("lift"), w.Name[id])
	assert.Equal(t, entity.V(2, 3), w.Position(id))
	assert.Equal(t, 1, w.CountSolids())
}

func TestCreatePlayer_IsPassengerButNotSolid(t *testing.T) {
	w := NewWorld()
	id := w.CreatePlayer(0, 0, 1, 2, DefaultRayCounts)

	assert.False(t, w.Solids().IsCollidable(id))
	assert.True(t, w.Passengers().IsCollidable(id))
	assert.Equal(t, entity.V(-0.5, -1), w.Bounds(id).Min)
}

func TestTranslate(t *testing.T) {
	w := NewWorld()
	id := w.CreatePlayer(1, 1, 1, 1, DefaultRayCounts)

	w.Translate(id, entity.V(0.5, -2))
	assert.Equal(t, entity.V(1.5, -1), w.GetPlayerPosition())

	// Unknown entities are ignored rather than created
	w.Translate(999, entity.V(1, 1))
	assert.False(t, w.Exists(999))
}

func TestRayCounts_Clamped(t *testing.T) {
	tests := []struct {
		name string
		in   RayCounts
		want RayCounts
	}{
		{"defaults unchanged", RayCounts{4, 4}, RayCounts{4, 4}},
		{"zero raised", RayCounts{0, 0}, RayCounts{2, 2}},
		{"one raised", RayCounts{1, 7}, RayCounts{2, 7}},
		{"negative raised", RayCounts{5, -3}, RayCounts{5, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Clamped())
		})
	}
}
