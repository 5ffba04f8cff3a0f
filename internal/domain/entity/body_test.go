package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAABB(t *testing.T) {
	b := NewAABB(V(2, 3), V(4, 2))

	assert.Equal(t, V(0, 2), b.Min)
	assert.Equal(t, V(4, 4), b.Max)
	assert.Equal(t, V(4, 2), b.Size())
	assert.Equal(t, V(2, 3), b.Center())
}

func TestAABB_Expand(t *testing.T) {
	tests := []struct {
		name    string
		amount  float64
		wantMin Vec
		wantMax Vec
	}{
		{"grow", 2, V(-1, -1), V(3, 3)},
		{"shrink", -0.5, V(0.25, 0.25), V(1.75, 1.75)},
		{"zero", 0, V(0, 0), V(2, 2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := AABB{Min: V(0, 0), Max: V(2, 2)}.Expand(tt.amount)
			assert.InDelta(t, tt.wantMin.X, b.Min.X, 1e-12)
			assert.InDelta(t, tt.wantMin.Y, b.Min.Y, 1e-12)
			assert.InDelta(t, tt.wantMax.X, b.Max.X, 1e-12)
			assert.InDelta(t, tt.wantMax.Y, b.Max.Y, 1e-12)
		})
	}
}

func TestAABB_ShrinkPastSizeInverts(t *testing.T) {
	b := AABB{Min: V(0, 0), Max: V(0.02, 1)}

	assert.True(t, b.Expand(-0.01).IsValid())
	assert.False(t, b.Expand(-0.03).IsValid(), "shrinking beyond the width inverts min/max")
}

func TestAABB_ContainsAndOverlaps(t *testing.T) {
	a := AABB{Min: V(0, 0), Max: V(2, 2)}

	assert.True(t, a.Contains(V(1, 1)))
	assert.True(t, a.Contains(V(2, 2)), "boundary counts as inside")
	assert.False(t, a.Contains(V(2.1, 1)))

	assert.True(t, a.Overlaps(AABB{Min: V(1, 1), Max: V(3, 3)}))
	assert.False(t, a.Overlaps(AABB{Min: V(2, 0), Max: V(3, 2)}), "touching edges do not overlap")
}

func TestBody_BoundsAndTranslate(t *testing.T) {
	b := NewBody(5, 5, 1, 2)

	bounds := b.Bounds()
	assert.Equal(t, V(4.5, 4), bounds.Min)
	assert.Equal(t, V(5.5, 6), bounds.Max)

	b.Translate(V(1, -1))
	assert.Equal(t, V(6, 4), b.Position)
	assert.Equal(t, V(1, 2), b.Size, "translation does not resize")
}

func TestCollisionState_Reset(t *testing.T) {
	c := CollisionState{Above: true, Below: true, Left: true, Right: true}
	assert.True(t, c.Any())

	c.Reset()

	assert.Equal(t, CollisionState{}, c)
	assert.False(t, c.Any())
}

func TestSign(t *testing.T) {
	assert.Equal(t, 1.0, Sign(3))
	assert.Equal(t, -1.0, Sign(-0.001))
	assert.Equal(t, 1.0, Sign(0), "zero is treated as positive")
}

func TestLerp(t *testing.T) {
	a, b := V(0, 0), V(10, -4)

	assert.Equal(t, a, Lerp(a, b, 0))
	assert.Equal(t, b, Lerp(a, b, 1))
	assert.Equal(t, V(5, -2), Lerp(a, b, 0.5))
	assert.Equal(t, b, Lerp(a, b, 1.5), "t is clamped")
}

func TestExcept(t *testing.T) {
	all := FilterFunc(func(EntityID) bool { return true })
	f := Except(all, 2, 3)

	assert.True(t, f.IsCollidable(1))
	assert.False(t, f.IsCollidable(2))
	assert.False(t, f.IsCollidable(3))
}

func TestBody_IsDegenerate(t *testing.T) {
	tests := []struct {
		name string
		w, h float64
		want bool
	}{
		{"unit box", 1, 1, false},
		{"thin platform", 3, 0.1, false},
		{"exactly twice the skin", MinColliderSize, 1, true},
		{"zero height", 1, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewBody(0, 0, tt.w, tt.h).IsDegenerate())
		})
	}
}
