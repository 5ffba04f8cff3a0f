package entity

import "gonum.org/v1/gonum/spatial/r2"

// AABB is an axis-aligned box given by its min and max corners in world units.
type AABB struct {
	Min, Max Vec
}

// NewAABB builds a box from its center and full size
func NewAABB(center, size Vec) AABB {
	half := r2.Scale(0.5, size)
	return AABB{Min: r2.Sub(center, half), Max: r2.Add(center, half)}
}

// Size returns the width and height of the box
func (b AABB) Size() Vec {
	return r2.Sub(b.Max, b.Min)
}

// Center returns the midpoint of the box
func (b AABB) Center() Vec {
	return r2.Scale(0.5, r2.Add(b.Min, b.Max))
}

// Expand grows the box by amount on each axis, half on either side.
// A negative amount shrinks it.
func (b AABB) Expand(amount float64) AABB {
	h := amount / 2
	return AABB{
		Min: Vec{X: b.Min.X - h, Y: b.Min.Y - h},
		Max: Vec{X: b.Max.X + h, Y: b.Max.Y + h},
	}
}

// Translate returns the box moved by delta
func (b AABB) Translate(delta Vec) AABB {
	return AABB{Min: r2.Add(b.Min, delta), Max: r2.Add(b.Max, delta)}
}

// IsValid reports whether min <= max on both axes
func (b AABB) IsValid() bool {
	return b.Min.X <= b.Max.X && b.Min.Y <= b.Max.Y
}

// Contains reports whether p lies inside the box or on its boundary
func (b AABB) Contains(p Vec) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

// Overlaps reports whether two boxes share interior area
func (b AABB) Overlaps(o AABB) bool {
	return b.Min.X < o.Max.X && b.Max.X > o.Min.X &&
		b.Min.Y < o.Max.Y && b.Max.Y > o.Min.Y
}
