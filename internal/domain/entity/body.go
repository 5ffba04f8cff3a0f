package entity

import "gonum.org/v1/gonum/spatial/r2"

// SkinWidth is the inward margin kept between a collider and the surfaces it
// rests against. Ray origins sit this far inside the collider's edges.
const SkinWidth = 0.015

// MinColliderSize is the smallest extent a collider may have on either axis;
// anything thinner would invert when shrunk by the skin on both sides.
const MinColliderSize = 2 * SkinWidth

// Body is the physical extent of an entity.
// Position is the center of the collider; Size is its full width and height.
type Body struct {
	Position Vec
	Size     Vec
}

// NewBody creates a body centered at (x, y) with the given size
func NewBody(x, y, w, h float64) Body {
	return Body{Position: Vec{X: x, Y: y}, Size: Vec{X: w, Y: h}}
}

// Bounds returns the collider box in world coordinates
func (b Body) Bounds() AABB {
	return NewAABB(b.Position, b.Size)
}

// IsDegenerate reports whether the collider is too thin to cast rays from
func (b Body) IsDegenerate() bool {
	return b.Size.X <= MinColliderSize || b.Size.Y <= MinColliderSize
}

// Translate moves the body by delta
func (b *Body) Translate(delta Vec) {
	b.Position = r2.Add(b.Position, delta)
}

// CollisionState records which sides of a mover touched geometry during its
// most recent move.
type CollisionState struct {
	Above, Below bool
	Left, Right  bool
}

// Reset clears all contact flags
func (c *CollisionState) Reset() {
	c.Above, c.Below = false, false
	c.Left, c.Right = false, false
}

// Any reports whether any side is in contact
func (c CollisionState) Any() bool {
	return c.Above || c.Below || c.Left || c.Right
}
