package entity

// Hit is the closest intersection found by a ray cast
type Hit struct {
	Distance float64
	Target   EntityID
}

// Filter decides which entities a ray may collide with
type Filter interface {
	IsCollidable(id EntityID) bool
}

// FilterFunc adapts a plain function to Filter
type FilterFunc func(id EntityID) bool

// IsCollidable implements Filter
func (f FilterFunc) IsCollidable(id EntityID) bool {
	return f(id)
}

// Except returns a filter that accepts whatever f accepts, minus the listed ids
func Except(f Filter, ids ...EntityID) Filter {
	return FilterFunc(func(id EntityID) bool {
		for _, skip := range ids {
			if id == skip {
				return false
			}
		}
		return f.IsCollidable(id)
	})
}
