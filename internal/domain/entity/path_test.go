package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPath_OffsetsFromOrigin(t *testing.T) {
	p := NewPath(V(10, 5), []Vec{V(0, 0), V(0, 3), V(2, 3)}, true)

	require.Equal(t, 3, p.Len())
	assert.Equal(t, V(10, 5), p.Points[0])
	assert.Equal(t, V(10, 8), p.Points[1])
	assert.Equal(t, V(12, 8), p.Points[2])
	assert.True(t, p.Cyclic)
}

func TestPath_Validate(t *testing.T) {
	tests := []struct {
		name    string
		path    Path
		wantErr error
	}{
		{"two points", Path{Points: []Vec{V(0, 0), V(1, 0)}}, nil},
		{"empty", Path{}, ErrTooFewWaypoints},
		{"single point", Path{Points: []Vec{V(0, 0)}}, ErrTooFewWaypoints},
		{"consecutive duplicate", Path{Points: []Vec{V(0, 0), V(0, 0), V(1, 1)}}, ErrDuplicateWaypoint},
		{"closed loop back to start is fine when not cyclic", Path{Points: []Vec{V(0, 0), V(1, 0), V(0, 0)}}, nil},
		{"cyclic wrap duplicate", Path{Points: []Vec{V(0, 0), V(1, 0), V(0, 0)}, Cyclic: true}, ErrDuplicateWaypoint},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.path.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestPath_Reverse(t *testing.T) {
	p := Path{Points: []Vec{V(0, 0), V(1, 0), V(2, 0)}}
	p.Reverse()

	assert.Equal(t, []Vec{V(2, 0), V(1, 0), V(0, 0)}, p.Points)
}
