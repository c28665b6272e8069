package flat

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unitSquare(t *testing.T) *Ring {
	t.Helper()
	r := NewRing(XY)
	require.NoError(t, r.SetCoords([][]float64{
		{0, 0}, {0, 1}, {1, 1}, {1, 0}, {0, 0},
	}))
	return r
}

func TestSetCoordsRoundTrip(t *testing.T) {
	points := [][]float64{
		{0, 0, 5}, {0, 1, 6}, {1, 1, 7}, {1, 0, 8}, {0, 0, 5},
	}
	r := NewRing(XYZ)
	require.NoError(t, r.SetCoords(points))
	assert.Equal(t, points, r.Coords())
	assert.Equal(t, 5, r.NumVertices())
	assert.Equal(t, 3, r.Stride())
}

func TestSetCoordsStrideMismatch(t *testing.T) {
	r := NewRing(XY)
	require.NoError(t, r.SetCoords([][]float64{{0, 0}, {1, 1}, {0, 0}}))
	before := r.Coords()
	rev := r.Revision()

	err := r.SetCoords([][]float64{{0, 0}, {1, 1, 2}, {0, 0}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidCoordinate))
	// a failed replacement leaves the prior buffer intact
	assert.Equal(t, before, r.Coords())
	assert.Equal(t, rev, r.Revision())
}

func TestEdgeWrapsAround(t *testing.T) {
	r := unitSquare(t)
	n := r.NumVertices()
	x1, y1, x2, y2 := r.Edge(n - 1)
	// closing edge runs from the repeated last vertex back to the first
	assert.Equal(t, []float64{0, 0, 0, 0}, []float64{x1, y1, x2, y2})

	x1, y1, x2, y2 = r.Edge(1)
	assert.Equal(t, []float64{0, 1, 1, 1}, []float64{x1, y1, x2, y2})
}

func TestRevisionBumpsOnReplace(t *testing.T) {
	r := unitSquare(t)
	rev := r.Revision()
	require.NoError(t, r.SetCoords([][]float64{{2, 2}, {3, 3}, {2, 2}}))
	assert.Greater(t, r.Revision(), rev)
}

func TestMaxSquaredDeltaMemo(t *testing.T) {
	r := unitSquare(t)
	assert.InDelta(t, 1.0, r.maxSquaredDelta(), 1e-12)
	// cached value survives repeated reads at the same revision
	assert.InDelta(t, 1.0, r.maxSquaredDelta(), 1e-12)

	require.NoError(t, r.SetCoords([][]float64{{0, 0}, {3, 4}, {0, 0}}))
	assert.InDelta(t, 25.0, r.maxSquaredDelta(), 1e-12)
}

func TestNewRingFlat(t *testing.T) {
	r, err := NewRingFlat(XY, []float64{0, 0, 2, 0, 2, 2, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, 4, r.NumVertices())
	assert.Equal(t, Extent{MinX: 0, MinY: 0, MaxX: 2, MaxY: 2}, r.Extent())

	_, err = NewRingFlat(XY, []float64{0, 0, 1})
	assert.True(t, errors.Is(err, ErrInvalidCoordinate))
}

func TestCloseCoords(t *testing.T) {
	open := [][]float64{{0, 0}, {0, 1}, {1, 1}}
	closed := CloseCoords(open)
	require.Len(t, closed, 4)
	assert.Equal(t, closed[0], closed[3])

	already := [][]float64{{0, 0}, {0, 1}, {1, 1}, {0, 0}}
	assert.Len(t, CloseCoords(already), 4)

	single := [][]float64{{5, 5}}
	assert.Len(t, CloseCoords(single), 1)
}
