package flat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// jaggedRing has small bumps that successively larger tolerances erase.
func jaggedRing(t *testing.T) *Ring {
	t.Helper()
	r := NewRing(XY)
	require.NoError(t, r.SetCoords([][]float64{
		{0, 0}, {2, 0.1}, {4, 0}, {6, 0.5}, {8, 0},
		{8, 4}, {4, 4.2}, {0, 4}, {0, 0},
	}))
	return r
}

func TestSimplifyZeroToleranceIsIdentity(t *testing.T) {
	r := jaggedRing(t)
	out := Simplify(r, 0)
	assert.Equal(t, r.NumVertices(), out.NumVertices())
	assert.Equal(t, r.Coords(), out.Coords())
	assert.Equal(t, XY, out.Layout())
}

func TestSimplifyStripsZM(t *testing.T) {
	r := NewRing(XYZ)
	require.NoError(t, r.SetCoords([][]float64{
		{0, 0, 1}, {1, 0, 2}, {1, 1, 3}, {0, 0, 1},
	}))
	out := Simplify(r, 0)
	assert.Equal(t, XY, out.Layout())
	assert.Equal(t, 2, out.Stride())
	assert.Equal(t, [][]float64{{0, 0}, {1, 0}, {1, 1}, {0, 0}}, out.Coords())
}

func TestSimplifyRetainsEndpoints(t *testing.T) {
	r := jaggedRing(t)
	for _, tol := range []float64{0, 0.01, 1, 100, 1e9} {
		out := Simplify(r, tol)
		require.GreaterOrEqual(t, out.NumVertices(), 2, "tol %g", tol)
		fx, fy := out.Vertex(0)
		lx, ly := out.Vertex(out.NumVertices() - 1)
		assert.Equal(t, [2]float64{0, 0}, [2]float64{fx, fy}, "tol %g", tol)
		assert.Equal(t, [2]float64{0, 0}, [2]float64{lx, ly}, "tol %g", tol)
	}
}

func TestSimplifyMonotoneInTolerance(t *testing.T) {
	r := jaggedRing(t)
	prev := r.NumVertices() + 1
	for _, tol := range []float64{0, 0.001, 0.05, 0.3, 1, 10, 1e6} {
		n := Simplify(r, tol).NumVertices()
		assert.LessOrEqual(t, n, prev, "tol %g", tol)
		prev = n
	}
}

func TestSimplifyDropsCollinearBumps(t *testing.T) {
	r := NewRing(XY)
	require.NoError(t, r.SetCoords([][]float64{
		{0, 0}, {1, 0.01}, {2, 0}, {3, -0.01}, {4, 0},
		{4, 2}, {0, 2}, {0, 0},
	}))
	out := Simplify(r, 0.01) // squared tolerance, bumps are well inside
	assert.Equal(t, [][]float64{
		{0, 0}, {4, 0}, {4, 2}, {0, 2}, {0, 0},
	}, out.Coords())
}

func TestSimplifyInputUntouched(t *testing.T) {
	r := jaggedRing(t)
	before := r.Coords()
	_ = Simplify(r, 1)
	assert.Equal(t, before, r.Coords())
}

func TestSimplifyDegenerateInput(t *testing.T) {
	empty := NewRing(XY)
	assert.Equal(t, 0, Simplify(empty, 5).NumVertices())

	pair := NewRing(XY)
	require.NoError(t, pair.SetCoords([][]float64{{0, 0}, {1, 1}}))
	out := Simplify(pair, 5)
	assert.Equal(t, [][]float64{{0, 0}, {1, 1}}, out.Coords())
}
