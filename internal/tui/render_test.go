package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ringmap/internal/flat"
	"ringmap/internal/geom"
)

func viewModel() Model {
	return Model{
		zoom:      1,
		tolerance: 1,
		extent:    flat.Extent{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10},
	}
}

func TestScreenXYCorners(t *testing.T) {
	m := viewModel()
	sx, sy, ok := m.screenXY(0, 0, 11, 11)
	require.True(t, ok)
	assert.Equal(t, 0, sx)
	assert.Equal(t, 10, sy)
	sx, sy, ok = m.screenXY(10, 10, 11, 11)
	require.True(t, ok)
	assert.Equal(t, 10, sx)
	assert.Equal(t, 0, sy)
}

func TestCellToLonLatInverse(t *testing.T) {
	m := viewModel()
	lon, lat, ok := m.cellToLonLat(0, 10, 11, 11)
	require.True(t, ok)
	assert.InDelta(t, 0, lon, 1e-9)
	assert.InDelta(t, 0, lat, 1e-9)
	lon, lat, ok = m.cellToLonLat(10, 0, 11, 11)
	require.True(t, ok)
	assert.InDelta(t, 10, lon, 1e-9)
	assert.InDelta(t, 10, lat, 1e-9)
}

func TestCellToLonLatEmptyExtent(t *testing.T) {
	m := viewModel()
	m.extent = flat.EmptyExtent()
	_, _, ok := m.cellToLonLat(5, 5, 11, 11)
	assert.False(t, ok)
}

func TestSquaredGeoToleranceScalesWithZoom(t *testing.T) {
	m := viewModel()
	far := m.squaredGeoTolerance(20, 10)
	require.Greater(t, far, 0.0)
	m.zoom = 2
	near := m.squaredGeoTolerance(20, 10)
	// doubling the zoom quarters the squared tolerance
	assert.InDelta(t, 4.0, far/near, 1e-9)

	m.extent = flat.EmptyExtent()
	assert.Equal(t, 0.0, m.squaredGeoTolerance(20, 10))
}

func TestRenderAsciiMapDrawsSquare(t *testing.T) {
	r, err := flat.NewRingFlat(flat.XY, []float64{2, 2, 2, 8, 8, 8, 8, 2, 2, 2})
	require.NoError(t, err)
	m := viewModel()
	m.showPolys = true
	m.polygons = []geom.Polygon{{Rings: []*flat.Ring{r}}}
	out := m.renderAsciiMap(20, 10)
	assert.Contains(t, out, "⣿")
}
