package geom

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ringmap/internal/flat"
)

func TestParseGeoJSONFeatureCollection(t *testing.T) {
	data := []byte(`{
		"type": "FeatureCollection",
		"features": [
			{"type": "Feature", "properties": {"name": "sq"}, "geometry": {
				"type": "Polygon",
				"coordinates": [[[0,0],[0,1],[1,1],[1,0],[0,0]]]
			}},
			{"type": "Feature", "properties": {}, "geometry": {
				"type": "Point", "coordinates": [5, 6]
			}}
		]
	}`)
	d, err := ParseGeoJSON(data)
	require.NoError(t, err)
	require.Len(t, d.Polygons, 1)
	require.Len(t, d.Points, 1)
	r := d.Polygons[0].Rings[0]
	assert.Equal(t, 5, r.NumVertices())
	assert.Equal(t, flat.XY, r.Layout())
	assert.Equal(t, flat.Extent{MinX: 0, MinY: 0, MaxX: 5, MaxY: 6}, d.Extent)
}

func TestParseGeoJSONBareGeometry(t *testing.T) {
	d, err := ParseGeoJSON([]byte(`{"type":"LineString","coordinates":[[0,0],[2,3]]}`))
	require.NoError(t, err)
	require.Len(t, d.Lines, 1)
	assert.Equal(t, [][2]float64{{0, 0}, {2, 3}}, d.Lines[0])
}

func TestParseGeoJSONMultiPolygon(t *testing.T) {
	d, err := ParseGeoJSON([]byte(`{
		"type": "MultiPolygon",
		"coordinates": [
			[[[0,0],[0,1],[1,1],[0,0]]],
			[[[10,10],[10,12],[12,12],[10,10]], [[10.5,10.5],[10.5,11],[11,11],[10.5,10.5]]]
		]
	}`))
	require.NoError(t, err)
	require.Len(t, d.Polygons, 2)
	assert.Len(t, d.Polygons[0].Rings, 1)
	assert.Len(t, d.Polygons[1].Rings, 2)
}

func TestParseGeoJSONOpenRingGetsClosed(t *testing.T) {
	d, err := ParseGeoJSON([]byte(`{
		"type": "Polygon",
		"coordinates": [[[0,0],[0,1],[1,1],[1,0]]]
	}`))
	require.NoError(t, err)
	r := d.Polygons[0].Rings[0]
	require.Equal(t, 5, r.NumVertices())
	fx, fy := r.Vertex(0)
	lx, ly := r.Vertex(r.NumVertices() - 1)
	assert.Equal(t, [2]float64{fx, fy}, [2]float64{lx, ly})
}

func TestParseGeoJSONElevationBecomesXYZ(t *testing.T) {
	d, err := ParseGeoJSON([]byte(`{
		"type": "Polygon",
		"coordinates": [[[0,0,100],[0,1,110],[1,1,120],[0,0,100]]]
	}`))
	require.NoError(t, err)
	r := d.Polygons[0].Rings[0]
	assert.Equal(t, flat.XYZ, r.Layout())
	assert.Equal(t, 3, r.Stride())
}

func TestParseGeoJSONGeometryCollection(t *testing.T) {
	d, err := ParseGeoJSON([]byte(`{
		"type": "GeometryCollection",
		"geometries": [
			{"type": "Point", "coordinates": [1, 2]},
			{"type": "Polygon", "coordinates": [[[0,0],[0,1],[1,1],[0,0]]]}
		]
	}`))
	require.NoError(t, err)
	assert.Len(t, d.Points, 1)
	assert.Len(t, d.Polygons, 1)
}

func TestParseGeoJSONErrors(t *testing.T) {
	_, err := ParseGeoJSON([]byte(`not json`))
	assert.Error(t, err)

	_, err = ParseGeoJSON([]byte(`{"type":"FeatureCollection","features":[]}`))
	assert.Error(t, err)
}

func TestLoadGeo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sq.geojson")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"type": "Polygon",
		"coordinates": [[[0,0],[0,2],[2,2],[2,0],[0,0]]]
	}`), 0o644))

	d, err := LoadGeo(path)
	require.NoError(t, err)
	require.Len(t, d.Polygons, 1)
	assert.InDelta(t, 4.0, -d.Polygons[0].Rings[0].Area(), 1e-12)

	_, err = LoadGeo(filepath.Join(t.TempDir(), "missing.geojson"))
	assert.Error(t, err)
}
