package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleKML = `<?xml version="1.0" encoding="UTF-8"?>
<kml xmlns="http://www.opengis.net/kml/2.2">
  <Document>
    <Placemark>
      <name>a</name>
      <Point><coordinates>10.5,47.25,340</coordinates></Point>
    </Placemark>
    <Placemark>
      <name>no point</name>
    </Placemark>
    <Placemark>
      <Point><coordinates>11,48</coordinates></Point>
    </Placemark>
  </Document>
</kml>`

func TestLoadKML(t *testing.T) {
	path := writeTemp(t, "pts.kml", sampleKML)
	d, err := LoadKML(path)
	require.NoError(t, err)
	require.Len(t, d.Points, 2)
	assert.Equal(t, [2]float64{10.5, 47.25}, d.Points[0])
	assert.Equal(t, [2]float64{11, 48}, d.Points[1])
}

func TestLoadKMLNoPoints(t *testing.T) {
	path := writeTemp(t, "empty.kml", `<kml><Document></Document></kml>`)
	_, err := LoadKML(path)
	assert.Error(t, err)
}
