package geom

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadCSV(t *testing.T) {
	path := writeTemp(t, "pts.csv", "name,lat,lon\na,10,20\nb,11,21\nbad,x,y\n")
	d, err := LoadCSV(path)
	require.NoError(t, err)
	require.Len(t, d.Points, 2)
	assert.Equal(t, [2]float64{20, 10}, d.Points[0])
	assert.Equal(t, 21.0, d.Extent.MaxX)
}

func TestLoadCSVAlternateHeaders(t *testing.T) {
	path := writeTemp(t, "pts.csv", "x,y\n1,2\n")
	d, err := LoadCSV(path)
	require.NoError(t, err)
	assert.Equal(t, [2]float64{1, 2}, d.Points[0])
}

func TestLoadCSVMissingColumns(t *testing.T) {
	path := writeTemp(t, "pts.csv", "a,b\n1,2\n")
	_, err := LoadCSV(path)
	assert.Error(t, err)
}
