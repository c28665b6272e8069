package flat

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLayout(t *testing.T) {
	cases := []struct {
		tag    string
		sample []float64
		want   Layout
	}{
		{"XY", []float64{1, 2}, XY},
		{"xy", []float64{1, 2}, XY},
		{"", []float64{1, 2}, XY},
		{"XYZ", []float64{1, 2, 3}, XYZ},
		{"Z", []float64{1, 2, 3}, XYZ},
		{"XYM", []float64{1, 2, 3}, XYM},
		{"M", []float64{1, 2, 3}, XYM},
		{"XYZM", []float64{1, 2, 3, 4}, XYZM},
		{"zm", []float64{1, 2, 3, 4}, XYZM},
		{"XY", nil, XY},
	}
	for _, c := range cases {
		got, err := ParseLayout(c.tag, c.sample)
		require.NoError(t, err, "tag %q", c.tag)
		assert.Equal(t, c.want, got, "tag %q", c.tag)
	}
}

func TestParseLayoutInvalid(t *testing.T) {
	_, err := ParseLayout("XYQ", []float64{1, 2})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidLayout))

	// tag is known but disagrees with the sample tuple
	_, err = ParseLayout("XYZ", []float64{1, 2})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidLayout))

	_, err = ParseLayout("XY", []float64{1, 2, 3})
	assert.True(t, errors.Is(err, ErrInvalidLayout))
}

func TestLayoutComponents(t *testing.T) {
	assert.Equal(t, 2, XY.Stride())
	assert.Equal(t, 3, XYZ.Stride())
	assert.Equal(t, 3, XYM.Stride())
	assert.Equal(t, 4, XYZM.Stride())

	assert.False(t, XY.HasZ())
	assert.True(t, XYZ.HasZ())
	assert.False(t, XYM.HasZ())
	assert.True(t, XYZM.HasZ())

	assert.False(t, XY.HasM())
	assert.False(t, XYZ.HasM())
	assert.True(t, XYM.HasM())
	assert.True(t, XYZM.HasM())

	assert.Equal(t, -1, XY.ZIndex())
	assert.Equal(t, 2, XYZ.ZIndex())
	assert.Equal(t, -1, XYM.ZIndex())
	assert.Equal(t, 2, XYZM.ZIndex())

	assert.Equal(t, -1, XY.MIndex())
	assert.Equal(t, 2, XYM.MIndex())
	assert.Equal(t, 3, XYZM.MIndex())
}
