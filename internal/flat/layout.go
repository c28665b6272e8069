package flat

import (
	"strings"

	"github.com/pkg/errors"
)

// ErrInvalidLayout is returned when a layout tag is unknown or does not
// match the sample coordinate it was resolved against.
var ErrInvalidLayout = errors.New("flat: invalid layout")

// Layout describes which components each vertex of a flat buffer carries.
type Layout int

const (
	// XY is plain 2D.
	XY Layout = iota
	// XYZ adds an elevation component.
	XYZ
	// XYM adds a measure component.
	XYM
	// XYZM carries both elevation and measure.
	XYZM
)

// Stride returns the number of float64 components stored per vertex.
func (l Layout) Stride() int {
	switch l {
	case XYZ, XYM:
		return 3
	case XYZM:
		return 4
	default:
		return 2
	}
}

// HasZ reports whether vertices carry an elevation component.
func (l Layout) HasZ() bool { return l == XYZ || l == XYZM }

// HasM reports whether vertices carry a measure component.
func (l Layout) HasM() bool { return l == XYM || l == XYZM }

// ZIndex returns the per-vertex index of the Z component, or -1.
func (l Layout) ZIndex() int {
	if l.HasZ() {
		return 2
	}
	return -1
}

// MIndex returns the per-vertex index of the M component, or -1.
func (l Layout) MIndex() int {
	switch l {
	case XYM:
		return 2
	case XYZM:
		return 3
	}
	return -1
}

func (l Layout) String() string {
	switch l {
	case XY:
		return "XY"
	case XYZ:
		return "XYZ"
	case XYM:
		return "XYM"
	case XYZM:
		return "XYZM"
	}
	return "unknown"
}

// ParseLayout resolves a layout tag ("XY", "XYZ", "XYM", "XYZM",
// case-insensitive) and checks it against a sample coordinate tuple.
// A nil sample skips the length check.
func ParseLayout(tag string, sample []float64) (Layout, error) {
	var l Layout
	switch strings.ToUpper(strings.TrimSpace(tag)) {
	case "XY", "":
		l = XY
	case "XYZ", "Z":
		l = XYZ
	case "XYM", "M":
		l = XYM
	case "XYZM", "ZM":
		l = XYZM
	default:
		return XY, errors.Wrapf(ErrInvalidLayout, "unknown tag %q", tag)
	}
	if sample != nil && len(sample) != l.Stride() {
		return XY, errors.Wrapf(ErrInvalidLayout, "tag %q wants %d components, sample has %d", tag, l.Stride(), len(sample))
	}
	return l, nil
}
