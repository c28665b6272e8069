package flat

import "math"

// Extent is an axis-aligned bounding box.
type Extent struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

// EmptyExtent returns an extent that any Extend call will overwrite.
func EmptyExtent() Extent {
	return Extent{
		MinX: math.MaxFloat64, MinY: math.MaxFloat64,
		MaxX: -math.MaxFloat64, MaxY: -math.MaxFloat64,
	}
}

// Empty reports whether the extent contains no points.
func (e Extent) Empty() bool { return e.MinX > e.MaxX || e.MinY > e.MaxY }

// Extend grows the extent to include (x, y).
func (e Extent) Extend(x, y float64) Extent {
	if x < e.MinX {
		e.MinX = x
	}
	if y < e.MinY {
		e.MinY = y
	}
	if x > e.MaxX {
		e.MaxX = x
	}
	if y > e.MaxY {
		e.MaxY = y
	}
	return e
}

// Union grows the extent to include another extent.
func (e Extent) Union(o Extent) Extent {
	if o.Empty() {
		return e
	}
	return e.Extend(o.MinX, o.MinY).Extend(o.MaxX, o.MaxY)
}

// DistanceSquared returns the squared Euclidean distance from (x, y) to
// the nearest point of the box, 0 if the point is inside or on the
// boundary. Cheap lower bound used to reject whole rings before any
// per-edge work.
func (e Extent) DistanceSquared(x, y float64) float64 {
	var dx, dy float64
	if x < e.MinX {
		dx = e.MinX - x
	} else if x > e.MaxX {
		dx = x - e.MaxX
	}
	if y < e.MinY {
		dy = e.MinY - y
	} else if y > e.MaxY {
		dy = y - e.MaxY
	}
	return dx*dx + dy*dy
}

// ExtentOfFlatCoords computes the bounding box of a flat buffer.
func ExtentOfFlatCoords(coords []float64, stride int) Extent {
	e := EmptyExtent()
	for i := 0; i+1 < len(coords); i += stride {
		e = e.Extend(coords[i], coords[i+1])
	}
	return e
}
