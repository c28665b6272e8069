package flat

// SignedArea computes the shoelace area of a closed ring stored in a
// flat buffer. Positive means counter-clockwise winding in the buffer's
// coordinate convention; Z and M components are ignored. A ring with
// fewer than 3 vertices has area 0.
func SignedArea(coords []float64, stride int) float64 {
	if len(coords) < 3*stride {
		return 0
	}
	var twice float64
	for i := stride; i < len(coords); i += stride {
		x1 := coords[i-stride]
		y1 := coords[i-stride+1]
		x2 := coords[i]
		y2 := coords[i+1]
		twice += x1*y2 - x2*y1
	}
	return twice / 2
}

// Area returns the ring's signed planar area.
func (r *Ring) Area() float64 {
	return SignedArea(r.coords, r.stride)
}
