package flat

import "math"

// closestOnSegment writes into (cx, cy) the point of the segment
// (x1,y1)-(x2,y2) closest to (x, y), clamping the projection parameter
// to [0, 1].
func closestOnSegment(x1, y1, x2, y2, x, y float64) (cx, cy float64) {
	dx := x2 - x1
	dy := y2 - y1
	if dx != 0 || dy != 0 {
		t := ((x-x1)*dx + (y-y1)*dy) / (dx*dx + dy*dy)
		if t > 1 {
			return x2, y2
		}
		if t > 0 {
			return x1 + t*dx, y1 + t*dy
		}
	}
	return x1, y1
}

// SquaredDistanceToSegment returns the squared distance from (x, y) to
// the segment (x1,y1)-(x2,y2).
func SquaredDistanceToSegment(x1, y1, x2, y2, x, y float64) float64 {
	cx, cy := closestOnSegment(x1, y1, x2, y2, x, y)
	return squaredDistance(x, y, cx, cy)
}

// ClosestPoint finds the point on the ring's boundary closest to (x, y),
// given the caller's current best candidate and its squared distance
// (from other rings or geometries). It returns the winning point and its
// squared distance; the result is never worse than what was passed in.
//
// The search prunes twice: the ring's extent provides a lower bound that
// can reject the whole ring, and the memoized max edge length lets the
// edge walk skip ahead past edges whose start vertex is already too far
// to contain the true closest point. Neither prune can miss the minimum.
//
// The returned point is always a fresh 2-component coordinate,
// independent of the buffer's stride. An empty ring returns the input
// unchanged; a ring whose vertices are all identical is treated as a
// single point.
func (r *Ring) ClosestPoint(x, y float64, best []float64, bestSq float64) ([]float64, float64) {
	if len(r.coords) == 0 {
		return best, bestSq
	}
	if r.extent.DistanceSquared(x, y) >= bestSq {
		return best, bestSq
	}

	coords := r.coords
	stride := r.stride

	maxSq := r.maxSquaredDelta()
	if maxSq == 0 {
		// Degenerate ring: every vertex coincides.
		sq := squaredDistance(x, y, coords[0], coords[1])
		if sq < bestSq {
			return []float64{coords[0], coords[1]}, sq
		}
		return best, bestSq
	}
	maxDelta := math.Sqrt(maxSq)

	for i := stride; i < len(coords); {
		cx, cy := closestOnSegment(
			coords[i-stride], coords[i-stride+1],
			coords[i], coords[i+1],
			x, y)
		sq := squaredDistance(x, y, cx, cy)
		if sq < bestSq {
			bestSq = sq
			best = []float64{cx, cy}
			i += stride
			continue
		}
		// The closest point of any later edge is at least
		// sqrt(sq) - k*maxDelta away after skipping k edges, so edges
		// up to (sqrt(sq)-sqrt(bestSq))/maxDelta cannot win.
		skip := int((math.Sqrt(sq)-math.Sqrt(bestSq))/maxDelta) + 1
		if skip < 1 {
			skip = 1
		}
		i += skip * stride
	}
	return best, bestSq
}
