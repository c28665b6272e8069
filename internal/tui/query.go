package tui

import (
	"math"

	"ringmap/internal/flat"
)

// boundaryHit is the result of a closest-feature query in data
// coordinates.
type boundaryHit struct {
	X, Y            float64
	SquaredDistance float64
	// Polygon/Ring index the winning boundary belongs to; Polygon is -1
	// when a loose point or line vertex won.
	Polygon int
	Ring    int
}

// closestFeature finds the feature point nearest to (x, y): loose
// points and line vertices compete directly, polygon boundaries through
// the ring projector. One running best is threaded through every
// candidate so each ring can prune against it.
func (m Model) closestFeature(x, y float64) (boundaryHit, bool) {
	hit := boundaryHit{Polygon: -1, Ring: -1}
	best := []float64(nil)
	bestSq := math.Inf(1)

	consider := func(px, py float64) {
		dx := px - x
		dy := py - y
		if sq := dx*dx + dy*dy; sq < bestSq {
			bestSq = sq
			best = []float64{px, py}
			hit.Polygon, hit.Ring = -1, -1
		}
	}
	if m.showPoints {
		for _, p := range m.points {
			consider(p[0], p[1])
		}
	}
	if m.showLines {
		for _, ls := range m.lines {
			for _, p := range ls {
				consider(p[0], p[1])
			}
		}
	}
	if m.showPolys {
		for pi := range m.polygons {
			for ri, r := range m.polygons[pi].Rings {
				pt, sq := r.ClosestPoint(x, y, best, bestSq)
				if sq < bestSq {
					hit.Polygon, hit.Ring = pi, ri
				}
				best, bestSq = pt, sq
			}
		}
	}

	if best == nil {
		return boundaryHit{}, false
	}
	hit.X, hit.Y = best[0], best[1]
	hit.SquaredDistance = bestSq
	return hit, true
}

// hitRing resolves a hit back to its ring, or nil for point hits.
func (m Model) hitRing(hit boundaryHit) *flat.Ring {
	if hit.Polygon < 0 || hit.Polygon >= len(m.polygons) {
		return nil
	}
	rings := m.polygons[hit.Polygon].Rings
	if hit.Ring < 0 || hit.Ring >= len(rings) {
		return nil
	}
	return rings[hit.Ring]
}
