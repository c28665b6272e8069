package flat

import (
	"sync"

	"github.com/pkg/errors"
)

// ErrInvalidCoordinate is returned when a vertex tuple does not supply
// exactly one component per stride slot.
var ErrInvalidCoordinate = errors.New("flat: invalid coordinate")

// Ring is a closed polygonal boundary stored as a single flat buffer of
// float64 components, layout.Stride() per vertex. By convention the last
// vertex repeats the first; the algorithms in this package assume that
// and never special-case the wrap-around edge.
//
// The buffer is replaced wholesale by SetCoords and never mutated in
// place, so readers need no locking on the coordinates themselves. Only
// the derived max-edge-delta memo is guarded.
type Ring struct {
	layout Layout
	stride int
	coords []float64
	extent Extent
	rev    uint64

	// memoized upper bound on edge length, tagged with the revision it
	// was computed at
	deltaMu  sync.RWMutex
	delta    float64
	deltaRev uint64
}

// NewRing returns an empty ring with the given layout.
func NewRing(layout Layout) *Ring {
	return &Ring{layout: layout, stride: layout.Stride()}
}

// NewRingFlat builds a ring directly from a flat buffer. The slice is
// copied. len(coords) must be a multiple of the layout stride.
func NewRingFlat(layout Layout, coords []float64) (*Ring, error) {
	stride := layout.Stride()
	if len(coords)%stride != 0 {
		return nil, errors.Wrapf(ErrInvalidCoordinate, "flat length %d not a multiple of stride %d", len(coords), stride)
	}
	r := NewRing(layout)
	r.coords = append([]float64(nil), coords...)
	r.extent = ExtentOfFlatCoords(r.coords, stride)
	r.rev++
	return r, nil
}

// SetCoords flattens vertex tuples into the ring's buffer. Every tuple
// must supply exactly Stride() components; otherwise SetCoords fails
// with ErrInvalidCoordinate and the previous buffer is left intact. The
// new buffer is built fully before it replaces the old one.
func (r *Ring) SetCoords(points [][]float64) error {
	coords := make([]float64, 0, len(points)*r.stride)
	for i, p := range points {
		if len(p) != r.stride {
			return errors.Wrapf(ErrInvalidCoordinate, "vertex %d has %d components, want %d", i, len(p), r.stride)
		}
		coords = append(coords, p...)
	}
	r.coords = coords
	r.extent = ExtentOfFlatCoords(coords, r.stride)
	r.rev++
	return nil
}

// Coords unpacks the buffer back into vertex tuples. The result shares
// no storage with the ring.
func (r *Ring) Coords() [][]float64 {
	points := make([][]float64, r.NumVertices())
	for i := range points {
		p := make([]float64, r.stride)
		copy(p, r.coords[i*r.stride:(i+1)*r.stride])
		points[i] = p
	}
	return points
}

// FlatCoords returns the backing buffer. Callers must not mutate it.
func (r *Ring) FlatCoords() []float64 { return r.coords }

// Layout returns the ring's coordinate layout.
func (r *Ring) Layout() Layout { return r.layout }

// Stride returns the number of components per vertex.
func (r *Ring) Stride() int { return r.stride }

// NumVertices returns the vertex count, counting the closing repeat.
func (r *Ring) NumVertices() int { return len(r.coords) / r.stride }

// Vertex returns the 2D position of vertex i.
func (r *Ring) Vertex(i int) (x, y float64) {
	return r.coords[i*r.stride], r.coords[i*r.stride+1]
}

// Edge returns the 2D endpoints of edge i, wrapping from the last vertex
// back to the first so call sites need no special case for the closing
// edge.
func (r *Ring) Edge(i int) (x1, y1, x2, y2 float64) {
	n := r.NumVertices()
	x1, y1 = r.Vertex(i)
	x2, y2 = r.Vertex((i + 1) % n)
	return x1, y1, x2, y2
}

// Extent returns the ring's axis-aligned bounding box, recomputed on
// every SetCoords.
func (r *Ring) Extent() Extent { return r.extent }

// Revision returns a counter bumped on every buffer replacement. It is
// the only valid invalidation signal for values derived from the buffer.
func (r *Ring) Revision() uint64 { return r.rev }

// maxSquaredDelta returns the largest squared distance between any two
// consecutive vertices, memoized per revision. Recomputation is
// idempotent, so a read under the lock followed by a racing write is
// safe; a partially written pair is not, hence the mutex.
func (r *Ring) maxSquaredDelta() float64 {
	rev := r.rev
	r.deltaMu.RLock()
	if r.deltaRev == rev && rev != 0 {
		d := r.delta
		r.deltaMu.RUnlock()
		return d
	}
	r.deltaMu.RUnlock()

	var max float64
	for i := r.stride; i < len(r.coords); i += r.stride {
		dx := r.coords[i] - r.coords[i-r.stride]
		dy := r.coords[i+1] - r.coords[i+1-r.stride]
		if d := dx*dx + dy*dy; d > max {
			max = d
		}
	}
	r.deltaMu.Lock()
	r.delta = max
	r.deltaRev = rev
	r.deltaMu.Unlock()
	return max
}

// CloseCoords appends a copy of the first tuple when the last does not
// already repeat it. Inputs shorter than one vertex pass through.
func CloseCoords(points [][]float64) [][]float64 {
	if len(points) < 2 {
		return points
	}
	first, last := points[0], points[len(points)-1]
	if len(first) == len(last) {
		closed := true
		for i := range first {
			if first[i] != last[i] {
				closed = false
				break
			}
		}
		if closed {
			return points
		}
	}
	dup := make([]float64, len(first))
	copy(dup, first)
	return append(points, dup)
}

func squaredDistance(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx + dy*dy
}
