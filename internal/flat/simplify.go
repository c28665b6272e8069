package flat

// Simplify reduces the ring's vertex count with Douglas-Peucker
// thresholding on squared perpendicular distance. The result is a new,
// independently owned ring in plain XY layout (Z and M are dropped); the
// input is untouched. The first and last vertices are always retained.
//
// A squaredTolerance of 0 returns the same vertices, only stripped to
// 2D. Rings of two or fewer vertices come back unchanged. A vertex is
// retained only when its distance strictly exceeds the tolerance, so
// equal-distance ties resolve to the lower index and output order is
// deterministic.
func Simplify(r *Ring, squaredTolerance float64) *Ring {
	coords := r.coords
	stride := r.stride
	n := r.NumVertices()

	if n <= 2 || squaredTolerance <= 0 {
		return stripTo2D(coords, stride, nil)
	}

	mask := make([]byte, n)
	mask[0] = 1
	mask[n-1] = 1

	// Explicit stack instead of recursion; each frame is a (start, end)
	// index pair of already-retained endpoints.
	stack := []int{0, n - 1}
	for len(stack) > 0 {
		start := stack[len(stack)-2]
		end := stack[len(stack)-1]

		maxSq := 0.0
		maxIndex := 0
		x1 := coords[start*stride]
		y1 := coords[start*stride+1]
		x2 := coords[end*stride]
		y2 := coords[end*stride+1]
		for i := start + 1; i < end; i++ {
			sq := SquaredDistanceToSegment(x1, y1, x2, y2, coords[i*stride], coords[i*stride+1])
			if sq > maxSq {
				maxSq = sq
				maxIndex = i
			}
		}

		if maxSq > squaredTolerance {
			mask[maxIndex] = 1
			stack[len(stack)-1] = maxIndex
			stack = append(stack, maxIndex, end)
		} else {
			stack = stack[:len(stack)-2]
		}
	}

	return stripTo2D(coords, stride, mask)
}

// stripTo2D copies the masked vertices (all of them when mask is nil)
// into a new XY ring.
func stripTo2D(coords []float64, stride int, mask []byte) *Ring {
	out := NewRing(XY)
	n := len(coords) / stride
	flat := make([]float64, 0, 2*n)
	for i := 0; i < n; i++ {
		if mask != nil && mask[i] == 0 {
			continue
		}
		flat = append(flat, coords[i*stride], coords[i*stride+1])
	}
	out.coords = flat
	out.extent = ExtentOfFlatCoords(flat, 2)
	out.rev++
	return out
}
