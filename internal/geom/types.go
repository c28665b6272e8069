package geom

import "ringmap/internal/flat"

// Polygon is an ordered set of closed rings: outer boundary first,
// holes after.
type Polygon struct {
	Rings []*flat.Ring
}

// Data is a minimal geometry container for rendering.
type Data struct {
	Points   [][2]float64
	Lines    [][][2]float64
	Polygons []Polygon
	Extent   flat.Extent
}

// NewData returns an empty container whose extent is ready to extend.
func NewData() Data {
	return Data{Extent: flat.EmptyExtent()}
}

// Empty reports whether no geometries were loaded.
func (d *Data) Empty() bool {
	return len(d.Points) == 0 && len(d.Lines) == 0 && len(d.Polygons) == 0
}

// AddPoint appends a point and grows the extent.
func (d *Data) AddPoint(x, y float64) {
	d.Points = append(d.Points, [2]float64{x, y})
	d.Extent = d.Extent.Extend(x, y)
}

// AddLine appends a line string and grows the extent.
func (d *Data) AddLine(ls [][2]float64) {
	if len(ls) == 0 {
		return
	}
	d.Lines = append(d.Lines, ls)
	for _, p := range ls {
		d.Extent = d.Extent.Extend(p[0], p[1])
	}
}

// AddPolygon appends a polygon and grows the extent by its rings.
func (d *Data) AddPolygon(p Polygon) {
	if len(p.Rings) == 0 {
		return
	}
	d.Polygons = append(d.Polygons, p)
	for _, r := range p.Rings {
		d.Extent = d.Extent.Union(r.Extent())
	}
}

// RingFromPositions builds a closed flat ring from loose positions as
// they arrive from a parser. Positions that uniformly carry a third
// component become an XYZ ring; otherwise extra components are dropped
// and the ring is plain XY. The ring is closed before storage.
func RingFromPositions(positions [][]float64) (*flat.Ring, error) {
	layout := flat.XY
	if len(positions) > 0 {
		uniform3 := true
		for _, p := range positions {
			if len(p) < 3 {
				uniform3 = false
				break
			}
		}
		if uniform3 {
			var err error
			layout, err = flat.ParseLayout("XYZ", positions[0][:3])
			if err != nil {
				return nil, err
			}
		}
	}
	stride := layout.Stride()
	points := make([][]float64, 0, len(positions)+1)
	for _, p := range positions {
		v := make([]float64, stride)
		copy(v, p[:stride])
		points = append(points, v)
	}
	points = flat.CloseCoords(points)
	r := flat.NewRing(layout)
	if err := r.SetCoords(points); err != nil {
		return nil, err
	}
	return r, nil
}
