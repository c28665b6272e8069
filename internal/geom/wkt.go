package geom

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"ringmap/internal/flat"
)

// ParseWKTData parses a subset of WKT into Data. Supported:
// POINT(x y), MULTIPOINT(x y, ...), LINESTRING(x y, ...),
// POLYGON((x y, ...)[,(...)]) — each optionally tagged Z, M, or ZM, in
// which case every tuple must carry the matching number of components.
func ParseWKTData(wkt string) (Data, error) {
	s := strings.TrimSpace(wkt)
	if s == "" {
		return Data{}, errors.New("empty wkt")
	}
	up := strings.ToUpper(s)
	d := NewData()

	keyword := func(kw string) (tag string, ok bool) {
		if !strings.HasPrefix(up, kw) {
			return "", false
		}
		rest := strings.TrimSpace(up[len(kw) : strings.Index(up, "(")])
		switch rest {
		case "", "Z", "M", "ZM":
			return rest, true
		}
		return "", false
	}
	if !strings.Contains(up, "(") {
		return Data{}, errors.New("unsupported wkt type")
	}

	switch {
	case strings.HasPrefix(up, "MULTIPOINT"):
		tag, ok := keyword("MULTIPOINT")
		if !ok {
			return Data{}, errors.New("wkt multipoint: invalid")
		}
		i := strings.Index(s, "(")
		j := strings.LastIndex(s, ")")
		if i < 0 || j <= i {
			return Data{}, errors.New("wkt multipoint: invalid")
		}
		for _, p := range parseTuples(s[i+1:j], tag) {
			d.AddPoint(p[0], p[1])
		}
	case strings.HasPrefix(up, "POINT"):
		tag, ok := keyword("POINT")
		if !ok {
			return Data{}, errors.New("wkt point: invalid")
		}
		i := strings.Index(s, "(")
		j := strings.LastIndex(s, ")")
		if i < 0 || j <= i {
			return Data{}, errors.New("wkt point: invalid")
		}
		for _, p := range parseTuples(s[i+1:j], tag) {
			d.AddPoint(p[0], p[1])
		}
	case strings.HasPrefix(up, "LINESTRING"):
		tag, ok := keyword("LINESTRING")
		if !ok {
			return Data{}, errors.New("wkt linestring: invalid")
		}
		i := strings.Index(s, "(")
		j := strings.LastIndex(s, ")")
		if i < 0 || j <= i {
			return Data{}, errors.New("wkt linestring: invalid")
		}
		var ls [][2]float64
		for _, p := range parseTuples(s[i+1:j], tag) {
			ls = append(ls, [2]float64{p[0], p[1]})
		}
		d.AddLine(ls)
	case strings.HasPrefix(up, "POLYGON"):
		tag, ok := keyword("POLYGON")
		if !ok {
			return Data{}, errors.New("wkt polygon: invalid")
		}
		i := strings.Index(s, "((")
		j := strings.LastIndex(s, "))")
		if i < 0 || j <= i {
			return Data{}, errors.New("wkt polygon: invalid")
		}
		ringsStr := s[i+2 : j]
		// normalize spaces around ring separators
		ringsNorm := strings.ReplaceAll(ringsStr, "), (", "),(")
		ringsNorm = strings.ReplaceAll(ringsNorm, ") , (", "),(")
		var poly Polygon
		for _, rp := range strings.Split(ringsNorm, "),(") {
			tuples := parseTuples(rp, tag)
			if len(tuples) == 0 {
				continue
			}
			r, err := wktRing(tuples, tag)
			if err != nil {
				return Data{}, errors.Wrap(err, "wkt polygon")
			}
			poly.Rings = append(poly.Rings, r)
		}
		d.AddPolygon(poly)
	default:
		return Data{}, errors.New("unsupported wkt type")
	}

	if d.Empty() {
		return Data{}, errors.New("wkt: no coordinates parsed")
	}
	return d, nil
}

// parseTuples splits a coordinate block by commas into numeric tuples.
// The layout tag sets the minimum component count; short or non-numeric
// tuples are skipped, matching the lenient file handling elsewhere.
func parseTuples(block string, tag string) [][]float64 {
	want := 2
	if layout, err := flat.ParseLayout(tag, nil); err == nil {
		want = layout.Stride()
	}
	var out [][]float64
	for _, tup := range strings.Split(block, ",") {
		parts := strings.Fields(strings.TrimSpace(tup))
		if len(parts) < want {
			continue
		}
		vals := make([]float64, 0, len(parts))
		ok := true
		for _, part := range parts {
			v, err := strconv.ParseFloat(part, 64)
			if err != nil {
				ok = false
				break
			}
			vals = append(vals, v)
		}
		if ok {
			out = append(out, vals)
		}
	}
	return out
}

// wktRing builds a closed flat ring from parsed tuples, resolving the
// layout from the WKT tag against the first tuple. Untagged geometry is
// plain 2D; extra components are dropped, keeping the parser as lenient
// as the other loaders. Tagged geometry is strict: tuples must carry
// exactly the tagged component count.
func wktRing(tuples [][]float64, tag string) (*flat.Ring, error) {
	if tag == "" {
		for i, tup := range tuples {
			tuples[i] = tup[:2]
		}
	}
	layout, err := flat.ParseLayout(tag, tuples[0])
	if err != nil {
		return nil, err
	}
	points := make([][]float64, 0, len(tuples)+1)
	for _, tup := range tuples {
		points = append(points, tup)
	}
	points = flat.CloseCoords(points)
	r := flat.NewRing(layout)
	if err := r.SetCoords(points); err != nil {
		return nil, err
	}
	return r, nil
}
