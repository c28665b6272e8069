package geom

import (
	"encoding/json"
	"os"

	geojson "github.com/paulmach/go.geojson"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// LoadGeo reads a GeoJSON file and returns Data (points, lines,
// polygons). The top level may be a FeatureCollection, a Feature, or a
// bare geometry.
func LoadGeo(path string) (Data, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Data{}, errors.Wrap(err, "geojson: read")
	}
	d, err := ParseGeoJSON(data)
	if err != nil {
		return Data{}, err
	}
	log.WithFields(log.Fields{
		"path":     path,
		"points":   len(d.Points),
		"lines":    len(d.Lines),
		"polygons": len(d.Polygons),
	}).Debug("geojson loaded")
	return d, nil
}

// ParseGeoJSON decodes GeoJSON bytes into Data.
func ParseGeoJSON(data []byte) (Data, error) {
	var probe struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return Data{}, errors.Wrap(err, "geojson: decode")
	}

	d := NewData()
	switch probe.Type {
	case "FeatureCollection":
		fc, err := geojson.UnmarshalFeatureCollection(data)
		if err != nil {
			return Data{}, errors.Wrap(err, "geojson: feature collection")
		}
		for _, f := range fc.Features {
			if f.Geometry == nil {
				continue
			}
			if err := addGeometry(&d, f.Geometry); err != nil {
				return Data{}, err
			}
		}
	case "Feature":
		f, err := geojson.UnmarshalFeature(data)
		if err != nil {
			return Data{}, errors.Wrap(err, "geojson: feature")
		}
		if f.Geometry != nil {
			if err := addGeometry(&d, f.Geometry); err != nil {
				return Data{}, err
			}
		}
	default:
		g, err := geojson.UnmarshalGeometry(data)
		if err != nil {
			return Data{}, errors.Wrap(err, "geojson: geometry")
		}
		if err := addGeometry(&d, g); err != nil {
			return Data{}, err
		}
	}
	if d.Empty() {
		return Data{}, errors.New("no geometries found")
	}
	return d, nil
}

func addGeometry(d *Data, g *geojson.Geometry) error {
	switch g.Type {
	case geojson.GeometryPoint:
		if len(g.Point) >= 2 {
			d.AddPoint(g.Point[0], g.Point[1])
		}
	case geojson.GeometryMultiPoint:
		for _, p := range g.MultiPoint {
			if len(p) >= 2 {
				d.AddPoint(p[0], p[1])
			}
		}
	case geojson.GeometryLineString:
		d.AddLine(lineFromPositions(g.LineString))
	case geojson.GeometryMultiLineString:
		for _, ls := range g.MultiLineString {
			d.AddLine(lineFromPositions(ls))
		}
	case geojson.GeometryPolygon:
		poly, err := polygonFromPositions(g.Polygon)
		if err != nil {
			return err
		}
		d.AddPolygon(poly)
	case geojson.GeometryMultiPolygon:
		for _, rings := range g.MultiPolygon {
			poly, err := polygonFromPositions(rings)
			if err != nil {
				return err
			}
			d.AddPolygon(poly)
		}
	case geojson.GeometryCollection:
		for _, sub := range g.Geometries {
			if err := addGeometry(d, sub); err != nil {
				return err
			}
		}
	}
	return nil
}

func lineFromPositions(positions [][]float64) [][2]float64 {
	ls := make([][2]float64, 0, len(positions))
	for _, p := range positions {
		if len(p) >= 2 {
			ls = append(ls, [2]float64{p[0], p[1]})
		}
	}
	return ls
}

func polygonFromPositions(rings [][][]float64) (Polygon, error) {
	var poly Polygon
	for _, positions := range rings {
		if len(positions) == 0 {
			continue
		}
		r, err := RingFromPositions(positions)
		if err != nil {
			return Polygon{}, errors.Wrap(err, "geojson: ring")
		}
		poly.Rings = append(poly.Rings, r)
	}
	return poly, nil
}
