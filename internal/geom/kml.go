package geom

import (
	"encoding/xml"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// LoadKML extracts Point coordinates from a KML file (Placemark > Point > coordinates).
// KML coordinates are "lon,lat[,alt]"; we ignore altitude.
func LoadKML(path string) (Data, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Data{}, errors.Wrap(err, "kml: read")
	}

	type kmlPoint struct {
		Coordinates string `xml:"coordinates"`
	}
	type kmlPlacemark struct {
		Point *kmlPoint `xml:"Point"`
	}
	type kmlDoc struct {
		Placemarks    []kmlPlacemark `xml:"Placemark"`
		DocPlacemarks []kmlPlacemark `xml:"Document>Placemark"`
		FolderMarks   []kmlPlacemark `xml:"Document>Folder>Placemark"`
	}

	var doc kmlDoc
	if err := xml.Unmarshal(data, &doc); err != nil {
		return Data{}, errors.Wrap(err, "kml: decode")
	}
	placemarks := append(doc.Placemarks, doc.DocPlacemarks...)
	placemarks = append(placemarks, doc.FolderMarks...)
	d := NewData()
	for _, pm := range placemarks {
		if pm.Point == nil {
			continue
		}
		// coordinates may contain multiple tuples separated by spaces
		for _, tuple := range strings.Fields(pm.Point.Coordinates) {
			vals := strings.Split(tuple, ",")
			if len(vals) < 2 {
				continue
			}
			lon, err1 := strconv.ParseFloat(strings.TrimSpace(vals[0]), 64)
			lat, err2 := strconv.ParseFloat(strings.TrimSpace(vals[1]), 64)
			if err1 != nil || err2 != nil {
				continue
			}
			d.AddPoint(lon, lat)
		}
	}
	if d.Empty() {
		return Data{}, errors.New("kml: no points found")
	}
	log.WithFields(log.Fields{"path": path, "points": len(d.Points)}).Debug("kml loaded")
	return d, nil
}
