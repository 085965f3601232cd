package orn2ttl

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/jonas-p/go-shp"
	geojson "github.com/paulmach/go.geojson"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// ElementRecord is one row of base geometry source (a road network element)
type ElementRecord struct {
	ID         string
	Geom       orb.Geometry
	Attributes map[string]string
}

// Attribute returns base column value, blank cells are absent
func (rec *ElementRecord) Attribute(name string) Optional[string] {
	v, ok := rec.Attributes[name]
	if !ok {
		return Absent[string]()
	}
	return nonEmpty(v)
}

// GeometryFormat is format of base geometry source
type GeometryFormat uint16

const (
	GEOMETRY_SHAPEFILE = GeometryFormat(iota + 1)
	GEOMETRY_GEOJSON
)

func (iotaIdx GeometryFormat) String() string {
	return [...]string{"shapefile", "geojson"}[iotaIdx-1]
}

func getGeometryFormat(str string) GeometryFormat {
	switch strings.ToLower(str) {
	case "shapefile", "shp", "":
		return GEOMETRY_SHAPEFILE
	case "geojson", "json":
		return GEOMETRY_GEOJSON
	}
	return 0
}

// LoadElements reads base geometry source of given format
func LoadElements(fname string, format GeometryFormat, keyColumn string) ([]ElementRecord, error) {
	st := time.Now()
	log.Infof("Loading road elements from '%s' (%s)...", fname, format)
	var elements []ElementRecord
	var err error
	switch format {
	case GEOMETRY_SHAPEFILE:
		elements, err = LoadShapefile(fname, keyColumn)
	case GEOMETRY_GEOJSON:
		elements, err = LoadGeoJSON(fname, keyColumn)
	default:
		return nil, errors.Wrapf(ErrUnsupportedFormat, "geometry format %d", format)
	}
	if err != nil {
		return nil, err
	}
	log.Infof("Loaded %d road elements in %v", len(elements), time.Since(st))
	return elements, nil
}

// LoadShapefile reads polyline (or point) shapefile. Key column is cast to canonical string
func LoadShapefile(fname string, keyColumn string) ([]ElementRecord, error) {
	reader, err := shp.Open(fname)
	if err != nil {
		return nil, errors.Wrapf(ErrMissingSource, "'%s': %s", fname, err.Error())
	}
	defer reader.Close()

	fields := reader.Fields()
	fieldNames := make([]string, len(fields))
	keyIdx := -1
	for i, field := range fields {
		fieldNames[i] = strings.TrimSpace(field.String())
		if fieldNames[i] == keyColumn {
			keyIdx = i
		}
	}
	if keyIdx < 0 {
		return nil, errors.Wrapf(ErrMissingKeyColumn, "'%s' has no column '%s'", fname, keyColumn)
	}

	elements := []ElementRecord{}
	for reader.Next() {
		n, shape := reader.Shape()
		rec := ElementRecord{
			Attributes: make(map[string]string, len(fields)),
		}
		for i := range fieldNames {
			rec.Attributes[fieldNames[i]] = strings.TrimSpace(reader.ReadAttribute(n, i))
		}
		rec.ID = CanonicalKey(rec.Attributes[keyColumn])
		if rec.ID == "" {
			log.Debugf("Element #%d in '%s' has no key. Skipping", n, fname)
			continue
		}
		rec.Geom = shapeToGeometry(shape)
		if rec.Geom == nil {
			log.Debugf("Element '%s' has unsupported or empty geometry (%T)", rec.ID, shape)
		}
		elements = append(elements, rec)
	}
	if err := reader.Err(); err != nil {
		return nil, errors.Wrapf(ErrMissingSource, "'%s': %s", fname, err.Error())
	}
	return elements, nil
}

func shapeToGeometry(shape shp.Shape) orb.Geometry {
	switch s := shape.(type) {
	case *shp.PolyLine:
		return partsToGeometry(s.Parts, s.Points)
	case *shp.PolyLineZ:
		return partsToGeometry(s.Parts, s.Points)
	case *shp.PolyLineM:
		return partsToGeometry(s.Parts, s.Points)
	case *shp.Point:
		return orb.Point{s.X, s.Y}
	case *shp.PointZ:
		return orb.Point{s.X, s.Y}
	}
	return nil
}

// partsToGeometry splits shapefile points by parts offsets
func partsToGeometry(parts []int32, points []shp.Point) orb.Geometry {
	if len(points) == 0 {
		return nil
	}
	if len(parts) <= 1 {
		line := make(orb.LineString, len(points))
		for i, pt := range points {
			line[i] = orb.Point{pt.X, pt.Y}
		}
		return line
	}
	multi := make(orb.MultiLineString, 0, len(parts))
	for i := range parts {
		start := int(parts[i])
		end := len(points)
		if i+1 < len(parts) {
			end = int(parts[i+1])
		}
		if start >= end || end > len(points) {
			continue
		}
		line := make(orb.LineString, 0, end-start)
		for _, pt := range points[start:end] {
			line = append(line, orb.Point{pt.X, pt.Y})
		}
		multi = append(multi, line)
	}
	return multi
}

// LoadGeoJSON reads FeatureCollection of road elements. Key is taken from properties, then from feature ID
func LoadGeoJSON(fname string, keyColumn string) ([]ElementRecord, error) {
	data, err := os.ReadFile(fname)
	if err != nil {
		return nil, errors.Wrapf(ErrMissingSource, "'%s': %s", fname, err.Error())
	}
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, errors.Wrapf(ErrMissingSource, "'%s' is not a feature collection: %s", fname, err.Error())
	}
	elements := make([]ElementRecord, 0, len(fc.Features))
	for i, feature := range fc.Features {
		rec := ElementRecord{
			Attributes: make(map[string]string, len(feature.Properties)),
		}
		for k, v := range feature.Properties {
			rec.Attributes[k] = propertyToString(v)
		}
		rec.ID = CanonicalKey(rec.Attributes[keyColumn])
		if rec.ID == "" && feature.ID != nil {
			rec.ID = CanonicalKey(propertyToString(feature.ID))
		}
		if rec.ID == "" {
			log.Debugf("Feature #%d in '%s' has no key. Skipping", i, fname)
			continue
		}
		rec.Geom = geojsonToGeometry(feature.Geometry)
		elements = append(elements, rec)
	}
	return elements, nil
}

func geojsonToGeometry(g *geojson.Geometry) orb.Geometry {
	if g == nil {
		return nil
	}
	switch g.Type {
	case geojson.GeometryPoint:
		if len(g.Point) < 2 {
			return nil
		}
		return orb.Point{g.Point[0], g.Point[1]}
	case geojson.GeometryLineString:
		return coordsToLine(g.LineString)
	case geojson.GeometryMultiLineString:
		multi := make(orb.MultiLineString, 0, len(g.MultiLineString))
		for _, coords := range g.MultiLineString {
			if line := coordsToLine(coords); len(line) > 0 {
				multi = append(multi, line)
			}
		}
		if len(multi) == 0 {
			return nil
		}
		return multi
	}
	return nil
}

func coordsToLine(coords [][]float64) orb.LineString {
	line := make(orb.LineString, 0, len(coords))
	for _, c := range coords {
		if len(c) < 2 {
			continue
		}
		line = append(line, orb.Point{c[0], c[1]})
	}
	return line
}

func propertyToString(v interface{}) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(value)
	default:
		return fmt.Sprintf("%v", value)
	}
}
