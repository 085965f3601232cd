package orn2ttl

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

// Bounds is a rectangular region of interest in decimal degrees
type Bounds struct {
	LatMin float64 `yaml:"lat_min"`
	LatMax float64 `yaml:"lat_max"`
	LonMin float64 `yaml:"lon_min"`
	LonMax float64 `yaml:"lon_max"`
}

// TorontoBounds is default region of interest
var TorontoBounds = Bounds{
	LatMin: 43.5810,
	LatMax: 43.8555,
	LonMin: -79.6393,
	LonMax: -79.1152,
}

// String returns pretty printed bounds
func (b Bounds) String() string {
	return fmt.Sprintf("Lat: [%f, %f] | Lon: [%f, %f]", b.LatMin, b.LatMax, b.LonMin, b.LonMax)
}

// Validate checks that bounds are not inverted
func (b Bounds) Validate() error {
	if b.LatMin > b.LatMax {
		return errors.Errorf("lat_min %f is greater than lat_max %f", b.LatMin, b.LatMax)
	}
	if b.LonMin > b.LonMax {
		return errors.Errorf("lon_min %f is greater than lon_max %f", b.LonMin, b.LonMax)
	}
	return nil
}

// ContainsPoint tests point against closed rectangle
func (b Bounds) ContainsPoint(pt orb.Point) bool {
	return b.LatMin <= pt.Lat() && pt.Lat() <= b.LatMax &&
		b.LonMin <= pt.Lon() && pt.Lon() <= b.LonMax
}

// AdmitsGeometry tests only minimum corner of geometry bounding box.
// Geometries crossing the border are admitted or rejected depending on where that corner lies
func (b Bounds) AdmitsGeometry(geom orb.Geometry) bool {
	if isEmptyGeometry(geom) {
		return false
	}
	return b.ContainsPoint(geom.Bound().Min)
}

func isEmptyGeometry(geom orb.Geometry) bool {
	switch g := geom.(type) {
	case nil:
		return true
	case orb.LineString:
		return len(g) == 0
	case orb.MultiLineString:
		for _, line := range g {
			if len(line) > 0 {
				return false
			}
		}
		return true
	}
	return false
}

// FilterJunctions returns junctions lying inside bounds, first admitted row per junction ID
func FilterJunctions(junctions []*Junction, b Bounds) []*Junction {
	admitted := make([]*Junction, 0, len(junctions))
	seen := make(map[int64]struct{}, len(junctions))
	for _, junction := range junctions {
		if !b.ContainsPoint(junction.Geom) {
			continue
		}
		if _, ok := seen[junction.ID]; ok {
			continue
		}
		seen[junction.ID] = struct{}{}
		admitted = append(admitted, junction)
	}
	return admitted
}

// FilterSegments applies spatial test then drops virtual elements
func FilterSegments(segments []*RoadSegment, b Bounds, stats *Stats) []*RoadSegment {
	admitted := make([]*RoadSegment, 0, len(segments))
	for _, seg := range segments {
		if !b.AdmitsGeometry(seg.Geom) {
			stats.SegmentsOutside++
			continue
		}
		if seg.IsVirtual() {
			stats.SegmentsVirtual++
			continue
		}
		admitted = append(admitted, seg)
	}
	return admitted
}
