package orn2ttl

import (
	"time"

	log "github.com/sirupsen/logrus"
)

const (
	DEFAULT_FIRST_ROAD = 1
)

// Road is an aggregate of segments sharing one street name
type Road struct {
	ID       int
	Name     string
	Segments []*RoadSegment
}

// RoadAggregator groups segments by street name. Road identifiers come from monotonically increasing counter
// in order of discovery, so only the graph shape (not numeric suffixes) is stable across input orderings
type RoadAggregator struct {
	nextID int
	byName map[string]*Road
	roads  []*Road
}

// NewRoadAggregator returns aggregator assigning identifiers starting from firstID
func NewRoadAggregator(firstID int) *RoadAggregator {
	return &RoadAggregator{
		nextID: firstID,
		byName: make(map[string]*Road),
		roads:  []*Road{},
	}
}

// Add places segment into its road, creating road on first sight of the name.
// Segments without street name belong to no road
func (agg *RoadAggregator) Add(seg *RoadSegment) (*Road, bool) {
	name, ok := seg.StreetName.Get()
	if !ok {
		return nil, false
	}
	road, ok := agg.byName[name]
	if !ok {
		road = &Road{
			ID:       agg.nextID,
			Name:     name,
			Segments: []*RoadSegment{},
		}
		agg.nextID++
		agg.byName[name] = road
		agg.roads = append(agg.roads, road)
	}
	road.Segments = append(road.Segments, seg)
	return road, true
}

// Roads returns roads in order of discovery
func (agg *RoadAggregator) Roads() []*Road {
	return agg.roads
}

// AggregateRoads groups admitted segments into roads numbered from firstID
func AggregateRoads(segments []*RoadSegment, firstID int, stats *Stats) []*Road {
	st := time.Now()
	agg := NewRoadAggregator(firstID)
	unnamed := 0
	for _, seg := range segments {
		if _, ok := agg.Add(seg); !ok {
			unnamed++
		}
	}
	stats.SegmentsUnnamed += unnamed
	roads := agg.Roads()
	log.Infof("Aggregated %d segments into %d roads in %v", len(segments)-unnamed, len(roads), time.Since(st))
	return roads
}
