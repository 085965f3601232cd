package orn2ttl

import (
	"time"

	log "github.com/sirupsen/logrus"
)

// JunctionRole is a side of road segment the junction is attached to
type JunctionRole uint16

const (
	// JUNCTION_FROM segment starts at junction (egress of junction)
	JUNCTION_FROM = JunctionRole(iota + 1)
	// JUNCTION_TO segment ends at junction (ingress of junction)
	JUNCTION_TO
)

func (iotaIdx JunctionRole) String() string {
	return [...]string{"from", "to"}[iotaIdx-1]
}

// JunctionEdge is a directed connection between road segment and junction
type JunctionEdge struct {
	Segment     *RoadSegment
	JunctionKey string
	Role        JunctionRole
	// Materialized is false when referenced junction has not been admitted (dangling reference)
	Materialized bool
}

// JunctionGraph is directed connectivity between admitted segments and junctions at their endpoints
type JunctionGraph struct {
	edges     []JunctionEdge
	junctions map[string]*Junction
	egress    map[string][]int
	ingress   map[string][]int
	dangling  int
}

// BuildJunctionGraph connects segments to junctions. Dangling references are kept unless prune is set
func BuildJunctionGraph(segments []*RoadSegment, junctions []*Junction, prune bool) *JunctionGraph {
	st := time.Now()
	graph := JunctionGraph{
		edges:     make([]JunctionEdge, 0, 2*len(segments)),
		junctions: make(map[string]*Junction, len(junctions)),
		egress:    make(map[string][]int),
		ingress:   make(map[string][]int),
	}
	for _, junction := range junctions {
		graph.junctions[junction.Key()] = junction
	}
	for _, seg := range segments {
		if key, ok := seg.FromJunction.Get(); ok {
			graph.addEdge(seg, key, JUNCTION_FROM, prune)
		}
		if key, ok := seg.ToJunction.Get(); ok {
			graph.addEdge(seg, key, JUNCTION_TO, prune)
		}
	}
	log.Infof("Built junction graph with %d edges (%d dangling) in %v", len(graph.edges), graph.dangling, time.Since(st))
	return &graph
}

func (graph *JunctionGraph) addEdge(seg *RoadSegment, key string, role JunctionRole, prune bool) {
	_, materialized := graph.junctions[key]
	if !materialized {
		graph.dangling++
		if prune {
			log.Debugf("Pruning dangling %s-junction '%s' of segment '%s'", role, key, seg.ElementID)
			return
		}
	}
	graph.edges = append(graph.edges, JunctionEdge{
		Segment:      seg,
		JunctionKey:  key,
		Role:         role,
		Materialized: materialized,
	})
	idx := len(graph.edges) - 1
	switch role {
	case JUNCTION_FROM:
		graph.egress[key] = append(graph.egress[key], idx)
	case JUNCTION_TO:
		graph.ingress[key] = append(graph.ingress[key], idx)
	}
}

// Edges returns every kept edge
func (graph *JunctionGraph) Edges() []JunctionEdge {
	return graph.edges
}

// Egress returns segments leaving given junction
func (graph *JunctionGraph) Egress(junctionKey string) []*RoadSegment {
	return graph.segmentsOf(graph.egress[junctionKey])
}

// Ingress returns segments entering given junction
func (graph *JunctionGraph) Ingress(junctionKey string) []*RoadSegment {
	return graph.segmentsOf(graph.ingress[junctionKey])
}

func (graph *JunctionGraph) segmentsOf(indices []int) []*RoadSegment {
	segments := make([]*RoadSegment, len(indices))
	for i, idx := range indices {
		segments[i] = graph.edges[idx].Segment
	}
	return segments
}

// Junction returns admitted junction by key
func (graph *JunctionGraph) Junction(key string) (*Junction, bool) {
	junction, ok := graph.junctions[key]
	return junction, ok
}

// Dangling returns number of references to junctions which have not been admitted
func (graph *JunctionGraph) Dangling() int {
	return graph.dangling
}
