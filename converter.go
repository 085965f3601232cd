package orn2ttl

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Converter turns loaded sources into statement graph
type Converter struct {
	bounds        Bounds
	namespaces    map[string]string
	strictEnums   bool
	pruneDangling bool
	firstRoadID   int
}

func (conv *Converter) String() string {
	return fmt.Sprintf(`
Converter parameters:
	bounds: %s
	namespace overrides: %d
	strict_enums enabled?: %t
	prune_dangling enabled?: %t
	first_road_id: %d
	`,
		conv.bounds,
		len(conv.namespaces),
		conv.strictEnums,
		conv.pruneDangling,
		conv.firstRoadID,
	)
}

// NewConverter returns converter with Toronto bounds and permissive policies unless options say otherwise
func NewConverter(options ...func(*Converter)) *Converter {
	conv := &Converter{
		bounds:      TorontoBounds,
		namespaces:  map[string]string{},
		firstRoadID: DEFAULT_FIRST_ROAD,
	}
	for _, option := range options {
		option(conv)
	}
	return conv
}

func WithBounds(bounds Bounds) func(*Converter) {
	return func(conv *Converter) {
		conv.bounds = bounds
	}
}

func WithNamespaces(namespaces map[string]string) func(*Converter) {
	return func(conv *Converter) {
		conv.namespaces = namespaces
	}
}

func WithStrictEnums(strictEnums bool) func(*Converter) {
	return func(conv *Converter) {
		conv.strictEnums = strictEnums
	}
}

func WithPruneDangling(pruneDangling bool) func(*Converter) {
	return func(conv *Converter) {
		conv.pruneDangling = pruneDangling
	}
}

func WithFirstRoadID(firstRoadID int) func(*Converter) {
	return func(conv *Converter) {
		conv.firstRoadID = firstRoadID
	}
}

// Result is everything produced by one conversion
type Result struct {
	Graph         *Graph
	Identifiers   *Identifiers
	Junctions     []*Junction
	Segments      []*RoadSegment
	Roads         []*Road
	JunctionGraph *JunctionGraph
	Stats         Stats
}

// Build joins, filters, aggregates and emits. Nothing is written to disk
func (conv *Converter) Build(src *Sources) (*Result, error) {
	if src.Junctions == nil {
		return nil, errors.Wrapf(ErrMissingSource, "'%s' table is not loaded", SOURCE_JUNCTIONS)
	}
	st := time.Now()
	result := Result{
		Identifiers: NewIdentifiers(conv.namespaces),
	}
	stats := &result.Stats

	rows := Join(src.Elements, src.Attributes)
	segments := make([]*RoadSegment, 0, len(rows))
	segmentIssues := make(map[*RoadSegment][]FieldIssue)
	for _, row := range rows {
		seg, segIssues := NewRoadSegment(row)
		segments = append(segments, seg)
		if len(segIssues) > 0 {
			segmentIssues[seg] = segIssues
		}
	}
	stats.SegmentsRead = len(segments)

	junctions, junctionIssues, err := JunctionsFromTable(src.Junctions)
	if err != nil {
		return nil, errors.Wrap(err, "Can't read junctions")
	}
	stats.JunctionsRead = len(junctions)

	log.Infof("Filtering by %s...", conv.bounds)
	result.Junctions = FilterJunctions(junctions, conv.bounds)
	result.Segments = FilterSegments(segments, conv.bounds, stats)
	stats.JunctionsAdmitted = len(result.Junctions)
	stats.SegmentsAdmitted = len(result.Segments)
	log.Infof("Admitted %d of %d junctions and %d of %d segments", stats.JunctionsAdmitted, stats.JunctionsRead, stats.SegmentsAdmitted, stats.SegmentsRead)

	// issues of dropped segments are not reported
	issues := junctionIssues
	for _, seg := range result.Segments {
		issues = append(issues, segmentIssues[seg]...)
	}
	stats.RecordIssues(issues)
	if conv.strictEnums && stats.Unrecognized > 0 {
		for _, issue := range issues {
			if issue.Kind == ISSUE_UNRECOGNIZED {
				return nil, errors.Wrapf(ErrUnrecognizedValue, "'%s' in field '%s' of record '%s' (%d in total)", issue.Raw, issue.Field, issue.RecordID, stats.Unrecognized)
			}
		}
	}

	result.Roads = AggregateRoads(result.Segments, conv.firstRoadID, stats)
	stats.Roads = len(result.Roads)

	result.JunctionGraph = BuildJunctionGraph(result.Segments, result.Junctions, conv.pruneDangling)
	stats.DanglingReferences = result.JunctionGraph.Dangling()

	result.Graph = NewGraph()
	conv.emit(&result)
	stats.Statements = result.Graph.Len()

	log.Infof("Done conversion in %v", time.Since(st))
	return &result, nil
}

func (conv *Converter) emit(result *Result) {
	st := time.Now()
	log.Info("Emitting statements...")
	emitter := NewEmitter(result.Graph, result.Identifiers)
	emitter.EmitSchema()
	for _, junction := range result.Junctions {
		emitter.EmitJunction(junction)
	}
	for _, seg := range result.Segments {
		emitter.EmitRoadSegment(seg)
	}
	for _, road := range result.Roads {
		emitter.EmitRoad(road)
	}
	for _, edge := range result.JunctionGraph.Edges() {
		emitter.EmitJunctionEdge(edge)
	}
	log.Infof("Emitted %d statements in %v", result.Graph.Len(), time.Since(st))
}
