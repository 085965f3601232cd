package orn2ttl

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/LdDl/ch"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// RoutingGeomFormat is geometry encoding of routing export files
type RoutingGeomFormat uint16

const (
	ROUTING_GEOM_WKT = RoutingGeomFormat(iota + 1)
	ROUTING_GEOM_GEOJSON
)

func (iotaIdx RoutingGeomFormat) String() string {
	return [...]string{"wkt", "geojson"}[iotaIdx-1]
}

func getRoutingGeomFormat(str string) RoutingGeomFormat {
	switch strings.ToLower(str) {
	case "wkt", "":
		return ROUTING_GEOM_WKT
	case "geojson":
		return ROUTING_GEOM_GEOJSON
	}
	return 0
}

// RoutingEdge is directed junction-to-junction edge derived from road segment
type RoutingEdge struct {
	ID        int64
	Source    int64
	Target    int64
	Weight    float64
	Geom      orb.LineString
	WasOneWay bool
	SegmentID string
}

// BuildRoutingEdges turns admitted segments into directed edges between their junctions.
// Segments missing either endpoint (or with non-numeric junction reference) are skipped
func BuildRoutingEdges(segments []*RoadSegment) []RoutingEdge {
	edges := make([]RoutingEdge, 0, len(segments))
	edgeID := int64(1)
	for _, seg := range segments {
		from, okFrom := junctionVertex(seg.FromJunction)
		to, okTo := junctionVertex(seg.ToJunction)
		if !okFrom || !okTo {
			continue
		}
		line := segmentLine(seg.Geom)
		weight, ok := seg.Length.Get()
		if !ok {
			weight = geo.LengthHaversign(line)
		}
		direction := seg.Direction.OrElse(DIRECTION_BIDIRECTIONAL).Emitted()
		oneway := direction != DIRECTION_BIDIRECTIONAL
		if direction == DIRECTION_FORWARD || direction == DIRECTION_BIDIRECTIONAL {
			edges = append(edges, RoutingEdge{ID: edgeID, Source: from, Target: to, Weight: weight, Geom: line, WasOneWay: oneway, SegmentID: seg.ElementID})
			edgeID++
		}
		if direction == DIRECTION_REVERSE || direction == DIRECTION_BIDIRECTIONAL {
			edges = append(edges, RoutingEdge{ID: edgeID, Source: to, Target: from, Weight: weight, Geom: reversedLine(line), WasOneWay: oneway, SegmentID: seg.ElementID})
			edgeID++
		}
	}
	return edges
}

func junctionVertex(key Optional[string]) (int64, bool) {
	raw, ok := key.Get()
	if !ok {
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// segmentLine flattens segment geometry into single line
func segmentLine(geom orb.Geometry) orb.LineString {
	switch g := geom.(type) {
	case orb.LineString:
		return g
	case orb.MultiLineString:
		line := orb.LineString{}
		for _, part := range g {
			line = append(line, part...)
		}
		return line
	}
	return orb.LineString{}
}

func reversedLine(line orb.LineString) orb.LineString {
	reversed := make(orb.LineString, len(line))
	for i := range line {
		reversed[len(line)-1-i] = line[i]
	}
	return reversed
}

// ExportRouting writes routing graph files: '<out>.csv' (edges), '<out>_vertices.csv' and '<out>_shortcuts.csv' (when contraction is enabled)
func ExportRouting(edges []RoutingEdge, junctions []*Junction, cfg RoutingConfig) error {
	st := time.Now()
	geomFormat := getRoutingGeomFormat(cfg.GeomFormat)
	if geomFormat == 0 {
		return errors.Wrapf(ErrUnsupportedFormat, "routing geometry format '%s'", cfg.GeomFormat)
	}
	fnamePart := strings.Split(cfg.Out, ".csv")
	fnameEdges := fnamePart[0] + ".csv"
	fnameVertices := fnamePart[0] + "_vertices.csv"
	fnameShortcuts := fnamePart[0] + "_shortcuts.csv"

	log.Infof("Exporting %d routing edges to '%s'...", len(edges), fnameEdges)

	verticesGeoms := make(map[int64]orb.Point, len(junctions))
	for _, junction := range junctions {
		verticesGeoms[junction.ID] = junction.Geom
	}

	graph := ch.Graph{}
	err := exportRoutingEdges(fnameEdges, edges, geomFormat, &graph, verticesGeoms)
	if err != nil {
		return errors.Wrap(err, "Can't export edges")
	}

	if cfg.Contract {
		log.Info("Starting contraction process....")
		stc := time.Now()
		graph.PrepareContractionHierarchies()
		log.Infof("Done contraction process in %v", time.Since(stc))
	}

	err = exportRoutingVertices(fnameVertices, &graph, geomFormat, verticesGeoms)
	if err != nil {
		return errors.Wrap(err, "Can't export vertices")
	}

	if cfg.Contract {
		err = graph.ExportShortcutsToFile(fnameShortcuts)
		if err != nil {
			return errors.Wrap(err, "Can't export shortcuts")
		}
	}
	log.Infof("Done routing export in %v", time.Since(st))
	return nil
}

func exportRoutingEdges(fname string, edges []RoutingEdge, geomFormat RoutingGeomFormat, graph *ch.Graph, verticesGeoms map[int64]orb.Point) error {
	file, err := os.Create(fname)
	if err != nil {
		return errors.Wrap(err, "Can't create file")
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()
	writer.Comma = ';'

	err = writer.Write([]string{"from_vertex_id", "to_vertex_id", "weight", "geom", "was_one_way", "edge_id", "road_link_id"})
	if err != nil {
		return errors.Wrap(err, "Can't write header")
	}

	for _, edge := range edges {
		err = graph.CreateVertex(edge.Source)
		if err != nil {
			return errors.Wrap(err, "Can't create source vertex")
		}
		err = graph.CreateVertex(edge.Target)
		if err != nil {
			return errors.Wrap(err, "Can't create target vertex")
		}
		err = graph.AddEdge(edge.Source, edge.Target, edge.Weight)
		if err != nil {
			return errors.Wrap(err, "Can't wrap source and target vertices as edge")
		}
		if len(edge.Geom) > 0 {
			if _, ok := verticesGeoms[edge.Source]; !ok {
				verticesGeoms[edge.Source] = edge.Geom[0]
			}
			if _, ok := verticesGeoms[edge.Target]; !ok {
				verticesGeoms[edge.Target] = edge.Geom[len(edge.Geom)-1]
			}
		}
		geomStr := ""
		if len(edge.Geom) >= 2 {
			geomStr = PrepareWKTLinestring(edge.Geom)
			if geomFormat == ROUTING_GEOM_GEOJSON {
				geomStr = PrepareGeoJSONLinestring(edge.Geom)
			}
		}
		err = writer.Write([]string{
			fmt.Sprintf("%d", edge.Source),
			fmt.Sprintf("%d", edge.Target),
			fmt.Sprintf("%f", edge.Weight),
			geomStr,
			fmt.Sprintf("%t", edge.WasOneWay),
			fmt.Sprintf("%d", edge.ID),
			edge.SegmentID,
		})
		if err != nil {
			return errors.Wrap(err, "Can't write edge")
		}
	}
	return nil
}

func exportRoutingVertices(fname string, graph *ch.Graph, geomFormat RoutingGeomFormat, verticesGeoms map[int64]orb.Point) error {
	file, err := os.Create(fname)
	if err != nil {
		return errors.Wrap(err, "Can't create file")
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()
	writer.Comma = ';'

	err = writer.Write([]string{"vertex_id", "order_pos", "importance", "geom"})
	if err != nil {
		return errors.Wrap(err, "Can't write header")
	}
	for i := range graph.Vertices {
		label := graph.Vertices[i].Label
		geomStr := PrepareWKTPoint(verticesGeoms[label])
		if geomFormat == ROUTING_GEOM_GEOJSON {
			geomStr = PrepareGeoJSONPoint(verticesGeoms[label])
		}
		err = writer.Write([]string{
			fmt.Sprintf("%d", label),
			fmt.Sprintf("%d", graph.Vertices[i].OrderPos()),
			fmt.Sprintf("%d", graph.Vertices[i].Importance()),
			geomStr,
		})
		if err != nil {
			return errors.Wrap(err, "Can't write vertex")
		}
	}
	return nil
}
