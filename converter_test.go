package orn2ttl

import (
	"sort"
	"testing"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scenarioSources(t *testing.T) *Sources {
	ottawa := orb.LineString{{-75.70, 45.40}, {-75.69, 45.41}}
	elements := []ElementRecord{
		element("1", torontoLine(0), map[string]string{COLUMN_FROM_JUNCTION: "10", COLUMN_TO_JUNCTION: "11", COLUMN_DIRECTION: "Positive"}),
		element("2", torontoLine(0.01), map[string]string{COLUMN_FROM_JUNCTION: "11", COLUMN_TO_JUNCTION: "12", COLUMN_DIRECTION: "Bi-directional"}),
		element("3", torontoLine(0.02), map[string]string{COLUMN_DIRECTION: "Negative"}),
		element("4", torontoLine(0.03), map[string]string{COLUMN_ELEM_TYPE: ELEMENT_TYPE_VIRTUAL}),
		element("5", ottawa, nil),
		element("6", torontoLine(0.04), nil),
	}
	names := mustTable(t, SOURCE_ROAD_NAMES, COLUMN_ATTRIBUTE_KEY,
		"ORN_ROAD_NET_ELEMENT_ID;FULL_STREET_NAME",
		"1;Yonge Street",
		"2;Yonge Street",
		"3;None",
		"4;Yonge Street",
		"5;Yonge Street",
		"6;Bloor Street",
	)
	speed := mustTable(t, SOURCE_SPEED_LIMITS, COLUMN_ATTRIBUTE_KEY,
		"ORN_ROAD_NET_ELEMENT_ID;SPEED_LIMIT",
		"1;50",
	)
	junctions := mustTable(t, SOURCE_JUNCTIONS, COLUMN_JUNCTION_ID,
		"JUNCTION_ID;LATITUDE_DECIMAL_DEGREES;LONGITUDE_DECIMAL_DEGREES;JUNCTION_TYPE",
		"10;43.70;-79.40;Intersection",
		"11;43.71;-79.39;Intersection",
		"11;43.71;-79.39;Duplicate",
		"12;45.40;-75.70;Intersection",
	)
	return &Sources{
		Elements:   elements,
		Attributes: []*Table{speed, names},
		Junctions:  junctions,
	}
}

func TestBuildScenario(t *testing.T) {
	result, err := NewConverter().Build(scenarioSources(t))
	require.NoError(t, err)
	graph, ids := result.Graph, result.Identifiers

	assert.Equal(t, 6, result.Stats.SegmentsRead)
	assert.Equal(t, 4, result.Stats.SegmentsAdmitted)
	assert.Equal(t, 1, result.Stats.SegmentsVirtual)
	assert.Equal(t, 1, result.Stats.SegmentsOutside)
	assert.Equal(t, 1, result.Stats.SegmentsUnnamed)
	assert.Equal(t, 4, result.Stats.JunctionsRead)
	assert.Equal(t, 2, result.Stats.JunctionsAdmitted)
	assert.Equal(t, 2, result.Stats.Roads)
	assert.Equal(t, 1, result.Stats.DanglingReferences)
	assert.Equal(t, graph.Len(), result.Stats.Statements)

	roadLinkType := resource(ids.Term(CLASS_ROAD_LINK))
	for _, id := range []string{"1", "2", "3", "6"} {
		link := ids.Entity(ENTITY_ROAD_LINK, id)
		types := 0
		for _, st := range graph.Match(link, ids.Term(RDF_TYPE)) {
			if st.Object == roadLinkType {
				types++
			}
		}
		assert.Equal(t, 1, types, "segment '%s'", id)
	}
	for _, id := range []string{"4", "5"} {
		assert.Empty(t, graph.Match(ids.Entity(ENTITY_ROAD_LINK, id), ""), "segment '%s'", id)
	}

	// named segments have exactly one owner, unnamed one has none
	for _, id := range []string{"1", "2", "6"} {
		assert.Len(t, graph.Match(ids.Entity(ENTITY_ROAD_LINK, id), ids.Term(PRED_PROPER_PART_OF)), 1, "segment '%s'", id)
	}
	assert.Empty(t, graph.Match(ids.Entity(ENTITY_ROAD_LINK, "3"), ids.Term(PRED_PROPER_PART_OF)))

	shape := roadShape(graph, ids)
	assert.Equal(t, map[string][]string{
		"Yonge Street": {string(ids.Entity(ENTITY_ROAD_LINK, "1")), string(ids.Entity(ENTITY_ROAD_LINK, "2"))},
		"Bloor Street": {string(ids.Entity(ENTITY_ROAD_LINK, "6"))},
	}, shape)

	directions := map[string]Term{
		"1": linkDirectionTerms[DIRECTION_FORWARD],
		"2": linkDirectionTerms[DIRECTION_BIDIRECTIONAL],
		"3": linkDirectionTerms[DIRECTION_REVERSE],
	}
	for id, expected := range directions {
		found := graph.Match(ids.Entity(ENTITY_ROAD_LINK, id), ids.Term(PRED_ALLOWED_DIRECTIONS))
		require.Len(t, found, 1)
		assert.Equal(t, resource(ids.Term(expected)), found[0].Object, "segment '%s'", id)
	}

	// junctions inside region only, dangling reference kept as edge
	junctionType := resource(ids.Term(CLASS_JUNCTION))
	for _, st := range graph.Match("", ids.Term(RDF_TYPE)) {
		if st.Object == junctionType {
			assert.Contains(t, []IRI{ids.Entity(ENTITY_JUNCTION, "10"), ids.Entity(ENTITY_JUNCTION, "11")}, st.Subject)
		}
	}
	j12 := ids.Entity(ENTITY_JUNCTION, "12")
	assert.True(t, graph.Contains(Statement{ids.Entity(ENTITY_ROAD_LINK, "2"), ids.Term(PRED_TO), resource(j12)}))
	assert.Empty(t, graph.Match(j12, ids.Term(RDF_TYPE)))
}

func TestBuildPruneDangling(t *testing.T) {
	result, err := NewConverter(WithPruneDangling(true)).Build(scenarioSources(t))
	require.NoError(t, err)
	ids := result.Identifiers
	j12 := ids.Entity(ENTITY_JUNCTION, "12")
	assert.False(t, result.Graph.Contains(Statement{ids.Entity(ENTITY_ROAD_LINK, "2"), ids.Term(PRED_TO), resource(j12)}))
	assert.Empty(t, result.Graph.Match(j12, ""))
	assert.Equal(t, 1, result.Stats.DanglingReferences)
}

func TestBuildStrictEnums(t *testing.T) {
	src := scenarioSources(t)
	src.Elements[0].Attributes[COLUMN_DIRECTION] = "Sideways"

	result, err := NewConverter().Build(src)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Stats.Unrecognized)

	_, err = NewConverter(WithStrictEnums(true)).Build(src)
	require.Error(t, err)
	assert.Equal(t, ErrUnrecognizedValue, errors.Cause(err))
}

func TestBuildStrictEnumsIgnoresDroppedSegments(t *testing.T) {
	src := scenarioSources(t)
	// element 4 is virtual, element 5 lies outside region
	src.Elements[3].Attributes[COLUMN_DIRECTION] = "Sideways"
	src.Elements[4].Attributes[COLUMN_DIRECTION] = "Sideways"

	result, err := NewConverter(WithStrictEnums(true)).Build(src)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Stats.Unrecognized)
}

func TestBuildShapeIsOrderIndependent(t *testing.T) {
	forward, err := NewConverter().Build(scenarioSources(t))
	require.NoError(t, err)

	src := scenarioSources(t)
	for i, j := 0, len(src.Elements)-1; i < j; i, j = i+1, j-1 {
		src.Elements[i], src.Elements[j] = src.Elements[j], src.Elements[i]
	}
	backward, err := NewConverter().Build(src)
	require.NoError(t, err)

	// road numbering depends on discovery order
	assert.NotEqual(t, forward.Roads[0].Name, backward.Roads[0].Name)

	assert.Equal(t, forward.Graph.Len(), backward.Graph.Len())
	assert.Equal(t, roadShape(forward.Graph, forward.Identifiers), roadShape(backward.Graph, backward.Identifiers))
}

func TestBuildMissingJunctionKey(t *testing.T) {
	src := scenarioSources(t)
	src.Junctions = mustTable(t, SOURCE_JUNCTIONS, COLUMN_JUNCTION_ID, "ID;LAT;LON", "1;43.7;-79.4")
	_, err := NewConverter().Build(src)
	require.Error(t, err)
	assert.Equal(t, ErrMissingKeyColumn, errors.Cause(err))
}

// roadShape maps road name onto its sorted member links, ignoring road identifiers
func roadShape(graph *Graph, ids *Identifiers) map[string][]string {
	shape := map[string][]string{}
	roadType := resource(ids.Term(CLASS_ROAD))
	for _, st := range graph.Match("", ids.Term(RDF_TYPE)) {
		if st.Object != roadType {
			continue
		}
		names := graph.Match(st.Subject, ids.Term(PRED_HAS_NAME))
		if len(names) != 1 {
			continue
		}
		members := []string{}
		for _, part := range graph.Match(st.Subject, ids.Term(PRED_HAS_PROPER_PART)) {
			members = append(members, part.Object.Value)
		}
		sort.Strings(members)
		shape[names[0].Object.Value] = members
	}
	return shape
}
