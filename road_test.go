package orn2ttl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateRoads(t *testing.T) {
	segments := []*RoadSegment{
		{ElementID: "1", StreetName: Present("Yonge Street")},
		{ElementID: "2", StreetName: Present("Bloor Street")},
		{ElementID: "3", StreetName: Present("Yonge Street")},
		{ElementID: "4"},
	}
	stats := Stats{}
	roads := AggregateRoads(segments, DEFAULT_FIRST_ROAD, &stats)
	require.Len(t, roads, 2)
	assert.Equal(t, 1, stats.SegmentsUnnamed)

	assert.Equal(t, DEFAULT_FIRST_ROAD, roads[0].ID)
	assert.Equal(t, "Yonge Street", roads[0].Name)
	assert.Equal(t, DEFAULT_FIRST_ROAD+1, roads[1].ID)
	assert.Equal(t, "Bloor Street", roads[1].Name)

	members := map[string]string{}
	for _, road := range roads {
		for _, seg := range road.Segments {
			_, seen := members[seg.ElementID]
			assert.False(t, seen, "segment '%s' belongs to several roads", seg.ElementID)
			members[seg.ElementID] = road.Name
			assert.Equal(t, Present(road.Name), seg.StreetName)
		}
	}
	assert.Equal(t, map[string]string{"1": "Yonge Street", "2": "Bloor Street", "3": "Yonge Street"}, members)
}

func TestRoadAggregatorFirstID(t *testing.T) {
	agg := NewRoadAggregator(100)
	road, ok := agg.Add(&RoadSegment{ElementID: "1", StreetName: Present("King Street")})
	require.True(t, ok)
	assert.Equal(t, 100, road.ID)
	_, ok = agg.Add(&RoadSegment{ElementID: "2"})
	assert.False(t, ok)
	assert.Len(t, agg.Roads(), 1)
}
