package orn2ttl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLinkDirection(t *testing.T) {
	cases := []struct {
		raw     string
		parsed  LinkDirection
		emitted LinkDirection
	}{
		{"Positive", DIRECTION_FORWARD, DIRECTION_FORWARD},
		{"Negative", DIRECTION_REVERSE, DIRECTION_REVERSE},
		{"Both", DIRECTION_BIDIRECTIONAL, DIRECTION_BIDIRECTIONAL},
		{"Bi-directional", DIRECTION_BIDIRECTIONAL, DIRECTION_BIDIRECTIONAL},
		{"Sideways", DIRECTION_UNRECOGNIZED, DIRECTION_BIDIRECTIONAL},
		{"positive", DIRECTION_UNRECOGNIZED, DIRECTION_BIDIRECTIONAL},
	}
	for _, c := range cases {
		parsed := getLinkDirection(c.raw)
		assert.Equal(t, c.parsed, parsed, "raw value '%s'", c.raw)
		assert.Equal(t, c.emitted, parsed.Emitted(), "raw value '%s'", c.raw)
	}
}

func TestFlags(t *testing.T) {
	assert.Equal(t, FLAG_TRUE, getFlag(tollRoadFlags, "Yes"))
	assert.Equal(t, FLAG_FALSE, getFlag(tollRoadFlags, "No"))
	assert.Equal(t, FLAG_UNRECOGNIZED, getFlag(tollRoadFlags, "Maybe"))
	assert.Equal(t, FLAG_TRUE, getFlag(pavementFlags, "Paved"))
	assert.Equal(t, FLAG_FALSE, getFlag(pavementFlags, "Unpaved"))

	assert.True(t, FLAG_TRUE.Bool())
	assert.False(t, FLAG_FALSE.Bool())
	assert.False(t, FLAG_UNRECOGNIZED.Bool())
}

func TestNewRoadSegmentIssues(t *testing.T) {
	elements := []ElementRecord{element("7", torontoLine(0), map[string]string{
		COLUMN_DIRECTION:     "Sideways",
		COLUMN_CREDATE:       "2021-07-31",
		COLUMN_LENGTH:        "abc",
		COLUMN_TOLL_ROAD:     "No",
		COLUMN_FROM_JUNCTION: "10.0",
	})}
	rows := Join(elements, nil)
	seg, issues := NewRoadSegment(rows[0])

	assert.Equal(t, Present(DIRECTION_UNRECOGNIZED), seg.Direction)
	assert.False(t, seg.CreationDate.IsPresent())
	assert.False(t, seg.Length.IsPresent())
	assert.Equal(t, Present(FLAG_FALSE), seg.TollRoad)
	assert.Equal(t, Present("10"), seg.FromJunction)

	kinds := map[string]IssueKind{}
	for _, issue := range issues {
		assert.Equal(t, "7", issue.RecordID)
		kinds[issue.Field] = issue.Kind
	}
	assert.Equal(t, map[string]IssueKind{
		COLUMN_DIRECTION: ISSUE_UNRECOGNIZED,
		COLUMN_CREDATE:   ISSUE_UNPARSEABLE,
		COLUMN_LENGTH:    ISSUE_UNPARSEABLE,
	}, kinds)
}
