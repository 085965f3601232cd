package orn2ttl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJoinPrecedence(t *testing.T) {
	elements := []ElementRecord{
		element("1", torontoLine(0), map[string]string{COLUMN_LENGTH: "12.5"}),
		element("2", torontoLine(0.01), nil),
	}
	speed := mustTable(t, SOURCE_SPEED_LIMITS, COLUMN_ATTRIBUTE_KEY,
		"ORN_ROAD_NET_ELEMENT_ID;SPEED_LIMIT;LENGTH;EXTRA",
		"1.0;50;999;from-speed",
	)
	classes := mustTable(t, SOURCE_ROAD_CLASSES, COLUMN_ATTRIBUTE_KEY,
		"ORN_ROAD_NET_ELEMENT_ID;ROAD_CLASS;EXTRA",
		"1;Arterial;from-class",
		"2;Local;from-class",
	)
	rows := Join(elements, []*Table{speed, classes})
	require.Len(t, rows, 2)

	first := rows[0]
	assert.Equal(t, Present("12.5"), first.First(COLUMN_LENGTH), "base column must win")
	assert.Equal(t, Present("999"), first.Attr(SOURCE_SPEED_LIMITS, COLUMN_LENGTH))
	assert.Equal(t, Present("from-speed"), first.First("EXTRA"), "first joined source must win")
	assert.Equal(t, Present("from-class"), first.Attr(SOURCE_ROAD_CLASSES, "EXTRA"))
	assert.Equal(t, Present("50"), first.Attr(SOURCE_SPEED_LIMITS, COLUMN_SPEED_LIMIT))
	assert.Contains(t, first.Columns(), "EXTRA_speed_limits")
	assert.Contains(t, first.Columns(), "EXTRA_road_classes")

	second := rows[1]
	assert.False(t, second.Attr(SOURCE_SPEED_LIMITS, COLUMN_SPEED_LIMIT).IsPresent())
	assert.Equal(t, Present("from-class"), second.First("EXTRA"))
	assert.Equal(t, Present("Local"), second.Attr(SOURCE_ROAD_CLASSES, COLUMN_ROAD_CLASS))
}

func TestJoinDuplicateKeys(t *testing.T) {
	elements := []ElementRecord{
		element("1", torontoLine(0), nil),
		element("2", torontoLine(0.01), nil),
	}
	names := mustTable(t, SOURCE_ROAD_NAMES, COLUMN_ATTRIBUTE_KEY,
		"ORN_ROAD_NET_ELEMENT_ID;FULL_STREET_NAME",
		"1;Yonge Street",
		"1;Yonge St",
	)
	lanes := mustTable(t, SOURCE_NUM_LANES, COLUMN_ATTRIBUTE_KEY,
		"ORN_ROAD_NET_ELEMENT_ID;NUMBER_OF_LANES",
		"1;4",
	)
	rows := Join(elements, []*Table{names, lanes})
	require.Len(t, rows, 3)

	streetNames := []string{}
	for _, row := range rows[:2] {
		assert.Equal(t, "1", row.Element.ID)
		assert.Equal(t, Present("4"), row.Attr(SOURCE_NUM_LANES, COLUMN_NUMBER_OF_LANES))
		streetNames = append(streetNames, row.Attr(SOURCE_ROAD_NAMES, COLUMN_FULL_STREET_NAME).OrElse(""))
	}
	assert.ElementsMatch(t, []string{"Yonge Street", "Yonge St"}, streetNames)
	assert.Equal(t, "2", rows[2].Element.ID)
}

func TestJoinSkipsTablesWithoutKey(t *testing.T) {
	elements := []ElementRecord{element("1", torontoLine(0), nil)}
	junctions := mustTable(t, SOURCE_JUNCTIONS, COLUMN_ATTRIBUTE_KEY,
		"JUNCTION_ID;LATITUDE_DECIMAL_DEGREES;LONGITUDE_DECIMAL_DEGREES",
		"1;43.7;-79.4",
	)
	rows := Join(elements, []*Table{junctions})
	require.Len(t, rows, 1)
	assert.Empty(t, rows[0].Columns())
}
