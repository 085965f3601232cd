package orn2ttl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalKey(t *testing.T) {
	cases := []struct {
		raw      string
		expected string
	}{
		{"123", "123"},
		{"123.0", "123"},
		{" 123.00 ", "123"},
		{"123.5", "123.5"},
		{"abc-1", "abc-1"},
		{"", ""},
		{"  ", ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.expected, CanonicalKey(c.raw), "raw value '%s'", c.raw)
	}
}

func TestReadTable(t *testing.T) {
	table := mustTable(t, SOURCE_SPEED_LIMITS, COLUMN_ATTRIBUTE_KEY,
		"\ufeffORN_ROAD_NET_ELEMENT_ID;SPEED_LIMIT;NOTE",
		"1001.0;50;",
		"1002;60;nan",
		"1002;70;second",
		"1003",
	)
	require.True(t, table.HasKey())
	assert.Equal(t, []string{COLUMN_ATTRIBUTE_KEY, COLUMN_SPEED_LIMIT, "NOTE"}, table.Columns)
	assert.Len(t, table.Rows, 4)

	assert.Equal(t, []int{0}, table.Lookup("1001"))
	assert.Equal(t, []int{1, 2}, table.Lookup("1002"))
	assert.Empty(t, table.Lookup("9999"))

	assert.Equal(t, Present("50"), table.Value(0, COLUMN_SPEED_LIMIT))
	assert.False(t, table.Value(0, "NOTE").IsPresent())
	assert.False(t, table.Value(1, "NOTE").IsPresent())
	assert.False(t, table.Value(3, COLUMN_SPEED_LIMIT).IsPresent())
	assert.False(t, table.Value(0, "NO_SUCH_COLUMN").IsPresent())
}

func TestReadTableWithoutKey(t *testing.T) {
	table := mustTable(t, SOURCE_ADDRESS_INFO, COLUMN_ATTRIBUTE_KEY,
		"ADDRESS_ID;STREET",
		"1;King",
	)
	assert.False(t, table.HasKey())
	assert.Nil(t, table.Lookup("1"))
}

func TestNonEmpty(t *testing.T) {
	for _, raw := range []string{"", "  ", "nan", "NaN", "None", "null"} {
		assert.False(t, nonEmpty(raw).IsPresent(), "raw value '%s'", raw)
	}
	v, ok := nonEmpty(" King Street ").Get()
	assert.True(t, ok)
	assert.Equal(t, "King Street", v)
}
