package orn2ttl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentifiers(t *testing.T) {
	ids := NewIdentifiers(map[string]string{"cdt": "http://example.org/cdt#"})

	assert.Equal(t, IRI("http://example.org/cdt#roadLink_1001"), ids.Entity(ENTITY_ROAD_LINK, "1001"))
	assert.Equal(t, IRI("http://example.org/cdt#road_7"), ids.Entity(ENTITY_ROAD, "7"))
	assert.Equal(t, IRI(DefaultNamespaces["loc"]+"junction_loc_5"), ids.Entity(ENTITY_JUNCTION_LOCATION, "5"))
	assert.Equal(t, IRI("http://example.org/cdt#roadLink_a%20b"), ids.Entity(ENTITY_ROAD_LINK, "a b"))
	assert.Equal(t, IRI(DefaultNamespaces["rdf"]+"type"), ids.Term(RDF_TYPE))

	compact, ok := ids.Compact(ids.Entity(ENTITY_ROAD_LINK, "1001"))
	assert.True(t, ok)
	assert.Equal(t, "cdt:roadLink_1001", compact)

	_, ok = ids.Compact(ids.Entity(ENTITY_ROAD_LINK, "a b"))
	assert.False(t, ok)
	_, ok = ids.Compact("http://unknown.org/x")
	assert.False(t, ok)

	prefixes := []string{}
	for _, ns := range ids.Namespaces() {
		prefixes = append(prefixes, ns.Prefix)
	}
	assert.IsIncreasing(t, prefixes)
	assert.Len(t, prefixes, len(DefaultNamespaces))
}
