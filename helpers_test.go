package orn2ttl

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/require"
)

func mustTable(t *testing.T, source SourceName, keyColumn string, lines ...string) *Table {
	t.Helper()
	table, err := ReadTable(strings.NewReader(strings.Join(lines, "\n")+"\n"), source, keyColumn, ';')
	require.NoError(t, err)
	return table
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	fname := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(fname, []byte(content), 0644))
	return fname
}

func element(id string, geom orb.Geometry, attributes map[string]string) ElementRecord {
	attrs := map[string]string{COLUMN_ELEMENT_ID: id}
	for k, v := range attributes {
		attrs[k] = v
	}
	return ElementRecord{ID: id, Geom: geom, Attributes: attrs}
}

// torontoLine is a short line well inside default bounds
func torontoLine(shift float64) orb.LineString {
	return orb.LineString{{-79.40 + shift, 43.70 + shift}, {-79.39 + shift, 43.71 + shift}}
}
