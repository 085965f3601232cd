package orn2ttl

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/reader"
)

func writerFixture() (*Graph, *Identifiers) {
	emitter, graph, ids := newTestEmitter()
	emitter.EmitRoadSegment(&RoadSegment{
		ElementID:  "1",
		Geom:       torontoLine(0),
		StreetName: Present("Queen \"East\"\nStreet"),
		SpeedLimit: Present(int64(40)),
	})
	graph.Add(Statement{ids.Entity(ENTITY_ROAD_LINK, "a b"), ids.Term(RDFS_LABEL), Object{Kind: OBJECT_LITERAL, Value: "plain"}})
	return graph, ids
}

func TestWriteTurtle(t *testing.T) {
	graph, ids := writerFixture()
	fname := filepath.Join(t.TempDir(), "out.ttl")
	require.NoError(t, WriteGraph(graph, ids, OUTPUT_TURTLE, fname))

	data, err := os.ReadFile(fname)
	require.NoError(t, err)
	text := string(data)

	assert.Contains(t, text, "@prefix cdt: <http://ontology.eil.utoronto.ca/CDT#> .\n")
	assert.Contains(t, text, "\ncdt:roadLink_1\n    a cdt:RoadLink ;")
	assert.Contains(t, text, `genprop:hasName "Queen \"East\"\nStreet"^^xsd:string`)
	assert.Contains(t, text, `<http://ontology.eil.utoronto.ca/CDT#roadLink_a%20b>`)
	assert.Contains(t, text, `rdfs:label "plain" .`)
	// every subject block is terminated
	assert.Equal(t, strings.Count(text, "\n\n"), strings.Count(text, " .\n")-len(ids.Namespaces()))
}

func TestWriteNTriples(t *testing.T) {
	graph, ids := writerFixture()
	fname := filepath.Join(t.TempDir(), "out.nt")
	require.NoError(t, WriteGraph(graph, ids, OUTPUT_NTRIPLES, fname))

	data, err := os.ReadFile(fname)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	assert.Len(t, lines, graph.Len())
	for _, line := range lines {
		assert.True(t, strings.HasPrefix(line, "<"), line)
		assert.True(t, strings.HasSuffix(line, " ."), line)
	}
	assert.Contains(t, lines, "<http://ontology.eil.utoronto.ca/CDT#roadLink_1> <"+string(ids.Term(RDF_TYPE))+"> <http://ontology.eil.utoronto.ca/CDT#RoadLink> .")
}

func TestWriteParquet(t *testing.T) {
	graph, ids := writerFixture()
	fname := filepath.Join(t.TempDir(), "out.parquet")
	require.NoError(t, WriteGraph(graph, ids, OUTPUT_PARQUET, fname))

	fr, err := local.NewLocalFileReader(fname)
	require.NoError(t, err)
	defer fr.Close()
	pr, err := reader.NewParquetReader(fr, new(StatementRow), 4)
	require.NoError(t, err)
	defer pr.ReadStop()

	numRows := int(pr.GetNumRows())
	require.Equal(t, graph.Len(), numRows)
	rows := make([]StatementRow, numRows)
	require.NoError(t, pr.Read(&rows))

	first := graph.Statements()[0]
	assert.Equal(t, string(first.Subject), rows[0].Subject)
	assert.Equal(t, string(first.Predicate), rows[0].Predicate)
	assert.Equal(t, first.Object.Value, rows[0].Object)
	assert.Equal(t, first.Object.Kind.String(), rows[0].ObjectKind)
}

func TestWriteGraphLeavesNoTemporaryFiles(t *testing.T) {
	graph, ids := writerFixture()
	dir := t.TempDir()
	fname := filepath.Join(dir, "out.ttl")
	require.NoError(t, WriteGraph(graph, ids, OUTPUT_TURTLE, fname))

	err := WriteGraph(graph, ids, OutputFormat(99), filepath.Join(dir, "bad.out"))
	require.Error(t, err)
	assert.Equal(t, ErrUnsupportedFormat, errors.Cause(err))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "out.ttl", entries[0].Name())
}

func TestWriteGraphPermissions(t *testing.T) {
	graph, ids := writerFixture()
	dir := t.TempDir()
	for _, format := range []OutputFormat{OUTPUT_TURTLE, OUTPUT_NTRIPLES, OUTPUT_PARQUET} {
		fname := filepath.Join(dir, "out."+format.String())
		require.NoError(t, WriteGraph(graph, ids, format, fname))
		info, err := os.Stat(fname)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0644), info.Mode().Perm(), "format %s", format)
	}
}

func TestGraphSetSemantics(t *testing.T) {
	graph := NewGraph()
	st := Statement{"http://a", "http://p", Object{Kind: OBJECT_IRI, Value: "http://b"}}
	graph.Add(st)
	graph.Add(st)
	assert.Equal(t, 1, graph.Len())
	assert.True(t, graph.Contains(st))
	assert.Len(t, graph.Match("http://a", ""), 1)
	assert.Empty(t, graph.Match("http://b", ""))
}

func TestGetOutputFormat(t *testing.T) {
	assert.Equal(t, OUTPUT_TURTLE, getOutputFormat("ttl"))
	assert.Equal(t, OUTPUT_NTRIPLES, getOutputFormat("NTriples"))
	assert.Equal(t, OUTPUT_PARQUET, getOutputFormat("parquet"))
	assert.Equal(t, OutputFormat(0), getOutputFormat("xml"))
}
