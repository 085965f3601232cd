package orn2ttl

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// OutputFormat is serialization of statement graph
type OutputFormat uint16

const (
	OUTPUT_TURTLE = OutputFormat(iota + 1)
	OUTPUT_NTRIPLES
	OUTPUT_PARQUET
)

func (iotaIdx OutputFormat) String() string {
	return [...]string{"turtle", "ntriples", "parquet"}[iotaIdx-1]
}

func getOutputFormat(str string) OutputFormat {
	switch strings.ToLower(str) {
	case "turtle", "ttl", "":
		return OUTPUT_TURTLE
	case "ntriples", "nt":
		return OUTPUT_NTRIPLES
	case "parquet":
		return OUTPUT_PARQUET
	}
	return 0
}

// WriteGraph serializes graph into fname. Output appears only when serialization succeeded as a whole
func WriteGraph(graph *Graph, ids *Identifiers, format OutputFormat, fname string) error {
	st := time.Now()
	log.Infof("Writing %d statements to '%s' (%s)...", graph.Len(), fname, format)

	dir := filepath.Dir(fname)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(fname)+".tmp-*")
	if err != nil {
		return errors.Wrap(err, "Can't create temporary file")
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	switch format {
	case OUTPUT_TURTLE:
		err = writeTurtle(tmp, graph, ids)
	case OUTPUT_NTRIPLES:
		err = writeNTriples(tmp, graph)
	case OUTPUT_PARQUET:
		// parquet file writer owns its own handle
		tmp.Close()
		err = writeParquet(tmpName, graph)
	default:
		tmp.Close()
		return errors.Wrapf(ErrUnsupportedFormat, "output format %d", format)
	}
	if format != OUTPUT_PARQUET {
		if cerr := tmp.Close(); err == nil && cerr != nil {
			err = errors.Wrap(cerr, "Can't close temporary file")
		}
	}
	if err != nil {
		return errors.Wrapf(err, "Can't write %s output", format)
	}
	if err = os.Chmod(tmpName, 0644); err != nil {
		return errors.Wrap(err, "Can't set output permissions")
	}
	if err = os.Rename(tmpName, fname); err != nil {
		return errors.Wrap(err, "Can't move output into place")
	}
	log.Infof("Done writing output in %v", time.Since(st))
	return nil
}
