package orn2ttl

import (
	"bufio"
	"io"

	"github.com/pkg/errors"
)

func writeNTriples(w io.Writer, graph *Graph) error {
	bw := bufio.NewWriter(w)
	for _, st := range graph.Statements() {
		bw.WriteString(ntriplesLine(st))
	}
	if err := bw.Flush(); err != nil {
		return errors.Wrap(err, "Can't flush n-triples")
	}
	return nil
}

func ntriplesLine(st Statement) string {
	return "<" + string(st.Subject) + "> <" + string(st.Predicate) + "> " + ntriplesObject(st.Object) + " .\n"
}

func ntriplesObject(obj Object) string {
	if obj.Kind == OBJECT_IRI {
		return "<" + obj.Value + ">"
	}
	if obj.Datatype == "" {
		return quoteLiteral(obj.Value)
	}
	return quoteLiteral(obj.Value) + "^^<" + string(obj.Datatype) + ">"
}
