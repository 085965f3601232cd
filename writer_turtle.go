package orn2ttl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
)

var literalEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

func quoteLiteral(v string) string {
	return `"` + literalEscaper.Replace(v) + `"`
}

// writeTurtle writes prefixed Turtle. Statements are grouped by subject in order of first appearance
func writeTurtle(w io.Writer, graph *Graph, ids *Identifiers) error {
	bw := bufio.NewWriter(w)
	for _, ns := range ids.Namespaces() {
		fmt.Fprintf(bw, "@prefix %s: <%s> .\n", ns.Prefix, ns.Base)
	}

	order := []IRI{}
	bySubject := make(map[IRI][]Statement)
	for _, st := range graph.Statements() {
		if _, ok := bySubject[st.Subject]; !ok {
			order = append(order, st.Subject)
		}
		bySubject[st.Subject] = append(bySubject[st.Subject], st)
	}

	rdfType := ids.Term(RDF_TYPE)
	for _, subject := range order {
		fmt.Fprintf(bw, "\n%s", turtleTerm(subject, ids))
		statements := bySubject[subject]
		for i, st := range statements {
			predicate := turtleTerm(st.Predicate, ids)
			if st.Predicate == rdfType {
				predicate = "a"
			}
			sep := " ;"
			if i == len(statements)-1 {
				sep = " ."
			}
			fmt.Fprintf(bw, "\n    %s %s%s", predicate, turtleObject(st.Object, ids), sep)
		}
		bw.WriteString("\n")
	}
	if err := bw.Flush(); err != nil {
		return errors.Wrap(err, "Can't flush turtle")
	}
	return nil
}

func turtleTerm(iri IRI, ids *Identifiers) string {
	if compact, ok := ids.Compact(iri); ok {
		return compact
	}
	return "<" + string(iri) + ">"
}

func turtleObject(obj Object, ids *Identifiers) string {
	if obj.Kind == OBJECT_IRI {
		return turtleTerm(IRI(obj.Value), ids)
	}
	if obj.Datatype == "" {
		return quoteLiteral(obj.Value)
	}
	return quoteLiteral(obj.Value) + "^^" + turtleTerm(obj.Datatype, ids)
}
