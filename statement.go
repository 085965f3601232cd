package orn2ttl

import (
	"strconv"
	"time"
)

// ObjectKind tells whether statement object is a resource or a literal
type ObjectKind uint16

const (
	OBJECT_IRI = ObjectKind(iota + 1)
	OBJECT_LITERAL
)

func (iotaIdx ObjectKind) String() string {
	return [...]string{"iri", "literal"}[iotaIdx-1]
}

// Object is a statement object: IRI or typed literal
type Object struct {
	Kind     ObjectKind
	Value    string
	Datatype IRI
}

// Statement is a single (subject, predicate, object) triple
type Statement struct {
	Subject   IRI
	Predicate IRI
	Object    Object
}

// StatementSink accepts statements. Sinks are append-only
type StatementSink interface {
	Add(statement Statement)
}

// Graph is in-memory append-only sink with RDF set semantics: exact duplicates are ignored
type Graph struct {
	statements []Statement
	seen       map[Statement]struct{}
}

// NewGraph returns empty graph
func NewGraph() *Graph {
	return &Graph{
		statements: []Statement{},
		seen:       make(map[Statement]struct{}),
	}
}

// Add appends statement unless it is already present
func (g *Graph) Add(statement Statement) {
	if _, ok := g.seen[statement]; ok {
		return
	}
	g.seen[statement] = struct{}{}
	g.statements = append(g.statements, statement)
}

// Contains reports whether statement has been added
func (g *Graph) Contains(statement Statement) bool {
	_, ok := g.seen[statement]
	return ok
}

// Statements returns statements in insertion order
func (g *Graph) Statements() []Statement {
	return g.statements
}

// Len returns number of distinct statements
func (g *Graph) Len() int {
	return len(g.statements)
}

// Match returns statements with given subject and/or predicate. Empty argument matches anything
func (g *Graph) Match(subject, predicate IRI) []Statement {
	result := []Statement{}
	for _, st := range g.statements {
		if subject != "" && st.Subject != subject {
			continue
		}
		if predicate != "" && st.Predicate != predicate {
			continue
		}
		result = append(result, st)
	}
	return result
}

// literalFactory builds typed literals with datatype IRIs resolved once
type literalFactory struct {
	xsdString  IRI
	xsdInteger IRI
	xsdDecimal IRI
	xsdBoolean IRI
	xsdDate    IRI
	wkt        IRI
}

func newLiteralFactory(ids *Identifiers) literalFactory {
	return literalFactory{
		xsdString:  ids.Term(XSD_STRING),
		xsdInteger: ids.Term(XSD_INTEGER),
		xsdDecimal: ids.Term(XSD_DECIMAL),
		xsdBoolean: ids.Term(XSD_BOOLEAN),
		xsdDate:    ids.Term(XSD_DATE),
		wkt:        ids.Term(GEO_WKT_TYPE),
	}
}

func resource(iri IRI) Object {
	return Object{Kind: OBJECT_IRI, Value: string(iri)}
}

func (lf literalFactory) String(v string) Object {
	return Object{Kind: OBJECT_LITERAL, Value: v, Datatype: lf.xsdString}
}

func (lf literalFactory) Integer(v int64) Object {
	return Object{Kind: OBJECT_LITERAL, Value: strconv.FormatInt(v, 10), Datatype: lf.xsdInteger}
}

func (lf literalFactory) Decimal(v float64) Object {
	return Object{Kind: OBJECT_LITERAL, Value: strconv.FormatFloat(v, 'f', -1, 64), Datatype: lf.xsdDecimal}
}

func (lf literalFactory) Boolean(v bool) Object {
	return Object{Kind: OBJECT_LITERAL, Value: strconv.FormatBool(v), Datatype: lf.xsdBoolean}
}

func (lf literalFactory) Date(v time.Time) Object {
	return Object{Kind: OBJECT_LITERAL, Value: v.Format("2006-01-02"), Datatype: lf.xsdDate}
}

func (lf literalFactory) WKT(v string) Object {
	return Object{Kind: OBJECT_LITERAL, Value: v, Datatype: lf.wkt}
}

// Plain literal without datatype (used for rdfs:label)
func (lf literalFactory) Plain(v string) Object {
	return Object{Kind: OBJECT_LITERAL, Value: v}
}
