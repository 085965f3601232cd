package orn2ttl

import (
	"strconv"
	"time"

	"github.com/paulmach/orb/encoding/wkt"
)

// Emitter maps junctions, segments and roads onto statements of the road network ontology
type Emitter struct {
	sink StatementSink
	ids  *Identifiers
	lit  literalFactory
}

// NewEmitter returns emitter writing into sink. Identifiers are built by ids only
func NewEmitter(sink StatementSink, ids *Identifiers) *Emitter {
	return &Emitter{
		sink: sink,
		ids:  ids,
		lit:  newLiteralFactory(ids),
	}
}

// whenPresent calls emit only for present values: absent field produces no statement
func whenPresent[T any](opt Optional[T], emit func(T)) {
	if v, ok := opt.Get(); ok {
		emit(v)
	}
}

func (e *Emitter) add(subject IRI, predicate Term, object Object) {
	e.sink.Add(Statement{Subject: subject, Predicate: e.ids.Term(predicate), Object: object})
}

func (e *Emitter) link(subject IRI, predicate Term, object IRI) {
	e.add(subject, predicate, resource(object))
}

func (e *Emitter) isA(subject IRI, class Term) {
	e.link(subject, RDF_TYPE, e.ids.Term(class))
}

// EmitSchema asserts class hierarchy and link direction individuals
func (e *Emitter) EmitSchema() {
	for _, axiom := range subClassAxioms {
		e.link(e.ids.Term(axiom[0]), RDFS_SUBCLASS_OF, e.ids.Term(axiom[1]))
	}
	for _, direction := range []LinkDirection{DIRECTION_FORWARD, DIRECTION_REVERSE, DIRECTION_BIDIRECTIONAL} {
		individual := e.ids.Term(linkDirectionTerms[direction])
		e.isA(individual, CLASS_LINK_DIRECTION)
		e.add(individual, RDFS_LABEL, e.lit.Plain(linkDirectionLabels[direction]))
	}
}

// EmitJunction writes junction node with its location and optional attributes
func (e *Emitter) EmitJunction(junction *Junction) IRI {
	key := junction.Key()
	subject := e.ids.Entity(ENTITY_JUNCTION, key)
	e.isA(subject, CLASS_JUNCTION)
	e.add(subject, PRED_HAS_IDENTIFIER, e.lit.Integer(junction.ID))

	location := e.ids.Entity(ENTITY_JUNCTION_LOCATION, key)
	e.link(subject, PRED_HAS_LOCATION, location)
	e.isA(location, CLASS_LOCATION)
	e.add(location, PRED_AS_WKT, e.lit.WKT(wkt.MarshalString(junction.Geom)))

	whenPresent(junction.JunctionType, func(v string) {
		e.emitCodedAttribute(subject, PRED_HAS_JUNCTION_TYPE, CLASS_JUNCTION_TYPE, ENTITY_JUNCTION_TYPE, ENTITY_JUNCTION_TYPE_CODE, key, v)
	})
	whenPresent(junction.ExitNumber, func(v string) {
		e.add(subject, PRED_EXIT_NUMBER, e.lit.String(v))
	})
	whenPresent(junction.NationalID, func(v string) {
		e.add(subject, PRED_NATION_UUID, e.lit.String(v))
	})
	whenPresent(junction.EffectiveDate, func(v time.Time) {
		e.add(subject, PRED_EFFECTIVE_DATE, e.lit.Date(v))
	})
	return subject
}

// EmitRoadSegment writes road link with every present attribute. Road membership and junction edges are emitted separately
func (e *Emitter) EmitRoadSegment(seg *RoadSegment) IRI {
	id := seg.ElementID
	subject := e.ids.Entity(ENTITY_ROAD_LINK, id)
	user := e.ids.Entity(ENTITY_ROAD_LINK_USER, id)

	e.isA(subject, CLASS_ROAD_LINK)
	e.add(subject, PRED_HAS_IDENTIFIER, e.lit.String(id))
	e.link(subject, PRED_USED_BY, user)
	e.link(user, PRED_USES, subject)

	if !isEmptyGeometry(seg.Geom) {
		location := e.ids.Entity(ENTITY_ROAD_LINK_LOCATION, id)
		e.isA(location, CLASS_LOCATION)
		e.add(location, PRED_AS_WKT, e.lit.WKT(wkt.MarshalString(seg.Geom)))
		e.link(subject, PRED_HAS_LOCATION, location)
	}

	whenPresent(seg.SpeedLimit, func(v int64) {
		speed := e.emitMeasure(CLASS_SPEED, CLASS_KILOMETERS_PER_HOUR, ENTITY_SPEED, ENTITY_SPEED_UNIT, ENTITY_SPEED_MEASURE, id, e.lit.Integer(v))
		e.link(user, PRED_SPEED_LIMIT, speed)
	})
	whenPresent(seg.Length, func(v float64) {
		length := e.emitMeasure(CLASS_LENGTH, CLASS_METERS, ENTITY_LENGTH, ENTITY_LENGTH_UNIT, ENTITY_LENGTH_MEASURE, id, e.lit.Decimal(v))
		e.link(subject, PRED_LENGTH, length)
	})
	whenPresent(seg.Accuracy, func(v float64) {
		accuracy := e.emitMeasure(CLASS_LENGTH, CLASS_METERS, ENTITY_ACCURACY, ENTITY_ACCURACY_UNIT, ENTITY_ACCURACY_MEASURE, id, e.lit.Decimal(v))
		e.link(subject, PRED_ROAD_ABSOLUTE_ACCURACY, accuracy)
	})
	whenPresent(seg.NationalID, func(v string) {
		e.add(subject, PRED_NATION_UUID, e.lit.String(v))
	})
	whenPresent(seg.SurfaceType, func(v string) {
		e.emitCodedAttribute(subject, PRED_HAS_SURFACE_TYPE, CLASS_SURFACE_TYPE, ENTITY_SURFACE_TYPE, ENTITY_SURFACE_TYPE_CODE, id, v)
	})
	whenPresent(seg.Direction, func(v LinkDirection) {
		e.link(subject, PRED_ALLOWED_DIRECTIONS, e.ids.Term(linkDirectionTerms[v.Emitted()]))
	})
	whenPresent(seg.ExitNumber, func(v string) {
		e.add(subject, PRED_EXIT_NUM, e.lit.String(v))
	})
	whenPresent(seg.TollRoad, func(v Flag) {
		e.add(subject, PRED_TOLL_ROAD, e.lit.Boolean(v.Bool()))
	})
	whenPresent(seg.AcquisitionTechnique, func(v string) {
		e.emitCodedAttribute(subject, PRED_HAS_ACQUISITION_TECH, CLASS_ACQUISITION_TECHNIQUE, ENTITY_ACQUISITION_TECHNIQUE, ENTITY_ACQUISITION_TECHNIQUE_CODE, id, v)
	})
	whenPresent(seg.RoadClass, func(v string) {
		e.emitCodedAttribute(subject, PRED_ROAD_CLASS, CLASS_ROAD_CLASS, ENTITY_ROAD_CLASS, ENTITY_ROAD_CLASS_CODE, id, v)
	})
	whenPresent(seg.StreetName, func(v string) {
		e.add(subject, PRED_HAS_NAME, e.lit.String(v))
	})
	whenPresent(seg.BlockedPassage, func(v string) {
		e.emitCodedAttribute(subject, PRED_HAS_BLOCKED_PASSAGE, CLASS_BLOCKED_PASSAGE_TYPE, ENTITY_BLOCKED_PASSAGE, ENTITY_BLOCKED_PASSAGE_CODE, id, v)
	})
	whenPresent(seg.Jurisdiction, func(string) {
		e.emitOrganization(subject, id)
	})
	whenPresent(seg.Lanes, func(v int64) {
		e.add(subject, PRED_NUM_LANES, e.lit.Integer(v))
	})
	whenPresent(seg.Paved, func(v Flag) {
		e.add(subject, PRED_PAVEMENT_STATUS, e.lit.Boolean(v.Bool()))
	})
	whenPresent(seg.RouteName, func(v string) {
		e.add(subject, PRED_ROUTE_NAME, e.lit.String(v))
	})
	whenPresent(seg.RouteNumber, func(v string) {
		e.add(subject, PRED_ROUTE_NUMBER, e.lit.String(v))
	})
	whenPresent(seg.StructureType, func(v string) {
		e.emitCodedAttribute(subject, PRED_HAS_STRUCTURE_TYPE, CLASS_STRUCTURE_TYPE, ENTITY_STRUCTURE_TYPE, ENTITY_STRUCTURE_TYPE_CODE, id, v)
	})
	whenPresent(seg.TollPointType, func(v string) {
		e.emitCodedAttribute(subject, PRED_HAS_TOLL_POINT_TYPE, CLASS_TOLL_POINT_TYPE, ENTITY_TOLL_POINT_TYPE, ENTITY_TOLL_POINT_TYPE_CODE, id, v)
	})
	whenPresent(seg.UnderpassType, func(v string) {
		e.emitCodedAttribute(subject, PRED_HAS_UNDERPASS_TYPE, CLASS_UNDERPASS_TYPE, ENTITY_UNDERPASS_TYPE, ENTITY_UNDERPASS_TYPE_CODE, id, v)
	})

	dates := []struct {
		value     Optional[time.Time]
		predicate Term
	}{
		{seg.CreationDate, PRED_CREATION_DATE},
		{seg.RevisionDate, PRED_REVISION_DATE},
		{seg.GeoUpdateDate, PRED_GEO_UPDATE_DATE},
		{seg.EffectiveDate, PRED_EFFECTIVE_DATE},
	}
	for _, date := range dates {
		predicate := date.predicate
		whenPresent(date.value, func(v time.Time) {
			e.add(subject, predicate, e.lit.Date(v))
		})
	}
	return subject
}

// EmitRoad writes road entity and part-whole relations with its segments
func (e *Emitter) EmitRoad(road *Road) IRI {
	if len(road.Segments) == 0 {
		return ""
	}
	subject := e.ids.Entity(ENTITY_ROAD, strconv.Itoa(road.ID))
	e.isA(subject, CLASS_ROAD)
	e.add(subject, PRED_HAS_NAME, e.lit.String(road.Name))
	for _, seg := range road.Segments {
		link := e.ids.Entity(ENTITY_ROAD_LINK, seg.ElementID)
		e.link(subject, PRED_HAS_PROPER_PART, link)
		e.link(link, PRED_PROPER_PART_OF, subject)
	}
	return subject
}

// EmitJunctionEdge writes segment-junction connection with the inverse predicate on junction side.
// Target junction is referenced by identifier even if it has not been materialized
func (e *Emitter) EmitJunctionEdge(edge JunctionEdge) {
	link := e.ids.Entity(ENTITY_ROAD_LINK, edge.Segment.ElementID)
	junction := e.ids.Entity(ENTITY_JUNCTION, edge.JunctionKey)
	switch edge.Role {
	case JUNCTION_FROM:
		e.link(link, PRED_FROM, junction)
		e.link(junction, PRED_EGRESS, link)
	case JUNCTION_TO:
		e.link(link, PRED_TO, junction)
		e.link(junction, PRED_INGRESS, link)
	}
}

// emitCodedAttribute writes controlled-vocabulary value: owner -> attribute -> code -> name
func (e *Emitter) emitCodedAttribute(owner IRI, predicate, class Term, attrKind, codeKind EntityKind, id, value string) {
	attr := e.ids.Entity(attrKind, id)
	code := e.ids.Entity(codeKind, id)
	e.link(owner, predicate, attr)
	e.isA(attr, class)
	e.link(attr, PRED_HAS_CODE, code)
	e.isA(code, CLASS_CODE)
	e.add(code, PRED_HAS_NAME, e.lit.String(value))
}

// emitMeasure writes quantity -> measure -> (value, unit) and returns quantity
func (e *Emitter) emitMeasure(quantityClass, unitClass Term, quantityKind, unitKind, measureKind EntityKind, id string, value Object) IRI {
	quantity := e.ids.Entity(quantityKind, id)
	unit := e.ids.Entity(unitKind, id)
	measure := e.ids.Entity(measureKind, id)
	e.isA(measure, CLASS_MEASURE)
	e.isA(quantity, quantityClass)
	e.isA(unit, unitClass)
	e.link(quantity, PRED_VALUE, measure)
	e.link(measure, PRED_UNIT_OF_MEASURE, unit)
	e.add(measure, PRED_NUMERICAL_VALUE, value)
	return quantity
}

// emitOrganization writes jurisdiction body as custodian of segment
func (e *Emitter) emitOrganization(link IRI, id string) {
	org := e.ids.Entity(ENTITY_GOVERNMENT_ORGANIZATION, id)
	e.isA(org, CLASS_GOVERNMENT_ORGANIZATION)
	e.link(org, PRED_RESPONSIBLE_FOR, link)
	e.link(link, PRED_HAS_CUSTODIAN, org)
}
