package orn2ttl

import (
	"fmt"
	"net/url"
	"sort"
	"strings"
)

// IRI is an absolute identifier of graph resource
type IRI string

// Namespace binds prefix to base IRI
type Namespace struct {
	Prefix string
	Base   string
}

const (
	iso5087Part1 = "https://standards.iso.org/iso-iec/5087/-1/ed-1/en/ontology/"
	iso5087Part2 = "https://standards.iso.org/iso-iec/5087/-2/ed-1/en/ontology/"
	iso5087Part3 = "https://standards.iso.org/iso-iec/5087/-3/ed-1/en/ontology/"
)

// DefaultNamespaces is a prefix table of City Digital Twin road network ontology
var DefaultNamespaces = map[string]string{
	"rdf":         "http://www.w3.org/1999/02/22-rdf-syntax-ns#",
	"rdfs":        "http://www.w3.org/2000/01/rdf-schema#",
	"xsd":         "http://www.w3.org/2001/XMLSchema#",
	"geo":         "http://www.opengis.net/ont/geosparql#",
	"transnet":    iso5087Part3 + "TransportationNetwork/",
	"road":        iso5087Part3 + "RoadNetwork/",
	"transinfras": iso5087Part2 + "TransportationInfrastructure/",
	"infras":      iso5087Part2 + "Infrastructure/",
	"org_city":    iso5087Part2 + "Organization/",
	"code":        iso5087Part2 + "Code/",
	"city":        iso5087Part2 + "City/",
	"contact":     iso5087Part2 + "Contact/",
	"loc":         iso5087Part1 + "SpatialLoc/",
	"partwhole":   iso5087Part1 + "Mereology/",
	"cityunits":   iso5087Part1 + "CityUnits/",
	"genprop":     iso5087Part1 + "GenericProperties/",
	"cdt":         "http://ontology.eil.utoronto.ca/CDT#",
	"i72":         "http://ontology.eil.utoronto.ca/5087/2/iso21972/",
}

// EntityKind is a kind of synthesized entity
type EntityKind uint16

const (
	ENTITY_JUNCTION = EntityKind(iota + 1)
	ENTITY_JUNCTION_LOCATION
	ENTITY_JUNCTION_TYPE
	ENTITY_JUNCTION_TYPE_CODE
	ENTITY_ROAD
	ENTITY_ROAD_LINK
	ENTITY_ROAD_LINK_USER
	ENTITY_ROAD_LINK_LOCATION
	ENTITY_SPEED
	ENTITY_SPEED_UNIT
	ENTITY_SPEED_MEASURE
	ENTITY_LENGTH
	ENTITY_LENGTH_UNIT
	ENTITY_LENGTH_MEASURE
	ENTITY_ACCURACY
	ENTITY_ACCURACY_UNIT
	ENTITY_ACCURACY_MEASURE
	ENTITY_SURFACE_TYPE
	ENTITY_SURFACE_TYPE_CODE
	ENTITY_ACQUISITION_TECHNIQUE
	ENTITY_ACQUISITION_TECHNIQUE_CODE
	ENTITY_ROAD_CLASS
	ENTITY_ROAD_CLASS_CODE
	ENTITY_BLOCKED_PASSAGE
	ENTITY_BLOCKED_PASSAGE_CODE
	ENTITY_STRUCTURE_TYPE
	ENTITY_STRUCTURE_TYPE_CODE
	ENTITY_TOLL_POINT_TYPE
	ENTITY_TOLL_POINT_TYPE_CODE
	ENTITY_UNDERPASS_TYPE
	ENTITY_UNDERPASS_TYPE_CODE
	ENTITY_GOVERNMENT_ORGANIZATION
)

type entityTemplate struct {
	prefix string
	format string
}

var entityTemplates = map[EntityKind]entityTemplate{
	ENTITY_JUNCTION:                   {"cdt", "junction_%s"},
	ENTITY_JUNCTION_LOCATION:          {"loc", "junction_loc_%s"},
	ENTITY_JUNCTION_TYPE:              {"cdt", "junction_type_%s"},
	ENTITY_JUNCTION_TYPE_CODE:         {"code", "junctionType_Code%s"},
	ENTITY_ROAD:                       {"cdt", "road_%s"},
	ENTITY_ROAD_LINK:                  {"cdt", "roadLink_%s"},
	ENTITY_ROAD_LINK_USER:             {"transinfras", "roadLinkUser_%s"},
	ENTITY_ROAD_LINK_LOCATION:         {"loc", "location_%s"},
	ENTITY_SPEED:                      {"road", "speed_%s"},
	ENTITY_SPEED_UNIT:                 {"cityunits", "speedUnit_%s"},
	ENTITY_SPEED_MEASURE:              {"cityunits", "speedMeasure_%s"},
	ENTITY_LENGTH:                     {"cityunits", "length_%s"},
	ENTITY_LENGTH_UNIT:                {"cityunits", "lengthUnit_%s"},
	ENTITY_LENGTH_MEASURE:             {"cityunits", "lengthMeasure_%s"},
	ENTITY_ACCURACY:                   {"cityunits", "accuracy_%s"},
	ENTITY_ACCURACY_UNIT:              {"cityunits", "accuracyUnit_%s"},
	ENTITY_ACCURACY_MEASURE:           {"cityunits", "accuracyMeasure_%s"},
	ENTITY_SURFACE_TYPE:               {"cdt", "surface_type_%s"},
	ENTITY_SURFACE_TYPE_CODE:          {"code", "surfaceType_Code_%s"},
	ENTITY_ACQUISITION_TECHNIQUE:      {"cdt", "acqtech_%s"},
	ENTITY_ACQUISITION_TECHNIQUE_CODE: {"code", "acqtechCode_%s"},
	ENTITY_ROAD_CLASS:                 {"cdt", "roadClass_%s"},
	ENTITY_ROAD_CLASS_CODE:            {"cdt", "roadClass_Code_%s"},
	ENTITY_BLOCKED_PASSAGE:            {"cdt", "blockedPassage_%s"},
	ENTITY_BLOCKED_PASSAGE_CODE:       {"cdt", "blockedPassage_Code_%s"},
	ENTITY_STRUCTURE_TYPE:             {"cdt", "structure_type_%s"},
	ENTITY_STRUCTURE_TYPE_CODE:        {"code", "structureTypeCode_%s"},
	ENTITY_TOLL_POINT_TYPE:            {"cdt", "tollPoint_type_%s"},
	ENTITY_TOLL_POINT_TYPE_CODE:       {"code", "tollTypeCode_%s"},
	ENTITY_UNDERPASS_TYPE:             {"cdt", "underpass_type_%s"},
	ENTITY_UNDERPASS_TYPE_CODE:        {"code", "underpassTypeCode_%s"},
	ENTITY_GOVERNMENT_ORGANIZATION:    {"org_city", "govOrg_%s"},
}

// Identifiers builds canonical IRIs from (entity kind, id) pairs and vocabulary terms
type Identifiers struct {
	namespaces map[string]string
}

// NewIdentifiers returns identifier service over given prefix table. Missing well-known prefixes are filled from defaults
func NewIdentifiers(namespaces map[string]string) *Identifiers {
	ids := Identifiers{
		namespaces: make(map[string]string, len(DefaultNamespaces)),
	}
	for prefix, base := range DefaultNamespaces {
		ids.namespaces[prefix] = base
	}
	for prefix, base := range namespaces {
		ids.namespaces[prefix] = base
	}
	return &ids
}

// Entity returns IRI of synthesized entity
func (ids *Identifiers) Entity(kind EntityKind, id string) IRI {
	tpl, ok := entityTemplates[kind]
	if !ok {
		panic(fmt.Sprintf("no identifier template for entity kind %d", kind))
	}
	return IRI(ids.namespaces[tpl.prefix] + fmt.Sprintf(tpl.format, url.PathEscape(id)))
}

// Term returns IRI of vocabulary term
func (ids *Identifiers) Term(term Term) IRI {
	return IRI(ids.namespaces[term.Prefix] + term.Local)
}

// Namespaces returns prefix table sorted by prefix
func (ids *Identifiers) Namespaces() []Namespace {
	result := make([]Namespace, 0, len(ids.namespaces))
	for prefix, base := range ids.namespaces {
		result = append(result, Namespace{Prefix: prefix, Base: base})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Prefix < result[j].Prefix
	})
	return result
}

// Compact returns prefixed name of IRI when one of namespaces matches and the local part is a plain name
func (ids *Identifiers) Compact(iri IRI) (string, bool) {
	best := ""
	bestPrefix := ""
	for prefix, base := range ids.namespaces {
		if !strings.HasPrefix(string(iri), base) {
			continue
		}
		if len(base) > len(best) || (len(base) == len(best) && prefix < bestPrefix) {
			best = base
			bestPrefix = prefix
		}
	}
	if best == "" {
		return "", false
	}
	local := strings.TrimPrefix(string(iri), best)
	if !isPlainLocalName(local) {
		return "", false
	}
	return bestPrefix + ":" + local, true
}

func isPlainLocalName(local string) bool {
	if local == "" {
		return false
	}
	for i, r := range local {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_':
		case r >= '0' && r <= '9', r == '-':
			if i == 0 && r == '-' {
				return false
			}
		default:
			return false
		}
	}
	return true
}
