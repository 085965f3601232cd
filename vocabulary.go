package orn2ttl

// Term is a vocabulary element expressed as prefixed name
type Term struct {
	Prefix string
	Local  string
}

// Core RDF terms
var (
	RDF_TYPE         = Term{"rdf", "type"}
	RDFS_SUBCLASS_OF = Term{"rdfs", "subClassOf"}
	RDFS_LABEL       = Term{"rdfs", "label"}
)

// Literal datatypes
var (
	XSD_STRING   = Term{"xsd", "string"}
	XSD_INTEGER  = Term{"xsd", "integer"}
	XSD_DECIMAL  = Term{"xsd", "decimal"}
	XSD_BOOLEAN  = Term{"xsd", "boolean"}
	XSD_DATE     = Term{"xsd", "date"}
	GEO_WKT_TYPE = Term{"geo", "wktLiteral"}
)

// Classes
var (
	CLASS_GEOMETRY                = Term{"geo", "Geometry"}
	CLASS_LOCATION                = Term{"loc", "Location"}
	CLASS_TRANSPORT_NODE          = Term{"transnet", "TransportNode"}
	CLASS_TRANSNET_JUNCTION       = Term{"transnet", "Junction"}
	CLASS_TRAVELLED_WAY_LINK      = Term{"transnet", "TravelledWayLink"}
	CLASS_LINK_DIRECTION          = Term{"transnet", "LinkDirection"}
	CLASS_INFRASTRUCTURE_ELEMENT  = Term{"infras", "InfrastructureElement"}
	CLASS_INFRAS_ROAD_LINK        = Term{"transinfras", "RoadLink"}
	CLASS_INFRAS_ROAD             = Term{"transinfras", "Road"}
	CLASS_JUNCTION                = Term{"cdt", "Junction"}
	CLASS_JUNCTION_TYPE           = Term{"cdt", "JunctionType"}
	CLASS_ROAD_LINK               = Term{"cdt", "RoadLink"}
	CLASS_ROAD                    = Term{"cdt", "Road"}
	CLASS_SURFACE_TYPE            = Term{"cdt", "SurfaceType"}
	CLASS_ACQUISITION_TECHNIQUE   = Term{"cdt", "AquisitionTechnique"}
	CLASS_ROAD_CLASS              = Term{"cdt", "RoadClass"}
	CLASS_BLOCKED_PASSAGE_TYPE    = Term{"cdt", "BlockedPassageType"}
	CLASS_STRUCTURE_TYPE          = Term{"cdt", "StructureType"}
	CLASS_TOLL_POINT_TYPE         = Term{"cdt", "TollPointType"}
	CLASS_UNDERPASS_TYPE          = Term{"cdt", "UnderpassType"}
	CLASS_CODE                    = Term{"code", "Code"}
	CLASS_MEASURE                 = Term{"cityunits", "Measure"}
	CLASS_SPEED                   = Term{"cityunits", "Speed"}
	CLASS_LENGTH                  = Term{"cityunits", "Length"}
	CLASS_QUANTITY                = Term{"i72", "Quantity"}
	CLASS_KILOMETERS_PER_HOUR     = Term{"i72", "kilometersPerHr"}
	CLASS_METERS                  = Term{"i72", "Meters"}
	CLASS_ORGANIZATION            = Term{"org_city", "Organization"}
	CLASS_GOVERNMENT_ORGANIZATION = Term{"org_city", "GovernmentOrganization"}
)

// Predicates
var (
	PRED_HAS_IDENTIFIER          = Term{"genprop", "hasIdentifier"}
	PRED_HAS_NAME                = Term{"genprop", "hasName"}
	PRED_HAS_LOCATION            = Term{"loc", "hasLocation"}
	PRED_AS_WKT                  = Term{"geo", "asWKT"}
	PRED_HAS_CODE                = Term{"code", "hasCode"}
	PRED_PROPER_PART_OF          = Term{"partwhole", "properPartOf"}
	PRED_HAS_PROPER_PART         = Term{"partwhole", "hasProperPart"}
	PRED_USED_BY                 = Term{"road", "usedBy"}
	PRED_USES                    = Term{"road", "uses"}
	PRED_SPEED_LIMIT             = Term{"road", "speedLimit"}
	PRED_NUM_LANES               = Term{"road", "numLanes"}
	PRED_VALUE                   = Term{"i72", "value"}
	PRED_UNIT_OF_MEASURE         = Term{"i72", "unit_of_measure"}
	PRED_NUMERICAL_VALUE         = Term{"i72", "numerical_value"}
	PRED_FROM                    = Term{"transnet", "from"}
	PRED_TO                      = Term{"transnet", "to"}
	PRED_EGRESS                  = Term{"transnet", "egress"}
	PRED_INGRESS                 = Term{"transnet", "ingress"}
	PRED_ALLOWED_DIRECTIONS      = Term{"transnet", "allowedDirections"}
	PRED_HAS_JUNCTION_TYPE       = Term{"cdt", "hasJunctionType"}
	PRED_EXIT_NUMBER             = Term{"cdt", "exitNumber"}
	PRED_EXIT_NUM                = Term{"cdt", "exitNum"}
	PRED_NATION_UUID             = Term{"cdt", "nationUUID"}
	PRED_EFFECTIVE_DATE          = Term{"cdt", "effectiveDate"}
	PRED_CREATION_DATE           = Term{"cdt", "creationDate"}
	PRED_REVISION_DATE           = Term{"cdt", "revisionDate"}
	PRED_GEO_UPDATE_DATE         = Term{"cdt", "geoUpdateDate"}
	PRED_LENGTH                  = Term{"cdt", "length"}
	PRED_ROAD_ABSOLUTE_ACCURACY  = Term{"cdt", "roadAbsoluteAccuracy"}
	PRED_HAS_SURFACE_TYPE        = Term{"cdt", "hasSurfaceType"}
	PRED_TOLL_ROAD               = Term{"cdt", "tollRoad"}
	PRED_HAS_ACQUISITION_TECH    = Term{"cdt", "hasAquisitionTechnique"}
	PRED_ROAD_CLASS              = Term{"cdt", "roadClass"}
	PRED_HAS_BLOCKED_PASSAGE     = Term{"cdt", "hasBlockedPassage"}
	PRED_RESPONSIBLE_FOR         = Term{"cdt", "responsibleFor"}
	PRED_HAS_CUSTODIAN           = Term{"cdt", "hasCustodian"}
	PRED_PAVEMENT_STATUS         = Term{"cdt", "pavementStatus"}
	PRED_ROUTE_NAME              = Term{"cdt", "routeName"}
	PRED_ROUTE_NUMBER            = Term{"cdt", "routeNumber"}
	PRED_HAS_STRUCTURE_TYPE      = Term{"cdt", "hasStructureType"}
	PRED_HAS_TOLL_POINT_TYPE     = Term{"cdt", "hasTollPointType"}
	PRED_HAS_UNDERPASS_TYPE      = Term{"cdt", "hasUnderpassType"}
)

// Link direction individuals
var linkDirectionTerms = map[LinkDirection]Term{
	DIRECTION_FORWARD:       {"cdt", "Forward"},
	DIRECTION_REVERSE:       {"cdt", "Reverse"},
	DIRECTION_BIDIRECTIONAL: {"cdt", "Bidirectional"},
}

// Link direction labels as they appear in the ontology
var linkDirectionLabels = map[LinkDirection]string{
	DIRECTION_FORWARD:       "Forward",
	DIRECTION_REVERSE:       "Reverse",
	DIRECTION_BIDIRECTIONAL: "Bi-directional",
}

// subClassAxioms is a class hierarchy asserted once per graph
var subClassAxioms = [][2]Term{
	{CLASS_TRANSNET_JUNCTION, CLASS_TRANSPORT_NODE},
	{CLASS_JUNCTION, CLASS_TRANSNET_JUNCTION},
	{CLASS_ROAD_LINK, CLASS_INFRAS_ROAD_LINK},
	{CLASS_INFRAS_ROAD_LINK, CLASS_TRAVELLED_WAY_LINK},
	{CLASS_TRAVELLED_WAY_LINK, CLASS_INFRASTRUCTURE_ELEMENT},
	{CLASS_LOCATION, CLASS_GEOMETRY},
	{CLASS_SPEED, CLASS_QUANTITY},
	{CLASS_LENGTH, CLASS_QUANTITY},
	{CLASS_ROAD, CLASS_INFRAS_ROAD},
	{CLASS_GOVERNMENT_ORGANIZATION, CLASS_ORGANIZATION},
}
