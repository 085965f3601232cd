package orn2ttl

import (
	"strconv"
	"time"

	"github.com/paulmach/orb"
)

// Base geometry columns
const (
	COLUMN_ELEMENT_ID    = "OGF_ID"
	COLUMN_FROM_JUNCTION = "FROM_JCT"
	COLUMN_TO_JUNCTION   = "TO_JCT"
	COLUMN_LENGTH        = "LENGTH"
	COLUMN_ACCURACY      = "ACCURACY"
	COLUMN_NID           = "NID"
	COLUMN_DIRECTION     = "DIRECTION"
	COLUMN_EXIT_NUM      = "EXIT_NUM"
	COLUMN_ELEM_TYPE     = "ELEM_TYPE"
	COLUMN_TOLL_ROAD     = "TOLL_ROAD"
	COLUMN_ACQTECH       = "ACQTECH"
	COLUMN_CREDATE       = "CREDATE"
	COLUMN_REVDATE       = "REVDATE"
	COLUMN_GEO_UPD_DT    = "GEO_UPD_DT"
	COLUMN_EFF_DATE      = "EFF_DATE"
)

// Attribute table columns
const (
	COLUMN_ATTRIBUTE_KEY        = "ORN_ROAD_NET_ELEMENT_ID"
	COLUMN_SPEED_LIMIT          = "SPEED_LIMIT"
	COLUMN_ROAD_CLASS           = "ROAD_CLASS"
	COLUMN_FULL_STREET_NAME     = "FULL_STREET_NAME"
	COLUMN_BLOCKED_PASSAGE_TYPE = "BLOCKED_PASSAGE_TYPE"
	COLUMN_JURISDICTION         = "JURISDICTION"
	COLUMN_NUMBER_OF_LANES      = "NUMBER_OF_LANES"
	COLUMN_PAVEMENT_STATUS      = "PAVEMENT_STATUS"
	COLUMN_SURFACE_TYPE         = "SURFACE_TYPE"
	COLUMN_ROUTE_NAME_ENGLISH   = "ROUTE_NAME_ENGLISH"
	COLUMN_ROUTE_NUMBER         = "ROUTE_NUMBER"
	COLUMN_STRUCTURE_TYPE       = "STRUCTURE_TYPE"
	COLUMN_TOLL_POINT_TYPE      = "TOLL_POINT_TYPE"
	COLUMN_UNDERPASS_TYPE       = "UNDERPASS_TYPE"
)

const (
	// ELEMENT_TYPE_VIRTUAL synthetic linking construct, not a physical roadway
	ELEMENT_TYPE_VIRTUAL = "Virtual Road"
)

// RoadSegment is one physical link of roadway with every attribute assembled from joined sources
type RoadSegment struct {
	ElementID string
	Geom      orb.Geometry

	StreetName   Optional[string]
	FromJunction Optional[string]
	ToJunction   Optional[string]

	SpeedLimit Optional[int64]
	Length     Optional[float64]
	Accuracy   Optional[float64]
	Lanes      Optional[int64]

	NationalID  Optional[string]
	ExitNumber  Optional[string]
	ElementType Optional[string]
	RouteName   Optional[string]
	RouteNumber Optional[string]

	Direction Optional[LinkDirection]
	TollRoad  Optional[Flag]
	Paved     Optional[Flag]

	SurfaceType          Optional[string]
	AcquisitionTechnique Optional[string]
	RoadClass            Optional[string]
	BlockedPassage       Optional[string]
	StructureType        Optional[string]
	TollPointType        Optional[string]
	UnderpassType        Optional[string]
	Jurisdiction         Optional[string]

	CreationDate  Optional[time.Time]
	RevisionDate  Optional[time.Time]
	GeoUpdateDate Optional[time.Time]
	EffectiveDate Optional[time.Time]
}

// IsVirtual reports whether element is a synthetic link
func (seg *RoadSegment) IsVirtual() bool {
	t, ok := seg.ElementType.Get()
	return ok && t == ELEMENT_TYPE_VIRTUAL
}

// IssueKind distinguishes why a present source value has been dropped or defaulted
type IssueKind uint16

const (
	ISSUE_UNPARSEABLE = IssueKind(iota + 1)
	ISSUE_UNRECOGNIZED
)

func (iotaIdx IssueKind) String() string {
	return [...]string{"unparseable", "unrecognized"}[iotaIdx-1]
}

// FieldIssue is a diagnostic for a single field of a single record
type FieldIssue struct {
	RecordID string
	Field    string
	Raw      string
	Kind     IssueKind
}

// fieldReader converts optional raw values to typed ones and records conversion issues
type fieldReader struct {
	recordID string
	issues   []FieldIssue
}

func (fr *fieldReader) report(field, raw string, kind IssueKind) {
	fr.issues = append(fr.issues, FieldIssue{RecordID: fr.recordID, Field: field, Raw: raw, Kind: kind})
}

func (fr *fieldReader) integer(field string, v Optional[string]) Optional[int64] {
	raw, ok := v.Get()
	if !ok {
		return Absent[int64]()
	}
	n, ok := parseInteger(raw)
	if !ok {
		fr.report(field, raw, ISSUE_UNPARSEABLE)
		return Absent[int64]()
	}
	return Present(n)
}

// identifier accepts integral values only, in the same canonical form segment references use
func (fr *fieldReader) identifier(field string, raw string) Optional[int64] {
	n, err := strconv.ParseInt(CanonicalKey(raw), 10, 64)
	if err != nil {
		fr.report(field, raw, ISSUE_UNPARSEABLE)
		return Absent[int64]()
	}
	return Present(n)
}

func (fr *fieldReader) decimal(field string, v Optional[string]) Optional[float64] {
	raw, ok := v.Get()
	if !ok {
		return Absent[float64]()
	}
	f, ok := parseDecimal(raw)
	if !ok {
		fr.report(field, raw, ISSUE_UNPARSEABLE)
		return Absent[float64]()
	}
	return Present(f)
}

func (fr *fieldReader) date(field string, v Optional[string]) Optional[time.Time] {
	raw, ok := v.Get()
	if !ok {
		return Absent[time.Time]()
	}
	t, ok := parseSourceDate(raw)
	if !ok {
		fr.report(field, raw, ISSUE_UNPARSEABLE)
		return Absent[time.Time]()
	}
	return Present(t)
}

func (fr *fieldReader) key(v Optional[string]) Optional[string] {
	raw, ok := v.Get()
	if !ok {
		return Absent[string]()
	}
	return Present(CanonicalKey(raw))
}

func (fr *fieldReader) direction(field string, v Optional[string]) Optional[LinkDirection] {
	raw, ok := v.Get()
	if !ok {
		return Absent[LinkDirection]()
	}
	direction := getLinkDirection(raw)
	if direction == DIRECTION_UNRECOGNIZED {
		fr.report(field, raw, ISSUE_UNRECOGNIZED)
	}
	return Present(direction)
}

func (fr *fieldReader) flag(field string, vocabulary map[string]Flag, v Optional[string]) Optional[Flag] {
	raw, ok := v.Get()
	if !ok {
		return Absent[Flag]()
	}
	flag := getFlag(vocabulary, raw)
	if flag == FLAG_UNRECOGNIZED {
		fr.report(field, raw, ISSUE_UNRECOGNIZED)
	}
	return Present(flag)
}

// NewRoadSegment assembles typed segment from joined row. Issues are returned for values
// which were present in sources but could not be converted or recognized
func NewRoadSegment(row *JoinedRow) (*RoadSegment, []FieldIssue) {
	fr := fieldReader{recordID: row.Element.ID}
	seg := RoadSegment{
		ElementID: row.Element.ID,
		Geom:      row.Element.Geom,

		StreetName:   row.Attr(SOURCE_ROAD_NAMES, COLUMN_FULL_STREET_NAME),
		FromJunction: fr.key(row.First(COLUMN_FROM_JUNCTION)),
		ToJunction:   fr.key(row.First(COLUMN_TO_JUNCTION)),

		SpeedLimit: fr.integer(COLUMN_SPEED_LIMIT, row.Attr(SOURCE_SPEED_LIMITS, COLUMN_SPEED_LIMIT)),
		Length:     fr.decimal(COLUMN_LENGTH, row.First(COLUMN_LENGTH)),
		Accuracy:   fr.decimal(COLUMN_ACCURACY, row.First(COLUMN_ACCURACY)),
		Lanes:      fr.integer(COLUMN_NUMBER_OF_LANES, row.Attr(SOURCE_NUM_LANES, COLUMN_NUMBER_OF_LANES)),

		NationalID:  row.First(COLUMN_NID),
		ExitNumber:  row.First(COLUMN_EXIT_NUM),
		ElementType: row.First(COLUMN_ELEM_TYPE),
		RouteName:   row.Attr(SOURCE_ROUTE_NAME, COLUMN_ROUTE_NAME_ENGLISH),
		RouteNumber: row.Attr(SOURCE_ROUTE_NUMBER, COLUMN_ROUTE_NUMBER),

		Direction: fr.direction(COLUMN_DIRECTION, row.First(COLUMN_DIRECTION)),
		TollRoad:  fr.flag(COLUMN_TOLL_ROAD, tollRoadFlags, row.First(COLUMN_TOLL_ROAD)),
		Paved:     fr.flag(COLUMN_PAVEMENT_STATUS, pavementFlags, row.Attr(SOURCE_ROAD_SURFACE, COLUMN_PAVEMENT_STATUS)),

		SurfaceType:          row.Attr(SOURCE_ROAD_SURFACE, COLUMN_SURFACE_TYPE),
		AcquisitionTechnique: row.First(COLUMN_ACQTECH),
		RoadClass:            row.Attr(SOURCE_ROAD_CLASSES, COLUMN_ROAD_CLASS),
		BlockedPassage:       row.Attr(SOURCE_BLOCKED_PASSAGE, COLUMN_BLOCKED_PASSAGE_TYPE),
		StructureType:        row.Attr(SOURCE_STRUCTURE, COLUMN_STRUCTURE_TYPE),
		TollPointType:        row.Attr(SOURCE_TOLL_POINT, COLUMN_TOLL_POINT_TYPE),
		UnderpassType:        row.Attr(SOURCE_UNDERPASS, COLUMN_UNDERPASS_TYPE),
		Jurisdiction:         row.Attr(SOURCE_JURISDICTION, COLUMN_JURISDICTION),

		CreationDate:  fr.date(COLUMN_CREDATE, row.First(COLUMN_CREDATE)),
		RevisionDate:  fr.date(COLUMN_REVDATE, row.First(COLUMN_REVDATE)),
		GeoUpdateDate: fr.date(COLUMN_GEO_UPD_DT, row.First(COLUMN_GEO_UPD_DT)),
		EffectiveDate: fr.date(COLUMN_EFF_DATE, row.First(COLUMN_EFF_DATE)),
	}
	return &seg, fr.issues
}
