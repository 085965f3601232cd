package orn2ttl

// SourceName identifies one of attribute tables joined onto road elements
type SourceName uint16

const (
	SOURCE_SPEED_LIMITS = SourceName(iota + 1)
	SOURCE_ROAD_CLASSES
	SOURCE_ROAD_NAMES
	SOURCE_JUNCTIONS
	SOURCE_BLOCKED_PASSAGE
	SOURCE_ADDRESS_INFO
	SOURCE_JURISDICTION
	SOURCE_NUM_LANES
	SOURCE_ROAD_SURFACE
	SOURCE_ROUTE_NAME
	SOURCE_ROUTE_NUMBER
	SOURCE_STRUCTURE
	SOURCE_TOLL_POINT
	SOURCE_UNDERPASS
)

func (iotaIdx SourceName) String() string {
	return [...]string{"speed_limits", "road_classes", "road_names", "junctions", "blocked_passage", "address_info", "jurisdiction", "num_lanes", "road_surface", "route_name", "route_number", "structure", "toll_point", "underpass"}[iotaIdx-1]
}

// sourceNamesOrdered is the join order. Earlier sources win on column name collisions
var sourceNamesOrdered = []SourceName{
	SOURCE_SPEED_LIMITS,
	SOURCE_ROAD_CLASSES,
	SOURCE_ROAD_NAMES,
	SOURCE_JUNCTIONS,
	SOURCE_BLOCKED_PASSAGE,
	SOURCE_ADDRESS_INFO,
	SOURCE_JURISDICTION,
	SOURCE_NUM_LANES,
	SOURCE_ROAD_SURFACE,
	SOURCE_ROUTE_NAME,
	SOURCE_ROUTE_NUMBER,
	SOURCE_STRUCTURE,
	SOURCE_TOLL_POINT,
	SOURCE_UNDERPASS,
}

var (
	sourceNamesByString = map[string]SourceName{
		"speed_limits":    SOURCE_SPEED_LIMITS,
		"road_classes":    SOURCE_ROAD_CLASSES,
		"road_names":      SOURCE_ROAD_NAMES,
		"junctions":       SOURCE_JUNCTIONS,
		"blocked_passage": SOURCE_BLOCKED_PASSAGE,
		"address_info":    SOURCE_ADDRESS_INFO,
		"jurisdiction":    SOURCE_JURISDICTION,
		"num_lanes":       SOURCE_NUM_LANES,
		"road_surface":    SOURCE_ROAD_SURFACE,
		"route_name":      SOURCE_ROUTE_NAME,
		"route_number":    SOURCE_ROUTE_NUMBER,
		"structure":       SOURCE_STRUCTURE,
		"toll_point":      SOURCE_TOLL_POINT,
		"underpass":       SOURCE_UNDERPASS,
	}
	defaultSourceFiles = map[SourceName]string{
		SOURCE_SPEED_LIMITS:    "ORN_SPEED_LIMIT.csv",
		SOURCE_ROAD_CLASSES:    "ORN_ROAD_CLASS.csv",
		SOURCE_ROAD_NAMES:      "ORN_OFFICIAL_STREET_NAME.csv",
		SOURCE_JUNCTIONS:       "ORN_JUNCTION.csv",
		SOURCE_BLOCKED_PASSAGE: "ORN_BLOCKED_PASSAGE.csv",
		SOURCE_ADDRESS_INFO:    "ORN_ADDRESS_INFO.csv",
		SOURCE_JURISDICTION:    "ORN_JURISDICTION.csv",
		SOURCE_NUM_LANES:       "ORN_NUMBER_OF_LANES.csv",
		SOURCE_ROAD_SURFACE:    "ORN_ROAD_SURFACE.csv",
		SOURCE_ROUTE_NAME:      "ORN_ROUTE_NAME.csv",
		SOURCE_ROUTE_NUMBER:    "ORN_ROUTE_NUMBER.csv",
		SOURCE_STRUCTURE:       "ORN_STRUCTURE.csv",
		SOURCE_TOLL_POINT:      "ORN_TOLL_POINT.csv",
		SOURCE_UNDERPASS:       "ORN_UNDERPASS.csv",
	}
)

func getSourceName(str string) SourceName {
	if found, ok := sourceNamesByString[str]; ok {
		return found
	}
	return 0
}
