package orn2ttl

// LinkDirection is allowed travel direction along a road element
type LinkDirection uint16

const (
	DIRECTION_FORWARD = LinkDirection(iota + 1)
	DIRECTION_REVERSE
	DIRECTION_BIDIRECTIONAL
	// DIRECTION_UNRECOGNIZED source value outside of known vocabulary. Emitted as bidirectional
	DIRECTION_UNRECOGNIZED
)

func (iotaIdx LinkDirection) String() string {
	return [...]string{"Forward", "Reverse", "Bidirectional", "Unrecognized"}[iotaIdx-1]
}

var (
	linkDirectionsTypes = map[string]LinkDirection{
		"Positive":       DIRECTION_FORWARD,
		"Negative":       DIRECTION_REVERSE,
		"Both":           DIRECTION_BIDIRECTIONAL,
		"Bi-directional": DIRECTION_BIDIRECTIONAL,
		"Bidirectional":  DIRECTION_BIDIRECTIONAL,
	}
	// emittedDirection folds unrecognized values into the default branch
	emittedDirection = map[LinkDirection]LinkDirection{
		DIRECTION_FORWARD:       DIRECTION_FORWARD,
		DIRECTION_REVERSE:       DIRECTION_REVERSE,
		DIRECTION_BIDIRECTIONAL: DIRECTION_BIDIRECTIONAL,
		DIRECTION_UNRECOGNIZED:  DIRECTION_BIDIRECTIONAL,
	}
)

func getLinkDirection(str string) LinkDirection {
	if found, ok := linkDirectionsTypes[str]; ok {
		return found
	}
	return DIRECTION_UNRECOGNIZED
}

// Emitted returns direction which is written to the graph
func (iotaIdx LinkDirection) Emitted() LinkDirection {
	return emittedDirection[iotaIdx]
}

// Flag is a boolean-like source value ("Yes"/"No", "Paved"/"Unpaved")
type Flag uint16

const (
	FLAG_TRUE = Flag(iota + 1)
	FLAG_FALSE
	// FLAG_UNRECOGNIZED source value outside of known vocabulary. Emitted as false
	FLAG_UNRECOGNIZED
)

func (iotaIdx Flag) String() string {
	return [...]string{"true", "false", "unrecognized"}[iotaIdx-1]
}

// Bool returns value written to the graph
func (iotaIdx Flag) Bool() bool {
	return iotaIdx == FLAG_TRUE
}

var (
	tollRoadFlags = map[string]Flag{
		"Yes": FLAG_TRUE,
		"No":  FLAG_FALSE,
	}
	pavementFlags = map[string]Flag{
		"Paved":   FLAG_TRUE,
		"Unpaved": FLAG_FALSE,
	}
)

func getFlag(vocabulary map[string]Flag, str string) Flag {
	if found, ok := vocabulary[str]; ok {
		return found
	}
	return FLAG_UNRECOGNIZED
}
