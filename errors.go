package orn2ttl

import "github.com/pkg/errors"

var (
	// ErrMissingSource required input can not be opened or read
	ErrMissingSource = errors.New("missing source")
	// ErrMissingKeyColumn source lacks the column it is keyed by
	ErrMissingKeyColumn = errors.New("missing key column")
	// ErrUnrecognizedValue enumerated field holds a value outside of its vocabulary (strict mode only)
	ErrUnrecognizedValue = errors.New("unrecognized value")
	// ErrUnsupportedFormat unknown geometry or output format
	ErrUnsupportedFormat = errors.New("unsupported format")
)
