package orn2ttl

import (
	"math"
	"strconv"
	"time"
)

const (
	// sourceDateLayout fourteen-digit timestamp, e.g. 20210731081808
	sourceDateLayout = "20060102150405"
)

// parseSourceDate parses YYYYMMDDHHMMSS timestamp. Only the date part is kept
func parseSourceDate(str string) (time.Time, bool) {
	if len(str) != len(sourceDateLayout) {
		return time.Time{}, false
	}
	t, err := time.Parse(sourceDateLayout, str)
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
}

// parseInteger accepts integral and fractional notation. Fraction is truncated
func parseInteger(str string) (int64, bool) {
	if v, err := strconv.ParseInt(str, 10, 64); err == nil {
		return v, true
	}
	f, ok := parseDecimal(str)
	// 2^63 is exactly representable, MaxInt64 is not
	if !ok || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}

func parseDecimal(str string) (float64, bool) {
	f, err := strconv.ParseFloat(str, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
