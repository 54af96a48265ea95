package dataset

import (
	"math"
	"strconv"
	"strings"
)

// Columns names the attributes an arrow record is read from
type Columns struct {
	ID       string
	Lat      string
	Lon      string
	Bearing  string
	Distance string
	Value    string // colour key
	Label    string
}

// DefaultColumns returns the column names used by the sample data
func DefaultColumns() Columns {
	return Columns{
		ID:       "id",
		Lat:      "lat",
		Lon:      "lon",
		Bearing:  "deg",
		Distance: "dist",
		Value:    "value",
		Label:    "name",
	}
}

// normalizeName trims padding and case so header and field names compare equal
func normalizeName(s string) string {
	return strings.ToLower(strings.TrimRight(strings.TrimSpace(s), "\x00"))
}

// parseNumber returns NaN for empty, malformed or infinite cells
func parseNumber(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(v, 0) {
		return math.NaN()
	}
	return v
}

// parseValue keeps numeric colour keys as numbers
func parseValue(s string) any {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v
	}
	return s
}
