package catalog

import (
	"strconv"
	"strings"
)

// Request bodies arrive as JSON objects or url-encoded forms, so a field
// value may be a string, a number or null. These helpers coerce values into
// the typed card fields, treating unparsable text like an absent value.

// asString coerces a field value to a string.
func asString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case nil:
		return ""
	default:
		return ""
	}
}

// asInt coerces a field value to an integer. The second result reports
// whether the coercion succeeded.
func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		return int(n), true
	case int:
		return n, true
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}

// asFloat coerces a field value to a float. The second result reports
// whether the coercion succeeded.
func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}

// asOptionalString coerces a nullable string field. JSON null and the
// literal "null" both map to nil, matching the stored representation.
func asOptionalString(v any) *string {
	s := asString(v)
	if s == "" || strings.EqualFold(s, "null") {
		return nil
	}
	return &s
}
