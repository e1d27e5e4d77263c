package remote

import (
	"math"
	"strconv"
	"strings"
)

// truthyStrings are the only string spellings that resolve to true
var truthyStrings = map[string]bool{
	"1":    true,
	"true": true,
	"yes":  true,
}

// ResolveBoolean collapses any value shape to a boolean.
// Booleans pass through, numbers are true when nonzero, strings match
// "1", "true" or "yes" case-insensitively, arrays are true when any element
// is, and objects delegate to their "value" member, then "checked".
// Everything else is false.
func ResolveBoolean(v Value) bool {
	switch v.kind {
	case KindBool:
		return v.b
	case KindNumber:
		return v.n != 0 && !math.IsNaN(v.n)
	case KindString:
		return truthyStrings[strings.ToLower(strings.TrimSpace(v.s))]
	case KindArray:
		result := false
		for _, item := range v.arr {
			if ResolveBoolean(item) {
				result = true
			}
		}
		return result
	case KindObject:
		if inner, ok := v.obj["value"]; ok {
			return ResolveBoolean(inner)
		}
		if inner, ok := v.obj["checked"]; ok {
			return ResolveBoolean(inner)
		}
		return false
	default:
		return false
	}
}

// ResolvePrimaryValue picks the preferred string out of a multi-valued field.
//
// Selection order:
//  1. the first array element flagged primary that carries a value
//  2. the first array element that carries a value
//  3. the object's own "value" member
//
// Strings are trimmed and an empty result counts as absent.
func ResolvePrimaryValue(v Value) (string, bool) {
	switch v.kind {
	case KindString, KindNumber:
		return scalarString(v)
	case KindArray:
		for _, item := range v.arr {
			primary, ok := item.Field("primary")
			if !ok || !ResolveBoolean(primary) {
				continue
			}
			if s, ok := elementValue(item); ok {
				return s, true
			}
		}
		for _, item := range v.arr {
			if s, ok := elementValue(item); ok {
				return s, true
			}
		}
		return "", false
	case KindObject:
		return elementValue(v)
	default:
		return "", false
	}
}

// ResolveString reads a plain text field.
// Objects resolve through "value" then "name", arrays through the primary value.
func ResolveString(v Value) (string, bool) {
	switch v.kind {
	case KindString, KindNumber:
		return scalarString(v)
	case KindObject:
		for _, key := range []string{"value", "name"} {
			if inner, ok := v.obj[key]; ok {
				if s, ok := scalarString(inner); ok {
					return s, true
				}
			}
		}
		return "", false
	case KindArray:
		return ResolvePrimaryValue(v)
	default:
		return "", false
	}
}

// ResolveNumber reads a numeric field that may arrive as a number or as text.
// Text accepts either comma or dot as the decimal separator.
func ResolveNumber(v Value) (float64, bool) {
	switch v.kind {
	case KindNumber:
		if math.IsNaN(v.n) || math.IsInf(v.n, 0) {
			return 0, false
		}
		return v.n, true
	case KindString:
		return parseDecimal(v.s)
	case KindObject:
		if inner, ok := v.obj["value"]; ok {
			return ResolveNumber(inner)
		}
		return 0, false
	case KindArray:
		for _, item := range v.arr {
			if n, ok := ResolveNumber(item); ok {
				return n, true
			}
		}
		return 0, false
	default:
		return 0, false
	}
}

// ResolveID reads a reference to another remote entity.
// References arrive either as a bare id or as an object such as
// {"value": 12, "name": "Acme"}.
func ResolveID(v Value) (int64, bool) {
	switch v.kind {
	case KindNumber, KindString:
		n, ok := ResolveNumber(v)
		if !ok || n <= 0 || n != math.Trunc(n) {
			return 0, false
		}
		return int64(n), true
	case KindObject:
		for _, key := range []string{"value", "id"} {
			if inner, ok := v.obj[key]; ok {
				if id, ok := ResolveID(inner); ok {
					return id, true
				}
			}
		}
		return 0, false
	default:
		return 0, false
	}
}

// elementValue extracts the value carried by one element of a multi-valued field
func elementValue(v Value) (string, bool) {
	switch v.kind {
	case KindString, KindNumber:
		return scalarString(v)
	case KindObject:
		if inner, ok := v.obj["value"]; ok {
			return scalarString(inner)
		}
		return "", false
	default:
		return "", false
	}
}

func scalarString(v Value) (string, bool) {
	switch v.kind {
	case KindString:
		s := strings.TrimSpace(v.s)
		return s, s != ""
	case KindNumber:
		if math.IsNaN(v.n) || math.IsInf(v.n, 0) {
			return "", false
		}
		return strconv.FormatFloat(v.n, 'f', -1, 64), true
	default:
		return "", false
	}
}

func parseDecimal(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	n, err := strconv.ParseFloat(strings.Replace(s, ",", ".", 1), 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}
