package formation

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// catalog holds known training labels (normalized) and their duration in hours
var catalog = map[string]float64{
	"formacion basica contra incendios":   8,
	"formacion avanzada contra incendios": 16,
	"manejo de extintores":                4,
	"equipos de primera intervencion":     8,
	"equipos de segunda intervencion":     16,
	"plan de autoproteccion":              6,
	"trabajos en altura":                  8,
	"rescate en altura":                   12,
	"espacios confinados":                 8,
	"primeros auxilios":                   8,
	"soporte vital basico y dea":          6,
	"carretilla elevadora":                8,
	"evacuacion y simulacro":              4,
}

type rule struct {
	pattern *regexp.Regexp
	hours   float64
}

// rules are tried in order against the normalized label; the first match wins
var rules = []rule{
	{regexp.MustCompile(`\breciclaje\b`), 4},
	{regexp.MustCompile(`\bavanzad[oa]s?\b`), 16},
	{regexp.MustCompile(`\brescate\b`), 12},
	{regexp.MustCompile(`\baltura\b`), 8},
	{regexp.MustCompile(`\bespacios? confinados?\b`), 8},
	{regexp.MustCompile(`\bprimeros auxilios\b`), 8},
	{regexp.MustCompile(`\bcarretillas?\b`), 8},
	{regexp.MustCompile(`\bincendios?\b`), 8},
	{regexp.MustCompile(`\bbasic[oa]s?\b`), 8},
	{regexp.MustCompile(`\bsensibilizacion\b`), 2},
	{regexp.MustCompile(`\bteoric[oa]s?\b`), 4},
}

var (
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)
	// durationPattern runs before punctuation is collapsed so decimals survive
	durationPattern = regexp.MustCompile(`(\d+(?:[.,]\d+)?)\s*(?:horas|hrs|h)\b`)
)

// Normalize strips diacritics, lowercases, and collapses every run of
// non-alphanumeric characters into a single space.
func Normalize(label string) string {
	s := strings.ToLower(stripDiacritics(label))
	return strings.TrimSpace(nonAlphanumeric.ReplaceAllString(s, " "))
}

// ResolveHours infers the recommended duration of a training from its label.
// The second result is false when the duration is unknown, which callers
// must not confuse with zero hours.
func ResolveHours(label string) (float64, bool) {
	normalized := Normalize(label)
	if normalized == "" {
		return 0, false
	}

	if hours, ok := catalog[normalized]; ok {
		return hours, true
	}

	for _, r := range rules {
		if r.pattern.MatchString(normalized) {
			return r.hours, true
		}
	}

	return extractDuration(label)
}

// ResolveHoursFromList returns the first duration any candidate label resolves to
func ResolveHoursFromList(labels []string) (float64, bool) {
	for _, label := range labels {
		if hours, ok := ResolveHours(label); ok {
			return hours, true
		}
	}
	return 0, false
}

func extractDuration(label string) (float64, bool) {
	text := strings.ToLower(stripDiacritics(label))
	match := durationPattern.FindStringSubmatch(text)
	if match == nil {
		return 0, false
	}
	hours, err := strconv.ParseFloat(strings.Replace(match[1], ",", ".", 1), 64)
	if err != nil {
		return 0, false
	}
	return hours, true
}

func stripDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
