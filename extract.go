package promos

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	// A number directly followed by "%" or by the literal word "OFF"
	// ("30%", "30 % OFF", "30 OFF").
	percentRe = regexp.MustCompile(`(\d+)\s*%|\b(\d+)\s*OFF`)

	// The keyword "tope" followed eventually by a currency marker and a
	// numeric run ("con tope mensual de $6.000").
	capRe = regexp.MustCompile(`(?i)tope[^$]*\$ ?([\d.,]+)`)
)

// ExtractPercentage scans a fragment for a percentage discount. The
// first match in reading order wins; fragments are not expected to
// contain conflicting percentages. Returns false when the fragment has
// no percentage pattern; callers substitute their own default
// (commonly 0).
func ExtractPercentage(text string) (int, bool) {
	m := percentRe.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}

	digits := m[1]
	if digits == "" {
		digits = m[2]
	}

	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, false
	}
	return n, true
}

// ExtractCap scans a fragment for a monetary benefit cap. Returns false
// when the "tope" keyword or the numeric run is missing.
func ExtractCap(text string) (int, bool) {
	m := capRe.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	return ParseAmount(m[1])
}

// weekdayNames lists the canonical (accented) weekday names in week
// order, together with the unaccented spellings accepted for names
// carrying diacritics.
var weekdayNames = []struct {
	canonical string
	variants  []string
}{
	{canonical: "lunes"},
	{canonical: "martes"},
	{canonical: "miércoles", variants: []string{"miercoles"}},
	{canonical: "jueves"},
	{canonical: "viernes"},
	{canonical: "sábado", variants: []string{"sabado"}},
	{canonical: "domingo"},
}

// ExtractWeekdays returns the weekdays mentioned in a fragment, in week
// order, normalized to the accented canonical spelling. Matching is
// case-insensitive substring search. Returns nil when no weekday is
// mentioned; callers must substitute their source-specific fallback
// rather than accept an empty set.
func ExtractWeekdays(text string) []string {
	lower := strings.ToLower(text)

	var days []string
	for _, day := range weekdayNames {
		if containsAny(lower, day.canonical, day.variants) {
			days = append(days, day.canonical)
		}
	}
	return days
}

func containsAny(text, canonical string, variants []string) bool {
	if strings.Contains(text, canonical) {
		return true
	}
	for _, v := range variants {
		if strings.Contains(text, v) {
			return true
		}
	}
	return false
}
