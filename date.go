package promos

import (
	"fmt"
	"strings"
)

// months maps lowercase Spanish month names to month numbers.
var months = map[string]int{
	"enero":      1,
	"febrero":    2,
	"marzo":      3,
	"abril":      4,
	"mayo":       5,
	"junio":      6,
	"julio":      7,
	"agosto":     8,
	"septiembre": 9,
	"octubre":    10,
	"noviembre":  11,
	"diciembre":  12,
}

// ResolveDate maps a Spanish month name plus a year and day to an ISO
// calendar date (YYYY-MM-DD). Matching is case-insensitive and ignores
// surrounding whitespace. Returns false if the month name is not
// recognized.
//
// Campaign windows are currently supplied as source-level constants, so
// adapters don't call this directly, but it is the designated hook for
// parsing dates out of fragment text.
func ResolveDate(month string, year, day int) (string, bool) {
	m, ok := months[strings.ToLower(strings.TrimSpace(month))]
	if !ok {
		return "", false
	}
	return fmt.Sprintf("%04d-%02d-%02d", year, m, day), true
}
