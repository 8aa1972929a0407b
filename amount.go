package promos

import (
	"regexp"
	"strconv"
	"strings"
)

var digitRunRe = regexp.MustCompile(`\d+`)

var separatorReplacer = strings.NewReplacer(".", "", ",", "")

// ParseAmount extracts an integer amount from localized numeric text
// such as "40.000" or "6,000". Both "." and "," are treated as group
// separators and discarded, never as decimal points; the source texts
// mix both conventions, so only the digit sequence is trusted.
// Returns false if the text contains no digits.
func ParseAmount(text string) (int, bool) {
	cleaned := separatorReplacer.Replace(text)

	digits := digitRunRe.FindString(cleaned)
	if digits == "" {
		return 0, false
	}

	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, false
	}
	return n, true
}
