// Package goquery provides a goquery-based implementation of
// promos.FragmentExtractor that splits article HTML into paragraph and
// list-item text fragments.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/promos"
)

// Ensure FragmentExtractor implements promos.FragmentExtractor at compile time.
var _ promos.FragmentExtractor = (*FragmentExtractor)(nil)

// FragmentExtractor extracts text fragments from article HTML.
type FragmentExtractor struct{}

// NewFragmentExtractor creates a new FragmentExtractor.
func NewFragmentExtractor() *FragmentExtractor {
	return &FragmentExtractor{}
}

// Fragments parses html and returns the flattened visible text of each
// <p> and <li> element in document order. Whitespace runs within a
// fragment collapse to single spaces; fragments with no visible text
// are dropped. The sequence is not deduplicated.
func (e *FragmentExtractor) Fragments(html string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, promos.Errorf(promos.EINVALID, "failed to parse HTML: %v", err)
	}

	var fragments []string
	doc.Find("p, li").Each(func(_ int, sel *goquery.Selection) {
		text := flatten(sel.Text())
		if text == "" {
			return
		}
		fragments = append(fragments, text)
	})

	return fragments, nil
}

// flatten collapses all whitespace runs to single spaces and trims the
// result, so a fragment reads as one line regardless of source markup.
func flatten(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
