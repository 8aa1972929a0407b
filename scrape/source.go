package scrape

import (
	"context"
	"fmt"

	"github.com/fwojciec/promos"
)

// Defaults holds the static field values a source contributes to every
// promotion it produces, plus the source's fallback policies for
// extractor misses. Fallback policy is deliberately per-source: what a
// missing weekday means depends on the editorial context of the article.
type Defaults struct {
	Origin            promos.Origin
	PaymentMethodType promos.PaymentMethodType
	PaymentMethodName string
	MerchantType      string
	MerchantName      string
	BenefitType       promos.BenefitType

	// CapUnit is the period every cap from this source applies to.
	// CapUnitFor, when set, selects the unit per fragment instead.
	CapUnit    promos.CapUnit
	CapUnitFor func(fragment string) promos.CapUnit

	// FallbackWeekdays substitutes for the weekday extractor reporting
	// no match. Must not be empty; a promotion never carries an empty
	// weekday set.
	FallbackWeekdays []string

	TimeRange string
	StartDate string
	EndDate   string
}

// Source describes one news source: where to fetch it, which of its
// fragments are promotions, and the defaults for fields the fragments
// don't state. All sources share one pipeline; only this configuration
// differs between them.
type Source struct {
	Name string
	URL  string

	// Relevant reports whether a fragment describes a promotion from
	// this source. Predicates conjoin evidence of the payment channel
	// and of the fuel merchant category where the article mixes topics.
	Relevant func(fragment string) bool

	Defaults Defaults
}

// run executes the shared pipeline for one source: fetch the article,
// split it into fragments, keep the relevant ones, extract attributes,
// and build one promotion per relevant fragment. Extraction misses are
// never errors; only fetch and parse failures abort the source.
func (s Source) run(ctx context.Context, fetcher promos.Fetcher, fragments promos.FragmentExtractor, builder *promos.Builder) ([]promos.Promotion, error) {
	html, err := fetcher.Fetch(ctx, s.URL)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", s.URL, err)
	}

	frags, err := fragments.Fragments(html)
	if err != nil {
		return nil, fmt.Errorf("split %s: %w", s.URL, err)
	}

	var out []promos.Promotion
	for _, fragment := range frags {
		if !s.Relevant(fragment) {
			continue
		}
		out = append(out, s.build(fragment, builder))
	}

	return out, nil
}

// build extracts the fragment's attributes, applies the source's
// fallbacks, and assembles the promotion record.
func (s Source) build(fragment string, builder *promos.Builder) promos.Promotion {
	value, _ := promos.ExtractPercentage(fragment) // 0 when absent

	var capAmount *int
	if amount, ok := promos.ExtractCap(fragment); ok {
		capAmount = &amount
	}

	days := promos.ExtractWeekdays(fragment)
	if len(days) == 0 {
		days = s.Defaults.FallbackWeekdays
	}

	capUnit := s.Defaults.CapUnit
	if s.Defaults.CapUnitFor != nil {
		capUnit = s.Defaults.CapUnitFor(fragment)
	}

	return builder.Build(promos.BuildParams{
		Origin:            s.Defaults.Origin,
		PaymentMethodType: s.Defaults.PaymentMethodType,
		PaymentMethodName: s.Defaults.PaymentMethodName,
		MerchantType:      s.Defaults.MerchantType,
		MerchantName:      s.Defaults.MerchantName,
		BenefitType:       s.Defaults.BenefitType,
		BenefitValue:      value,
		CapAmount:         capAmount,
		CapUnit:           capUnit,
		Weekdays:          days,
		TimeRange:         s.Defaults.TimeRange,
		StartDate:         s.Defaults.StartDate,
		EndDate:           s.Defaults.EndDate,
		ConditionsText:    fragment,
		SourceURL:         s.URL,
	})
}
