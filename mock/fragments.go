package mock

import "github.com/fwojciec/promos"

var _ promos.FragmentExtractor = (*FragmentExtractor)(nil)

// FragmentExtractor is a mock implementation of promos.FragmentExtractor.
type FragmentExtractor struct {
	FragmentsFn func(html string) ([]string, error)
}

func (e *FragmentExtractor) Fragments(html string) ([]string, error) {
	return e.FragmentsFn(html)
}
