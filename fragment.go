package promos

// FragmentExtractor splits an HTML document into text fragments. A
// fragment is the flattened visible text of one paragraph-or-list-item
// level element and is the atomic unit of relevance filtering and
// attribute extraction.
type FragmentExtractor interface {
	// Fragments returns the fragments of the document in document
	// order. The sequence is not deduplicated; empty fragments are
	// dropped.
	Fragments(html string) ([]string, error)
}
