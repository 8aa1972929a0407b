package goquery_test

import (
	"testing"

	"github.com/fwojciec/promos"
	promosgoquery "github.com/fwojciec/promos/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFragmentExtractor_Fragments(t *testing.T) {
	t.Parallel()

	t.Run("extracts paragraphs and list items in document order", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<p>First paragraph.</p>
			<ul>
				<li>First item</li>
				<li>Second item</li>
			</ul>
			<p>Second paragraph.</p>
		</body></html>`

		extractor := promosgoquery.NewFragmentExtractor()

		fragments, err := extractor.Fragments(html)
		require.NoError(t, err)
		assert.Equal(t, []string{
			"First paragraph.",
			"First item",
			"Second item",
			"Second paragraph.",
		}, fragments)
	})

	t.Run("flattens nested markup to visible text", func(t *testing.T) {
		t.Parallel()

		html := `<p>Combustible: <strong>30% OFF</strong> todos los <em>lunes</em>.</p>`

		extractor := promosgoquery.NewFragmentExtractor()

		fragments, err := extractor.Fragments(html)
		require.NoError(t, err)
		assert.Equal(t, []string{"Combustible: 30% OFF todos los lunes."}, fragments)
	})

	t.Run("collapses whitespace runs", func(t *testing.T) {
		t.Parallel()

		html := "<p>  spread \n\t across   lines  </p>"

		extractor := promosgoquery.NewFragmentExtractor()

		fragments, err := extractor.Fragments(html)
		require.NoError(t, err)
		assert.Equal(t, []string{"spread across lines"}, fragments)
	})

	t.Run("drops empty fragments", func(t *testing.T) {
		t.Parallel()

		html := `<p></p><p>  </p><p>kept</p>`

		extractor := promosgoquery.NewFragmentExtractor()

		fragments, err := extractor.Fragments(html)
		require.NoError(t, err)
		assert.Equal(t, []string{"kept"}, fragments)
	})

	t.Run("preserves duplicate fragments", func(t *testing.T) {
		t.Parallel()

		html := `<p>repeat</p><p>repeat</p>`

		extractor := promosgoquery.NewFragmentExtractor()

		fragments, err := extractor.Fragments(html)
		require.NoError(t, err)
		assert.Equal(t, []string{"repeat", "repeat"}, fragments)
	})

	t.Run("returns nil for a document without fragments", func(t *testing.T) {
		t.Parallel()

		extractor := promosgoquery.NewFragmentExtractor()

		fragments, err := extractor.Fragments("<html><body><div>no blocks</div></body></html>")
		require.NoError(t, err)
		assert.Nil(t, fragments)
	})
}

// Compile-time verification that FragmentExtractor implements promos.FragmentExtractor
var _ promos.FragmentExtractor = (*promosgoquery.FragmentExtractor)(nil)
