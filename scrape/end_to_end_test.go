package scrape_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fwojciec/promos"
	promosgoquery "github.com/fwojciec/promos/goquery"
	promoshttp "github.com/fwojciec/promos/http"
	"github.com/fwojciec/promos/scrape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const articleHTML = `<html><body>
	<h1>Descuentos de febrero</h1>
	<p>Las billeteras renuevan sus beneficios este mes.</p>
	<ul>
		<li>Combustible: 30% OFF todos los lunes con tope mensual de $6.000.</li>
		<li>Supermercados: 10% los miércoles.</li>
	</ul>
	<p>Los beneficios rigen durante todo febrero.</p>
</body></html>`

func TestScraper_EndToEnd(t *testing.T) {
	t.Parallel()

	t.Run("scrapes a served article into promotion records", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			_, _ = w.Write([]byte(articleHTML))
		}))
		defer server.Close()

		fetcher := promoshttp.NewFetcher()
		defer fetcher.Close()

		src := scrape.MercadoPago()
		src.URL = server.URL

		scraper := &scrape.Scraper{
			Fetcher:   fetcher,
			Fragments: promosgoquery.NewFragmentExtractor(),
			Builder:   &promos.Builder{},
			Sources:   []scrape.Source{src},
		}

		promotions, srcErrs, err := scraper.Run(context.Background())
		require.NoError(t, err)
		require.Empty(t, srcErrs)
		require.Len(t, promotions, 1, "only the fuel fragment is relevant")

		p := promotions[0]
		assert.Equal(t, 30, p.BenefitValue)
		require.NotNil(t, p.CapAmount)
		assert.Equal(t, 6000, *p.CapAmount)
		assert.Equal(t, promos.CapPerMonth, p.CapUnit)
		assert.Equal(t, []string{"lunes"}, p.Weekdays)
		assert.Equal(t, "Combustible: 30% OFF todos los lunes con tope mensual de $6.000.", p.ConditionsText)
		assert.Equal(t, server.URL, p.SourceURL)
		require.NoError(t, p.Validate())
	})

	t.Run("a source behind a failing server is isolated", func(t *testing.T) {
		t.Parallel()

		okServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(articleHTML))
		}))
		defer okServer.Close()

		downServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer downServer.Close()

		fetcher := promoshttp.NewFetcher()
		defer fetcher.Close()

		up := scrape.MercadoPago()
		up.URL = okServer.URL
		down := scrape.MercadoPago()
		down.Name = "mercado-pago-down"
		down.URL = downServer.URL

		scraper := &scrape.Scraper{
			Fetcher:   fetcher,
			Fragments: promosgoquery.NewFragmentExtractor(),
			Builder:   &promos.Builder{},
			Sources:   []scrape.Source{up, down},
		}

		promotions, srcErrs, err := scraper.Run(context.Background())
		require.NoError(t, err)
		assert.Len(t, promotions, 1)
		require.Len(t, srcErrs, 1)
		assert.Equal(t, "mercado-pago-down", srcErrs[0].Source)
		assert.Contains(t, srcErrs[0].Error(), "503")
	})
}
