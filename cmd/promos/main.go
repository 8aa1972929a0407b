package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/promos"
	promosgoquery "github.com/fwojciec/promos/goquery"
	promoshttp "github.com/fwojciec/promos/http"
	"github.com/fwojciec/promos/scrape"
	promoszerolog "github.com/fwojciec/promos/zerolog"
	"github.com/rs/zerolog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes one full scrape-and-print cycle: every registered source
// is scraped and the aggregate promotion list is printed to stdout as
// JSON. Per-source failures are reported on stderr and skipped unless
// --fail-fast is set; the run only fails outright when every source
// fails.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("promos"),
		kong.Description("Scrape fuel promotion articles and print structured records"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	level := zerolog.InfoLevel
	if cli.Verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: stderr}).
		Level(level).
		With().Timestamp().Logger()

	fetcher := promoszerolog.NewFetcher(
		promoshttp.NewFetcher(promoshttp.WithTimeout(cli.Timeout)),
		logger,
	)
	defer fetcher.Close()

	scraper := &scrape.Scraper{
		Fetcher:     fetcher,
		Fragments:   promosgoquery.NewFragmentExtractor(),
		Builder:     &promos.Builder{},
		Sources:     scrape.DefaultSources(),
		RateLimiter: scrape.NewHostLimiter(cli.RPS),
		Concurrency: cli.Concurrency,
		FailFast:    cli.FailFast,
	}

	promotions, srcErrs, err := scraper.Run(ctx)
	if err != nil {
		return err
	}

	for _, srcErr := range srcErrs {
		logger.Error().
			Err(srcErr.Err).
			Str("source", srcErr.Source).
			Msg("source failed, skipping")
	}
	if len(scraper.Sources) > 0 && len(srcErrs) == len(scraper.Sources) {
		return fmt.Errorf("all %d sources failed", len(srcErrs))
	}

	return writePromotions(stdout, promotions)
}

// writePromotions prints the aggregate as indented UTF-8 JSON.
func writePromotions(w io.Writer, promotions []promos.Promotion) error {
	if promotions == nil {
		promotions = []promos.Promotion{}
	}

	out, err := json.MarshalIndent(promotions, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode promotions: %w", err)
	}
	out = append(out, '\n')

	if _, err := w.Write(out); err != nil {
		return fmt.Errorf("failed to write promotions: %w", err)
	}
	return nil
}

// CLI defines the command-line interface structure for Kong. Running
// with no arguments performs one scrape with the defaults.
type CLI struct {
	Timeout     time.Duration `short:"t" default:"15s" help:"Fetch timeout per source"`
	Concurrency int           `short:"c" default:"0" help:"Concurrent source limit (0 runs all sources at once)"`
	RPS         float64       `name:"rps" default:"1" help:"Max requests per second per host"`
	FailFast    bool          `help:"Abort the run on the first source failure"`
	Verbose     bool          `short:"v" help:"Enable debug logging"`
}
