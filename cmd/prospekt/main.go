package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/ksiska/prospekt"
	"github.com/ksiska/prospekt/fs"
	"github.com/ksiska/prospekt/goquery"
	prospekthttp "github.com/ksiska/prospekt/http"
	"github.com/ksiska/prospekt/rod"
	prospektslog "github.com/ksiska/prospekt/slog"
	"github.com/ksiska/prospekt/sqlite"
)

// TargetURL is the fixed catalog listing page this driver scrapes.
const TargetURL = "https://www.prospektmaschine.de/hypermarkte/"

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

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("prospekt"),
		kong.Description("Scrape leaflet listings from the Prospektmaschine catalog page"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Vars{"target_url": TargetURL},
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	_, err = parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	timeout := cli.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	// Select the fetch boundary: plain HTTP for the static listing,
	// headless Chrome when the site serves a JS-rendered variant.
	var fetcher prospekt.Fetcher
	if cli.Browser {
		rodFetcher, err := rod.NewFetcher()
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
			return fmt.Errorf("failed to start browser: %w", err)
		}
		fetcher = rodFetcher
	} else {
		fetcher = prospekthttp.NewFetcher(prospekthttp.WithTimeout(timeout))
	}
	fetcher = prospektslog.NewLoggingFetcher(fetcher, logger)
	defer fetcher.Close()

	var extractor prospekt.Extractor = prospektslog.NewLoggingExtractor(goquery.NewExtractor(), logger)
	writer := fs.NewWriter(cli.Output)

	fetchCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	html, err := fetcher.Fetch(fetchCtx, cli.URL)
	if err != nil {
		return err
	}

	leaflets, err := extractor.Extract(html)
	if err != nil {
		return err
	}

	if err := writer.WriteLeaflets(ctx, leaflets); err != nil {
		return err
	}

	// Optionally record the run in the history database.
	if cli.DB != "" {
		db := sqlite.NewDB(cli.DB)
		if err := db.Open(); err != nil {
			return err
		}
		defer db.Close()

		run := &prospekt.Run{
			SourceURL:    cli.URL,
			DocumentHash: sqlite.HashDocument(html),
			Leaflets:     leaflets,
		}
		if err := sqlite.NewRunService(db).CreateRun(ctx, run); err != nil {
			return err
		}
		logger.Info("run recorded", "id", run.ID, "hash", run.DocumentHash)
	}

	fmt.Fprintf(stdout, "Scraped %d leaflets and saved to %s\n", len(leaflets), cli.Output)
	return nil
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	URL     string        `default:"${target_url}" help:"Catalog listing URL to scrape"`
	Output  string        `short:"o" default:"leaflets.json" help:"Output JSON file path"`
	DB      string        `help:"Optional SQLite file for run history"`
	Browser bool          `short:"b" help:"Fetch with a headless browser instead of plain HTTP"`
	Timeout time.Duration `short:"t" default:"10s" help:"Fetch timeout"`
	Verbose bool          `short:"v" help:"Enable info logging"`
}
