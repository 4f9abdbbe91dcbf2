package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/sitescrape"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	// Run reports its own errors on stderr.
	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Now returns the current time. Replaced in tests.
	Now func() time.Time
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{Now: time.Now}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("sitescrape"),
		kong.Description("Scrape the first pages listed in a sitemap and print their cleaned text"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		err := fmt.Errorf("no arguments provided")
		reportError(stderr, err)
		return err
	}

	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		reportError(stderr, err)
		return err
	}

	deps, cleanup, err := m.wire(cli, stderr)
	if err != nil {
		reportError(stderr, err)
		return err
	}
	defer cleanup()

	deps.Ctx = ctx
	deps.Stdout = stdout
	deps.Stderr = stderr

	cmd := &ScrapeCmd{
		SitemapURL: cli.SitemapURL,
		Pages:      cli.Pages,
		Format:     cli.Format,
		Progress:   cli.Progress,
		Now:        m.Now,
	}
	return cmd.Run(deps)
}

// reportError writes err to w as "error: <message>".
func reportError(w io.Writer, err error) {
	fmt.Fprintf(w, "error: %s\n", errorText(err))
}

// errorText returns the message of an application error followed by its
// underlying cause, if any. Other errors are returned as is.
func errorText(err error) string {
	var e *sitescrape.Error
	if !errors.As(err, &e) {
		return err.Error()
	}
	msg := sitescrape.ErrorMessage(err)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Pages        int           `short:"n" default:"7" help:"Number of sitemap pages to scrape"`
	Concurrency  int           `short:"c" default:"0" help:"Maximum concurrent requests (0 starts every page at once)"`
	Timeout      time.Duration `short:"t" default:"30s" help:"Timeout per request (0 disables)"`
	Extractor    string        `enum:"clean,readability,trafilatura,markdown" default:"clean" help:"Text extractor: clean, readability, trafilatura or markdown"`
	Format       string        `enum:"text,json" default:"text" help:"Output format: text or json"`
	UserAgent    string        `name:"user-agent" help:"User-Agent header for plain HTTP requests"`
	Browser      bool          `help:"Render pages with headless Chrome"`
	KeepGoing    bool          `name:"keep-going" help:"Report failed pages instead of aborting the run"`
	Unique       bool          `help:"Drop repeated sitemap URLs"`
	AnyNamespace bool          `name:"any-namespace" help:"Accept sitemap elements without the sitemap namespace"`
	Include      []string      `sep:"none" help:"Only scrape URLs matching this regexp (repeatable)"`
	Exclude      []string      `sep:"none" help:"Skip URLs matching this regexp (repeatable)"`
	Verbose      bool          `short:"v" help:"Log every request to stderr"`
	Progress     bool          `help:"Show a progress spinner on stderr"`
	SitemapURL   string        `arg:"" name:"sitemap-url" help:"URL of the sitemap.xml to scrape"`
}
