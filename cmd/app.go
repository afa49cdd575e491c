// Package cmd implements the brf command line application.
package cmd

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/brfunds"
	"github.com/etnz/brfunds/comparador"
	"github.com/etnz/brfunds/compareativos"
	"github.com/etnz/brfunds/config"
	"github.com/google/subcommands"
	"github.com/phuslu/log"
)

// Commands lists the brf subcommands.
var Commands = []subcommands.Command{
	&searchCmd{},
	&infoCmd{},
	&fundCmd{},
	&compareCmd{},
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, cmd := range Commands {
		c.Register(cmd, "funds")
	}
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	configFile = flag.String("config", "", "Path to a TOML or YAML configuration file (default: brfunds/config.toml in the user configuration directory, when present)")
	logLevel   = flag.String("log-level", "", "Overrides the logging level: trace, debug, info, warn or error")
	sourceKind = flag.String("source", "", "Overrides the remote source: api or page")
)

// stdout is where commands print their results.
var stdout io.Writer = os.Stdout

// loadConfig loads the configuration file, the environment and the global flags.
func loadConfig() (*config.Config, error) {
	var paths []string
	switch {
	case *configFile != "":
		paths = append(paths, *configFile)
	case config.DefaultPath() != "":
		if _, err := os.Stat(config.DefaultPath()); err == nil {
			paths = append(paths, config.DefaultPath())
		}
	}
	cfg, err := config.Read(paths...)
	if err != nil {
		return nil, err
	}
	if *logLevel != "" {
		cfg.Logging.Level = *logLevel
	}
	if *sourceKind != "" {
		cfg.Source.Kind = *sourceKind
	}
	return cfg, cfg.Validate()
}

// NewClient builds the client described by cfg. Fund pages are always
// available to compare funds, whatever the configured source.
func NewClient(cfg *config.Config, logger *log.Logger) (*brfunds.Client, error) {
	loc, err := cfg.LoadLocation()
	if err != nil {
		return nil, err
	}
	timeout := time.Duration(cfg.Source.Timeout)

	pages := comparador.New(cfg.Source.PageURL, timeout)
	pages.UserAgent = cfg.Source.UserAgent
	pages.Logger = logger

	var source brfunds.Source = pages
	if cfg.Source.Kind != config.PageSource {
		api := compareativos.New(cfg.Source.APIURL, timeout)
		api.UserAgent = cfg.Source.UserAgent
		api.Logger = logger
		source = api
	}

	retrier := &brfunds.Retrier{
		Attempts: cfg.Retry.Attempts,
		Interval: time.Duration(cfg.Retry.Interval),
		Logger:   logger,
	}
	return brfunds.New(source,
		brfunds.WithPages(pages),
		brfunds.WithRetrier(retrier),
		brfunds.WithLocation(loc),
		brfunds.WithLogger(logger),
	), nil
}

// openClient loads the configuration and returns the client it describes.
func openClient() (*brfunds.Client, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return NewClient(cfg, cfg.Logging.NewLogger(os.Stderr))
}

// printMarkdown renders md for the terminal. It falls back to the raw
// markdown when stdout is not the terminal or rendering fails.
func printMarkdown(md string) {
	if stdout != os.Stdout {
		fmt.Fprint(stdout, md)
		return
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(0))
	if err != nil {
		fmt.Fprint(stdout, md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Fprint(stdout, md)
		return
	}
	fmt.Fprint(stdout, out)
}

// commaList splits a comma separated flag value, dropping empty items.
func commaList(s string) []string {
	var list []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			list = append(list, item)
		}
	}
	return list
}

// rangeFlags are the date range flags shared by fund and compare.
type rangeFlags struct {
	start, end, period string
}

func (r *rangeFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&r.start, "start", "", "First day of the range, as dd/mm/yy")
	f.StringVar(&r.end, "end", "", "Last day of the range, as dd/mm/yy")
	f.StringVar(&r.period, "period", "", "Length of the range when a bound is missing: 1w, 2w, 1m, 2m, 3m, 6m, 1y, 2y, 3y, 4y or 5y")
}
