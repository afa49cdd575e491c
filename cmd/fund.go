package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/brfunds"
	"github.com/etnz/brfunds/renderer"
	"github.com/google/subcommands"
)

// fundCmd implements the "fund" command.
type fundCmd struct {
	rangeFlags
	metric     string
	benchmarks string
	assetType  string
	csv        bool
}

func (*fundCmd) Name() string     { return "fund" }
func (*fundCmd) Synopsis() string { return "prints a metric of funds over time" }
func (*fundCmd) Usage() string {
	return `brf fund [-metric rentability] [-b cdi,ibov] [-start dd/mm/yy] [-end dd/mm/yy] [-period 1y] [-csv] <cnpj>...

  Prints one column per fund, and per benchmark, with the daily values of
  the metric. Percent metrics are printed as ratios.

  Without any range flag the whole history, since 2000-01-01, is printed.
`
}

func (c *fundCmd) SetFlags(f *flag.FlagSet) {
	c.rangeFlags.SetFlags(f)
	f.StringVar(&c.metric, "metric", string(brfunds.Rentability), "Metric to print: rentability, volatility, shareholders, networth or drawdown")
	f.StringVar(&c.benchmarks, "b", "", "Comma separated benchmarks to add, like cdi,ibov,ipca (rentability only)")
	f.StringVar(&c.assetType, "type", "", "Fund category, used by the page source: "+strings.Join(brfunds.AssetTypes, ", "))
	f.BoolVar(&c.csv, "csv", false, "Print comma separated values instead of a table")
}

func (c *fundCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: at least one CNPJ is required.")
		return subcommands.ExitUsageError
	}
	metric, err := brfunds.ParseMetric(c.metric)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	client, err := openClient()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	table, err := client.Fund(ctx, brfunds.FundQuery{
		IDs:        f.Args(),
		Metric:     metric,
		Benchmarks: commaList(c.benchmarks),
		Start:      c.start,
		End:        c.end,
		Period:     c.period,
		AssetType:  c.assetType,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching funds: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.csv {
		if err := renderer.WriteCSV(stdout, table); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.RenderTable(table, renderer.Options{
		Title:   strings.ToUpper(metric.String()[:1]) + metric.String()[1:],
		Default: renderer.FormatFor(metric),
	}))
	return subcommands.ExitSuccess
}
