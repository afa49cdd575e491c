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

// compareCmd implements the "compare" command.
type compareCmd struct {
	rangeFlags
	assetType  string
	benchmarks string
	simple     bool
	full       bool
	rebase     bool
	csv        bool
}

func (*compareCmd) Name() string     { return "compare" }
func (*compareCmd) Synopsis() string { return "compares funds by name using their pages" }
func (*compareCmd) Usage() string {
	return `brf compare [-type acao] [-b cdi] [-start dd/mm/yy] [-end dd/mm/yy] [-period 1y] [-simple] [-full] [-rebase] [-csv] <name>...

  Prints one column per fund, read from its page on comparadordefundos.
  Quote names made of several words: brf compare "Alaska Black" "Dynamo Cougar"
`
}

func (c *compareCmd) SetFlags(f *flag.FlagSet) {
	c.rangeFlags.SetFlags(f)
	f.StringVar(&c.assetType, "type", brfunds.DefaultAssetType, "Fund category: "+strings.Join(brfunds.AssetTypes, ", "))
	f.StringVar(&c.benchmarks, "b", "", "Comma separated benchmarks to add, like cdi,ibov")
	f.BoolVar(&c.simple, "simple", false, "Shorten fund names, cutting them before 'FUNDO'")
	f.BoolVar(&c.full, "full", false, "Add the net worth and shareholders of every fund")
	f.BoolVar(&c.rebase, "rebase", false, "Print the cumulative return since the first day instead of the quota")
	f.BoolVar(&c.csv, "csv", false, "Print comma separated values instead of a table")
}

func (c *compareCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: at least one fund name is required.")
		return subcommands.ExitUsageError
	}
	client, err := openClient()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	table, err := client.Funds(ctx, brfunds.FundsQuery{
		Names:      f.Args(),
		AssetType:  c.assetType,
		Benchmarks: commaList(c.benchmarks),
		Start:      c.start,
		End:        c.end,
		Period:     c.period,
		Simplified: c.simple,
		FullData:   c.full,
		Rebase:     c.rebase,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error comparing funds: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.csv {
		if err := renderer.WriteCSV(stdout, table); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}
	opts := renderer.Options{Title: "Comparison", Default: renderer.Plain, Columns: renderer.FullDataFormats(table.Columns())}
	if c.rebase {
		opts.Default = renderer.Ratio
	}
	printMarkdown(renderer.RenderTable(table, opts))
	return subcommands.ExitSuccess
}
