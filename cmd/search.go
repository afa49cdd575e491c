package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/brfunds/renderer"
	"github.com/google/subcommands"
)

// searchCmd implements the "search" command.
type searchCmd struct {
	limit int
}

func (*searchCmd) Name() string     { return "search" }
func (*searchCmd) Synopsis() string { return "searches funds by name" }
func (*searchCmd) Usage() string {
	return `brf search [-n 20] <name>

  Searches funds whose name matches <name> and prints their CNPJ, ready to
  be used with 'brf fund'. Accents are ignored.
`
}

func (c *searchCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.limit, "n", 20, "Maximum number of results")
}

func (c *searchCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: a fund name is required.")
		return subcommands.ExitUsageError
	}
	name := strings.Join(f.Args(), " ")

	client, err := openClient()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	funds, err := client.Search(ctx, name, c.limit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error searching funds: %v\n", err)
		return subcommands.ExitFailure
	}
	if len(funds) == 0 {
		fmt.Fprintf(stdout, "No results found for '%s'.\n", name)
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.RenderSearch(funds))
	return subcommands.ExitSuccess
}
