package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// infoCmd implements the "info" command.
type infoCmd struct {
	path string
}

func (*infoCmd) Name() string     { return "info" }
func (*infoCmd) Synopsis() string { return "prints the metadata of funds" }
func (*infoCmd) Usage() string {
	return `brf info [-path <jsonpath>] <cnpj>...

  Prints the metadata record of the funds as json, or only the value at
  <jsonpath>, for instance '$[0].socialName'.
`
}

func (c *infoCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.path, "path", "", "jsonpath expression to extract from the record")
}

func (c *infoCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: at least one CNPJ is required.")
		return subcommands.ExitUsageError
	}
	client, err := openClient()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	info, err := client.Info(ctx, f.Args()...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching fund info: %v\n", err)
		return subcommands.ExitFailure
	}

	value := info.Raw
	if c.path != "" {
		if value, err = info.Get(c.path); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
	}
	if s, ok := value.(string); ok {
		fmt.Fprintln(stdout, s)
		return subcommands.ExitSuccess
	}
	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(value); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
