package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/bilag"
	"github.com/google/subcommands"
)

type convertCmd struct {
	input  string
	start  int
	output string
}

func (*convertCmd) Name() string { return "convert" }
func (*convertCmd) Synopsis() string {
	return "converts a Nordnet export into a Dinero voucher import"
}
func (*convertCmd) Usage() string {
	return `n2d convert [-i <nordnet.csv>] [-n <first voucher>] [-o <output.csv>]

  Reads a Nordnet transaction export (UTF-16, tab separated) and writes the
  matching Dinero vouchers (semicolon separated) to the standard output, or to
  the -o file.

  Nothing is written if any transaction cannot be read or converted.

Usage Examples:
$ n2d convert -i transactions.csv -n 67 > dinero.csv

`
}

func (c *convertCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.input, "i", config.Input, "Nordnet export to convert.")
	f.IntVar(&c.start, "n", config.StartVoucher, "Number of the first voucher.")
	f.StringVar(&c.output, "o", "", "Output file. Defaults to the standard output.")
}

func (c *convertCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 0 {
		fmt.Fprintf(os.Stderr, "Error: unexpected arguments %q\n", f.Args())
		return subcommands.ExitUsageError
	}
	if c.start < 1 {
		fmt.Fprintf(os.Stderr, "Error: the first voucher number must be positive, got %d\n", c.start)
		return subcommands.ExitUsageError
	}

	entries, _, err := convertFile(c.input, c.start)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.output == "" {
		err = bilag.EncodeDinero(os.Stdout, entries)
	} else {
		err = bilag.WriteDineroFile(c.output, entries)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
