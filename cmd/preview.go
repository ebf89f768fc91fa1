package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/etnz/bilag/renderer"
	"github.com/google/subcommands"
)

type previewCmd struct {
	input     string
	start     int
	noEntries bool
}

func (*previewCmd) Name() string { return "preview" }
func (*previewCmd) Synopsis() string {
	return "shows the vouchers a conversion would create"
}
func (*previewCmd) Usage() string {
	return `n2d preview [-i <nordnet.csv>] [-n <first voucher>] [-summary]

  Converts a Nordnet export like 'convert' does, and displays the resulting
  vouchers and a summary of the skipped transactions instead of writing the
  Dinero import.
`
}

func (c *previewCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.input, "i", config.Input, "Nordnet export to convert.")
	f.IntVar(&c.start, "n", config.StartVoucher, "Number of the first voucher.")
	f.BoolVar(&c.noEntries, "summary", false, "Only display the summary.")
}

func (c *previewCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.start < 1 {
		fmt.Fprintf(os.Stderr, "Error: the first voucher number must be positive, got %d\n", c.start)
		return subcommands.ExitUsageError
	}

	entries, summary, err := convertFile(c.input, c.start)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	p := &renderer.Preview{Source: filepath.Base(c.input), Summary: summary, Entries: entries}
	printMarkdown(renderer.RenderPreview(p, renderer.PreviewRenderOptions{SkipEntries: c.noEntries}))
	return subcommands.ExitSuccess
}
