// Package cmd implements the CLI application to convert Nordnet exports into Dinero imports.
package cmd

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/bilag"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(c.HelpCommand(), "")
	c.Register(c.FlagsCommand(), "")
	c.Register(c.CommandsCommand(), "")

	c.Register(&convertCmd{}, "conversion")
	c.Register(&previewCmd{}, "conversion")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var verbose = flag.Bool("v", false, "Log skipped transactions on standard error.")

// Verbose reports whether the -v flag or BILAG_VERBOSE is set.
func Verbose() bool { return *verbose || config.Verbose }

// convertFile reads a Nordnet export and converts it, numbering vouchers from start.
func convertFile(input string, start int) ([]bilag.Entry, bilag.Summary, error) {
	txs, err := bilag.ReadNordnetFile(input)
	if err != nil {
		return nil, bilag.Summary{}, err
	}
	c := bilag.NewConverter(txs, start)
	if Verbose() {
		c.Logger = log.Default()
	}
	entries, err := c.Convert()
	if err != nil {
		return nil, bilag.Summary{}, fmt.Errorf("converting %q: %w", input, err)
	}
	s := c.Summary()
	if Verbose() {
		log.Printf("converted %d transactions from %q into %d entries in %d vouchers", s.Transactions(), input, s.Entries, s.Vouchers())
	}
	return entries, s, nil
}

// printMarkdown renders md for the terminal, or prints it raw if it cannot.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		log.Printf("warning: cannot render markdown: %v", err)
		out = md
	}
	fmt.Fprint(os.Stdout, out)
}
