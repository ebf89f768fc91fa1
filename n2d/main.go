// Command n2d converts Nordnet transaction exports into Dinero voucher imports.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/etnz/bilag/cmd"
	"github.com/etnz/bilag/docs"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// completion describes the command line for shell completion.
func completion() *complete.Command {
	conversion := map[string]complete.Predictor{
		"i": predict.Files("*.csv"),
		"n": predict.Nothing,
	}
	convert := map[string]complete.Predictor{"o": predict.Files("*.csv")}
	for k, v := range conversion {
		convert[k] = v
	}
	preview := map[string]complete.Predictor{"summary": predict.Nothing}
	for k, v := range conversion {
		preview[k] = v
	}
	return &complete.Command{
		Sub: map[string]*complete.Command{
			"convert": {Flags: convert},
			"preview": {Flags: preview},
			"topic":   {Args: predict.Set(append(docs.Topics(), "*"))},
			"help":    {},
		},
		Flags: map[string]complete.Predictor{"v": predict.Nothing},
	}
}

func main() {
	// Exits when the shell is asking for completions.
	completion().Complete("n2d")

	if err := cmd.LoadConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(int(subcommands.ExitUsageError))
	}

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
