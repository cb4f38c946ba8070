// Copyright (c) 2025 BVK Chaitanya

// Command coingecko prints crypto asset prices and converts between
// fiat and crypto amounts using the CoinGecko public API.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/stardustdotbox/coingecko/subcmds"
	"github.com/stardustdotbox/coingecko/subcmds/setup"
	"github.com/visvasity/cli"
	"github.com/visvasity/sglog"
)

var errUsage = errors.New("usage")

// commandNames are the explicit subcommands; anything else on the
// command line is treated as the positional price/convert surface.
var commandNames = []string{"price", "convert", "setup", "help", "flags", "commands"}

func main() {
	if err := run(context.Background(), os.Args[1:]); err != nil {
		if !errors.Is(err, errUsage) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, osArgs []string) error {
	closeLogs := setupLogging()
	defer closeLogs()

	if len(osArgs) == 0 {
		printUsage(os.Stderr)
		return errUsage
	}
	args, err := rewriteArgs(osArgs)
	if err != nil {
		return err
	}

	cmds := []cli.Command{
		new(subcmds.Price),
		new(subcmds.Convert),
		cli.NewGroup("setup", "Configure API access parameters", new(setup.Coingecko)),
	}
	return cli.Run(ctx, cmds, args)
}

// rewriteArgs maps the positional surface onto subcommands: a single
// asset argument becomes "price <asset>" and an amount+asset pair
// becomes "convert <amount><currency> <asset>". Explicit subcommands
// and flags pass through unchanged.
func rewriteArgs(args []string) ([]string, error) {
	if strings.HasPrefix(args[0], "-") || slices.Contains(commandNames, args[0]) {
		return args, nil
	}
	switch len(args) {
	case 1:
		return []string{"price", args[0]}, nil
	case 2:
		return []string{"convert", args[0], args[1]}, nil
	}
	return nil, fmt.Errorf("too many arguments")
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `Usage:
  coingecko <asset>                      prints price and market data
  coingecko <amount><currency> <asset>   converts the amount to an asset quantity
  coingecko <command> [flags] ...        see "coingecko help"

Examples:
  coingecko ETH
  coingecko 100JPY ETH
  coingecko 0.25BTC USDC`)
}

// setupLogging routes slog output to per-severity log files when
// COINGECKO_LOG_DIR is set and discards it otherwise, so that reports
// on stdout stay clean.
func setupLogging() func() {
	if dir := os.Getenv("COINGECKO_LOG_DIR"); len(dir) != 0 {
		backend := sglog.NewBackend(&sglog.Options{LogDirs: []string{dir}})
		slog.SetDefault(slog.New(backend.Handler()))
		return func() { backend.Close() }
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
	return func() {}
}
