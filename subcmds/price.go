// Copyright (c) 2025 BVK Chaitanya

package subcmds

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/stardustdotbox/coingecko/report"
	"github.com/stardustdotbox/coingecko/subcmds/cmdutil"
	"github.com/visvasity/cli"
)

type Price struct {
	cmdutil.ClientFlags
}

func (c *Price) Purpose() string {
	return "Prints price and market data for a crypto asset"
}

func (c *Price) Command() (string, *flag.FlagSet, cli.CmdFunc) {
	fset := flag.NewFlagSet("price", flag.ContinueOnError)
	c.ClientFlags.SetFlags(fset)
	return "price", fset, cli.CmdFunc(c.run)
}

func (c *Price) Description() string {
	return `

Command "price" prints the current USD and JPY prices for a crypto
asset along with market cap, valuation, volume and supply statistics
when the API provides them.

  $ coingecko price ETH

`
}

func (c *Price) run(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("this command takes one (asset) argument")
	}
	client, err := c.GetClient()
	if err != nil {
		return err
	}
	return report.New(client, os.Stdout).Show(ctx, args[0])
}
