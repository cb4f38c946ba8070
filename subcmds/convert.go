// Copyright (c) 2025 BVK Chaitanya

package subcmds

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/stardustdotbox/coingecko/amount"
	"github.com/stardustdotbox/coingecko/convert"
	"github.com/stardustdotbox/coingecko/format"
	"github.com/stardustdotbox/coingecko/subcmds/cmdutil"
	"github.com/visvasity/cli"
)

type Convert struct {
	cmdutil.ClientFlags
}

func (c *Convert) Purpose() string {
	return "Converts a fiat or crypto amount to a crypto asset quantity"
}

func (c *Convert) Command() (string, *flag.FlagSet, cli.CmdFunc) {
	fset := flag.NewFlagSet("convert", flag.ContinueOnError)
	c.ClientFlags.SetFlags(fset)
	return "convert", fset, cli.CmdFunc(c.run)
}

func (c *Convert) Description() string {
	return `

Command "convert" computes the quantity of a crypto asset equivalent
to an amount in JPY, USD or another crypto asset. Crypto to crypto
conversions pivot through the USD price of both assets.

  $ coingecko convert 100JPY ETH
  $ coingecko convert 0.25BTC ETH

`
}

func (c *Convert) run(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("this command takes two (amount+currency, asset) arguments")
	}
	amt, err := amount.Parse(args[0])
	if err != nil {
		return err
	}
	client, err := c.GetClient()
	if err != nil {
		return err
	}
	quantity, err := convert.New(client).Convert(ctx, amt, args[1])
	if err != nil {
		return err
	}
	fmt.Println(format.CryptoQuantity(quantity, strings.ToUpper(args[1])))
	return nil
}
