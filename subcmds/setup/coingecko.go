// Copyright (c) 2025 BVK Chaitanya

package setup

import (
	"context"
	"flag"
	"fmt"

	"github.com/stardustdotbox/coingecko/coingecko"
	"github.com/stardustdotbox/coingecko/subcmds/cmdutil"
	"github.com/visvasity/cli"
)

type Coingecko struct {
	cmdutil.ClientFlags

	skipTesting bool
}

func (c *Coingecko) Purpose() string {
	return "Setup configures CoinGecko API access parameters"
}

func (c *Coingecko) Command() (string, *flag.FlagSet, cli.CmdFunc) {
	fset := flag.NewFlagSet("coingecko", flag.ContinueOnError)
	c.ClientFlags.SetFlags(fset)
	fset.BoolVar(&c.skipTesting, "skip-testing", false, "don't test the parameters")
	return "coingecko", fset, cli.CmdFunc(c.run)
}

func (c *Coingecko) Description() string {
	return `

Command "coingecko" stores a CoinGecko demo API key in the data
directory. Anonymous access works without a key, but with tighter
request quotas.

  $ coingecko setup coingecko -api-key=CG-xxxxxxxx

`
}

func (c *Coingecko) run(ctx context.Context, args []string) error {
	if len(c.ApiKey) == 0 {
		return fmt.Errorf("-api-key flag is required")
	}

	if !c.skipTesting {
		// Fetch a well-known coin to validate the key.
		client, err := c.GetClient()
		if err != nil {
			return err
		}
		if _, err := client.GetQuote(ctx, "bitcoin"); err != nil {
			return fmt.Errorf("could not validate the api key: %w", err)
		}
	}

	secrets, err := c.LoadSecrets()
	if err != nil {
		return err
	}
	secrets.Coingecko = &coingecko.Credentials{Key: c.ApiKey}
	if err := c.SaveSecrets(secrets); err != nil {
		return err
	}
	fmt.Printf("api key saved in %s\n", c.SecretsPath())
	return nil
}
