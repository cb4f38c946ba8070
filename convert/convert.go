// Copyright (c) 2025 BVK Chaitanya

// Package convert computes fiat→crypto and crypto→crypto conversions
// from CoinGecko spot prices.
package convert

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/stardustdotbox/coingecko/amount"
	"github.com/stardustdotbox/coingecko/asset"
	"github.com/stardustdotbox/coingecko/coingecko"
)

var (
	// ErrUnsupportedCurrency is returned when the source currency is
	// neither JPY, USD nor a recognized crypto ticker.
	ErrUnsupportedCurrency = errors.New("unsupported currency")

	// ErrUnknownAsset is returned when the price API has no data for
	// an asset.
	ErrUnknownAsset = errors.New("unknown asset")

	// ErrPriceUnavailable is returned when a required price could not
	// be obtained.
	ErrPriceUnavailable = errors.New("price unavailable")
)

// PriceSource supplies spot prices for coin identifiers.
type PriceSource interface {
	GetQuote(ctx context.Context, id string) (*coingecko.Quote, error)
}

type Converter struct {
	source PriceSource
}

func New(source PriceSource) *Converter {
	return &Converter{source: source}
}

// Convert computes the quantity of the target asset equivalent to the
// given amount. The rate path is selected by the amount's currency:
// JPY and USD amounts divide by the target's fiat price, while crypto
// amounts pivot through the USD price of both assets.
func (c *Converter) Convert(ctx context.Context, amt *amount.Amount, target string) (decimal.Decimal, error) {
	switch {
	case amt.Currency == "JPY":
		price, err := c.jpyPrice(ctx, target)
		if err != nil {
			return decimal.Zero, err
		}
		return amt.Value.Div(price), nil

	case amt.Currency == "USD":
		price, err := c.usdPrice(ctx, target)
		if err != nil {
			return decimal.Zero, err
		}
		return amt.Value.Div(price), nil

	case asset.KnownTicker(amt.Currency):
		from, err := c.usdPrice(ctx, amt.Currency)
		if err != nil {
			return decimal.Zero, err
		}
		to, err := c.usdPrice(ctx, target)
		if err != nil {
			return decimal.Zero, err
		}
		return amt.Value.Mul(from).Div(to), nil
	}
	return decimal.Zero, fmt.Errorf("%q: %w", amt.Currency, ErrUnsupportedCurrency)
}

func (c *Converter) usdPrice(ctx context.Context, name string) (decimal.Decimal, error) {
	quote, err := c.getQuote(ctx, name)
	if err != nil {
		return decimal.Zero, err
	}
	return requirePrice(name, quote.USD)
}

func (c *Converter) jpyPrice(ctx context.Context, name string) (decimal.Decimal, error) {
	quote, err := c.getQuote(ctx, name)
	if err != nil {
		return decimal.Zero, err
	}
	return requirePrice(name, quote.JPY)
}

func (c *Converter) getQuote(ctx context.Context, name string) (*coingecko.Quote, error) {
	id := asset.Resolve(name)
	quote, err := c.source.GetQuote(ctx, id)
	if err != nil {
		if errors.Is(err, coingecko.ErrNotFound) {
			return nil, fmt.Errorf("%q: %w", name, ErrUnknownAsset)
		}
		return nil, fmt.Errorf("%q: %w: %v", name, ErrPriceUnavailable, err)
	}
	return quote, nil
}

// requirePrice rejects absent and zero prices. A zero price cannot be
// divided by, so it is reported as unavailable.
func requirePrice(name string, price *decimal.Decimal) (decimal.Decimal, error) {
	if price == nil || price.IsZero() {
		return decimal.Zero, fmt.Errorf("%q: %w", name, ErrPriceUnavailable)
	}
	return *price, nil
}
