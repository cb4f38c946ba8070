// Copyright (c) 2025 BVK Chaitanya

// Package report prints a price and market-data report for a single
// crypto asset.
package report

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/stardustdotbox/coingecko/asset"
	"github.com/stardustdotbox/coingecko/coingecko"
	"github.com/stardustdotbox/coingecko/format"
)

var (
	// ErrUnknownAsset is returned when the price API has no data for
	// the requested asset.
	ErrUnknownAsset = errors.New("unknown asset")

	// ErrPriceUnavailable is returned when the USD or JPY spot price
	// is missing from the snapshot.
	ErrPriceUnavailable = errors.New("price unavailable")
)

// SnapshotSource supplies market snapshots for coin identifiers.
type SnapshotSource interface {
	GetMarketSnapshot(ctx context.Context, id string) (*coingecko.MarketSnapshot, error)
}

type Reporter struct {
	source SnapshotSource
	out    io.Writer
}

func New(source SnapshotSource, out io.Writer) *Reporter {
	return &Reporter{source: source, out: out}
}

// Show resolves the ticker symbol, fetches a market snapshot and
// prints the report. Nothing is written when an error is returned.
// Market-data and supply lines are emitted independently; an absent
// field never suppresses the other lines.
func (r *Reporter) Show(ctx context.Context, symbol string) error {
	id := asset.Resolve(symbol)
	snap, err := r.source.GetMarketSnapshot(ctx, id)
	if err != nil {
		if errors.Is(err, coingecko.ErrNotFound) {
			return fmt.Errorf("%q: %w", symbol, ErrUnknownAsset)
		}
		return fmt.Errorf("%q: %w: %v", symbol, ErrPriceUnavailable, err)
	}
	if snap.USD == nil || snap.JPY == nil {
		return fmt.Errorf("%q: %w", symbol, ErrPriceUnavailable)
	}

	tw := tabwriter.NewWriter(r.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s (%s)\n", snap.Name, strings.ToUpper(snap.Symbol))
	fmt.Fprintf(tw, "Price:\t%s\n", format.FiatPrice(*snap.USD, "USD"))
	fmt.Fprintf(tw, "Price:\t%s\n", format.FiatPrice(*snap.JPY, "JPY"))

	writeFiatPair(tw, "Market Cap:", snap.MarketCapUSD, snap.MarketCapJPY)
	writeFiatPair(tw, "Fully Diluted Valuation:", snap.FDVUSD, snap.FDVJPY)
	writeFiatPair(tw, "24h Volume:", snap.Volume24hUSD, snap.Volume24hJPY)

	writeSupply(tw, "Circulating Supply:", snap.CirculatingSupply)
	writeSupply(tw, "Total Supply:", snap.TotalSupply)
	writeSupply(tw, "Max Supply:", snap.MaxSupply)
	return tw.Flush()
}

// writeFiatPair prints one market statistic in both fiat currencies.
// The line is skipped only when both figures are absent; a single
// absent figure renders as N/A.
func writeFiatPair(w io.Writer, label string, usd, jpy *decimal.Decimal) {
	if usd == nil && jpy == nil {
		return
	}
	fmt.Fprintf(w, "%s\t%s USD\t%s JPY\n", label, format.LargeNumber(usd), format.LargeNumber(jpy))
}

func writeSupply(w io.Writer, label string, value *decimal.Decimal) {
	if value == nil {
		return
	}
	fmt.Fprintf(w, "%s\t%s\n", label, format.Supply(value))
}
