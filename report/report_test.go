// Copyright (c) 2025 BVK Chaitanya

package report

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stardustdotbox/coingecko/coingecko"
)

type fakeSource struct {
	snapshots map[string]*coingecko.MarketSnapshot
	err       error
}

func (f *fakeSource) GetMarketSnapshot(ctx context.Context, id string) (*coingecko.MarketSnapshot, error) {
	if f.err != nil {
		return nil, f.err
	}
	snap, ok := f.snapshots[id]
	if !ok {
		return nil, fmt.Errorf("%s: %w", id, coingecko.ErrNotFound)
	}
	return snap, nil
}

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func fullSnapshot() *coingecko.MarketSnapshot {
	return &coingecko.MarketSnapshot{
		Name:   "Ethereum",
		Symbol: "eth",
		Quote: coingecko.Quote{
			USD: decPtr("2045.5"),
			JPY: decPtr("300000.456"),
		},
		MarketCapUSD:      decPtr("246000000000"),
		MarketCapJPY:      decPtr("36000000000000"),
		FDVUSD:            decPtr("246000000000"),
		Volume24hUSD:      decPtr("15000000000"),
		Volume24hJPY:      decPtr("2200000000000"),
		CirculatingSupply: decPtr("120283319.37"),
		TotalSupply:       decPtr("120283319.37"),
	}
}

func TestShow(t *testing.T) {
	source := &fakeSource{snapshots: map[string]*coingecko.MarketSnapshot{"ethereum": fullSnapshot()}}
	var buf bytes.Buffer
	if err := New(source, &buf).Show(context.Background(), "ETH"); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	for _, want := range []string{
		"Ethereum (ETH)",
		"2045.5USD",
		"300000.46JPY",
		"Market Cap:",
		"246,000,000,000 USD",
		"36,000,000,000,000 JPY",
		"Fully Diluted Valuation:",
		"24h Volume:",
		"Circulating Supply:",
		"120,283,319.37",
		"Total Supply:",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output does not contain %q:\n%s", want, out)
		}
	}
	// Max supply is absent and must not be printed.
	if strings.Contains(out, "Max Supply:") {
		t.Errorf("output contains Max Supply line:\n%s", out)
	}
	// FDV JPY is absent and renders as N/A on the valuation line.
	if !strings.Contains(out, "N/A JPY") {
		t.Errorf("output does not mark the missing FDV JPY value:\n%s", out)
	}
}

func TestShowOmitsAbsentLines(t *testing.T) {
	snap := fullSnapshot()
	snap.MarketCapUSD = nil
	snap.MarketCapJPY = nil
	source := &fakeSource{snapshots: map[string]*coingecko.MarketSnapshot{"ethereum": snap}}

	var buf bytes.Buffer
	if err := New(source, &buf).Show(context.Background(), "ETH"); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if strings.Contains(out, "Market Cap:") {
		t.Errorf("output contains Market Cap line:\n%s", out)
	}
	// Absence of one field never suppresses the others.
	for _, want := range []string{"24h Volume:", "Circulating Supply:"} {
		if !strings.Contains(out, want) {
			t.Errorf("output does not contain %q:\n%s", want, out)
		}
	}
}

func TestShowPartialSnapshot(t *testing.T) {
	source := &fakeSource{snapshots: map[string]*coingecko.MarketSnapshot{
		"ethereum": {
			Name:    "ethereum",
			Symbol:  "ethereum",
			Quote:   coingecko.Quote{USD: decPtr("2000"), JPY: decPtr("300000")},
			Partial: true,
		},
	}}
	var buf bytes.Buffer
	if err := New(source, &buf).Show(context.Background(), "ETH"); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "ethereum (ETHEREUM)") {
		t.Errorf("partial snapshot header missing:\n%s", out)
	}
	if strings.Contains(out, "Market Cap:") || strings.Contains(out, "Supply:") {
		t.Errorf("partial snapshot printed market data lines:\n%s", out)
	}
}

func TestShowMissingSpotPrice(t *testing.T) {
	source := &fakeSource{snapshots: map[string]*coingecko.MarketSnapshot{
		"ethereum": {
			Name:   "Ethereum",
			Symbol: "eth",
			Quote:  coingecko.Quote{USD: decPtr("2000")},
		},
	}}
	var buf bytes.Buffer
	err := New(source, &buf).Show(context.Background(), "ETH")
	if !errors.Is(err, ErrPriceUnavailable) {
		t.Errorf("err = %v, want ErrPriceUnavailable", err)
	}
	if buf.Len() != 0 {
		t.Errorf("output written on error: %q", buf.String())
	}
}

func TestShowUnknownAsset(t *testing.T) {
	source := &fakeSource{snapshots: map[string]*coingecko.MarketSnapshot{}}
	var buf bytes.Buffer
	err := New(source, &buf).Show(context.Background(), "NOPECOIN")
	if !errors.Is(err, ErrUnknownAsset) {
		t.Errorf("err = %v, want ErrUnknownAsset", err)
	}
	if buf.Len() != 0 {
		t.Errorf("output written on error: %q", buf.String())
	}
}
