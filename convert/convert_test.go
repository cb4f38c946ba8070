// Copyright (c) 2025 BVK Chaitanya

package convert

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stardustdotbox/coingecko/amount"
	"github.com/stardustdotbox/coingecko/coingecko"
	"github.com/stardustdotbox/coingecko/format"
)

type fakeSource struct {
	quotes map[string]*coingecko.Quote
	err    error
}

func (f *fakeSource) GetQuote(ctx context.Context, id string) (*coingecko.Quote, error) {
	if f.err != nil {
		return nil, f.err
	}
	q, ok := f.quotes[id]
	if !ok {
		return nil, fmt.Errorf("%s: %w", id, coingecko.ErrNotFound)
	}
	return q, nil
}

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func parse(t *testing.T, arg string) *amount.Amount {
	t.Helper()
	a, err := amount.Parse(arg)
	if err != nil {
		t.Fatalf("Parse(%q): %v", arg, err)
	}
	return a
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		quotes: map[string]*coingecko.Quote{
			"ethereum": {USD: decPtr("2000"), JPY: decPtr("500000")},
			"bitcoin":  {USD: decPtr("50000"), JPY: decPtr("12500000")},
			"tether":   {USD: decPtr("1"), JPY: nil},
		},
	}
}

func TestConvertFromJPY(t *testing.T) {
	c := New(newFakeSource())
	quantity, err := c.Convert(context.Background(), parse(t, "100JPY"), "ETH")
	if err != nil {
		t.Fatal(err)
	}
	if want := decimal.RequireFromString("0.0002"); !quantity.Equal(want) {
		t.Errorf("quantity = %s, want %s", quantity, want)
	}
	if got := format.CryptoQuantity(quantity, "ETH"); got != "0.000200ETH" {
		t.Errorf("formatted quantity = %q, want 0.000200ETH", got)
	}
}

func TestConvertFromUSD(t *testing.T) {
	c := New(newFakeSource())
	quantity, err := c.Convert(context.Background(), parse(t, "50USD"), "BTC")
	if err != nil {
		t.Fatal(err)
	}
	if want := decimal.RequireFromString("0.001"); !quantity.Equal(want) {
		t.Errorf("quantity = %s, want %s", quantity, want)
	}
}

func TestConvertCryptoToCrypto(t *testing.T) {
	c := New(newFakeSource())
	quantity, err := c.Convert(context.Background(), parse(t, "1ETH"), "BTC")
	if err != nil {
		t.Fatal(err)
	}
	if want := decimal.RequireFromString("0.04"); !quantity.Equal(want) {
		t.Errorf("quantity = %s, want %s", quantity, want)
	}
	if got := format.CryptoQuantity(quantity, "BTC"); got != "0.040000BTC" {
		t.Errorf("formatted quantity = %q, want 0.040000BTC", got)
	}
}

func TestConvertFromIdentifier(t *testing.T) {
	// The source currency may be typed as a raw identifier instead of
	// a ticker symbol.
	c := New(newFakeSource())
	quantity, err := c.Convert(context.Background(), parse(t, "1ethereum"), "BTC")
	if err != nil {
		t.Fatal(err)
	}
	if want := decimal.RequireFromString("0.04"); !quantity.Equal(want) {
		t.Errorf("quantity = %s, want %s", quantity, want)
	}
}

func TestConvertUnsupportedCurrency(t *testing.T) {
	c := New(newFakeSource())
	if _, err := c.Convert(context.Background(), parse(t, "100EUR"), "ETH"); !errors.Is(err, ErrUnsupportedCurrency) {
		t.Errorf("err = %v, want ErrUnsupportedCurrency", err)
	}
}

func TestConvertUnknownAsset(t *testing.T) {
	c := New(newFakeSource())
	if _, err := c.Convert(context.Background(), parse(t, "100USD"), "NOPECOIN"); !errors.Is(err, ErrUnknownAsset) {
		t.Errorf("err = %v, want ErrUnknownAsset", err)
	}
}

func TestConvertMissingPrice(t *testing.T) {
	c := New(newFakeSource())
	// Tether has no JPY price in the fake source.
	if _, err := c.Convert(context.Background(), parse(t, "100JPY"), "USDT"); !errors.Is(err, ErrPriceUnavailable) {
		t.Errorf("err = %v, want ErrPriceUnavailable", err)
	}
}

func TestConvertZeroPrice(t *testing.T) {
	src := newFakeSource()
	src.quotes["ethereum"] = &coingecko.Quote{USD: decPtr("0"), JPY: decPtr("0")}
	c := New(src)
	if _, err := c.Convert(context.Background(), parse(t, "100USD"), "ETH"); !errors.Is(err, ErrPriceUnavailable) {
		t.Errorf("err = %v, want ErrPriceUnavailable", err)
	}
}

func TestConvertGatewayFailure(t *testing.T) {
	c := New(&fakeSource{err: errors.New("connection refused")})
	if _, err := c.Convert(context.Background(), parse(t, "100USD"), "ETH"); !errors.Is(err, ErrPriceUnavailable) {
		t.Errorf("err = %v, want ErrPriceUnavailable", err)
	}
}
