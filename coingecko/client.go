// Copyright (c) 2025 BVK Chaitanya

// Package coingecko implements a client for the public CoinGecko
// price-quotation REST API.
package coingecko

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"strings"
)

// ErrNotFound is returned when the API has no data for a coin
// identifier.
var ErrNotFound = errors.New("coin not found")

type Client struct {
	opts Options

	client http.Client

	baseURL *url.URL
}

// New returns a client for the CoinGecko REST API. When opts is nil,
// options are read from COINGECKO_* environment variables.
func New(opts *Options) (*Client, error) {
	if opts == nil {
		v, err := OptionsFromEnv()
		if err != nil {
			return nil, err
		}
		opts = v
	}
	opts.setDefaults()
	if err := opts.Check(); err != nil {
		return nil, err
	}
	baseURL, err := url.Parse(opts.ApiURL)
	if err != nil {
		return nil, err
	}
	c := &Client{
		opts:    *opts,
		baseURL: baseURL,
		client: http.Client{
			Timeout: opts.HttpClientTimeout,
		},
	}
	return c, nil
}

// GetQuote fetches the USD and JPY spot prices for a coin
// identifier. Either currency may be absent in the result. Returns
// ErrNotFound when the API has no data for the identifier.
func (c *Client) GetQuote(ctx context.Context, id string) (*Quote, error) {
	priceMap, err := c.getSimplePrice(ctx, id, false /* includeMarketData */)
	if err != nil {
		return nil, err
	}
	p, ok := priceMap[id]
	if !ok {
		return nil, fmt.Errorf("%s: %w", id, ErrNotFound)
	}
	return &Quote{USD: p.USD, JPY: p.JPY}, nil
}

// GetMarketSnapshot fetches the spot prices and market statistics for
// a coin identifier. The spot price call is authoritative; if the
// follow-up coin detail call fails, a Partial snapshot with the spot
// price fields alone is returned instead of an error.
func (c *Client) GetMarketSnapshot(ctx context.Context, id string) (*MarketSnapshot, error) {
	priceMap, err := c.getSimplePrice(ctx, id, true /* includeMarketData */)
	if err != nil {
		return nil, err
	}
	p, ok := priceMap[id]
	if !ok {
		return nil, fmt.Errorf("%s: %w", id, ErrNotFound)
	}

	snap := &MarketSnapshot{
		Name:         id,
		Symbol:       id,
		Quote:        Quote{USD: p.USD, JPY: p.JPY},
		MarketCapUSD: p.MarketCapUSD,
		MarketCapJPY: p.MarketCapJPY,
		Volume24hUSD: p.Volume24hUSD,
		Volume24hJPY: p.Volume24hJPY,
	}

	detail, err := c.getCoinDetail(ctx, id)
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			slog.Warn("could not get coin details; returning partial market snapshot", "id", id, "err", err)
		}
		snap.Partial = true
		return snap, nil
	}

	if len(detail.Name) != 0 {
		snap.Name = detail.Name
	}
	if len(detail.Symbol) != 0 {
		snap.Symbol = detail.Symbol
	}
	if v, ok := detail.MarketData.FullyDilutedValuation["usd"]; ok {
		snap.FDVUSD = &v
	}
	if v, ok := detail.MarketData.FullyDilutedValuation["jpy"]; ok {
		snap.FDVJPY = &v
	}
	snap.CirculatingSupply = detail.MarketData.CirculatingSupply
	snap.TotalSupply = detail.MarketData.TotalSupply
	snap.MaxSupply = detail.MarketData.MaxSupply
	return snap, nil
}

func (c *Client) getSimplePrice(ctx context.Context, id string, includeMarketData bool) (map[string]*simplePrice, error) {
	values := make(url.Values)
	values.Set("ids", id)
	values.Set("vs_currencies", "usd,jpy")
	if includeMarketData {
		values.Set("include_market_cap", "true")
		values.Set("include_24hr_vol", "true")
	}

	addrURL := &url.URL{
		Scheme:   c.baseURL.Scheme,
		Host:     c.baseURL.Host,
		Path:     path.Join(c.baseURL.Path, "/simple/price"),
		RawQuery: values.Encode(),
	}
	priceMap := make(map[string]*simplePrice)
	if err := httpGetJSON(ctx, c, addrURL, &priceMap); err != nil {
		if !errors.Is(err, context.Canceled) {
			slog.Error("could not get simple price", "id", id, "url", addrURL, "err", err)
		}
		return nil, err
	}
	return priceMap, nil
}

func (c *Client) getCoinDetail(ctx context.Context, id string) (*coinDetail, error) {
	values := make(url.Values)
	values.Set("localization", "false")
	values.Set("tickers", "false")
	values.Set("market_data", "true")
	values.Set("community_data", "false")
	values.Set("developer_data", "false")

	addrURL := &url.URL{
		Scheme:   c.baseURL.Scheme,
		Host:     c.baseURL.Host,
		Path:     path.Join(c.baseURL.Path, "/coins", strings.ToLower(id)),
		RawQuery: values.Encode(),
	}
	resp := new(coinDetail)
	if err := httpGetJSON(ctx, c, addrURL, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func httpGetJSON[PT *T, T any](ctx context.Context, c *Client, addrURL *url.URL, responsePtr PT) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addrURL.String(), nil)
	if err != nil {
		slog.Error("could not create http get request with context", "url", addrURL, "err", err)
		return err
	}
	if len(c.opts.ApiKey) != 0 {
		req.Header.Add("x-cg-demo-api-key", c.opts.ApiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			slog.Error("could not perform http get request", "url", addrURL, "err", err)
		}
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("http GET returned %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(responsePtr); err != nil {
		slog.Error("could not decode response to json", "url", addrURL, "err", err)
		return err
	}
	return nil
}
