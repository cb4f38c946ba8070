// Copyright (c) 2025 BVK Chaitanya

// Package asset maps user-facing ticker symbols to CoinGecko coin
// identifiers.
package asset

import "strings"

// idMap holds well-known ticker symbols and their CoinGecko
// identifiers. Tickers outside this table are passed through to the
// API as lowercased identifiers.
var idMap = map[string]string{
	"ETH":   "ethereum",
	"BTC":   "bitcoin",
	"USDC":  "usd-coin",
	"USDT":  "tether",
	"BNB":   "binancecoin",
	"SOL":   "solana",
	"XRP":   "ripple",
	"ADA":   "cardano",
	"DOGE":  "dogecoin",
	"DOT":   "polkadot",
	"MATIC": "matic-network",
	"AVAX":  "avalanche-2",
	"LINK":  "chainlink",
	"UNI":   "uniswap",
	"ATOM":  "cosmos",
	"ETC":   "ethereum-classic",
	"LTC":   "litecoin",
	"BCH":   "bitcoin-cash",
	"XLM":   "stellar",
	"ALGO":  "algorand",
}

var symbolMap = func() map[string]string {
	m := make(map[string]string)
	for sym, id := range idMap {
		m[id] = sym
	}
	return m
}()

// Resolve returns the CoinGecko identifier for a ticker symbol. The
// lookup is case-insensitive. Unrecognized symbols are returned
// lowercased as a best-effort identifier; whether such an identifier
// exists is decided by the price API, not here.
func Resolve(symbol string) string {
	if id, ok := idMap[strings.ToUpper(symbol)]; ok {
		return id
	}
	return strings.ToLower(symbol)
}

// KnownTicker reports whether name refers to a crypto asset from the
// symbol table. Both the ticker form ("ETH") and the identifier form
// ("ethereum") are accepted.
func KnownTicker(name string) bool {
	if _, ok := idMap[strings.ToUpper(name)]; ok {
		return true
	}
	_, ok := symbolMap[strings.ToLower(name)]
	return ok
}
