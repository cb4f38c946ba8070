// Copyright (c) 2025 BVK Chaitanya

package coingecko

import "github.com/shopspring/decimal"

// Quote holds the spot price of one coin in the supported fiat
// currencies. Either field may be nil when the API has no data for
// that currency.
type Quote struct {
	USD *decimal.Decimal
	JPY *decimal.Decimal
}

// MarketSnapshot extends Quote with market statistics. Every numeric
// field is independently optional.
type MarketSnapshot struct {
	Name   string
	Symbol string

	Quote

	MarketCapUSD *decimal.Decimal
	MarketCapJPY *decimal.Decimal

	FDVUSD *decimal.Decimal
	FDVJPY *decimal.Decimal

	Volume24hUSD *decimal.Decimal
	Volume24hJPY *decimal.Decimal

	CirculatingSupply *decimal.Decimal
	TotalSupply       *decimal.Decimal
	MaxSupply         *decimal.Decimal

	// Partial is true when the coin detail endpoint failed and only
	// fields from the spot price endpoint are populated.
	Partial bool
}

type simplePrice struct {
	USD          *decimal.Decimal `json:"usd"`
	JPY          *decimal.Decimal `json:"jpy"`
	MarketCapUSD *decimal.Decimal `json:"usd_market_cap"`
	MarketCapJPY *decimal.Decimal `json:"jpy_market_cap"`
	Volume24hUSD *decimal.Decimal `json:"usd_24h_vol"`
	Volume24hJPY *decimal.Decimal `json:"jpy_24h_vol"`
}

type coinDetail struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`

	MarketData struct {
		FullyDilutedValuation map[string]decimal.Decimal `json:"fully_diluted_valuation"`
		CirculatingSupply     *decimal.Decimal           `json:"circulating_supply"`
		TotalSupply           *decimal.Decimal           `json:"total_supply"`
		MaxSupply             *decimal.Decimal           `json:"max_supply"`
	} `json:"market_data"`
}
