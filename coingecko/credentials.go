// Copyright (c) 2025 BVK Chaitanya

package coingecko

// Credentials holds the CoinGecko API key.
type Credentials struct {
	Key string
}
