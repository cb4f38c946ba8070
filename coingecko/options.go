// Copyright (c) 2025 BVK Chaitanya

package coingecko

import (
	"fmt"
	"net/url"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Options struct {
	// ApiURL is the base URL for the CoinGecko REST API.
	ApiURL string `envconfig:"api_url"`

	// ApiKey holds an optional demo API key. Anonymous access works,
	// but with tighter request quotas.
	ApiKey string `envconfig:"api_key"`

	// HttpClientTimeout bounds every outgoing request. The API is
	// queried at most a few times per invocation, so a failed call is
	// reported instead of retried.
	HttpClientTimeout time.Duration `envconfig:"http_timeout"`
}

// OptionsFromEnv returns options populated from COINGECKO_* environment
// variables.
func OptionsFromEnv() (*Options, error) {
	opts := new(Options)
	if err := envconfig.Process("coingecko", opts); err != nil {
		return nil, fmt.Errorf("could not process coingecko environment options: %w", err)
	}
	return opts, nil
}

func (v *Options) setDefaults() {
	if len(v.ApiURL) == 0 {
		v.ApiURL = "https://api.coingecko.com/api/v3"
	}
	if v.HttpClientTimeout == 0 {
		v.HttpClientTimeout = 10 * time.Second
	}
}

func (v *Options) Check() error {
	if _, err := url.Parse(v.ApiURL); err != nil {
		return fmt.Errorf("invalid api url %q: %w", v.ApiURL, err)
	}
	return nil
}
