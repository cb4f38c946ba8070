// Copyright (c) 2025 BVK Chaitanya

package cmdutil

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/stardustdotbox/coingecko/coingecko"
)

// ClientFlags holds the flags shared by commands that talk to the
// CoinGecko API. Flag values override COINGECKO_* environment
// options, which in turn override the secrets file.
type ClientFlags struct {
	ApiURL  string
	ApiKey  string
	Timeout time.Duration

	DataDir string
}

func (cf *ClientFlags) SetFlags(fset *flag.FlagSet) {
	fset.StringVar(&cf.ApiURL, "api-url", "", "base URL for the CoinGecko API")
	fset.StringVar(&cf.ApiKey, "api-key", "", "CoinGecko demo API key")
	fset.DurationVar(&cf.Timeout, "timeout", 0, "timeout for API requests")
	fset.StringVar(&cf.DataDir, "data-dir", "", "path to the data directory")
}

// Secrets holds API credentials stored in the data directory.
type Secrets struct {
	Coingecko *coingecko.Credentials `json:",omitempty"`
}

func (cf *ClientFlags) dataDir() string {
	if len(cf.DataDir) != 0 {
		return cf.DataDir
	}
	return filepath.Join(os.Getenv("HOME"), ".coingecko")
}

// SecretsPath returns the location of the secrets file under the data
// directory.
func (cf *ClientFlags) SecretsPath() string {
	return filepath.Join(cf.dataDir(), "secrets.json")
}

// LoadSecrets reads the secrets file. A missing file is not an error
// and returns empty secrets.
func (cf *ClientFlags) LoadSecrets() (*Secrets, error) {
	data, err := os.ReadFile(cf.SecretsPath())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return new(Secrets), nil
		}
		return nil, err
	}
	s := new(Secrets)
	if err := json.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("could not parse secrets file %q: %w", cf.SecretsPath(), err)
	}
	return s, nil
}

// SaveSecrets writes the secrets file, creating the data directory
// when necessary.
func (cf *ClientFlags) SaveSecrets(s *Secrets) error {
	dir := cf.dataDir()
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("could not create data directory %q: %w", dir, err)
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(cf.SecretsPath(), data, 0600); err != nil {
		return fmt.Errorf("could not write secrets file: %w", err)
	}
	return nil
}

// GetClient builds a CoinGecko API client from the environment, the
// secrets file and the command-line flags.
func (cf *ClientFlags) GetClient() (*coingecko.Client, error) {
	opts, err := coingecko.OptionsFromEnv()
	if err != nil {
		return nil, err
	}
	if len(opts.ApiKey) == 0 {
		secrets, err := cf.LoadSecrets()
		if err != nil {
			return nil, err
		}
		if secrets.Coingecko != nil {
			opts.ApiKey = secrets.Coingecko.Key
		}
	}
	if len(cf.ApiURL) != 0 {
		opts.ApiURL = cf.ApiURL
	}
	if len(cf.ApiKey) != 0 {
		opts.ApiKey = cf.ApiKey
	}
	if cf.Timeout != 0 {
		opts.HttpClientTimeout = cf.Timeout
	}
	return coingecko.New(opts)
}
