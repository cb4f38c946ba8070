// Copyright (c) 2025 BVK Chaitanya

// Package amount parses combined amount+currency command-line
// arguments like "100JPY" or "1,200.50usd".
package amount

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount is a parsed money value. Currency is always uppercase and
// Value is non-negative; the grammar admits no sign.
type Amount struct {
	Value    decimal.Decimal
	Currency string
}

// argRe matches a digit run with optional comma separators and an
// optional decimal point, followed immediately by the currency code.
var argRe = regexp.MustCompile(`^([0-9,]+\.?[0-9]*)([A-Z]+)$`)

// Parse splits an argument like "1,200.50USD" into a decimal value
// and an uppercase currency code. The match is case-insensitive.
// Scientific notation, signs and whitespace are not accepted.
func Parse(arg string) (*Amount, error) {
	m := argRe.FindStringSubmatch(strings.ToUpper(arg))
	if m == nil {
		return nil, fmt.Errorf("invalid amount format %q (want <number><currency>, ex: 100JPY)", arg)
	}
	num := strings.ReplaceAll(m[1], ",", "")
	num = strings.TrimSuffix(num, ".")
	if len(num) == 0 {
		return nil, fmt.Errorf("invalid amount format %q: no digits", arg)
	}
	value, err := decimal.NewFromString(num)
	if err != nil {
		return nil, fmt.Errorf("invalid amount %q: %w", arg, err)
	}
	return &Amount{Value: value, Currency: m[2]}, nil
}

func (a *Amount) String() string {
	return a.Value.String() + a.Currency
}
