// Copyright (c) 2025 BVK Chaitanya

// Package format renders prices, crypto quantities and market
// statistics as strings. Precision scales inversely with magnitude so
// that sub-cent assets keep their significant digits while large
// round values stay readable.
package format

import (
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

var (
	tenThousandth = decimal.RequireFromString("0.0001")
	cent          = decimal.RequireFromString("0.01")
	one           = decimal.NewFromInt(1)
	thousand      = decimal.NewFromInt(1000)
)

// FiatPrice renders a fiat-denominated price with the currency code
// appended. Trailing zeros after the decimal point are trimmed.
func FiatPrice(value decimal.Decimal, currency string) string {
	var prec int32
	switch currency {
	case "USD":
		switch {
		case value.LessThan(cent):
			prec = 8
		case value.LessThan(one):
			prec = 6
		case value.LessThan(thousand):
			prec = 4
		default:
			prec = 2
		}
	case "JPY":
		if value.LessThan(one) {
			prec = 4
		} else {
			prec = 2
		}
	default:
		switch {
		case value.LessThan(cent):
			prec = 8
		case value.LessThan(one):
			prec = 6
		default:
			prec = 2
		}
	}
	return trim(value.StringFixed(prec)) + currency
}

// CryptoQuantity renders a crypto asset quantity with the ticker
// symbol appended. Quantities keep every requested decimal, so
// trailing zeros are not trimmed here.
func CryptoQuantity(value decimal.Decimal, symbol string) string {
	var prec int32
	switch {
	case value.LessThan(tenThousandth):
		prec = 8
	case value.LessThan(one):
		prec = 6
	default:
		prec = 2
	}
	return value.StringFixed(prec) + symbol
}

// LargeNumber renders market statistics like market cap and volume
// with thousands separators. A nil value renders as "N/A".
func LargeNumber(value *decimal.Decimal) string {
	if value == nil {
		return "N/A"
	}
	f := value.InexactFloat64()
	if value.GreaterThanOrEqual(thousand) {
		return trim(humanize.CommafWithDigits(f, 2))
	}
	return trim(humanize.CommafWithDigits(f, 4))
}

// Supply renders coin supply figures. Whole-number supplies render as
// grouped integers; fractional supplies keep up to two decimals. A
// nil value renders as "N/A".
func Supply(value *decimal.Decimal) string {
	if value == nil {
		return "N/A"
	}
	f := value.InexactFloat64()
	if value.IsInteger() {
		return humanize.Commaf(f)
	}
	return trim(humanize.CommafWithDigits(f, 2))
}

// trim removes trailing zeros and a trailing decimal point from a
// formatted decimal string, grouped or not.
func trim(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}
	return strings.TrimRight(strings.TrimRight(s, "0"), ".")
}
