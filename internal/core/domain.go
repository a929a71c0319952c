// Package core models money, jobs, people and families.
//
// Every type here is in-memory and single-threaded. Rule violations are
// handled by silent policy (a reverted assignment, an unconverted value)
// rather than returned errors, except where a strict variant says otherwise.
package core

import (
	"errors"
	"strings"

	"domainmodel/internal/log"
)

const (
	USD Currency = "USD"
	GBP Currency = "GBP"
	EUR Currency = "EUR"
	CAN Currency = "CAN"
)

type (
	// Currency is an ISO-like currency code. Only USD, GBP, EUR and CAN convert.
	Currency string
)

var (
	ErrUnsupportedCurrency = errors.New("unsupported currency")
)

var logger = log.New(log.DefaultConfig())

// SetLogger routes diagnostics emitted by the model to l. A nil logger
// restores the default stderr logger.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(log.DefaultConfig())
	}
	logger = l
}

// ParseCurrency normalizes s and returns the matching supported currency.
//
// Surrounding whitespace is ignored and the code is case-insensitive:
//
//	ParseCurrency(" gbp ") -> GBP, nil
//	ParseCurrency("JPY")   -> "", ErrUnsupportedCurrency
func ParseCurrency(s string) (Currency, error) {
	c := Currency(strings.ToUpper(strings.TrimSpace(s)))
	if !c.Supported() {
		return "", ErrUnsupportedCurrency
	}
	return c, nil
}

// Supported reports whether c has an entry in the exchange table.
func (c Currency) Supported() bool {
	_, to := toUSD[c]
	_, from := fromUSD[c]
	return to && from
}

func (c Currency) String() string {
	return string(c)
}
