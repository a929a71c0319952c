package core

import (
	"fmt"

	"domainmodel/internal/log"
)

// Money is an integer amount in the smallest unit of its currency.
// Values are immutable; every operation returns a new Money.
type Money struct {
	Amount   int64
	Currency Currency
}

// Exchange rates from USD into each currency.
var fromUSD = map[Currency]float64{
	USD: 1.0,
	GBP: 0.5,
	EUR: 1.5,
	CAN: 1.25,
}

// Exchange rates from each currency into USD.
var toUSD = map[Currency]float64{
	USD: 1.0,
	GBP: 2.0,
	EUR: 2.0 / 3.0,
	CAN: 0.8,
}

// NewMoney is a convenience constructor.
func NewMoney(amount int64, currency Currency) Money {
	return Money{Amount: amount, Currency: currency}
}

// Convert returns m expressed in target. The amount goes through USD and the
// final value is truncated toward zero, so conversions are lossy.
//
// If either currency is unsupported a warning is logged and m is returned
// unchanged; callers can detect this by comparing the result's currency.
func (m Money) Convert(target Currency) Money {
	converted, err := m.ConvertStrict(target)
	if err != nil {
		fields := log.NewFields().
			WithOperation(log.OpConvert).
			WithMoney(m.Amount, m.Currency.String()).
			WithTargetCurrency(target.String()).
			WithError(err)
		logger.WithComponent(log.ComponentMoney).Warn("Unsupported exchange currency", fields.ToSlice()...)
		return m
	}
	return converted
}

// ConvertStrict is Convert with an error instead of the silent fallback.
// The error wraps ErrUnsupportedCurrency.
func (m Money) ConvertStrict(target Currency) (Money, error) {
	toRate, ok := toUSD[m.Currency]
	if !ok {
		return m, fmt.Errorf("%w: %q", ErrUnsupportedCurrency, m.Currency)
	}
	fromRate, ok := fromUSD[target]
	if !ok {
		return m, fmt.Errorf("%w: %q", ErrUnsupportedCurrency, target)
	}

	inUSD := float64(m.Amount) * toRate
	return Money{Amount: int64(inUSD * fromRate), Currency: target}, nil
}

// Add converts m into other's currency and sums the amounts. The result is
// in other's currency, so a.Add(b) and b.Add(a) generally differ.
func (m Money) Add(other Money) Money {
	converted := m.Convert(other.Currency)
	return Money{Amount: converted.Amount + other.Amount, Currency: other.Currency}
}

// Subtract converts m into other's currency and subtracts other from it.
func (m Money) Subtract(other Money) Money {
	converted := m.Convert(other.Currency)
	return Money{Amount: converted.Amount - other.Amount, Currency: other.Currency}
}

func (m Money) String() string {
	return fmt.Sprintf("%d %s", m.Amount, m.Currency)
}
