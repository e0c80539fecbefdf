package domain

import "github.com/shopspring/decimal"

// MoneyPlaces is the fixed precision of every stored monetary amount.
const MoneyPlaces = 2

// RoundMoney quantizes an amount to 2 decimal places, rounding half away
// from zero. Every derived monetary quantity (line subtotal, line tax,
// header totals) is rounded at its own computation step so that rounding
// differences never accumulate invisibly.
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(MoneyPlaces)
}
