package domain

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

type Money struct {
	Amount   decimal.Decimal
	Currency currency.Unit
}

var symbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"INR": "₹",
}

func NewMoney(amount decimal.Decimal, cur currency.Unit) Money {
	return Money{Amount: amount, Currency: cur}
}

func ZeroMoney(cur currency.Unit) Money {
	return Money{Amount: decimal.Zero, Currency: cur}
}

// Add ignores the currency of m2; a cart holds a single currency.
func (m Money) Add(m2 Money) Money {
	return Money{Amount: m.Amount.Add(m2.Amount), Currency: m.Currency}
}

func (m Money) Mul(n int) Money {
	return Money{Amount: m.Amount.Mul(decimal.NewFromInt(int64(n))), Currency: m.Currency}
}

func (m Money) IsNegative() bool {
	return m.Amount.IsNegative()
}

// Symbol returns the display symbol for cur, if one is known.
func Symbol(cur currency.Unit) (string, bool) {
	symbol, ok := symbols[cur.String()]
	return symbol, ok
}

// String formats the amount with its currency symbol and two decimals, e.g. "$10.00".
func (m Money) String() string {
	symbol, ok := Symbol(m.Currency)
	if !ok {
		symbol = m.Currency.String() + " "
	}

	return symbol + m.Amount.StringFixed(2)
}
