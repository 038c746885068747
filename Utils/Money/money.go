package Money

import (
	"errors"

	"github.com/shopspring/decimal"
)

var ErrInvalidAmount = errors.New("invalid amount")

// Parse converts a decimal string into an amount. Negative values are
// rejected; zero is allowed.
func Parse(value string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(value)
	if err != nil || amount.IsNegative() {
		return decimal.Zero, ErrInvalidAmount
	}
	return amount, nil
}

// ParsePositive is Parse for callers that require a strictly positive amount,
// such as payment creation.
func ParsePositive(value string) (decimal.Decimal, error) {
	amount, err := Parse(value)
	if err != nil {
		return decimal.Zero, err
	}
	if !amount.IsPositive() {
		return decimal.Zero, ErrInvalidAmount
	}
	return amount, nil
}

func Sum(amounts []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, amount := range amounts {
		total = total.Add(amount)
	}
	return total
}

// Remaining returns max(0, invoiceAmount - sum(payments)).
func Remaining(invoiceAmount decimal.Decimal, payments []decimal.Decimal) decimal.Decimal {
	remaining := invoiceAmount.Sub(Sum(payments))
	if remaining.IsNegative() {
		return decimal.Zero
	}
	return remaining
}
