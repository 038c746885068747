package Money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	amount, err := Parse("100.50")
	require.NoError(t, err)
	assert.Equal(t, "100.50", amount.StringFixed(2))

	amount, err = Parse("0")
	require.NoError(t, err)
	assert.True(t, amount.IsZero())

	_, err = Parse("abc")
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = Parse("-5.00")
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestParsePositive(t *testing.T) {
	amount, err := ParsePositive("0.01")
	require.NoError(t, err)
	assert.Equal(t, "0.01", amount.StringFixed(2))

	_, err = ParsePositive("0")
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = ParsePositive("-1")
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestSumIsExact(t *testing.T) {
	// 0.1 + 0.2 must be exactly 0.3, not 0.30000000000000004.
	total := Sum([]decimal.Decimal{
		decimal.RequireFromString("0.1"),
		decimal.RequireFromString("0.2"),
	})
	assert.True(t, total.Equal(decimal.RequireFromString("0.3")))

	assert.True(t, Sum(nil).IsZero())
}

func TestRemaining(t *testing.T) {
	amount := decimal.RequireFromString("100.00")

	remaining := Remaining(amount, nil)
	assert.Equal(t, "100.00", remaining.StringFixed(2))

	remaining = Remaining(amount, []decimal.Decimal{
		decimal.RequireFromString("80.00"),
	})
	assert.Equal(t, "20.00", remaining.StringFixed(2))

	remaining = Remaining(amount, []decimal.Decimal{
		decimal.RequireFromString("80.00"),
		decimal.RequireFromString("20.00"),
	})
	assert.True(t, remaining.IsZero())

	// Floored at zero even if payments somehow exceed the amount.
	remaining = Remaining(amount, []decimal.Decimal{
		decimal.RequireFromString("150.00"),
	})
	assert.True(t, remaining.IsZero())
}
