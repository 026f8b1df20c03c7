package domain

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// Money is an amount in whole rupiah.
type Money int64

var (
	ErrFractionalAmount = errors.New("money: amount is not a whole rupiah")
	ErrAmountOutOfRange = errors.New("money: amount out of range")

	minMoney = decimal.NewFromInt(math.MinInt64)
	maxMoney = decimal.NewFromInt(math.MaxInt64)
)

// UnmarshalJSON accepts integers, decimals and quoted decimals ("15000.00"),
// rounding to whole rupiah.
func (m *Money) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*m = 0
		return nil
	}
	raw := string(data)
	if data[0] == '"' {
		unquoted, err := strconv.Unquote(raw)
		if err != nil {
			return fmt.Errorf("money: %w", err)
		}
		if unquoted == "" {
			*m = 0
			return nil
		}
		raw = unquoted
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return fmt.Errorf("money: invalid amount %q: %w", raw, err)
	}
	parsed, err := fromDecimal(d.Round(0))
	if err != nil {
		return fmt.Errorf("%w: %q", err, raw)
	}
	*m = parsed
	return nil
}

// ParseMoney reads an operator-entered amount. Fractions are rejected rather
// than rounded.
func ParseMoney(raw string) (Money, error) {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return 0, err
	}
	if !d.IsInteger() {
		return 0, ErrFractionalAmount
	}
	return fromDecimal(d)
}

func fromDecimal(d decimal.Decimal) (Money, error) {
	if d.LessThan(minMoney) || d.GreaterThan(maxMoney) {
		return 0, ErrAmountOutOfRange
	}
	return Money(d.IntPart()), nil
}
