package models

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// Money is a NUMERIC column that serializes as a JSON number. The store
// hands decimals back as strings; decoding them exactly once here keeps
// parse-to-float out of every read site.
type Money struct {
	decimal.Decimal
}

// MoneyFromFloat builds a Money from an already-coerced float value.
func MoneyFromFloat(f float64) Money {
	return Money{decimal.NewFromFloat(f)}
}

// MarshalJSON renders the amount as a plain number rather than the
// quoted string shopspring/decimal emits by default.
func (m Money) MarshalJSON() ([]byte, error) {
	return strconv.AppendFloat(nil, m.InexactFloat64(), 'f', -1, 64), nil
}

// NullMoney is a nullable NUMERIC column. Null stays null on the wire;
// aggregation reads it through Float64, which maps null to zero.
type NullMoney struct {
	decimal.NullDecimal
}

// NullMoneyFromFloat builds a valid NullMoney from a float value.
func NullMoneyFromFloat(f float64) NullMoney {
	return NullMoney{decimal.NullDecimal{Decimal: decimal.NewFromFloat(f), Valid: true}}
}

// MarshalJSON renders null for absent amounts and a plain number otherwise.
func (m NullMoney) MarshalJSON() ([]byte, error) {
	if !m.Valid {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, m.Decimal.InexactFloat64(), 'f', -1, 64), nil
}

// Float64 returns the amount with null treated as zero.
func (m NullMoney) Float64() float64 {
	if !m.Valid {
		return 0
	}
	return m.Decimal.InexactFloat64()
}
