package models

import (
	"fmt"
	"strings"
)

// Field names an input or output of an Option.
type Field string

const (
	FieldType           Field = "type"
	FieldStrike         Field = "strike"
	FieldDividend       Field = "dividend"
	FieldVolatility     Field = "volatility"
	FieldStockPrice     Field = "stock_price"
	FieldInterestRate   Field = "interest_rate"
	FieldTimeToMaturity Field = "time_to_maturity"

	FieldD1    Field = "d1"
	FieldD2    Field = "d2"
	FieldPrice Field = "price"
	FieldDelta Field = "delta"
	FieldGamma Field = "gamma"
	FieldVega  Field = "vega"
	FieldTheta Field = "theta"
)

// InputFields are the numeric inputs that can be swept.
var InputFields = []Field{
	FieldStrike,
	FieldDividend,
	FieldVolatility,
	FieldStockPrice,
	FieldInterestRate,
	FieldTimeToMaturity,
}

var OutputFields = []Field{
	FieldD1,
	FieldD2,
	FieldPrice,
	FieldDelta,
	FieldGamma,
	FieldVega,
	FieldTheta,
}

var fieldAliases = map[string]Field{
	"dividend_yield": FieldDividend,
	"spot":           FieldStockPrice,
}

func normalizeField(name string) Field {
	key := strings.ToLower(strings.TrimSpace(name))
	if f, ok := fieldAliases[key]; ok {
		return f
	}
	return Field(key)
}

func ParseInputField(name string) (Field, error) {
	f := normalizeField(name)
	for _, in := range InputFields {
		if f == in {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown input field %q", name)
}

func ParseOutputField(name string) (Field, error) {
	f := normalizeField(name)
	for _, out := range OutputFields {
		if f == out {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown output field %q", name)
}

// Set writes a numeric input by name.
func (o *Option) Set(f Field, v float64) error {
	switch f {
	case FieldStrike:
		return o.SetStrike(v)
	case FieldDividend:
		return o.SetDividend(v)
	case FieldVolatility:
		return o.SetVolatility(v)
	case FieldStockPrice:
		return o.SetStockPrice(v)
	case FieldInterestRate:
		return o.SetInterestRate(v)
	case FieldTimeToMaturity:
		return o.SetTimeToMaturity(v)
	}
	return fmt.Errorf("field %q is not a numeric input", f)
}

// Get reads a numeric input or a derived output by name, computing it if needed.
func (o *Option) Get(f Field) (float64, error) {
	switch f {
	case FieldStrike:
		return o.strike, nil
	case FieldDividend:
		return o.dividend, nil
	case FieldVolatility:
		return o.volatility, nil
	case FieldStockPrice:
		return o.stockPrice, nil
	case FieldInterestRate:
		return o.interestRate, nil
	case FieldTimeToMaturity:
		return o.timeToMaturity, nil
	case FieldD1:
		return o.D1(), nil
	case FieldD2:
		return o.D2(), nil
	case FieldPrice:
		return o.Price(), nil
	case FieldDelta:
		return o.Delta(), nil
	case FieldGamma:
		return o.Gamma(), nil
	case FieldVega:
		return o.Vega(), nil
	case FieldTheta:
		return o.Theta(), nil
	}
	return 0, fmt.Errorf("unknown field %q", f)
}
