package models

import "math"

// IntrinsicValue is the exercise value of an option of type t at spot s.
func IntrinsicValue(t OptionType, strike, s float64) float64 {
	if t == Call {
		return math.Max(0, s-strike)
	}
	return math.Max(0, strike-s)
}
