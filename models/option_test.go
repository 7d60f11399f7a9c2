package models

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const equalityThreshold = 1e-9

func exampleParams() Params {
	return Params{
		Type:           Call,
		Strike:         10.00,
		Dividend:       0.05,
		Volatility:     0.5,
		StockPrice:     10.00,
		InterestRate:   0.02,
		TimeToMaturity: 0.5,
	}
}

func newExample(t *testing.T) *Option {
	t.Helper()
	o, err := NewOption(exampleParams())
	require.NoError(t, err)
	return o
}

func TestOptionOutputs(t *testing.T) {
	t.Run("call reference values", func(t *testing.T) {
		o := newExample(t)

		assert.InDelta(t, 0.13435028842544403, o.D1(), equalityThreshold)
		assert.InDelta(t, -0.21920310216782976, o.D2(), equalityThreshold)
		assert.InDelta(t, 1.3063873815898726, o.Price(), equalityThreshold)
		assert.InDelta(t, 0.5397727920907599, o.Delta(), equalityThreshold)
		assert.InDelta(t, 0.10906318832032208, o.Gamma(), equalityThreshold)
		assert.InDelta(t, 2.7265797080080527, o.Vega(), equalityThreshold)
		assert.InDelta(t, -1.1752302687450007, o.Theta(), equalityThreshold)
	})

	t.Run("put reference values", func(t *testing.T) {
		p := exampleParams()
		p.Type = Put
		o, err := NewOption(p)
		require.NoError(t, err)

		assert.InDelta(t, 1.453786598798227, o.Price(), equalityThreshold)
		assert.InDelta(t, -0.43553711993757277, o.Delta(), equalityThreshold)
		assert.InDelta(t, 0.10906318832032208, o.Gamma(), equalityThreshold)
		assert.InDelta(t, 2.7265797080080527, o.Vega(), equalityThreshold)
		assert.InDelta(t, -1.4648752580093334, o.Theta(), equalityThreshold)
	})

	t.Run("in the money call without dividend", func(t *testing.T) {
		o, err := NewOption(Params{Type: Call, Strike: 9, Volatility: 0.3, StockPrice: 12, InterestRate: 0.05, TimeToMaturity: 1})
		require.NoError(t, err)

		assert.InDelta(t, 1.275606908172603, o.D1(), equalityThreshold)
		assert.InDelta(t, 3.635773218737337, o.Price(), equalityThreshold)
		assert.InDelta(t, 0.8989527445713976, o.Delta(), equalityThreshold)
		assert.InDelta(t, -0.6758901744706971, o.Theta(), equalityThreshold)
	})
}

func TestD2FollowsD1(t *testing.T) {
	cases := []Params{
		exampleParams(),
		{Type: Put, Strike: 100, Dividend: 0.01, Volatility: 0.2, StockPrice: 90, InterestRate: 0.03, TimeToMaturity: 2},
		{Type: Call, Strike: 50, Volatility: 1.2, StockPrice: 75, TimeToMaturity: 0.01},
	}
	for _, p := range cases {
		o, err := NewOption(p)
		require.NoError(t, err)
		assert.InDelta(t, o.D1()-p.Volatility*math.Sqrt(p.TimeToMaturity), o.D2(), equalityThreshold)
	}
}

func TestPutCallParity(t *testing.T) {
	for _, T := range []float64{0.05, 0.25, 0.5, 3} {
		p := exampleParams()
		p.TimeToMaturity = T
		call, err := NewOption(p)
		require.NoError(t, err)
		put := call.Parity()

		S, K, q, r := p.StockPrice, p.Strike, p.Dividend, p.InterestRate
		want := S*math.Exp(-q*T) - K*math.Exp(-r*T)
		assert.InDelta(t, want, call.Price()-put.Price(), equalityThreshold, "T=%v", T)
	}
}

func TestInvalidation(t *testing.T) {
	o := newExample(t)
	before := o.Price()

	require.NoError(t, o.SetStrike(12))
	after := o.Price()
	assert.Less(t, after, before)

	fresh, err := NewOption(o.Params())
	require.NoError(t, err)
	assert.Equal(t, fresh.Price(), after)
	assert.Equal(t, fresh.D1(), o.D1())
}

func TestCachedValuesSurviveReads(t *testing.T) {
	o := newExample(t)
	first := o.Price()
	assert.True(t, o.price.ok)
	assert.True(t, o.d1.ok)
	assert.True(t, o.d2.ok)
	assert.False(t, o.gamma.ok)

	o.price.value = 42
	assert.Equal(t, 42.0, o.Price(), "cached value should be returned without recomputation")

	require.NoError(t, o.SetVolatility(o.Volatility()))
	assert.False(t, o.price.ok)
	assert.Equal(t, first, o.Price())
}

func TestFailedSetterKeepsState(t *testing.T) {
	o := newExample(t)
	price := o.Price()

	err := o.SetStrike(-1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidInput))
	assert.Equal(t, 10.0, o.Strike())
	assert.True(t, o.price.ok)
	assert.Equal(t, price, o.Price())
}

func TestParityMirror(t *testing.T) {
	t.Run("symmetric link", func(t *testing.T) {
		o := newExample(t)
		mirror := o.Parity()

		assert.Same(t, o, mirror.Parity())
		assert.Same(t, mirror, o.Parity())
		assert.Equal(t, Put, mirror.Type())

		p, m := o.Params(), mirror.Params()
		m.Type = p.Type
		assert.Equal(t, p, m)
	})

	t.Run("copies type invariant values only", func(t *testing.T) {
		o := newExample(t)
		o.Greeks()
		o.d1.value = 7
		o.gamma.value = 8

		mirror := o.Parity()
		assert.True(t, mirror.d1.ok)
		assert.True(t, mirror.d2.ok)
		assert.True(t, mirror.gamma.ok)
		assert.True(t, mirror.vega.ok)
		assert.False(t, mirror.price.ok)
		assert.False(t, mirror.delta.ok)
		assert.False(t, mirror.theta.ok)
		assert.Equal(t, 7.0, mirror.D1())
		assert.Equal(t, 8.0, mirror.Gamma())
	})

	t.Run("uncomputed values stay uncomputed", func(t *testing.T) {
		o := newExample(t)
		mirror := o.Parity()
		assert.False(t, mirror.d1.ok)
		assert.InDelta(t, 0.13435028842544403, mirror.D1(), equalityThreshold)
	})

	t.Run("mutation dissolves the link on both sides", func(t *testing.T) {
		o := newExample(t)
		mirror := o.Parity()
		mirrorPrice := mirror.Price()

		require.NoError(t, o.SetStockPrice(12))
		assert.Nil(t, o.parity)
		assert.Nil(t, mirror.parity)

		assert.Equal(t, mirrorPrice, mirror.Price())
		assert.Equal(t, 10.0, mirror.StockPrice())

		fresh := o.Parity()
		assert.NotSame(t, mirror, fresh)
		assert.Equal(t, 12.0, fresh.StockPrice())
		assert.Same(t, o, fresh.Parity())

		again := mirror.Parity()
		assert.NotSame(t, o, again)
		assert.Equal(t, Call, again.Type())
		assert.Equal(t, 10.0, again.StockPrice())
	})

	t.Run("mutating the mirror leaves the origin cached", func(t *testing.T) {
		o := newExample(t)
		price := o.Price()
		mirror := o.Parity()

		require.NoError(t, mirror.SetTimeToMaturity(1))
		assert.True(t, o.price.ok)
		assert.Equal(t, price, o.Price())
		assert.Nil(t, o.parity)
		assert.Equal(t, 0.5, o.Parity().TimeToMaturity())
	})
}

func TestBoundaries(t *testing.T) {
	t.Run("zero stock price", func(t *testing.T) {
		p := exampleParams()
		p.StockPrice = 0
		call, err := NewOption(p)
		require.NoError(t, err)
		put := call.Parity()

		assert.Equal(t, 0.0, call.Price())
		assert.InDelta(t, p.Strike*math.Exp(-p.InterestRate*p.TimeToMaturity), put.Price(), equalityThreshold)
		for _, o := range []*Option{call, put} {
			assert.True(t, math.IsNaN(o.D1()))
			assert.True(t, math.IsNaN(o.D2()))
			assert.True(t, math.IsNaN(o.Delta()))
			assert.True(t, math.IsNaN(o.Gamma()))
			assert.True(t, math.IsNaN(o.Vega()))
			assert.True(t, math.IsNaN(o.Theta()))
		}
	})

	t.Run("expired", func(t *testing.T) {
		cases := []struct {
			spot     float64
			callWant float64
			putWant  float64
		}{
			{spot: 12, callWant: 2, putWant: 0},
			{spot: 7, callWant: 0, putWant: 3},
			{spot: 10, callWant: 0, putWant: 0},
		}
		for _, tc := range cases {
			p := exampleParams()
			p.StockPrice = tc.spot
			p.TimeToMaturity = 0
			call, err := NewOption(p)
			require.NoError(t, err)

			assert.Equal(t, tc.callWant, call.Price())
			assert.Equal(t, tc.putWant, call.Parity().Price())
			assert.True(t, math.IsNaN(call.D1()))
			assert.True(t, math.IsNaN(call.Delta()))
			assert.True(t, math.IsNaN(call.Gamma()))
			assert.True(t, math.IsNaN(call.Vega()))
			assert.True(t, math.IsNaN(call.Theta()))
		}
	})
}

func TestValidation(t *testing.T) {
	cases := []struct {
		name  string
		edit  func(*Params)
		field Field
	}{
		{"zero strike", func(p *Params) { p.Strike = 0 }, FieldStrike},
		{"zero volatility", func(p *Params) { p.Volatility = 0 }, FieldVolatility},
		{"invalid type", func(p *Params) { p.Type = "INVALID" }, FieldType},
		{"negative dividend", func(p *Params) { p.Dividend = -0.01 }, FieldDividend},
		{"negative stock price", func(p *Params) { p.StockPrice = -1 }, FieldStockPrice},
		{"negative interest rate", func(p *Params) { p.InterestRate = -0.01 }, FieldInterestRate},
		{"negative maturity", func(p *Params) { p.TimeToMaturity = -1 }, FieldTimeToMaturity},
		{"nan strike", func(p *Params) { p.Strike = math.NaN() }, FieldStrike},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := exampleParams()
			tc.edit(&p)

			o, err := NewOption(p)
			assert.Nil(t, o)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidInput))

			var inputErr *InputError
			require.True(t, errors.As(err, &inputErr))
			assert.Equal(t, tc.field, inputErr.Field)
			assert.Contains(t, err.Error(), string(tc.field))
		})
	}

	t.Run("setters", func(t *testing.T) {
		o := newExample(t)
		assert.ErrorIs(t, o.SetType("INVALID"), ErrInvalidInput)
		assert.ErrorIs(t, o.SetStrike(0), ErrInvalidInput)
		assert.ErrorIs(t, o.SetDividend(-1), ErrInvalidInput)
		assert.ErrorIs(t, o.SetVolatility(0), ErrInvalidInput)
		assert.ErrorIs(t, o.SetStockPrice(-1), ErrInvalidInput)
		assert.ErrorIs(t, o.SetInterestRate(-1), ErrInvalidInput)
		assert.ErrorIs(t, o.SetTimeToMaturity(-1), ErrInvalidInput)

		assert.NoError(t, o.SetType(Put))
		assert.NoError(t, o.SetDividend(0))
		assert.NoError(t, o.SetStockPrice(0))
		assert.NoError(t, o.SetInterestRate(0))
		assert.NoError(t, o.SetTimeToMaturity(0))
	})
}

func TestParseOptionType(t *testing.T) {
	c, err := ParseOptionType("call")
	require.NoError(t, err)
	assert.Equal(t, Call, c)

	p, err := ParseOptionType(" PUT ")
	require.NoError(t, err)
	assert.Equal(t, Put, p)

	_, err = ParseOptionType("straddle")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestString(t *testing.T) {
	s := newExample(t).String()
	assert.Contains(t, s, "type: CALL")
	assert.Contains(t, s, "stock_price: 10")
	assert.Contains(t, s, "price: 1.30638")
}
