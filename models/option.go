package models

import (
	"fmt"
	"math"
	"strings"
)

// Params is the full set of inputs needed to build an Option.
type Params struct {
	Type           OptionType `yaml:"type" json:"type" csv:"type"`
	Strike         float64    `yaml:"strike" json:"strike" csv:"strike"`
	Dividend       float64    `yaml:"dividend" json:"dividend" csv:"dividend"`
	Volatility     float64    `yaml:"volatility" json:"volatility" csv:"volatility"`
	StockPrice     float64    `yaml:"stock_price" json:"stock_price" csv:"stock_price"`
	InterestRate   float64    `yaml:"interest_rate" json:"interest_rate" csv:"interest_rate"`
	TimeToMaturity float64    `yaml:"time_to_maturity" json:"time_to_maturity" csv:"time_to_maturity"`
}

// Validate returns the first invalid field, in declaration order.
func (p Params) Validate() error {
	if !p.Type.Valid() {
		return invalid(FieldType, p.Type)
	}
	checks := []struct {
		field Field
		value float64
		ok    func(float64) bool
	}{
		{FieldStrike, p.Strike, positive},
		{FieldDividend, p.Dividend, nonNegative},
		{FieldVolatility, p.Volatility, positive},
		{FieldStockPrice, p.StockPrice, nonNegative},
		{FieldInterestRate, p.InterestRate, nonNegative},
		{FieldTimeToMaturity, p.TimeToMaturity, nonNegative},
	}
	for _, c := range checks {
		if !c.ok(c.value) {
			return invalid(c.field, c.value)
		}
	}
	return nil
}

// NaN fails both comparisons, so it is rejected everywhere.
func positive(v float64) bool    { return v > 0 }
func nonNegative(v float64) bool { return v >= 0 }

type cached struct {
	value float64
	ok    bool
}

// Option is a European option priced with Black-Scholes-Merton under a
// continuous dividend yield. Outputs are computed on first read and kept
// until any input changes.
//
// An Option is not safe for concurrent use: reads fill the cache in place.
type Option struct {
	optionType     OptionType
	strike         float64
	dividend       float64
	volatility     float64
	stockPrice     float64
	interestRate   float64
	timeToMaturity float64

	d1    cached
	d2    cached
	price cached
	delta cached
	gamma cached
	vega  cached
	theta cached

	parity *Option
}

func NewOption(p Params) (*Option, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return newOption(p), nil
}

func newOption(p Params) *Option {
	return &Option{
		optionType:     p.Type,
		strike:         p.Strike,
		dividend:       p.Dividend,
		volatility:     p.Volatility,
		stockPrice:     p.StockPrice,
		interestRate:   p.InterestRate,
		timeToMaturity: p.TimeToMaturity,
	}
}

func (o *Option) Params() Params {
	return Params{
		Type:           o.optionType,
		Strike:         o.strike,
		Dividend:       o.dividend,
		Volatility:     o.volatility,
		StockPrice:     o.stockPrice,
		InterestRate:   o.interestRate,
		TimeToMaturity: o.timeToMaturity,
	}
}

// Clone returns an unlinked copy with the same inputs and an empty cache.
func (o *Option) Clone() *Option {
	return newOption(o.Params())
}

// reset clears every derived value and detaches the parity partner.
func (o *Option) reset() {
	o.d1 = cached{}
	o.d2 = cached{}
	o.price = cached{}
	o.delta = cached{}
	o.gamma = cached{}
	o.vega = cached{}
	o.theta = cached{}

	if o.parity != nil {
		if o.parity.parity == o {
			o.parity.parity = nil
		}
		o.parity = nil
	}
}

func (o *Option) Type() OptionType        { return o.optionType }
func (o *Option) Strike() float64         { return o.strike }
func (o *Option) Dividend() float64       { return o.dividend }
func (o *Option) Volatility() float64     { return o.volatility }
func (o *Option) StockPrice() float64     { return o.stockPrice }
func (o *Option) InterestRate() float64   { return o.interestRate }
func (o *Option) TimeToMaturity() float64 { return o.timeToMaturity }

func (o *Option) SetType(t OptionType) error {
	if !t.Valid() {
		return invalid(FieldType, t)
	}
	o.optionType = t
	o.reset()
	return nil
}

func (o *Option) SetStrike(v float64) error {
	if !positive(v) {
		return invalid(FieldStrike, v)
	}
	o.strike = v
	o.reset()
	return nil
}

func (o *Option) SetDividend(v float64) error {
	if !nonNegative(v) {
		return invalid(FieldDividend, v)
	}
	o.dividend = v
	o.reset()
	return nil
}

func (o *Option) SetVolatility(v float64) error {
	if !positive(v) {
		return invalid(FieldVolatility, v)
	}
	o.volatility = v
	o.reset()
	return nil
}

func (o *Option) SetStockPrice(v float64) error {
	if !nonNegative(v) {
		return invalid(FieldStockPrice, v)
	}
	o.stockPrice = v
	o.reset()
	return nil
}

func (o *Option) SetInterestRate(v float64) error {
	if !nonNegative(v) {
		return invalid(FieldInterestRate, v)
	}
	o.interestRate = v
	o.reset()
	return nil
}

func (o *Option) SetTimeToMaturity(v float64) error {
	if !nonNegative(v) {
		return invalid(FieldTimeToMaturity, v)
	}
	o.timeToMaturity = v
	o.reset()
	return nil
}

// atBoundary reports whether d1 is undefined (zero spot or expired).
func (o *Option) atBoundary() bool {
	return o.stockPrice == 0 || o.timeToMaturity == 0
}

func (o *Option) D1() float64 {
	if !o.d1.ok {
		o.d1 = cached{value: o.calculateD1(), ok: true}
	}
	return o.d1.value
}

func (o *Option) calculateD1() float64 {
	if o.atBoundary() {
		return math.NaN()
	}
	S, K, T := o.stockPrice, o.strike, o.timeToMaturity
	r, q, sigma := o.interestRate, o.dividend, o.volatility
	return (math.Log(S/K) + (r-q+0.5*sigma*sigma)*T) / (sigma * math.Sqrt(T))
}

func (o *Option) D2() float64 {
	if !o.d2.ok {
		o.d2 = cached{value: o.D1() - o.volatility*math.Sqrt(o.timeToMaturity), ok: true}
	}
	return o.d2.value
}

func (o *Option) Delta() float64 {
	if !o.delta.ok {
		o.delta = cached{value: o.calculateDelta(), ok: true}
	}
	return o.delta.value
}

func (o *Option) calculateDelta() float64 {
	if o.atBoundary() {
		return math.NaN()
	}
	qDiscount := math.Exp(-o.dividend * o.timeToMaturity)
	if o.optionType == Call {
		return qDiscount * normCDF(o.D1())
	}
	return -qDiscount * normCDF(-o.D1())
}

func (o *Option) Gamma() float64 {
	if !o.gamma.ok {
		o.gamma = cached{value: o.calculateGamma(), ok: true}
	}
	return o.gamma.value
}

func (o *Option) calculateGamma() float64 {
	if o.atBoundary() {
		return math.NaN()
	}
	S, T, q, sigma := o.stockPrice, o.timeToMaturity, o.dividend, o.volatility
	return math.Exp(-q*T) * normPDF(o.D1()) / (sigma * S * math.Sqrt(T))
}

// Vega has no boundary branch: at zero spot or expiry it is NaN through d1.
func (o *Option) Vega() float64 {
	if !o.vega.ok {
		S, T, q := o.stockPrice, o.timeToMaturity, o.dividend
		o.vega = cached{value: math.Exp(-q*T) * S * math.Sqrt(T) * normPDF(o.D1()), ok: true}
	}
	return o.vega.value
}

func (o *Option) Theta() float64 {
	if !o.theta.ok {
		o.theta = cached{value: o.calculateTheta(), ok: true}
	}
	return o.theta.value
}

func (o *Option) calculateTheta() float64 {
	if o.atBoundary() {
		return math.NaN()
	}
	S, K, T := o.stockPrice, o.strike, o.timeToMaturity
	r, q, sigma := o.interestRate, o.dividend, o.volatility
	qDiscount := math.Exp(-q * T)
	rDiscount := math.Exp(-r * T)
	decay := -qDiscount * S * normPDF(o.D1()) * sigma / (2 * math.Sqrt(T))
	if o.optionType == Call {
		return decay + q*qDiscount*S*normCDF(o.D1()) - r*K*rDiscount*normCDF(o.D2())
	}
	return decay - q*qDiscount*S*normCDF(-o.D1()) + r*K*rDiscount*normCDF(-o.D2())
}

func (o *Option) Price() float64 {
	if !o.price.ok {
		o.price = cached{value: o.calculatePrice(), ok: true}
	}
	return o.price.value
}

func (o *Option) calculatePrice() float64 {
	S, K, T := o.stockPrice, o.strike, o.timeToMaturity
	r, q := o.interestRate, o.dividend
	switch {
	case S == 0 && o.optionType == Call:
		return 0
	case S == 0:
		return K * math.Exp(-r*T)
	case T == 0:
		return IntrinsicValue(o.optionType, K, S)
	case o.optionType == Call:
		return math.Exp(-q*T)*S*normCDF(o.D1()) - math.Exp(-r*T)*K*normCDF(o.D2())
	default:
		return math.Exp(-r*T)*K*normCDF(-o.D2()) - math.Exp(-q*T)*S*normCDF(-o.D1())
	}
}

// Parity returns the opposite-type option on the same market inputs. The
// link is symmetric: o.Parity().Parity() == o. Mutating either side breaks
// the link, and the next call builds a fresh mirror.
func (o *Option) Parity() *Option {
	if o.parity == nil {
		o.parity = o.mirror()
	}
	return o.parity
}

// mirror copies the market inputs and the type-invariant cache entries
// (d1, d2, gamma, vega). Price, delta and theta depend on the type and are
// left to be computed on the mirror.
func (o *Option) mirror() *Option {
	m := &Option{
		optionType:     o.optionType.Opposite(),
		strike:         o.strike,
		dividend:       o.dividend,
		volatility:     o.volatility,
		stockPrice:     o.stockPrice,
		interestRate:   o.interestRate,
		timeToMaturity: o.timeToMaturity,

		d1:    o.d1,
		d2:    o.d2,
		gamma: o.gamma,
		vega:  o.vega,

		parity: o,
	}
	return m
}

func (o *Option) String() string {
	var b strings.Builder
	b.WriteString("Option: {\n")
	fmt.Fprintf(&b, "  type: %s\n", o.optionType)
	fmt.Fprintf(&b, "  strike: %g\n", o.strike)
	fmt.Fprintf(&b, "  dividend: %g\n", o.dividend)
	fmt.Fprintf(&b, "  volatility: %g\n", o.volatility)
	fmt.Fprintf(&b, "  stock_price: %g\n", o.stockPrice)
	fmt.Fprintf(&b, "  interest_rate: %g\n", o.interestRate)
	fmt.Fprintf(&b, "  time_to_maturity: %g\n", o.timeToMaturity)
	fmt.Fprintf(&b, "  d1: %g\n", o.D1())
	fmt.Fprintf(&b, "  d2: %g\n", o.D2())
	fmt.Fprintf(&b, "  delta: %g\n", o.Delta())
	fmt.Fprintf(&b, "  gamma: %g\n", o.Gamma())
	fmt.Fprintf(&b, "  vega: %g\n", o.Vega())
	fmt.Fprintf(&b, "  theta: %g\n", o.Theta())
	fmt.Fprintf(&b, "  price: %g\n", o.Price())
	b.WriteString("}")
	return b.String()
}
