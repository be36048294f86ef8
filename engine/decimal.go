package engine

import (
	"math"
	"math/big"

	"github.com/cockroachdb/apd/v3"
)

// DecimalPrecision is the number of significant digits a BigDecimal keeps.
const DecimalPrecision = 64

// decimalContext rounds every BigDecimal construction and operation.
// It is never modified after initialization so it is safe for concurrent use.
var decimalContext = &apd.Context{
	Precision:   DecimalPrecision,
	MaxExponent: apd.MaxExponent,
	MinExponent: apd.MinExponent,
	Rounding:    apd.RoundHalfEven,
	Traps:       apd.DefaultTraps,
}

var decimalZero = apd.New(0, 0)

// BigDecimal is an arbitrary-precision signed decimal bounded to DecimalPrecision significant digits.
// The zero value is 0.
type BigDecimal struct {
	d *apd.Decimal
}

// NewBigDecimal returns a BigDecimal holding a copy of d rounded to DecimalPrecision digits.
// Infinities and NaNs are not BigDecimals.
func NewBigDecimal(d *apd.Decimal) (BigDecimal, error) {
	if d == nil {
		return BigDecimal{}, nil
	}
	if d.Form != apd.Finite {
		return BigDecimal{}, InvalidNumericConversionError{Value: d.String(), To: KindBigDecimal}
	}
	var r apd.Decimal
	if _, err := decimalContext.Round(&r, d); err != nil {
		return BigDecimal{}, InvalidNumericConversionError{Value: d.String(), To: KindBigDecimal, Err: err}
	}
	return wrapDecimal(&r), nil
}

// ParseBigDecimal parses a decimal string such as "-3.25" or "1.5E+3".
func ParseBigDecimal(s string) (BigDecimal, error) {
	d, _, err := apd.NewFromString(s)
	if err != nil {
		return BigDecimal{}, InvalidNumericConversionError{Value: s, To: KindBigDecimal, Err: err}
	}
	return NewBigDecimal(d)
}

// wrapDecimal takes ownership of d. Negative zero is folded into zero.
func wrapDecimal(d *apd.Decimal) BigDecimal {
	if d.IsZero() {
		d.Negative = false
	}
	return BigDecimal{d: d}
}

func (BigDecimal) number() {}

// Kind returns KindBigDecimal.
func (BigDecimal) Kind() Kind { return KindBigDecimal }

func (b BigDecimal) String() string {
	return b.value().String()
}

// Decimal returns a copy of the underlying decimal.
func (b BigDecimal) Decimal() *apd.Decimal {
	return new(apd.Decimal).Set(b.value())
}

func (b BigDecimal) value() *apd.Decimal {
	if b.d == nil {
		return decimalZero
	}
	return b.d
}

func (b BigDecimal) float64() float64 {
	f, _ := b.value().Float64()
	return f
}

// ToBigDecimal converts n to a BigDecimal through its canonical string, not its binary value.
// A BigDecimal is returned as is.
func ToBigDecimal(n Number) (BigDecimal, error) {
	switch n := n.(type) {
	case nil:
		return BigDecimal{}, InvalidNumericConversionError{Value: "null", To: KindBigDecimal}
	case BigDecimal:
		return n, nil
	default:
		return ParseBigDecimal(n.String())
	}
}

// decimalFromFloat returns the exact binary value of f rounded to DecimalPrecision digits.
func decimalFromFloat(f float64) (BigDecimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return BigDecimal{}, InvalidNumericConversionError{Value: formatFloat(f, 64), To: KindBigDecimal}
	}

	// A finite float is n/2^k, which is n*5^k/10^k.
	r, _ := new(big.Float).SetFloat64(f).Rat(nil)
	k := r.Denom().BitLen() - 1
	coeff := new(big.Int).Abs(r.Num())
	coeff.Mul(coeff, new(big.Int).Exp(big.NewInt(5), big.NewInt(int64(k)), nil))

	d := apd.NewWithBigInt(new(apd.BigInt).SetMathBigInt(coeff), int32(-k))
	d.Negative = r.Sign() < 0
	return NewBigDecimal(d)
}

type decimalOperation func(d, x, y *apd.Decimal) (apd.Condition, error)

func decimalBinary(op decimalOperation, x, y Number) (Number, error) {
	a, err := ToBigDecimal(x)
	if err != nil {
		return nil, err
	}
	b, err := ToBigDecimal(y)
	if err != nil {
		return nil, err
	}
	var d apd.Decimal
	if _, err := op(&d, a.value(), b.value()); err != nil {
		return nil, InvalidNumericConversionError{Value: a.String() + ", " + b.String(), To: KindBigDecimal, Err: err}
	}
	return wrapDecimal(&d), nil
}

// quoDecimal divides within the decimal context. The quotient is rounded to DecimalPrecision digits;
// an exact quotient keeps no more trailing zeros than the difference of the operands' exponents.
// ok is false if the quotient's exponent is out of range.
func quoDecimal(x, y Number) (_ BigDecimal, ok bool, err error) {
	a, err := ToBigDecimal(x)
	if err != nil {
		return BigDecimal{}, false, err
	}
	b, err := ToBigDecimal(y)
	if err != nil {
		return BigDecimal{}, false, err
	}
	var d apd.Decimal
	c, err := decimalContext.Quo(&d, a.value(), b.value())
	if err != nil {
		return BigDecimal{}, false, nil
	}
	if !c.Inexact() {
		reduceTo(&d, a.value().Exponent-b.value().Exponent)
	}
	return wrapDecimal(&d), true, nil
}

// reduceTo strips trailing zeros from d but keeps its exponent at or below exp.
func reduceTo(d *apd.Decimal, exp int32) {
	if _, _, err := decimalContext.Reduce(d, d); err != nil {
		return
	}
	if d.Exponent <= exp {
		return
	}
	var q apd.Decimal
	if _, err := decimalContext.Quantize(&q, d, exp); err != nil {
		return
	}
	d.Set(&q)
}
