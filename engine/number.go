package engine

import (
	"math"
	"math/big"

	"github.com/cockroachdb/apd/v3"
)

// Number is a numeric value tagged with its representation.
// It is one of Int8, Int16, Int32, Int64, Float32, Float64, BigInt, or BigDecimal.
// A nil Number is the absent operand.
type Number interface {
	Kind() Kind
	String() string
	number()
}

// Ordering is a result of Compare.
type Ordering int8

// Ordering is one of these values.
const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = 1
)

func (o Ordering) String() string {
	switch o {
	case Less:
		return "less"
	case Equal:
		return "equal"
	case Greater:
		return "greater"
	default:
		return "unknown"
	}
}

// Add returns the sum of x and y in their joint kind.
// An absent operand is the additive identity.
func Add(x, y Number) (Number, error) {
	switch {
	case x == nil:
		return y, nil
	case y == nil:
		return x, nil
	}
	return addition.apply(x, y)
}

// Sub returns x minus y in their joint kind.
// If x is absent, y is returned as is without negation.
func Sub(x, y Number) (Number, error) {
	switch {
	case x == nil:
		return y, nil
	case y == nil:
		return x, nil
	}
	return subtraction.apply(x, y)
}

// Mul returns the product of x and y in their joint kind.
// If either is absent, the result is Int32(0) regardless of the other.
func Mul(x, y Number) (Number, error) {
	if x == nil || y == nil {
		return Int32(0), nil
	}
	return multiplication.apply(x, y)
}

// Div returns x divided by y. Fixed-width integers are divided as Float64.
// BigInt and BigDecimal are divided as BigDecimal rounded to DecimalPrecision digits,
// or as Float64 if the quotient's exponent is out of the decimal range.
func Div(x, y Number) (Number, error) {
	switch {
	case x == nil:
		return Int32(0), nil
	case y == nil:
		return nil, ErrDivisionByZero
	}

	k, err := Joint(x.Kind(), y.Kind())
	if err != nil {
		return nil, err
	}

	fy := toFloat64(y)
	if fy == 0 {
		return nil, ErrDivisionByZero
	}

	switch k {
	case KindBigDecimal, KindBigInt:
		q, ok, err := quoDecimal(x, y)
		if err != nil {
			return nil, err
		}
		if ok {
			return q, nil
		}
	}
	return Float64(toFloat64(x) / fy), nil
}

// Mod returns the remainder of x divided by y. The sign follows x.
// Int32 and Int64 use the native remainder. The others compute a floating-point remainder
// and return it as a BigDecimal.
func Mod(x, y Number) (Number, error) {
	if x == nil || y == nil {
		return Int32(0), nil
	}

	k, err := Joint(x.Kind(), y.Kind())
	if err != nil {
		return nil, err
	}

	switch k {
	case KindInt32:
		m, n := toInt32(x), toInt32(y)
		if n == 0 {
			return nil, ErrDivisionByZero
		}
		return m % n, nil
	case KindInt64:
		m, n := toInt64(x), toInt64(y)
		if n == 0 {
			return nil, ErrDivisionByZero
		}
		return m % n, nil
	default:
		fy := toFloat64(y)
		if fy == 0 {
			return nil, ErrDivisionByZero
		}
		return decimalFromFloat(math.Mod(toFloat64(x), fy))
	}
}

// Compare compares x and y in their joint kind. An absent operand counts as Int32(0).
func Compare(x, y Number) (Ordering, error) {
	if x == nil {
		x = Int32(0)
	}
	if y == nil {
		y = Int32(0)
	}

	k, err := Joint(x.Kind(), y.Kind())
	if err != nil {
		return Equal, err
	}

	switch k {
	case KindBigDecimal:
		a, err := ToBigDecimal(x)
		if err != nil {
			return Equal, err
		}
		b, err := ToBigDecimal(y)
		if err != nil {
			return Equal, err
		}
		return Ordering(a.value().Cmp(b.value())), nil
	case KindFloat64:
		return compareF(toFloat64(x), toFloat64(y)), nil
	case KindBigInt:
		a, err := ToBigInt(x)
		if err != nil {
			return Equal, err
		}
		b, err := ToBigInt(y)
		if err != nil {
			return Equal, err
		}
		return Ordering(a.value().Cmp(b.value())), nil
	default:
		return compareI(int64(toInt64(x)), int64(toInt64(y))), nil
	}
}

// Neg returns the negation of x. Int8 and Int16 are negated as Int32.
// Int32 and Int64 wrap at their minimum value.
// The negation of the absent operand is absent.
func Neg(x Number) (Number, error) {
	switch x := x.(type) {
	case nil:
		return nil, nil
	case Int8:
		return -Int32(x), nil
	case Int16:
		return -Int32(x), nil
	case Int32:
		return -x, nil
	case Int64:
		return -x, nil
	case Float32:
		return -x, nil
	case Float64:
		return -x, nil
	case BigInt:
		return BigInt{i: new(big.Int).Neg(x.value())}, nil
	case BigDecimal:
		return wrapDecimal(new(apd.Decimal).Neg(x.value())), nil
	default:
		return nil, UnsupportedOperandTypeError{Left: x.Kind()}
	}
}

// Pos returns x as is.
func Pos(x Number) (Number, error) {
	return x, nil
}

// Abs returns the absolute value of x. Int8 and Int16 are returned as Int32.
// The minimum values of Int32 and Int64 are their own absolute values.
// The absolute value of the absent operand is Int32(0).
func Abs(x Number) (Number, error) {
	switch x := x.(type) {
	case nil:
		return Int32(0), nil
	case Int8:
		return absI32(Int32(x)), nil
	case Int16:
		return absI32(Int32(x)), nil
	case Int32:
		return absI32(x), nil
	case Int64:
		return absI64(x), nil
	case Float32:
		return Float32(math.Abs(float64(x))), nil
	case Float64:
		return Float64(math.Abs(float64(x))), nil
	case BigInt:
		return BigInt{i: new(big.Int).Abs(x.value())}, nil
	case BigDecimal:
		return wrapDecimal(new(apd.Decimal).Abs(x.value())), nil
	default:
		return nil, UnsupportedOperandTypeError{Left: x.Kind()}
	}
}

// Type conversion operations

func toInt32(n Number) Int32 {
	switch n := n.(type) {
	case Int8:
		return Int32(n)
	case Int16:
		return Int32(n)
	case Int32:
		return n
	default:
		return Int32(toInt64(n))
	}
}

func toInt64(n Number) Int64 {
	switch n := n.(type) {
	case Int8:
		return Int64(n)
	case Int16:
		return Int64(n)
	case Int32:
		return Int64(n)
	case Int64:
		return n
	case Float32:
		return Int64(n)
	case Float64:
		return Int64(n)
	case BigInt:
		return Int64(n.value().Int64())
	case BigDecimal:
		return Int64(n.float64())
	default:
		return 0
	}
}

func toFloat64(n Number) float64 {
	switch n := n.(type) {
	case Int8:
		return float64(n)
	case Int16:
		return float64(n)
	case Int32:
		return float64(n)
	case Int64:
		return float64(n)
	case Float32:
		return float64(n)
	case Float64:
		return float64(n)
	case BigInt:
		return n.float64()
	case BigDecimal:
		return n.float64()
	default:
		return 0
	}
}
