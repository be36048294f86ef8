package engine

import "math/big"

// arithmetic is a binary operation defined natively for each joint kind.
type arithmetic struct {
	decimal decimalOperation
	float   func(x, y float64) float64
	bigInt  func(z, x, y *big.Int) *big.Int
	long    func(x, y Int64) Int64
	integer func(x, y Int32) Int32
}

var (
	addition = arithmetic{
		decimal: decimalContext.Add,
		float:   func(x, y float64) float64 { return x + y },
		bigInt:  (*big.Int).Add,
		long:    func(x, y Int64) Int64 { return x + y },
		integer: func(x, y Int32) Int32 { return x + y },
	}
	subtraction = arithmetic{
		decimal: decimalContext.Sub,
		float:   func(x, y float64) float64 { return x - y },
		bigInt:  (*big.Int).Sub,
		long:    func(x, y Int64) Int64 { return x - y },
		integer: func(x, y Int32) Int32 { return x - y },
	}
	multiplication = arithmetic{
		decimal: decimalContext.Mul,
		float:   func(x, y float64) float64 { return x * y },
		bigInt:  (*big.Int).Mul,
		long:    func(x, y Int64) Int64 { return x * y },
		integer: func(x, y Int32) Int32 { return x * y },
	}
)

// apply converts x and y to their joint kind and applies the operation of that kind.
// Fixed-width integers wrap around on overflow.
func (a arithmetic) apply(x, y Number) (Number, error) {
	k, err := Joint(x.Kind(), y.Kind())
	if err != nil {
		return nil, err
	}

	switch k {
	case KindBigDecimal:
		return decimalBinary(a.decimal, x, y)
	case KindFloat64:
		return Float64(a.float(toFloat64(x), toFloat64(y))), nil
	case KindBigInt:
		m, err := ToBigInt(x)
		if err != nil {
			return nil, err
		}
		n, err := ToBigInt(y)
		if err != nil {
			return nil, err
		}
		return BigInt{i: a.bigInt(new(big.Int), m.value(), n.value())}, nil
	case KindInt64:
		return a.long(toInt64(x), toInt64(y)), nil
	default:
		return a.integer(toInt32(x), toInt32(y)), nil
	}
}
