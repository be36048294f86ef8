package engine

import (
	"math/big"
	"strconv"
)

var bigZero = new(big.Int)

// BigInt is an arbitrary-precision signed integer. The zero value is 0.
type BigInt struct {
	i *big.Int
}

// NewBigInt returns a BigInt holding a copy of i.
func NewBigInt(i *big.Int) BigInt {
	if i == nil {
		return BigInt{}
	}
	return BigInt{i: new(big.Int).Set(i)}
}

// ParseBigInt parses a base 10 integer.
func ParseBigInt(s string) (BigInt, error) {
	i, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return BigInt{}, InvalidNumericConversionError{Value: s, To: KindBigInt, Err: strconv.ErrSyntax}
	}
	return BigInt{i: i}, nil
}

func (BigInt) number() {}

// Kind returns KindBigInt.
func (BigInt) Kind() Kind { return KindBigInt }

func (b BigInt) String() string {
	return b.value().String()
}

// Int returns a copy of the underlying integer.
func (b BigInt) Int() *big.Int {
	return new(big.Int).Set(b.value())
}

func (b BigInt) value() *big.Int {
	if b.i == nil {
		return bigZero
	}
	return b.i
}

func (b BigInt) float64() float64 {
	f, _ := new(big.Float).SetInt(b.value()).Float64()
	return f
}

// ToBigInt converts n to a BigInt through its canonical string.
// Floating-point and fractional decimal values fail with InvalidNumericConversionError.
func ToBigInt(n Number) (BigInt, error) {
	switch n := n.(type) {
	case nil:
		return BigInt{}, InvalidNumericConversionError{Value: "null", To: KindBigInt}
	case BigInt:
		return n, nil
	default:
		return ParseBigInt(n.String())
	}
}
