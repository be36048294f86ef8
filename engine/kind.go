package engine

// Kind is a numeric representation.
type Kind uint8

// Kind is one of these values.
const (
	KindAbsent Kind = iota
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindFloat32
	KindFloat64
	KindBigInt
	KindBigDecimal

	kindLen
)

func (k Kind) String() string {
	if k >= kindLen {
		return "unknown"
	}
	return [kindLen]string{
		KindAbsent:     "absent",
		KindInt8:       "int8",
		KindInt16:      "int16",
		KindInt32:      "int32",
		KindInt64:      "int64",
		KindFloat32:    "float32",
		KindFloat64:    "float64",
		KindBigInt:     "bigint",
		KindBigDecimal: "bigdecimal",
	}[k]
}

func (k Kind) numeric() bool {
	return KindInt8 <= k && k <= KindBigDecimal
}

// KindOf returns the kind of n. The absent operand is of KindAbsent.
func KindOf(n Number) Kind {
	if n == nil {
		return KindAbsent
	}
	return n.Kind()
}

// Joint returns the kind in which a binary operation over x and y is carried out.
// The order is a fixed precedence table, not a value-domain lattice:
// BigDecimal, Float64, Float32 (widened to Float64), BigInt, Int64, Int32.
func Joint(x, y Kind) (Kind, error) {
	if !x.numeric() || !y.numeric() {
		return KindAbsent, UnsupportedOperandTypeError{Left: x, Right: y}
	}

	switch {
	case x == KindBigDecimal || y == KindBigDecimal:
		return KindBigDecimal, nil
	case x == KindFloat64 || y == KindFloat64:
		return KindFloat64, nil
	case x == KindFloat32 || y == KindFloat32:
		return KindFloat64, nil
	case x == KindBigInt || y == KindBigInt:
		return KindBigInt, nil
	case x == KindInt64 || y == KindInt64:
		return KindInt64, nil
	default:
		return KindInt32, nil
	}
}
