package engine

import (
	"math"
	"strconv"
	"strings"
)

// Float32 is a single precision binary floating-point number.
type Float32 float32

// Float64 is a double precision binary floating-point number.
type Float64 float64

func (Float32) number() {}
func (Float64) number() {}

// Kind returns KindFloat32.
func (Float32) Kind() Kind { return KindFloat32 }

// Kind returns KindFloat64.
func (Float64) Kind() Kind { return KindFloat64 }

func (f Float32) String() string {
	return formatFloat(float64(f), 32)
}

func (f Float64) String() string {
	return formatFloat(float64(f), 64)
}

// formatFloat emits the shortest representation that round-trips.
// Finite values always carry a fraction or an exponent so that they never read as integers.
func formatFloat(f float64, bitSize int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "+Inf"
	case math.IsInf(f, -1):
		return "-Inf"
	}
	s := strconv.FormatFloat(f, 'g', -1, bitSize)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}

// compareF is a total order: -0.0 is less than +0.0, NaN is greater than any other value and equal to itself.
func compareF(x, y float64) Ordering {
	switch {
	case x < y:
		return Less
	case x > y:
		return Greater
	}

	switch xn, yn := math.IsNaN(x), math.IsNaN(y); {
	case xn && yn:
		return Equal
	case xn:
		return Greater
	case yn:
		return Less
	}

	switch xs, ys := math.Signbit(x), math.Signbit(y); {
	case xs == ys:
		return Equal
	case xs:
		return Less
	default:
		return Greater
	}
}
