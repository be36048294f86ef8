package engine

import "strconv"

// Int8 is a fixed-width 8-bit signed integer.
type Int8 int8

// Int16 is a fixed-width 16-bit signed integer.
type Int16 int16

// Int32 is a fixed-width 32-bit signed integer.
type Int32 int32

// Int64 is a fixed-width 64-bit signed integer.
type Int64 int64

func (Int8) number() {}
func (Int16) number() {}
func (Int32) number() {}
func (Int64) number() {}

// Kind returns KindInt8.
func (Int8) Kind() Kind { return KindInt8 }

// Kind returns KindInt16.
func (Int16) Kind() Kind { return KindInt16 }

// Kind returns KindInt32.
func (Int32) Kind() Kind { return KindInt32 }

// Kind returns KindInt64.
func (Int64) Kind() Kind { return KindInt64 }

func (i Int8) String() string { return strconv.FormatInt(int64(i), 10) }
func (i Int16) String() string { return strconv.FormatInt(int64(i), 10) }
func (i Int32) String() string { return strconv.FormatInt(int64(i), 10) }
func (i Int64) String() string { return strconv.FormatInt(int64(i), 10) }

func absI32(x Int32) Int32 {
	if x < 0 {
		return -x
	}
	return x
}

func absI64(x Int64) Int64 {
	if x < 0 {
		return -x
	}
	return x
}

func compareI(m, n int64) Ordering {
	switch {
	case m < n:
		return Less
	case m > n:
		return Greater
	default:
		return Equal
	}
}
