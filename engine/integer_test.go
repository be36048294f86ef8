package engine

import (
	"math"
	"math/big"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInteger_String(t *testing.T) {
	tests := []struct {
		title   string
		integer Number
		output  string
	}{
		{title: "int8", integer: Int8(math.MinInt8), output: `-128`},
		{title: "int16", integer: Int16(33), output: `33`},
		{title: "int32", integer: Int32(-33), output: `-33`},
		{title: "int64", integer: Int64(math.MaxInt64), output: `9223372036854775807`},
		{title: "bigint", integer: NewBigInt(new(big.Int).Lsh(big.NewInt(1), 70)), output: `1180591620717411303424`},
		{title: "zero bigint", integer: BigInt{}, output: `0`},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.output, tt.integer.String())
		})
	}
}

func TestBigInt_Int(t *testing.T) {
	i := big.NewInt(3)
	b := NewBigInt(i)
	i.SetInt64(4)
	assert.Equal(t, big.NewInt(3), b.Int())

	c := b.Int()
	c.SetInt64(5)
	assert.Equal(t, "3", b.String())

	assert.Equal(t, BigInt{}, NewBigInt(nil))
}

func TestParseBigInt(t *testing.T) {
	b, err := ParseBigInt("-100000000000000000000")
	assert.NoError(t, err)
	assert.Equal(t, "-100000000000000000000", b.String())

	_, err = ParseBigInt("1.5")
	assert.Equal(t, InvalidNumericConversionError{Value: "1.5", To: KindBigInt, Err: strconv.ErrSyntax}, err)
}
