package main

import (
	"bytes"
	"log"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ichiban/numtower/engine"
)

func TestNew(t *testing.T) {
	efs := New()

	t.Run("max", func(t *testing.T) {
		r, err := efs.Eval(`3i max 5L`)
		assert.NoError(t, err)
		assert.Equal(t, engine.Int64(5), r)

		r, err = efs.Eval(`null max -1`)
		assert.NoError(t, err)
		assert.Nil(t, r)
	})

	t.Run("min", func(t *testing.T) {
		r, err := efs.Eval(`3i min 2.5d`)
		assert.NoError(t, err)
		assert.Equal(t, engine.Float64(2.5), r)
	})

	t.Run("defaults", func(t *testing.T) {
		r, err := efs.Eval(`7 / 2`)
		assert.NoError(t, err)
		assert.Equal(t, engine.Float64(3.5), r)
	})

	t.Run("defaults are not modified", func(t *testing.T) {
		_, ok := engine.DefaultEvaluableFunctors.Binary["max"]
		assert.False(t, ok)
	})
}

func TestHandleLine(t *testing.T) {
	tests := []struct {
		title  string
		line   string
		output string
		err    error
	}{
		{title: "empty", line: `  `, output: ``},
		{title: "promotion", line: `2 + 3.5d`, output: "5.5 : float64\n"},
		{title: "bigint", line: `100000000000000000000 * 2`, output: "200000000000000000000 : bigint\n"},
		{title: "absent", line: `- null`, output: "null : absent\n"},
		{title: "divide by zero", line: `1 / 0`, err: engine.ErrDivisionByZero},
		{title: "unknown operator", line: `1 ^ 2`, err: engine.UnknownOperatorError{Op: "^", Arity: 2}},
	}

	var buf bytes.Buffer
	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			buf.Reset()
			err := handleLine(&buf, New(), tt.line, false)
			assert.Equal(t, tt.err, err)
			assert.Equal(t, tt.output, buf.String())
		})
	}

	t.Run("verbose", func(t *testing.T) {
		var logs bytes.Buffer
		log.SetOutput(&logs)
		defer log.SetOutput(os.Stderr)

		buf.Reset()
		assert.NoError(t, handleLine(&buf, New(), `1b + 2L`, true))
		assert.Equal(t, "3 : int64\n", buf.String())
		assert.Contains(t, logs.String(), "APPLY 1 + 2")
		assert.Contains(t, logs.String(), "JOINT int8 int64 -> int64")
	})
}

func TestEvalArgs(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		var buf bytes.Buffer
		assert.NoError(t, evalArgs(&buf, New(), []string{"1 + 2", "-1", "1 / 3g"}, false))
		assert.Equal(t, "3 : int32\n-1 : int32\n0."+strings.Repeat("3", engine.DecimalPrecision)+" : bigdecimal\n", buf.String())
	})

	t.Run("stops at the first failure", func(t *testing.T) {
		var buf bytes.Buffer
		err := evalArgs(&buf, New(), []string{"1 + 2", "1 / 0", "2 + 2"}, false)
		assert.ErrorIs(t, err, engine.ErrDivisionByZero)
		assert.Equal(t, "3 : int32\n", buf.String())
	})
}
