package main

import (
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/ichiban/numtower/engine"
)

// New creates an engine.EvaluableFunctors with some helper operators.
func New() engine.EvaluableFunctors {
	efs := engine.EvaluableFunctors{
		Unary:  map[string]func(engine.Number) (engine.Number, error){},
		Binary: map[string]func(engine.Number, engine.Number) (engine.Number, error){},
	}
	for op, f := range engine.DefaultEvaluableFunctors.Unary {
		efs.Unary[op] = f
	}
	for op, f := range engine.DefaultEvaluableFunctors.Binary {
		efs.Binary[op] = f
	}
	efs.Binary["max"] = func(x, y engine.Number) (engine.Number, error) {
		o, err := engine.Compare(x, y)
		if err != nil {
			return nil, err
		}
		if o == engine.Less {
			return y, nil
		}
		return x, nil
	}
	efs.Binary["min"] = func(x, y engine.Number) (engine.Number, error) {
		o, err := engine.Compare(x, y)
		if err != nil {
			return nil, err
		}
		if o == engine.Greater {
			return y, nil
		}
		return x, nil
	}
	return efs
}

// handleLine evaluates a line and writes the result with its kind.
func handleLine(w io.Writer, efs engine.EvaluableFunctors, line string, verbose bool) error {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}

	expr, err := engine.ParseExpression(line)
	if err != nil {
		return err
	}

	if verbose {
		log.Printf("APPLY %s", expr)
		if len(expr.Args) == 2 {
			x, y := engine.KindOf(expr.Args[0]), engine.KindOf(expr.Args[1])
			if k, err := engine.Joint(x, y); err == nil {
				log.Printf("JOINT %s %s -> %s", x, y, k)
			}
		}
	}

	r, err := efs.Apply(expr)
	if err != nil {
		return err
	}

	s := "null"
	if r != nil {
		s = r.String()
	}
	_, err = fmt.Fprintf(w, "%s : %s\n", s, engine.KindOf(r))
	return err
}

// evalArgs evaluates each argument as a line and stops at the first failure.
func evalArgs(w io.Writer, efs engine.EvaluableFunctors, args []string, verbose bool) error {
	for _, a := range args {
		if err := handleLine(w, efs, a, verbose); err != nil {
			return fmt.Errorf("%s: %w", a, err)
		}
	}
	return nil
}
