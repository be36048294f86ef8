package engine

// DefaultEvaluableFunctors is a EvaluableFunctors with the builtin operators.
var DefaultEvaluableFunctors = EvaluableFunctors{
	Unary: map[string]func(Number) (Number, error){
		"-":   Neg,
		"neg": Neg,
		"+":   Pos,
		"pos": Pos,
		"abs": Abs,
	},
	Binary: map[string]func(Number, Number) (Number, error){
		"+":   Add,
		"-":   Sub,
		"*":   Mul,
		"/":   Div,
		"%":   Mod,
		"mod": Mod,
		"<=>": CompareTo,
		"cmp": CompareTo,
	},
}

// EvaluableFunctors is a set of unary/binary operators.
type EvaluableFunctors struct {
	// Unary is a set of operators of arity 1.
	Unary map[string]func(x Number) (Number, error)

	// Binary is a set of operators of arity 2.
	Binary map[string]func(x, y Number) (Number, error)
}

// Eval parses src as an expression and applies it.
func (e EvaluableFunctors) Eval(src string) (Number, error) {
	expr, err := ParseExpression(src)
	if err != nil {
		return nil, err
	}
	return e.Apply(expr)
}

// Apply applies the operator of expr to its operands.
func (e EvaluableFunctors) Apply(expr Expression) (Number, error) {
	switch arity := len(expr.Args); arity {
	case 1:
		if expr.Op == "" {
			return expr.Args[0], nil
		}
		f, ok := e.Unary[expr.Op]
		if !ok {
			return nil, UnknownOperatorError{Op: expr.Op, Arity: arity}
		}
		return f(expr.Args[0])
	case 2:
		f, ok := e.Binary[expr.Op]
		if !ok {
			return nil, UnknownOperatorError{Op: expr.Op, Arity: arity}
		}
		return f(expr.Args[0], expr.Args[1])
	default:
		return nil, UnknownOperatorError{Op: expr.Op, Arity: arity}
	}
}

// CompareTo returns the ordering of x and y as Int32 -1, 0, or 1.
func CompareTo(x, y Number) (Number, error) {
	o, err := Compare(x, y)
	if err != nil {
		return nil, err
	}
	return Int32(o), nil
}
