package integrands

import (
	"fmt"
	"math"

	"github.com/Knetic/govaluate"

	"github.com/katalvlaran/quadra/newcotes"
)

// probeX is the sample used to validate a compiled expression up front.
// 1.0 sits inside the domain of every function in the table.
const probeX = 1.0

// unary adapts a float64 math function to the evaluator's calling
// convention, enforcing arity and argument type.
func unary(name string, f func(float64) float64) govaluate.ExpressionFunction {
	return func(args ...interface{}) (interface{}, error) {
		if len(args) != 1 {
			return nil, fmt.Errorf("%s: want 1 argument, got %d", name, len(args))
		}
		v, ok := args[0].(float64)
		if !ok {
			return nil, fmt.Errorf("%s: non-numeric argument %v", name, args[0])
		}

		return f(v), nil
	}
}

// mathFunctions is the fixed function table available to expressions.
// Domain faults inside these functions (log of a negative, √ of a
// negative) follow the math package: they return NaN values, not errors.
var mathFunctions = map[string]govaluate.ExpressionFunction{
	"sin":  unary("sin", math.Sin),
	"cos":  unary("cos", math.Cos),
	"tan":  unary("tan", math.Tan),
	"exp":  unary("exp", math.Exp),
	"log":  unary("log", math.Log),
	"sqrt": unary("sqrt", math.Sqrt),
	"abs":  unary("abs", math.Abs),
	"pow": func(args ...interface{}) (interface{}, error) {
		if len(args) != 2 {
			return nil, fmt.Errorf("pow: want 2 arguments, got %d", len(args))
		}
		base, okB := args[0].(float64)
		expo, okE := args[1].(float64)
		if !okB || !okE {
			return nil, fmt.Errorf("pow: non-numeric arguments %v, %v", args[0], args[1])
		}

		return math.Pow(base, expo), nil
	},
}

// params builds the evaluation environment for one sample: the variable x
// plus the constants pi and e.
func params(x float64) map[string]interface{} {
	return map[string]interface{}{
		"x":  x,
		"pi": math.Pi,
		"e":  math.E,
	}
}

// Compile turns an arithmetic expression in the variable x into a
// newcotes.Integrand.
//
// Description:
//
//	The expression language is govaluate's: +, -, *, /, %, ** for
//	exponent, parentheses, and the function table sin, cos, tan, exp,
//	log, sqrt, abs, pow(base, exponent). The constants pi and e are
//	predefined. The only free variable is x.
//
// Validation:
//
//	The expression is parsed and then probe-evaluated once at x = 1, so
//	unknown variables, unknown functions, arity mistakes and non-numeric
//	results (comparisons, string literals) are caught here rather than
//	mid-integration. All failure classes return ErrBadExpression
//	(wrapped with the underlying cause).
//
// Numeric policy:
//
//	Runtime faults inside the returned integrand — division artifacts,
//	domain errors, overflow — surface as NaN or ±Inf samples, never as
//	errors, matching the behavior of hand-written integrands.
func Compile(expr string) (newcotes.Integrand, error) {
	prog, err := govaluate.NewEvaluableExpressionWithFunctions(expr, mathFunctions)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadExpression, err)
	}

	probe, err := prog.Evaluate(params(probeX))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadExpression, err)
	}
	if _, ok := probe.(float64); !ok {
		return nil, fmt.Errorf("%w: result is %T, want a number", ErrBadExpression, probe)
	}

	return func(x float64) float64 {
		out, err := prog.Evaluate(params(x))
		if err != nil {
			return math.NaN()
		}
		v, ok := out.(float64)
		if !ok {
			return math.NaN()
		}

		return v
	}, nil
}
