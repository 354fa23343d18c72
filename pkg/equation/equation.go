// Package equation compiles and evaluates checkup scoring expressions.
// Expressions see a single variable w, bound to the summed answer weight.
package equation

import (
	"errors"
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

var (
	ErrEmptyExpression   = errors.New("equation: empty expression")
	ErrInvalidExpression = errors.New("equation: invalid expression")
	ErrNotNumeric        = errors.New("equation: expression does not evaluate to a number")
)

type env struct {
	W float64 `expr:"w"`
}

// Compile parses and type-checks an expression. Used at authoring time so
// a broken equation is rejected before any patient runs the checkup.
func Compile(expression string) (*vm.Program, error) {
	if expression == "" {
		return nil, ErrEmptyExpression
	}

	prog, err := expr.Compile(expression, expr.Env(env{}), expr.AsFloat64())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidExpression, err)
	}
	return prog, nil
}

// Validate reports whether the expression compiles.
func Validate(expression string) error {
	_, err := Compile(expression)
	return err
}

// Eval compiles and runs an expression with w bound to weightSum.
func Eval(expression string, weightSum float64) (float64, error) {
	prog, err := Compile(expression)
	if err != nil {
		return 0, err
	}
	return Run(prog, weightSum)
}

// Run executes a previously compiled expression.
func Run(prog *vm.Program, weightSum float64) (float64, error) {
	out, err := expr.Run(prog, env{W: weightSum})
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidExpression, err)
	}

	f, ok := out.(float64)
	if !ok {
		return 0, ErrNotNumeric
	}
	return f, nil
}
