// Package calc implements the arithmetic behind the calc commands.
//
// Operands keep the fixed width they were parsed with, and results that do
// not fit that width are reported as errors rather than wrapped.
package calc

import (
	"errors"
	"fmt"
	"math"
)

// ErrOverflow is returned (wrapped) when a result does not fit the width of
// its operands.
var ErrOverflow = errors.New("integer overflow")

// Operator is the symbol of an arithmetic operation.
type Operator string

const (
	Plus  Operator = "+"
	Minus Operator = "-"
)

// Integer is the set of operand types the commands parse.
type Integer interface {
	~uint16 | ~int16
}

// An Expression is an evaluated binary operation.
type Expression[T Integer] struct {
	Left   T
	Op     Operator
	Right  T
	Result T
}

// String renders the expression as "<left> <op> <right> = <result>".
func (e Expression[T]) String() string {
	return fmt.Sprintf("%d %s %d = %d", e.Left, e.Op, e.Right, e.Result)
}

// Add returns the sum of a and b.
func Add(a, b uint16) (Expression[uint16], error) {
	sum := uint32(a) + uint32(b)
	if sum > math.MaxUint16 {
		return Expression[uint16]{}, overflow(a, Plus, b)
	}
	return Expression[uint16]{Left: a, Op: Plus, Right: b, Result: uint16(sum)}, nil
}

// Sub returns the difference of a and b.
func Sub(a, b int16) (Expression[int16], error) {
	diff := int32(a) - int32(b)
	if diff < math.MinInt16 || diff > math.MaxInt16 {
		return Expression[int16]{}, overflow(a, Minus, b)
	}
	return Expression[int16]{Left: a, Op: Minus, Right: b, Result: int16(diff)}, nil
}

func overflow[T Integer](a T, op Operator, b T) error {
	return fmt.Errorf("%d %s %d does not fit in %T: %w", a, op, b, a, ErrOverflow)
}
