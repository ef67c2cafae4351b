// Package arith holds the pure integer functions the demo runner prints.
//
// Add and Square follow ordinary Go int semantics and wrap on overflow.
// The Checked variants report overflow instead, for callers whose operands
// are not compile-time constants.
package arith

import (
	"math"
	"math/bits"
)

// Add returns a + b.
func Add(a, b int) int { return a + b }

// Square returns x * x.
func Square(x int) int { return x * x }

// CheckedAdd returns a + b, or an *OpError wrapping ErrOverflow when the sum
// does not fit in an int.
func CheckedAdd(a, b int) (int, error) {
	sum := a + b
	// Overflow happened iff both operands share a sign the result lacks.
	if (a >= 0) == (b >= 0) && (sum >= 0) != (a >= 0) {
		return 0, &OpError{Op: "add", Args: []int{a, b}, Err: ErrOverflow}
	}
	return sum, nil
}

// CheckedSquare returns x * x, or an *OpError wrapping ErrOverflow when the
// product does not fit in an int.
func CheckedSquare(x int) (int, error) {
	abs := uint(x)
	if x < 0 {
		abs = uint(-x) // for math.MinInt, -x wraps but uint(-x) is still the magnitude
	}
	hi, lo := bits.Mul(abs, abs)
	if hi != 0 || lo > math.MaxInt {
		return 0, &OpError{Op: "square", Args: []int{x}, Err: ErrOverflow}
	}
	return int(lo), nil
}
