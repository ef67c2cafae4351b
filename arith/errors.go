package arith

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrOverflow means the exact result is outside the range of int.
var ErrOverflow = errors.New("integer overflow")

// OpError records which operation failed and on what operands, following the
// net.OpError / os.PathError shape. Callers match the cause with errors.Is.
type OpError struct {
	Op   string // "add", "square"
	Args []int
	Err  error
}

func (e *OpError) Error() string {
	args := make([]string, len(e.Args))
	for i, a := range e.Args {
		args[i] = strconv.Itoa(a)
	}
	return fmt.Sprintf("%s(%s): %v", e.Op, strings.Join(args, ", "), e.Err)
}

// Unwrap exposes the underlying error to errors.Is and errors.As.
func (e *OpError) Unwrap() error { return e.Err }
