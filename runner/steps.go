package runner

import (
	"fmt"
	"io"

	"basics/arith"
	"basics/table"
)

// DefaultSteps returns the six demo steps in the order they must run:
//
//	greeting  Hello, world!
//	sequence  1 through 5, one per line
//	lookup    the value bound to "key1"
//	add       add(10, 20)
//	count     0 through 4, one per line
//	square    square(5)
func DefaultSteps() []Step {
	return []Step{
		{Name: "greeting", Fn: greet},
		{Name: "sequence", Fn: printSequence},
		{Name: "lookup", Fn: printLookup},
		{Name: "add", Fn: printSum},
		{Name: "count", Fn: printCount},
		{Name: "square", Fn: printSquare},
	}
}

func greet(w io.Writer) error {
	_, err := fmt.Fprintln(w, "Hello, world!")
	return err
}

func printSequence(w io.Writer) error {
	numbers := []int{1, 2, 3, 4, 5}
	for _, n := range numbers {
		if _, err := fmt.Fprintln(w, n); err != nil {
			return err
		}
	}
	return nil
}

func printLookup(w io.Writer) error {
	values := map[string]int{"key1": 10, "key2": 20}
	_, err := fmt.Fprintln(w, table.MustGet(values, "key1"))
	return err
}

func printSum(w io.Writer) error {
	_, err := fmt.Fprintln(w, arith.Add(10, 20))
	return err
}

func printCount(w io.Writer) error {
	for i := 0; i < 5; i++ {
		if _, err := fmt.Fprintln(w, i); err != nil {
			return err
		}
	}
	return nil
}

func printSquare(w io.Writer) error {
	_, err := fmt.Fprintln(w, arith.Square(5))
	return err
}
