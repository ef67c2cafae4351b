package main

import (
	"io"
	"log"
	"os"

	"basics/runner"
)

// Prints a greeting, the sequence 1..5, a map lookup, add(10, 20), a count
// from 0 to 4 and square(5), one value per line.
//
// Run:
//
//	go run .
func main() {
	logger := log.New(os.Stderr, "", log.LstdFlags|log.Lmicroseconds)

	if err := run(os.Stdout, logger); err != nil {
		logger.Printf("[main] %v", err)
		os.Exit(1)
	}
}

func run(out io.Writer, logger *log.Logger) error {
	r, err := runner.New(runner.Config{Out: out, Logger: logger})
	if err != nil {
		return err
	}
	return r.Run()
}
