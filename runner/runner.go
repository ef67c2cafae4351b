// Package runner executes the demo steps in order against a single writer,
// flushing after each one so a step's output is complete before the next
// begins.
package runner

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
)

var (
	// ErrInvalidArgument is returned by New for an unusable Config.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrLogicFault wraps a panic raised inside a step, e.g. a lookup of a
	// key the step assumed was present.
	ErrLogicFault = errors.New("logic fault")
)

// Step is one named unit of output.
type Step struct {
	Name string
	Fn   func(w io.Writer) error
}

// StepError reports which step failed. Index is 1-based.
type StepError struct {
	Index int
	Name  string
	Err   error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (%s): %v", e.Index, e.Name, e.Err)
}

// Unwrap exposes the underlying error to errors.Is and errors.As.
func (e *StepError) Unwrap() error { return e.Err }

// Config holds runner construction parameters.
type Config struct {
	// Out receives the program output. If nil, os.Stdout is used.
	Out io.Writer

	// Logger receives failure reports. If nil, they are discarded.
	Logger *log.Logger

	// Steps overrides the step list. If nil, DefaultSteps() is used.
	Steps []Step
}

func (c *Config) withDefaults() Config {
	out := *c
	if out.Out == nil {
		out.Out = os.Stdout
	}
	if out.Logger == nil {
		out.Logger = log.New(io.Discard, "", 0)
	}
	if out.Steps == nil {
		out.Steps = DefaultSteps()
	}
	return out
}

// Runner runs a fixed list of steps. It is not safe for concurrent use.
type Runner struct {
	cfg Config
}

// New validates cfg and returns a Runner.
func New(cfg Config) (*Runner, error) {
	if cfg.Steps != nil && len(cfg.Steps) == 0 {
		return nil, fmt.Errorf("runner: empty step list: %w", ErrInvalidArgument)
	}
	for i, s := range cfg.Steps {
		if s.Fn == nil {
			return nil, fmt.Errorf("runner: step %d (%s) has no function: %w", i+1, s.Name, ErrInvalidArgument)
		}
	}
	return &Runner{cfg: cfg.withDefaults()}, nil
}

// Run executes every step in order and stops at the first failure, which is
// returned as a *StepError.
func (r *Runner) Run() error {
	w := bufio.NewWriter(r.cfg.Out)
	for i, s := range r.cfg.Steps {
		if err := runStep(w, i+1, s); err != nil {
			r.cfg.Logger.Printf("[runner] %v", err)
			return err
		}
	}
	return nil
}

func runStep(w *bufio.Writer, index int, s Step) (err error) {
	defer func() {
		p := recover()
		if p == nil {
			return
		}
		// Panics cross no further than here.
		if perr, ok := p.(error); ok {
			err = &StepError{Index: index, Name: s.Name, Err: fmt.Errorf("%w: %w", ErrLogicFault, perr)}
		} else {
			err = &StepError{Index: index, Name: s.Name, Err: fmt.Errorf("%w: %v", ErrLogicFault, p)}
		}
	}()

	if err := s.Fn(w); err != nil {
		return &StepError{Index: index, Name: s.Name, Err: err}
	}
	if err := w.Flush(); err != nil {
		return &StepError{Index: index, Name: s.Name, Err: err}
	}
	return nil
}
