package eval

import (
	"errors"
	"fmt"
)

// ErrEmptyInput is returned when the input holds no statements.
var ErrEmptyInput = errors.New("no statements to evaluate")

// EvaluationError reports the first statement that could not be evaluated.
// The whole table computation is abandoned when one is returned.
type EvaluationError struct {
	Statement  string // Statement as entered
	Compiled   string // Canonical expression
	Expression string // Canonical expression with the row's values substituted
	Row        int    // Index of the assignment row being evaluated
	Err        error  // Underlying syntax or binding error
}

func (e *EvaluationError) Error() string {
	return fmt.Sprintf("cannot evaluate %q: %v", e.Expression, e.Err)
}

// Unwrap returns the underlying error.
func (e *EvaluationError) Unwrap() error {
	return e.Err
}

// Message returns a human-readable description without the expression text.
func (e *EvaluationError) Message() string {
	return fmt.Sprintf("statement %q is not a valid expression: %v", e.Statement, e.Err)
}
