package calculator

import "fmt"

// InvalidInputError reports a process input that violates a bound of the
// input form or a precondition of the selected process formula.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input %s: %s", e.Field, e.Reason)
}
