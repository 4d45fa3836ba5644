package filter

import "fmt"

// CompilationError indicates a filter expression could not be compiled.
type CompilationError struct {
	Expression string
	Reason     string
	Err        error
}

func (e *CompilationError) Error() string {
	return fmt.Sprintf("compilation error in %q: %s", e.Expression, e.Reason)
}

func (e *CompilationError) Unwrap() error {
	return e.Err
}
