package service

import "fmt"

// ValidationError marks client input problems. Handlers answer these with
// 400 before any capability call has happened.
type ValidationError struct{ msg string }

func (e *ValidationError) Error() string { return e.msg }

func invalidf(format string, args ...any) error {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}
