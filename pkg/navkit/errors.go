package navkit

import (
	"errors"
	"fmt"
)

// ErrCancelled indicates the page was closed without navigating (the window
// was closed or the application asked to quit). This is a normal flow
// control error, not an infrastructure failure.
var ErrCancelled = errors.New("page cancelled")

// InfrastructureError represents a framework-level error that indicates
// something is wrong with navkit itself (rendering failed, SDL could not
// start, font missing, etc.). These errors are typically fatal.
type InfrastructureError struct {
	Op  string // Operation that failed (e.g., "init", "load_font")
	Err error  // Underlying error
}

func (e *InfrastructureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("navkit: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("navkit: %s", e.Op)
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}

// NewInfrastructureError creates a new infrastructure error.
func NewInfrastructureError(op string, err error) *InfrastructureError {
	return &InfrastructureError{Op: op, Err: err}
}

// IsInfrastructureError checks if an error is an infrastructure error.
func IsInfrastructureError(err error) bool {
	var infraErr *InfrastructureError
	return errors.As(err, &infraErr)
}

// IsCancelled checks if an error indicates the page was cancelled.
func IsCancelled(err error) bool {
	return errors.Is(err, ErrCancelled)
}
