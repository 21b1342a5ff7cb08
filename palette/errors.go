package palette

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is checks.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrInfeasible      = errors.New("infeasible")
	ErrTimeout         = errors.New("timeout")
)

// ArgumentError reports a parameter outside its allowed range.
type ArgumentError struct {
	Field   string
	Message string
}

func (e *ArgumentError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
	}
	return e.Message
}

func (e *ArgumentError) Unwrap() error {
	return ErrInvalidArgument
}

// InfeasibleError is returned when too many candidates in a row were rejected.
type InfeasibleError struct {
	Size     int // colors accepted so far
	Target   int
	Attempts int
}

func (e *InfeasibleError) Error() string {
	return fmt.Sprintf("no candidate accepted after %d attempts (%d of %d colors)", e.Attempts, e.Size, e.Target)
}

func (e *InfeasibleError) Unwrap() error {
	return ErrInfeasible
}

func InvalidArgument(field, message string) error {
	return &ArgumentError{Field: field, Message: message}
}

// IsInvalidArgument checks if an error is a parameter validation error.
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}

// IsInfeasible checks if an error reports an exhausted attempt budget.
func IsInfeasible(err error) bool {
	return errors.Is(err, ErrInfeasible)
}

// IsTimeout checks if generation was stopped by its context.
func IsTimeout(err error) bool {
	return errors.Is(err, ErrTimeout)
}
