package domain

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateEmployee = errors.New("duplicate employee")
	ErrEmployeeNotFound  = errors.New("employee not found")
	ErrInvalidSalary     = errors.New("invalid salary")
	ErrInvalidInput      = errors.New("invalid input")

	ErrDuplicatePosition = errors.New("duplicate position")
	ErrPositionNotFound  = errors.New("position not found")
	ErrInvalidBand       = errors.New("min salary is greater than max salary")
)

// RosterError is a rejected roster mutation. Msg carries the call-site text
// callers match on; Kind is one of the sentinels above.
type RosterError struct {
	Kind       error
	EmployeeID string
	Msg        string
}

func (e *RosterError) Error() string {
	return e.Msg
}

func (e *RosterError) Unwrap() error {
	return e.Kind
}

// NewEmployeeNotFoundError is returned by every operation that targets an unmanaged employee.
func NewEmployeeNotFoundError(id string) error {
	return &RosterError{
		Kind:       ErrEmployeeNotFound,
		EmployeeID: id,
		Msg:        fmt.Sprintf("Employee not found: %s", id),
	}
}
