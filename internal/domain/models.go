package domain

import "fmt"

// Position represents a job grade with an inclusive salary band.
type Position struct {
	ID        string  `json:"id" yaml:"id"`
	Name      string  `json:"name" yaml:"name"`
	MinSalary float64 `json:"min_salary" yaml:"min_salary"`
	MaxSalary float64 `json:"max_salary" yaml:"max_salary"`
}

// NewPosition validates the band and returns a new Position.
func NewPosition(id, name string, minSalary, maxSalary float64) (*Position, error) {
	if minSalary > maxSalary {
		return nil, fmt.Errorf("%w: min %.2f is greater than max %.2f", ErrInvalidBand, minSalary, maxSalary)
	}
	return &Position{
		ID:        id,
		Name:      name,
		MinSalary: minSalary,
		MaxSalary: maxSalary,
	}, nil
}

// Employee represents a person holding a position.
// The salary band is enforced by the manager, not by Employee itself.
type Employee struct {
	ID       string
	Name     string
	Position *Position
	Salary   float64
}

// NewEmployee creates an unmanaged employee.
func NewEmployee(id, name string, position *Position, salary float64) *Employee {
	return &Employee{
		ID:       id,
		Name:     name,
		Position: position,
		Salary:   salary,
	}
}

// EmployeeView is a detached copy of a managed employee, safe to hand to other goroutines.
type EmployeeView struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Position Position `json:"position"`
	Salary   float64  `json:"salary"`
}

// View copies the employee into an EmployeeView.
func (e *Employee) View() EmployeeView {
	v := EmployeeView{
		ID:     e.ID,
		Name:   e.Name,
		Salary: e.Salary,
	}
	if e.Position != nil {
		v.Position = *e.Position
	}
	return v
}

// ImportFailure describes a row rejected during a bulk import.
type ImportFailure struct {
	Line  int    `json:"line"`
	ID    string `json:"id,omitempty"`
	Error string `json:"error"`
}

// ImportReport is the outcome of a bulk import.
type ImportReport struct {
	Accepted []string        `json:"accepted"`
	Failed   []ImportFailure `json:"failed"`
}
