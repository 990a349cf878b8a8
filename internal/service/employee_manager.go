package service

import (
	"fmt"
	"sync"

	"github.com/locvowork/employee_roster/internal/domain"
)

// EmployeeManager owns the managed roster and validates every mutation
// before it commits. Employees are identified by ID.
type EmployeeManager struct {
	mu        sync.RWMutex
	employees []*domain.Employee
	index     map[string]int
}

// NewEmployeeManager creates an empty roster.
func NewEmployeeManager() *EmployeeManager {
	return &EmployeeManager{
		employees: []*domain.Employee{},
		index:     make(map[string]int),
	}
}

// AddEmployee appends e to the roster. The manager keeps the caller's pointer.
func (m *EmployeeManager) AddEmployee(e *domain.Employee) error {
	if e == nil {
		return &domain.RosterError{Kind: domain.ErrInvalidInput, Msg: "Employee cannot be nil"}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.index[e.ID]; ok {
		return &domain.RosterError{
			Kind:       domain.ErrDuplicateEmployee,
			EmployeeID: e.ID,
			Msg:        fmt.Sprintf("Duplicate employee: %s", e.ID),
		}
	}
	if !m.IsSalaryValidForPosition(e.Position, e.Salary) {
		return &domain.RosterError{
			Kind:       domain.ErrInvalidSalary,
			EmployeeID: e.ID,
			Msg:        "Invalid salary for position" + bandDetail(e.Position, e.Salary),
		}
	}

	m.index[e.ID] = len(m.employees)
	m.employees = append(m.employees, e)
	return nil
}

// RemoveEmployee removes the managed employee with e's ID, keeping the order of the rest.
func (m *EmployeeManager) RemoveEmployee(e *domain.Employee) error {
	if e == nil {
		return domain.NewEmployeeNotFoundError("")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	i, ok := m.index[e.ID]
	if !ok {
		return domain.NewEmployeeNotFoundError(e.ID)
	}

	copy(m.employees[i:], m.employees[i+1:])
	m.employees[len(m.employees)-1] = nil
	m.employees = m.employees[:len(m.employees)-1]

	delete(m.index, e.ID)
	for j := i; j < len(m.employees); j++ {
		m.index[m.employees[j].ID] = j
	}
	return nil
}

// CalculateTotalSalary sums the salaries of all managed employees.
func (m *EmployeeManager) CalculateTotalSalary() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var total float64
	for _, e := range m.employees {
		total += e.Salary
	}
	return total
}

// IsSalaryValidForPosition reports whether salary lies within p's band, bounds included.
func (m *EmployeeManager) IsSalaryValidForPosition(p *domain.Position, salary float64) bool {
	if p == nil {
		return false
	}
	return salary >= p.MinSalary && salary <= p.MaxSalary
}

// UpdateEmployeeSalary sets the salary of a managed employee after checking it
// against the employee's current position.
func (m *EmployeeManager) UpdateEmployeeSalary(e *domain.Employee, newSalary float64) error {
	if e == nil {
		return domain.NewEmployeeNotFoundError("")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	managed, err := m.lookup(e.ID)
	if err != nil {
		return err
	}
	if !m.IsSalaryValidForPosition(managed.Position, newSalary) {
		return &domain.RosterError{
			Kind:       domain.ErrInvalidSalary,
			EmployeeID: e.ID,
			Msg:        "Salary is not within the range for the position" + bandDetail(managed.Position, newSalary),
		}
	}

	managed.Salary = newSalary
	return nil
}

// UpdateEmployeePosition moves a managed employee to newPosition. The current
// salary must already fit the new band; salary changes are a separate step.
func (m *EmployeeManager) UpdateEmployeePosition(e *domain.Employee, newPosition *domain.Position) error {
	if e == nil {
		return domain.NewEmployeeNotFoundError("")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	managed, err := m.lookup(e.ID)
	if err != nil {
		return err
	}
	if !m.IsSalaryValidForPosition(newPosition, managed.Salary) {
		return &domain.RosterError{
			Kind:       domain.ErrInvalidSalary,
			EmployeeID: e.ID,
			Msg:        "Current salary is not within the range for the new position" + bandDetail(newPosition, managed.Salary),
		}
	}

	managed.Position = newPosition
	return nil
}

// GetEmployees returns the managed employees in insertion order. The slice is
// fresh, the pointers are not: writing through them bypasses validation.
func (m *EmployeeManager) GetEmployees() []*domain.Employee {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*domain.Employee, len(m.employees))
	copy(out, m.employees)
	return out
}

// GetEmployee returns the managed employee with the given ID.
func (m *EmployeeManager) GetEmployee(id string) (*domain.Employee, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.lookup(id)
}

// Count returns the number of managed employees.
func (m *EmployeeManager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.employees)
}

// Snapshot copies the roster out under the read lock.
func (m *EmployeeManager) Snapshot() []domain.EmployeeView {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]domain.EmployeeView, 0, len(m.employees))
	for _, e := range m.employees {
		out = append(out, e.View())
	}
	return out
}

// lookup expects m.mu to be held.
func (m *EmployeeManager) lookup(id string) (*domain.Employee, error) {
	i, ok := m.index[id]
	if !ok {
		return nil, domain.NewEmployeeNotFoundError(id)
	}
	return m.employees[i], nil
}

func bandDetail(p *domain.Position, salary float64) string {
	if p == nil {
		return ": employee has no position"
	}
	return fmt.Sprintf(" %s: %.2f is outside [%.2f, %.2f]", p.Name, salary, p.MinSalary, p.MaxSalary)
}
