package domain

// Roster is the validated employee collection the service layer drives.
type Roster interface {
	AddEmployee(e *Employee) error
	RemoveEmployee(e *Employee) error
	CalculateTotalSalary() float64
	IsSalaryValidForPosition(p *Position, salary float64) bool
	UpdateEmployeeSalary(e *Employee, newSalary float64) error
	UpdateEmployeePosition(e *Employee, newPosition *Position) error
	GetEmployees() []*Employee
	GetEmployee(id string) (*Employee, error)
	Snapshot() []EmployeeView
}

// PositionRegistry resolves positions by ID.
type PositionRegistry interface {
	Add(p *Position) error
	Get(id string) (*Position, error)
	List() []Position
}
