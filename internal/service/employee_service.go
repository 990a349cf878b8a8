package service

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/locvowork/employee_roster/internal/domain"
	"github.com/locvowork/employee_roster/internal/logger"
)

var _ domain.Roster = (*EmployeeManager)(nil)

// HireRequest describes a new employee by position ID.
type HireRequest struct {
	ID         string  `json:"id" yaml:"id"`
	Name       string  `json:"name" yaml:"name"`
	PositionID string  `json:"position_id" yaml:"position_id"`
	Salary     float64 `json:"salary" yaml:"salary"`
}

// EmployeeService resolves IDs for callers outside the process boundary and
// delegates every roster mutation to the manager.
type EmployeeService struct {
	roster        domain.Roster
	positions     domain.PositionRegistry
	importWorkers int
}

// NewEmployeeService creates a new EmployeeService instance
func NewEmployeeService(roster domain.Roster, positions domain.PositionRegistry, importWorkers int) *EmployeeService {
	if importWorkers <= 0 {
		importWorkers = 1
	}
	return &EmployeeService{
		roster:        roster,
		positions:     positions,
		importWorkers: importWorkers,
	}
}

// ==================== Position Operations ====================

// CreatePosition validates and registers a position.
func (s *EmployeeService) CreatePosition(ctx context.Context, p domain.Position) (*domain.Position, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.Name == "" {
		return nil, fmt.Errorf("position name cannot be empty: %w", domain.ErrInvalidInput)
	}
	pos, err := domain.NewPosition(p.ID, p.Name, p.MinSalary, p.MaxSalary)
	if err != nil {
		return nil, err
	}
	if err := s.positions.Add(pos); err != nil {
		logger.WarnLog(ctx, "Rejected position %s: %v", p.ID, err)
		return nil, err
	}
	logger.InfoLog(ctx, "Registered position %s (%s) band [%.2f, %.2f]", pos.ID, pos.Name, pos.MinSalary, pos.MaxSalary)
	return pos, nil
}

func (s *EmployeeService) GetPosition(ctx context.Context, id string) (*domain.Position, error) {
	return s.positions.Get(id)
}

func (s *EmployeeService) ListPositions(ctx context.Context) []domain.Position {
	return s.positions.List()
}

// ValidateSalary reports whether salary fits the band of the given position.
func (s *EmployeeService) ValidateSalary(ctx context.Context, positionID string, salary float64) (bool, error) {
	pos, err := s.positions.Get(positionID)
	if err != nil {
		return false, err
	}
	return s.roster.IsSalaryValidForPosition(pos, salary), nil
}

// ==================== Employee Operations ====================

// Hire creates an employee and adds it to the roster. An empty ID is generated.
func (s *EmployeeService) Hire(ctx context.Context, req HireRequest) (domain.EmployeeView, error) {
	if req.Name == "" {
		return domain.EmployeeView{}, fmt.Errorf("employee name cannot be empty: %w", domain.ErrInvalidInput)
	}
	if req.PositionID == "" {
		return domain.EmployeeView{}, fmt.Errorf("position id cannot be empty: %w", domain.ErrInvalidInput)
	}
	pos, err := s.positions.Get(req.PositionID)
	if err != nil {
		return domain.EmployeeView{}, err
	}
	if req.ID == "" {
		req.ID = uuid.NewString()
	}

	emp := domain.NewEmployee(req.ID, req.Name, pos, req.Salary)
	if err := s.roster.AddEmployee(emp); err != nil {
		logger.WarnLog(ctx, "Rejected hire of %s: %v", req.ID, err)
		return domain.EmployeeView{}, err
	}
	view, err := s.view(req.ID)
	if err != nil {
		return domain.EmployeeView{}, err
	}
	logger.InfoLog(ctx, "Hired %s (%s) as %s at %.2f", view.ID, view.Name, view.Position.Name, view.Salary)
	return view, nil
}

// Dismiss removes the employee with the given ID.
func (s *EmployeeService) Dismiss(ctx context.Context, id string) error {
	if err := s.roster.RemoveEmployee(&domain.Employee{ID: id}); err != nil {
		logger.WarnLog(ctx, "Rejected dismissal of %s: %v", id, err)
		return err
	}
	logger.InfoLog(ctx, "Dismissed %s", id)
	return nil
}

// ChangeSalary updates the salary of a managed employee.
func (s *EmployeeService) ChangeSalary(ctx context.Context, id string, salary float64) (domain.EmployeeView, error) {
	if err := s.roster.UpdateEmployeeSalary(&domain.Employee{ID: id}, salary); err != nil {
		logger.WarnLog(ctx, "Rejected salary change for %s: %v", id, err)
		return domain.EmployeeView{}, err
	}
	logger.InfoLog(ctx, "Salary of %s set to %.2f", id, salary)
	return s.view(id)
}

// ChangePosition moves a managed employee to another registered position.
func (s *EmployeeService) ChangePosition(ctx context.Context, id, positionID string) (domain.EmployeeView, error) {
	if positionID == "" {
		return domain.EmployeeView{}, fmt.Errorf("position id cannot be empty: %w", domain.ErrInvalidInput)
	}
	pos, err := s.positions.Get(positionID)
	if err != nil {
		return domain.EmployeeView{}, err
	}
	if err := s.roster.UpdateEmployeePosition(&domain.Employee{ID: id}, pos); err != nil {
		logger.WarnLog(ctx, "Rejected position change for %s: %v", id, err)
		return domain.EmployeeView{}, err
	}
	logger.InfoLog(ctx, "Position of %s set to %s", id, pos.Name)
	return s.view(id)
}

func (s *EmployeeService) Get(ctx context.Context, id string) (domain.EmployeeView, error) {
	return s.view(id)
}

func (s *EmployeeService) List(ctx context.Context) []domain.EmployeeView {
	return s.roster.Snapshot()
}

func (s *EmployeeService) TotalSalary(ctx context.Context) float64 {
	return s.roster.CalculateTotalSalary()
}

// Totals returns the head count and salary sum of one consistent snapshot.
func (s *EmployeeService) Totals(ctx context.Context) (int, float64) {
	views := s.roster.Snapshot()
	var total float64
	for _, v := range views {
		total += v.Salary
	}
	return len(views), total
}

// view copies a managed employee out of the roster's snapshot so callers never
// read a pointer another goroutine may be writing through the manager.
func (s *EmployeeService) view(id string) (domain.EmployeeView, error) {
	for _, v := range s.roster.Snapshot() {
		if v.ID == id {
			return v, nil
		}
	}
	return domain.EmployeeView{}, domain.NewEmployeeNotFoundError(id)
}

// ExportRoster writes the roster spreadsheet to w.
func (s *EmployeeService) ExportRoster(ctx context.Context, w io.Writer, sheetName string) error {
	views := s.roster.Snapshot()
	if err := BuildRosterReport(sheetName, views).ToWriter(w); err != nil {
		logger.ErrorLog(ctx, "Failed to export roster: %v", err)
		return fmt.Errorf("export roster: %w", err)
	}
	logger.InfoLog(ctx, "Exported roster with %d employees", len(views))
	return nil
}
