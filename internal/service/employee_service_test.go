package service

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/locvowork/employee_roster/internal/domain"
)

func newTestService(t *testing.T) *EmployeeService {
	t.Helper()
	svc := NewEmployeeService(NewEmployeeManager(), NewPositionCatalog(), 2)
	ctx := context.Background()
	_, err := svc.CreatePosition(ctx, domain.Position{ID: "jr", Name: "Junior Developer", MinSalary: 30000, MaxSalary: 50000})
	require.NoError(t, err)
	_, err = svc.CreatePosition(ctx, domain.Position{ID: "sr", Name: "Senior Developer", MinSalary: 60000, MaxSalary: 90000})
	require.NoError(t, err)
	return svc
}

func TestEmployeeService_Lifecycle(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	hired, err := svc.Hire(ctx, HireRequest{ID: "1", Name: "John Doe", PositionID: "jr", Salary: 40000})
	require.NoError(t, err)
	assert.Equal(t, "Junior Developer", hired.Position.Name)

	_, err = svc.ChangeSalary(ctx, "1", 60000)
	assert.ErrorIs(t, err, domain.ErrInvalidSalary)

	_, err = svc.ChangePosition(ctx, "1", "sr")
	assert.ErrorIs(t, err, domain.ErrInvalidSalary)

	raised, err := svc.ChangeSalary(ctx, "1", 50000)
	require.NoError(t, err)
	assert.Equal(t, 50000.0, raised.Salary)

	_, err = svc.ChangePosition(ctx, "1", "nope")
	assert.ErrorIs(t, err, domain.ErrPositionNotFound)

	assert.Equal(t, 50000.0, svc.TotalSalary(ctx))
	assert.Len(t, svc.List(ctx), 1)

	require.NoError(t, svc.Dismiss(ctx, "1"))
	assert.ErrorIs(t, svc.Dismiss(ctx, "1"), domain.ErrEmployeeNotFound)

	_, err = svc.Get(ctx, "1")
	assert.ErrorIs(t, err, domain.ErrEmployeeNotFound)
}

func TestEmployeeService_HireGeneratesID(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	view, err := svc.Hire(ctx, HireRequest{Name: "Anon", PositionID: "sr", Salary: 65000})
	require.NoError(t, err)
	assert.Len(t, view.ID, 36)

	_, err = svc.Hire(ctx, HireRequest{PositionID: "sr", Salary: 65000})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.Hire(ctx, HireRequest{Name: "Nowhere", Salary: 65000})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.ChangePosition(ctx, view.ID, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.Hire(ctx, HireRequest{Name: "Lost", PositionID: "zz", Salary: 1})
	assert.ErrorIs(t, err, domain.ErrPositionNotFound)
}

func TestEmployeeService_Totals(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	count, total := svc.Totals(ctx)
	assert.Equal(t, 0, count)
	assert.Equal(t, 0.0, total)

	_, err := svc.Hire(ctx, HireRequest{ID: "1", Name: "John Doe", PositionID: "jr", Salary: 40000})
	require.NoError(t, err)
	_, err = svc.Hire(ctx, HireRequest{ID: "2", Name: "Jane Smith", PositionID: "sr", Salary: 70000})
	require.NoError(t, err)

	count, total = svc.Totals(ctx)
	assert.Equal(t, 2, count)
	assert.Equal(t, 110000.0, total)
	assert.Equal(t, svc.TotalSalary(ctx), total)
}

func TestEmployeeService_ValidateSalary(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	ok, err := svc.ValidateSalary(ctx, "jr", 50000)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.ValidateSalary(ctx, "sr", 50000)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = svc.ValidateSalary(ctx, "zz", 1)
	assert.ErrorIs(t, err, domain.ErrPositionNotFound)
}

func TestEmployeeService_CreatePositionErrors(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	_, err := svc.CreatePosition(ctx, domain.Position{ID: "jr", Name: "Dup", MinSalary: 1, MaxSalary: 2})
	assert.ErrorIs(t, err, domain.ErrDuplicatePosition)

	_, err = svc.CreatePosition(ctx, domain.Position{Name: "Inverted", MinSalary: 2, MaxSalary: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidBand)

	_, err = svc.CreatePosition(ctx, domain.Position{MinSalary: 1, MaxSalary: 2})
	assert.Error(t, err)

	assert.Len(t, svc.ListPositions(ctx), 2)
}

func TestEmployeeService_ImportCSV(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	input := strings.Join([]string{
		"id,name,position_id,salary",
		"1,John Doe,jr,40000",
		"2,Jane Smith,sr,70000",
		"3,Too Rich,jr,60000",
		"1,Duplicate,jr,35000",
		"4,Bad Salary,jr,lots",
		"5,Short Row",
		"6,Ghost,zz,1",
		"7,Last,sr,90000",
	}, "\n")

	report, err := svc.ImportCSV(ctx, strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, []string{"1", "2", "7"}, report.Accepted)
	require.Len(t, report.Failed, 5)

	lines := make([]int, 0, len(report.Failed))
	for _, f := range report.Failed {
		lines = append(lines, f.Line)
	}
	assert.Equal(t, []int{4, 5, 6, 7, 8}, lines)
	assert.Contains(t, report.Failed[0].Error, "Invalid salary for position")
	assert.Contains(t, report.Failed[1].Error, "Duplicate employee")
	assert.Contains(t, report.Failed[2].Error, "invalid salary")
	assert.Contains(t, report.Failed[3].Error, "expected 4 fields")
	assert.Contains(t, report.Failed[4].Error, "position not found")

	ids := make([]string, 0)
	for _, v := range svc.List(ctx) {
		ids = append(ids, v.ID)
	}
	assert.Equal(t, []string{"1", "2", "7"}, ids)
	assert.Equal(t, 200000.0, svc.TotalSalary(ctx))
}

func TestEmployeeService_ImportCSVMalformed(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.ImportCSV(context.Background(), strings.NewReader("1,\"unterminated,jr,1\n"))
	assert.Error(t, err)
}

func TestEmployeeService_ExportRoster(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	_, err := svc.Hire(ctx, HireRequest{ID: "1", Name: "John Doe", PositionID: "jr", Salary: 40000})
	require.NoError(t, err)
	_, err = svc.Hire(ctx, HireRequest{ID: "2", Name: "Jane Smith", PositionID: "sr", Salary: 70000})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, svc.ExportRoster(ctx, &buf, "Team"))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Team", excelize.Options{RawCellValue: true})
	require.NoError(t, err)

	// title, header, two employees, blank, summary header, summary
	require.Len(t, rows, 7)
	assert.Equal(t, "Employee Roster", rows[0][0])
	assert.Equal(t, []string{"ID", "Name", "Position", "Band Min", "Band Max", "Salary"}, rows[1])
	assert.Equal(t, []string{"1", "John Doe", "Junior Developer", "30000", "50000", "40000"}, rows[2])
	assert.Equal(t, []string{"2", "Jane Smith", "Senior Developer", "60000", "90000", "70000"}, rows[3])
	assert.Empty(t, rows[4])
	assert.Equal(t, []string{"Total", "2", "110000"}, rows[6])
}
