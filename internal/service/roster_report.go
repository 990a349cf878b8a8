package service

import (
	"github.com/locvowork/employee_roster/internal/domain"
	"github.com/locvowork/employee_roster/pkg/simpleexcel"
)

// numFmtAmount is excelize's built-in "#,##0.00".
const numFmtAmount = 4

type totalRow struct {
	Label string
	Count int
	Total float64
}

// BuildRosterReport lays out one row per employee followed by a totals row.
func BuildRosterReport(sheetName string, views []domain.EmployeeView) *simpleexcel.DataExporter {
	if sheetName == "" {
		sheetName = "Roster"
	}

	var total float64
	for _, v := range views {
		total += v.Salary
	}

	return simpleexcel.NewDataExporter().
		AddSheet(sheetName).
		AddSection(&simpleexcel.SectionConfig{
			ID:         "employees",
			Title:      "Employee Roster",
			ShowHeader: true,
			Data:       views,
			Columns: []simpleexcel.ColumnConfig{
				{FieldName: "ID", Header: "ID", Width: 38},
				{FieldName: "Name", Header: "Name", Width: 25},
				{FieldName: "Position.Name", Header: "Position", Width: 22},
				{FieldName: "Position.MinSalary", Header: "Band Min", Width: 14, NumFmt: numFmtAmount},
				{FieldName: "Position.MaxSalary", Header: "Band Max", Width: 14, NumFmt: numFmtAmount},
				{FieldName: "Salary", Header: "Salary", Width: 14, NumFmt: numFmtAmount},
			},
		}).
		AddSection(&simpleexcel.SectionConfig{
			ID:         "totals",
			ShowHeader: true,
			Data:       []totalRow{{Label: "Total", Count: len(views), Total: total}},
			Columns: []simpleexcel.ColumnConfig{
				{FieldName: "Label", Header: "Summary"},
				{FieldName: "Count", Header: "Employees"},
				{FieldName: "Total", Header: "Total Salary", NumFmt: numFmtAmount},
			},
		}).
		Build()
}
