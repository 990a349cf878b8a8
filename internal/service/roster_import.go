package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/locvowork/employee_roster/internal/domain"
	"github.com/locvowork/employee_roster/internal/logger"
	"github.com/locvowork/employee_roster/pkg/dataflow"
)

type csvRecord struct {
	line   int
	fields []string
}

type parsedRow struct {
	line int
	req  HireRequest
	err  error
}

// ImportCSV hires one employee per row of id,name,position_id,salary. A header
// row starting with "id" is skipped. Rows are parsed concurrently and hired in
// input order; a rejected row is reported and the import continues.
func (s *EmployeeService) ImportCSV(ctx context.Context, r io.Reader) (*domain.ImportReport, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var records []csvRecord
	for line := 1; ; line++ {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		if line == 1 && len(fields) > 0 && strings.EqualFold(strings.TrimSpace(fields[0]), "id") {
			continue
		}
		records = append(records, csvRecord{line: line, fields: fields})
	}

	parsed := dataflow.Map(ctx, dataflow.From(ctx, records...), func(rec csvRecord) (parsedRow, error) {
		req, err := parseHireRecord(rec.fields)
		return parsedRow{line: rec.line, req: req, err: err}, nil
	}, dataflow.WithWorkers(s.importWorkers), dataflow.WithBufferSize(len(records)))

	rows := make([]parsedRow, 0, len(records))
	if err := dataflow.ForEach(ctx, parsed, func(row parsedRow) error {
		rows = append(rows, row)
		return nil
	}); err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].line < rows[j].line })

	report := &domain.ImportReport{
		Accepted: []string{},
		Failed:   []domain.ImportFailure{},
	}
	for _, row := range rows {
		if row.err != nil {
			report.Failed = append(report.Failed, domain.ImportFailure{Line: row.line, ID: row.req.ID, Error: row.err.Error()})
			continue
		}
		view, err := s.Hire(ctx, row.req)
		if err != nil {
			report.Failed = append(report.Failed, domain.ImportFailure{Line: row.line, ID: row.req.ID, Error: err.Error()})
			continue
		}
		report.Accepted = append(report.Accepted, view.ID)
	}

	logger.InfoLog(ctx, "Imported %d employees, %d rows rejected", len(report.Accepted), len(report.Failed))
	return report, nil
}

func parseHireRecord(fields []string) (HireRequest, error) {
	if len(fields) != 4 {
		return HireRequest{}, fmt.Errorf("expected 4 fields, got %d", len(fields))
	}
	req := HireRequest{
		ID:         strings.TrimSpace(fields[0]),
		Name:       strings.TrimSpace(fields[1]),
		PositionID: strings.TrimSpace(fields[2]),
	}
	salary, err := strconv.ParseFloat(strings.TrimSpace(fields[3]), 64)
	if err != nil {
		return req, fmt.Errorf("invalid salary %q", fields[3])
	}
	req.Salary = salary
	return req, nil
}
