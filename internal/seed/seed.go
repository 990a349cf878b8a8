// Package seed loads an initial roster from a YAML document. Entries go
// through the same validation as any other hire.
package seed

import (
	"context"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/locvowork/employee_roster/internal/domain"
	"github.com/locvowork/employee_roster/internal/logger"
	"github.com/locvowork/employee_roster/internal/service"
)

// Document is the seed file layout:
//
//	positions:
//	  - {id: jr, name: Junior Developer, min_salary: 30000, max_salary: 50000}
//	employees:
//	  - {id: "1", name: John Doe, position_id: jr, salary: 40000}
type Document struct {
	Positions []domain.Position     `yaml:"positions"`
	Employees []service.HireRequest `yaml:"employees"`
}

// Service is the subset of service.EmployeeService a seed needs.
type Service interface {
	CreatePosition(ctx context.Context, p domain.Position) (*domain.Position, error)
	Hire(ctx context.Context, req service.HireRequest) (domain.EmployeeView, error)
}

func Load(r io.Reader) (*Document, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decode seed: %w", err)
	}
	return &doc, nil
}

func LoadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open seed file: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Apply registers every position, then hires every employee, stopping at the first rejection.
func Apply(ctx context.Context, svc Service, doc *Document) error {
	for i, p := range doc.Positions {
		if _, err := svc.CreatePosition(ctx, p); err != nil {
			return fmt.Errorf("seed position #%d (%s): %w", i+1, p.ID, err)
		}
	}
	for i, req := range doc.Employees {
		if _, err := svc.Hire(ctx, req); err != nil {
			return fmt.Errorf("seed employee #%d (%s): %w", i+1, req.ID, err)
		}
	}
	logger.InfoLog(ctx, "Seeded %d positions and %d employees", len(doc.Positions), len(doc.Employees))
	return nil
}
