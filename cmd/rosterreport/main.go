package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/locvowork/employee_roster/internal/logger"
	"github.com/locvowork/employee_roster/internal/seed"
	"github.com/locvowork/employee_roster/internal/service"
)

func main() {
	seedFile := flag.String("seed", "roster.yaml", "YAML seed file with positions and employees")
	out := flag.String("out", "roster.xlsx", "Output spreadsheet path")
	sheet := flag.String("sheet", "Roster", "Sheet name of the report")
	logLevel := flag.String("log-level", "warn", "Log level: debug, info, warn, error")

	flag.Parse()

	ctx := context.Background()
	logger.InitLogging("", *logLevel)

	fmt.Println("📊 Roster Report")
	fmt.Println(strings.Repeat("=", 50))

	if err := run(ctx, *seedFile, *out, *sheet); err != nil {
		log.Fatalf("❌ %v", err)
	}

	fmt.Println("\n✅ Done!")
}

func run(ctx context.Context, seedFile, out, sheet string) error {
	doc, err := seed.LoadFile(seedFile)
	if err != nil {
		return err
	}

	svc := service.NewEmployeeService(service.NewEmployeeManager(), service.NewPositionCatalog(), 1)
	if err := seed.Apply(ctx, svc, doc); err != nil {
		return err
	}

	if err := writeReport(ctx, svc, out, sheet); err != nil {
		return err
	}

	count, total := svc.Totals(ctx)
	fmt.Printf("👥 Employees: %d\n", count)
	fmt.Printf("💰 Total salary: %.2f\n", total)
	fmt.Printf("📁 Written to %s\n", out)
	return nil
}

// writeReport leaves no file behind when the export or the final flush fails.
func writeReport(ctx context.Context, svc *service.EmployeeService, out, sheet string) (err error) {
	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("create report: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close report: %w", cerr)
		}
		if err != nil {
			os.Remove(out)
		}
	}()

	return svc.ExportRoster(ctx, f, sheet)
}
