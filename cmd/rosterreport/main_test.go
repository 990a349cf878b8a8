package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestRun_WritesReport(t *testing.T) {
	dir := t.TempDir()
	seedFile := filepath.Join(dir, "roster.yaml")
	out := filepath.Join(dir, "roster.xlsx")
	require.NoError(t, os.WriteFile(seedFile, []byte(`
positions:
  - {id: jr, name: Junior Developer, min_salary: 30000, max_salary: 50000}
employees:
  - {id: "1", name: John Doe, position_id: jr, salary: 40000}
  - {id: "2", name: Ann Lee, position_id: jr, salary: 45000}
`), 0o600))

	require.NoError(t, run(context.Background(), seedFile, out, "Team"))

	f, err := excelize.OpenFile(out)
	require.NoError(t, err)
	defer f.Close()

	total, err := f.GetCellValue("Team", "C7", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	assert.Equal(t, "85000", total)
}

func TestRun_FailedExportLeavesNoFile(t *testing.T) {
	dir := t.TempDir()
	seedFile := filepath.Join(dir, "roster.yaml")
	out := filepath.Join(dir, "roster.xlsx")
	require.NoError(t, os.WriteFile(seedFile, []byte(`
positions:
  - {id: jr, name: Junior Developer, min_salary: 30000, max_salary: 50000}
`), 0o600))

	err := run(context.Background(), seedFile, out, "Bad:Sheet")
	require.Error(t, err)

	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr), "partial report should be removed")
}

func TestRun_MissingSeed(t *testing.T) {
	err := run(context.Background(), filepath.Join(t.TempDir(), "none.yaml"), filepath.Join(t.TempDir(), "x.xlsx"), "Roster")
	assert.Error(t, err)
}
