package bootstrap

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const seedYAML = `
positions:
  - {id: jr, name: Junior Developer, min_salary: 30000, max_salary: 50000}
  - {id: sr, name: Senior Developer, min_salary: 60000, max_salary: 90000}
employees:
  - {id: "1", name: John Doe, position_id: jr, salary: 40000}
`

func newSeededApp(t *testing.T) *App {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(seedYAML), 0o600))

	app := NewApp()
	require.NoError(t, app.Wire(context.Background(), path, "Roster", 2))
	return app
}

func serve(app *App, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	app.Echo.ServeHTTP(rec, req)
	return rec
}

func TestApp_PromotionWorkflow(t *testing.T) {
	app := newSeededApp(t)

	rec := serve(app, http.MethodPut, "/employees/1/position", `{"position_id":"sr"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = serve(app, http.MethodPut, "/employees/1/salary", `{"salary":50000}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	// 50000 is still below the senior band, so promotion needs a second position
	rec = serve(app, http.MethodPost, "/positions", `{"id":"mid","name":"Mid Developer","min_salary":45000,"max_salary":65000}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = serve(app, http.MethodPut, "/employees/1/position", `{"position_id":"mid"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(app, http.MethodGet, "/employees/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Data struct {
			Position struct {
				Name string `json:"name"`
			} `json:"position"`
			Salary float64 `json:"salary"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Mid Developer", body.Data.Position.Name)
	assert.Equal(t, 50000.0, body.Data.Salary)

	emp, err := app.Manager.GetEmployee("1")
	require.NoError(t, err)
	assert.Equal(t, "mid", emp.Position.ID)
}

func TestApp_TotalSalaryRouteIsNotAnID(t *testing.T) {
	app := newSeededApp(t)

	rec := serve(app, http.MethodGet, "/employees/total-salary", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total_salary":40000`)

	rec = serve(app, http.MethodGet, "/employees", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "John Doe")
}

func TestApp_ExportRoster(t *testing.T) {
	app := newSeededApp(t)

	rec := serve(app, http.MethodGet, "/export/roster", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", rec.Header().Get(echo.HeaderContentType))
	assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), "roster.xlsx")

	f, err := excelize.OpenReader(rec.Body)
	require.NoError(t, err)
	defer f.Close()

	name, err := f.GetCellValue("Roster", "B3")
	require.NoError(t, err)
	assert.Equal(t, "John Doe", name)
}

func TestApp_WireRejectsBadSeed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	bad := "positions:\n  - {id: jr, name: Junior, min_salary: 1, max_salary: 2}\nemployees:\n  - {id: \"1\", name: X, position_id: jr, salary: 3}\n"
	require.NoError(t, os.WriteFile(path, []byte(bad), 0o600))

	err := NewApp().Wire(context.Background(), path, "Roster", 1)
	assert.ErrorContains(t, err, "failed to apply roster seed")

	err = NewApp().Wire(context.Background(), filepath.Join(t.TempDir(), "missing.yaml"), "Roster", 1)
	assert.ErrorContains(t, err, "failed to load roster seed")
}
