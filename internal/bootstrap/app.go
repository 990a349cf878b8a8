package bootstrap

import (
	"context"
	"fmt"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/locvowork/employee_roster/internal/config"
	"github.com/locvowork/employee_roster/internal/handler"
	"github.com/locvowork/employee_roster/internal/logger"
	"github.com/locvowork/employee_roster/internal/seed"
	"github.com/locvowork/employee_roster/internal/service"
)

type App struct {
	Echo    *echo.Echo
	Manager *service.EmployeeManager
	Service *service.EmployeeService
}

func NewApp() *App {
	e := echo.New()
	e.HideBanner = true
	return &App{
		Echo: e,
	}
}

// Initialize loads configuration, builds the roster and registers the HTTP surface.
func (a *App) Initialize(ctx context.Context) error {
	if err := config.LoadEnvConfig(); err != nil {
		return fmt.Errorf("failed to load env config: %w", err)
	}

	logger.InitLogging(config.DefaultEnvConfig.LOG_FILE_PATH, config.DefaultEnvConfig.LOG_LEVEL)
	logger.InfoLog(ctx, "Environment variables loaded successfully")

	return a.Wire(ctx, config.DefaultEnvConfig.ROSTER_SEED_FILE, config.DefaultEnvConfig.REPORT_SHEET_NAME, config.DefaultEnvConfig.IMPORT_WORKERS)
}

// Wire builds the dependencies and routes without touching the environment.
func (a *App) Wire(ctx context.Context, seedFile, sheetName string, importWorkers int) error {
	a.Manager = service.NewEmployeeManager()
	a.Service = service.NewEmployeeService(a.Manager, service.NewPositionCatalog(), importWorkers)

	if seedFile != "" {
		doc, err := seed.LoadFile(seedFile)
		if err != nil {
			return fmt.Errorf("failed to load roster seed: %w", err)
		}
		if err := seed.Apply(ctx, a.Service, doc); err != nil {
			return fmt.Errorf("failed to apply roster seed: %w", err)
		}
	}

	empHandler := handler.NewEmployeeHandler(a.Service, sheetName)

	a.RegisterMiddlewares()
	a.RegisterRoutes(empHandler)
	return nil
}

func (a *App) RegisterMiddlewares() {
	a.Echo.Use(middleware.Logger())
	a.Echo.Use(middleware.Recover())
	a.Echo.Use(middleware.CORS())
}

func (a *App) RegisterRoutes(empHandler *handler.EmployeeHandler) {
	a.Echo.POST("/positions", empHandler.CreatePositionHandler)
	a.Echo.GET("/positions", empHandler.ListPositionsHandler)
	a.Echo.GET("/positions/:id", empHandler.GetPositionHandler)
	a.Echo.GET("/positions/:id/validate", empHandler.ValidateSalaryHandler)

	a.Echo.POST("/employees", empHandler.CreateHandler)
	a.Echo.GET("/employees", empHandler.ListHandler)
	a.Echo.GET("/employees/total-salary", empHandler.TotalSalaryHandler)
	a.Echo.POST("/employees/import", empHandler.ImportHandler)
	a.Echo.GET("/employees/:id", empHandler.GetHandler)
	a.Echo.DELETE("/employees/:id", empHandler.DeleteHandler)
	a.Echo.PUT("/employees/:id/salary", empHandler.UpdateSalaryHandler)
	a.Echo.PUT("/employees/:id/position", empHandler.UpdatePositionHandler)

	exportGroup := a.Echo.Group("/export")
	exportGroup.GET("/roster", empHandler.ExportRosterHandler)
}

func (a *App) Run() error {
	return a.Echo.Start(":" + config.DefaultEnvConfig.APP_PORT)
}

// Shutdown stops the HTTP server gracefully.
func (a *App) Shutdown(ctx context.Context) error {
	return a.Echo.Shutdown(ctx)
}
