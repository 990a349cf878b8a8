package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/locvowork/employee_roster/internal/service"
	"github.com/locvowork/employee_roster/internal/service/serviceutils"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type EmployeeHandler struct {
	svc       *service.EmployeeService
	sheetName string
}

func NewEmployeeHandler(svc *service.EmployeeService, sheetName string) *EmployeeHandler {
	return &EmployeeHandler{svc: svc, sheetName: sheetName}
}

func (h *EmployeeHandler) CreateHandler(c echo.Context) error {
	var req CreateEmployeeRequest
	if err := c.Bind(&req); err != nil {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "Invalid request body", err)
	}

	emp, err := h.svc.Hire(c.Request().Context(), service.HireRequest{
		ID:         req.ID,
		Name:       req.Name,
		PositionID: req.PositionID,
		Salary:     req.Salary,
	})
	if err != nil {
		return serviceutils.ResponseError(c, statusFor(err), "Failed to create employee", err)
	}

	return serviceutils.ResponseSuccess(c, http.StatusCreated, "Employee created successfully", emp)
}

func (h *EmployeeHandler) GetHandler(c echo.Context) error {
	emp, err := h.svc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return serviceutils.ResponseError(c, statusFor(err), "Failed to get employee", err)
	}
	return serviceutils.ResponseSuccess(c, http.StatusOK, "Employee retrieved successfully", emp)
}

func (h *EmployeeHandler) ListHandler(c echo.Context) error {
	employees := h.svc.List(c.Request().Context())
	return serviceutils.ResponseSuccess(c, http.StatusOK, "Employees listed successfully", employees)
}

func (h *EmployeeHandler) DeleteHandler(c echo.Context) error {
	if err := h.svc.Dismiss(c.Request().Context(), c.Param("id")); err != nil {
		return serviceutils.ResponseError(c, statusFor(err), "Failed to delete employee", err)
	}
	return serviceutils.ResponseSuccess(c, http.StatusOK, "Employee deleted successfully", nil)
}

func (h *EmployeeHandler) UpdateSalaryHandler(c echo.Context) error {
	var req UpdateSalaryRequest
	if err := c.Bind(&req); err != nil {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "Invalid request body", err)
	}
	if req.Salary == nil {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "Invalid request body", fmt.Errorf("salary is required"))
	}

	emp, err := h.svc.ChangeSalary(c.Request().Context(), c.Param("id"), *req.Salary)
	if err != nil {
		return serviceutils.ResponseError(c, statusFor(err), "Failed to update salary", err)
	}
	return serviceutils.ResponseSuccess(c, http.StatusOK, "Salary updated successfully", emp)
}

func (h *EmployeeHandler) UpdatePositionHandler(c echo.Context) error {
	var req UpdatePositionRequest
	if err := c.Bind(&req); err != nil {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "Invalid request body", err)
	}
	if req.PositionID == "" {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "Invalid request body", fmt.Errorf("position_id is required"))
	}

	emp, err := h.svc.ChangePosition(c.Request().Context(), c.Param("id"), req.PositionID)
	if err != nil {
		return serviceutils.ResponseError(c, statusFor(err), "Failed to update position", err)
	}
	return serviceutils.ResponseSuccess(c, http.StatusOK, "Position updated successfully", emp)
}

func (h *EmployeeHandler) TotalSalaryHandler(c echo.Context) error {
	count, total := h.svc.Totals(c.Request().Context())
	return serviceutils.ResponseSuccess(c, http.StatusOK, "Total salary calculated", TotalSalaryResponse{
		Employees:   count,
		TotalSalary: total,
	})
}

// ImportHandler accepts a CSV body of id,name,position_id,salary rows.
func (h *EmployeeHandler) ImportHandler(c echo.Context) error {
	report, err := h.svc.ImportCSV(c.Request().Context(), c.Request().Body)
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "Failed to import employees", err)
	}
	return serviceutils.ResponseSuccess(c, http.StatusOK, "Employees imported", report)
}

func (h *EmployeeHandler) ExportRosterHandler(c echo.Context) error {
	var buf bytes.Buffer
	if err := h.svc.ExportRoster(c.Request().Context(), &buf, h.sheetName); err != nil {
		return serviceutils.ResponseError(c, http.StatusInternalServerError, "Failed to generate excel file", err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="roster.xlsx"`)
	c.Response().Header().Set(echo.HeaderContentLength, strconv.Itoa(buf.Len()))
	return c.Blob(http.StatusOK, xlsxContentType, buf.Bytes())
}
