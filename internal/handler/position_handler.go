package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/locvowork/employee_roster/internal/domain"
	"github.com/locvowork/employee_roster/internal/service/serviceutils"
)

func (h *EmployeeHandler) CreatePositionHandler(c echo.Context) error {
	var req CreatePositionRequest
	if err := c.Bind(&req); err != nil {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "Invalid request body", err)
	}

	pos, err := h.svc.CreatePosition(c.Request().Context(), domain.Position{
		ID:        req.ID,
		Name:      req.Name,
		MinSalary: req.MinSalary,
		MaxSalary: req.MaxSalary,
	})
	if err != nil {
		return serviceutils.ResponseError(c, statusFor(err), "Failed to create position", err)
	}

	return serviceutils.ResponseSuccess(c, http.StatusCreated, "Position created successfully", pos)
}

func (h *EmployeeHandler) ListPositionsHandler(c echo.Context) error {
	positions := h.svc.ListPositions(c.Request().Context())
	return serviceutils.ResponseSuccess(c, http.StatusOK, "Positions listed successfully", positions)
}

func (h *EmployeeHandler) GetPositionHandler(c echo.Context) error {
	pos, err := h.svc.GetPosition(c.Request().Context(), c.Param("id"))
	if err != nil {
		return serviceutils.ResponseError(c, statusFor(err), "Failed to get position", err)
	}
	return serviceutils.ResponseSuccess(c, http.StatusOK, "Position retrieved successfully", pos)
}

func (h *EmployeeHandler) ValidateSalaryHandler(c echo.Context) error {
	raw := c.QueryParam("salary")
	salary, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "Invalid salary", fmt.Errorf("salary %q is not a number", raw))
	}

	id := c.Param("id")
	valid, err := h.svc.ValidateSalary(c.Request().Context(), id, salary)
	if err != nil {
		return serviceutils.ResponseError(c, statusFor(err), "Failed to validate salary", err)
	}

	return serviceutils.ResponseSuccess(c, http.StatusOK, "Salary validated", SalaryValidationResponse{
		PositionID: id,
		Salary:     salary,
		Valid:      valid,
	})
}
