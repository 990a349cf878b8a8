package handler

// CreateEmployeeRequest is the body of POST /employees.
type CreateEmployeeRequest struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	PositionID string  `json:"position_id"`
	Salary     float64 `json:"salary"`
}

// CreatePositionRequest is the body of POST /positions.
type CreatePositionRequest struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	MinSalary float64 `json:"min_salary"`
	MaxSalary float64 `json:"max_salary"`
}

// UpdateSalaryRequest is the body of PUT /employees/:id/salary.
type UpdateSalaryRequest struct {
	Salary *float64 `json:"salary"`
}

// UpdatePositionRequest is the body of PUT /employees/:id/position.
type UpdatePositionRequest struct {
	PositionID string `json:"position_id"`
}

// SalaryValidationResponse answers GET /positions/:id/validate.
type SalaryValidationResponse struct {
	PositionID string  `json:"position_id"`
	Salary     float64 `json:"salary"`
	Valid      bool    `json:"valid"`
}

// TotalSalaryResponse answers GET /employees/total-salary.
type TotalSalaryResponse struct {
	Employees   int     `json:"employees"`
	TotalSalary float64 `json:"total_salary"`
}
