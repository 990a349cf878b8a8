package handler

import (
	"errors"
	"net/http"

	"github.com/locvowork/employee_roster/internal/domain"
)

// statusFor maps roster rejections onto HTTP status codes. Anything unrecognised is a 500.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrEmployeeNotFound), errors.Is(err, domain.ErrPositionNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrDuplicateEmployee), errors.Is(err, domain.ErrDuplicatePosition):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInvalidSalary), errors.Is(err, domain.ErrInvalidBand):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
