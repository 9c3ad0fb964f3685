package dashboarding

import (
	"errors"
	"fmt"
)

var ErrInvalidPeriod = errors.New("período inválido")

// DashboardError é um erro com contexto adicional para a montagem do painel
type DashboardError struct {
	Err     error
	Code    string
	Details string
}

func (e *DashboardError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *DashboardError) Unwrap() error {
	return e.Err
}

func NewDashboardError(baseErr error, code string, details string) *DashboardError {
	return &DashboardError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}
