package revenue

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDate    = errors.New("data inválida")
	ErrFutureDate     = errors.New("data no futuro não é aceita")
	ErrInvalidSource  = errors.New("origem de receita desconhecida")
	ErrNegativeValue  = errors.New("valores negativos não são aceitos")
	ErrInvalidPeriod  = errors.New("período inválido")
	ErrDatabaseAccess = errors.New("erro ao acessar dados de receita")
)

// RevenueError é um erro com contexto adicional para operações de receita
type RevenueError struct {
	Err     error
	Code    string
	Details string
}

func (e *RevenueError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *RevenueError) Unwrap() error {
	return e.Err
}

func NewRevenueError(baseErr error, code string, details string) *RevenueError {
	return &RevenueError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}
