package subscribing

import (
	"errors"
	"fmt"
)

var (
	ErrPlanNotFound         = errors.New("plano não encontrado")
	ErrNotPlanOwner         = errors.New("plano pertence a outro criador")
	ErrPlanInactive         = errors.New("plano desativado")
	ErrInvalidPlanName      = errors.New("nome do plano inválido")
	ErrInvalidPrice         = errors.New("preço do plano inválido")
	ErrInvalidInterval      = errors.New("intervalo de cobrança inválido")
	ErrSubscriberNotFound   = errors.New("assinante não encontrado")
	ErrSubscriptionNotFound = errors.New("assinatura não encontrada")
	ErrActiveSubscription   = errors.New("assinante já possui assinatura ativa neste plano")
	ErrInvalidPeriod        = errors.New("período inválido")
	ErrPaymentProvider      = errors.New("erro no processador de pagamento")
)

// SubscriptionError é um erro com contexto adicional para operações de assinatura
type SubscriptionError struct {
	Err     error
	Code    string
	Details string
}

func (e *SubscriptionError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *SubscriptionError) Unwrap() error {
	return e.Err
}

func NewSubscriptionError(baseErr error, code string, details string) *SubscriptionError {
	return &SubscriptionError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}
