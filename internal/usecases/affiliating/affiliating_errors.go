package affiliating

import (
	"errors"
	"fmt"
)

var (
	ErrLinkNotFound       = errors.New("link de afiliado não encontrado")
	ErrLinkInactive       = errors.New("link de afiliado desativado")
	ErrNotLinkOwner       = errors.New("link pertence a outro criador")
	ErrInvalidName        = errors.New("nome do link inválido")
	ErrInvalidURL         = errors.New("URL de destino inválida")
	ErrInvalidNetwork     = errors.New("rede de afiliados desconhecida")
	ErrInvalidRate        = errors.New("taxa de comissão fora do intervalo")
	ErrInvalidCategory    = errors.New("categoria muito longa")
	ErrNoEligibleClick    = errors.New("nenhum clique elegível para conversão")
	ErrInvalidPeriod      = errors.New("período inválido")
	ErrNegativeCommission = errors.New("comissão negativa não é aceita")
)

// AffiliateError é um erro com contexto adicional para operações de afiliados
type AffiliateError struct {
	Err     error
	Code    string
	LinkID  string
	Details string
}

func (e *AffiliateError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *AffiliateError) Unwrap() error {
	return e.Err
}

func NewAffiliateError(baseErr error, code string, details string) *AffiliateError {
	return &AffiliateError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}

func NewLinkAffiliateError(baseErr error, code string, linkID string, details string) *AffiliateError {
	return &AffiliateError{
		Err:     baseErr,
		Code:    code,
		LinkID:  linkID,
		Details: details,
	}
}
