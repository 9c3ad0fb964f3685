package analyzing

import (
	"errors"
	"fmt"
)

var (
	ErrArticleNotFound  = errors.New("artigo não encontrado")
	ErrNotArticleOwner  = errors.New("artigo pertence a outro criador")
	ErrInvalidCounter   = errors.New("contador de analytics desconhecido")
	ErrInvalidTitle     = errors.New("título do artigo inválido")
	ErrInvalidSlug      = errors.New("slug do artigo inválido")
	ErrAlreadyPublished = errors.New("artigo já publicado")
	ErrInvalidPeriod    = errors.New("período inválido")
	ErrNegativeValue    = errors.New("valores negativos não são aceitos")
	ErrInvalidRate      = errors.New("taxa de rejeição fora do intervalo aceito")
)

// AnalyticsError é um erro com contexto adicional para operações de analytics
type AnalyticsError struct {
	Err       error
	Code      string
	ArticleID string
	Details   string
}

func (e *AnalyticsError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *AnalyticsError) Unwrap() error {
	return e.Err
}

func NewAnalyticsError(baseErr error, code string, details string) *AnalyticsError {
	return &AnalyticsError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}
