package campaigning

import (
	"errors"
	"fmt"
)

var (
	ErrCampaignNotFound    = errors.New("campanha não encontrada")
	ErrNotCampaignOwner    = errors.New("campanha pertence a outro criador")
	ErrCampaignNotEditable = errors.New("campanha não pode mais ser editada")
	ErrCampaignNotDraft    = errors.New("apenas rascunhos podem ser removidos")
	ErrInvalidTransition   = errors.New("transição de status não permitida")
	ErrScheduleInPast      = errors.New("agendamento deve ser no futuro")
	ErrMissingContent      = errors.New("assunto e corpo são obrigatórios")
	ErrNoRecipients        = errors.New("nenhum assinante ativo para envio")
	ErrSubscriberNotFound  = errors.New("assinante não encontrado")
	ErrSubscriberExists    = errors.New("email já inscrito")
	ErrInvalidEmail        = errors.New("email inválido")
	ErrUnknownEvent        = errors.New("tipo de evento desconhecido")
)

// CampaignError é um erro com contexto adicional para operações de campanha
type CampaignError struct {
	Err        error
	Code       string
	CampaignID string
	Details    string
}

func (e *CampaignError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *CampaignError) Unwrap() error {
	return e.Err
}

func NewCampaignError(baseErr error, code string, details string) *CampaignError {
	return &CampaignError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}
