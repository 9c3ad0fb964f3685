package domain

import (
	"time"
)

// CampaignStatus é o estado de uma campanha de email
type CampaignStatus string

const (
	CampaignDraft     CampaignStatus = "draft"
	CampaignScheduled CampaignStatus = "scheduled"
	CampaignSending   CampaignStatus = "sending"
	CampaignSent      CampaignStatus = "sent"
	CampaignFailed    CampaignStatus = "failed"
)

// EmailCampaign representa uma campanha de email.
// Transições: draft → scheduled → sending → sent, ou draft/scheduled → failed.
// Campanhas sent/failed são imutáveis.
type EmailCampaign struct {
	ID             string         `json:"id"`
	CreatorID      int            `json:"creator_id"`
	Subject        string         `json:"subject"`
	Body           string         `json:"body"`
	Status         CampaignStatus `json:"status"`
	ScheduledAt    *time.Time     `json:"scheduled_at,omitempty"`
	SentAt         *time.Time     `json:"sent_at,omitempty"`
	RecipientCount int            `json:"recipient_count"`
	OpenRate       float64        `json:"open_rate"`
	ClickRate      float64        `json:"click_rate"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// CanEdit indica se a campanha ainda aceita alterações
func (c *EmailCampaign) CanEdit() bool {
	return c.Status == CampaignDraft || c.Status == CampaignScheduled
}

// CanDelete indica se a campanha pode ser removida
func (c *EmailCampaign) CanDelete() bool {
	return c.Status == CampaignDraft
}

// CampaignStatsEntry registra a entrega de uma campanha para um assinante.
// OpenedAt e ClickedAt guardam apenas a primeira ocorrência (timestamps sticky);
// um clique sem abertura prévia preenche OpenedAt com o horário do clique.
type CampaignStatsEntry struct {
	ID             string     `json:"id"`
	CampaignID     string     `json:"campaign_id"`
	SubscriberID   string     `json:"subscriber_id"`
	DeliveredAt    time.Time  `json:"delivered_at"`
	OpenedAt       *time.Time `json:"opened_at,omitempty"`
	ClickedAt      *time.Time `json:"clicked_at,omitempty"`
	UnsubscribedAt *time.Time `json:"unsubscribed_at,omitempty"`
}

// CampaignStatsTotals agrega os contadores de entrega de uma campanha
type CampaignStatsTotals struct {
	Delivered    int64 `json:"delivered"`
	Opened       int64 `json:"opened"`
	Clicked      int64 `json:"clicked"`
	Unsubscribed int64 `json:"unsubscribed"`
}

// CampaignReport é a resposta de estatísticas de uma campanha
type CampaignReport struct {
	CampaignID      string         `json:"campaign_id"`
	Subject         string         `json:"subject"`
	Status          CampaignStatus `json:"status"`
	RecipientCount  int            `json:"recipient_count"`
	Delivered       int64          `json:"delivered"`
	Opened          int64          `json:"opened"`
	Clicked         int64          `json:"clicked"`
	Unsubscribed    int64          `json:"unsubscribed"`
	OpenRate        float64        `json:"open_rate"`
	ClickRate       float64        `json:"click_rate"`
	EngagementScore int            `json:"engagement_score"`
}

// CreateCampaignRequest são os dados de entrada para criação de campanha
type CreateCampaignRequest struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// UpdateCampaignRequest atualização parcial de uma campanha editável
type UpdateCampaignRequest struct {
	Subject *string `json:"subject"`
	Body    *string `json:"body"`
}

// MailerEventType é o tipo de evento de entrega recebido via webhook
type MailerEventType string

const (
	MailerEventOpen        MailerEventType = "open"
	MailerEventClick       MailerEventType = "click"
	MailerEventUnsubscribe MailerEventType = "unsubscribe"
	MailerEventBounce      MailerEventType = "bounce"
)

// MailerEvent é um evento de entrega do provedor de email
type MailerEvent struct {
	Type         MailerEventType `json:"type"`
	CampaignID   string          `json:"campaign_id"`
	SubscriberID string          `json:"subscriber_id"`
	OccurredAt   time.Time       `json:"occurred_at"`
}
