package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/creator-platform-api/infrastructure/database/postgres"
	"github.com/vfg2006/creator-platform-api/internal/domain"
)

const (
	emailCampaignsTable = "email_campaigns ec"
)

type EmailCampaignRepository interface {
	Create(campaign *domain.EmailCampaign) error
	GetByID(id string) (*domain.EmailCampaign, error)
	ListByCreator(creatorID int) ([]*domain.EmailCampaign, error)
	ListDueScheduled(now time.Time) ([]*domain.EmailCampaign, error)
	UpdateContent(campaign *domain.EmailCampaign) error
	Schedule(id string, scheduledAt time.Time) error
	TransitionStatus(id string, from []domain.CampaignStatus, to domain.CampaignStatus) error
	MarkSending(id string, recipientCount int) error
	MarkSent(id string, sentAt time.Time) error
	UpdateRates(id string, openRate, clickRate float64) error
	Delete(id string) error
}

type emailCampaignRepository struct {
	conn *postgres.Connection
}

func NewEmailCampaignRepository(conn *postgres.Connection) EmailCampaignRepository {
	return &emailCampaignRepository{
		conn: conn,
	}
}

func (r *emailCampaignRepository) Create(campaign *domain.EmailCampaign) error {
	query, args, err := squirrel.
		Insert("email_campaigns").
		Columns("id", "creator_id", "subject", "body", "status", "recipient_count").
		Values(
			campaign.ID,
			campaign.CreatorID,
			campaign.Subject,
			campaign.Body,
			campaign.Status,
			0,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao inserir campanha: %w", err)
	}

	return nil
}

func (r *emailCampaignRepository) GetByID(id string) (*domain.EmailCampaign, error) {
	query, args, err := squirrel.
		Select(campaignColumns).
		From(emailCampaignsTable).
		Where(squirrel.Eq{"ec.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	campaign := &domain.EmailCampaign{}
	err = r.scanCampaignRow(r.conn.QueryRow(query, args...), campaign)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear campanha: %w", err)
	}

	return campaign, nil
}

const campaignColumns = "ec.id, ec.creator_id, ec.subject, ec.body, ec.status, ec.scheduled_at, ec.sent_at, ec.recipient_count, ec.open_rate, ec.click_rate, ec.created_at, ec.updated_at"

func (r *emailCampaignRepository) ListByCreator(creatorID int) ([]*domain.EmailCampaign, error) {
	builder := squirrel.
		Select(campaignColumns).
		From(emailCampaignsTable).
		Where(squirrel.Eq{"ec.creator_id": creatorID}).
		OrderBy("ec.created_at DESC")

	return r.listCampaigns(builder)
}

// ListDueScheduled busca campanhas agendadas cujo horário já passou,
// candidatas a disparo pelo agendador
func (r *emailCampaignRepository) ListDueScheduled(now time.Time) ([]*domain.EmailCampaign, error) {
	builder := squirrel.
		Select(campaignColumns).
		From(emailCampaignsTable).
		Where(squirrel.Eq{"ec.status": domain.CampaignScheduled}).
		Where(squirrel.LtOrEq{"ec.scheduled_at": now}).
		OrderBy("ec.scheduled_at ASC")

	return r.listCampaigns(builder)
}

func (r *emailCampaignRepository) listCampaigns(builder squirrel.SelectBuilder) ([]*domain.EmailCampaign, error) {
	query, args, err := builder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	campaigns := make([]*domain.EmailCampaign, 0)
	for rows.Next() {
		campaign := &domain.EmailCampaign{}
		err := rows.Scan(
			&campaign.ID,
			&campaign.CreatorID,
			&campaign.Subject,
			&campaign.Body,
			&campaign.Status,
			&campaign.ScheduledAt,
			&campaign.SentAt,
			&campaign.RecipientCount,
			&campaign.OpenRate,
			&campaign.ClickRate,
			&campaign.CreatedAt,
			&campaign.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear campanhas: %w", err)
		}
		campaigns = append(campaigns, campaign)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return campaigns, nil
}

func (r *emailCampaignRepository) UpdateContent(campaign *domain.EmailCampaign) error {
	query, args, err := squirrel.
		Update("email_campaigns").
		Set("subject", campaign.Subject).
		Set("body", campaign.Body).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": campaign.ID}).
		Where(squirrel.Eq{"status": []domain.CampaignStatus{domain.CampaignDraft, domain.CampaignScheduled}}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.execGuarded(query, args)
}

// Schedule grava o horário de envio. A guarda de status no WHERE garante que
// campanhas já enviadas nunca voltam a ser agendadas, mesmo sob concorrência.
func (r *emailCampaignRepository) Schedule(id string, scheduledAt time.Time) error {
	query, args, err := squirrel.
		Update("email_campaigns").
		Set("status", domain.CampaignScheduled).
		Set("scheduled_at", scheduledAt).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"status": []domain.CampaignStatus{domain.CampaignDraft, domain.CampaignScheduled}}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.execGuarded(query, args)
}

// TransitionStatus aplica uma transição condicionada ao status de origem
func (r *emailCampaignRepository) TransitionStatus(id string, from []domain.CampaignStatus, to domain.CampaignStatus) error {
	query, args, err := squirrel.
		Update("email_campaigns").
		Set("status", to).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"status": from}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.execGuarded(query, args)
}

func (r *emailCampaignRepository) MarkSending(id string, recipientCount int) error {
	query, args, err := squirrel.
		Update("email_campaigns").
		Set("status", domain.CampaignSending).
		Set("recipient_count", recipientCount).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"status": []domain.CampaignStatus{domain.CampaignDraft, domain.CampaignScheduled}}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.execGuarded(query, args)
}

func (r *emailCampaignRepository) MarkSent(id string, sentAt time.Time) error {
	query, args, err := squirrel.
		Update("email_campaigns").
		Set("status", domain.CampaignSent).
		Set("sent_at", sentAt).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"status": domain.CampaignSending}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.execGuarded(query, args)
}

// UpdateRates grava as taxas agregadas recalculadas a partir das entregas
func (r *emailCampaignRepository) UpdateRates(id string, openRate, clickRate float64) error {
	query, args, err := squirrel.
		Update("email_campaigns").
		Set("open_rate", openRate).
		Set("click_rate", clickRate).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao atualizar taxas da campanha: %w", err)
	}

	return nil
}

// Delete remove a campanha apenas enquanto rascunho
func (r *emailCampaignRepository) Delete(id string) error {
	query, args, err := squirrel.
		Delete("email_campaigns").
		Where(squirrel.Eq{"id": id, "status": domain.CampaignDraft}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.execGuarded(query, args)
}

func (r *emailCampaignRepository) scanCampaignRow(row *sql.Row, campaign *domain.EmailCampaign) error {
	return row.Scan(
		&campaign.ID,
		&campaign.CreatorID,
		&campaign.Subject,
		&campaign.Body,
		&campaign.Status,
		&campaign.ScheduledAt,
		&campaign.SentAt,
		&campaign.RecipientCount,
		&campaign.OpenRate,
		&campaign.ClickRate,
		&campaign.CreatedAt,
		&campaign.UpdatedAt,
	)
}

// execGuarded executa um comando condicional e devolve ErrNoRowsAffected
// quando a guarda de status rejeita a operação
func (r *emailCampaignRepository) execGuarded(query string, args []interface{}) error {
	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	if affected == 0 {
		return ErrNoRowsAffected
	}

	return nil
}
