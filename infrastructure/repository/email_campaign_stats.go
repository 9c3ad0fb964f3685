package repository

import (
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/creator-platform-api/infrastructure/database/postgres"
	"github.com/vfg2006/creator-platform-api/internal/domain"
)

type EmailCampaignStatsRepository interface {
	RecordDelivery(entry *domain.CampaignStatsEntry) error
	MarkOpened(campaignID, subscriberID string, at time.Time) error
	MarkClicked(campaignID, subscriberID string, at time.Time) error
	MarkUnsubscribed(campaignID, subscriberID string, at time.Time) error
	CampaignTotals(campaignID string) (*domain.CampaignStatsTotals, error)
	SubscriberEngagement(subscriberID string) (*domain.SubscriberEngagement, error)
}

type emailCampaignStatsRepository struct {
	conn *postgres.Connection
}

func NewEmailCampaignStatsRepository(conn *postgres.Connection) EmailCampaignStatsRepository {
	return &emailCampaignStatsRepository{
		conn: conn,
	}
}

func (r *emailCampaignStatsRepository) RecordDelivery(entry *domain.CampaignStatsEntry) error {
	query, args, err := squirrel.
		Insert("email_campaign_stats").
		Columns("id", "campaign_id", "subscriber_id", "delivered_at").
		Values(entry.ID, entry.CampaignID, entry.SubscriberID, entry.DeliveredAt).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && string(pqErr.Code) == uniqueViolationCode {
			return ErrDuplicateKey
		}
		return fmt.Errorf("erro ao registrar entrega: %w", err)
	}

	return nil
}

// MarkOpened grava o horário da primeira abertura. Aberturas repetidas não
// sobrescrevem o timestamp original (COALESCE mantém o valor existente).
func (r *emailCampaignStatsRepository) MarkOpened(campaignID, subscriberID string, at time.Time) error {
	query, args, err := squirrel.
		Update("email_campaign_stats").
		Set("opened_at", squirrel.Expr("COALESCE(opened_at, ?)", at)).
		Where(squirrel.Eq{"campaign_id": campaignID, "subscriber_id": subscriberID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.execOnDelivery(query, args)
}

// MarkClicked grava o primeiro clique e preenche a abertura quando o provedor
// não reportou o evento de open antes do click
func (r *emailCampaignStatsRepository) MarkClicked(campaignID, subscriberID string, at time.Time) error {
	query, args, err := squirrel.
		Update("email_campaign_stats").
		Set("clicked_at", squirrel.Expr("COALESCE(clicked_at, ?)", at)).
		Set("opened_at", squirrel.Expr("COALESCE(opened_at, ?)", at)).
		Where(squirrel.Eq{"campaign_id": campaignID, "subscriber_id": subscriberID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.execOnDelivery(query, args)
}

func (r *emailCampaignStatsRepository) MarkUnsubscribed(campaignID, subscriberID string, at time.Time) error {
	query, args, err := squirrel.
		Update("email_campaign_stats").
		Set("unsubscribed_at", squirrel.Expr("COALESCE(unsubscribed_at, ?)", at)).
		Where(squirrel.Eq{"campaign_id": campaignID, "subscriber_id": subscriberID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.execOnDelivery(query, args)
}

func (r *emailCampaignStatsRepository) execOnDelivery(query string, args []interface{}) error {
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

func (r *emailCampaignStatsRepository) CampaignTotals(campaignID string) (*domain.CampaignStatsTotals, error) {
	query, args, err := squirrel.
		Select(
			"COUNT(*) AS delivered",
			"COUNT(opened_at) AS opened",
			"COUNT(clicked_at) AS clicked",
			"COUNT(unsubscribed_at) AS unsubscribed",
		).
		From("email_campaign_stats").
		Where(squirrel.Eq{"campaign_id": campaignID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	totals := &domain.CampaignStatsTotals{}
	err = r.conn.QueryRow(query, args...).Scan(
		&totals.Delivered,
		&totals.Opened,
		&totals.Clicked,
		&totals.Unsubscribed,
	)
	if err != nil {
		return nil, fmt.Errorf("erro ao escanear totais da campanha: %w", err)
	}

	return totals, nil
}

// SubscriberEngagement conta aberturas e cliques acumulados de um assinante
// em todas as campanhas recebidas
func (r *emailCampaignStatsRepository) SubscriberEngagement(subscriberID string) (*domain.SubscriberEngagement, error) {
	query, args, err := squirrel.
		Select(
			"COUNT(*) AS delivered",
			"COUNT(opened_at) AS opened",
			"COUNT(clicked_at) AS clicked",
		).
		From("email_campaign_stats").
		Where(squirrel.Eq{"subscriber_id": subscriberID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	engagement := &domain.SubscriberEngagement{SubscriberID: subscriberID}
	err = r.conn.QueryRow(query, args...).Scan(
		&engagement.Delivered,
		&engagement.Opened,
		&engagement.Clicked,
	)
	if err != nil {
		return nil, fmt.Errorf("erro ao escanear engajamento do assinante: %w", err)
	}

	return engagement, nil
}
