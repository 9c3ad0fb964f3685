package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/creator-platform-api/infrastructure/database/postgres"
	"github.com/vfg2006/creator-platform-api/internal/domain"
)

type SubscriptionRepository interface {
	Upsert(subscription *domain.Subscription) error
	GetByID(id string) (*domain.Subscription, error)
	GetByProviderSubscriptionID(providerSubscriptionID string) (*domain.Subscription, error)
	GetActiveBySubscriber(subscriberID string, planID string) (*domain.Subscription, error)
	GetLatestBySubscriber(subscriberID string) (*domain.Subscription, error)
	UpdateStatus(id string, status domain.SubscriptionStatus, canceledAt *time.Time) error
	CountActiveByCreator(creatorID int) (int64, error)
	CountActiveAtByCreator(creatorID int, at time.Time) (int64, error)
	CountCreatedInWindow(creatorID int, start, end time.Time) (int64, error)
	CountCanceledInWindow(creatorID int, start, end time.Time) (int64, error)
	WindowRevenueCents(creatorID int, start, end time.Time) (int64, error)
}

type subscriptionRepository struct {
	conn *postgres.Connection
}

func NewSubscriptionRepository(conn *postgres.Connection) SubscriptionRepository {
	return &subscriptionRepository{
		conn: conn,
	}
}

// Upsert insere a assinatura ou, quando o provedor reenvia o mesmo
// provider_subscription_id, sincroniza status e período de cobrança
func (r *subscriptionRepository) Upsert(subscription *domain.Subscription) error {
	query, args, err := squirrel.
		Insert("subscriptions").
		Columns(
			"id", "plan_id", "subscriber_id", "status", "provider_customer_id",
			"provider_subscription_id", "current_period_start", "current_period_end",
		).
		Values(
			subscription.ID,
			subscription.PlanID,
			subscription.SubscriberID,
			subscription.Status,
			subscription.ProviderCustomerID,
			subscription.ProviderSubscriptionID,
			subscription.CurrentPeriodStart,
			subscription.CurrentPeriodEnd,
		).
		Suffix(`ON CONFLICT (provider_subscription_id) DO UPDATE SET
			status = EXCLUDED.status,
			current_period_start = EXCLUDED.current_period_start,
			current_period_end = EXCLUDED.current_period_end,
			updated_at = NOW()`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao gravar assinatura: %w", err)
	}

	return nil
}

const subscriptionColumns = "sub.id, sub.plan_id, sub.subscriber_id, sub.status, sub.provider_customer_id, sub.provider_subscription_id, sub.current_period_start, sub.current_period_end, sub.canceled_at, sub.created_at, sub.updated_at"

func (r *subscriptionRepository) GetByID(id string) (*domain.Subscription, error) {
	return r.getByWhere(squirrel.Eq{"sub.id": id})
}

func (r *subscriptionRepository) GetByProviderSubscriptionID(providerSubscriptionID string) (*domain.Subscription, error) {
	return r.getByWhere(squirrel.Eq{"sub.provider_subscription_id": providerSubscriptionID})
}

// GetActiveBySubscriber busca uma assinatura vigente do assinante no plano,
// usada para barrar assinaturas duplicadas no checkout
func (r *subscriptionRepository) GetActiveBySubscriber(subscriberID string, planID string) (*domain.Subscription, error) {
	return r.getByWhere(squirrel.Eq{
		"sub.subscriber_id": subscriberID,
		"sub.plan_id":       planID,
		"sub.status":        []domain.SubscriptionStatus{domain.SubscriptionActive, domain.SubscriptionPastDue},
	})
}

// GetLatestBySubscriber devolve a assinatura mais recente do assinante em
// qualquer plano, usada para reutilizar o cliente do provedor
func (r *subscriptionRepository) GetLatestBySubscriber(subscriberID string) (*domain.Subscription, error) {
	return r.getByWhere(squirrel.Eq{"sub.subscriber_id": subscriberID})
}

func (r *subscriptionRepository) getByWhere(where squirrel.Eq) (*domain.Subscription, error) {
	query, args, err := squirrel.
		Select(subscriptionColumns).
		From("subscriptions sub").
		Where(where).
		OrderBy("sub.created_at DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	subscription := &domain.Subscription{}
	err = r.conn.QueryRow(query, args...).Scan(
		&subscription.ID,
		&subscription.PlanID,
		&subscription.SubscriberID,
		&subscription.Status,
		&subscription.ProviderCustomerID,
		&subscription.ProviderSubscriptionID,
		&subscription.CurrentPeriodStart,
		&subscription.CurrentPeriodEnd,
		&subscription.CanceledAt,
		&subscription.CreatedAt,
		&subscription.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear assinatura: %w", err)
	}

	return subscription, nil
}

func (r *subscriptionRepository) UpdateStatus(id string, status domain.SubscriptionStatus, canceledAt *time.Time) error {
	builder := squirrel.
		Update("subscriptions").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if canceledAt != nil {
		builder = builder.Set("canceled_at", *canceledAt)
	}

	query, args, err := builder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao atualizar status da assinatura: %w", err)
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

func (r *subscriptionRepository) CountActiveByCreator(creatorID int) (int64, error) {
	builder := r.creatorSubscriptions(creatorID).
		Where(squirrel.Eq{"sub.status": domain.SubscriptionActive})

	return r.count(builder)
}

// CountActiveAtByCreator conta assinaturas que já existiam e ainda não haviam
// sido canceladas no instante dado, base do denominador do churn
func (r *subscriptionRepository) CountActiveAtByCreator(creatorID int, at time.Time) (int64, error) {
	builder := r.creatorSubscriptions(creatorID).
		Where(squirrel.Lt{"sub.created_at": at}).
		Where(squirrel.Or{
			squirrel.Eq{"sub.canceled_at": nil},
			squirrel.GtOrEq{"sub.canceled_at": at},
		})

	return r.count(builder)
}

func (r *subscriptionRepository) CountCreatedInWindow(creatorID int, start, end time.Time) (int64, error) {
	builder := r.creatorSubscriptions(creatorID).
		Where(squirrel.GtOrEq{"sub.created_at": start}).
		Where(squirrel.Lt{"sub.created_at": end})

	return r.count(builder)
}

func (r *subscriptionRepository) CountCanceledInWindow(creatorID int, start, end time.Time) (int64, error) {
	builder := r.creatorSubscriptions(creatorID).
		Where(squirrel.GtOrEq{"sub.canceled_at": start}).
		Where(squirrel.Lt{"sub.canceled_at": end})

	return r.count(builder)
}

// WindowRevenueCents soma o preço dos planos das assinaturas criadas ou
// renovadas na janela (início de período de cobrança dentro da janela)
func (r *subscriptionRepository) WindowRevenueCents(creatorID int, start, end time.Time) (int64, error) {
	query, args, err := squirrel.
		Select("COALESCE(SUM(p.price_cents), 0)").
		From("subscriptions sub").
		Join("subscription_plans p ON p.id = sub.plan_id").
		Where(squirrel.Eq{"p.creator_id": creatorID}).
		Where(squirrel.NotEq{"sub.status": domain.SubscriptionIncomplete}).
		Where(squirrel.GtOrEq{"sub.current_period_start": start}).
		Where(squirrel.Lt{"sub.current_period_start": end}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var total int64
	if err := r.conn.QueryRow(query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("erro ao somar receita de assinaturas: %w", err)
	}

	return total, nil
}

func (r *subscriptionRepository) creatorSubscriptions(creatorID int) squirrel.SelectBuilder {
	return squirrel.
		Select("COUNT(*)").
		From("subscriptions sub").
		Join("subscription_plans p ON p.id = sub.plan_id").
		Where(squirrel.Eq{"p.creator_id": creatorID})
}

func (r *subscriptionRepository) count(builder squirrel.SelectBuilder) (int64, error) {
	query, args, err := builder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int64
	if err := r.conn.QueryRow(query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar assinaturas: %w", err)
	}

	return count, nil
}
