package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/creator-platform-api/infrastructure/database/postgres"
	"github.com/vfg2006/creator-platform-api/internal/domain"
)

type SubscriptionPlanRepository interface {
	Create(plan *domain.SubscriptionPlan) error
	GetByID(id string) (*domain.SubscriptionPlan, error)
	ListByCreator(creatorID int, onlyActive bool) ([]*domain.SubscriptionPlan, error)
	Deactivate(id string) error
}

type subscriptionPlanRepository struct {
	conn *postgres.Connection
}

func NewSubscriptionPlanRepository(conn *postgres.Connection) SubscriptionPlanRepository {
	return &subscriptionPlanRepository{
		conn: conn,
	}
}

func (r *subscriptionPlanRepository) Create(plan *domain.SubscriptionPlan) error {
	query, args, err := squirrel.
		Insert("subscription_plans").
		Columns(
			"id", "creator_id", "name", "description", "price_cents", "currency",
			"interval_months", "features", "provider_product_id", "provider_price_id", "is_active",
		).
		Values(
			plan.ID,
			plan.CreatorID,
			plan.Name,
			plan.Description,
			plan.PriceCents,
			plan.Currency,
			plan.IntervalMonths,
			pq.Array(plan.Features),
			plan.ProviderProductID,
			plan.ProviderPriceID,
			plan.IsActive,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao inserir plano: %w", err)
	}

	return nil
}

const planColumns = "p.id, p.creator_id, p.name, p.description, p.price_cents, p.currency, p.interval_months, p.features, p.provider_product_id, p.provider_price_id, p.is_active, p.created_at, p.updated_at"

func (r *subscriptionPlanRepository) GetByID(id string) (*domain.SubscriptionPlan, error) {
	query, args, err := squirrel.
		Select(planColumns).
		From("subscription_plans p").
		Where(squirrel.Eq{"p.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	plan := &domain.SubscriptionPlan{}
	err = r.scanPlan(r.conn.QueryRow(query, args...), plan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear plano: %w", err)
	}

	return plan, nil
}

type planScanner interface {
	Scan(dest ...interface{}) error
}

func (r *subscriptionPlanRepository) scanPlan(row planScanner, plan *domain.SubscriptionPlan) error {
	return row.Scan(
		&plan.ID,
		&plan.CreatorID,
		&plan.Name,
		&plan.Description,
		&plan.PriceCents,
		&plan.Currency,
		&plan.IntervalMonths,
		pq.Array(&plan.Features),
		&plan.ProviderProductID,
		&plan.ProviderPriceID,
		&plan.IsActive,
		&plan.CreatedAt,
		&plan.UpdatedAt,
	)
}

func (r *subscriptionPlanRepository) ListByCreator(creatorID int, onlyActive bool) ([]*domain.SubscriptionPlan, error) {
	builder := squirrel.
		Select(planColumns).
		From("subscription_plans p").
		Where(squirrel.Eq{"p.creator_id": creatorID}).
		OrderBy("p.price_cents ASC")

	if onlyActive {
		builder = builder.Where(squirrel.Eq{"p.is_active": true})
	}

	query, args, err := builder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	plans := make([]*domain.SubscriptionPlan, 0)
	for rows.Next() {
		plan := &domain.SubscriptionPlan{}
		if err := r.scanPlan(rows, plan); err != nil {
			return nil, fmt.Errorf("erro ao escanear planos: %w", err)
		}
		plans = append(plans, plan)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return plans, nil
}

// Deactivate esconde o plano de novos assinantes sem afetar assinaturas vigentes
func (r *subscriptionPlanRepository) Deactivate(id string) error {
	query, args, err := squirrel.
		Update("subscription_plans").
		Set("is_active", false).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao desativar plano: %w", err)
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
