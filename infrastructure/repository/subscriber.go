package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/creator-platform-api/infrastructure/database/postgres"
	"github.com/vfg2006/creator-platform-api/internal/domain"
)

type SubscriberRepository interface {
	Create(subscriber *domain.Subscriber) error
	GetByID(id string) (*domain.Subscriber, error)
	GetByEmail(creatorID int, email string) (*domain.Subscriber, error)
	ListActiveByCreator(creatorID int) ([]*domain.Subscriber, error)
	UpdateStatus(id string, status domain.SubscriberStatus) error
	UpdateEngagementScore(id string, score int) error
	CountActiveByCreator(creatorID int) (int64, error)
}

type subscriberRepository struct {
	conn *postgres.Connection
}

func NewSubscriberRepository(conn *postgres.Connection) SubscriberRepository {
	return &subscriberRepository{
		conn: conn,
	}
}

func (r *subscriberRepository) Create(subscriber *domain.Subscriber) error {
	query, args, err := squirrel.
		Insert("subscribers").
		Columns("id", "creator_id", "email", "name", "status", "engagement_score").
		Values(
			subscriber.ID,
			subscriber.CreatorID,
			subscriber.Email,
			subscriber.Name,
			subscriber.Status,
			subscriber.EngagementScore,
		).
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
		return fmt.Errorf("erro ao inserir assinante: %w", err)
	}

	return nil
}

const subscriberColumns = "s.id, s.creator_id, s.email, s.name, s.status, s.engagement_score, s.subscribed_at, s.updated_at"

func (r *subscriberRepository) GetByID(id string) (*domain.Subscriber, error) {
	return r.getByWhere(squirrel.Eq{"s.id": id})
}

func (r *subscriberRepository) GetByEmail(creatorID int, email string) (*domain.Subscriber, error) {
	return r.getByWhere(squirrel.Eq{"s.creator_id": creatorID, "s.email": email})
}

func (r *subscriberRepository) getByWhere(where squirrel.Eq) (*domain.Subscriber, error) {
	query, args, err := squirrel.
		Select(subscriberColumns).
		From("subscribers s").
		Where(where).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	subscriber := &domain.Subscriber{}
	err = r.conn.QueryRow(query, args...).Scan(
		&subscriber.ID,
		&subscriber.CreatorID,
		&subscriber.Email,
		&subscriber.Name,
		&subscriber.Status,
		&subscriber.EngagementScore,
		&subscriber.SubscribedAt,
		&subscriber.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear assinante: %w", err)
	}

	return subscriber, nil
}

// ListActiveByCreator lista os assinantes elegíveis a receber campanhas
func (r *subscriberRepository) ListActiveByCreator(creatorID int) ([]*domain.Subscriber, error) {
	query, args, err := squirrel.
		Select(subscriberColumns).
		From("subscribers s").
		Where(squirrel.Eq{"s.creator_id": creatorID, "s.status": domain.SubscriberActive}).
		OrderBy("s.subscribed_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	subscribers := make([]*domain.Subscriber, 0)
	for rows.Next() {
		subscriber := &domain.Subscriber{}
		err := rows.Scan(
			&subscriber.ID,
			&subscriber.CreatorID,
			&subscriber.Email,
			&subscriber.Name,
			&subscriber.Status,
			&subscriber.EngagementScore,
			&subscriber.SubscribedAt,
			&subscriber.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear assinantes: %w", err)
		}
		subscribers = append(subscribers, subscriber)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return subscribers, nil
}

func (r *subscriberRepository) UpdateStatus(id string, status domain.SubscriberStatus) error {
	return r.updateColumn(id, "status", status)
}

func (r *subscriberRepository) UpdateEngagementScore(id string, score int) error {
	return r.updateColumn(id, "engagement_score", score)
}

func (r *subscriberRepository) updateColumn(id, column string, value interface{}) error {
	query, args, err := squirrel.
		Update("subscribers").
		Set(column, value).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao atualizar assinante: %w", err)
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

func (r *subscriberRepository) CountActiveByCreator(creatorID int) (int64, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From("subscribers s").
		Where(squirrel.Eq{"s.creator_id": creatorID, "s.status": domain.SubscriberActive}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int64
	if err := r.conn.QueryRow(query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar assinantes ativos: %w", err)
	}

	return count, nil
}
