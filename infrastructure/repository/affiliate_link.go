package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/creator-platform-api/infrastructure/database/postgres"
	"github.com/vfg2006/creator-platform-api/internal/domain"
)

const (
	affiliateLinksTable = "affiliate_links al"
)

type AffiliateLinkRepository interface {
	Create(link *domain.AffiliateLink) error
	GetByID(id string) (*domain.AffiliateLink, error)
	GetByTrackingCode(code string) (*domain.AffiliateLink, error)
	ListByCreator(creatorID int) ([]*domain.AffiliateLink, error)
	Update(link *domain.AffiliateLink) error
	Deactivate(id string) error
	HardDelete(id string) error
	ClickCount(linkID string) (int64, error)
}

type affiliateLinkRepository struct {
	conn *postgres.Connection
}

func NewAffiliateLinkRepository(conn *postgres.Connection) AffiliateLinkRepository {
	return &affiliateLinkRepository{
		conn: conn,
	}
}

func (r *affiliateLinkRepository) Create(link *domain.AffiliateLink) error {
	query, args, err := squirrel.
		Insert("affiliate_links").
		Columns("id", "creator_id", "name", "original_url", "tracking_code", "network", "commission_rate", "category", "is_active").
		Values(
			link.ID,
			link.CreatorID,
			link.Name,
			link.OriginalURL,
			link.TrackingCode,
			link.Network,
			link.CommissionRate,
			link.Category,
			link.IsActive,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == uniqueViolationCode {
			return ErrDuplicateKey
		}
		return fmt.Errorf("erro ao inserir link de afiliado: %w", err)
	}

	return nil
}

func (r *affiliateLinkRepository) GetByID(id string) (*domain.AffiliateLink, error) {
	return r.getByColumn("al.id", id)
}

func (r *affiliateLinkRepository) GetByTrackingCode(code string) (*domain.AffiliateLink, error) {
	return r.getByColumn("al.tracking_code", code)
}

func (r *affiliateLinkRepository) getByColumn(column, value string) (*domain.AffiliateLink, error) {
	query, args, err := squirrel.
		Select("al.id, al.creator_id, al.name, al.original_url, al.tracking_code, al.network, al.commission_rate, al.category, al.is_active, al.created_at, al.updated_at").
		From(affiliateLinksTable).
		Where(squirrel.Eq{column: value}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	link, err := r.scanLink(r.conn.QueryRow(query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear link de afiliado: %w", err)
	}

	return link, nil
}

func (r *affiliateLinkRepository) ListByCreator(creatorID int) ([]*domain.AffiliateLink, error) {
	query, args, err := squirrel.
		Select("al.id, al.creator_id, al.name, al.original_url, al.tracking_code, al.network, al.commission_rate, al.category, al.is_active, al.created_at, al.updated_at").
		From(affiliateLinksTable).
		Where(squirrel.Eq{"al.creator_id": creatorID}).
		OrderBy("al.created_at DESC").
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

	links := make([]*domain.AffiliateLink, 0)
	for rows.Next() {
		link := &domain.AffiliateLink{}
		err := rows.Scan(
			&link.ID,
			&link.CreatorID,
			&link.Name,
			&link.OriginalURL,
			&link.TrackingCode,
			&link.Network,
			&link.CommissionRate,
			&link.Category,
			&link.IsActive,
			&link.CreatedAt,
			&link.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear links de afiliado: %w", err)
		}
		links = append(links, link)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return links, nil
}

func (r *affiliateLinkRepository) Update(link *domain.AffiliateLink) error {
	query, args, err := squirrel.
		Update("affiliate_links").
		Set("name", link.Name).
		Set("original_url", link.OriginalURL).
		Set("commission_rate", link.CommissionRate).
		Set("category", link.Category).
		Set("is_active", link.IsActive).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": link.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao atualizar link de afiliado: %w", err)
	}

	return nil
}

// Deactivate marca o link como inativo sem remover o histórico de cliques
func (r *affiliateLinkRepository) Deactivate(id string) error {
	query, args, err := squirrel.
		Update("affiliate_links").
		Set("is_active", false).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao desativar link de afiliado: %w", err)
	}

	return nil
}

// HardDelete remove o link definitivamente. Só deve ser chamado quando não
// existem cliques registrados para o link.
func (r *affiliateLinkRepository) HardDelete(id string) error {
	query, args, err := squirrel.
		Delete("affiliate_links").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao remover link de afiliado: %w", err)
	}

	return nil
}

func (r *affiliateLinkRepository) ClickCount(linkID string) (int64, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(affiliateClicksTable).
		Where(squirrel.Eq{"als.link_id": linkID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int64
	if err := r.conn.QueryRow(query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar cliques do link: %w", err)
	}

	return count, nil
}

func (r *affiliateLinkRepository) scanLink(row *sql.Row) (*domain.AffiliateLink, error) {
	link := &domain.AffiliateLink{}
	err := row.Scan(
		&link.ID,
		&link.CreatorID,
		&link.Name,
		&link.OriginalURL,
		&link.TrackingCode,
		&link.Network,
		&link.CommissionRate,
		&link.Category,
		&link.IsActive,
		&link.CreatedAt,
		&link.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return link, nil
}
