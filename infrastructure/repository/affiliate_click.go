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
	affiliateClicksTable = "affiliate_link_stats als"
)

type AffiliateClickRepository interface {
	Create(click *domain.AffiliateClick) error
	ConvertMostRecentUnconverted(linkID string, commissionCents int64, cutoff, convertedAt time.Time) (*domain.AffiliateClick, error)
	WindowTotals(linkID string, start, end time.Time) (*domain.AffiliateClickTotals, error)
	ClicksByArticle(linkID string, start, end time.Time) ([]*domain.ArticleClickCount, error)
	WindowCommissionCents(creatorID int, start, end time.Time) (int64, error)
}

type affiliateClickRepository struct {
	conn *postgres.Connection
}

func NewAffiliateClickRepository(conn *postgres.Connection) AffiliateClickRepository {
	return &affiliateClickRepository{
		conn: conn,
	}
}

func (r *affiliateClickRepository) Create(click *domain.AffiliateClick) error {
	query, args, err := squirrel.
		Insert("affiliate_link_stats").
		Columns("id", "link_id", "article_id", "clicked_at", "hashed_ip_address", "user_agent", "referrer", "converted", "commission_cents").
		Values(
			click.ID,
			click.LinkID,
			click.ArticleID,
			click.ClickedAt,
			click.HashedIPAddress,
			click.UserAgent,
			click.Referrer,
			false,
			0,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao registrar clique: %w", err)
	}

	return nil
}

// ConvertMostRecentUnconverted marca como convertido o clique não convertido
// mais recente do link dentro da janela de atribuição. O UPDATE condicional com
// subselect é um único comando, portanto atômico sob conversões concorrentes:
// dois chamadores nunca convertem o mesmo clique duas vezes. Retorna
// ErrNoRowsAffected quando não existe clique elegível.
func (r *affiliateClickRepository) ConvertMostRecentUnconverted(linkID string, commissionCents int64, cutoff, convertedAt time.Time) (*domain.AffiliateClick, error) {
	query := `
		UPDATE affiliate_link_stats SET
			converted = TRUE,
			commission_cents = $1,
			conversion_date = $2
		WHERE id = (
			SELECT id FROM affiliate_link_stats
			WHERE link_id = $3
			  AND converted = FALSE
			  AND clicked_at >= $4
			ORDER BY clicked_at DESC
			LIMIT 1
		)
		RETURNING id, link_id, article_id, clicked_at, hashed_ip_address, user_agent, referrer, converted, commission_cents, conversion_date
	`

	click := &domain.AffiliateClick{}
	err := r.conn.QueryRow(query, commissionCents, convertedAt, linkID, cutoff).Scan(
		&click.ID,
		&click.LinkID,
		&click.ArticleID,
		&click.ClickedAt,
		&click.HashedIPAddress,
		&click.UserAgent,
		&click.Referrer,
		&click.Converted,
		&click.CommissionCents,
		&click.ConversionDate,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNoRowsAffected
		}
		return nil, fmt.Errorf("erro ao converter clique: %w", err)
	}

	return click, nil
}

// WindowTotals agrega cliques, visitantes únicos (hash de IP distinto),
// conversões e comissão de um link na janela [start, end)
func (r *affiliateClickRepository) WindowTotals(linkID string, start, end time.Time) (*domain.AffiliateClickTotals, error) {
	query, args, err := squirrel.
		Select(
			"COUNT(*)",
			"COUNT(DISTINCT als.hashed_ip_address)",
			"COUNT(*) FILTER (WHERE als.converted)",
			"COALESCE(SUM(als.commission_cents) FILTER (WHERE als.converted), 0)",
		).
		From(affiliateClicksTable).
		Where(squirrel.Eq{"als.link_id": linkID}).
		Where(squirrel.GtOrEq{"als.clicked_at": start}).
		Where(squirrel.Lt{"als.clicked_at": end}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	totals := &domain.AffiliateClickTotals{}
	err = r.conn.QueryRow(query, args...).Scan(
		&totals.TotalClicks,
		&totals.UniqueClicks,
		&totals.Conversions,
		&totals.TotalCommissionCents,
	)
	if err != nil {
		return nil, fmt.Errorf("erro ao agregar cliques da janela: %w", err)
	}

	return totals, nil
}

// ClicksByArticle agrupa cliques e conversões do link por artigo de origem
func (r *affiliateClickRepository) ClicksByArticle(linkID string, start, end time.Time) ([]*domain.ArticleClickCount, error) {
	query, args, err := squirrel.
		Select(
			"als.article_id",
			"COUNT(*)",
			"COUNT(*) FILTER (WHERE als.converted)",
		).
		From(affiliateClicksTable).
		Where(squirrel.Eq{"als.link_id": linkID}).
		Where(squirrel.NotEq{"als.article_id": nil}).
		Where(squirrel.GtOrEq{"als.clicked_at": start}).
		Where(squirrel.Lt{"als.clicked_at": end}).
		GroupBy("als.article_id").
		OrderBy("COUNT(*) DESC").
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

	counts := make([]*domain.ArticleClickCount, 0)
	for rows.Next() {
		count := &domain.ArticleClickCount{}
		if err := rows.Scan(&count.ArticleID, &count.Clicks, &count.Conversions); err != nil {
			return nil, fmt.Errorf("erro ao escanear cliques por artigo: %w", err)
		}
		counts = append(counts, count)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return counts, nil
}

// WindowCommissionCents soma as comissões convertidas de todos os links do
// criador na janela [start, end)
func (r *affiliateClickRepository) WindowCommissionCents(creatorID int, start, end time.Time) (int64, error) {
	query, args, err := squirrel.
		Select("COALESCE(SUM(als.commission_cents), 0)").
		From(affiliateClicksTable).
		Join("affiliate_links al ON al.id = als.link_id").
		Where(squirrel.Eq{"al.creator_id": creatorID, "als.converted": true}).
		Where(squirrel.GtOrEq{"als.conversion_date": start}).
		Where(squirrel.Lt{"als.conversion_date": end}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var total int64
	if err := r.conn.QueryRow(query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("erro ao somar comissões da janela: %w", err)
	}

	return total, nil
}
