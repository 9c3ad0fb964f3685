package repository

import (
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/creator-platform-api/infrastructure/database/postgres"
	"github.com/vfg2006/creator-platform-api/internal/domain"
)

const (
	articleAnalyticsTable = "article_analytics aa"
)

// counterColumns restringe os contadores incrementáveis às colunas conhecidas.
// Identificadores nunca vêm do request sem passar por este mapa.
var counterColumns = map[domain.ArticleCounter]string{
	domain.CounterPageViews:         "page_views",
	domain.CounterUniqueVisitors:    "unique_visitors",
	domain.CounterSocialShares:      "social_shares",
	domain.CounterAffiliateClicks:   "affiliate_clicks",
	domain.CounterNewsletterSignups: "newsletter_signups",
}

type ArticleAnalyticsRepository interface {
	IncrementCounter(id, articleID string, date time.Time, counter domain.ArticleCounter) error
	AddTimeOnPage(id, articleID string, date time.Time, seconds int64) error
	AddAdRevenue(id, articleID string, date time.Time, revenueCents int64) error
	SetBounceRate(id, articleID string, date time.Time, rate float64) error
	ArticleWindowTotals(articleID string, start, end time.Time) (*domain.ArticleAnalyticsTotals, error)
	CreatorWindowTotals(creatorID int, start, end time.Time) (*domain.ArticleAnalyticsTotals, error)
	TagPerformance(creatorID int, start, end time.Time) ([]*domain.TagPerformance, error)
}

type articleAnalyticsRepository struct {
	conn *postgres.Connection
}

func NewArticleAnalyticsRepository(conn *postgres.Connection) ArticleAnalyticsRepository {
	return &articleAnalyticsRepository{
		conn: conn,
	}
}

// IncrementCounter soma 1 ao contador do dia via upsert em (article_id, date).
// O incremento é atômico sob escritores concorrentes e deliberadamente não
// idempotente: chamar duas vezes soma duas vezes.
func (r *articleAnalyticsRepository) IncrementCounter(id, articleID string, date time.Time, counter domain.ArticleCounter) error {
	column, ok := counterColumns[counter]
	if !ok {
		return fmt.Errorf("contador desconhecido: %s", counter)
	}

	query := squirrel.StatementBuilder.
		Insert("article_analytics").
		Columns("id", "article_id", "date", column).
		Values(id, articleID, date.Format(time.DateOnly), 1).
		Suffix(fmt.Sprintf(`
			ON CONFLICT (article_id, date) DO UPDATE SET
				%s = article_analytics.%s + 1,
				updated_at = NOW()
		`, column, column)).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		return fmt.Errorf("erro ao incrementar contador %s: %w", column, err)
	}

	return nil
}

// AddTimeOnPage acumula segundos de permanência no dia do artigo
func (r *articleAnalyticsRepository) AddTimeOnPage(id, articleID string, date time.Time, seconds int64) error {
	return r.addToColumn(id, articleID, date, "time_on_page_seconds", seconds)
}

// AddAdRevenue acumula a receita de anúncios atribuída ao artigo no dia
func (r *articleAnalyticsRepository) AddAdRevenue(id, articleID string, date time.Time, revenueCents int64) error {
	return r.addToColumn(id, articleID, date, "ad_revenue_cents", revenueCents)
}

func (r *articleAnalyticsRepository) addToColumn(id, articleID string, date time.Time, column string, amount int64) error {
	query := squirrel.StatementBuilder.
		Insert("article_analytics").
		Columns("id", "article_id", "date", column).
		Values(id, articleID, date.Format(time.DateOnly), amount).
		Suffix(fmt.Sprintf(`
			ON CONFLICT (article_id, date) DO UPDATE SET
				%s = article_analytics.%s + EXCLUDED.%s,
				updated_at = NOW()
		`, column, column, column)).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		return fmt.Errorf("erro ao acumular %s: %w", column, err)
	}

	return nil
}

// SetBounceRate grava a taxa de rejeição do dia do artigo. A taxa é uma
// medida do dia inteiro, então o último reporte substitui o anterior em vez
// de acumular.
func (r *articleAnalyticsRepository) SetBounceRate(id, articleID string, date time.Time, rate float64) error {
	query := squirrel.StatementBuilder.
		Insert("article_analytics").
		Columns("id", "article_id", "date", "bounce_rate").
		Values(id, articleID, date.Format(time.DateOnly), rate).
		Suffix(`
			ON CONFLICT (article_id, date) DO UPDATE SET
				bounce_rate = EXCLUDED.bounce_rate,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		return fmt.Errorf("erro ao gravar taxa de rejeição: %w", err)
	}

	return nil
}

// ArticleWindowTotals agrega os contadores de um artigo na janela [start, end).
// COALESCE garante zeros quando não há linhas, nunca erro.
func (r *articleAnalyticsRepository) ArticleWindowTotals(articleID string, start, end time.Time) (*domain.ArticleAnalyticsTotals, error) {
	builder := squirrel.
		Select(
			"COALESCE(SUM(aa.page_views), 0)",
			"COALESCE(SUM(aa.unique_visitors), 0)",
			"COALESCE(SUM(aa.time_on_page_seconds), 0)",
			"COALESCE(AVG(aa.bounce_rate), 0)",
			"COALESCE(SUM(aa.social_shares), 0)",
			"COALESCE(SUM(aa.ad_revenue_cents), 0)",
			"COALESCE(SUM(aa.affiliate_clicks), 0)",
			"COALESCE(SUM(aa.newsletter_signups), 0)",
		).
		From(articleAnalyticsTable).
		Where(squirrel.Eq{"aa.article_id": articleID}).
		Where(squirrel.GtOrEq{"aa.date": start.Format(time.DateOnly)}).
		Where(squirrel.Lt{"aa.date": end.Format(time.DateOnly)})

	return r.scanTotals(builder)
}

// CreatorWindowTotals agrega os contadores de todos os artigos do criador
func (r *articleAnalyticsRepository) CreatorWindowTotals(creatorID int, start, end time.Time) (*domain.ArticleAnalyticsTotals, error) {
	builder := squirrel.
		Select(
			"COALESCE(SUM(aa.page_views), 0)",
			"COALESCE(SUM(aa.unique_visitors), 0)",
			"COALESCE(SUM(aa.time_on_page_seconds), 0)",
			"COALESCE(AVG(aa.bounce_rate), 0)",
			"COALESCE(SUM(aa.social_shares), 0)",
			"COALESCE(SUM(aa.ad_revenue_cents), 0)",
			"COALESCE(SUM(aa.affiliate_clicks), 0)",
			"COALESCE(SUM(aa.newsletter_signups), 0)",
		).
		From(articleAnalyticsTable).
		Join("articles a ON a.id = aa.article_id").
		Where(squirrel.Eq{"a.creator_id": creatorID}).
		Where(squirrel.GtOrEq{"aa.date": start.Format(time.DateOnly)}).
		Where(squirrel.Lt{"aa.date": end.Format(time.DateOnly)})

	return r.scanTotals(builder)
}

func (r *articleAnalyticsRepository) scanTotals(builder squirrel.SelectBuilder) (*domain.ArticleAnalyticsTotals, error) {
	query, args, err := builder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	totals := &domain.ArticleAnalyticsTotals{}
	err = r.conn.QueryRow(query, args...).Scan(
		&totals.PageViews,
		&totals.UniqueVisitors,
		&totals.TimeOnPageSeconds,
		&totals.AvgBounceRate,
		&totals.SocialShares,
		&totals.AdRevenueCents,
		&totals.AffiliateClicks,
		&totals.NewsletterSignups,
	)
	if err != nil {
		return nil, fmt.Errorf("erro ao agregar analytics da janela: %w", err)
	}

	return totals, nil
}

// TagPerformance agrega views e receita por tag dos artigos do criador.
// As tags são desaninhadas do array da tabela de artigos.
func (r *articleAnalyticsRepository) TagPerformance(creatorID int, start, end time.Time) ([]*domain.TagPerformance, error) {
	query, args, err := squirrel.
		Select(
			"t.tag",
			"COUNT(DISTINCT a.id)",
			"COALESCE(SUM(aa.page_views), 0)",
			"COALESCE(SUM(aa.ad_revenue_cents), 0)",
		).
		From("articles a").
		CrossJoin("LATERAL UNNEST(a.tags) AS t(tag)").
		LeftJoin("article_analytics aa ON aa.article_id = a.id AND aa.date >= ? AND aa.date < ?",
			start.Format(time.DateOnly), end.Format(time.DateOnly)).
		Where(squirrel.Eq{"a.creator_id": creatorID}).
		GroupBy("t.tag").
		OrderBy("COALESCE(SUM(aa.page_views), 0) DESC").
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

	tags := make([]*domain.TagPerformance, 0)
	for rows.Next() {
		tag := &domain.TagPerformance{}
		if err := rows.Scan(&tag.Tag, &tag.Articles, &tag.PageViews, &tag.AdRevenueCents); err != nil {
			return nil, fmt.Errorf("erro ao escanear performance por tag: %w", err)
		}
		tags = append(tags, tag)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return tags, nil
}
