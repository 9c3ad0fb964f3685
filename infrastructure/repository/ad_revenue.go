package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/creator-platform-api/infrastructure/database/postgres"
	"github.com/vfg2006/creator-platform-api/internal/domain"
)

const (
	adRevenueTable = "ad_revenue ar"
)

type AdRevenueRepository interface {
	Upsert(record *domain.RevenueRecord) error
	GetByKey(creatorID int, date time.Time, source domain.RevenueSource) (*domain.RevenueRecord, error)
	WindowTotalsBySource(creatorID int, start, end time.Time) ([]*domain.SourceTotals, error)
	MonthlyBreakdown(creatorID int, months int) ([]*domain.MonthlyRevenue, error)
	TopPerformingDays(creatorID int, start, end time.Time, limit uint64) ([]*domain.DailyRevenue, error)
	WindowRevenueCents(creatorID int, start, end time.Time) (int64, error)
}

type adRevenueRepository struct {
	conn *postgres.Connection
}

func NewAdRevenueRepository(conn *postgres.Connection) AdRevenueRepository {
	return &adRevenueRepository{
		conn: conn,
	}
}

// Upsert insere ou mescla um registro de receita para (creator_id, date, source).
// A mesclagem soma os totais e recalcula ctr/rpm dentro do próprio comando, de
// forma atômica sob escritores concorrentes. CTR e RPM nunca são aceitos do
// chamador, sempre derivados dos totais mesclados.
func (r *adRevenueRepository) Upsert(record *domain.RevenueRecord) error {
	query := squirrel.StatementBuilder.
		Insert("ad_revenue").
		Columns("id", "creator_id", "date", "source", "revenue_cents", "impressions", "clicks", "ctr", "rpm").
		Values(
			record.ID,
			record.CreatorID,
			record.Date.Format(time.DateOnly),
			record.Source,
			record.RevenueCents,
			record.Impressions,
			record.Clicks,
			domain.CalculateCTR(record.Clicks, record.Impressions),
			domain.CalculateRPM(record.RevenueCents, record.Impressions),
		).
		Suffix(`
			ON CONFLICT (creator_id, date, source) DO UPDATE SET
				revenue_cents = ad_revenue.revenue_cents + EXCLUDED.revenue_cents,
				impressions = ad_revenue.impressions + EXCLUDED.impressions,
				clicks = ad_revenue.clicks + EXCLUDED.clicks,
				ctr = CASE
					WHEN ad_revenue.impressions + EXCLUDED.impressions = 0 THEN 0
					ELSE ROUND((ad_revenue.clicks + EXCLUDED.clicks)::numeric
						/ (ad_revenue.impressions + EXCLUDED.impressions) * 100, 2)
				END,
				rpm = CASE
					WHEN ad_revenue.impressions + EXCLUDED.impressions = 0 THEN 0
					ELSE ROUND((ad_revenue.revenue_cents + EXCLUDED.revenue_cents)::numeric
						/ (ad_revenue.impressions + EXCLUDED.impressions) * 1000, 2)
				END,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *adRevenueRepository) GetByKey(creatorID int, date time.Time, source domain.RevenueSource) (*domain.RevenueRecord, error) {
	query, args, err := squirrel.
		Select("ar.id, ar.creator_id, ar.date, ar.source, ar.revenue_cents, ar.impressions, ar.clicks, ar.ctr, ar.rpm, ar.created_at, ar.updated_at").
		From(adRevenueTable).
		Where(squirrel.Eq{
			"ar.creator_id": creatorID,
			"ar.date":       date.Format(time.DateOnly),
			"ar.source":     source,
		}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	record := &domain.RevenueRecord{}
	err = r.conn.QueryRow(query, args...).Scan(
		&record.ID,
		&record.CreatorID,
		&record.Date,
		&record.Source,
		&record.RevenueCents,
		&record.Impressions,
		&record.Clicks,
		&record.CTR,
		&record.RPM,
		&record.CreatedAt,
		&record.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear registro de receita: %w", err)
	}

	return record, nil
}

// WindowTotalsBySource soma receita, impressões e cliques por origem na janela
// [start, end). Linhas ausentes resultam em slice vazio, nunca em erro.
func (r *adRevenueRepository) WindowTotalsBySource(creatorID int, start, end time.Time) ([]*domain.SourceTotals, error) {
	query, args, err := squirrel.
		Select(
			"ar.source",
			"COALESCE(SUM(ar.revenue_cents), 0)",
			"COALESCE(SUM(ar.impressions), 0)",
			"COALESCE(SUM(ar.clicks), 0)",
		).
		From(adRevenueTable).
		Where(squirrel.Eq{"ar.creator_id": creatorID}).
		Where(squirrel.GtOrEq{"ar.date": start.Format(time.DateOnly)}).
		Where(squirrel.Lt{"ar.date": end.Format(time.DateOnly)}).
		GroupBy("ar.source").
		OrderBy("ar.source ASC").
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

	totals := make([]*domain.SourceTotals, 0)
	for rows.Next() {
		total := &domain.SourceTotals{}
		if err := rows.Scan(&total.Source, &total.RevenueCents, &total.Impressions, &total.Clicks); err != nil {
			return nil, fmt.Errorf("erro ao escanear totais por origem: %w", err)
		}
		totals = append(totals, total)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return totals, nil
}

// MonthlyBreakdown agrupa a receita por mês-calendário e origem. O corte de
// meses é calculado em Go e passado como parâmetro, nunca interpolado no SQL.
func (r *adRevenueRepository) MonthlyBreakdown(creatorID int, months int) ([]*domain.MonthlyRevenue, error) {
	cutoff := time.Now().UTC().AddDate(0, -months, 0)
	firstOfMonth := time.Date(cutoff.Year(), cutoff.Month(), 1, 0, 0, 0, 0, time.UTC)

	query, args, err := squirrel.
		Select(
			"TO_CHAR(DATE_TRUNC('month', ar.date), 'MM-YYYY') AS month",
			"ar.source",
			"COALESCE(SUM(ar.revenue_cents), 0)",
			"COALESCE(SUM(ar.impressions), 0)",
			"COALESCE(SUM(ar.clicks), 0)",
		).
		From(adRevenueTable).
		Where(squirrel.Eq{"ar.creator_id": creatorID}).
		Where(squirrel.GtOrEq{"ar.date": firstOfMonth.Format(time.DateOnly)}).
		GroupBy("DATE_TRUNC('month', ar.date)", "ar.source").
		OrderBy("DATE_TRUNC('month', ar.date) ASC", "ar.source ASC").
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

	breakdown := make([]*domain.MonthlyRevenue, 0)
	for rows.Next() {
		entry := &domain.MonthlyRevenue{}
		if err := rows.Scan(&entry.Month, &entry.Source, &entry.RevenueCents, &entry.Impressions, &entry.Clicks); err != nil {
			return nil, fmt.Errorf("erro ao escanear receita mensal: %w", err)
		}
		breakdown = append(breakdown, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return breakdown, nil
}

// TopPerformingDays ordena os dias da janela por receita decrescente, com
// desempate estável pela data crescente.
func (r *adRevenueRepository) TopPerformingDays(creatorID int, start, end time.Time, limit uint64) ([]*domain.DailyRevenue, error) {
	query, args, err := squirrel.
		Select(
			"ar.date",
			"COALESCE(SUM(ar.revenue_cents), 0) AS revenue_cents",
			"COALESCE(SUM(ar.impressions), 0)",
			"COALESCE(SUM(ar.clicks), 0)",
		).
		From(adRevenueTable).
		Where(squirrel.Eq{"ar.creator_id": creatorID}).
		Where(squirrel.GtOrEq{"ar.date": start.Format(time.DateOnly)}).
		Where(squirrel.Lt{"ar.date": end.Format(time.DateOnly)}).
		GroupBy("ar.date").
		OrderBy("revenue_cents DESC", "ar.date ASC").
		Limit(limit).
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

	days := make([]*domain.DailyRevenue, 0)
	for rows.Next() {
		day := &domain.DailyRevenue{}
		if err := rows.Scan(&day.Date, &day.RevenueCents, &day.Impressions, &day.Clicks); err != nil {
			return nil, fmt.Errorf("erro ao escanear receita diária: %w", err)
		}
		days = append(days, day)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return days, nil
}

// WindowRevenueCents soma a receita de anúncios da janela [start, end)
func (r *adRevenueRepository) WindowRevenueCents(creatorID int, start, end time.Time) (int64, error) {
	query, args, err := squirrel.
		Select("COALESCE(SUM(ar.revenue_cents), 0)").
		From(adRevenueTable).
		Where(squirrel.Eq{"ar.creator_id": creatorID}).
		Where(squirrel.GtOrEq{"ar.date": start.Format(time.DateOnly)}).
		Where(squirrel.Lt{"ar.date": end.Format(time.DateOnly)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var total int64
	if err := r.conn.QueryRow(query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("erro ao somar receita da janela: %w", err)
	}

	return total, nil
}
