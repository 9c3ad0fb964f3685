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
	articlesTable = "articles a"
)

type ArticleRepository interface {
	Create(article *domain.Article) error
	GetByID(id string) (*domain.Article, error)
	ListByCreator(creatorID int) ([]*domain.Article, error)
	Publish(id string, publishedAt time.Time) error
	PublishingCadence(creatorID int, start, end time.Time) (*domain.PublishingCadence, error)
}

type articleRepository struct {
	conn *postgres.Connection
}

func NewArticleRepository(conn *postgres.Connection) ArticleRepository {
	return &articleRepository{
		conn: conn,
	}
}

func (r *articleRepository) Create(article *domain.Article) error {
	query, args, err := squirrel.
		Insert("articles").
		Columns("id", "creator_id", "title", "slug", "tags", "status").
		Values(
			article.ID,
			article.CreatorID,
			article.Title,
			article.Slug,
			pq.Array(article.Tags),
			article.Status,
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
		return fmt.Errorf("erro ao inserir artigo: %w", err)
	}

	return nil
}

func (r *articleRepository) GetByID(id string) (*domain.Article, error) {
	query, args, err := squirrel.
		Select("a.id, a.creator_id, a.title, a.slug, a.tags, a.status, a.published_at, a.created_at, a.updated_at").
		From(articlesTable).
		Where(squirrel.Eq{"a.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	article := &domain.Article{}
	err = r.conn.QueryRow(query, args...).Scan(
		&article.ID,
		&article.CreatorID,
		&article.Title,
		&article.Slug,
		pq.Array(&article.Tags),
		&article.Status,
		&article.PublishedAt,
		&article.CreatedAt,
		&article.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear artigo: %w", err)
	}

	return article, nil
}

func (r *articleRepository) ListByCreator(creatorID int) ([]*domain.Article, error) {
	query, args, err := squirrel.
		Select("a.id, a.creator_id, a.title, a.slug, a.tags, a.status, a.published_at, a.created_at, a.updated_at").
		From(articlesTable).
		Where(squirrel.Eq{"a.creator_id": creatorID}).
		OrderBy("a.created_at DESC").
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

	articles := make([]*domain.Article, 0)
	for rows.Next() {
		article := &domain.Article{}
		err := rows.Scan(
			&article.ID,
			&article.CreatorID,
			&article.Title,
			&article.Slug,
			pq.Array(&article.Tags),
			&article.Status,
			&article.PublishedAt,
			&article.CreatedAt,
			&article.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear artigos: %w", err)
		}
		articles = append(articles, article)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return articles, nil
}

func (r *articleRepository) Publish(id string, publishedAt time.Time) error {
	query, args, err := squirrel.
		Update("articles").
		Set("status", domain.ArticlePublished).
		Set("published_at", publishedAt).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao publicar artigo: %w", err)
	}

	return nil
}

// PublishingCadence resume o ritmo de publicação do criador na janela
func (r *articleRepository) PublishingCadence(creatorID int, start, end time.Time) (*domain.PublishingCadence, error) {
	query, args, err := squirrel.
		Select().
		Column(squirrel.Expr("COUNT(*) FILTER (WHERE a.published_at >= ? AND a.published_at < ?)", start, end)).
		Column("COALESCE(EXTRACT(DAY FROM NOW() - MAX(a.published_at))::int, -1)").
		From(articlesTable).
		Where(squirrel.Eq{"a.creator_id": creatorID, "a.status": domain.ArticlePublished}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	cadence := &domain.PublishingCadence{}
	var daysSince int
	if err := r.conn.QueryRow(query, args...).Scan(&cadence.Published, &daysSince); err != nil {
		return nil, fmt.Errorf("erro ao calcular cadência de publicação: %w", err)
	}

	cadence.DaysSinceLatest = daysSince

	weeks := end.Sub(start).Hours() / 24 / 7
	if weeks > 0 {
		cadence.PerWeek = float64(cadence.Published) / weeks
	}

	return cadence, nil
}
