package domain

import "time"

// ArticleStatus é o estado de publicação de um artigo
type ArticleStatus string

const (
	ArticleDraft     ArticleStatus = "draft"
	ArticlePublished ArticleStatus = "published"
	ArticleArchived  ArticleStatus = "archived"
)

// Article representa um artigo publicado por um criador
type Article struct {
	ID          string        `json:"id"`
	CreatorID   int           `json:"creator_id"`
	Title       string        `json:"title"`
	Slug        string        `json:"slug"`
	Tags        []string      `json:"tags"`
	Status      ArticleStatus `json:"status"`
	PublishedAt *time.Time    `json:"published_at,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// CreateArticleRequest são os dados de entrada para criação de artigo
type CreateArticleRequest struct {
	Title string   `json:"title"`
	Slug  string   `json:"slug"`
	Tags  []string `json:"tags"`
}

// PublishingCadence resume o ritmo de publicação numa janela
type PublishingCadence struct {
	Published       int64   `json:"published"`
	PerWeek         float64 `json:"per_week"`
	DaysSinceLatest int     `json:"days_since_latest"`
}
