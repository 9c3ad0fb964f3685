package domain

import (
	"time"
)

// ArticleCounter identifica um contador diário de analytics de artigo.
// Os incrementos não são idempotentes: chamar duas vezes soma duas vezes,
// a deduplicação (ex: visitante único por sessão) é responsabilidade do caller.
type ArticleCounter string

const (
	CounterPageViews         ArticleCounter = "page_views"
	CounterUniqueVisitors    ArticleCounter = "unique_visitors"
	CounterSocialShares      ArticleCounter = "social_shares"
	CounterAffiliateClicks   ArticleCounter = "affiliate_clicks"
	CounterNewsletterSignups ArticleCounter = "newsletter_signups"
)

// ArticleCounters lista os contadores que podem ser incrementados por evento
var ArticleCounters = []ArticleCounter{
	CounterPageViews,
	CounterUniqueVisitors,
	CounterSocialShares,
	CounterAffiliateClicks,
	CounterNewsletterSignups,
}

// IsValidArticleCounter verifica se o contador informado é conhecido
func IsValidArticleCounter(counter ArticleCounter) bool {
	for _, c := range ArticleCounters {
		if c == counter {
			return true
		}
	}
	return false
}

// ArticleAnalyticsEntry representa os contadores de um artigo em um dia.
// Uma linha por (artigo, dia); contadores incrementados atomicamente por evento.
type ArticleAnalyticsEntry struct {
	ID                string    `json:"id"`
	ArticleID         string    `json:"article_id"`
	Date              time.Time `json:"date"`
	PageViews         int64     `json:"page_views"`
	UniqueVisitors    int64     `json:"unique_visitors"`
	TimeOnPageSeconds int64     `json:"time_on_page_seconds"`
	BounceRate        float64   `json:"bounce_rate"`
	SocialShares      int64     `json:"social_shares"`
	AdRevenueCents    int64     `json:"ad_revenue_cents"`
	AffiliateClicks   int64     `json:"affiliate_clicks"`
	NewsletterSignups int64     `json:"newsletter_signups"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// ArticleAnalyticsTotals agrega os contadores de uma janela.
// Linhas ausentes contam como zero, nunca como erro.
type ArticleAnalyticsTotals struct {
	PageViews         int64   `json:"page_views"`
	UniqueVisitors    int64   `json:"unique_visitors"`
	TimeOnPageSeconds int64   `json:"time_on_page_seconds"`
	AvgBounceRate     float64 `json:"avg_bounce_rate"`
	SocialShares      int64   `json:"social_shares"`
	AdRevenueCents    int64   `json:"ad_revenue_cents"`
	AffiliateClicks   int64   `json:"affiliate_clicks"`
	NewsletterSignups int64   `json:"newsletter_signups"`
}

// ArticlePerformanceSummary é a resposta do resumo de performance de um artigo
type ArticlePerformanceSummary struct {
	ArticleID        string                  `json:"article_id"`
	StartDate        string                  `json:"start_date"`
	EndDate          string                  `json:"end_date"`
	Totals           *ArticleAnalyticsTotals `json:"totals"`
	PerformanceScore float64                 `json:"performance_score"`
	PerformanceLevel string                  `json:"performance_level"`
}

// TagPerformance agrega métricas por tag de artigo
type TagPerformance struct {
	Tag            string `json:"tag"`
	Articles       int64  `json:"articles"`
	PageViews      int64  `json:"page_views"`
	AdRevenueCents int64  `json:"ad_revenue_cents"`
}
