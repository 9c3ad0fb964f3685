package domain

import (
	"time"
)

// RevenueSource identifica a origem da receita de anúncios
type RevenueSource string

const (
	SourceAdsense   RevenueSource = "adsense"
	SourceMediavine RevenueSource = "mediavine"
	SourceDirect    RevenueSource = "direct"
)

// RevenueSources lista as origens aceitas pela API
var RevenueSources = []RevenueSource{SourceAdsense, SourceMediavine, SourceDirect}

// IsValidRevenueSource verifica se a origem informada é conhecida
func IsValidRevenueSource(source RevenueSource) bool {
	for _, s := range RevenueSources {
		if s == source {
			return true
		}
	}
	return false
}

// RevenueRecord representa uma entrada diária de receita por origem.
// CTR e RPM são sempre recalculados a partir de clicks/impressions/revenue,
// nunca gravados de forma independente.
type RevenueRecord struct {
	ID           string        `json:"id"`
	CreatorID    int           `json:"creator_id"`
	Date         time.Time     `json:"date"`
	Source       RevenueSource `json:"source"`
	RevenueCents int64         `json:"revenue_cents"`
	Impressions  int64         `json:"impressions"`
	Clicks       int64         `json:"clicks"`
	CTR          float64       `json:"ctr"`
	RPM          float64       `json:"rpm"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// RecordRevenueRequest são os dados de entrada de uma importação diária de
// receita. Date usa o formato yyyy-mm-dd.
type RecordRevenueRequest struct {
	Date         string        `json:"date"`
	Source       RevenueSource `json:"source"`
	RevenueCents int64         `json:"revenue_cents"`
	Impressions  int64         `json:"impressions"`
	Clicks       int64         `json:"clicks"`
}

// SourceTotals agrega receita, impressões e cliques de uma origem numa janela
type SourceTotals struct {
	Source       RevenueSource `json:"source"`
	RevenueCents int64         `json:"revenue_cents"`
	Impressions  int64         `json:"impressions"`
	Clicks       int64         `json:"clicks"`
	CTR          float64       `json:"ctr"`
	RPM          float64       `json:"rpm"`
	Percentage   float64       `json:"percentage"` // participação na receita total da janela
}

// RevenueWindowReport é a resposta das métricas de receita em janela
type RevenueWindowReport struct {
	CreatorID         int             `json:"creator_id"`
	StartDate         string          `json:"start_date"`
	EndDate           string          `json:"end_date"`
	TotalRevenueCents int64           `json:"total_revenue_cents"`
	TotalImpressions  int64           `json:"total_impressions"`
	TotalClicks       int64           `json:"total_clicks"`
	CTR               float64         `json:"ctr"`
	RPM               float64         `json:"rpm"`
	HighPerformance   bool            `json:"high_performance"`
	Sources           []*SourceTotals `json:"sources"`
}

// MonthlyRevenue agrega receita por mês e origem
type MonthlyRevenue struct {
	Month        string        `json:"month"` // Formato mm-yyyy (ex: 01-2024)
	Source       RevenueSource `json:"source"`
	RevenueCents int64         `json:"revenue_cents"`
	Impressions  int64         `json:"impressions"`
	Clicks       int64         `json:"clicks"`
}

// DailyRevenue agrega receita de todas as origens em um dia
type DailyRevenue struct {
	Date         time.Time `json:"date"`
	RevenueCents int64     `json:"revenue_cents"`
	Impressions  int64     `json:"impressions"`
	Clicks       int64     `json:"clicks"`
}

// SourceComparison compara a janela atual com a janela anterior de mesmo tamanho
type SourceComparison struct {
	Source               RevenueSource `json:"source"`
	CurrentRevenueCents  int64         `json:"current_revenue_cents"`
	PreviousRevenueCents int64         `json:"previous_revenue_cents"`
	GrowthRate           float64       `json:"growth_rate"`
}
