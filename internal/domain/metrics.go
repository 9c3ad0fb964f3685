package domain

import (
	"math"

	"github.com/vfg2006/creator-platform-api/pkg/utils"
)

// Limiares de alta performance para receita de anúncios
const (
	HighPerformanceCTR      = 2.0
	HighPerformanceRPMCents = 500.0
)

// CalculateCTR calcula a taxa de cliques: clicks/impressions*100.
// Retorna 0 quando não há impressões para evitar divisão por zero.
func CalculateCTR(clicks, impressions int64) float64 {
	if impressions == 0 {
		return 0
	}
	return utils.RoundWithTwoDecimalPlace(float64(clicks) / float64(impressions) * 100)
}

// CalculateRPM calcula a receita por mil impressões: revenue/impressions*1000.
// Retorna 0 quando não há impressões.
func CalculateRPM(revenueCents, impressions int64) float64 {
	if impressions == 0 {
		return 0
	}
	return utils.RoundWithTwoDecimalPlace(float64(revenueCents) / float64(impressions) * 1000)
}

// IsHighPerformance aplica o limiar de alta performance: CTR > 2.0 E RPM > 500 centavos
func IsHighPerformance(ctr, rpm float64) bool {
	return ctr > HighPerformanceCTR && rpm > HighPerformanceRPMCents
}

// CalculateGrowthRate calcula o crescimento percentual entre duas janelas.
// Quando a janela anterior é zero: 100 se a atual tem valor, 0 caso contrário.
func CalculateGrowthRate(current, previous float64) float64 {
	if previous == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	return utils.RoundWithTwoDecimalPlace((current - previous) / previous * 100)
}

// CalculateConversionRate calcula conversions/clicks*100, 0 sem cliques
func CalculateConversionRate(conversions, clicks int64) float64 {
	if clicks == 0 {
		return 0
	}
	return utils.RoundWithTwoDecimalPlace(float64(conversions) / float64(clicks) * 100)
}

// CalculateAverageCommission calcula a comissão média por conversão, 0 sem conversões
func CalculateAverageCommission(totalCommissionCents, conversions int64) float64 {
	if conversions == 0 {
		return 0
	}
	return utils.RoundWithTwoDecimalPlace(float64(totalCommissionCents) / float64(conversions))
}

// CalculateCampaignEngagement calcula round(openRate*40 + clickRate*60), onde as
// taxas são frações dos emails entregues. Retorna 0 quando nada foi entregue.
func CalculateCampaignEngagement(delivered, opened, clicked int64) int {
	if delivered == 0 {
		return 0
	}
	openRate := float64(opened) / float64(delivered)
	clickRate := float64(clicked) / float64(delivered)
	return int(math.Round(openRate*40 + clickRate*60))
}

// CalculateChurnRate calcula a fração de assinaturas canceladas na janela.
// O denominador são as assinaturas ativas no início da janela mais as criadas nela.
func CalculateChurnRate(canceled, base int64) float64 {
	if base == 0 {
		return 0
	}
	return utils.RoundWithTwoDecimalPlace(float64(canceled) / float64(base) * 100)
}

// Pesos e tetos do score de performance de artigos. Cada termo é monótono no
// insumo e saturado no teto, mantendo o score em [0,100].
const (
	scoreViewsCap      = 40.0
	scoreEngagementCap = 30.0
	scoreRevenueCap    = 30.0

	viewsPerPoint             = 250.0
	engagementPerPoint        = 5.0
	revenueCentsPerScorePoint = 1000.0
)

// CalculatePerformanceScore combina visualizações, ações de engajamento e receita
// em um score 0-100
func CalculatePerformanceScore(pageViews, engagementActions, revenueCents int64) float64 {
	viewsScore := math.Min(scoreViewsCap, float64(pageViews)/viewsPerPoint)
	engagementScore := math.Min(scoreEngagementCap, float64(engagementActions)/engagementPerPoint)
	revenueScore := math.Min(scoreRevenueCap, float64(revenueCents)/revenueCentsPerScorePoint)

	return utils.RoundWithTwoDecimalPlace(viewsScore + engagementScore + revenueScore)
}

// PerformanceLevel classifica o score em faixas
func PerformanceLevel(score float64) string {
	switch {
	case score >= 80:
		return "excellent"
	case score >= 60:
		return "good"
	case score >= 40:
		return "average"
	default:
		return "poor"
	}
}
