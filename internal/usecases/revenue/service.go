package revenue

import (
	"time"

	"github.com/vfg2006/creator-platform-api/infrastructure/repository"
	"github.com/vfg2006/creator-platform-api/internal/domain"
	"github.com/vfg2006/creator-platform-api/pkg/apiErrors"
	"github.com/vfg2006/creator-platform-api/pkg/utils"
)

type RevenueManager interface {
	RecordRevenue(creatorID int, req *domain.RecordRevenueRequest) (*domain.RevenueRecord, error)
	GetWindowReport(creatorID int, period domain.Period) (*domain.RevenueWindowReport, error)
	GetMonthlyBreakdown(creatorID int, months int) ([]*domain.MonthlyRevenue, error)
	GetTopPerformingDays(creatorID int, period domain.Period, limit uint64) ([]*domain.DailyRevenue, error)
	CompareSources(creatorID int, period domain.Period) ([]*domain.SourceComparison, error)
}

type Service struct {
	revenueRepo repository.AdRevenueRepository
}

func NewService(revenueRepo repository.AdRevenueRepository) RevenueManager {
	return &Service{
		revenueRepo: revenueRepo,
	}
}

// RecordRevenue grava (ou mescla) a entrada diária de receita de uma origem.
// Importações repetidas do mesmo dia somam os valores e recalculam CTR e RPM
// no banco, em uma única operação.
func (s *Service) RecordRevenue(creatorID int, req *domain.RecordRevenueRequest) (*domain.RevenueRecord, error) {
	date, err := utils.ParseDate(req.Date)
	if err != nil {
		return nil, NewRevenueError(ErrInvalidDate, apiErrors.ErrInvalidFormat, "Data deve estar no formato yyyy-mm-dd")
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)
	if date.After(today) {
		return nil, NewRevenueError(ErrFutureDate, apiErrors.ErrOutOfRange, "Não é possível registrar receita de datas futuras")
	}

	if !domain.IsValidRevenueSource(req.Source) {
		return nil, NewRevenueError(ErrInvalidSource, apiErrors.ErrInvalidRequest, "Origem deve ser adsense, mediavine ou direct")
	}

	if req.RevenueCents < 0 || req.Impressions < 0 || req.Clicks < 0 {
		return nil, NewRevenueError(ErrNegativeValue, apiErrors.ErrOutOfRange, "Receita, impressões e cliques devem ser não-negativos")
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, NewRevenueError(err, apiErrors.ErrInternalServer, "Erro ao gerar identificador")
	}

	record := &domain.RevenueRecord{
		ID:           id,
		CreatorID:    creatorID,
		Date:         *date,
		Source:       req.Source,
		RevenueCents: req.RevenueCents,
		Impressions:  req.Impressions,
		Clicks:       req.Clicks,
		CTR:          domain.CalculateCTR(req.Clicks, req.Impressions),
		RPM:          domain.CalculateRPM(req.RevenueCents, req.Impressions),
	}

	if err := s.revenueRepo.Upsert(record); err != nil {
		return nil, NewRevenueError(err, apiErrors.ErrDatabaseOperation, "Erro ao gravar receita")
	}

	merged, err := s.revenueRepo.GetByKey(creatorID, *date, req.Source)
	if err != nil {
		return nil, NewRevenueError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar receita gravada")
	}
	if merged != nil {
		return merged, nil
	}

	return record, nil
}

// GetWindowReport agrega a receita da janela por origem, com participação
// percentual de cada origem no total
func (s *Service) GetWindowReport(creatorID int, period domain.Period) (*domain.RevenueWindowReport, error) {
	timeframe, err := domain.ResolveTimeframe(period, time.Now())
	if err != nil {
		return nil, NewRevenueError(ErrInvalidPeriod, apiErrors.ErrInvalidRequest, err.Error())
	}

	sources, err := s.revenueRepo.WindowTotalsBySource(creatorID, timeframe.Start, timeframe.End)
	if err != nil {
		return nil, NewRevenueError(err, apiErrors.ErrDatabaseOperation, "Erro ao agregar receita da janela")
	}

	report := &domain.RevenueWindowReport{
		CreatorID: creatorID,
		StartDate: timeframe.Start.Format(time.DateOnly),
		EndDate:   timeframe.End.AddDate(0, 0, -1).Format(time.DateOnly),
		Sources:   sources,
	}

	for _, source := range sources {
		report.TotalRevenueCents += source.RevenueCents
		report.TotalImpressions += source.Impressions
		report.TotalClicks += source.Clicks
	}

	for _, source := range sources {
		if report.TotalRevenueCents > 0 {
			source.Percentage = utils.RoundWithTwoDecimalPlace(
				float64(source.RevenueCents) / float64(report.TotalRevenueCents) * 100,
			)
		}
	}

	report.CTR = domain.CalculateCTR(report.TotalClicks, report.TotalImpressions)
	report.RPM = domain.CalculateRPM(report.TotalRevenueCents, report.TotalImpressions)
	report.HighPerformance = domain.IsHighPerformance(report.CTR, report.RPM)

	return report, nil
}

func (s *Service) GetMonthlyBreakdown(creatorID int, months int) ([]*domain.MonthlyRevenue, error) {
	if months <= 0 {
		months = 12
	}

	breakdown, err := s.revenueRepo.MonthlyBreakdown(creatorID, months)
	if err != nil {
		return nil, NewRevenueError(err, apiErrors.ErrDatabaseOperation, "Erro ao agregar receita mensal")
	}

	return breakdown, nil
}

func (s *Service) GetTopPerformingDays(creatorID int, period domain.Period, limit uint64) ([]*domain.DailyRevenue, error) {
	timeframe, err := domain.ResolveTimeframe(period, time.Now())
	if err != nil {
		return nil, NewRevenueError(ErrInvalidPeriod, apiErrors.ErrInvalidRequest, err.Error())
	}

	if limit == 0 || limit > 30 {
		limit = 5
	}

	days, err := s.revenueRepo.TopPerformingDays(creatorID, timeframe.Start, timeframe.End, limit)
	if err != nil {
		return nil, NewRevenueError(err, apiErrors.ErrDatabaseOperation, "Erro ao buscar melhores dias")
	}

	return days, nil
}

// CompareSources calcula o crescimento de cada origem entre a janela atual e a
// janela imediatamente anterior de mesmo tamanho. Para o período "all" não há
// janela de comparação e o resultado é vazio.
func (s *Service) CompareSources(creatorID int, period domain.Period) ([]*domain.SourceComparison, error) {
	timeframe, err := domain.ResolveTimeframe(period, time.Now())
	if err != nil {
		return nil, NewRevenueError(ErrInvalidPeriod, apiErrors.ErrInvalidRequest, err.Error())
	}

	if !timeframe.HasComparison() {
		return []*domain.SourceComparison{}, nil
	}

	current, err := s.revenueRepo.WindowTotalsBySource(creatorID, timeframe.Start, timeframe.End)
	if err != nil {
		return nil, NewRevenueError(err, apiErrors.ErrDatabaseOperation, "Erro ao agregar janela atual")
	}

	previous, err := s.revenueRepo.WindowTotalsBySource(creatorID, *timeframe.PreviousStart, *timeframe.PreviousEnd)
	if err != nil {
		return nil, NewRevenueError(err, apiErrors.ErrDatabaseOperation, "Erro ao agregar janela anterior")
	}

	previousBySource := make(map[domain.RevenueSource]int64, len(previous))
	for _, source := range previous {
		previousBySource[source.Source] = source.RevenueCents
	}

	comparisons := make([]*domain.SourceComparison, 0, len(current))
	seen := make(map[domain.RevenueSource]bool, len(current))
	for _, source := range current {
		seen[source.Source] = true
		comparisons = append(comparisons, &domain.SourceComparison{
			Source:               source.Source,
			CurrentRevenueCents:  source.RevenueCents,
			PreviousRevenueCents: previousBySource[source.Source],
			GrowthRate:           domain.CalculateGrowthRate(float64(source.RevenueCents), float64(previousBySource[source.Source])),
		})
	}

	// Origens com receita apenas na janela anterior aparecem com queda de 100%
	for _, source := range previous {
		if seen[source.Source] || source.RevenueCents == 0 {
			continue
		}
		comparisons = append(comparisons, &domain.SourceComparison{
			Source:               source.Source,
			PreviousRevenueCents: source.RevenueCents,
			GrowthRate:           domain.CalculateGrowthRate(0, float64(source.RevenueCents)),
		})
	}

	return comparisons, nil
}
