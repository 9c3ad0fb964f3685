package dashboarding

import (
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/creator-platform-api/infrastructure/repository"
	"github.com/vfg2006/creator-platform-api/internal/domain"
	"github.com/vfg2006/creator-platform-api/pkg/apiErrors"
	"github.com/vfg2006/creator-platform-api/pkg/utils"
)

type DashboardManager interface {
	GetDashboard(creatorID int, period domain.Period) (*domain.DashboardReport, error)
}

type Service struct {
	revenueRepo      repository.AdRevenueRepository
	clickRepo        repository.AffiliateClickRepository
	analyticsRepo    repository.ArticleAnalyticsRepository
	articleRepo      repository.ArticleRepository
	subscriptionRepo repository.SubscriptionRepository
}

func NewService(
	revenueRepo repository.AdRevenueRepository,
	clickRepo repository.AffiliateClickRepository,
	analyticsRepo repository.ArticleAnalyticsRepository,
	articleRepo repository.ArticleRepository,
	subscriptionRepo repository.SubscriptionRepository,
) DashboardManager {
	return &Service{
		revenueRepo:      revenueRepo,
		clickRepo:        clickRepo,
		analyticsRepo:    analyticsRepo,
		articleRepo:      articleRepo,
		subscriptionRepo: subscriptionRepo,
	}
}

// GetDashboard monta a visão unificada do criador para a janela. As seções
// são agregadas em paralelo; a primeira falha aborta a resposta inteira.
func (s *Service) GetDashboard(creatorID int, period domain.Period) (*domain.DashboardReport, error) {
	timeframe, err := domain.ResolveTimeframe(period, time.Now())
	if err != nil {
		return nil, NewDashboardError(fmt.Errorf("%w: %s", ErrInvalidPeriod, period), apiErrors.ErrInvalidRequest, "Período deve ser 7d, 30d, 90d, 1y ou all")
	}

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error

		currentTotals  *domain.ArticleAnalyticsTotals
		previousTotals *domain.ArticleAnalyticsTotals
		adRevenue      int64
		prevAdRevenue  int64
		affiliateCents int64
		prevAffiliate  int64
		subMetrics     *domain.SubscriptionMetrics
		prevSubRevenue int64
		tags           []*domain.TagPerformance
		cadence        *domain.PublishingCadence
	)

	fail := func(section string, err error) {
		mu.Lock()
		defer mu.Unlock()
		errs = append(errs, fmt.Errorf("erro na seção %s: %w", section, err))
	}

	wg.Add(5)

	go func() {
		defer wg.Done()

		totals, err := s.analyticsRepo.CreatorWindowTotals(creatorID, timeframe.Start, timeframe.End)
		if err != nil {
			fail("traffic", err)
			return
		}
		currentTotals = totals

		if timeframe.HasComparison() {
			prev, err := s.analyticsRepo.CreatorWindowTotals(creatorID, *timeframe.PreviousStart, *timeframe.PreviousEnd)
			if err != nil {
				fail("traffic", err)
				return
			}
			previousTotals = prev
		}
	}()

	go func() {
		defer wg.Done()

		cents, err := s.revenueRepo.WindowRevenueCents(creatorID, timeframe.Start, timeframe.End)
		if err != nil {
			fail("ad_revenue", err)
			return
		}
		adRevenue = cents

		if timeframe.HasComparison() {
			prev, err := s.revenueRepo.WindowRevenueCents(creatorID, *timeframe.PreviousStart, *timeframe.PreviousEnd)
			if err != nil {
				fail("ad_revenue", err)
				return
			}
			prevAdRevenue = prev
		}
	}()

	go func() {
		defer wg.Done()

		cents, err := s.clickRepo.WindowCommissionCents(creatorID, timeframe.Start, timeframe.End)
		if err != nil {
			fail("affiliate_revenue", err)
			return
		}
		affiliateCents = cents

		if timeframe.HasComparison() {
			prev, err := s.clickRepo.WindowCommissionCents(creatorID, *timeframe.PreviousStart, *timeframe.PreviousEnd)
			if err != nil {
				fail("affiliate_revenue", err)
				return
			}
			prevAffiliate = prev
		}
	}()

	go func() {
		defer wg.Done()

		metrics, err := s.subscriptionMetrics(creatorID, timeframe)
		if err != nil {
			fail("subscriptions", err)
			return
		}
		subMetrics = metrics

		if timeframe.HasComparison() {
			prev, err := s.subscriptionRepo.WindowRevenueCents(creatorID, *timeframe.PreviousStart, *timeframe.PreviousEnd)
			if err != nil {
				fail("subscriptions", err)
				return
			}
			prevSubRevenue = prev
		}
	}()

	go func() {
		defer wg.Done()

		tagPerf, err := s.analyticsRepo.TagPerformance(creatorID, timeframe.Start, timeframe.End)
		if err != nil {
			fail("content", err)
			return
		}
		tags = tagPerf

		pubCadence, err := s.articleRepo.PublishingCadence(creatorID, timeframe.Start, timeframe.End)
		if err != nil {
			fail("content", err)
			return
		}
		cadence = pubCadence
	}()

	wg.Wait()

	if len(errs) > 0 {
		for _, err := range errs {
			logrus.WithField("creator_id", creatorID).Error(err)
		}
		return nil, NewDashboardError(errs[0], apiErrors.ErrDatabaseOperation, "Erro ao agregar dados do painel")
	}

	report := &domain.DashboardReport{
		CreatorID:     creatorID,
		Timeframe:     timeframe,
		Traffic:       buildTraffic(currentTotals, previousTotals),
		Revenue:       buildRevenue(adRevenue, subMetrics.RevenueCents, affiliateCents, prevAdRevenue, prevSubRevenue, prevAffiliate, timeframe.HasComparison()),
		Engagement:    buildEngagement(currentTotals),
		Content:       &domain.ContentPerformance{Tags: tags, Cadence: cadence},
		Subscriptions: subMetrics,
	}

	return report, nil
}

func (s *Service) subscriptionMetrics(creatorID int, timeframe *domain.Timeframe) (*domain.SubscriptionMetrics, error) {
	active, err := s.subscriptionRepo.CountActiveByCreator(creatorID)
	if err != nil {
		return nil, err
	}

	created, err := s.subscriptionRepo.CountCreatedInWindow(creatorID, timeframe.Start, timeframe.End)
	if err != nil {
		return nil, err
	}

	canceled, err := s.subscriptionRepo.CountCanceledInWindow(creatorID, timeframe.Start, timeframe.End)
	if err != nil {
		return nil, err
	}

	activeAtStart, err := s.subscriptionRepo.CountActiveAtByCreator(creatorID, timeframe.Start)
	if err != nil {
		return nil, err
	}

	revenue, err := s.subscriptionRepo.WindowRevenueCents(creatorID, timeframe.Start, timeframe.End)
	if err != nil {
		return nil, err
	}

	return &domain.SubscriptionMetrics{
		ActiveSubscriptions: active,
		NewSubscriptions:    created,
		CanceledInWindow:    canceled,
		RevenueCents:        revenue,
		ChurnRate:           domain.CalculateChurnRate(canceled, activeAtStart+created),
	}, nil
}

func buildTraffic(current, previous *domain.ArticleAnalyticsTotals) *domain.TrafficMetrics {
	traffic := &domain.TrafficMetrics{
		PageViews:      current.PageViews,
		UniqueVisitors: current.UniqueVisitors,
		AvgBounceRate:  current.AvgBounceRate,
	}

	if current.PageViews > 0 {
		traffic.AvgTimeOnPage = utils.RoundWithTwoDecimalPlace(float64(current.TimeOnPageSeconds) / float64(current.PageViews))
	}

	if previous != nil {
		traffic.PageViewsGrowth = domain.CalculateGrowthRate(float64(current.PageViews), float64(previous.PageViews))
		traffic.VisitorsGrowth = domain.CalculateGrowthRate(float64(current.UniqueVisitors), float64(previous.UniqueVisitors))
	}

	return traffic
}

// buildRevenue decompõe a receita por fonte. As participações percentuais
// somam 100 sobre o total da janela; janela sem receita zera as três.
func buildRevenue(adCents, subCents, affCents, prevAd, prevSub, prevAff int64, hasComparison bool) *domain.RevenueBreakdown {
	breakdown := &domain.RevenueBreakdown{
		AdRevenueCents:           adCents,
		SubscriptionRevenueCents: subCents,
		AffiliateRevenueCents:    affCents,
		TotalCents:               adCents + subCents + affCents,
	}

	if breakdown.TotalCents > 0 {
		total := float64(breakdown.TotalCents)
		breakdown.AdPercentage = utils.RoundWithTwoDecimalPlace(float64(adCents) / total * 100)
		breakdown.SubscriptionPercentage = utils.RoundWithTwoDecimalPlace(float64(subCents) / total * 100)
		breakdown.AffiliatePercentage = utils.RoundWithTwoDecimalPlace(float64(affCents) / total * 100)
	}

	if hasComparison {
		previousTotal := prevAd + prevSub + prevAff
		breakdown.Growth = domain.CalculateGrowthRate(float64(breakdown.TotalCents), float64(previousTotal))
	}

	return breakdown
}

func buildEngagement(totals *domain.ArticleAnalyticsTotals) *domain.EngagementMetrics {
	engagement := &domain.EngagementMetrics{
		SocialShares:      totals.SocialShares,
		NewsletterSignups: totals.NewsletterSignups,
		AffiliateClicks:   totals.AffiliateClicks,
	}

	actions := totals.SocialShares + totals.NewsletterSignups + totals.AffiliateClicks
	if totals.UniqueVisitors > 0 {
		engagement.ActionsPerVisitor = utils.RoundWithTwoDecimalPlace(float64(actions) / float64(totals.UniqueVisitors))
	}

	return engagement
}
