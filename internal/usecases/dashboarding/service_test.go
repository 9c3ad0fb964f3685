package dashboarding

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/creator-platform-api/infrastructure/repository/mocks"
	"github.com/vfg2006/creator-platform-api/internal/domain"
	"github.com/vfg2006/creator-platform-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

type dashboardMocks struct {
	revenueRepo      *mocks.MockAdRevenueRepository
	clickRepo        *mocks.MockAffiliateClickRepository
	analyticsRepo    *mocks.MockArticleAnalyticsRepository
	articleRepo      *mocks.MockArticleRepository
	subscriptionRepo *mocks.MockSubscriptionRepository
}

func newDashboardMocks(ctrl *gomock.Controller) *dashboardMocks {
	return &dashboardMocks{
		revenueRepo:      mocks.NewMockAdRevenueRepository(ctrl),
		clickRepo:        mocks.NewMockAffiliateClickRepository(ctrl),
		analyticsRepo:    mocks.NewMockArticleAnalyticsRepository(ctrl),
		articleRepo:      mocks.NewMockArticleRepository(ctrl),
		subscriptionRepo: mocks.NewMockSubscriptionRepository(ctrl),
	}
}

func (m *dashboardMocks) service() *Service {
	return &Service{
		revenueRepo:      m.revenueRepo,
		clickRepo:        m.clickRepo,
		analyticsRepo:    m.analyticsRepo,
		articleRepo:      m.articleRepo,
		subscriptionRepo: m.subscriptionRepo,
	}
}

func windowTotals() *domain.ArticleAnalyticsTotals {
	return &domain.ArticleAnalyticsTotals{
		PageViews:         5000,
		UniqueVisitors:    2000,
		TimeOnPageSeconds: 450000,
		AvgBounceRate:     42.5,
		SocialShares:      120,
		AffiliateClicks:   220,
		NewsletterSignups: 60,
	}
}

func TestGetDashboard(t *testing.T) {
	creatorID := 42

	testCases := []struct {
		name     string
		period   domain.Period
		setup    func(m *dashboardMocks)
		validate func(t *testing.T, report *domain.DashboardReport, err error)
	}{
		{
			name:   "Deve montar o painel completo com comparação de janelas",
			period: domain.Period30d,
			setup: func(m *dashboardMocks) {
				m.analyticsRepo.EXPECT().
					CreatorWindowTotals(creatorID, gomock.Any(), gomock.Any()).
					Return(windowTotals(), nil)
				m.analyticsRepo.EXPECT().
					CreatorWindowTotals(creatorID, gomock.Any(), gomock.Any()).
					Return(&domain.ArticleAnalyticsTotals{PageViews: 4000, UniqueVisitors: 1600}, nil)

				m.revenueRepo.EXPECT().
					WindowRevenueCents(creatorID, gomock.Any(), gomock.Any()).
					Return(int64(6000), nil)
				m.revenueRepo.EXPECT().
					WindowRevenueCents(creatorID, gomock.Any(), gomock.Any()).
					Return(int64(5000), nil)

				m.clickRepo.EXPECT().
					WindowCommissionCents(creatorID, gomock.Any(), gomock.Any()).
					Return(int64(1000), nil)
				m.clickRepo.EXPECT().
					WindowCommissionCents(creatorID, gomock.Any(), gomock.Any()).
					Return(int64(500), nil)

				m.subscriptionRepo.EXPECT().CountActiveByCreator(creatorID).Return(int64(45), nil)
				m.subscriptionRepo.EXPECT().
					CountCreatedInWindow(creatorID, gomock.Any(), gomock.Any()).
					Return(int64(10), nil)
				m.subscriptionRepo.EXPECT().
					CountCanceledInWindow(creatorID, gomock.Any(), gomock.Any()).
					Return(int64(5), nil)
				m.subscriptionRepo.EXPECT().
					CountActiveAtByCreator(creatorID, gomock.Any()).
					Return(int64(40), nil)
				m.subscriptionRepo.EXPECT().
					WindowRevenueCents(creatorID, gomock.Any(), gomock.Any()).
					Return(int64(3000), nil)
				m.subscriptionRepo.EXPECT().
					WindowRevenueCents(creatorID, gomock.Any(), gomock.Any()).
					Return(int64(2500), nil)

				m.analyticsRepo.EXPECT().
					TagPerformance(creatorID, gomock.Any(), gomock.Any()).
					Return([]*domain.TagPerformance{
						{Tag: "financas", Articles: 4, PageViews: 3200, AdRevenueCents: 4100},
					}, nil)
				m.articleRepo.EXPECT().
					PublishingCadence(creatorID, gomock.Any(), gomock.Any()).
					Return(&domain.PublishingCadence{Published: 8, PerWeek: 1.87, DaysSinceLatest: 2}, nil)
			},
			validate: func(t *testing.T, report *domain.DashboardReport, err error) {
				assert.NoError(t, err)
				assert.Equal(t, creatorID, report.CreatorID)
				assert.True(t, report.Timeframe.HasComparison())

				assert.Equal(t, int64(5000), report.Traffic.PageViews)
				assert.Equal(t, 90.0, report.Traffic.AvgTimeOnPage)
				assert.Equal(t, 25.0, report.Traffic.PageViewsGrowth)
				assert.Equal(t, 25.0, report.Traffic.VisitorsGrowth)

				assert.Equal(t, int64(10000), report.Revenue.TotalCents)
				assert.Equal(t, 60.0, report.Revenue.AdPercentage)
				assert.Equal(t, 30.0, report.Revenue.SubscriptionPercentage)
				assert.Equal(t, 10.0, report.Revenue.AffiliatePercentage)
				assert.Equal(t, 25.0, report.Revenue.Growth)

				assert.Equal(t, int64(120), report.Engagement.SocialShares)
				assert.Equal(t, 0.2, report.Engagement.ActionsPerVisitor)

				assert.Equal(t, int64(45), report.Subscriptions.ActiveSubscriptions)
				assert.Equal(t, 10.0, report.Subscriptions.ChurnRate)

				assert.Len(t, report.Content.Tags, 1)
				assert.Equal(t, "financas", report.Content.Tags[0].Tag)
				assert.Equal(t, int64(8), report.Content.Cadence.Published)
			},
		},
		{
			name:   "Deve omitir crescimentos quando o período não tem comparação",
			period: domain.PeriodAll,
			setup: func(m *dashboardMocks) {
				m.analyticsRepo.EXPECT().
					CreatorWindowTotals(creatorID, gomock.Any(), gomock.Any()).
					Return(windowTotals(), nil)
				m.revenueRepo.EXPECT().
					WindowRevenueCents(creatorID, gomock.Any(), gomock.Any()).
					Return(int64(6000), nil)
				m.clickRepo.EXPECT().
					WindowCommissionCents(creatorID, gomock.Any(), gomock.Any()).
					Return(int64(1000), nil)

				m.subscriptionRepo.EXPECT().CountActiveByCreator(creatorID).Return(int64(45), nil)
				m.subscriptionRepo.EXPECT().
					CountCreatedInWindow(creatorID, gomock.Any(), gomock.Any()).
					Return(int64(10), nil)
				m.subscriptionRepo.EXPECT().
					CountCanceledInWindow(creatorID, gomock.Any(), gomock.Any()).
					Return(int64(5), nil)
				m.subscriptionRepo.EXPECT().
					CountActiveAtByCreator(creatorID, gomock.Any()).
					Return(int64(40), nil)
				m.subscriptionRepo.EXPECT().
					WindowRevenueCents(creatorID, gomock.Any(), gomock.Any()).
					Return(int64(3000), nil)

				m.analyticsRepo.EXPECT().
					TagPerformance(creatorID, gomock.Any(), gomock.Any()).
					Return([]*domain.TagPerformance{}, nil)
				m.articleRepo.EXPECT().
					PublishingCadence(creatorID, gomock.Any(), gomock.Any()).
					Return(&domain.PublishingCadence{}, nil)
			},
			validate: func(t *testing.T, report *domain.DashboardReport, err error) {
				assert.NoError(t, err)
				assert.False(t, report.Timeframe.HasComparison())
				assert.Equal(t, 0.0, report.Traffic.PageViewsGrowth)
				assert.Equal(t, 0.0, report.Revenue.Growth)
				assert.Equal(t, int64(10000), report.Revenue.TotalCents)
			},
		},
		{
			name:   "Deve zerar as participações quando a janela não tem receita",
			period: domain.PeriodAll,
			setup: func(m *dashboardMocks) {
				m.analyticsRepo.EXPECT().
					CreatorWindowTotals(creatorID, gomock.Any(), gomock.Any()).
					Return(&domain.ArticleAnalyticsTotals{}, nil)
				m.revenueRepo.EXPECT().
					WindowRevenueCents(creatorID, gomock.Any(), gomock.Any()).
					Return(int64(0), nil)
				m.clickRepo.EXPECT().
					WindowCommissionCents(creatorID, gomock.Any(), gomock.Any()).
					Return(int64(0), nil)

				m.subscriptionRepo.EXPECT().CountActiveByCreator(creatorID).Return(int64(0), nil)
				m.subscriptionRepo.EXPECT().
					CountCreatedInWindow(creatorID, gomock.Any(), gomock.Any()).
					Return(int64(0), nil)
				m.subscriptionRepo.EXPECT().
					CountCanceledInWindow(creatorID, gomock.Any(), gomock.Any()).
					Return(int64(0), nil)
				m.subscriptionRepo.EXPECT().
					CountActiveAtByCreator(creatorID, gomock.Any()).
					Return(int64(0), nil)
				m.subscriptionRepo.EXPECT().
					WindowRevenueCents(creatorID, gomock.Any(), gomock.Any()).
					Return(int64(0), nil)

				m.analyticsRepo.EXPECT().
					TagPerformance(creatorID, gomock.Any(), gomock.Any()).
					Return(nil, nil)
				m.articleRepo.EXPECT().
					PublishingCadence(creatorID, gomock.Any(), gomock.Any()).
					Return(&domain.PublishingCadence{}, nil)
			},
			validate: func(t *testing.T, report *domain.DashboardReport, err error) {
				assert.NoError(t, err)
				assert.Equal(t, int64(0), report.Revenue.TotalCents)
				assert.Equal(t, 0.0, report.Revenue.AdPercentage)
				assert.Equal(t, 0.0, report.Revenue.SubscriptionPercentage)
				assert.Equal(t, 0.0, report.Revenue.AffiliatePercentage)
				assert.Equal(t, 0.0, report.Traffic.AvgTimeOnPage)
				assert.Equal(t, 0.0, report.Engagement.ActionsPerVisitor)
				assert.Equal(t, 0.0, report.Subscriptions.ChurnRate)
			},
		},
		{
			name:   "Deve rejeitar período desconhecido sem consultar o banco",
			period: domain.Period("2w"),
			setup:  func(m *dashboardMocks) {},
			validate: func(t *testing.T, report *domain.DashboardReport, err error) {
				assert.ErrorIs(t, err, ErrInvalidPeriod)
				assert.Nil(t, report)

				// Erro de validação carrega código de requisição inválida, não de servidor
				var dashErr *DashboardError
				assert.ErrorAs(t, err, &dashErr)
				assert.Equal(t, apiErrors.ErrInvalidRequest, dashErr.Code)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newDashboardMocks(ctrl)
			tc.setup(m)

			report, err := m.service().GetDashboard(creatorID, tc.period)
			tc.validate(t, report, err)
		})
	}
}

func TestGetDashboardSectionFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	creatorID := 42
	dbErr := errors.New("conexão recusada")

	m := newDashboardMocks(ctrl)

	m.analyticsRepo.EXPECT().
		CreatorWindowTotals(creatorID, gomock.Any(), gomock.Any()).
		Return(nil, dbErr)

	// as demais seções rodam em paralelo e completam normalmente
	m.revenueRepo.EXPECT().
		WindowRevenueCents(creatorID, gomock.Any(), gomock.Any()).
		Return(int64(0), nil)
	m.clickRepo.EXPECT().
		WindowCommissionCents(creatorID, gomock.Any(), gomock.Any()).
		Return(int64(0), nil)
	m.subscriptionRepo.EXPECT().CountActiveByCreator(creatorID).Return(int64(0), nil)
	m.subscriptionRepo.EXPECT().
		CountCreatedInWindow(creatorID, gomock.Any(), gomock.Any()).
		Return(int64(0), nil)
	m.subscriptionRepo.EXPECT().
		CountCanceledInWindow(creatorID, gomock.Any(), gomock.Any()).
		Return(int64(0), nil)
	m.subscriptionRepo.EXPECT().
		CountActiveAtByCreator(creatorID, gomock.Any()).
		Return(int64(0), nil)
	m.subscriptionRepo.EXPECT().
		WindowRevenueCents(creatorID, gomock.Any(), gomock.Any()).
		Return(int64(0), nil)
	m.analyticsRepo.EXPECT().
		TagPerformance(creatorID, gomock.Any(), gomock.Any()).
		Return(nil, nil)
	m.articleRepo.EXPECT().
		PublishingCadence(creatorID, gomock.Any(), gomock.Any()).
		Return(&domain.PublishingCadence{}, nil)

	report, err := m.service().GetDashboard(creatorID, domain.PeriodAll)

	assert.ErrorIs(t, err, dbErr)
	assert.Nil(t, report)
}
