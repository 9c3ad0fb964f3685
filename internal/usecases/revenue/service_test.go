package revenue

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/creator-platform-api/infrastructure/repository/mocks"
	"github.com/vfg2006/creator-platform-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestRecordRevenue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	yesterday := time.Now().UTC().AddDate(0, 0, -1).Format(time.DateOnly)

	tests := []struct {
		name     string
		request  *domain.RecordRevenueRequest
		setup    func(mockRepo *mocks.MockAdRevenueRepository)
		validate func(t *testing.T, record *domain.RevenueRecord, err error)
	}{
		{
			name: "Deve gravar a receita e devolver o registro mesclado do banco",
			request: &domain.RecordRevenueRequest{
				Date:         yesterday,
				Source:       domain.SourceAdsense,
				RevenueCents: 1500,
				Impressions:  10000,
				Clicks:       200,
			},
			setup: func(mockRepo *mocks.MockAdRevenueRepository) {
				mockRepo.EXPECT().Upsert(gomock.Any()).Return(nil)
				mockRepo.EXPECT().
					GetByKey(1, gomock.Any(), domain.SourceAdsense).
					Return(&domain.RevenueRecord{
						ID:           "rev_abc",
						CreatorID:    1,
						Source:       domain.SourceAdsense,
						RevenueCents: 3000,
						Impressions:  20000,
						Clicks:       400,
						CTR:          2.0,
						RPM:          1.5,
					}, nil)
			},
			validate: func(t *testing.T, record *domain.RevenueRecord, err error) {
				assert.NoError(t, err)
				assert.NotNil(t, record)
				// O registro devolvido é o estado mesclado, não o payload enviado
				assert.Equal(t, int64(3000), record.RevenueCents)
				assert.Equal(t, int64(20000), record.Impressions)
				assert.Equal(t, 2.0, record.CTR)
			},
		},
		{
			name: "Deve rejeitar data fora do formato yyyy-mm-dd",
			request: &domain.RecordRevenueRequest{
				Date:   "15/01/2024",
				Source: domain.SourceAdsense,
			},
			setup: func(mockRepo *mocks.MockAdRevenueRepository) {},
			validate: func(t *testing.T, record *domain.RevenueRecord, err error) {
				assert.Nil(t, record)
				assert.ErrorIs(t, err, ErrInvalidDate)
			},
		},
		{
			name: "Deve rejeitar data no futuro",
			request: &domain.RecordRevenueRequest{
				Date:   time.Now().UTC().AddDate(0, 0, 2).Format(time.DateOnly),
				Source: domain.SourceAdsense,
			},
			setup: func(mockRepo *mocks.MockAdRevenueRepository) {},
			validate: func(t *testing.T, record *domain.RevenueRecord, err error) {
				assert.Nil(t, record)
				assert.ErrorIs(t, err, ErrFutureDate)
			},
		},
		{
			name: "Deve rejeitar origem desconhecida",
			request: &domain.RecordRevenueRequest{
				Date:   yesterday,
				Source: "taboola",
			},
			setup: func(mockRepo *mocks.MockAdRevenueRepository) {},
			validate: func(t *testing.T, record *domain.RevenueRecord, err error) {
				assert.Nil(t, record)
				assert.ErrorIs(t, err, ErrInvalidSource)
			},
		},
		{
			name: "Deve rejeitar valores negativos",
			request: &domain.RecordRevenueRequest{
				Date:         yesterday,
				Source:       domain.SourceMediavine,
				RevenueCents: -100,
			},
			setup: func(mockRepo *mocks.MockAdRevenueRepository) {},
			validate: func(t *testing.T, record *domain.RevenueRecord, err error) {
				assert.Nil(t, record)
				assert.ErrorIs(t, err, ErrNegativeValue)
			},
		},
		{
			name: "Deve devolver erro quando o banco falha no upsert",
			request: &domain.RecordRevenueRequest{
				Date:         yesterday,
				Source:       domain.SourceDirect,
				RevenueCents: 500,
			},
			setup: func(mockRepo *mocks.MockAdRevenueRepository) {
				mockRepo.EXPECT().Upsert(gomock.Any()).Return(errors.New("connection refused"))
			},
			validate: func(t *testing.T, record *domain.RevenueRecord, err error) {
				assert.Nil(t, record)

				var revErr *RevenueError
				assert.ErrorAs(t, err, &revErr)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := mocks.NewMockAdRevenueRepository(ctrl)
			tt.setup(mockRepo)

			service := &Service{revenueRepo: mockRepo}

			record, err := service.RecordRevenue(1, tt.request)
			tt.validate(t, record, err)
		})
	}
}

func TestGetWindowReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name     string
		period   domain.Period
		setup    func(mockRepo *mocks.MockAdRevenueRepository)
		validate func(t *testing.T, report *domain.RevenueWindowReport, err error)
	}{
		{
			name:   "Deve agregar totais e calcular a participação de cada origem",
			period: domain.Period30d,
			setup: func(mockRepo *mocks.MockAdRevenueRepository) {
				mockRepo.EXPECT().
					WindowTotalsBySource(1, gomock.Any(), gomock.Any()).
					Return([]*domain.SourceTotals{
						{Source: domain.SourceAdsense, RevenueCents: 7500, Impressions: 100000, Clicks: 2000},
						{Source: domain.SourceMediavine, RevenueCents: 2500, Impressions: 50000, Clicks: 500},
					}, nil)
			},
			validate: func(t *testing.T, report *domain.RevenueWindowReport, err error) {
				assert.NoError(t, err)
				assert.Equal(t, int64(10000), report.TotalRevenueCents)
				assert.Equal(t, int64(150000), report.TotalImpressions)
				assert.Equal(t, int64(2500), report.TotalClicks)
				assert.Equal(t, 75.0, report.Sources[0].Percentage)
				assert.Equal(t, 25.0, report.Sources[1].Percentage)
				// CTR = 2500/150000*100, RPM = 10000/150000*1000
				assert.InDelta(t, 1.67, report.CTR, 0.01)
				assert.InDelta(t, 66.67, report.RPM, 0.01)
			},
		},
		{
			name:   "Deve devolver relatório vazio quando não há receita na janela",
			period: domain.Period7d,
			setup: func(mockRepo *mocks.MockAdRevenueRepository) {
				mockRepo.EXPECT().
					WindowTotalsBySource(1, gomock.Any(), gomock.Any()).
					Return([]*domain.SourceTotals{}, nil)
			},
			validate: func(t *testing.T, report *domain.RevenueWindowReport, err error) {
				assert.NoError(t, err)
				assert.Zero(t, report.TotalRevenueCents)
				assert.Zero(t, report.CTR)
				assert.False(t, report.HighPerformance)
			},
		},
		{
			name:   "Deve rejeitar período desconhecido",
			period: "45d",
			setup:  func(mockRepo *mocks.MockAdRevenueRepository) {},
			validate: func(t *testing.T, report *domain.RevenueWindowReport, err error) {
				assert.Nil(t, report)
				assert.ErrorIs(t, err, ErrInvalidPeriod)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := mocks.NewMockAdRevenueRepository(ctrl)
			tt.setup(mockRepo)

			service := &Service{revenueRepo: mockRepo}

			report, err := service.GetWindowReport(1, tt.period)
			tt.validate(t, report, err)
		})
	}
}

func TestGetMonthlyBreakdown(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("Deve usar 12 meses quando o parâmetro é zero ou negativo", func(t *testing.T) {
		mockRepo := mocks.NewMockAdRevenueRepository(ctrl)
		mockRepo.EXPECT().
			MonthlyBreakdown(1, 12).
			Return([]*domain.MonthlyRevenue{
				{Month: "01-2024", Source: domain.SourceAdsense, RevenueCents: 9000},
			}, nil)

		service := &Service{revenueRepo: mockRepo}

		breakdown, err := service.GetMonthlyBreakdown(1, 0)
		assert.NoError(t, err)
		assert.Len(t, breakdown, 1)
	})

	t.Run("Deve repassar a quantidade de meses informada", func(t *testing.T) {
		mockRepo := mocks.NewMockAdRevenueRepository(ctrl)
		mockRepo.EXPECT().MonthlyBreakdown(1, 6).Return([]*domain.MonthlyRevenue{}, nil)

		service := &Service{revenueRepo: mockRepo}

		breakdown, err := service.GetMonthlyBreakdown(1, 6)
		assert.NoError(t, err)
		assert.Empty(t, breakdown)
	})
}

func TestGetTopPerformingDays(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("Deve limitar a 5 dias quando o limite é zero ou acima de 30", func(t *testing.T) {
		mockRepo := mocks.NewMockAdRevenueRepository(ctrl)
		mockRepo.EXPECT().
			TopPerformingDays(1, gomock.Any(), gomock.Any(), uint64(5)).
			Return([]*domain.DailyRevenue{}, nil).
			Times(2)

		service := &Service{revenueRepo: mockRepo}

		_, err := service.GetTopPerformingDays(1, domain.Period30d, 0)
		assert.NoError(t, err)

		_, err = service.GetTopPerformingDays(1, domain.Period30d, 31)
		assert.NoError(t, err)
	})
}

func TestCompareSources(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name     string
		period   domain.Period
		setup    func(mockRepo *mocks.MockAdRevenueRepository)
		validate func(t *testing.T, comparisons []*domain.SourceComparison, err error)
	}{
		{
			name:   "Deve calcular o crescimento frente à janela anterior",
			period: domain.Period30d,
			setup: func(mockRepo *mocks.MockAdRevenueRepository) {
				gomock.InOrder(
					mockRepo.EXPECT().
						WindowTotalsBySource(1, gomock.Any(), gomock.Any()).
						Return([]*domain.SourceTotals{
							{Source: domain.SourceAdsense, RevenueCents: 3000},
						}, nil),
					mockRepo.EXPECT().
						WindowTotalsBySource(1, gomock.Any(), gomock.Any()).
						Return([]*domain.SourceTotals{
							{Source: domain.SourceAdsense, RevenueCents: 2000},
						}, nil),
				)
			},
			validate: func(t *testing.T, comparisons []*domain.SourceComparison, err error) {
				assert.NoError(t, err)
				assert.Len(t, comparisons, 1)
				assert.Equal(t, int64(3000), comparisons[0].CurrentRevenueCents)
				assert.Equal(t, int64(2000), comparisons[0].PreviousRevenueCents)
				assert.Equal(t, 50.0, comparisons[0].GrowthRate)
			},
		},
		{
			name:   "Origem que só existia na janela anterior aparece com queda de 100%",
			period: domain.Period7d,
			setup: func(mockRepo *mocks.MockAdRevenueRepository) {
				gomock.InOrder(
					mockRepo.EXPECT().
						WindowTotalsBySource(1, gomock.Any(), gomock.Any()).
						Return([]*domain.SourceTotals{
							{Source: domain.SourceAdsense, RevenueCents: 1000},
						}, nil),
					mockRepo.EXPECT().
						WindowTotalsBySource(1, gomock.Any(), gomock.Any()).
						Return([]*domain.SourceTotals{
							{Source: domain.SourceAdsense, RevenueCents: 800},
							{Source: domain.SourceMediavine, RevenueCents: 600},
						}, nil),
				)
			},
			validate: func(t *testing.T, comparisons []*domain.SourceComparison, err error) {
				assert.NoError(t, err)
				assert.Len(t, comparisons, 2)
				assert.Equal(t, domain.SourceMediavine, comparisons[1].Source)
				assert.Zero(t, comparisons[1].CurrentRevenueCents)
				assert.Equal(t, -100.0, comparisons[1].GrowthRate)
			},
		},
		{
			name:   "Período all não tem janela de comparação",
			period: domain.PeriodAll,
			setup:  func(mockRepo *mocks.MockAdRevenueRepository) {},
			validate: func(t *testing.T, comparisons []*domain.SourceComparison, err error) {
				assert.NoError(t, err)
				assert.Empty(t, comparisons)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := mocks.NewMockAdRevenueRepository(ctrl)
			tt.setup(mockRepo)

			service := &Service{revenueRepo: mockRepo}

			comparisons, err := service.CompareSources(1, tt.period)
			tt.validate(t, comparisons, err)
		})
	}
}
