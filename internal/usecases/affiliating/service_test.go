package affiliating

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/creator-platform-api/infrastructure/repository"
	"github.com/vfg2006/creator-platform-api/infrastructure/repository/mocks"
	"github.com/vfg2006/creator-platform-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func stringPtr(s string) *string {
	return &s
}

func activeLink(creatorID int) *domain.AffiliateLink {
	return &domain.AffiliateLink{
		ID:             "lnk_abc",
		CreatorID:      creatorID,
		Name:           "Teclado mecânico",
		OriginalURL:    "https://loja.example.com/teclado",
		TrackingCode:   "A1B2C3D4E5F60718",
		Network:        domain.NetworkAmazon,
		CommissionRate: 5.0,
		IsActive:       true,
	}
}

func TestCreateLink(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name     string
		request  *domain.CreateAffiliateLinkRequest
		setup    func(mockLinks *mocks.MockAffiliateLinkRepository)
		validate func(t *testing.T, link *domain.AffiliateLink, err error)
	}{
		{
			name: "Deve criar o link ativo com tracking code gerado",
			request: &domain.CreateAffiliateLinkRequest{
				Name:           "Teclado mecânico",
				OriginalURL:    "https://loja.example.com/teclado",
				Network:        domain.NetworkAmazon,
				CommissionRate: 5.0,
			},
			setup: func(mockLinks *mocks.MockAffiliateLinkRepository) {
				mockLinks.EXPECT().Create(gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, link *domain.AffiliateLink, err error) {
				assert.NoError(t, err)
				assert.True(t, link.IsActive)
				assert.Len(t, link.TrackingCode, 16)
				assert.NotEmpty(t, link.ID)
			},
		},
		{
			name: "Deve gerar outro tracking code quando há colisão",
			request: &domain.CreateAffiliateLinkRequest{
				Name:        "Curso de fotografia",
				OriginalURL: "https://hotmart.example.com/curso",
				Network:     domain.NetworkHotmart,
			},
			setup: func(mockLinks *mocks.MockAffiliateLinkRepository) {
				gomock.InOrder(
					mockLinks.EXPECT().Create(gomock.Any()).Return(repository.ErrDuplicateKey),
					mockLinks.EXPECT().Create(gomock.Any()).Return(nil),
				)
			},
			validate: func(t *testing.T, link *domain.AffiliateLink, err error) {
				assert.NoError(t, err)
				assert.NotNil(t, link)
			},
		},
		{
			name: "Deve desistir após três colisões seguidas",
			request: &domain.CreateAffiliateLinkRequest{
				Name:        "Curso de fotografia",
				OriginalURL: "https://hotmart.example.com/curso",
				Network:     domain.NetworkHotmart,
			},
			setup: func(mockLinks *mocks.MockAffiliateLinkRepository) {
				mockLinks.EXPECT().Create(gomock.Any()).Return(repository.ErrDuplicateKey).Times(3)
			},
			validate: func(t *testing.T, link *domain.AffiliateLink, err error) {
				assert.Nil(t, link)
				assert.ErrorIs(t, err, repository.ErrDuplicateKey)
			},
		},
		{
			name: "Deve rejeitar URL que não seja http ou https",
			request: &domain.CreateAffiliateLinkRequest{
				Name:        "Link suspeito",
				OriginalURL: "ftp://arquivo.example.com",
				Network:     domain.NetworkCustom,
			},
			setup: func(mockLinks *mocks.MockAffiliateLinkRepository) {},
			validate: func(t *testing.T, link *domain.AffiliateLink, err error) {
				assert.Nil(t, link)
				assert.ErrorIs(t, err, ErrInvalidURL)
			},
		},
		{
			name: "Deve rejeitar rede desconhecida",
			request: &domain.CreateAffiliateLinkRequest{
				Name:        "Produto",
				OriginalURL: "https://loja.example.com/produto",
				Network:     "clickbank",
			},
			setup: func(mockLinks *mocks.MockAffiliateLinkRepository) {},
			validate: func(t *testing.T, link *domain.AffiliateLink, err error) {
				assert.Nil(t, link)
				assert.ErrorIs(t, err, ErrInvalidNetwork)
			},
		},
		{
			name: "Deve rejeitar taxa de comissão acima de 100",
			request: &domain.CreateAffiliateLinkRequest{
				Name:           "Produto",
				OriginalURL:    "https://loja.example.com/produto",
				Network:        domain.NetworkAmazon,
				CommissionRate: 120,
			},
			setup: func(mockLinks *mocks.MockAffiliateLinkRepository) {},
			validate: func(t *testing.T, link *domain.AffiliateLink, err error) {
				assert.Nil(t, link)
				assert.ErrorIs(t, err, ErrInvalidRate)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockLinks := mocks.NewMockAffiliateLinkRepository(ctrl)
			mockClicks := mocks.NewMockAffiliateClickRepository(ctrl)
			tt.setup(mockLinks)

			service := &Service{linkRepo: mockLinks, clickRepo: mockClicks}

			link, err := service.CreateLink(1, tt.request)
			tt.validate(t, link, err)
		})
	}
}

func TestDeleteLink(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name     string
		setup    func(mockLinks *mocks.MockAffiliateLinkRepository)
		validate func(t *testing.T, deleted bool, err error)
	}{
		{
			name: "Deve remover definitivamente o link sem cliques",
			setup: func(mockLinks *mocks.MockAffiliateLinkRepository) {
				mockLinks.EXPECT().GetByID("lnk_abc").Return(activeLink(1), nil)
				mockLinks.EXPECT().ClickCount("lnk_abc").Return(int64(0), nil)
				mockLinks.EXPECT().HardDelete("lnk_abc").Return(nil)
			},
			validate: func(t *testing.T, deleted bool, err error) {
				assert.NoError(t, err)
				assert.True(t, deleted)
			},
		},
		{
			name: "Deve apenas desativar o link com histórico de cliques",
			setup: func(mockLinks *mocks.MockAffiliateLinkRepository) {
				mockLinks.EXPECT().GetByID("lnk_abc").Return(activeLink(1), nil)
				mockLinks.EXPECT().ClickCount("lnk_abc").Return(int64(37), nil)
				mockLinks.EXPECT().Deactivate("lnk_abc").Return(nil)
			},
			validate: func(t *testing.T, deleted bool, err error) {
				assert.NoError(t, err)
				assert.False(t, deleted)
			},
		},
		{
			name: "Deve recusar link de outro criador",
			setup: func(mockLinks *mocks.MockAffiliateLinkRepository) {
				mockLinks.EXPECT().GetByID("lnk_abc").Return(activeLink(99), nil)
			},
			validate: func(t *testing.T, deleted bool, err error) {
				assert.False(t, deleted)
				assert.ErrorIs(t, err, ErrNotLinkOwner)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockLinks := mocks.NewMockAffiliateLinkRepository(ctrl)
			mockClicks := mocks.NewMockAffiliateClickRepository(ctrl)
			tt.setup(mockLinks)

			service := &Service{linkRepo: mockLinks, clickRepo: mockClicks}

			deleted, err := service.DeleteLink(1, "lnk_abc")
			tt.validate(t, deleted, err)
		})
	}
}

func TestTrackClick(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	request := &domain.TrackClickRequest{
		ArticleID: stringPtr("art_123"),
		IPAddress: "203.0.113.7",
		UserAgent: "Mozilla/5.0",
		Referrer:  "https://blog.example.com/melhores-teclados",
	}

	tests := []struct {
		name     string
		setup    func(mockLinks *mocks.MockAffiliateLinkRepository, mockClicks *mocks.MockAffiliateClickRepository)
		validate func(t *testing.T, redirectURL string, err error)
	}{
		{
			name: "Deve registrar o clique com IP hasheado e devolver a URL de destino",
			setup: func(mockLinks *mocks.MockAffiliateLinkRepository, mockClicks *mocks.MockAffiliateClickRepository) {
				mockLinks.EXPECT().GetByTrackingCode("A1B2C3D4E5F60718").Return(activeLink(1), nil)
				mockClicks.EXPECT().
					Create(gomock.Any()).
					DoAndReturn(func(click *domain.AffiliateClick) error {
						assert.Equal(t, "lnk_abc", click.LinkID)
						assert.NotEmpty(t, click.HashedIPAddress)
						assert.NotContains(t, click.HashedIPAddress, "203.0.113.7")
						assert.False(t, click.Converted)
						return nil
					})
			},
			validate: func(t *testing.T, redirectURL string, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "https://loja.example.com/teclado", redirectURL)
			},
		},
		{
			name: "Deve recusar tracking code desconhecido",
			setup: func(mockLinks *mocks.MockAffiliateLinkRepository, mockClicks *mocks.MockAffiliateClickRepository) {
				mockLinks.EXPECT().GetByTrackingCode("A1B2C3D4E5F60718").Return(nil, nil)
			},
			validate: func(t *testing.T, redirectURL string, err error) {
				assert.Empty(t, redirectURL)
				assert.ErrorIs(t, err, ErrLinkNotFound)
			},
		},
		{
			name: "Deve recusar link desativado sem registrar clique",
			setup: func(mockLinks *mocks.MockAffiliateLinkRepository, mockClicks *mocks.MockAffiliateClickRepository) {
				link := activeLink(1)
				link.IsActive = false
				mockLinks.EXPECT().GetByTrackingCode("A1B2C3D4E5F60718").Return(link, nil)
			},
			validate: func(t *testing.T, redirectURL string, err error) {
				assert.Empty(t, redirectURL)
				assert.ErrorIs(t, err, ErrLinkInactive)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockLinks := mocks.NewMockAffiliateLinkRepository(ctrl)
			mockClicks := mocks.NewMockAffiliateClickRepository(ctrl)
			tt.setup(mockLinks, mockClicks)

			service := &Service{linkRepo: mockLinks, clickRepo: mockClicks}

			redirectURL, err := service.TrackClick("A1B2C3D4E5F60718", request)
			tt.validate(t, redirectURL, err)
		})
	}
}

func TestRecordConversion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name            string
		commissionCents int64
		setup           func(mockLinks *mocks.MockAffiliateLinkRepository, mockClicks *mocks.MockAffiliateClickRepository)
		validate        func(t *testing.T, click *domain.AffiliateClick, err error)
	}{
		{
			name:            "Deve atribuir a comissão ao clique mais recente dentro da janela",
			commissionCents: 2500,
			setup: func(mockLinks *mocks.MockAffiliateLinkRepository, mockClicks *mocks.MockAffiliateClickRepository) {
				mockLinks.EXPECT().GetByID("lnk_abc").Return(activeLink(1), nil)
				mockClicks.EXPECT().
					ConvertMostRecentUnconverted("lnk_abc", int64(2500), gomock.Any(), gomock.Any()).
					DoAndReturn(func(linkID string, commissionCents int64, cutoff, convertedAt time.Time) (*domain.AffiliateClick, error) {
						// A janela de atribuição é de 30 dias
						assert.InDelta(t, 30*24*time.Hour, convertedAt.Sub(cutoff), float64(time.Minute))
						return &domain.AffiliateClick{
							ID:              "clk_1",
							LinkID:          linkID,
							Converted:       true,
							CommissionCents: commissionCents,
							ConversionDate:  &convertedAt,
						}, nil
					})
			},
			validate: func(t *testing.T, click *domain.AffiliateClick, err error) {
				assert.NoError(t, err)
				assert.True(t, click.Converted)
				assert.Equal(t, int64(2500), click.CommissionCents)
			},
		},
		{
			name:            "Deve falhar quando não há clique elegível na janela",
			commissionCents: 1000,
			setup: func(mockLinks *mocks.MockAffiliateLinkRepository, mockClicks *mocks.MockAffiliateClickRepository) {
				mockLinks.EXPECT().GetByID("lnk_abc").Return(activeLink(1), nil)
				mockClicks.EXPECT().
					ConvertMostRecentUnconverted("lnk_abc", int64(1000), gomock.Any(), gomock.Any()).
					Return(nil, repository.ErrNoRowsAffected)
			},
			validate: func(t *testing.T, click *domain.AffiliateClick, err error) {
				assert.Nil(t, click)
				assert.ErrorIs(t, err, ErrNoEligibleClick)
			},
		},
		{
			name:            "Deve rejeitar comissão negativa",
			commissionCents: -50,
			setup:           func(mockLinks *mocks.MockAffiliateLinkRepository, mockClicks *mocks.MockAffiliateClickRepository) {},
			validate: func(t *testing.T, click *domain.AffiliateClick, err error) {
				assert.Nil(t, click)
				assert.ErrorIs(t, err, ErrNegativeCommission)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockLinks := mocks.NewMockAffiliateLinkRepository(ctrl)
			mockClicks := mocks.NewMockAffiliateClickRepository(ctrl)
			tt.setup(mockLinks, mockClicks)

			service := &Service{linkRepo: mockLinks, clickRepo: mockClicks}

			click, err := service.RecordConversion(1, "lnk_abc", tt.commissionCents)
			tt.validate(t, click, err)
		})
	}
}

func TestGetPerformance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("Deve calcular taxa de conversão e comissão média da janela", func(t *testing.T) {
		mockLinks := mocks.NewMockAffiliateLinkRepository(ctrl)
		mockClicks := mocks.NewMockAffiliateClickRepository(ctrl)

		mockLinks.EXPECT().GetByID("lnk_abc").Return(activeLink(1), nil)
		mockClicks.EXPECT().
			WindowTotals("lnk_abc", gomock.Any(), gomock.Any()).
			Return(&domain.AffiliateClickTotals{
				TotalClicks:          200,
				UniqueClicks:         150,
				Conversions:          8,
				TotalCommissionCents: 20000,
			}, nil)

		service := &Service{linkRepo: mockLinks, clickRepo: mockClicks}

		report, err := service.GetPerformance(1, "lnk_abc", domain.Period30d)
		assert.NoError(t, err)
		assert.Equal(t, 4.0, report.ConversionRate)
		assert.Equal(t, 2500.0, report.AverageCommission)
	})
}

func TestGetSuggestions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name     string
		setup    func(mockLinks *mocks.MockAffiliateLinkRepository, mockClicks *mocks.MockAffiliateClickRepository)
		validate func(t *testing.T, suggestions []*domain.AffiliateSuggestion, err error)
	}{
		{
			name: "Artigo com muitos cliques sem conversão dispara no_conversions",
			setup: func(mockLinks *mocks.MockAffiliateLinkRepository, mockClicks *mocks.MockAffiliateClickRepository) {
				mockLinks.EXPECT().ListByCreator(1).Return([]*domain.AffiliateLink{activeLink(1)}, nil)
				mockClicks.EXPECT().
					WindowTotals("lnk_abc", gomock.Any(), gomock.Any()).
					Return(&domain.AffiliateClickTotals{TotalClicks: 95, Conversions: 2}, nil)
				mockClicks.EXPECT().
					ClicksByArticle("lnk_abc", gomock.Any(), gomock.Any()).
					Return([]*domain.ArticleClickCount{
						{ArticleID: "art_9", Clicks: 80, Conversions: 0},
					}, nil)
			},
			validate: func(t *testing.T, suggestions []*domain.AffiliateSuggestion, err error) {
				assert.NoError(t, err)
				assert.Len(t, suggestions, 1)
				assert.Equal(t, "no_conversions", suggestions[0].Rule)
				assert.Equal(t, "art_9", *suggestions[0].ArticleID)
			},
		},
		{
			name: "Poucos cliques dispara low_traffic",
			setup: func(mockLinks *mocks.MockAffiliateLinkRepository, mockClicks *mocks.MockAffiliateClickRepository) {
				mockLinks.EXPECT().ListByCreator(1).Return([]*domain.AffiliateLink{activeLink(1)}, nil)
				mockClicks.EXPECT().
					WindowTotals("lnk_abc", gomock.Any(), gomock.Any()).
					Return(&domain.AffiliateClickTotals{TotalClicks: 3}, nil)
				mockClicks.EXPECT().
					ClicksByArticle("lnk_abc", gomock.Any(), gomock.Any()).
					Return([]*domain.ArticleClickCount{}, nil)
			},
			validate: func(t *testing.T, suggestions []*domain.AffiliateSuggestion, err error) {
				assert.NoError(t, err)
				assert.Len(t, suggestions, 1)
				assert.Equal(t, "low_traffic", suggestions[0].Rule)
			},
		},
		{
			name: "Link custom com conversão baixa dispara custom_low_conversion",
			setup: func(mockLinks *mocks.MockAffiliateLinkRepository, mockClicks *mocks.MockAffiliateClickRepository) {
				link := activeLink(1)
				link.Network = domain.NetworkCustom
				mockLinks.EXPECT().ListByCreator(1).Return([]*domain.AffiliateLink{link}, nil)
				mockClicks.EXPECT().
					WindowTotals("lnk_abc", gomock.Any(), gomock.Any()).
					Return(&domain.AffiliateClickTotals{TotalClicks: 500, Conversions: 2}, nil)
				mockClicks.EXPECT().
					ClicksByArticle("lnk_abc", gomock.Any(), gomock.Any()).
					Return([]*domain.ArticleClickCount{
						{ArticleID: "art_1", Clicks: 30, Conversions: 1},
					}, nil)
			},
			validate: func(t *testing.T, suggestions []*domain.AffiliateSuggestion, err error) {
				assert.NoError(t, err)
				assert.Len(t, suggestions, 1)
				assert.Equal(t, "custom_low_conversion", suggestions[0].Rule)
			},
		},
		{
			name: "Link saudável recebe sugestão neutra e link inativo é ignorado",
			setup: func(mockLinks *mocks.MockAffiliateLinkRepository, mockClicks *mocks.MockAffiliateClickRepository) {
				healthy := activeLink(1)
				inactive := activeLink(1)
				inactive.ID = "lnk_off"
				inactive.IsActive = false
				mockLinks.EXPECT().ListByCreator(1).Return([]*domain.AffiliateLink{healthy, inactive}, nil)
				mockClicks.EXPECT().
					WindowTotals("lnk_abc", gomock.Any(), gomock.Any()).
					Return(&domain.AffiliateClickTotals{TotalClicks: 100, Conversions: 5}, nil)
				mockClicks.EXPECT().
					ClicksByArticle("lnk_abc", gomock.Any(), gomock.Any()).
					Return([]*domain.ArticleClickCount{
						{ArticleID: "art_1", Clicks: 60, Conversions: 3},
					}, nil)
			},
			validate: func(t *testing.T, suggestions []*domain.AffiliateSuggestion, err error) {
				assert.NoError(t, err)
				assert.Len(t, suggestions, 1)
				assert.Equal(t, "lnk_abc", suggestions[0].LinkID)
				assert.Equal(t, "performing_normally", suggestions[0].Rule)
				assert.Nil(t, suggestions[0].ArticleID)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockLinks := mocks.NewMockAffiliateLinkRepository(ctrl)
			mockClicks := mocks.NewMockAffiliateClickRepository(ctrl)
			tt.setup(mockLinks, mockClicks)

			service := &Service{linkRepo: mockLinks, clickRepo: mockClicks}

			suggestions, err := service.GetSuggestions(1, domain.Period30d)
			tt.validate(t, suggestions, err)
		})
	}
}
