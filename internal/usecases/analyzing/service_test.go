package analyzing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/creator-platform-api/infrastructure/repository/mocks"
	"github.com/vfg2006/creator-platform-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func draftArticle(creatorID int) *domain.Article {
	return &domain.Article{
		ID:        "art_abc",
		CreatorID: creatorID,
		Title:     "Melhores teclados mecânicos de 2024",
		Slug:      "melhores-teclados-mecanicos-2024",
		Tags:      []string{"tech", "reviews"},
		Status:    domain.ArticleDraft,
	}
}

func TestCreateArticle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name     string
		request  *domain.CreateArticleRequest
		setup    func(mockArticles *mocks.MockArticleRepository)
		validate func(t *testing.T, article *domain.Article, err error)
	}{
		{
			name: "Deve criar o artigo como rascunho",
			request: &domain.CreateArticleRequest{
				Title: "Melhores teclados mecânicos de 2024",
				Slug:  "melhores-teclados-mecanicos-2024",
				Tags:  []string{"tech"},
			},
			setup: func(mockArticles *mocks.MockArticleRepository) {
				mockArticles.EXPECT().Create(gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, article *domain.Article, err error) {
				assert.NoError(t, err)
				assert.Equal(t, domain.ArticleDraft, article.Status)
				assert.Nil(t, article.PublishedAt)
			},
		},
		{
			name:    "Deve rejeitar título vazio",
			request: &domain.CreateArticleRequest{Slug: "sem-titulo"},
			setup:   func(mockArticles *mocks.MockArticleRepository) {},
			validate: func(t *testing.T, article *domain.Article, err error) {
				assert.Nil(t, article)
				assert.ErrorIs(t, err, ErrInvalidTitle)
			},
		},
		{
			name:    "Deve rejeitar slug vazio",
			request: &domain.CreateArticleRequest{Title: "Sem slug"},
			setup:   func(mockArticles *mocks.MockArticleRepository) {},
			validate: func(t *testing.T, article *domain.Article, err error) {
				assert.Nil(t, article)
				assert.ErrorIs(t, err, ErrInvalidSlug)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockArticles := mocks.NewMockArticleRepository(ctrl)
			mockAnalytics := mocks.NewMockArticleAnalyticsRepository(ctrl)
			tt.setup(mockArticles)

			service := &Service{articleRepo: mockArticles, analyticsRepo: mockAnalytics}

			article, err := service.CreateArticle(1, tt.request)
			tt.validate(t, article, err)
		})
	}
}

func TestPublishArticle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name     string
		setup    func(mockArticles *mocks.MockArticleRepository)
		validate func(t *testing.T, err error)
	}{
		{
			name: "Deve publicar rascunho",
			setup: func(mockArticles *mocks.MockArticleRepository) {
				mockArticles.EXPECT().GetByID("art_abc").Return(draftArticle(1), nil)
				mockArticles.EXPECT().Publish("art_abc", gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name: "Deve recusar publicar artigo já publicado",
			setup: func(mockArticles *mocks.MockArticleRepository) {
				article := draftArticle(1)
				article.Status = domain.ArticlePublished
				mockArticles.EXPECT().GetByID("art_abc").Return(article, nil)
			},
			validate: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrAlreadyPublished)
			},
		},
		{
			name: "Deve recusar artigo de outro criador",
			setup: func(mockArticles *mocks.MockArticleRepository) {
				mockArticles.EXPECT().GetByID("art_abc").Return(draftArticle(42), nil)
			},
			validate: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrNotArticleOwner)
			},
		},
		{
			name: "Deve recusar artigo inexistente",
			setup: func(mockArticles *mocks.MockArticleRepository) {
				mockArticles.EXPECT().GetByID("art_abc").Return(nil, nil)
			},
			validate: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrArticleNotFound)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockArticles := mocks.NewMockArticleRepository(ctrl)
			mockAnalytics := mocks.NewMockArticleAnalyticsRepository(ctrl)
			tt.setup(mockArticles)

			service := &Service{articleRepo: mockArticles, analyticsRepo: mockAnalytics}

			err := service.PublishArticle(1, "art_abc")
			tt.validate(t, err)
		})
	}
}

func TestTrackEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("Deve incrementar o contador do dia corrente", func(t *testing.T) {
		mockArticles := mocks.NewMockArticleRepository(ctrl)
		mockAnalytics := mocks.NewMockArticleAnalyticsRepository(ctrl)

		mockArticles.EXPECT().GetByID("art_abc").Return(draftArticle(1), nil)
		mockAnalytics.EXPECT().
			IncrementCounter(gomock.Any(), "art_abc", gomock.Any(), domain.CounterPageViews).
			Return(nil)

		service := &Service{articleRepo: mockArticles, analyticsRepo: mockAnalytics}

		err := service.TrackEvent(1, "art_abc", domain.CounterPageViews)
		assert.NoError(t, err)
	})

	t.Run("Deve rejeitar contador desconhecido antes de consultar o artigo", func(t *testing.T) {
		mockArticles := mocks.NewMockArticleRepository(ctrl)
		mockAnalytics := mocks.NewMockArticleAnalyticsRepository(ctrl)

		service := &Service{articleRepo: mockArticles, analyticsRepo: mockAnalytics}

		err := service.TrackEvent(1, "art_abc", "likes")
		assert.ErrorIs(t, err, ErrInvalidCounter)
	})
}

func TestAddTimeOnPage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("Deve acumular segundos de página", func(t *testing.T) {
		mockArticles := mocks.NewMockArticleRepository(ctrl)
		mockAnalytics := mocks.NewMockArticleAnalyticsRepository(ctrl)

		mockArticles.EXPECT().GetByID("art_abc").Return(draftArticle(1), nil)
		mockAnalytics.EXPECT().
			AddTimeOnPage(gomock.Any(), "art_abc", gomock.Any(), int64(95)).
			Return(nil)

		service := &Service{articleRepo: mockArticles, analyticsRepo: mockAnalytics}

		err := service.AddTimeOnPage(1, "art_abc", 95)
		assert.NoError(t, err)
	})

	t.Run("Deve rejeitar tempo negativo", func(t *testing.T) {
		mockArticles := mocks.NewMockArticleRepository(ctrl)
		mockAnalytics := mocks.NewMockArticleAnalyticsRepository(ctrl)

		service := &Service{articleRepo: mockArticles, analyticsRepo: mockAnalytics}

		err := service.AddTimeOnPage(1, "art_abc", -10)
		assert.ErrorIs(t, err, ErrNegativeValue)
	})
}

func TestSetBounceRate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("Deve gravar a taxa de rejeição do dia corrente", func(t *testing.T) {
		mockArticles := mocks.NewMockArticleRepository(ctrl)
		mockAnalytics := mocks.NewMockArticleAnalyticsRepository(ctrl)

		mockArticles.EXPECT().GetByID("art_abc").Return(draftArticle(1), nil)
		mockAnalytics.EXPECT().
			SetBounceRate(gomock.Any(), "art_abc", gomock.Any(), 42.5).
			Return(nil)

		service := &Service{articleRepo: mockArticles, analyticsRepo: mockAnalytics}

		err := service.SetBounceRate(1, "art_abc", 42.5)
		assert.NoError(t, err)
	})

	t.Run("Deve rejeitar taxa acima de 100", func(t *testing.T) {
		mockArticles := mocks.NewMockArticleRepository(ctrl)
		mockAnalytics := mocks.NewMockArticleAnalyticsRepository(ctrl)

		service := &Service{articleRepo: mockArticles, analyticsRepo: mockAnalytics}

		err := service.SetBounceRate(1, "art_abc", 180)
		assert.ErrorIs(t, err, ErrInvalidRate)
	})

	t.Run("Deve rejeitar taxa negativa", func(t *testing.T) {
		mockArticles := mocks.NewMockArticleRepository(ctrl)
		mockAnalytics := mocks.NewMockArticleAnalyticsRepository(ctrl)

		service := &Service{articleRepo: mockArticles, analyticsRepo: mockAnalytics}

		err := service.SetBounceRate(1, "art_abc", -1)
		assert.ErrorIs(t, err, ErrInvalidRate)
	})
}

func TestGetArticleSummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name     string
		totals   *domain.ArticleAnalyticsTotals
		validate func(t *testing.T, summary *domain.ArticlePerformanceSummary, err error)
	}{
		{
			name: "Score satura em 100 quando todos os insumos batem no teto",
			totals: &domain.ArticleAnalyticsTotals{
				PageViews:         100000,
				SocialShares:      500,
				AffiliateClicks:   500,
				NewsletterSignups: 500,
				AdRevenueCents:    1000000,
			},
			validate: func(t *testing.T, summary *domain.ArticlePerformanceSummary, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 100.0, summary.PerformanceScore)
				assert.Equal(t, "excellent", summary.PerformanceLevel)
			},
		},
		{
			name: "Score soma visualizações, engajamento e receita abaixo dos tetos",
			totals: &domain.ArticleAnalyticsTotals{
				PageViews:       5000, // 5000/250 = 20 pontos
				SocialShares:    30,
				AffiliateClicks: 15,
				// engajamento 45/5 = 9 pontos
				AdRevenueCents: 6000, // 6000/1000 = 6 pontos
			},
			validate: func(t *testing.T, summary *domain.ArticlePerformanceSummary, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 35.0, summary.PerformanceScore)
				assert.Equal(t, "poor", summary.PerformanceLevel)
			},
		},
		{
			name:   "Janela sem dados produz score zero",
			totals: &domain.ArticleAnalyticsTotals{},
			validate: func(t *testing.T, summary *domain.ArticlePerformanceSummary, err error) {
				assert.NoError(t, err)
				assert.Zero(t, summary.PerformanceScore)
				assert.Equal(t, "poor", summary.PerformanceLevel)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockArticles := mocks.NewMockArticleRepository(ctrl)
			mockAnalytics := mocks.NewMockArticleAnalyticsRepository(ctrl)

			mockArticles.EXPECT().GetByID("art_abc").Return(draftArticle(1), nil)
			mockAnalytics.EXPECT().
				ArticleWindowTotals("art_abc", gomock.Any(), gomock.Any()).
				Return(tt.totals, nil)

			service := &Service{articleRepo: mockArticles, analyticsRepo: mockAnalytics}

			summary, err := service.GetArticleSummary(1, "art_abc", domain.Period30d)
			tt.validate(t, summary, err)
		})
	}
}

func TestGetTagPerformance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("Deve repassar a agregação por tag da janela", func(t *testing.T) {
		mockArticles := mocks.NewMockArticleRepository(ctrl)
		mockAnalytics := mocks.NewMockArticleAnalyticsRepository(ctrl)

		mockAnalytics.EXPECT().
			TagPerformance(1, gomock.Any(), gomock.Any()).
			Return([]*domain.TagPerformance{
				{Tag: "tech", Articles: 12, PageViews: 40000, AdRevenueCents: 90000},
			}, nil)

		service := &Service{articleRepo: mockArticles, analyticsRepo: mockAnalytics}

		tags, err := service.GetTagPerformance(1, domain.Period90d)
		assert.NoError(t, err)
		assert.Len(t, tags, 1)
		assert.Equal(t, "tech", tags[0].Tag)
	})

	t.Run("Deve rejeitar período desconhecido", func(t *testing.T) {
		mockArticles := mocks.NewMockArticleRepository(ctrl)
		mockAnalytics := mocks.NewMockArticleAnalyticsRepository(ctrl)

		service := &Service{articleRepo: mockArticles, analyticsRepo: mockAnalytics}

		tags, err := service.GetTagPerformance(1, "2w")
		assert.Nil(t, tags)
		assert.ErrorIs(t, err, ErrInvalidPeriod)
	})
}
