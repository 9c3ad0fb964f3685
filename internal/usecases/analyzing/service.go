package analyzing

import (
	"time"

	"github.com/vfg2006/creator-platform-api/infrastructure/repository"
	"github.com/vfg2006/creator-platform-api/internal/domain"
	"github.com/vfg2006/creator-platform-api/pkg/apiErrors"
	"github.com/vfg2006/creator-platform-api/pkg/utils"
)

const maxTitleLength = 200

type AnalyticsManager interface {
	CreateArticle(creatorID int, req *domain.CreateArticleRequest) (*domain.Article, error)
	ListArticles(creatorID int) ([]*domain.Article, error)
	PublishArticle(creatorID int, articleID string) error
	TrackEvent(creatorID int, articleID string, counter domain.ArticleCounter) error
	AddTimeOnPage(creatorID int, articleID string, seconds int64) error
	AddAdRevenue(creatorID int, articleID string, revenueCents int64) error
	SetBounceRate(creatorID int, articleID string, rate float64) error
	GetArticleSummary(creatorID int, articleID string, period domain.Period) (*domain.ArticlePerformanceSummary, error)
	GetTagPerformance(creatorID int, period domain.Period) ([]*domain.TagPerformance, error)
}

type Service struct {
	articleRepo   repository.ArticleRepository
	analyticsRepo repository.ArticleAnalyticsRepository
}

func NewService(articleRepo repository.ArticleRepository, analyticsRepo repository.ArticleAnalyticsRepository) AnalyticsManager {
	return &Service{
		articleRepo:   articleRepo,
		analyticsRepo: analyticsRepo,
	}
}

func (s *Service) CreateArticle(creatorID int, req *domain.CreateArticleRequest) (*domain.Article, error) {
	if req.Title == "" || len(req.Title) > maxTitleLength {
		return nil, NewAnalyticsError(ErrInvalidTitle, apiErrors.ErrInvalidRequest, "Título deve ter entre 1 e 200 caracteres")
	}
	if req.Slug == "" {
		return nil, NewAnalyticsError(ErrInvalidSlug, apiErrors.ErrMissingRequiredData, "Slug é obrigatório")
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, NewAnalyticsError(err, apiErrors.ErrInternalServer, "Erro ao gerar identificador")
	}

	article := &domain.Article{
		ID:        id,
		CreatorID: creatorID,
		Title:     req.Title,
		Slug:      req.Slug,
		Tags:      req.Tags,
		Status:    domain.ArticleDraft,
	}

	if err := s.articleRepo.Create(article); err != nil {
		return nil, NewAnalyticsError(err, apiErrors.ErrDatabaseOperation, "Erro ao criar artigo")
	}

	return article, nil
}

func (s *Service) ListArticles(creatorID int) ([]*domain.Article, error) {
	articles, err := s.articleRepo.ListByCreator(creatorID)
	if err != nil {
		return nil, NewAnalyticsError(err, apiErrors.ErrDatabaseOperation, "Erro ao listar artigos")
	}

	return articles, nil
}

func (s *Service) PublishArticle(creatorID int, articleID string) error {
	article, err := s.ownedArticle(creatorID, articleID)
	if err != nil {
		return err
	}

	if article.Status == domain.ArticlePublished {
		return NewAnalyticsError(ErrAlreadyPublished, apiErrors.ErrInvalidTransition, "Artigo já publicado")
	}

	if err := s.articleRepo.Publish(article.ID, time.Now().UTC()); err != nil {
		return NewAnalyticsError(err, apiErrors.ErrDatabaseOperation, "Erro ao publicar artigo")
	}

	return nil
}

// TrackEvent incrementa o contador diário do artigo. Cada chamada soma um;
// deduplicar visitantes é responsabilidade de quem emite o evento.
func (s *Service) TrackEvent(creatorID int, articleID string, counter domain.ArticleCounter) error {
	if !domain.IsValidArticleCounter(counter) {
		return NewAnalyticsError(ErrInvalidCounter, apiErrors.ErrInvalidRequest, "Contador desconhecido")
	}

	article, err := s.ownedArticle(creatorID, articleID)
	if err != nil {
		return err
	}

	id, err := utils.GenerateID()
	if err != nil {
		return NewAnalyticsError(err, apiErrors.ErrInternalServer, "Erro ao gerar identificador")
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)
	if err := s.analyticsRepo.IncrementCounter(id, article.ID, today, counter); err != nil {
		return NewAnalyticsError(err, apiErrors.ErrDatabaseOperation, "Erro ao incrementar contador")
	}

	return nil
}

func (s *Service) AddTimeOnPage(creatorID int, articleID string, seconds int64) error {
	if seconds < 0 {
		return NewAnalyticsError(ErrNegativeValue, apiErrors.ErrOutOfRange, "Tempo de página deve ser não-negativo")
	}

	article, err := s.ownedArticle(creatorID, articleID)
	if err != nil {
		return err
	}

	id, err := utils.GenerateID()
	if err != nil {
		return NewAnalyticsError(err, apiErrors.ErrInternalServer, "Erro ao gerar identificador")
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)
	if err := s.analyticsRepo.AddTimeOnPage(id, article.ID, today, seconds); err != nil {
		return NewAnalyticsError(err, apiErrors.ErrDatabaseOperation, "Erro ao acumular tempo de página")
	}

	return nil
}

func (s *Service) AddAdRevenue(creatorID int, articleID string, revenueCents int64) error {
	if revenueCents < 0 {
		return NewAnalyticsError(ErrNegativeValue, apiErrors.ErrOutOfRange, "Receita deve ser não-negativa")
	}

	article, err := s.ownedArticle(creatorID, articleID)
	if err != nil {
		return err
	}

	id, err := utils.GenerateID()
	if err != nil {
		return NewAnalyticsError(err, apiErrors.ErrInternalServer, "Erro ao gerar identificador")
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)
	if err := s.analyticsRepo.AddAdRevenue(id, article.ID, today, revenueCents); err != nil {
		return NewAnalyticsError(err, apiErrors.ErrDatabaseOperation, "Erro ao acumular receita do artigo")
	}

	return nil
}

// SetBounceRate grava a taxa de rejeição do dia corrente do artigo.
// Reportes repetidos no mesmo dia substituem o valor anterior.
func (s *Service) SetBounceRate(creatorID int, articleID string, rate float64) error {
	if rate < 0 || rate > 100 {
		return NewAnalyticsError(ErrInvalidRate, apiErrors.ErrOutOfRange, "Taxa de rejeição deve estar entre 0 e 100")
	}

	article, err := s.ownedArticle(creatorID, articleID)
	if err != nil {
		return err
	}

	id, err := utils.GenerateID()
	if err != nil {
		return NewAnalyticsError(err, apiErrors.ErrInternalServer, "Erro ao gerar identificador")
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)
	if err := s.analyticsRepo.SetBounceRate(id, article.ID, today, rate); err != nil {
		return NewAnalyticsError(err, apiErrors.ErrDatabaseOperation, "Erro ao gravar taxa de rejeição")
	}

	return nil
}

// GetArticleSummary agrega os contadores da janela e calcula o score de
// performance (0 a 100) do artigo. Janelas sem dados produzem score zero.
func (s *Service) GetArticleSummary(creatorID int, articleID string, period domain.Period) (*domain.ArticlePerformanceSummary, error) {
	article, err := s.ownedArticle(creatorID, articleID)
	if err != nil {
		return nil, err
	}

	timeframe, err := domain.ResolveTimeframe(period, time.Now())
	if err != nil {
		return nil, NewAnalyticsError(ErrInvalidPeriod, apiErrors.ErrInvalidRequest, err.Error())
	}

	totals, err := s.analyticsRepo.ArticleWindowTotals(article.ID, timeframe.Start, timeframe.End)
	if err != nil {
		return nil, NewAnalyticsError(err, apiErrors.ErrDatabaseOperation, "Erro ao agregar analytics do artigo")
	}

	engagementActions := totals.SocialShares + totals.AffiliateClicks + totals.NewsletterSignups
	score := domain.CalculatePerformanceScore(totals.PageViews, engagementActions, totals.AdRevenueCents)

	return &domain.ArticlePerformanceSummary{
		ArticleID:        article.ID,
		StartDate:        timeframe.Start.Format(time.DateOnly),
		EndDate:          timeframe.End.AddDate(0, 0, -1).Format(time.DateOnly),
		Totals:           totals,
		PerformanceScore: score,
		PerformanceLevel: domain.PerformanceLevel(score),
	}, nil
}

func (s *Service) GetTagPerformance(creatorID int, period domain.Period) ([]*domain.TagPerformance, error) {
	timeframe, err := domain.ResolveTimeframe(period, time.Now())
	if err != nil {
		return nil, NewAnalyticsError(ErrInvalidPeriod, apiErrors.ErrInvalidRequest, err.Error())
	}

	tags, err := s.analyticsRepo.TagPerformance(creatorID, timeframe.Start, timeframe.End)
	if err != nil {
		return nil, NewAnalyticsError(err, apiErrors.ErrDatabaseOperation, "Erro ao agregar performance por tag")
	}

	return tags, nil
}

func (s *Service) ownedArticle(creatorID int, articleID string) (*domain.Article, error) {
	article, err := s.articleRepo.GetByID(articleID)
	if err != nil {
		return nil, NewAnalyticsError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar artigo")
	}
	if article == nil {
		return nil, NewAnalyticsError(ErrArticleNotFound, apiErrors.ErrResourceNotFound, "Artigo não encontrado")
	}
	if article.CreatorID != creatorID {
		return nil, NewAnalyticsError(ErrNotArticleOwner, apiErrors.ErrNotResourceOwner, "Artigo pertence a outro criador")
	}

	return article, nil
}
