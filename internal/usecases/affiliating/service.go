package affiliating

import (
	"net/url"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/creator-platform-api/infrastructure/repository"
	"github.com/vfg2006/creator-platform-api/internal/domain"
	"github.com/vfg2006/creator-platform-api/pkg/apiErrors"
	"github.com/vfg2006/creator-platform-api/pkg/utils"
)

// attributionWindow limita a idade máxima de um clique para receber conversão
const attributionWindow = 30 * 24 * time.Hour

const maxNameLength = 200
const maxCategoryLength = 100

type AffiliateManager interface {
	CreateLink(creatorID int, req *domain.CreateAffiliateLinkRequest) (*domain.AffiliateLink, error)
	GetLink(creatorID int, linkID string) (*domain.AffiliateLink, error)
	ListLinks(creatorID int) ([]*domain.AffiliateLink, error)
	UpdateLink(creatorID int, linkID string, req *domain.UpdateAffiliateLinkRequest) (*domain.AffiliateLink, error)
	DeleteLink(creatorID int, linkID string) (deleted bool, err error)
	TrackClick(trackingCode string, req *domain.TrackClickRequest) (redirectURL string, err error)
	RecordConversion(creatorID int, linkID string, commissionCents int64) (*domain.AffiliateClick, error)
	GetPerformance(creatorID int, linkID string, period domain.Period) (*domain.AffiliatePerformanceReport, error)
	GetClicksByArticle(creatorID int, linkID string, period domain.Period) ([]*domain.ArticleClickCount, error)
	GetSuggestions(creatorID int, period domain.Period) ([]*domain.AffiliateSuggestion, error)
}

type Service struct {
	linkRepo  repository.AffiliateLinkRepository
	clickRepo repository.AffiliateClickRepository
}

func NewService(linkRepo repository.AffiliateLinkRepository, clickRepo repository.AffiliateClickRepository) AffiliateManager {
	return &Service{
		linkRepo:  linkRepo,
		clickRepo: clickRepo,
	}
}

func (s *Service) CreateLink(creatorID int, req *domain.CreateAffiliateLinkRequest) (*domain.AffiliateLink, error) {
	if err := validateLinkFields(req.Name, req.OriginalURL, req.CommissionRate, req.Category); err != nil {
		return nil, err
	}

	if !domain.IsValidAffiliateNetwork(req.Network) {
		return nil, NewAffiliateError(ErrInvalidNetwork, apiErrors.ErrInvalidRequest, "Rede deve ser amazon, hotmart, shareasale ou custom")
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, NewAffiliateError(err, apiErrors.ErrInternalServer, "Erro ao gerar identificador")
	}

	link := &domain.AffiliateLink{
		ID:             id,
		CreatorID:      creatorID,
		Name:           req.Name,
		OriginalURL:    req.OriginalURL,
		Network:        req.Network,
		CommissionRate: req.CommissionRate,
		Category:       req.Category,
		IsActive:       true,
	}

	// Colisões de tracking code são improváveis (64 bits aleatórios) mas a
	// constraint de unicidade cobre o caso; basta gerar outro código e repetir
	for attempt := 0; attempt < 3; attempt++ {
		code, err := utils.GenerateTrackingCode()
		if err != nil {
			return nil, NewAffiliateError(err, apiErrors.ErrInternalServer, "Erro ao gerar tracking code")
		}
		link.TrackingCode = code

		err = s.linkRepo.Create(link)
		if err == nil {
			return link, nil
		}
		if err != repository.ErrDuplicateKey {
			return nil, NewAffiliateError(err, apiErrors.ErrDatabaseOperation, "Erro ao criar link")
		}

		logrus.WithField("tracking_code", code).Warn("Colisão de tracking code, gerando novo código")
	}

	return nil, NewAffiliateError(repository.ErrDuplicateKey, apiErrors.ErrInternalServer, "Não foi possível gerar um tracking code único")
}

func (s *Service) GetLink(creatorID int, linkID string) (*domain.AffiliateLink, error) {
	return s.ownedLink(creatorID, linkID)
}

func (s *Service) ListLinks(creatorID int) ([]*domain.AffiliateLink, error) {
	links, err := s.linkRepo.ListByCreator(creatorID)
	if err != nil {
		return nil, NewAffiliateError(err, apiErrors.ErrDatabaseOperation, "Erro ao listar links")
	}

	return links, nil
}

func (s *Service) UpdateLink(creatorID int, linkID string, req *domain.UpdateAffiliateLinkRequest) (*domain.AffiliateLink, error) {
	link, err := s.ownedLink(creatorID, linkID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		link.Name = *req.Name
	}
	if req.OriginalURL != nil {
		link.OriginalURL = *req.OriginalURL
	}
	if req.CommissionRate != nil {
		link.CommissionRate = *req.CommissionRate
	}
	if req.Category != nil {
		link.Category = *req.Category
	}
	if req.IsActive != nil {
		link.IsActive = *req.IsActive
	}

	if err := validateLinkFields(link.Name, link.OriginalURL, link.CommissionRate, link.Category); err != nil {
		return nil, err
	}

	if err := s.linkRepo.Update(link); err != nil {
		return nil, NewAffiliateError(err, apiErrors.ErrDatabaseOperation, "Erro ao atualizar link")
	}

	return link, nil
}

// DeleteLink remove o link definitivamente apenas quando não há cliques
// registrados; com histórico, o link é desativado para preservar os dados
func (s *Service) DeleteLink(creatorID int, linkID string) (bool, error) {
	link, err := s.ownedLink(creatorID, linkID)
	if err != nil {
		return false, err
	}

	clicks, err := s.linkRepo.ClickCount(link.ID)
	if err != nil {
		return false, NewAffiliateError(err, apiErrors.ErrDatabaseOperation, "Erro ao contar cliques do link")
	}

	if clicks == 0 {
		if err := s.linkRepo.HardDelete(link.ID); err != nil {
			return false, NewAffiliateError(err, apiErrors.ErrDatabaseOperation, "Erro ao remover link")
		}
		return true, nil
	}

	if err := s.linkRepo.Deactivate(link.ID); err != nil {
		return false, NewAffiliateError(err, apiErrors.ErrDatabaseOperation, "Erro ao desativar link")
	}

	return false, nil
}

// TrackClick registra o clique e devolve a URL de destino para redirecionamento.
// O IP do visitante nunca é armazenado em claro.
func (s *Service) TrackClick(trackingCode string, req *domain.TrackClickRequest) (string, error) {
	link, err := s.linkRepo.GetByTrackingCode(trackingCode)
	if err != nil {
		return "", NewAffiliateError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar link")
	}
	if link == nil {
		return "", NewAffiliateError(ErrLinkNotFound, apiErrors.ErrResourceNotFound, "Tracking code desconhecido")
	}
	if !link.IsActive {
		return "", NewLinkAffiliateError(ErrLinkInactive, apiErrors.ErrLinkInactive, link.ID, "Link desativado")
	}

	id, err := utils.GenerateID()
	if err != nil {
		return "", NewAffiliateError(err, apiErrors.ErrInternalServer, "Erro ao gerar identificador")
	}

	click := &domain.AffiliateClick{
		ID:              id,
		LinkID:          link.ID,
		ArticleID:       req.ArticleID,
		ClickedAt:       time.Now().UTC(),
		HashedIPAddress: utils.HashIPAddress(req.IPAddress),
		UserAgent:       req.UserAgent,
		Referrer:        req.Referrer,
	}

	if err := s.clickRepo.Create(click); err != nil {
		return "", NewAffiliateError(err, apiErrors.ErrDatabaseOperation, "Erro ao registrar clique")
	}

	return link.OriginalURL, nil
}

// RecordConversion atribui a comissão ao clique não convertido mais recente
// dentro da janela de atribuição de 30 dias (last-click attribution)
func (s *Service) RecordConversion(creatorID int, linkID string, commissionCents int64) (*domain.AffiliateClick, error) {
	if commissionCents < 0 {
		return nil, NewAffiliateError(ErrNegativeCommission, apiErrors.ErrOutOfRange, "Comissão deve ser não-negativa")
	}

	link, err := s.ownedLink(creatorID, linkID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	cutoff := now.Add(-attributionWindow)

	click, err := s.clickRepo.ConvertMostRecentUnconverted(link.ID, commissionCents, cutoff, now)
	if err != nil {
		if err == repository.ErrNoRowsAffected {
			return nil, NewLinkAffiliateError(ErrNoEligibleClick, apiErrors.ErrNoEligibleClick, link.ID, "Nenhum clique não convertido nos últimos 30 dias")
		}
		return nil, NewAffiliateError(err, apiErrors.ErrDatabaseOperation, "Erro ao registrar conversão")
	}

	return click, nil
}

func (s *Service) GetPerformance(creatorID int, linkID string, period domain.Period) (*domain.AffiliatePerformanceReport, error) {
	link, err := s.ownedLink(creatorID, linkID)
	if err != nil {
		return nil, err
	}

	timeframe, err := domain.ResolveTimeframe(period, time.Now())
	if err != nil {
		return nil, NewAffiliateError(ErrInvalidPeriod, apiErrors.ErrInvalidRequest, err.Error())
	}

	totals, err := s.clickRepo.WindowTotals(link.ID, timeframe.Start, timeframe.End)
	if err != nil {
		return nil, NewAffiliateError(err, apiErrors.ErrDatabaseOperation, "Erro ao agregar cliques")
	}

	return &domain.AffiliatePerformanceReport{
		LinkID:               link.ID,
		Name:                 link.Name,
		Network:              link.Network,
		TotalClicks:          totals.TotalClicks,
		UniqueClicks:         totals.UniqueClicks,
		Conversions:          totals.Conversions,
		ConversionRate:       domain.CalculateConversionRate(totals.Conversions, totals.TotalClicks),
		TotalCommissionCents: totals.TotalCommissionCents,
		AverageCommission:    domain.CalculateAverageCommission(totals.TotalCommissionCents, totals.Conversions),
	}, nil
}

func (s *Service) GetClicksByArticle(creatorID int, linkID string, period domain.Period) ([]*domain.ArticleClickCount, error) {
	link, err := s.ownedLink(creatorID, linkID)
	if err != nil {
		return nil, err
	}

	timeframe, err := domain.ResolveTimeframe(period, time.Now())
	if err != nil {
		return nil, NewAffiliateError(ErrInvalidPeriod, apiErrors.ErrInvalidRequest, err.Error())
	}

	counts, err := s.clickRepo.ClicksByArticle(link.ID, timeframe.Start, timeframe.End)
	if err != nil {
		return nil, NewAffiliateError(err, apiErrors.ErrDatabaseOperation, "Erro ao agregar cliques por artigo")
	}

	return counts, nil
}

// GetSuggestions aplica heurísticas simples sobre os números da janela e
// devolve recomendações de otimização por link
func (s *Service) GetSuggestions(creatorID int, period domain.Period) ([]*domain.AffiliateSuggestion, error) {
	timeframe, err := domain.ResolveTimeframe(period, time.Now())
	if err != nil {
		return nil, NewAffiliateError(ErrInvalidPeriod, apiErrors.ErrInvalidRequest, err.Error())
	}

	links, err := s.linkRepo.ListByCreator(creatorID)
	if err != nil {
		return nil, NewAffiliateError(err, apiErrors.ErrDatabaseOperation, "Erro ao listar links")
	}

	suggestions := make([]*domain.AffiliateSuggestion, 0)
	for _, link := range links {
		if !link.IsActive {
			continue
		}

		totals, err := s.clickRepo.WindowTotals(link.ID, timeframe.Start, timeframe.End)
		if err != nil {
			return nil, NewAffiliateError(err, apiErrors.ErrDatabaseOperation, "Erro ao agregar cliques")
		}

		articles, err := s.clickRepo.ClicksByArticle(link.ID, timeframe.Start, timeframe.End)
		if err != nil {
			return nil, NewAffiliateError(err, apiErrors.ErrDatabaseOperation, "Erro ao agregar cliques por artigo")
		}

		suggestions = append(suggestions, suggestForLink(link, totals, articles))
	}

	return suggestions, nil
}

// suggestForLink avalia as regras em ordem de prioridade; a primeira que
// disparar define a sugestão do link. Links sem regra disparada recebem a
// sugestão neutra de desempenho normal.
func suggestForLink(link *domain.AffiliateLink, totals *domain.AffiliateClickTotals, articles []*domain.ArticleClickCount) *domain.AffiliateSuggestion {
	conversionRate := domain.CalculateConversionRate(totals.Conversions, totals.TotalClicks)

	// A regra de cliques sem conversão olha o artigo de origem, não o link
	for _, article := range articles {
		if article.Clicks > 50 && article.Conversions == 0 {
			articleID := article.ArticleID
			return &domain.AffiliateSuggestion{
				LinkID:    link.ID,
				ArticleID: &articleID,
				Rule:      "no_conversions",
				Message:   "Artigo com muitos cliques e nenhuma conversão; revise o posicionamento do link no conteúdo",
			}
		}
	}

	switch {
	case totals.TotalClicks < 10:
		return &domain.AffiliateSuggestion{
			LinkID:  link.ID,
			Rule:    "low_traffic",
			Message: "Poucos cliques na janela; divulgue o link em mais artigos",
		}
	case link.Network == domain.NetworkCustom && conversionRate < 1.0:
		return &domain.AffiliateSuggestion{
			LinkID:  link.ID,
			Rule:    "custom_low_conversion",
			Message: "Conversão baixa para link custom; considere uma rede com melhor tracking",
		}
	case conversionRate < 2.0:
		return &domain.AffiliateSuggestion{
			LinkID:  link.ID,
			Rule:    "low_conversion",
			Message: "Taxa de conversão abaixo de 2%; teste outro posicionamento ou call-to-action",
		}
	}

	return &domain.AffiliateSuggestion{
		LinkID:  link.ID,
		Rule:    "performing_normally",
		Message: "Link com desempenho normal na janela; nenhuma ação necessária",
	}
}

// ownedLink busca o link e garante que pertence ao criador autenticado
func (s *Service) ownedLink(creatorID int, linkID string) (*domain.AffiliateLink, error) {
	link, err := s.linkRepo.GetByID(linkID)
	if err != nil {
		return nil, NewAffiliateError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar link")
	}
	if link == nil {
		return nil, NewAffiliateError(ErrLinkNotFound, apiErrors.ErrResourceNotFound, "Link não encontrado")
	}
	if link.CreatorID != creatorID {
		return nil, NewLinkAffiliateError(ErrNotLinkOwner, apiErrors.ErrNotResourceOwner, link.ID, "Link pertence a outro criador")
	}

	return link, nil
}

func validateLinkFields(name, originalURL string, commissionRate float64, category string) error {
	if name == "" || len(name) > maxNameLength {
		return NewAffiliateError(ErrInvalidName, apiErrors.ErrInvalidRequest, "Nome deve ter entre 1 e 200 caracteres")
	}

	parsed, err := url.Parse(originalURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return NewAffiliateError(ErrInvalidURL, apiErrors.ErrInvalidFormat, "URL deve ser http ou https")
	}

	if commissionRate < 0 || commissionRate > 100 {
		return NewAffiliateError(ErrInvalidRate, apiErrors.ErrOutOfRange, "Taxa de comissão deve estar entre 0 e 100")
	}

	if len(category) > maxCategoryLength {
		return NewAffiliateError(ErrInvalidCategory, apiErrors.ErrInvalidRequest, "Categoria deve ter no máximo 100 caracteres")
	}

	return nil
}
