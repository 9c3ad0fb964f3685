package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/creator-platform-api/internal/domain"
	"github.com/vfg2006/creator-platform-api/internal/usecases/analyzing"
	"github.com/vfg2006/creator-platform-api/pkg/apiErrors"
)

type TrackArticleEventRequest struct {
	Event domain.ArticleCounter `json:"event"`
}

type AddTimeOnPageRequest struct {
	Seconds int64 `json:"seconds"`
}

type AddArticleAdRevenueRequest struct {
	RevenueCents int64 `json:"revenue_cents"`
}

type SetArticleBounceRateRequest struct {
	Rate float64 `json:"rate"`
}

// CreateArticle registra um novo artigo em rascunho
func CreateArticle(service analyzing.AnalyticsManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := requestClaims(w, r)
		if !ok {
			return
		}

		var req domain.CreateArticleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		article, err := service.CreateArticle(userClaims.UserID, &req)
		if err != nil {
			handleAnalyticsError(w, err)
			return
		}

		respondJSON(w, http.StatusCreated, article)
	}
}

// ListArticles lista os artigos do criador
func ListArticles(service analyzing.AnalyticsManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := requestClaims(w, r)
		if !ok {
			return
		}

		articles, err := service.ListArticles(userClaims.UserID)
		if err != nil {
			handleAnalyticsError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, articles)
	}
}

// PublishArticle move um artigo de rascunho para publicado
func PublishArticle(service analyzing.AnalyticsManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := requestClaims(w, r)
		if !ok {
			return
		}

		articleID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.PublishArticle(userClaims.UserID, articleID); err != nil {
			handleAnalyticsError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, map[string]string{"status": string(domain.ArticlePublished)})
	}
}

// TrackArticleEvent incrementa um contador diário de analytics do artigo
func TrackArticleEvent(service analyzing.AnalyticsManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := requestClaims(w, r)
		if !ok {
			return
		}

		articleID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var req TrackArticleEventRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if err := service.TrackEvent(userClaims.UserID, articleID, req.Event); err != nil {
			handleAnalyticsError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// AddArticleTimeOnPage acumula segundos de leitura no dia corrente
func AddArticleTimeOnPage(service analyzing.AnalyticsManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := requestClaims(w, r)
		if !ok {
			return
		}

		articleID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var req AddTimeOnPageRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if err := service.AddTimeOnPage(userClaims.UserID, articleID, req.Seconds); err != nil {
			handleAnalyticsError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// AddArticleAdRevenue acumula receita de anúncios atribuída ao artigo no dia corrente
func AddArticleAdRevenue(service analyzing.AnalyticsManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := requestClaims(w, r)
		if !ok {
			return
		}

		articleID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var req AddArticleAdRevenueRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if err := service.AddAdRevenue(userClaims.UserID, articleID, req.RevenueCents); err != nil {
			handleAnalyticsError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// SetArticleBounceRate grava a taxa de rejeição do artigo no dia corrente
func SetArticleBounceRate(service analyzing.AnalyticsManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := requestClaims(w, r)
		if !ok {
			return
		}

		articleID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var req SetArticleBounceRateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if err := service.SetBounceRate(userClaims.UserID, articleID, req.Rate); err != nil {
			handleAnalyticsError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// GetArticleSummary retorna o resumo de desempenho do artigo na janela
func GetArticleSummary(service analyzing.AnalyticsManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := requestClaims(w, r)
		if !ok {
			return
		}

		articleID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		summary, err := service.GetArticleSummary(userClaims.UserID, articleID, requestPeriod(r))
		if err != nil {
			handleAnalyticsError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, summary)
	}
}

// GetTagPerformance agrega o desempenho dos artigos publicados por tag
func GetTagPerformance(service analyzing.AnalyticsManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := requestClaims(w, r)
		if !ok {
			return
		}

		tags, err := service.GetTagPerformance(userClaims.UserID, requestPeriod(r))
		if err != nil {
			handleAnalyticsError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, tags)
	}
}

// handleAnalyticsError mapeia erros de analytics para respostas HTTP
func handleAnalyticsError(w http.ResponseWriter, err error) {
	var analyticsErr *analyzing.AnalyticsError
	if errors.As(err, &analyticsErr) {
		apiErrors.WriteError(w, analyticsErr.Code, analyticsErr.Error(), nil)
		return
	}

	logrus.WithError(err).Error("Erro inesperado em operação de analytics")
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao processar analytics", nil)
}
