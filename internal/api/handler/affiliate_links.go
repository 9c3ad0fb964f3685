package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/creator-platform-api/internal/domain"
	"github.com/vfg2006/creator-platform-api/internal/usecases/affiliating"
	"github.com/vfg2006/creator-platform-api/pkg/apiErrors"
	"github.com/vfg2006/creator-platform-api/pkg/utils"
)

type RecordConversionRequest struct {
	CommissionCents int64 `json:"commission_cents"`
}

// CreateAffiliateLink cria um link de afiliado com código de rastreio único
func CreateAffiliateLink(service affiliating.AffiliateManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := requestClaims(w, r)
		if !ok {
			return
		}

		var req domain.CreateAffiliateLinkRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		link, err := service.CreateLink(userClaims.UserID, &req)
		if err != nil {
			handleAffiliateError(w, err)
			return
		}

		respondJSON(w, http.StatusCreated, link)
	}
}

// ListAffiliateLinks lista os links de afiliado do criador
func ListAffiliateLinks(service affiliating.AffiliateManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := requestClaims(w, r)
		if !ok {
			return
		}

		links, err := service.ListLinks(userClaims.UserID)
		if err != nil {
			handleAffiliateError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, links)
	}
}

// GetAffiliateLink retorna um link de afiliado do criador
func GetAffiliateLink(service affiliating.AffiliateManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := requestClaims(w, r)
		if !ok {
			return
		}

		linkID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		link, err := service.GetLink(userClaims.UserID, linkID)
		if err != nil {
			handleAffiliateError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, link)
	}
}

// UpdateAffiliateLink atualiza parcialmente um link de afiliado
func UpdateAffiliateLink(service affiliating.AffiliateManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := requestClaims(w, r)
		if !ok {
			return
		}

		linkID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var req domain.UpdateAffiliateLinkRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		link, err := service.UpdateLink(userClaims.UserID, linkID, &req)
		if err != nil {
			handleAffiliateError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, link)
	}
}

// DeleteAffiliateLink remove um link sem cliques ou o desativa quando há histórico
func DeleteAffiliateLink(service affiliating.AffiliateManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := requestClaims(w, r)
		if !ok {
			return
		}

		linkID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		deleted, err := service.DeleteLink(userClaims.UserID, linkID)
		if err != nil {
			handleAffiliateError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, map[string]any{
			"deleted":     deleted,
			"deactivated": !deleted,
		})
	}
}

// RedirectAffiliateLink é a rota pública de redirecionamento: registra o clique
// e redireciona o visitante para a URL original do link
func RedirectAffiliateLink(service affiliating.AffiliateManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		trackingCode := httprouter.ParamsFromContext(r.Context()).ByName("code")

		req := &domain.TrackClickRequest{
			IPAddress: utils.ClientIP(r),
			UserAgent: r.UserAgent(),
			Referrer:  r.Referer(),
		}
		if articleID := r.URL.Query().Get("article_id"); articleID != "" {
			req.ArticleID = &articleID
		}

		redirectURL, err := service.TrackClick(trackingCode, req)
		if err != nil {
			handleAffiliateError(w, err)
			return
		}

		http.Redirect(w, r, redirectURL, http.StatusFound)
	}
}

// RecordAffiliateConversion marca como convertido o clique elegível mais recente
func RecordAffiliateConversion(service affiliating.AffiliateManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := requestClaims(w, r)
		if !ok {
			return
		}

		linkID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var req RecordConversionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		click, err := service.RecordConversion(userClaims.UserID, linkID, req.CommissionCents)
		if err != nil {
			handleAffiliateError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, click)
	}
}

// GetAffiliatePerformance retorna o desempenho do link na janela
func GetAffiliatePerformance(service affiliating.AffiliateManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := requestClaims(w, r)
		if !ok {
			return
		}

		linkID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		report, err := service.GetPerformance(userClaims.UserID, linkID, requestPeriod(r))
		if err != nil {
			handleAffiliateError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, report)
	}
}

// GetAffiliateClicksByArticle agrupa os cliques do link por artigo de origem
func GetAffiliateClicksByArticle(service affiliating.AffiliateManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := requestClaims(w, r)
		if !ok {
			return
		}

		linkID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		counts, err := service.GetClicksByArticle(userClaims.UserID, linkID, requestPeriod(r))
		if err != nil {
			handleAffiliateError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, counts)
	}
}

// GetAffiliateSuggestions retorna sugestões de otimização dos links do criador
func GetAffiliateSuggestions(service affiliating.AffiliateManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := requestClaims(w, r)
		if !ok {
			return
		}

		suggestions, err := service.GetSuggestions(userClaims.UserID, requestPeriod(r))
		if err != nil {
			handleAffiliateError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, suggestions)
	}
}

// handleAffiliateError mapeia erros de afiliados para respostas HTTP
func handleAffiliateError(w http.ResponseWriter, err error) {
	var affErr *affiliating.AffiliateError
	if errors.As(err, &affErr) {
		apiErrors.WriteError(w, affErr.Code, affErr.Error(), nil)
		return
	}

	logrus.WithError(err).Error("Erro inesperado em operação de afiliados")
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao processar links de afiliado", nil)
}
