package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/creator-platform-api/internal/domain"
	"github.com/vfg2006/creator-platform-api/pkg/apiErrors"
	"github.com/vfg2006/creator-platform-api/pkg/middleware"
)

// requestClaims extrai as claims do usuário autenticado do contexto da requisição
func requestClaims(w http.ResponseWriter, r *http.Request) (*domain.Claims, bool) {
	userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
	if !ok {
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
		return nil, false
	}
	return userClaims, true
}

// respondJSON serializa a resposta como JSON
func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if payload == nil {
		return
	}

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logrus.WithError(err).Error("Erro ao serializar resposta")
	}
}

// requestPeriod lê o período da query string, com 30d como padrão
func requestPeriod(r *http.Request) domain.Period {
	period := domain.Period(r.URL.Query().Get("period"))
	if period == "" {
		return domain.Period30d
	}
	return period
}
