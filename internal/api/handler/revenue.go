package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/creator-platform-api/internal/domain"
	"github.com/vfg2006/creator-platform-api/internal/usecases/revenue"
	"github.com/vfg2006/creator-platform-api/pkg/apiErrors"
)

// RecordRevenue registra (ou mescla) a receita diária de uma origem de anúncios
func RecordRevenue(service revenue.RevenueManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := requestClaims(w, r)
		if !ok {
			return
		}

		var req domain.RecordRevenueRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		record, err := service.RecordRevenue(userClaims.UserID, &req)
		if err != nil {
			handleRevenueError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, record)
	}
}

// GetRevenueReport retorna o relatório consolidado de receita da janela
func GetRevenueReport(service revenue.RevenueManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := requestClaims(w, r)
		if !ok {
			return
		}

		report, err := service.GetWindowReport(userClaims.UserID, requestPeriod(r))
		if err != nil {
			handleRevenueError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, report)
	}
}

// GetMonthlyRevenue retorna a quebra mensal de receita
func GetMonthlyRevenue(service revenue.RevenueManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := requestClaims(w, r)
		if !ok {
			return
		}

		months := 0
		if raw := r.URL.Query().Get("months"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro months inválido", nil)
				return
			}
			months = parsed
		}

		breakdown, err := service.GetMonthlyBreakdown(userClaims.UserID, months)
		if err != nil {
			handleRevenueError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, breakdown)
	}
}

// GetTopRevenueDays retorna os dias de maior receita da janela
func GetTopRevenueDays(service revenue.RevenueManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := requestClaims(w, r)
		if !ok {
			return
		}

		var limit uint64
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.ParseUint(raw, 10, 64)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro limit inválido", nil)
				return
			}
			limit = parsed
		}

		days, err := service.GetTopPerformingDays(userClaims.UserID, requestPeriod(r), limit)
		if err != nil {
			handleRevenueError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, days)
	}
}

// CompareRevenueSources compara as origens de receita com a janela anterior
func CompareRevenueSources(service revenue.RevenueManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := requestClaims(w, r)
		if !ok {
			return
		}

		comparison, err := service.CompareSources(userClaims.UserID, requestPeriod(r))
		if err != nil {
			handleRevenueError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, comparison)
	}
}

// handleRevenueError mapeia erros de receita para respostas HTTP
func handleRevenueError(w http.ResponseWriter, err error) {
	var revenueErr *revenue.RevenueError
	if errors.As(err, &revenueErr) {
		apiErrors.WriteError(w, revenueErr.Code, revenueErr.Error(), nil)
		return
	}

	logrus.WithError(err).Error("Erro inesperado em operação de receita")
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao processar receita", nil)
}
