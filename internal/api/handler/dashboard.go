package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/creator-platform-api/internal/usecases/dashboarding"
	"github.com/vfg2006/creator-platform-api/pkg/apiErrors"
)

// GetDashboard retorna o painel consolidado do criador para a janela pedida
func GetDashboard(service dashboarding.DashboardManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := requestClaims(w, r)
		if !ok {
			return
		}

		report, err := service.GetDashboard(userClaims.UserID, requestPeriod(r))
		if err != nil {
			var dashErr *dashboarding.DashboardError
			if errors.As(err, &dashErr) {
				apiErrors.WriteError(w, dashErr.Code, dashErr.Error(), nil)
				return
			}

			logrus.WithError(err).WithField("creator_id", userClaims.UserID).
				Error("Erro ao montar dashboard")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao montar dashboard", nil)
			return
		}

		respondJSON(w, http.StatusOK, report)
	}
}
