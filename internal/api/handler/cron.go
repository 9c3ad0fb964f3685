package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/creator-platform-api/internal/scheduler"
	"github.com/vfg2006/creator-platform-api/pkg/apiErrors"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeCampaignDispatch = "campaign-dispatch"
	CronJobTypeEngagementSync   = "engagement-sync"
	CronJobTypeAll              = "all"
)

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	CampaignDispatchService *scheduler.CampaignDispatchService
	EngagementSyncService   *scheduler.EngagementSyncService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		// Verificar permissões - apenas administradores podem executar cron jobs
		userClaims, ok := requestClaims(w, r)
		if !ok {
			return
		}
		if !userClaims.IsAdmin() {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem executar cron jobs", nil)
			return
		}

		// Obter o tipo de cron job da URL
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeCampaignDispatch:
			if services.CampaignDispatchService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de disparo de campanhas não disponível", nil)
				return
			}
			services.CampaignDispatchService.TriggerManualDispatch()

		case CronJobTypeEngagementSync:
			if services.EngagementSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização de engajamento não disponível", nil)
				return
			}
			services.EngagementSyncService.TriggerManualSync()

		case CronJobTypeAll:
			if services.CampaignDispatchService != nil {
				services.CampaignDispatchService.TriggerManualDispatch()
			}
			if services.EngagementSyncService != nil {
				services.EngagementSyncService.TriggerManualSync()
			}

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: campaign-dispatch, engagement-sync, all", nil)
			return
		}

		// Responder com sucesso
		response := map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		// Verificar permissões - apenas administradores podem ver status das crons
		userClaims, ok := requestClaims(w, r)
		if !ok {
			return
		}
		if !userClaims.IsAdmin() {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem verificar status de cron jobs", nil)
			return
		}

		status := map[string]any{
			"campaign-dispatch": services.CampaignDispatchService.GetStatus(),
			"engagement-sync":   services.EngagementSyncService.GetStatus(),
		}

		json.NewEncoder(w).Encode(status)
	}
}
