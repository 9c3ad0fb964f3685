package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/creator-platform-api/internal/config"
	"github.com/vfg2006/creator-platform-api/internal/domain"
	"github.com/vfg2006/creator-platform-api/internal/usecases/campaigning"
	"github.com/vfg2006/creator-platform-api/pkg/apiErrors"
)

type ScheduleCampaignRequest struct {
	ScheduledFor time.Time `json:"scheduled_for"`
}

type AddSubscriberRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// CreateCampaign cria uma campanha de email em rascunho
func CreateCampaign(service campaigning.CampaignManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := requestClaims(w, r)
		if !ok {
			return
		}

		var req domain.CreateCampaignRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		campaign, err := service.CreateCampaign(userClaims.UserID, &req)
		if err != nil {
			handleCampaignError(w, err)
			return
		}

		respondJSON(w, http.StatusCreated, campaign)
	}
}

// ListCampaigns lista as campanhas do criador
func ListCampaigns(service campaigning.CampaignManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := requestClaims(w, r)
		if !ok {
			return
		}

		campaigns, err := service.ListCampaigns(userClaims.UserID)
		if err != nil {
			handleCampaignError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, campaigns)
	}
}

// GetCampaign retorna uma campanha do criador
func GetCampaign(service campaigning.CampaignManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := requestClaims(w, r)
		if !ok {
			return
		}

		campaignID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		campaign, err := service.GetCampaign(userClaims.UserID, campaignID)
		if err != nil {
			handleCampaignError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, campaign)
	}
}

// UpdateCampaign atualiza assunto e corpo de uma campanha editável
func UpdateCampaign(service campaigning.CampaignManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := requestClaims(w, r)
		if !ok {
			return
		}

		campaignID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var req domain.UpdateCampaignRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		campaign, err := service.UpdateCampaign(userClaims.UserID, campaignID, &req)
		if err != nil {
			handleCampaignError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, campaign)
	}
}

// DeleteCampaign remove uma campanha em rascunho
func DeleteCampaign(service campaigning.CampaignManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := requestClaims(w, r)
		if !ok {
			return
		}

		campaignID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.DeleteCampaign(userClaims.UserID, campaignID); err != nil {
			handleCampaignError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// ScheduleCampaign agenda o envio de uma campanha para um horário futuro
func ScheduleCampaign(service campaigning.CampaignManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := requestClaims(w, r)
		if !ok {
			return
		}

		campaignID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var req ScheduleCampaignRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if err := service.ScheduleCampaign(userClaims.UserID, campaignID, req.ScheduledFor); err != nil {
			handleCampaignError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, map[string]any{
			"status":        string(domain.CampaignScheduled),
			"scheduled_for": req.ScheduledFor,
		})
	}
}

// SendCampaign dispara imediatamente o envio de uma campanha
func SendCampaign(service campaigning.CampaignManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := requestClaims(w, r)
		if !ok {
			return
		}

		campaignID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.SendCampaign(userClaims.UserID, campaignID); err != nil {
			handleCampaignError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, map[string]string{"status": string(domain.CampaignSent)})
	}
}

// GetCampaignReport retorna o relatório de entregas e engajamento da campanha
func GetCampaignReport(service campaigning.CampaignManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := requestClaims(w, r)
		if !ok {
			return
		}

		campaignID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		report, err := service.GetCampaignReport(userClaims.UserID, campaignID)
		if err != nil {
			handleCampaignError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, report)
	}
}

// AddSubscriber registra um assinante na lista do criador
func AddSubscriber(service campaigning.CampaignManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := requestClaims(w, r)
		if !ok {
			return
		}

		var req AddSubscriberRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		subscriber, err := service.AddSubscriber(userClaims.UserID, req.Email, req.Name)
		if err != nil {
			handleCampaignError(w, err)
			return
		}

		respondJSON(w, http.StatusCreated, subscriber)
	}
}

// UnsubscribeSubscriber remove um assinante da lista de envio
func UnsubscribeSubscriber(service campaigning.CampaignManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := requestClaims(w, r); !ok {
			return
		}

		subscriberID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.UnsubscribeSubscriber(subscriberID); err != nil {
			handleCampaignError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// MailerWebhook recebe eventos de entrega do provedor de email (rota pública,
// autenticada pela assinatura HMAC do corpo)
func MailerWebhook(service campaigning.CampaignManager, cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao ler corpo da requisição", nil)
			return
		}

		if !validWebhookSignature(body, r.Header.Get("X-Webhook-Signature"), cfg.Mailer.WebhookSecret) {
			logrus.Warn("Webhook do provedor de email com assinatura inválida")
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Assinatura do webhook inválida", nil)
			return
		}

		var event domain.MailerEvent
		if err := json.Unmarshal(body, &event); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de evento inválido", nil)
			return
		}

		logrus.WithFields(logrus.Fields{
			"type":          event.Type,
			"campaign_id":   event.CampaignID,
			"subscriber_id": event.SubscriberID,
		}).Info("Evento do provedor de email recebido")

		if err := service.ProcessMailerEvent(&event); err != nil {
			handleCampaignError(w, err)
			return
		}

		w.WriteHeader(http.StatusOK)
	}
}

// handleCampaignError mapeia erros de campanhas para respostas HTTP
func handleCampaignError(w http.ResponseWriter, err error) {
	var campaignErr *campaigning.CampaignError
	if errors.As(err, &campaignErr) {
		apiErrors.WriteError(w, campaignErr.Code, campaignErr.Error(), nil)
		return
	}

	logrus.WithError(err).Error("Erro inesperado em operação de campanhas")
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao processar campanhas", nil)
}
