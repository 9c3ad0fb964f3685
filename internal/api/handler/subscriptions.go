package handler

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	paymentdomain "github.com/vfg2006/creator-platform-api/infrastructure/integrator/paymentgw/domain"
	"github.com/vfg2006/creator-platform-api/internal/config"
	"github.com/vfg2006/creator-platform-api/internal/domain"
	"github.com/vfg2006/creator-platform-api/internal/usecases/subscribing"
	"github.com/vfg2006/creator-platform-api/pkg/apiErrors"
)

type StartCheckoutRequest struct {
	PlanID       string `json:"plan_id"`
	SubscriberID string `json:"subscriber_id"`
}

type OpenPortalRequest struct {
	SubscriberID string `json:"subscriber_id"`
}

// CreatePlan cadastra um plano de assinatura local e no processador de pagamento
func CreatePlan(service subscribing.SubscriptionManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := requestClaims(w, r)
		if !ok {
			return
		}

		var req domain.CreatePlanRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		plan, err := service.CreatePlan(userClaims.UserID, &req)
		if err != nil {
			handleSubscriptionError(w, err)
			return
		}

		respondJSON(w, http.StatusCreated, plan)
	}
}

// ListPlans lista os planos do criador
func ListPlans(service subscribing.SubscriptionManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := requestClaims(w, r)
		if !ok {
			return
		}

		onlyActive := r.URL.Query().Get("only_active") == "true"

		plans, err := service.ListPlans(userClaims.UserID, onlyActive)
		if err != nil {
			handleSubscriptionError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, plans)
	}
}

// DeactivatePlan desativa um plano, impedindo novas assinaturas
func DeactivatePlan(service subscribing.SubscriptionManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := requestClaims(w, r)
		if !ok {
			return
		}

		planID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.DeactivatePlan(userClaims.UserID, planID); err != nil {
			handleSubscriptionError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// StartCheckout cria uma sessão de checkout no processador de pagamento
func StartCheckout(service subscribing.SubscriptionManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := requestClaims(w, r); !ok {
			return
		}

		var req StartCheckoutRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		session, err := service.StartCheckout(req.PlanID, req.SubscriberID)
		if err != nil {
			handleSubscriptionError(w, err)
			return
		}

		respondJSON(w, http.StatusCreated, session)
	}
}

// OpenBillingPortal cria uma sessão do portal de autoatendimento de cobrança
func OpenBillingPortal(service subscribing.SubscriptionManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := requestClaims(w, r); !ok {
			return
		}

		var req OpenPortalRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		session, err := service.OpenBillingPortal(req.SubscriberID)
		if err != nil {
			handleSubscriptionError(w, err)
			return
		}

		respondJSON(w, http.StatusCreated, session)
	}
}

// CancelSubscription cancela uma assinatura no provedor e localmente
func CancelSubscription(service subscribing.SubscriptionManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := requestClaims(w, r)
		if !ok {
			return
		}

		subscriptionID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.CancelSubscription(userClaims.UserID, subscriptionID); err != nil {
			handleSubscriptionError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, map[string]string{"status": string(domain.SubscriptionCanceled)})
	}
}

// GetSubscriptionMetrics retorna as métricas de assinaturas da janela
func GetSubscriptionMetrics(service subscribing.SubscriptionManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := requestClaims(w, r)
		if !ok {
			return
		}

		metrics, err := service.GetMetrics(userClaims.UserID, requestPeriod(r))
		if err != nil {
			handleSubscriptionError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, metrics)
	}
}

// PaymentWebhook recebe eventos do processador de pagamento (rota pública,
// autenticada pela assinatura HMAC do corpo)
func PaymentWebhook(service subscribing.SubscriptionManager, cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao ler corpo da requisição", nil)
			return
		}

		if !validWebhookSignature(body, r.Header.Get("X-Webhook-Signature"), cfg.Payment.WebhookSecret) {
			logrus.Warn("Webhook de pagamento com assinatura inválida")
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Assinatura do webhook inválida", nil)
			return
		}

		var event paymentdomain.WebhookEvent
		if err := json.Unmarshal(body, &event); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de evento inválido", nil)
			return
		}

		logrus.WithFields(logrus.Fields{
			"event_id":        event.ID,
			"event_type":      event.Type,
			"subscription_id": event.Subscription.ID,
		}).Info("Evento do processador de pagamento recebido")

		if err := service.ProcessPaymentEvent(&event); err != nil {
			handleSubscriptionError(w, err)
			return
		}

		w.WriteHeader(http.StatusOK)
	}
}

// validWebhookSignature compara a assinatura HMAC-SHA256 do corpo com a recebida
func validWebhookSignature(body []byte, signature, secret string) bool {
	if signature == "" || secret == "" {
		return false
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature))
}

// handleSubscriptionError mapeia erros de assinaturas para respostas HTTP
func handleSubscriptionError(w http.ResponseWriter, err error) {
	var subErr *subscribing.SubscriptionError
	if errors.As(err, &subErr) {
		apiErrors.WriteError(w, subErr.Code, subErr.Error(), nil)
		return
	}

	logrus.WithError(err).Error("Erro inesperado em operação de assinaturas")
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao processar assinaturas", nil)
}
