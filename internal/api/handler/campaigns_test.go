package handler

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/creator-platform-api/internal/config"
	"github.com/vfg2006/creator-platform-api/internal/domain"
	"github.com/vfg2006/creator-platform-api/internal/usecases/campaigning"
)

type stubCampaignManager struct {
	campaigning.CampaignManager
	processed *domain.MailerEvent
}

func (s *stubCampaignManager) ProcessMailerEvent(event *domain.MailerEvent) error {
	s.processed = event
	return nil
}

func signBody(body, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(body))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestMailerWebhook(t *testing.T) {
	cfg := &config.Config{}
	cfg.Mailer.WebhookSecret = "segredo-do-mailer"

	body := `{"type":"open","campaign_id":"cmp_1","subscriber_id":"sub_1"}`

	t.Run("Deve recusar evento sem assinatura válida", func(t *testing.T) {
		service := &stubCampaignManager{}
		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/mailer", strings.NewReader(body))
		req.Header.Set("X-Webhook-Signature", "assinatura-falsa")
		rec := httptest.NewRecorder()

		MailerWebhook(service, cfg).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Nil(t, service.processed)
	})

	t.Run("Deve recusar evento sem cabeçalho de assinatura", func(t *testing.T) {
		service := &stubCampaignManager{}
		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/mailer", strings.NewReader(body))
		rec := httptest.NewRecorder()

		MailerWebhook(service, cfg).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Nil(t, service.processed)
	})

	t.Run("Deve processar evento com assinatura HMAC válida", func(t *testing.T) {
		service := &stubCampaignManager{}
		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/mailer", strings.NewReader(body))
		req.Header.Set("X-Webhook-Signature", signBody(body, "segredo-do-mailer"))
		rec := httptest.NewRecorder()

		MailerWebhook(service, cfg).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NotNil(t, service.processed)
		assert.Equal(t, domain.MailerEventOpen, service.processed.Type)
		assert.Equal(t, "cmp_1", service.processed.CampaignID)
	})
}
