package mailer

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	mailerdomain "github.com/vfg2006/creator-platform-api/infrastructure/integrator/mailer/domain"
	"github.com/vfg2006/creator-platform-api/internal/config"
)

// fakeClient registra o instante de cada envio para permitir verificar
// onde as pausas entre lotes acontecem
type fakeClient struct {
	sentAt  []time.Time
	failFor map[string]error
	rejects map[string]bool
}

func (c *fakeClient) Send(message mailerdomain.Message) (*mailerdomain.SendResult, error) {
	c.sentAt = append(c.sentAt, time.Now())

	if err, ok := c.failFor[message.To]; ok {
		return nil, err
	}

	if c.rejects[message.To] {
		return &mailerdomain.SendResult{To: message.To, Accepted: false, Reason: "caixa cheia"}, nil
	}

	return &mailerdomain.SendResult{To: message.To, MessageID: "msg_1", Accepted: true}, nil
}

func newMessages(n int) []mailerdomain.Message {
	messages := make([]mailerdomain.Message, 0, n)
	for i := 0; i < n; i++ {
		messages = append(messages, mailerdomain.Message{
			To:       fmt.Sprintf("assinante%d@exemplo.com", i),
			Subject:  "Novidades da semana",
			HTMLBody: "<p>Olá</p>",
		})
	}

	return messages
}

func TestSendBatch(t *testing.T) {
	t.Run("Deve pausar entre lotes e não entre mensagens do mesmo lote", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.Mailer.BatchSize = 2
		cfg.Mailer.BatchDelayMs = 60

		client := &fakeClient{}
		service := New(cfg, client)

		report, err := service.SendBatch(newMessages(5))

		assert.NoError(t, err)
		assert.Equal(t, 5, report.Sent)
		assert.Equal(t, 0, report.Failed)
		assert.Len(t, client.sentAt, 5)

		// Lotes de 2 sobre 5 mensagens rendem exatamente 2 pausas,
		// entre as posições 1->2 e 3->4
		threshold := 30 * time.Millisecond
		pauses := 0
		for i := 1; i < len(client.sentAt); i++ {
			if client.sentAt[i].Sub(client.sentAt[i-1]) >= threshold {
				pauses++
			}
		}
		assert.Equal(t, 2, pauses)
	})

	t.Run("Deve acumular falhas individuais sem interromper o lote", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.Mailer.BatchSize = 10
		cfg.Mailer.BatchDelayMs = 0

		client := &fakeClient{
			failFor: map[string]error{"assinante1@exemplo.com": errors.New("timeout")},
			rejects: map[string]bool{"assinante2@exemplo.com": true},
		}
		service := New(cfg, client)

		report, err := service.SendBatch(newMessages(4))

		assert.NoError(t, err)
		assert.Equal(t, 2, report.Sent)
		assert.Equal(t, 2, report.Failed)
		assert.Len(t, report.Failures, 2)
		assert.Equal(t, "assinante1@exemplo.com", report.Failures[0].To)
		assert.Equal(t, "timeout", report.Failures[0].Reason)
		assert.Equal(t, "caixa cheia", report.Failures[1].Reason)
	})

	t.Run("Deve enviar tudo em um único lote quando o tamanho não está configurado", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.Mailer.BatchDelayMs = 100

		client := &fakeClient{}
		service := New(cfg, client)

		start := time.Now()
		report, err := service.SendBatch(newMessages(3))

		assert.NoError(t, err)
		assert.Equal(t, 3, report.Sent)
		assert.Less(t, time.Since(start), 100*time.Millisecond)
	})
}
