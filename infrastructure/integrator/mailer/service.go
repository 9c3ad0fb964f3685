package mailer

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	mailerdomain "github.com/vfg2006/creator-platform-api/infrastructure/integrator/mailer/domain"
	"github.com/vfg2006/creator-platform-api/infrastructure/integrator/mailer/mailerclient"
	"github.com/vfg2006/creator-platform-api/internal/config"
)

type MailerIntegrator interface {
	SendOne(message mailerdomain.Message) (*mailerdomain.SendResult, error)
	SendBatch(messages []mailerdomain.Message) (*mailerdomain.BatchReport, error)
}

type MailerService struct {
	cfg    *config.Config
	Client mailerclient.Client
}

func New(cfg *config.Config, client mailerclient.Client) MailerIntegrator {
	return &MailerService{
		cfg:    cfg,
		Client: client,
	}
}

func (s *MailerService) SendOne(message mailerdomain.Message) (*mailerdomain.SendResult, error) {
	result, err := s.Client.Send(message)
	if err != nil {
		return nil, fmt.Errorf("erro ao enviar email: %w", err)
	}

	return result, nil
}

// SendBatch envia as mensagens em lotes de tamanho fixo com uma pausa
// entre lotes para respeitar o rate limit do provedor. Falhas individuais
// são acumuladas no relatório sem interromper o lote.
func (s *MailerService) SendBatch(messages []mailerdomain.Message) (*mailerdomain.BatchReport, error) {
	report := &mailerdomain.BatchReport{}
	delay := time.Duration(s.cfg.Mailer.BatchDelayMs) * time.Millisecond

	batchSize := s.cfg.Mailer.BatchSize
	if batchSize <= 0 {
		batchSize = len(messages)
	}

	for start := 0; start < len(messages); start += batchSize {
		if start > 0 && delay > 0 {
			time.Sleep(delay)
		}

		end := start + batchSize
		if end > len(messages) {
			end = len(messages)
		}

		for _, message := range messages[start:end] {
			result, err := s.Client.Send(message)
			if err != nil {
				logrus.WithError(err).WithField("to", message.To).Warn("Falha ao enviar email do lote")
				report.Failed++
				report.Failures = append(report.Failures, mailerdomain.SendResult{
					To:       message.To,
					Accepted: false,
					Reason:   err.Error(),
				})
				continue
			}

			if !result.Accepted {
				report.Failed++
				report.Failures = append(report.Failures, *result)
				continue
			}

			report.Sent++
		}
	}

	return report, nil
}
