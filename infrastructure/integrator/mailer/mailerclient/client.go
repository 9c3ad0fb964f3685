package mailerclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"time"

	mailerdomain "github.com/vfg2006/creator-platform-api/infrastructure/integrator/mailer/domain"
	"github.com/vfg2006/creator-platform-api/internal/config"
)

type Client interface {
	Send(message mailerdomain.Message) (*mailerdomain.SendResult, error)
}

type MailerClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &MailerClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		config: cfg,
	}
}

type sendRequest struct {
	FromEmail string `json:"from_email"`
	FromName  string `json:"from_name"`
	To        string `json:"to"`
	ToName    string `json:"to_name,omitempty"`
	Subject   string `json:"subject"`
	HTMLBody  string `json:"html_body"`
}

type sendResponse struct {
	MessageID string `json:"message_id"`
	Status    string `json:"status"`
}

func (c *MailerClient) Send(message mailerdomain.Message) (*mailerdomain.SendResult, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
	defer cancel()

	endpoint, err := url.Parse(c.config.Mailer.URL)
	if err != nil {
		return nil, fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, "/v1/messages")

	payload, err := json.Marshal(sendRequest{
		FromEmail: c.config.Mailer.FromEmail,
		FromName:  c.config.Mailer.FromName,
		To:        message.To,
		ToName:    message.ToName,
		Subject:   message.Subject,
		HTMLBody:  message.HTMLBody,
	})
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar o payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.config.Mailer.APIKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		return &mailerdomain.SendResult{
			To:       message.To,
			Accepted: false,
			Reason:   resp.Status,
		}, nil
	}

	var response sendResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return &mailerdomain.SendResult{
		To:        message.To,
		MessageID: response.MessageID,
		Accepted:  true,
	}, nil
}
