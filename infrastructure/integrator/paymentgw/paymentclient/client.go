package paymentclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"time"

	paymentdomain "github.com/vfg2006/creator-platform-api/infrastructure/integrator/paymentgw/domain"
	"github.com/vfg2006/creator-platform-api/internal/config"
)

type Client interface {
	CreateCustomer(email, name string) (*paymentdomain.Customer, error)
	CreateProduct(name string) (*paymentdomain.Product, error)
	CreatePrice(productID string, unitAmount int64, currency string, intervalMonths int) (*paymentdomain.Price, error)
	CreateCheckoutSession(customerID, priceID, successURL, cancelURL string, metadata paymentdomain.CheckoutMetadata) (*paymentdomain.CheckoutSession, error)
	CreatePortalSession(customerID, returnURL string) (*paymentdomain.PortalSession, error)
	CancelSubscription(subscriptionID string) (*paymentdomain.ProviderSubscription, error)
}

type PaymentClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &PaymentClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		config: cfg,
	}
}

// doRequest monta a requisição autenticada ao provedor e decodifica a resposta
func (c *PaymentClient) doRequest(method, endpointPath string, payload, out interface{}) error {
	ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
	defer cancel()

	endpoint, err := url.Parse(c.config.Payment.URL)
	if err != nil {
		return fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, endpointPath)

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("erro ao serializar o payload: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), body)
	if err != nil {
		return fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.config.Payment.APIKey)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("requisição falhou com status: %s", resp.Status)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("erro ao decodificar a resposta: %w", err)
		}
	}

	return nil
}
