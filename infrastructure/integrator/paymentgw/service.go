package paymentgw

import (
	"fmt"

	paymentdomain "github.com/vfg2006/creator-platform-api/infrastructure/integrator/paymentgw/domain"
	"github.com/vfg2006/creator-platform-api/infrastructure/integrator/paymentgw/paymentclient"
	"github.com/vfg2006/creator-platform-api/internal/config"
	"github.com/vfg2006/creator-platform-api/internal/domain"
)

type PaymentIntegrator interface {
	RegisterCustomer(email, name string) (*paymentdomain.Customer, error)
	RegisterPlan(name string, priceCents int64, currency string, intervalMonths int) (productID, priceID string, err error)
	StartCheckout(customerID, priceID string, metadata paymentdomain.CheckoutMetadata) (*paymentdomain.CheckoutSession, error)
	OpenBillingPortal(customerID string) (*paymentdomain.PortalSession, error)
	CancelSubscription(providerSubscriptionID string) (*paymentdomain.ProviderSubscription, error)
}

type PaymentService struct {
	cfg    *config.Config
	Client paymentclient.Client
}

func New(cfg *config.Config, client paymentclient.Client) PaymentIntegrator {
	return &PaymentService{
		cfg:    cfg,
		Client: client,
	}
}

func (s *PaymentService) RegisterCustomer(email, name string) (*paymentdomain.Customer, error) {
	customer, err := s.Client.CreateCustomer(email, name)
	if err != nil {
		return nil, fmt.Errorf("erro ao registrar cliente no provedor: %w", err)
	}

	return customer, nil
}

// RegisterPlan cria o produto e o preço recorrente no provedor
func (s *PaymentService) RegisterPlan(name string, priceCents int64, currency string, intervalMonths int) (string, string, error) {
	product, err := s.Client.CreateProduct(name)
	if err != nil {
		return "", "", fmt.Errorf("erro ao criar produto no provedor: %w", err)
	}

	price, err := s.Client.CreatePrice(product.ID, priceCents, currency, intervalMonths)
	if err != nil {
		return "", "", fmt.Errorf("erro ao criar preço no provedor: %w", err)
	}

	return product.ID, price.ID, nil
}

func (s *PaymentService) StartCheckout(customerID, priceID string, metadata paymentdomain.CheckoutMetadata) (*paymentdomain.CheckoutSession, error) {
	session, err := s.Client.CreateCheckoutSession(
		customerID,
		priceID,
		s.cfg.Payment.CheckoutSuccessURL,
		s.cfg.Payment.CheckoutCancelURL,
		metadata,
	)
	if err != nil {
		return nil, fmt.Errorf("erro ao iniciar checkout: %w", err)
	}

	return session, nil
}

func (s *PaymentService) OpenBillingPortal(customerID string) (*paymentdomain.PortalSession, error) {
	session, err := s.Client.CreatePortalSession(customerID, s.cfg.Payment.PortalReturnURL)
	if err != nil {
		return nil, fmt.Errorf("erro ao abrir portal de cobrança: %w", err)
	}

	return session, nil
}

func (s *PaymentService) CancelSubscription(providerSubscriptionID string) (*paymentdomain.ProviderSubscription, error) {
	subscription, err := s.Client.CancelSubscription(providerSubscriptionID)
	if err != nil {
		return nil, fmt.Errorf("erro ao cancelar assinatura no provedor: %w", err)
	}

	return subscription, nil
}

// MapProviderStatus traduz o status do provedor para o status local.
// Status desconhecidos caem em incomplete para não perder o registro.
func MapProviderStatus(providerStatus string) domain.SubscriptionStatus {
	switch providerStatus {
	case "active", "trialing":
		return domain.SubscriptionActive
	case "past_due", "unpaid":
		return domain.SubscriptionPastDue
	case "canceled", "incomplete_expired":
		return domain.SubscriptionCanceled
	default:
		return domain.SubscriptionIncomplete
	}
}
