package paymentclient

import (
	"fmt"
	"net/http"

	paymentdomain "github.com/vfg2006/creator-platform-api/infrastructure/integrator/paymentgw/domain"
)

type createCheckoutSessionRequest struct {
	CustomerID string                          `json:"customer"`
	PriceID    string                          `json:"price"`
	SuccessURL string                          `json:"success_url"`
	CancelURL  string                          `json:"cancel_url"`
	Metadata   paymentdomain.CheckoutMetadata  `json:"metadata"`
}

func (c *PaymentClient) CreateCheckoutSession(customerID, priceID, successURL, cancelURL string, metadata paymentdomain.CheckoutMetadata) (*paymentdomain.CheckoutSession, error) {
	session := &paymentdomain.CheckoutSession{}
	err := c.doRequest(http.MethodPost, "/v1/checkout/sessions", createCheckoutSessionRequest{
		CustomerID: customerID,
		PriceID:    priceID,
		SuccessURL: successURL,
		CancelURL:  cancelURL,
		Metadata:   metadata,
	}, session)
	if err != nil {
		return nil, err
	}

	return session, nil
}

type createPortalSessionRequest struct {
	CustomerID string `json:"customer"`
	ReturnURL  string `json:"return_url"`
}

func (c *PaymentClient) CreatePortalSession(customerID, returnURL string) (*paymentdomain.PortalSession, error) {
	session := &paymentdomain.PortalSession{}
	err := c.doRequest(http.MethodPost, "/v1/billing_portal/sessions", createPortalSessionRequest{
		CustomerID: customerID,
		ReturnURL:  returnURL,
	}, session)
	if err != nil {
		return nil, err
	}

	return session, nil
}

func (c *PaymentClient) CancelSubscription(subscriptionID string) (*paymentdomain.ProviderSubscription, error) {
	subscription := &paymentdomain.ProviderSubscription{}
	endpoint := fmt.Sprintf("/v1/subscriptions/%s/cancel", subscriptionID)
	err := c.doRequest(http.MethodPost, endpoint, nil, subscription)
	if err != nil {
		return nil, err
	}

	return subscription, nil
}
