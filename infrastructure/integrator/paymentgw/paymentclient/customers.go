package paymentclient

import (
	"net/http"

	paymentdomain "github.com/vfg2006/creator-platform-api/infrastructure/integrator/paymentgw/domain"
)

type createCustomerRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

func (c *PaymentClient) CreateCustomer(email, name string) (*paymentdomain.Customer, error) {
	customer := &paymentdomain.Customer{}
	err := c.doRequest(http.MethodPost, "/v1/customers", createCustomerRequest{
		Email: email,
		Name:  name,
	}, customer)
	if err != nil {
		return nil, err
	}

	return customer, nil
}
