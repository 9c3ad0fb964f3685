package paymentclient

import (
	"net/http"

	paymentdomain "github.com/vfg2006/creator-platform-api/infrastructure/integrator/paymentgw/domain"
)

type createProductRequest struct {
	Name string `json:"name"`
}

func (c *PaymentClient) CreateProduct(name string) (*paymentdomain.Product, error) {
	product := &paymentdomain.Product{}
	err := c.doRequest(http.MethodPost, "/v1/products", createProductRequest{
		Name: name,
	}, product)
	if err != nil {
		return nil, err
	}

	return product, nil
}

type createPriceRequest struct {
	ProductID      string `json:"product"`
	UnitAmount     int64  `json:"unit_amount"`
	Currency       string `json:"currency"`
	IntervalMonths int    `json:"interval_months"`
}

func (c *PaymentClient) CreatePrice(productID string, unitAmount int64, currency string, intervalMonths int) (*paymentdomain.Price, error) {
	price := &paymentdomain.Price{}
	err := c.doRequest(http.MethodPost, "/v1/prices", createPriceRequest{
		ProductID:      productID,
		UnitAmount:     unitAmount,
		Currency:       currency,
		IntervalMonths: intervalMonths,
	}, price)
	if err != nil {
		return nil, err
	}

	return price, nil
}
