package domain

import "time"

// Customer é o cliente registrado no processador de pagamento
type Customer struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Product é o produto cadastrado no processador para um plano
type Product struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Price é o preço recorrente vinculado a um produto
type Price struct {
	ID             string `json:"id"`
	ProductID      string `json:"product"`
	UnitAmount     int64  `json:"unit_amount"`
	Currency       string `json:"currency"`
	IntervalMonths int    `json:"interval_months"`
}

// CheckoutSession é a sessão de pagamento hospedada pelo provedor
type CheckoutSession struct {
	ID        string    `json:"id"`
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}

// PortalSession é a sessão do portal de autoatendimento de cobrança
type PortalSession struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// ProviderSubscription é a assinatura como o provedor a representa
type ProviderSubscription struct {
	ID                 string     `json:"id"`
	CustomerID         string     `json:"customer"`
	PriceID            string     `json:"price"`
	Status             string     `json:"status"`
	CurrentPeriodStart time.Time  `json:"current_period_start"`
	CurrentPeriodEnd   time.Time  `json:"current_period_end"`
	CanceledAt         *time.Time `json:"canceled_at,omitempty"`
}

// CheckoutMetadata acompanha a sessão de checkout e volta nos eventos de
// webhook, ligando a assinatura do provedor ao plano e assinante locais
type CheckoutMetadata struct {
	PlanID       string `json:"plan_id"`
	SubscriberID string `json:"subscriber_id"`
}

// WebhookEvent é o envelope de evento enviado pelo provedor
type WebhookEvent struct {
	ID           string               `json:"id"`
	Type         string               `json:"type"`
	Subscription ProviderSubscription `json:"subscription"`
	Metadata     CheckoutMetadata     `json:"metadata"`
	OccurredAt   time.Time            `json:"occurred_at"`
}
