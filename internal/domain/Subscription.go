package domain

import "time"

// SubscriptionStatus é o estado local de uma assinatura paga
type SubscriptionStatus string

const (
	SubscriptionIncomplete SubscriptionStatus = "incomplete"
	SubscriptionActive     SubscriptionStatus = "active"
	SubscriptionPastDue    SubscriptionStatus = "past_due"
	SubscriptionCanceled   SubscriptionStatus = "canceled"
)

// SubscriptionPlan define preço e benefícios de um plano de assinatura
type SubscriptionPlan struct {
	ID                string    `json:"id"`
	CreatorID         int       `json:"creator_id"`
	Name              string    `json:"name"`
	Description       string    `json:"description"`
	PriceCents        int64     `json:"price_cents"`
	Currency          string    `json:"currency"`
	IntervalMonths    int       `json:"interval_months"`
	Features          []string  `json:"features"`
	ProviderProductID string    `json:"provider_product_id"`
	ProviderPriceID   string    `json:"provider_price_id"`
	IsActive          bool      `json:"is_active"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// Subscription liga um assinante a um plano com o status sincronizado do
// processador de pagamento
type Subscription struct {
	ID                     string             `json:"id"`
	PlanID                 string             `json:"plan_id"`
	SubscriberID           string             `json:"subscriber_id"`
	Status                 SubscriptionStatus `json:"status"`
	ProviderCustomerID     string             `json:"provider_customer_id"`
	ProviderSubscriptionID string             `json:"provider_subscription_id"`
	CurrentPeriodStart     time.Time          `json:"current_period_start"`
	CurrentPeriodEnd       time.Time          `json:"current_period_end"`
	CanceledAt             *time.Time         `json:"canceled_at,omitempty"`
	CreatedAt              time.Time          `json:"created_at"`
	UpdatedAt              time.Time          `json:"updated_at"`
}

// CreatePlanRequest são os dados de entrada para criação de plano
type CreatePlanRequest struct {
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	PriceCents     int64    `json:"price_cents"`
	Currency       string   `json:"currency"`
	IntervalMonths int      `json:"interval_months"`
	Features       []string `json:"features"`
}

// SubscriptionMetrics agrega receita e churn de assinaturas numa janela
type SubscriptionMetrics struct {
	ActiveSubscriptions int64   `json:"active_subscriptions"`
	NewSubscriptions    int64   `json:"new_subscriptions"`
	CanceledInWindow    int64   `json:"canceled_in_window"`
	RevenueCents        int64   `json:"revenue_cents"`
	ChurnRate           float64 `json:"churn_rate"`
}
