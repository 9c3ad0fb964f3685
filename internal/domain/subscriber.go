package domain

import "time"

// SubscriberStatus é o estado de um assinante da newsletter
type SubscriberStatus string

const (
	SubscriberActive       SubscriberStatus = "active"
	SubscriberUnsubscribed SubscriberStatus = "unsubscribed"
	SubscriberBounced      SubscriberStatus = "bounced"
)

// Subscriber representa um assinante da newsletter de um criador
type Subscriber struct {
	ID              string           `json:"id"`
	CreatorID       int              `json:"creator_id"`
	Email           string           `json:"email"`
	Name            string           `json:"name"`
	Status          SubscriberStatus `json:"status"`
	EngagementScore int              `json:"engagement_score"`
	SubscribedAt    time.Time        `json:"subscribed_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

// SubscriberEngagement agrega os contadores de entrega de um assinante,
// usados para recalcular o engagement score
type SubscriberEngagement struct {
	SubscriberID string `json:"subscriber_id"`
	Delivered    int64  `json:"delivered"`
	Opened       int64  `json:"opened"`
	Clicked      int64  `json:"clicked"`
}
