package domain

import (
	"time"
)

// AffiliateNetwork identifica a rede de afiliados de um link
type AffiliateNetwork string

const (
	NetworkAmazon     AffiliateNetwork = "amazon"
	NetworkHotmart    AffiliateNetwork = "hotmart"
	NetworkShareasale AffiliateNetwork = "shareasale"
	NetworkCustom     AffiliateNetwork = "custom"
)

// AffiliateNetworks lista as redes aceitas pela API
var AffiliateNetworks = []AffiliateNetwork{NetworkAmazon, NetworkHotmart, NetworkShareasale, NetworkCustom}

// IsValidAffiliateNetwork verifica se a rede informada é conhecida
func IsValidAffiliateNetwork(network AffiliateNetwork) bool {
	for _, n := range AffiliateNetworks {
		if n == network {
			return true
		}
	}
	return false
}

// AffiliateLink representa um link de afiliado rastreável.
// TrackingCode são 16 caracteres hexadecimais maiúsculos gerados a partir de
// 8 bytes aleatórios criptográficos, únicos por construção.
type AffiliateLink struct {
	ID             string           `json:"id"`
	CreatorID      int              `json:"creator_id"`
	Name           string           `json:"name"`
	OriginalURL    string           `json:"original_url"`
	TrackingCode   string           `json:"tracking_code"`
	Network        AffiliateNetwork `json:"network"`
	CommissionRate float64          `json:"commission_rate"`
	Category       string           `json:"category"`
	IsActive       bool             `json:"is_active"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

// AffiliateClick representa um clique registrado em um link de afiliado.
// O IP do visitante é armazenado apenas como hash de mão única.
type AffiliateClick struct {
	ID              string     `json:"id"`
	LinkID          string     `json:"link_id"`
	ArticleID       *string    `json:"article_id,omitempty"`
	ClickedAt       time.Time  `json:"clicked_at"`
	HashedIPAddress string     `json:"-"`
	UserAgent       string     `json:"user_agent"`
	Referrer        string     `json:"referrer"`
	Converted       bool       `json:"converted"`
	CommissionCents int64      `json:"commission_cents"`
	ConversionDate  *time.Time `json:"conversion_date,omitempty"`
}

// CreateAffiliateLinkRequest são os dados de entrada para criação de link
type CreateAffiliateLinkRequest struct {
	Name           string           `json:"name"`
	OriginalURL    string           `json:"original_url"`
	Network        AffiliateNetwork `json:"network"`
	CommissionRate float64          `json:"commission_rate"`
	Category       string           `json:"category"`
}

// UpdateAffiliateLinkRequest atualização parcial de um link
type UpdateAffiliateLinkRequest struct {
	Name           *string  `json:"name"`
	OriginalURL    *string  `json:"original_url"`
	CommissionRate *float64 `json:"commission_rate"`
	Category       *string  `json:"category"`
	IsActive       *bool    `json:"is_active"`
}

// TrackClickRequest são os dados capturados no momento do clique
type TrackClickRequest struct {
	ArticleID *string
	IPAddress string
	UserAgent string
	Referrer  string
}

// AffiliateClickTotals agrega os contadores de cliques de um link numa janela
type AffiliateClickTotals struct {
	TotalClicks          int64 `json:"total_clicks"`
	UniqueClicks         int64 `json:"unique_clicks"`
	Conversions          int64 `json:"conversions"`
	TotalCommissionCents int64 `json:"total_commission_cents"`
}

// AffiliatePerformanceReport é a resposta de performance de um link
type AffiliatePerformanceReport struct {
	LinkID               string           `json:"link_id"`
	Name                 string           `json:"name"`
	Network              AffiliateNetwork `json:"network"`
	TotalClicks          int64            `json:"total_clicks"`
	UniqueClicks         int64            `json:"unique_clicks"`
	Conversions          int64            `json:"conversions"`
	ConversionRate       float64          `json:"conversion_rate"`
	TotalCommissionCents int64            `json:"total_commission_cents"`
	AverageCommission    float64          `json:"average_commission"`
}

// ArticleClickCount agrega cliques e conversões de um link por artigo de origem
type ArticleClickCount struct {
	ArticleID   string `json:"article_id"`
	Clicks      int64  `json:"clicks"`
	Conversions int64  `json:"conversions"`
}

// AffiliateSuggestion é uma recomendação de otimização para um link
type AffiliateSuggestion struct {
	LinkID    string  `json:"link_id"`
	ArticleID *string `json:"article_id,omitempty"`
	Rule      string  `json:"rule"`
	Message   string  `json:"message"`
}
