package paymentgw

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/creator-platform-api/internal/domain"
)

func TestMapProviderStatus(t *testing.T) {
	tests := []struct {
		name           string
		providerStatus string
		expectedStatus domain.SubscriptionStatus
	}{
		{
			name:           "Deve mapear active para ativa",
			providerStatus: "active",
			expectedStatus: domain.SubscriptionActive,
		},
		{
			name:           "Deve mapear trialing para ativa",
			providerStatus: "trialing",
			expectedStatus: domain.SubscriptionActive,
		},
		{
			name:           "Deve mapear past_due para inadimplente",
			providerStatus: "past_due",
			expectedStatus: domain.SubscriptionPastDue,
		},
		{
			name:           "Deve mapear unpaid para inadimplente",
			providerStatus: "unpaid",
			expectedStatus: domain.SubscriptionPastDue,
		},
		{
			name:           "Deve mapear canceled para cancelada",
			providerStatus: "canceled",
			expectedStatus: domain.SubscriptionCanceled,
		},
		{
			name:           "Deve mapear incomplete_expired para cancelada",
			providerStatus: "incomplete_expired",
			expectedStatus: domain.SubscriptionCanceled,
		},
		{
			name:           "Deve mapear status desconhecido para incompleta",
			providerStatus: "algo_novo",
			expectedStatus: domain.SubscriptionIncomplete,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedStatus, MapProviderStatus(tt.providerStatus))
		})
	}
}
