package subscribing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	paymentdomain "github.com/vfg2006/creator-platform-api/infrastructure/integrator/paymentgw/domain"
	paymentmocks "github.com/vfg2006/creator-platform-api/infrastructure/integrator/paymentgw/mocks"
	"github.com/vfg2006/creator-platform-api/infrastructure/repository/mocks"
	"github.com/vfg2006/creator-platform-api/internal/domain"
	"go.uber.org/mock/gomock"
)

type subscriptionMocks struct {
	planRepo         *mocks.MockSubscriptionPlanRepository
	subscriptionRepo *mocks.MockSubscriptionRepository
	subscriberRepo   *mocks.MockSubscriberRepository
	payment          *paymentmocks.MockPaymentIntegrator
}

func newSubscriptionMocks(ctrl *gomock.Controller) *subscriptionMocks {
	return &subscriptionMocks{
		planRepo:         mocks.NewMockSubscriptionPlanRepository(ctrl),
		subscriptionRepo: mocks.NewMockSubscriptionRepository(ctrl),
		subscriberRepo:   mocks.NewMockSubscriberRepository(ctrl),
		payment:          paymentmocks.NewMockPaymentIntegrator(ctrl),
	}
}

func (m *subscriptionMocks) service() *Service {
	return &Service{
		planRepo:         m.planRepo,
		subscriptionRepo: m.subscriptionRepo,
		subscriberRepo:   m.subscriberRepo,
		payment:          m.payment,
	}
}

func monthlyPlan(creatorID int) *domain.SubscriptionPlan {
	return &domain.SubscriptionPlan{
		ID:              "pln_abc",
		CreatorID:       creatorID,
		Name:            "Apoiador mensal",
		PriceCents:      1990,
		Currency:        "BRL",
		IntervalMonths:  1,
		ProviderPriceID: "price_123",
		IsActive:        true,
	}
}

func testSubscriber() *domain.Subscriber {
	return &domain.Subscriber{
		ID:        "sub_1",
		CreatorID: 1,
		Email:     "ana@example.com",
		Name:      "Ana",
		Status:    domain.SubscriberActive,
	}
}

func TestCreatePlan(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name     string
		request  *domain.CreatePlanRequest
		setup    func(m *subscriptionMocks)
		validate func(t *testing.T, plan *domain.SubscriptionPlan, err error)
	}{
		{
			name: "Deve registrar o plano no processador antes de gravar localmente",
			request: &domain.CreatePlanRequest{
				Name:           "Apoiador mensal",
				PriceCents:     1990,
				IntervalMonths: 1,
			},
			setup: func(m *subscriptionMocks) {
				gomock.InOrder(
					m.payment.EXPECT().
						RegisterPlan("Apoiador mensal", int64(1990), "BRL", 1).
						Return("prod_123", "price_123", nil),
					m.planRepo.EXPECT().Create(gomock.Any()).Return(nil),
				)
			},
			validate: func(t *testing.T, plan *domain.SubscriptionPlan, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "prod_123", plan.ProviderProductID)
				assert.Equal(t, "price_123", plan.ProviderPriceID)
				assert.Equal(t, "BRL", plan.Currency)
				assert.True(t, plan.IsActive)
			},
		},
		{
			name: "Deve rejeitar preço não positivo",
			request: &domain.CreatePlanRequest{
				Name:           "Plano grátis",
				PriceCents:     0,
				IntervalMonths: 1,
			},
			setup: func(m *subscriptionMocks) {},
			validate: func(t *testing.T, plan *domain.SubscriptionPlan, err error) {
				assert.Nil(t, plan)
				assert.ErrorIs(t, err, ErrInvalidPrice)
			},
		},
		{
			name: "Deve rejeitar intervalo que não seja mensal ou anual",
			request: &domain.CreatePlanRequest{
				Name:           "Plano trimestral",
				PriceCents:     5000,
				IntervalMonths: 3,
			},
			setup: func(m *subscriptionMocks) {},
			validate: func(t *testing.T, plan *domain.SubscriptionPlan, err error) {
				assert.Nil(t, plan)
				assert.ErrorIs(t, err, ErrInvalidInterval)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newSubscriptionMocks(ctrl)
			tt.setup(m)

			plan, err := m.service().CreatePlan(1, tt.request)
			tt.validate(t, plan, err)
		})
	}
}

func TestStartCheckout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name     string
		setup    func(m *subscriptionMocks)
		validate func(t *testing.T, session *paymentdomain.CheckoutSession, err error)
	}{
		{
			name: "Deve abrir checkout com os identificadores locais na metadata",
			setup: func(m *subscriptionMocks) {
				m.planRepo.EXPECT().GetByID("pln_abc").Return(monthlyPlan(1), nil)
				m.subscriberRepo.EXPECT().GetByID("sub_1").Return(testSubscriber(), nil)
				m.subscriptionRepo.EXPECT().GetActiveBySubscriber("sub_1", "pln_abc").Return(nil, nil)
				m.subscriptionRepo.EXPECT().GetLatestBySubscriber("sub_1").Return(nil, nil)
				m.payment.EXPECT().
					RegisterCustomer("ana@example.com", "Ana").
					Return(&paymentdomain.Customer{ID: "cus_123"}, nil)
				m.payment.EXPECT().
					StartCheckout("cus_123", "price_123", paymentdomain.CheckoutMetadata{
						PlanID:       "pln_abc",
						SubscriberID: "sub_1",
					}).
					Return(&paymentdomain.CheckoutSession{ID: "cs_1", URL: "https://pay.example.com/cs_1"}, nil)
			},
			validate: func(t *testing.T, session *paymentdomain.CheckoutSession, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "cs_1", session.ID)
			},
		},
		{
			name: "Deve reutilizar o cliente do provedor de uma assinatura anterior",
			setup: func(m *subscriptionMocks) {
				m.planRepo.EXPECT().GetByID("pln_abc").Return(monthlyPlan(1), nil)
				m.subscriberRepo.EXPECT().GetByID("sub_1").Return(testSubscriber(), nil)
				m.subscriptionRepo.EXPECT().GetActiveBySubscriber("sub_1", "pln_abc").Return(nil, nil)
				m.subscriptionRepo.EXPECT().
					GetLatestBySubscriber("sub_1").
					Return(&domain.Subscription{ID: "subn_old", ProviderCustomerID: "cus_old"}, nil)
				m.payment.EXPECT().
					StartCheckout("cus_old", "price_123", gomock.Any()).
					Return(&paymentdomain.CheckoutSession{ID: "cs_2"}, nil)
			},
			validate: func(t *testing.T, session *paymentdomain.CheckoutSession, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "cs_2", session.ID)
			},
		},
		{
			name: "Deve recusar assinante com assinatura vigente no plano",
			setup: func(m *subscriptionMocks) {
				m.planRepo.EXPECT().GetByID("pln_abc").Return(monthlyPlan(1), nil)
				m.subscriberRepo.EXPECT().GetByID("sub_1").Return(testSubscriber(), nil)
				m.subscriptionRepo.EXPECT().
					GetActiveBySubscriber("sub_1", "pln_abc").
					Return(&domain.Subscription{ID: "subn_1", Status: domain.SubscriptionActive}, nil)
			},
			validate: func(t *testing.T, session *paymentdomain.CheckoutSession, err error) {
				assert.Nil(t, session)
				assert.ErrorIs(t, err, ErrActiveSubscription)
			},
		},
		{
			name: "Deve recusar plano desativado",
			setup: func(m *subscriptionMocks) {
				plan := monthlyPlan(1)
				plan.IsActive = false
				m.planRepo.EXPECT().GetByID("pln_abc").Return(plan, nil)
			},
			validate: func(t *testing.T, session *paymentdomain.CheckoutSession, err error) {
				assert.Nil(t, session)
				assert.ErrorIs(t, err, ErrPlanInactive)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newSubscriptionMocks(ctrl)
			tt.setup(m)

			session, err := m.service().StartCheckout("pln_abc", "sub_1")
			tt.validate(t, session, err)
		})
	}
}

func TestCancelSubscription(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("Deve cancelar no processador e gravar o cancelamento local", func(t *testing.T) {
		m := newSubscriptionMocks(ctrl)

		m.subscriptionRepo.EXPECT().
			GetByID("subn_1").
			Return(&domain.Subscription{ID: "subn_1", PlanID: "pln_abc", ProviderSubscriptionID: "ps_1"}, nil)
		m.planRepo.EXPECT().GetByID("pln_abc").Return(monthlyPlan(1), nil)
		m.payment.EXPECT().
			CancelSubscription("ps_1").
			Return(&paymentdomain.ProviderSubscription{ID: "ps_1", Status: "canceled"}, nil)
		m.subscriptionRepo.EXPECT().
			UpdateStatus("subn_1", domain.SubscriptionCanceled, gomock.Any()).
			Return(nil)

		assert.NoError(t, m.service().CancelSubscription(1, "subn_1"))
	})

	t.Run("Deve recusar cancelamento de assinatura de plano alheio", func(t *testing.T) {
		m := newSubscriptionMocks(ctrl)

		m.subscriptionRepo.EXPECT().
			GetByID("subn_1").
			Return(&domain.Subscription{ID: "subn_1", PlanID: "pln_abc", ProviderSubscriptionID: "ps_1"}, nil)
		m.planRepo.EXPECT().GetByID("pln_abc").Return(monthlyPlan(42), nil)

		err := m.service().CancelSubscription(1, "subn_1")
		assert.ErrorIs(t, err, ErrNotPlanOwner)
	})
}

func TestProcessPaymentEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	periodStart := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	periodEnd := periodStart.AddDate(0, 1, 0)

	tests := []struct {
		name     string
		event    *paymentdomain.WebhookEvent
		setup    func(m *subscriptionMocks)
		validate func(t *testing.T, err error)
	}{
		{
			name: "Primeiro evento cria a assinatura a partir da metadata do checkout",
			event: &paymentdomain.WebhookEvent{
				Type: "customer.subscription.created",
				Subscription: paymentdomain.ProviderSubscription{
					ID:                 "ps_1",
					CustomerID:         "cus_123",
					Status:             "active",
					CurrentPeriodStart: periodStart,
					CurrentPeriodEnd:   periodEnd,
				},
				Metadata: paymentdomain.CheckoutMetadata{PlanID: "pln_abc", SubscriberID: "sub_1"},
			},
			setup: func(m *subscriptionMocks) {
				m.subscriptionRepo.EXPECT().GetByProviderSubscriptionID("ps_1").Return(nil, nil)
				m.subscriptionRepo.EXPECT().
					Upsert(gomock.Any()).
					DoAndReturn(func(subscription *domain.Subscription) error {
						assert.Equal(t, "pln_abc", subscription.PlanID)
						assert.Equal(t, "sub_1", subscription.SubscriberID)
						assert.Equal(t, domain.SubscriptionActive, subscription.Status)
						assert.Equal(t, "cus_123", subscription.ProviderCustomerID)
						return nil
					})
			},
			validate: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name: "Evento de assinatura conhecida preserva plano e assinante locais",
			event: &paymentdomain.WebhookEvent{
				Type: "customer.subscription.updated",
				Subscription: paymentdomain.ProviderSubscription{
					ID:     "ps_1",
					Status: "past_due",
				},
			},
			setup: func(m *subscriptionMocks) {
				m.subscriptionRepo.EXPECT().
					GetByProviderSubscriptionID("ps_1").
					Return(&domain.Subscription{ID: "subn_1", PlanID: "pln_abc", SubscriberID: "sub_1"}, nil)
				m.subscriptionRepo.EXPECT().
					Upsert(gomock.Any()).
					DoAndReturn(func(subscription *domain.Subscription) error {
						assert.Equal(t, "subn_1", subscription.ID)
						assert.Equal(t, domain.SubscriptionPastDue, subscription.Status)
						return nil
					})
			},
			validate: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name: "Evento desconhecido sem metadata é ignorado sem erro",
			event: &paymentdomain.WebhookEvent{
				Type:         "customer.subscription.updated",
				Subscription: paymentdomain.ProviderSubscription{ID: "ps_x", Status: "active"},
			},
			setup: func(m *subscriptionMocks) {
				m.subscriptionRepo.EXPECT().GetByProviderSubscriptionID("ps_x").Return(nil, nil)
			},
			validate: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name: "Cancelamento via webhook grava o canceled_at",
			event: &paymentdomain.WebhookEvent{
				Type: "customer.subscription.deleted",
				Subscription: paymentdomain.ProviderSubscription{
					ID:     "ps_1",
					Status: "canceled",
				},
				OccurredAt: periodEnd,
			},
			setup: func(m *subscriptionMocks) {
				m.subscriptionRepo.EXPECT().
					GetByProviderSubscriptionID("ps_1").
					Return(&domain.Subscription{ID: "subn_1", PlanID: "pln_abc", SubscriberID: "sub_1"}, nil)
				m.subscriptionRepo.EXPECT().Upsert(gomock.Any()).Return(nil)
				m.subscriptionRepo.EXPECT().
					UpdateStatus("subn_1", domain.SubscriptionCanceled, &periodEnd).
					Return(nil)
			},
			validate: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newSubscriptionMocks(ctrl)
			tt.setup(m)

			err := m.service().ProcessPaymentEvent(tt.event)
			tt.validate(t, err)
		})
	}
}

func TestGetMetrics(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("Deve calcular o churn sobre a base do início da janela mais as novas", func(t *testing.T) {
		m := newSubscriptionMocks(ctrl)

		m.subscriptionRepo.EXPECT().CountActiveByCreator(1).Return(int64(45), nil)
		m.subscriptionRepo.EXPECT().CountCreatedInWindow(1, gomock.Any(), gomock.Any()).Return(int64(10), nil)
		m.subscriptionRepo.EXPECT().CountCanceledInWindow(1, gomock.Any(), gomock.Any()).Return(int64(5), nil)
		m.subscriptionRepo.EXPECT().CountActiveAtByCreator(1, gomock.Any()).Return(int64(40), nil)
		m.subscriptionRepo.EXPECT().WindowRevenueCents(1, gomock.Any(), gomock.Any()).Return(int64(89550), nil)

		metrics, err := m.service().GetMetrics(1, domain.Period30d)
		assert.NoError(t, err)
		assert.Equal(t, int64(45), metrics.ActiveSubscriptions)
		assert.Equal(t, int64(10), metrics.NewSubscriptions)
		assert.Equal(t, int64(5), metrics.CanceledInWindow)
		assert.Equal(t, int64(89550), metrics.RevenueCents)
		// 5 cancelamentos sobre base de 40+10
		assert.Equal(t, 10.0, metrics.ChurnRate)
	})

	t.Run("Base vazia produz churn zero", func(t *testing.T) {
		m := newSubscriptionMocks(ctrl)

		m.subscriptionRepo.EXPECT().CountActiveByCreator(1).Return(int64(0), nil)
		m.subscriptionRepo.EXPECT().CountCreatedInWindow(1, gomock.Any(), gomock.Any()).Return(int64(0), nil)
		m.subscriptionRepo.EXPECT().CountCanceledInWindow(1, gomock.Any(), gomock.Any()).Return(int64(0), nil)
		m.subscriptionRepo.EXPECT().CountActiveAtByCreator(1, gomock.Any()).Return(int64(0), nil)
		m.subscriptionRepo.EXPECT().WindowRevenueCents(1, gomock.Any(), gomock.Any()).Return(int64(0), nil)

		metrics, err := m.service().GetMetrics(1, domain.Period7d)
		assert.NoError(t, err)
		assert.Zero(t, metrics.ChurnRate)
	})
}
