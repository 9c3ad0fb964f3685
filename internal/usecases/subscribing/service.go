package subscribing

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/creator-platform-api/infrastructure/integrator/paymentgw"
	paymentdomain "github.com/vfg2006/creator-platform-api/infrastructure/integrator/paymentgw/domain"
	"github.com/vfg2006/creator-platform-api/infrastructure/repository"
	"github.com/vfg2006/creator-platform-api/internal/domain"
	"github.com/vfg2006/creator-platform-api/pkg/apiErrors"
	"github.com/vfg2006/creator-platform-api/pkg/utils"
)

const maxPlanNameLength = 100

type SubscriptionManager interface {
	CreatePlan(creatorID int, req *domain.CreatePlanRequest) (*domain.SubscriptionPlan, error)
	ListPlans(creatorID int, onlyActive bool) ([]*domain.SubscriptionPlan, error)
	DeactivatePlan(creatorID int, planID string) error
	StartCheckout(planID, subscriberID string) (*paymentdomain.CheckoutSession, error)
	OpenBillingPortal(subscriberID string) (*paymentdomain.PortalSession, error)
	CancelSubscription(creatorID int, subscriptionID string) error
	ProcessPaymentEvent(event *paymentdomain.WebhookEvent) error
	GetMetrics(creatorID int, period domain.Period) (*domain.SubscriptionMetrics, error)
}

type Service struct {
	planRepo         repository.SubscriptionPlanRepository
	subscriptionRepo repository.SubscriptionRepository
	subscriberRepo   repository.SubscriberRepository
	payment          paymentgw.PaymentIntegrator
}

func NewService(
	planRepo repository.SubscriptionPlanRepository,
	subscriptionRepo repository.SubscriptionRepository,
	subscriberRepo repository.SubscriberRepository,
	payment paymentgw.PaymentIntegrator,
) SubscriptionManager {
	return &Service{
		planRepo:         planRepo,
		subscriptionRepo: subscriptionRepo,
		subscriberRepo:   subscriberRepo,
		payment:          payment,
	}
}

// CreatePlan registra o plano localmente e no processador de pagamento.
// O plano só é gravado depois que produto e preço existem no provedor.
func (s *Service) CreatePlan(creatorID int, req *domain.CreatePlanRequest) (*domain.SubscriptionPlan, error) {
	if req.Name == "" || len(req.Name) > maxPlanNameLength {
		return nil, NewSubscriptionError(ErrInvalidPlanName, apiErrors.ErrInvalidRequest, "Nome deve ter entre 1 e 100 caracteres")
	}
	if req.PriceCents <= 0 {
		return nil, NewSubscriptionError(ErrInvalidPrice, apiErrors.ErrOutOfRange, "Preço deve ser positivo")
	}
	if req.IntervalMonths != 1 && req.IntervalMonths != 12 {
		return nil, NewSubscriptionError(ErrInvalidInterval, apiErrors.ErrInvalidRequest, "Intervalo deve ser mensal (1) ou anual (12)")
	}

	currency := req.Currency
	if currency == "" {
		currency = "BRL"
	}

	productID, priceID, err := s.payment.RegisterPlan(req.Name, req.PriceCents, currency, req.IntervalMonths)
	if err != nil {
		return nil, NewSubscriptionError(err, apiErrors.ErrExternalService, "Erro ao registrar plano no processador")
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, NewSubscriptionError(err, apiErrors.ErrInternalServer, "Erro ao gerar identificador")
	}

	plan := &domain.SubscriptionPlan{
		ID:                id,
		CreatorID:         creatorID,
		Name:              req.Name,
		Description:       req.Description,
		PriceCents:        req.PriceCents,
		Currency:          currency,
		IntervalMonths:    req.IntervalMonths,
		Features:          req.Features,
		ProviderProductID: productID,
		ProviderPriceID:   priceID,
		IsActive:          true,
	}

	if err := s.planRepo.Create(plan); err != nil {
		return nil, NewSubscriptionError(err, apiErrors.ErrDatabaseOperation, "Erro ao gravar plano")
	}

	return plan, nil
}

func (s *Service) ListPlans(creatorID int, onlyActive bool) ([]*domain.SubscriptionPlan, error) {
	plans, err := s.planRepo.ListByCreator(creatorID, onlyActive)
	if err != nil {
		return nil, NewSubscriptionError(err, apiErrors.ErrDatabaseOperation, "Erro ao listar planos")
	}

	return plans, nil
}

func (s *Service) DeactivatePlan(creatorID int, planID string) error {
	if _, err := s.ownedPlan(creatorID, planID); err != nil {
		return err
	}

	if err := s.planRepo.Deactivate(planID); err != nil {
		if err == repository.ErrNoRowsAffected {
			return NewSubscriptionError(ErrPlanNotFound, apiErrors.ErrResourceNotFound, "Plano não encontrado")
		}
		return NewSubscriptionError(err, apiErrors.ErrDatabaseOperation, "Erro ao desativar plano")
	}

	return nil
}

// StartCheckout abre uma sessão de pagamento para o assinante no plano.
// Assinantes com assinatura vigente no mesmo plano são rejeitados.
func (s *Service) StartCheckout(planID, subscriberID string) (*paymentdomain.CheckoutSession, error) {
	plan, err := s.planRepo.GetByID(planID)
	if err != nil {
		return nil, NewSubscriptionError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar plano")
	}
	if plan == nil {
		return nil, NewSubscriptionError(ErrPlanNotFound, apiErrors.ErrResourceNotFound, "Plano não encontrado")
	}
	if !plan.IsActive {
		return nil, NewSubscriptionError(ErrPlanInactive, apiErrors.ErrInvalidRequest, "Plano desativado")
	}

	subscriber, err := s.subscriberRepo.GetByID(subscriberID)
	if err != nil {
		return nil, NewSubscriptionError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar assinante")
	}
	if subscriber == nil {
		return nil, NewSubscriptionError(ErrSubscriberNotFound, apiErrors.ErrResourceNotFound, "Assinante não encontrado")
	}

	existing, err := s.subscriptionRepo.GetActiveBySubscriber(subscriberID, planID)
	if err != nil {
		return nil, NewSubscriptionError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar assinaturas existentes")
	}
	if existing != nil {
		return nil, NewSubscriptionError(ErrActiveSubscription, apiErrors.ErrActiveSubscription, "Assinante já possui assinatura vigente neste plano")
	}

	customerID, err := s.ensureProviderCustomer(subscriber)
	if err != nil {
		return nil, err
	}

	// Os identificadores locais viajam como metadata e voltam nos eventos de
	// webhook, ligando a assinatura do provedor ao plano e assinante certos
	session, err := s.payment.StartCheckout(customerID, plan.ProviderPriceID, paymentdomain.CheckoutMetadata{
		PlanID:       plan.ID,
		SubscriberID: subscriber.ID,
	})
	if err != nil {
		return nil, NewSubscriptionError(err, apiErrors.ErrExternalService, "Erro ao abrir sessão de checkout")
	}

	return session, nil
}

func (s *Service) OpenBillingPortal(subscriberID string) (*paymentdomain.PortalSession, error) {
	subscriber, err := s.subscriberRepo.GetByID(subscriberID)
	if err != nil {
		return nil, NewSubscriptionError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar assinante")
	}
	if subscriber == nil {
		return nil, NewSubscriptionError(ErrSubscriberNotFound, apiErrors.ErrResourceNotFound, "Assinante não encontrado")
	}

	customerID, err := s.ensureProviderCustomer(subscriber)
	if err != nil {
		return nil, err
	}

	session, err := s.payment.OpenBillingPortal(customerID)
	if err != nil {
		return nil, NewSubscriptionError(err, apiErrors.ErrExternalService, "Erro ao abrir portal de cobrança")
	}

	return session, nil
}

// ensureProviderCustomer reutiliza o cliente do provedor gravado em uma
// assinatura anterior do assinante, criando um novo quando não há histórico
func (s *Service) ensureProviderCustomer(subscriber *domain.Subscriber) (string, error) {
	latest, err := s.subscriptionRepo.GetLatestBySubscriber(subscriber.ID)
	if err != nil {
		return "", NewSubscriptionError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar histórico do assinante")
	}
	if latest != nil && latest.ProviderCustomerID != "" {
		return latest.ProviderCustomerID, nil
	}

	customer, err := s.payment.RegisterCustomer(subscriber.Email, subscriber.Name)
	if err != nil {
		return "", NewSubscriptionError(err, apiErrors.ErrExternalService, "Erro ao registrar cliente no processador")
	}

	return customer.ID, nil
}

func (s *Service) CancelSubscription(creatorID int, subscriptionID string) error {
	subscription, err := s.subscriptionRepo.GetByID(subscriptionID)
	if err != nil {
		return NewSubscriptionError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar assinatura")
	}
	if subscription == nil {
		return NewSubscriptionError(ErrSubscriptionNotFound, apiErrors.ErrResourceNotFound, "Assinatura não encontrada")
	}

	if _, err := s.ownedPlan(creatorID, subscription.PlanID); err != nil {
		return err
	}

	if _, err := s.payment.CancelSubscription(subscription.ProviderSubscriptionID); err != nil {
		return NewSubscriptionError(err, apiErrors.ErrExternalService, "Erro ao cancelar assinatura no processador")
	}

	now := time.Now().UTC()
	if err := s.subscriptionRepo.UpdateStatus(subscription.ID, domain.SubscriptionCanceled, &now); err != nil {
		return NewSubscriptionError(err, apiErrors.ErrDatabaseOperation, "Erro ao atualizar assinatura")
	}

	return nil
}

// ProcessPaymentEvent sincroniza o estado local com um evento do processador.
// O upsert por provider_subscription_id torna o processamento idempotente:
// eventos reentregues apenas regravam o mesmo estado.
func (s *Service) ProcessPaymentEvent(event *paymentdomain.WebhookEvent) error {
	provider := event.Subscription

	existing, err := s.subscriptionRepo.GetByProviderSubscriptionID(provider.ID)
	if err != nil {
		return NewSubscriptionError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar assinatura")
	}

	subscription := &domain.Subscription{
		Status:                 paymentgw.MapProviderStatus(provider.Status),
		ProviderCustomerID:     provider.CustomerID,
		ProviderSubscriptionID: provider.ID,
		CurrentPeriodStart:     provider.CurrentPeriodStart,
		CurrentPeriodEnd:       provider.CurrentPeriodEnd,
	}

	if existing != nil {
		subscription.ID = existing.ID
		subscription.PlanID = existing.PlanID
		subscription.SubscriberID = existing.SubscriberID
	} else {
		if event.Metadata.PlanID == "" || event.Metadata.SubscriberID == "" {
			logrus.WithField("provider_subscription_id", provider.ID).Warn("Evento de pagamento sem metadata de checkout, ignorando")
			return nil
		}

		id, err := utils.GenerateID()
		if err != nil {
			return NewSubscriptionError(err, apiErrors.ErrInternalServer, "Erro ao gerar identificador")
		}
		subscription.ID = id
		subscription.PlanID = event.Metadata.PlanID
		subscription.SubscriberID = event.Metadata.SubscriberID
	}

	if err := s.subscriptionRepo.Upsert(subscription); err != nil {
		return NewSubscriptionError(err, apiErrors.ErrDatabaseOperation, "Erro ao gravar assinatura")
	}

	if subscription.Status == domain.SubscriptionCanceled {
		now := event.OccurredAt
		if now.IsZero() {
			now = time.Now().UTC()
		}
		if err := s.subscriptionRepo.UpdateStatus(subscription.ID, domain.SubscriptionCanceled, &now); err != nil && err != repository.ErrNoRowsAffected {
			return NewSubscriptionError(err, apiErrors.ErrDatabaseOperation, "Erro ao gravar cancelamento")
		}
	}

	return nil
}

// GetMetrics agrega os números de assinatura da janela, incluindo o churn
// calculado sobre a base ativa no início da janela mais as novas assinaturas
func (s *Service) GetMetrics(creatorID int, period domain.Period) (*domain.SubscriptionMetrics, error) {
	timeframe, err := domain.ResolveTimeframe(period, time.Now())
	if err != nil {
		return nil, NewSubscriptionError(ErrInvalidPeriod, apiErrors.ErrInvalidRequest, err.Error())
	}

	active, err := s.subscriptionRepo.CountActiveByCreator(creatorID)
	if err != nil {
		return nil, NewSubscriptionError(err, apiErrors.ErrDatabaseOperation, "Erro ao contar assinaturas ativas")
	}

	created, err := s.subscriptionRepo.CountCreatedInWindow(creatorID, timeframe.Start, timeframe.End)
	if err != nil {
		return nil, NewSubscriptionError(err, apiErrors.ErrDatabaseOperation, "Erro ao contar novas assinaturas")
	}

	canceled, err := s.subscriptionRepo.CountCanceledInWindow(creatorID, timeframe.Start, timeframe.End)
	if err != nil {
		return nil, NewSubscriptionError(err, apiErrors.ErrDatabaseOperation, "Erro ao contar cancelamentos")
	}

	activeAtStart, err := s.subscriptionRepo.CountActiveAtByCreator(creatorID, timeframe.Start)
	if err != nil {
		return nil, NewSubscriptionError(err, apiErrors.ErrDatabaseOperation, "Erro ao contar base da janela")
	}

	revenue, err := s.subscriptionRepo.WindowRevenueCents(creatorID, timeframe.Start, timeframe.End)
	if err != nil {
		return nil, NewSubscriptionError(err, apiErrors.ErrDatabaseOperation, "Erro ao somar receita de assinaturas")
	}

	return &domain.SubscriptionMetrics{
		ActiveSubscriptions: active,
		NewSubscriptions:    created,
		CanceledInWindow:    canceled,
		RevenueCents:        revenue,
		ChurnRate:           domain.CalculateChurnRate(canceled, activeAtStart+created),
	}, nil
}

func (s *Service) ownedPlan(creatorID int, planID string) (*domain.SubscriptionPlan, error) {
	plan, err := s.planRepo.GetByID(planID)
	if err != nil {
		return nil, NewSubscriptionError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar plano")
	}
	if plan == nil {
		return nil, NewSubscriptionError(ErrPlanNotFound, apiErrors.ErrResourceNotFound, "Plano não encontrado")
	}
	if plan.CreatorID != creatorID {
		return nil, NewSubscriptionError(ErrNotPlanOwner, apiErrors.ErrNotResourceOwner, "Plano pertence a outro criador")
	}

	return plan, nil
}
