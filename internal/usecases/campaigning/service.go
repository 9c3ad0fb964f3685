package campaigning

import (
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/creator-platform-api/infrastructure/integrator/mailer"
	mailerdomain "github.com/vfg2006/creator-platform-api/infrastructure/integrator/mailer/domain"
	"github.com/vfg2006/creator-platform-api/infrastructure/repository"
	"github.com/vfg2006/creator-platform-api/internal/domain"
	"github.com/vfg2006/creator-platform-api/pkg/apiErrors"
	"github.com/vfg2006/creator-platform-api/pkg/utils"
)

type CampaignManager interface {
	CreateCampaign(creatorID int, req *domain.CreateCampaignRequest) (*domain.EmailCampaign, error)
	GetCampaign(creatorID int, campaignID string) (*domain.EmailCampaign, error)
	ListCampaigns(creatorID int) ([]*domain.EmailCampaign, error)
	UpdateCampaign(creatorID int, campaignID string, req *domain.UpdateCampaignRequest) (*domain.EmailCampaign, error)
	DeleteCampaign(creatorID int, campaignID string) error
	ScheduleCampaign(creatorID int, campaignID string, at time.Time) error
	SendCampaign(creatorID int, campaignID string) error
	DispatchDueCampaigns(now time.Time) error
	ProcessMailerEvent(event *domain.MailerEvent) error
	GetCampaignReport(creatorID int, campaignID string) (*domain.CampaignReport, error)
	AddSubscriber(creatorID int, email, name string) (*domain.Subscriber, error)
	UnsubscribeSubscriber(subscriberID string) error
	RecalculateEngagement(subscriberID string) error
}

type Service struct {
	campaignRepo   repository.EmailCampaignRepository
	statsRepo      repository.EmailCampaignStatsRepository
	subscriberRepo repository.SubscriberRepository
	mailer         mailer.MailerIntegrator
}

func NewService(
	campaignRepo repository.EmailCampaignRepository,
	statsRepo repository.EmailCampaignStatsRepository,
	subscriberRepo repository.SubscriberRepository,
	mailerIntegrator mailer.MailerIntegrator,
) CampaignManager {
	return &Service{
		campaignRepo:   campaignRepo,
		statsRepo:      statsRepo,
		subscriberRepo: subscriberRepo,
		mailer:         mailerIntegrator,
	}
}

func (s *Service) CreateCampaign(creatorID int, req *domain.CreateCampaignRequest) (*domain.EmailCampaign, error) {
	if req.Subject == "" || req.Body == "" {
		return nil, NewCampaignError(ErrMissingContent, apiErrors.ErrMissingRequiredData, "Assunto e corpo são obrigatórios")
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, NewCampaignError(err, apiErrors.ErrInternalServer, "Erro ao gerar identificador")
	}

	campaign := &domain.EmailCampaign{
		ID:        id,
		CreatorID: creatorID,
		Subject:   req.Subject,
		Body:      req.Body,
		Status:    domain.CampaignDraft,
	}

	if err := s.campaignRepo.Create(campaign); err != nil {
		return nil, NewCampaignError(err, apiErrors.ErrDatabaseOperation, "Erro ao criar campanha")
	}

	return campaign, nil
}

func (s *Service) GetCampaign(creatorID int, campaignID string) (*domain.EmailCampaign, error) {
	return s.ownedCampaign(creatorID, campaignID)
}

func (s *Service) ListCampaigns(creatorID int) ([]*domain.EmailCampaign, error) {
	campaigns, err := s.campaignRepo.ListByCreator(creatorID)
	if err != nil {
		return nil, NewCampaignError(err, apiErrors.ErrDatabaseOperation, "Erro ao listar campanhas")
	}

	return campaigns, nil
}

func (s *Service) UpdateCampaign(creatorID int, campaignID string, req *domain.UpdateCampaignRequest) (*domain.EmailCampaign, error) {
	campaign, err := s.ownedCampaign(creatorID, campaignID)
	if err != nil {
		return nil, err
	}

	if !campaign.CanEdit() {
		return nil, NewCampaignError(ErrCampaignNotEditable, apiErrors.ErrInvalidTransition, "Campanhas enviadas ou em envio são imutáveis")
	}

	if req.Subject != nil {
		campaign.Subject = *req.Subject
	}
	if req.Body != nil {
		campaign.Body = *req.Body
	}

	if campaign.Subject == "" || campaign.Body == "" {
		return nil, NewCampaignError(ErrMissingContent, apiErrors.ErrMissingRequiredData, "Assunto e corpo são obrigatórios")
	}

	if err := s.campaignRepo.UpdateContent(campaign); err != nil {
		if err == repository.ErrNoRowsAffected {
			return nil, NewCampaignError(ErrCampaignNotEditable, apiErrors.ErrInvalidTransition, "Campanha mudou de status durante a edição")
		}
		return nil, NewCampaignError(err, apiErrors.ErrDatabaseOperation, "Erro ao atualizar campanha")
	}

	return campaign, nil
}

func (s *Service) DeleteCampaign(creatorID int, campaignID string) error {
	campaign, err := s.ownedCampaign(creatorID, campaignID)
	if err != nil {
		return err
	}

	if !campaign.CanDelete() {
		return NewCampaignError(ErrCampaignNotDraft, apiErrors.ErrInvalidTransition, "Apenas rascunhos podem ser removidos")
	}

	if err := s.campaignRepo.Delete(campaign.ID); err != nil {
		if err == repository.ErrNoRowsAffected {
			return NewCampaignError(ErrCampaignNotDraft, apiErrors.ErrInvalidTransition, "Campanha mudou de status durante a remoção")
		}
		return NewCampaignError(err, apiErrors.ErrDatabaseOperation, "Erro ao remover campanha")
	}

	return nil
}

func (s *Service) ScheduleCampaign(creatorID int, campaignID string, at time.Time) error {
	campaign, err := s.ownedCampaign(creatorID, campaignID)
	if err != nil {
		return err
	}

	if !campaign.CanEdit() {
		return NewCampaignError(ErrInvalidTransition, apiErrors.ErrInvalidTransition, "Apenas rascunhos e campanhas agendadas podem ser reagendados")
	}

	if !at.After(time.Now()) {
		return NewCampaignError(ErrScheduleInPast, apiErrors.ErrOutOfRange, "Horário de envio deve ser no futuro")
	}

	if err := s.campaignRepo.Schedule(campaign.ID, at.UTC()); err != nil {
		if err == repository.ErrNoRowsAffected {
			return NewCampaignError(ErrInvalidTransition, apiErrors.ErrInvalidTransition, "Campanha mudou de status durante o agendamento")
		}
		return NewCampaignError(err, apiErrors.ErrDatabaseOperation, "Erro ao agendar campanha")
	}

	return nil
}

// SendCampaign dispara a campanha imediatamente para todos os assinantes
// ativos do criador
func (s *Service) SendCampaign(creatorID int, campaignID string) error {
	campaign, err := s.ownedCampaign(creatorID, campaignID)
	if err != nil {
		return err
	}

	return s.dispatch(campaign)
}

// DispatchDueCampaigns envia as campanhas agendadas cujo horário já passou.
// Chamado pelo agendador; falhas em uma campanha não bloqueiam as demais.
func (s *Service) DispatchDueCampaigns(now time.Time) error {
	due, err := s.campaignRepo.ListDueScheduled(now)
	if err != nil {
		return NewCampaignError(err, apiErrors.ErrDatabaseOperation, "Erro ao listar campanhas agendadas")
	}

	for _, campaign := range due {
		if err := s.dispatch(campaign); err != nil {
			logrus.WithError(err).WithField("campaign_id", campaign.ID).Error("Erro ao disparar campanha agendada")
		}
	}

	return nil
}

// dispatch executa a transição para sending, envia o lote e fecha em sent ou
// failed. A guarda de status do MarkSending impede envio duplicado quando dois
// processos disputam a mesma campanha.
func (s *Service) dispatch(campaign *domain.EmailCampaign) error {
	subscribers, err := s.subscriberRepo.ListActiveByCreator(campaign.CreatorID)
	if err != nil {
		return NewCampaignError(err, apiErrors.ErrDatabaseOperation, "Erro ao listar assinantes")
	}

	if len(subscribers) == 0 {
		return NewCampaignError(ErrNoRecipients, apiErrors.ErrInvalidRequest, "Nenhum assinante ativo para envio")
	}

	if err := s.campaignRepo.MarkSending(campaign.ID, len(subscribers)); err != nil {
		if err == repository.ErrNoRowsAffected {
			return NewCampaignError(ErrInvalidTransition, apiErrors.ErrInvalidTransition, "Campanha não está em estado enviável")
		}
		return NewCampaignError(err, apiErrors.ErrDatabaseOperation, "Erro ao iniciar envio")
	}

	messages := make([]mailerdomain.Message, 0, len(subscribers))
	for _, subscriber := range subscribers {
		messages = append(messages, mailerdomain.Message{
			To:       subscriber.Email,
			ToName:   subscriber.Name,
			Subject:  campaign.Subject,
			HTMLBody: campaign.Body,
		})
	}

	report, err := s.mailer.SendBatch(messages)
	if err != nil {
		if markErr := s.campaignRepo.TransitionStatus(campaign.ID, []domain.CampaignStatus{domain.CampaignSending}, domain.CampaignFailed); markErr != nil {
			logrus.WithError(markErr).WithField("campaign_id", campaign.ID).Error("Erro ao marcar campanha como failed")
		}
		return NewCampaignError(err, apiErrors.ErrExternalService, "Erro ao enviar campanha")
	}

	failedByEmail := make(map[string]bool, len(report.Failures))
	for _, failure := range report.Failures {
		failedByEmail[failure.To] = true
	}

	deliveredAt := time.Now().UTC()
	for _, subscriber := range subscribers {
		if failedByEmail[subscriber.Email] {
			continue
		}

		id, err := utils.GenerateID()
		if err != nil {
			logrus.WithError(err).Error("Erro ao gerar identificador de entrega")
			continue
		}

		err = s.statsRepo.RecordDelivery(&domain.CampaignStatsEntry{
			ID:           id,
			CampaignID:   campaign.ID,
			SubscriberID: subscriber.ID,
			DeliveredAt:  deliveredAt,
		})
		if err != nil && err != repository.ErrDuplicateKey {
			logrus.WithError(err).WithFields(logrus.Fields{
				"campaign_id":   campaign.ID,
				"subscriber_id": subscriber.ID,
			}).Error("Erro ao registrar entrega")
		}
	}

	if report.Sent == 0 {
		if err := s.campaignRepo.TransitionStatus(campaign.ID, []domain.CampaignStatus{domain.CampaignSending}, domain.CampaignFailed); err != nil {
			return NewCampaignError(err, apiErrors.ErrDatabaseOperation, "Erro ao marcar campanha como failed")
		}
		return nil
	}

	if err := s.campaignRepo.MarkSent(campaign.ID, deliveredAt); err != nil {
		return NewCampaignError(err, apiErrors.ErrDatabaseOperation, "Erro ao concluir envio")
	}

	logrus.WithFields(logrus.Fields{
		"campaign_id": campaign.ID,
		"sent":        report.Sent,
		"failed":      report.Failed,
	}).Info("Campanha enviada")

	return nil
}

// ProcessMailerEvent aplica um evento de entrega do provedor. Aberturas e
// cliques são sticky: só o primeiro timestamp é gravado; um clique preenche a
// abertura quando o open não foi reportado. Eventos para entregas inexistentes
// são ignorados.
func (s *Service) ProcessMailerEvent(event *domain.MailerEvent) error {
	at := event.OccurredAt
	if at.IsZero() {
		at = time.Now().UTC()
	}

	var err error
	switch event.Type {
	case domain.MailerEventOpen:
		err = s.statsRepo.MarkOpened(event.CampaignID, event.SubscriberID, at)
	case domain.MailerEventClick:
		err = s.statsRepo.MarkClicked(event.CampaignID, event.SubscriberID, at)
	case domain.MailerEventUnsubscribe:
		err = s.statsRepo.MarkUnsubscribed(event.CampaignID, event.SubscriberID, at)
		if err == nil || err == repository.ErrNoRowsAffected {
			if statusErr := s.subscriberRepo.UpdateStatus(event.SubscriberID, domain.SubscriberUnsubscribed); statusErr != nil && statusErr != repository.ErrNoRowsAffected {
				return NewCampaignError(statusErr, apiErrors.ErrDatabaseOperation, "Erro ao atualizar status do assinante")
			}
		}
	case domain.MailerEventBounce:
		if statusErr := s.subscriberRepo.UpdateStatus(event.SubscriberID, domain.SubscriberBounced); statusErr != nil && statusErr != repository.ErrNoRowsAffected {
			return NewCampaignError(statusErr, apiErrors.ErrDatabaseOperation, "Erro ao atualizar status do assinante")
		}
		return nil
	default:
		return NewCampaignError(ErrUnknownEvent, apiErrors.ErrInvalidRequest, "Tipo de evento desconhecido")
	}

	if err != nil && err != repository.ErrNoRowsAffected {
		return NewCampaignError(err, apiErrors.ErrDatabaseOperation, "Erro ao processar evento de entrega")
	}

	if err == repository.ErrNoRowsAffected {
		logrus.WithFields(logrus.Fields{
			"campaign_id":   event.CampaignID,
			"subscriber_id": event.SubscriberID,
			"type":          event.Type,
		}).Warn("Evento de entrega sem registro correspondente, ignorando")
		return nil
	}

	return s.refreshCampaignRates(event.CampaignID)
}

// refreshCampaignRates recalcula as taxas agregadas da campanha a partir das
// entregas registradas
func (s *Service) refreshCampaignRates(campaignID string) error {
	totals, err := s.statsRepo.CampaignTotals(campaignID)
	if err != nil {
		return NewCampaignError(err, apiErrors.ErrDatabaseOperation, "Erro ao agregar entregas da campanha")
	}

	var openRate, clickRate float64
	if totals.Delivered > 0 {
		openRate = utils.RoundWithTwoDecimalPlace(float64(totals.Opened) / float64(totals.Delivered) * 100)
		clickRate = utils.RoundWithTwoDecimalPlace(float64(totals.Clicked) / float64(totals.Delivered) * 100)
	}

	if err := s.campaignRepo.UpdateRates(campaignID, openRate, clickRate); err != nil {
		return NewCampaignError(err, apiErrors.ErrDatabaseOperation, "Erro ao atualizar taxas da campanha")
	}

	return nil
}

func (s *Service) GetCampaignReport(creatorID int, campaignID string) (*domain.CampaignReport, error) {
	campaign, err := s.ownedCampaign(creatorID, campaignID)
	if err != nil {
		return nil, err
	}

	totals, err := s.statsRepo.CampaignTotals(campaign.ID)
	if err != nil {
		return nil, NewCampaignError(err, apiErrors.ErrDatabaseOperation, "Erro ao agregar entregas da campanha")
	}

	var openRate, clickRate float64
	if totals.Delivered > 0 {
		openRate = utils.RoundWithTwoDecimalPlace(float64(totals.Opened) / float64(totals.Delivered) * 100)
		clickRate = utils.RoundWithTwoDecimalPlace(float64(totals.Clicked) / float64(totals.Delivered) * 100)
	}

	return &domain.CampaignReport{
		CampaignID:      campaign.ID,
		Subject:         campaign.Subject,
		Status:          campaign.Status,
		RecipientCount:  campaign.RecipientCount,
		Delivered:       totals.Delivered,
		Opened:          totals.Opened,
		Clicked:         totals.Clicked,
		Unsubscribed:    totals.Unsubscribed,
		OpenRate:        openRate,
		ClickRate:       clickRate,
		EngagementScore: domain.CalculateCampaignEngagement(totals.Delivered, totals.Opened, totals.Clicked),
	}, nil
}

func (s *Service) AddSubscriber(creatorID int, email, name string) (*domain.Subscriber, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, NewCampaignError(ErrInvalidEmail, apiErrors.ErrInvalidFormat, "Email inválido")
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, NewCampaignError(err, apiErrors.ErrInternalServer, "Erro ao gerar identificador")
	}

	subscriber := &domain.Subscriber{
		ID:        id,
		CreatorID: creatorID,
		Email:     email,
		Name:      name,
		Status:    domain.SubscriberActive,
	}

	if err := s.subscriberRepo.Create(subscriber); err != nil {
		if err == repository.ErrDuplicateKey {
			return nil, NewCampaignError(ErrSubscriberExists, apiErrors.ErrDuplicateResource, "Email já inscrito nesta newsletter")
		}
		return nil, NewCampaignError(err, apiErrors.ErrDatabaseOperation, "Erro ao inscrever assinante")
	}

	return subscriber, nil
}

func (s *Service) UnsubscribeSubscriber(subscriberID string) error {
	err := s.subscriberRepo.UpdateStatus(subscriberID, domain.SubscriberUnsubscribed)
	if err != nil {
		if err == repository.ErrNoRowsAffected {
			return NewCampaignError(ErrSubscriberNotFound, apiErrors.ErrResourceNotFound, "Assinante não encontrado")
		}
		return NewCampaignError(err, apiErrors.ErrDatabaseOperation, "Erro ao cancelar inscrição")
	}

	return nil
}

// RecalculateEngagement recalcula o engagement score do assinante a partir do
// histórico de entregas. Usado pelo agendador de sincronização.
func (s *Service) RecalculateEngagement(subscriberID string) error {
	engagement, err := s.statsRepo.SubscriberEngagement(subscriberID)
	if err != nil {
		return NewCampaignError(err, apiErrors.ErrDatabaseOperation, "Erro ao agregar engajamento do assinante")
	}

	score := domain.CalculateCampaignEngagement(engagement.Delivered, engagement.Opened, engagement.Clicked)

	if err := s.subscriberRepo.UpdateEngagementScore(subscriberID, score); err != nil && err != repository.ErrNoRowsAffected {
		return NewCampaignError(err, apiErrors.ErrDatabaseOperation, "Erro ao atualizar engagement score")
	}

	return nil
}

func (s *Service) ownedCampaign(creatorID int, campaignID string) (*domain.EmailCampaign, error) {
	campaign, err := s.campaignRepo.GetByID(campaignID)
	if err != nil {
		return nil, NewCampaignError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar campanha")
	}
	if campaign == nil {
		return nil, NewCampaignError(ErrCampaignNotFound, apiErrors.ErrResourceNotFound, "Campanha não encontrada")
	}
	if campaign.CreatorID != creatorID {
		return nil, NewCampaignError(ErrNotCampaignOwner, apiErrors.ErrNotResourceOwner, "Campanha pertence a outro criador")
	}

	return campaign, nil
}
