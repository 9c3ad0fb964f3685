package campaigning

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	mailerdomain "github.com/vfg2006/creator-platform-api/infrastructure/integrator/mailer/domain"
	mailermocks "github.com/vfg2006/creator-platform-api/infrastructure/integrator/mailer/mocks"
	"github.com/vfg2006/creator-platform-api/infrastructure/repository"
	"github.com/vfg2006/creator-platform-api/infrastructure/repository/mocks"
	"github.com/vfg2006/creator-platform-api/internal/domain"
	"go.uber.org/mock/gomock"
)

type campaignMocks struct {
	campaignRepo   *mocks.MockEmailCampaignRepository
	statsRepo      *mocks.MockEmailCampaignStatsRepository
	subscriberRepo *mocks.MockSubscriberRepository
	mailer         *mailermocks.MockMailerIntegrator
}

func newCampaignMocks(ctrl *gomock.Controller) *campaignMocks {
	return &campaignMocks{
		campaignRepo:   mocks.NewMockEmailCampaignRepository(ctrl),
		statsRepo:      mocks.NewMockEmailCampaignStatsRepository(ctrl),
		subscriberRepo: mocks.NewMockSubscriberRepository(ctrl),
		mailer:         mailermocks.NewMockMailerIntegrator(ctrl),
	}
}

func (m *campaignMocks) service() *Service {
	return &Service{
		campaignRepo:   m.campaignRepo,
		statsRepo:      m.statsRepo,
		subscriberRepo: m.subscriberRepo,
		mailer:         m.mailer,
	}
}

func draftCampaign(creatorID int) *domain.EmailCampaign {
	return &domain.EmailCampaign{
		ID:        "cmp_abc",
		CreatorID: creatorID,
		Subject:   "Novidades de setembro",
		Body:      "<p>Olá!</p>",
		Status:    domain.CampaignDraft,
	}
}

func activeSubscribers() []*domain.Subscriber {
	return []*domain.Subscriber{
		{ID: "sub_1", CreatorID: 1, Email: "ana@example.com", Name: "Ana", Status: domain.SubscriberActive},
		{ID: "sub_2", CreatorID: 1, Email: "breno@example.com", Name: "Breno", Status: domain.SubscriberActive},
	}
}

func TestCreateCampaign(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("Deve criar a campanha como rascunho", func(t *testing.T) {
		m := newCampaignMocks(ctrl)
		m.campaignRepo.EXPECT().Create(gomock.Any()).Return(nil)

		campaign, err := m.service().CreateCampaign(1, &domain.CreateCampaignRequest{
			Subject: "Novidades de setembro",
			Body:    "<p>Olá!</p>",
		})
		assert.NoError(t, err)
		assert.Equal(t, domain.CampaignDraft, campaign.Status)
	})

	t.Run("Deve rejeitar campanha sem assunto ou corpo", func(t *testing.T) {
		m := newCampaignMocks(ctrl)

		campaign, err := m.service().CreateCampaign(1, &domain.CreateCampaignRequest{Subject: "Só assunto"})
		assert.Nil(t, campaign)
		assert.ErrorIs(t, err, ErrMissingContent)
	})
}

func TestUpdateCampaign(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name     string
		setup    func(m *campaignMocks)
		validate func(t *testing.T, campaign *domain.EmailCampaign, err error)
	}{
		{
			name: "Deve atualizar o assunto de um rascunho",
			setup: func(m *campaignMocks) {
				m.campaignRepo.EXPECT().GetByID("cmp_abc").Return(draftCampaign(1), nil)
				m.campaignRepo.EXPECT().UpdateContent(gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, campaign *domain.EmailCampaign, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "Assunto novo", campaign.Subject)
			},
		},
		{
			name: "Deve recusar edição de campanha enviada",
			setup: func(m *campaignMocks) {
				campaign := draftCampaign(1)
				campaign.Status = domain.CampaignSent
				m.campaignRepo.EXPECT().GetByID("cmp_abc").Return(campaign, nil)
			},
			validate: func(t *testing.T, campaign *domain.EmailCampaign, err error) {
				assert.Nil(t, campaign)
				assert.ErrorIs(t, err, ErrCampaignNotEditable)
			},
		},
		{
			name: "Deve detectar mudança de status durante a edição",
			setup: func(m *campaignMocks) {
				m.campaignRepo.EXPECT().GetByID("cmp_abc").Return(draftCampaign(1), nil)
				m.campaignRepo.EXPECT().UpdateContent(gomock.Any()).Return(repository.ErrNoRowsAffected)
			},
			validate: func(t *testing.T, campaign *domain.EmailCampaign, err error) {
				assert.Nil(t, campaign)
				assert.ErrorIs(t, err, ErrCampaignNotEditable)
			},
		},
	}

	newSubject := "Assunto novo"
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newCampaignMocks(ctrl)
			tt.setup(m)

			campaign, err := m.service().UpdateCampaign(1, "cmp_abc", &domain.UpdateCampaignRequest{Subject: &newSubject})
			tt.validate(t, campaign, err)
		})
	}
}

func TestScheduleCampaign(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("Deve agendar rascunho para horário futuro", func(t *testing.T) {
		m := newCampaignMocks(ctrl)
		m.campaignRepo.EXPECT().GetByID("cmp_abc").Return(draftCampaign(1), nil)
		m.campaignRepo.EXPECT().Schedule("cmp_abc", gomock.Any()).Return(nil)

		err := m.service().ScheduleCampaign(1, "cmp_abc", time.Now().Add(2*time.Hour))
		assert.NoError(t, err)
	})

	t.Run("Deve recusar agendamento no passado", func(t *testing.T) {
		m := newCampaignMocks(ctrl)
		m.campaignRepo.EXPECT().GetByID("cmp_abc").Return(draftCampaign(1), nil)

		err := m.service().ScheduleCampaign(1, "cmp_abc", time.Now().Add(-time.Minute))
		assert.ErrorIs(t, err, ErrScheduleInPast)
	})

	t.Run("Deve recusar reagendar campanha em envio", func(t *testing.T) {
		m := newCampaignMocks(ctrl)
		campaign := draftCampaign(1)
		campaign.Status = domain.CampaignSending
		m.campaignRepo.EXPECT().GetByID("cmp_abc").Return(campaign, nil)

		err := m.service().ScheduleCampaign(1, "cmp_abc", time.Now().Add(time.Hour))
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})
}

func TestDeleteCampaign(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("Deve remover rascunho", func(t *testing.T) {
		m := newCampaignMocks(ctrl)
		m.campaignRepo.EXPECT().GetByID("cmp_abc").Return(draftCampaign(1), nil)
		m.campaignRepo.EXPECT().Delete("cmp_abc").Return(nil)

		assert.NoError(t, m.service().DeleteCampaign(1, "cmp_abc"))
	})

	t.Run("Deve recusar remover campanha agendada", func(t *testing.T) {
		m := newCampaignMocks(ctrl)
		campaign := draftCampaign(1)
		campaign.Status = domain.CampaignScheduled
		m.campaignRepo.EXPECT().GetByID("cmp_abc").Return(campaign, nil)

		err := m.service().DeleteCampaign(1, "cmp_abc")
		assert.ErrorIs(t, err, ErrCampaignNotDraft)
	})
}

func TestSendCampaign(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name     string
		setup    func(m *campaignMocks)
		validate func(t *testing.T, err error)
	}{
		{
			name: "Deve enviar para os assinantes ativos e fechar em sent",
			setup: func(m *campaignMocks) {
				m.campaignRepo.EXPECT().GetByID("cmp_abc").Return(draftCampaign(1), nil)
				m.subscriberRepo.EXPECT().ListActiveByCreator(1).Return(activeSubscribers(), nil)
				m.campaignRepo.EXPECT().MarkSending("cmp_abc", 2).Return(nil)
				m.mailer.EXPECT().
					SendBatch(gomock.Len(2)).
					Return(&mailerdomain.BatchReport{Sent: 2}, nil)
				m.statsRepo.EXPECT().RecordDelivery(gomock.Any()).Return(nil).Times(2)
				m.campaignRepo.EXPECT().MarkSent("cmp_abc", gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name: "Destinatário com falha não recebe registro de entrega",
			setup: func(m *campaignMocks) {
				m.campaignRepo.EXPECT().GetByID("cmp_abc").Return(draftCampaign(1), nil)
				m.subscriberRepo.EXPECT().ListActiveByCreator(1).Return(activeSubscribers(), nil)
				m.campaignRepo.EXPECT().MarkSending("cmp_abc", 2).Return(nil)
				m.mailer.EXPECT().
					SendBatch(gomock.Any()).
					Return(&mailerdomain.BatchReport{
						Sent:   1,
						Failed: 1,
						Failures: []mailerdomain.SendResult{
							{To: "breno@example.com", Accepted: false, Reason: "mailbox full"},
						},
					}, nil)
				m.statsRepo.EXPECT().
					RecordDelivery(gomock.Any()).
					DoAndReturn(func(entry *domain.CampaignStatsEntry) error {
						assert.Equal(t, "sub_1", entry.SubscriberID)
						return nil
					})
				m.campaignRepo.EXPECT().MarkSent("cmp_abc", gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name: "Deve fechar em failed quando o provedor recusa o lote inteiro",
			setup: func(m *campaignMocks) {
				m.campaignRepo.EXPECT().GetByID("cmp_abc").Return(draftCampaign(1), nil)
				m.subscriberRepo.EXPECT().ListActiveByCreator(1).Return(activeSubscribers(), nil)
				m.campaignRepo.EXPECT().MarkSending("cmp_abc", 2).Return(nil)
				m.mailer.EXPECT().SendBatch(gomock.Any()).Return(nil, errors.New("timeout"))
				m.campaignRepo.EXPECT().
					TransitionStatus("cmp_abc", []domain.CampaignStatus{domain.CampaignSending}, domain.CampaignFailed).
					Return(nil)
			},
			validate: func(t *testing.T, err error) {
				assert.Error(t, err)
			},
		},
		{
			name: "Deve recusar envio sem assinantes ativos",
			setup: func(m *campaignMocks) {
				m.campaignRepo.EXPECT().GetByID("cmp_abc").Return(draftCampaign(1), nil)
				m.subscriberRepo.EXPECT().ListActiveByCreator(1).Return([]*domain.Subscriber{}, nil)
			},
			validate: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrNoRecipients)
			},
		},
		{
			name: "Campanha disputada por outro processo não é enviada duas vezes",
			setup: func(m *campaignMocks) {
				m.campaignRepo.EXPECT().GetByID("cmp_abc").Return(draftCampaign(1), nil)
				m.subscriberRepo.EXPECT().ListActiveByCreator(1).Return(activeSubscribers(), nil)
				m.campaignRepo.EXPECT().MarkSending("cmp_abc", 2).Return(repository.ErrNoRowsAffected)
			},
			validate: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrInvalidTransition)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newCampaignMocks(ctrl)
			tt.setup(m)

			err := m.service().SendCampaign(1, "cmp_abc")
			tt.validate(t, err)
		})
	}
}

func TestDispatchDueCampaigns(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("Falha em uma campanha não bloqueia as demais", func(t *testing.T) {
		m := newCampaignMocks(ctrl)

		first := draftCampaign(1)
		first.ID = "cmp_1"
		first.Status = domain.CampaignScheduled
		second := draftCampaign(1)
		second.ID = "cmp_2"
		second.Status = domain.CampaignScheduled

		now := time.Now().UTC()
		m.campaignRepo.EXPECT().ListDueScheduled(now).Return([]*domain.EmailCampaign{first, second}, nil)

		// Primeira campanha sem destinatários; a segunda segue o fluxo normal
		gomock.InOrder(
			m.subscriberRepo.EXPECT().ListActiveByCreator(1).Return([]*domain.Subscriber{}, nil),
			m.subscriberRepo.EXPECT().ListActiveByCreator(1).Return(activeSubscribers(), nil),
		)
		m.campaignRepo.EXPECT().MarkSending("cmp_2", 2).Return(nil)
		m.mailer.EXPECT().SendBatch(gomock.Any()).Return(&mailerdomain.BatchReport{Sent: 2}, nil)
		m.statsRepo.EXPECT().RecordDelivery(gomock.Any()).Return(nil).Times(2)
		m.campaignRepo.EXPECT().MarkSent("cmp_2", gomock.Any()).Return(nil)

		assert.NoError(t, m.service().DispatchDueCampaigns(now))
	})
}

func TestProcessMailerEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	occurredAt := time.Date(2024, 3, 10, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		event    *domain.MailerEvent
		setup    func(m *campaignMocks)
		validate func(t *testing.T, err error)
	}{
		{
			name:  "Abertura atualiza as taxas da campanha",
			event: &domain.MailerEvent{Type: domain.MailerEventOpen, CampaignID: "cmp_abc", SubscriberID: "sub_1", OccurredAt: occurredAt},
			setup: func(m *campaignMocks) {
				m.statsRepo.EXPECT().MarkOpened("cmp_abc", "sub_1", occurredAt).Return(nil)
				m.statsRepo.EXPECT().
					CampaignTotals("cmp_abc").
					Return(&domain.CampaignStatsTotals{Delivered: 10, Opened: 4, Clicked: 1}, nil)
				m.campaignRepo.EXPECT().UpdateRates("cmp_abc", 40.0, 10.0).Return(nil)
			},
			validate: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name:  "Evento para entrega inexistente é ignorado",
			event: &domain.MailerEvent{Type: domain.MailerEventClick, CampaignID: "cmp_abc", SubscriberID: "sub_x", OccurredAt: occurredAt},
			setup: func(m *campaignMocks) {
				m.statsRepo.EXPECT().MarkClicked("cmp_abc", "sub_x", occurredAt).Return(repository.ErrNoRowsAffected)
			},
			validate: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name:  "Unsubscribe marca a entrega e desativa o assinante",
			event: &domain.MailerEvent{Type: domain.MailerEventUnsubscribe, CampaignID: "cmp_abc", SubscriberID: "sub_1", OccurredAt: occurredAt},
			setup: func(m *campaignMocks) {
				m.statsRepo.EXPECT().MarkUnsubscribed("cmp_abc", "sub_1", occurredAt).Return(nil)
				m.subscriberRepo.EXPECT().UpdateStatus("sub_1", domain.SubscriberUnsubscribed).Return(nil)
				m.statsRepo.EXPECT().
					CampaignTotals("cmp_abc").
					Return(&domain.CampaignStatsTotals{Delivered: 10, Opened: 4, Clicked: 1}, nil)
				m.campaignRepo.EXPECT().UpdateRates("cmp_abc", 40.0, 10.0).Return(nil)
			},
			validate: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name:  "Bounce só muda o status do assinante",
			event: &domain.MailerEvent{Type: domain.MailerEventBounce, CampaignID: "cmp_abc", SubscriberID: "sub_2", OccurredAt: occurredAt},
			setup: func(m *campaignMocks) {
				m.subscriberRepo.EXPECT().UpdateStatus("sub_2", domain.SubscriberBounced).Return(nil)
			},
			validate: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name:  "Tipo de evento desconhecido é recusado",
			event: &domain.MailerEvent{Type: "spam_report", CampaignID: "cmp_abc", SubscriberID: "sub_1"},
			setup: func(m *campaignMocks) {},
			validate: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrUnknownEvent)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newCampaignMocks(ctrl)
			tt.setup(m)

			err := m.service().ProcessMailerEvent(tt.event)
			tt.validate(t, err)
		})
	}
}

func TestGetCampaignReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("Deve calcular taxas e engagement score a partir das entregas", func(t *testing.T) {
		m := newCampaignMocks(ctrl)

		campaign := draftCampaign(1)
		campaign.Status = domain.CampaignSent
		campaign.RecipientCount = 10
		m.campaignRepo.EXPECT().GetByID("cmp_abc").Return(campaign, nil)
		m.statsRepo.EXPECT().
			CampaignTotals("cmp_abc").
			Return(&domain.CampaignStatsTotals{Delivered: 10, Opened: 5, Clicked: 2, Unsubscribed: 1}, nil)

		report, err := m.service().GetCampaignReport(1, "cmp_abc")
		assert.NoError(t, err)
		assert.Equal(t, 50.0, report.OpenRate)
		assert.Equal(t, 20.0, report.ClickRate)
		// round(0.5*40 + 0.2*60) = 32
		assert.Equal(t, 32, report.EngagementScore)
	})
}

func TestAddSubscriber(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name     string
		email    string
		setup    func(m *campaignMocks)
		validate func(t *testing.T, subscriber *domain.Subscriber, err error)
	}{
		{
			name:  "Deve normalizar o email e criar o assinante ativo",
			email: "  Ana@Example.COM ",
			setup: func(m *campaignMocks) {
				m.subscriberRepo.EXPECT().
					Create(gomock.Any()).
					DoAndReturn(func(subscriber *domain.Subscriber) error {
						assert.Equal(t, "ana@example.com", subscriber.Email)
						assert.Equal(t, domain.SubscriberActive, subscriber.Status)
						return nil
					})
			},
			validate: func(t *testing.T, subscriber *domain.Subscriber, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "ana@example.com", subscriber.Email)
			},
		},
		{
			name:  "Deve recusar email duplicado",
			email: "ana@example.com",
			setup: func(m *campaignMocks) {
				m.subscriberRepo.EXPECT().Create(gomock.Any()).Return(repository.ErrDuplicateKey)
			},
			validate: func(t *testing.T, subscriber *domain.Subscriber, err error) {
				assert.Nil(t, subscriber)
				assert.ErrorIs(t, err, ErrSubscriberExists)
			},
		},
		{
			name:  "Deve recusar email sem arroba",
			email: "nao-e-email",
			setup: func(m *campaignMocks) {},
			validate: func(t *testing.T, subscriber *domain.Subscriber, err error) {
				assert.Nil(t, subscriber)
				assert.ErrorIs(t, err, ErrInvalidEmail)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newCampaignMocks(ctrl)
			tt.setup(m)

			subscriber, err := m.service().AddSubscriber(1, tt.email, "Ana")
			tt.validate(t, subscriber, err)
		})
	}
}

func TestRecalculateEngagement(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("Deve gravar o score calculado do histórico de entregas", func(t *testing.T) {
		m := newCampaignMocks(ctrl)

		m.statsRepo.EXPECT().
			SubscriberEngagement("sub_1").
			Return(&domain.SubscriberEngagement{SubscriberID: "sub_1", Delivered: 20, Opened: 10, Clicked: 4}, nil)
		// round(0.5*40 + 0.2*60) = 32
		m.subscriberRepo.EXPECT().UpdateEngagementScore("sub_1", 32).Return(nil)

		assert.NoError(t, m.service().RecalculateEngagement("sub_1"))
	})

	t.Run("Assinante sem entregas recebe score zero", func(t *testing.T) {
		m := newCampaignMocks(ctrl)

		m.statsRepo.EXPECT().
			SubscriberEngagement("sub_9").
			Return(&domain.SubscriberEngagement{SubscriberID: "sub_9"}, nil)
		m.subscriberRepo.EXPECT().UpdateEngagementScore("sub_9", 0).Return(nil)

		assert.NoError(t, m.service().RecalculateEngagement("sub_9"))
	})
}
