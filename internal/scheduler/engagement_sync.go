package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/creator-platform-api/infrastructure/repository"
	"github.com/vfg2006/creator-platform-api/internal/config"
	"github.com/vfg2006/creator-platform-api/internal/usecases/campaigning"
)

// EngagementSyncConfig representa a configuração da sincronização de engajamento
type EngagementSyncConfig struct {
	CronSchedule string
	Enabled      bool
}

// EngagementSyncService recalcula periodicamente o engagement score dos
// assinantes ativos de todos os criadores
type EngagementSyncService struct {
	scheduler          *gocron.Scheduler
	config             EngagementSyncConfig
	campaignService    campaigning.CampaignManager
	userRepo           repository.UserRepository
	subscriberRepo     repository.SubscriberRepository
	syncRunning        bool
	syncMutex          sync.Mutex
	lastSyncStartedAt  time.Time
	lastSyncFinishedAt time.Time
}

// NewEngagementSyncService cria uma nova instância do serviço de sincronização de engajamento
func NewEngagementSyncService(
	campaignService campaigning.CampaignManager,
	userRepo repository.UserRepository,
	subscriberRepo repository.SubscriberRepository,
	appConfig *config.Config,
) *EngagementSyncService {
	syncConfig := EngagementSyncConfig{
		CronSchedule: appConfig.EngagementSync.CronSchedule,
		Enabled:      appConfig.EngagementSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"enabled":       syncConfig.Enabled,
	}).Info("Configuração da sincronização de engajamento carregada")

	return &EngagementSyncService{
		scheduler:       scheduler,
		config:          syncConfig,
		campaignService: campaignService,
		userRepo:        userRepo,
		subscriberRepo:  subscriberRepo,
	}
}

// Start inicia o agendador
func (s *EngagementSyncService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Sincronização de engajamento desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização de engajamento")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncEngagementScores()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de engajamento: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de engajamento")
		s.scheduler.Stop()
	}()

	return nil
}

// syncEngagementScores percorre os assinantes ativos de cada criador e
// recalcula o engagement score de cada um
func (s *EngagementSyncService) syncEngagementScores() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de engajamento já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando sincronização de engagement scores")

	creators, err := s.userRepo.ListUser()
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar criadores para sincronização de engajamento")
		return
	}

	var updated, failed int

	for _, creator := range creators {
		subscribers, err := s.subscriberRepo.ListActiveByCreator(creator.ID)
		if err != nil {
			logrus.WithError(err).WithField("creator_id", creator.ID).
				Error("Erro ao listar assinantes do criador")
			failed++
			continue
		}

		for _, subscriber := range subscribers {
			if err := s.campaignService.RecalculateEngagement(subscriber.ID); err != nil {
				logrus.WithError(err).WithFields(logrus.Fields{
					"creator_id":    creator.ID,
					"subscriber_id": subscriber.ID,
				}).Warn("Erro ao recalcular engagement score do assinante")
				failed++
				continue
			}
			updated++
		}
	}

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"updated":  updated,
		"failed":   failed,
		"duration": duration.String(),
	}).Info("Sincronização de engagement scores concluída")

	s.lastSyncFinishedAt = time.Now()
}

// TriggerManualSync inicia manualmente uma sincronização de engajamento
func (s *EngagementSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de engajamento já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual de engajamento")
	go s.syncEngagementScores()
}

// GetStatus retorna o status atual do agendador
func (s *EngagementSyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":          s.config.Enabled,
		"sync_cron":             s.config.CronSchedule,
		"last_sync_started_at":  s.lastSyncStartedAt,
		"last_sync_finished_at": s.lastSyncFinishedAt,
	}
}
