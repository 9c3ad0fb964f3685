package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/creator-platform-api/internal/config"
	"github.com/vfg2006/creator-platform-api/internal/usecases/campaigning"
)

// CampaignDispatchConfig representa a configuração do agendador de disparo de campanhas
type CampaignDispatchConfig struct {
	CronSchedule string
	Enabled      bool
}

// CampaignDispatchService verifica periodicamente campanhas agendadas cujo
// horário de envio já passou e as dispara
type CampaignDispatchService struct {
	scheduler          *gocron.Scheduler
	config             CampaignDispatchConfig
	campaignService    campaigning.CampaignManager
	dispatchRunning    bool
	dispatchMutex      sync.Mutex
	lastRunStartedAt   time.Time
	lastRunCompletedAt time.Time
}

// NewCampaignDispatchService cria uma nova instância do serviço de disparo de campanhas
func NewCampaignDispatchService(
	campaignService campaigning.CampaignManager,
	appConfig *config.Config,
) *CampaignDispatchService {
	dispatchConfig := CampaignDispatchConfig{
		CronSchedule: appConfig.CampaignDispatch.CronSchedule,
		Enabled:      appConfig.CampaignDispatch.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": dispatchConfig.CronSchedule,
		"enabled":       dispatchConfig.Enabled,
	}).Info("Configuração do agendador de disparo de campanhas carregada")

	return &CampaignDispatchService{
		scheduler:       scheduler,
		config:          dispatchConfig,
		campaignService: campaignService,
	}
}

// Start inicia o agendador
func (s *CampaignDispatchService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Disparo automático de campanhas desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de disparo de campanhas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.dispatchDueCampaigns()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar disparo de campanhas: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de disparo de campanhas")
		s.scheduler.Stop()
	}()

	return nil
}

// dispatchDueCampaigns dispara as campanhas agendadas com horário vencido
func (s *CampaignDispatchService) dispatchDueCampaigns() {
	s.dispatchMutex.Lock()
	if s.dispatchRunning {
		s.dispatchMutex.Unlock()
		logrus.Info("Disparo de campanhas já em andamento, ignorando")
		return
	}
	s.dispatchRunning = true
	s.dispatchMutex.Unlock()

	startTime := time.Now()
	s.lastRunStartedAt = startTime

	defer func() {
		s.dispatchMutex.Lock()
		s.dispatchRunning = false
		s.dispatchMutex.Unlock()
	}()

	logrus.Info("Verificando campanhas agendadas com horário vencido")

	if err := s.campaignService.DispatchDueCampaigns(startTime.UTC()); err != nil {
		logrus.WithError(err).Error("Erro ao disparar campanhas agendadas")
		return
	}

	duration := time.Since(startTime)
	logrus.WithField("duration", duration.String()).Info("Verificação de campanhas agendadas concluída")

	s.lastRunCompletedAt = time.Now()
}

// TriggerManualDispatch inicia manualmente uma verificação de campanhas agendadas
func (s *CampaignDispatchService) TriggerManualDispatch() {
	s.dispatchMutex.Lock()
	if s.dispatchRunning {
		s.dispatchMutex.Unlock()
		logrus.Info("Disparo de campanhas já em andamento, ignorando solicitação manual")
		return
	}
	s.dispatchMutex.Unlock()

	logrus.Info("Iniciando verificação manual de campanhas agendadas")
	go s.dispatchDueCampaigns()
}

// GetStatus retorna o status atual do agendador
func (s *CampaignDispatchService) GetStatus() map[string]any {
	return map[string]any{
		"dispatch_enabled":      s.config.Enabled,
		"dispatch_cron":         s.config.CronSchedule,
		"last_run_started_at":   s.lastRunStartedAt,
		"last_run_completed_at": s.lastRunCompletedAt,
	}
}
