package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/creator-platform-api/infrastructure/database/postgres"
	"github.com/vfg2006/creator-platform-api/infrastructure/integrator/mailer"
	"github.com/vfg2006/creator-platform-api/infrastructure/integrator/mailer/mailerclient"
	"github.com/vfg2006/creator-platform-api/infrastructure/integrator/paymentgw"
	"github.com/vfg2006/creator-platform-api/infrastructure/integrator/paymentgw/paymentclient"
	"github.com/vfg2006/creator-platform-api/infrastructure/repository"
	"github.com/vfg2006/creator-platform-api/internal/api"
	"github.com/vfg2006/creator-platform-api/internal/config"
	"github.com/vfg2006/creator-platform-api/internal/scheduler"
	"github.com/vfg2006/creator-platform-api/internal/usecases/affiliating"
	"github.com/vfg2006/creator-platform-api/internal/usecases/analyzing"
	"github.com/vfg2006/creator-platform-api/internal/usecases/authenticating"
	"github.com/vfg2006/creator-platform-api/internal/usecases/campaigning"
	"github.com/vfg2006/creator-platform-api/internal/usecases/dashboarding"
	"github.com/vfg2006/creator-platform-api/internal/usecases/revenue"
	"github.com/vfg2006/creator-platform-api/internal/usecases/subscribing"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	userRepo := repository.NewUserRepository(pgConn)
	revenueRepo := repository.NewAdRevenueRepository(pgConn)
	linkRepo := repository.NewAffiliateLinkRepository(pgConn)
	clickRepo := repository.NewAffiliateClickRepository(pgConn)
	articleRepo := repository.NewArticleRepository(pgConn)
	analyticsRepo := repository.NewArticleAnalyticsRepository(pgConn)
	campaignRepo := repository.NewEmailCampaignRepository(pgConn)
	campaignStatsRepo := repository.NewEmailCampaignStatsRepository(pgConn)
	subscriberRepo := repository.NewSubscriberRepository(pgConn)
	planRepo := repository.NewSubscriptionPlanRepository(pgConn)
	subscriptionRepo := repository.NewSubscriptionRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	paymentClient := paymentclient.NewClient(cfg)
	paymentIntegrator := paymentgw.New(cfg, paymentClient)

	mailerClient := mailerclient.NewClient(cfg)
	mailerIntegrator := mailer.New(cfg, mailerClient)

	revenueService := revenue.NewService(revenueRepo)
	affiliateService := affiliating.NewService(linkRepo, clickRepo)
	analyticsService := analyzing.NewService(articleRepo, analyticsRepo)
	campaignService := campaigning.NewService(campaignRepo, campaignStatsRepo, subscriberRepo, mailerIntegrator)
	subscriptionService := subscribing.NewService(planRepo, subscriptionRepo, subscriberRepo, paymentIntegrator)
	dashboardService := dashboarding.NewService(revenueRepo, clickRepo, analyticsRepo, articleRepo, subscriptionRepo)

	// Inicializa os agendadores
	campaignDispatchService := scheduler.NewCampaignDispatchService(campaignService, cfg)
	engagementSyncService := scheduler.NewEngagementSyncService(campaignService, userRepo, subscriberRepo, cfg)

	// Inicia os agendadores em background
	if err := campaignDispatchService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de disparo de campanhas")
	} else {
		logrus.Info("Agendador de disparo de campanhas iniciado com sucesso")
	}

	if err := engagementSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de engajamento")
	} else {
		logrus.Info("Agendador de sincronização de engajamento iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		authenticator,
		revenueService,
		affiliateService,
		analyticsService,
		campaignService,
		subscriptionService,
		dashboardService,
		campaignDispatchService,
		engagementSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
