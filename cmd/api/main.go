package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/adlens/creative-audit-api/infrastructure/database/postgres"
	"github.com/adlens/creative-audit-api/infrastructure/integrator"
	"github.com/adlens/creative-audit-api/infrastructure/integrator/googleads"
	"github.com/adlens/creative-audit-api/infrastructure/integrator/googleads/gadsclient"
	"github.com/adlens/creative-audit-api/infrastructure/integrator/meta"
	"github.com/adlens/creative-audit-api/infrastructure/integrator/meta/metaclient"
	"github.com/adlens/creative-audit-api/infrastructure/objectstore"
	"github.com/adlens/creative-audit-api/infrastructure/repository"
	"github.com/adlens/creative-audit-api/internal/api"
	"github.com/adlens/creative-audit-api/internal/config"
	"github.com/adlens/creative-audit-api/internal/scheduler"
	"github.com/adlens/creative-audit-api/internal/usecases/authenticating"
	"github.com/adlens/creative-audit-api/internal/usecases/integrating"
	"github.com/adlens/creative-audit-api/internal/usecases/syncing"
	"github.com/sirupsen/logrus"
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
	integrationRepo := repository.NewIntegrationRepository(pgConn)
	campaignRepo := repository.NewCampaignRepository(pgConn)
	adSetRepo := repository.NewAdSetRepository(pgConn)
	creativeRepo := repository.NewCreativeRepository(pgConn)
	historyRepo := repository.NewSyncHistoryRepository(pgConn)
	sessionRepo := repository.NewOAuthSessionRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	metaClient := metaclient.NewClient(cfg)
	metaIntegrator := meta.NewService(metaClient)

	googleAdsClient := gadsclient.NewClient(cfg)
	googleAdsIntegrator := googleads.NewService(googleAdsClient)

	registry := integrator.NewRegistry(metaIntegrator, googleAdsIntegrator)

	reconciler := syncing.NewReconciler(campaignRepo, adSetRepo, creativeRepo)

	orchestrator := syncing.NewOrchestrator(
		cfg,
		registry,
		reconciler,
		integrationRepo,
		historyRepo,
		creativeRepo,
	)

	// Cache interno das imagens dos criativos é opcional
	if cfg.MediaCache.Enabled {
		mediaCache, err := objectstore.NewMediaCache(cfg.MediaCache)
		if err != nil {
			logrus.WithError(err).Fatal("Erro ao inicializar o cache de mídia")
		}

		if err := mediaCache.EnsureBucket(ctx); err != nil {
			logrus.WithError(err).Fatal("Erro ao preparar o bucket do cache de mídia")
		}

		orchestrator.WithImageCacher(mediaCache)
		logrus.Info("Cache de mídia habilitado")
	}

	syncService := syncing.NewService(cfg, orchestrator, integrationRepo, historyRepo)

	integrationService := integrating.NewService(cfg, metaClient, integrationRepo, sessionRepo)

	// Inicializa o agendador de sincronização automática
	syncSchedulerService := scheduler.NewSyncSchedulerService(syncService, historyRepo, cfg)
	if err := syncSchedulerService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização")
	} else {
		logrus.Info("Agendador de sincronização iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		authenticator,
		integrationService,
		syncService,
		syncSchedulerService,
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
