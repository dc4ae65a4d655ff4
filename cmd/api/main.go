package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-analytics-api/infrastructure/dataset"
	"github.com/vfg2006/campaign-analytics-api/infrastructure/repository"
	"github.com/vfg2006/campaign-analytics-api/internal/api"
	"github.com/vfg2006/campaign-analytics-api/internal/config"
	"github.com/vfg2006/campaign-analytics-api/internal/scheduler"
	"github.com/vfg2006/campaign-analytics-api/internal/usecases/analyzing"
	"github.com/vfg2006/campaign-analytics-api/internal/usecases/authenticating"
	"github.com/vfg2006/campaign-analytics-api/internal/usecases/ingesting"
	"github.com/vfg2006/campaign-analytics-api/internal/usecases/reporting"
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
	adRecordRepo := repository.NewAdRecordRepository(pgConn)
	datasetImportRepo := repository.NewDatasetImportRepository(pgConn)
	snapshotRepo := repository.NewAnalysisSnapshotRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	loader := dataset.NewLoader(cfg.Dataset.DataDir)
	ingestService := ingesting.NewService(cfg, loader, adRecordRepo, datasetImportRepo)

	// Inicializa o serviço de análises com suporte a cache de snapshots
	analysisService := analyzing.NewService(cfg, adRecordRepo)
	cachedAnalysisService := analysisService.(*analyzing.Service).WithCache(snapshotRepo)

	reportService := reporting.NewService(cachedAnalysisService)

	// Inicializa os agendadores de sincronização separados
	analysisSyncService := scheduler.NewAnalysisSyncService(
		cachedAnalysisService,
		cfg,
	)

	datasetImportSyncService := scheduler.NewDatasetImportSyncService(
		ingestService,
		analysisSyncService,
		cfg,
	)

	// Inicia os agendadores em background
	if err := analysisSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de recálculo de análises")
	} else {
		logrus.Info("Agendador de recálculo de análises iniciado com sucesso")
	}

	if err := datasetImportSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de importação de datasets")
	} else {
		logrus.Info("Agendador de importação de datasets iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		cachedAnalysisService,
		reportService,
		ingestService,
		authenticator,
		analysisSyncService,      // Serviço de recálculo de análises
		datasetImportSyncService, // Serviço de importação de datasets
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
