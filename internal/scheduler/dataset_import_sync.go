package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-analytics-api/internal/config"
	"github.com/vfg2006/campaign-analytics-api/internal/usecases/ingesting"
)

// DatasetImportSyncConfig representa a configuração do agendador de importação de datasets
type DatasetImportSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// DatasetImportSyncService gerencia o agendamento da importação de novos arquivos
// do diretório de dados. Após importar algo novo, dispara o recálculo das análises.
type DatasetImportSyncService struct {
	scheduler           *gocron.Scheduler
	config              DatasetImportSyncConfig
	appConfig           *config.Config
	ingester            ingesting.Ingester
	analysisSync        *AnalysisSyncService
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewDatasetImportSyncService cria uma nova instância do serviço de importação agendada
func NewDatasetImportSyncService(
	ingester ingesting.Ingester,
	analysisSync *AnalysisSyncService,
	appConfig *config.Config,
) *DatasetImportSyncService {
	// Criar a configuração com base na config global
	syncConfig := DatasetImportSyncConfig{
		CronSchedule: appConfig.DatasetImportSync.CronSchedule,
		SyncEnabled:  appConfig.DatasetImportSync.Enabled,
	}

	// Criar o agendador
	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de importação de datasets carregada")

	return &DatasetImportSyncService{
		scheduler:    scheduler,
		config:       syncConfig,
		appConfig:    appConfig,
		ingester:     ingester,
		analysisSync: analysisSync,
		syncRunning:  false,
	}
}

// Start inicia o agendador
func (s *DatasetImportSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Importação agendada de datasets desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de importação de datasets")

	// Agendar a importação de novos arquivos
	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.importNewFiles(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar importação de datasets: %w", err)
	}

	// Executar o agendador em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de importação de datasets")
		s.scheduler.Stop()
	}()

	return nil
}

// importNewFiles importa os arquivos ainda não processados do diretório de dados
func (s *DatasetImportSyncService) importNewFiles(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Importação de datasets já em andamento, ignorando")
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

	logrus.Info("Iniciando importação agendada de datasets")

	imports, err := s.ingester.ImportNewFiles(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao importar novos datasets")
		return
	}

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration": duration.String(),
		"imports":  len(imports),
	}).Info("Importação agendada de datasets concluída")

	s.lastSyncCompletedAt = time.Now()

	// Dados novos invalidam os snapshots; disparar o recálculo
	if len(imports) > 0 && s.analysisSync != nil {
		logrus.WithField("imports", len(imports)).Info("Novos datasets importados, disparando recálculo das análises")
		s.analysisSync.TriggerManualSync()
	}
}

// TriggerManualSync inicia manualmente uma importação de novos datasets
func (s *DatasetImportSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Importação de datasets já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando importação manual de datasets")
	go s.importNewFiles(context.Background())
}

// GetStatus retorna o status atual da sincronização
func (s *DatasetImportSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_running":           s.syncRunning,
		"sync_cron":              s.config.CronSchedule,
		"sync_enabled":           s.config.SyncEnabled,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
