package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-analytics-api/internal/config"
	"github.com/vfg2006/campaign-analytics-api/internal/domain"
	"github.com/vfg2006/campaign-analytics-api/internal/usecases/analyzing"
)

// AnalysisSyncConfig representa a configuração do agendador de recálculo de análises
type AnalysisSyncConfig struct {
	CronSchedule      string
	MaxConcurrentJobs int
	SyncEnabled       bool
}

// AnalysisSyncService gerencia o agendamento e execução do recálculo dos snapshots de análise
type AnalysisSyncService struct {
	scheduler           *gocron.Scheduler
	config              AnalysisSyncConfig
	appConfig           *config.Config
	recomputer          analyzing.Recomputer
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewAnalysisSyncService cria uma nova instância do serviço de recálculo de análises
func NewAnalysisSyncService(
	recomputer analyzing.Recomputer,
	appConfig *config.Config,
) *AnalysisSyncService {
	// Criar a configuração com base na config global
	syncConfig := AnalysisSyncConfig{
		CronSchedule:      appConfig.AnalysisSync.CronSchedule,
		MaxConcurrentJobs: appConfig.AnalysisSync.MaxConcurrentJobs,
		SyncEnabled:       appConfig.AnalysisSync.Enabled,
	}

	// Criar o agendador
	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":       syncConfig.CronSchedule,
		"max_concurrent_jobs": syncConfig.MaxConcurrentJobs,
		"sync_enabled":        syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de recálculo de análises carregada")

	return &AnalysisSyncService{
		scheduler:   scheduler,
		config:      syncConfig,
		appConfig:   appConfig,
		recomputer:  recomputer,
		syncRunning: false,
	}
}

// Start inicia o agendador
func (s *AnalysisSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Recálculo agendado de análises desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de recálculo de análises")

	// Agendar o recálculo dos snapshots
	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllScopes()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar recálculo de análises: %w", err)
	}

	// Executar o agendador em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de recálculo de análises")
		s.scheduler.Stop()
	}()

	return nil
}

// syncAllScopes recalcula os snapshots de todos os escopos de análise
func (s *AnalysisSyncService) syncAllScopes() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Recálculo de análises já em andamento, ignorando")
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

	scopes := s.recomputer.AllScopes()

	logrus.WithField("scopes", len(scopes)).Info("Iniciando recálculo dos snapshots de análise")

	s.processScopes(scopes)

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration": duration.String(),
		"scopes":   len(scopes),
	}).Info("Recálculo dos snapshots de análise concluído")

	s.lastSyncCompletedAt = time.Now()
}

// processScopes recalcula cada escopo usando um pool limitado de workers
func (s *AnalysisSyncService) processScopes(scopes []domain.MetricScope) {
	// Criar um canal para controlar o número de workers concorrentes
	semaphore := make(chan struct{}, s.config.MaxConcurrentJobs)
	var wg sync.WaitGroup

	for _, scope := range scopes {
		// Adicionar uma tarefa ao grupo de espera
		wg.Add(1)
		semaphore <- struct{}{} // Adquirir semáforo

		go func(sc domain.MetricScope) {
			defer func() {
				<-semaphore // Liberar semáforo
				wg.Done()
			}()

			logrus.WithField("scope", sc).Info("Recalculando snapshot de análise")

			if err := s.recomputer.RecomputeScope(sc); err != nil {
				logrus.WithError(err).WithField("scope", sc).Error("Erro ao recalcular snapshot de análise")
				return
			}

			logrus.WithField("scope", sc).Info("Snapshot de análise recalculado com sucesso")
		}(scope)
	}

	// Aguardar todos os workers terminarem
	wg.Wait()
}

// TriggerManualSync inicia manualmente um recálculo das análises
func (s *AnalysisSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Recálculo de análises já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando recálculo manual das análises")
	go s.syncAllScopes()
}

// GetStatus retorna o status atual da sincronização
func (s *AnalysisSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_running":           s.syncRunning,
		"sync_cron":              s.config.CronSchedule,
		"sync_enabled":           s.config.SyncEnabled,
		"sync_max_concurrent":    s.config.MaxConcurrentJobs,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
