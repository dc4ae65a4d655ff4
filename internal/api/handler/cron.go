package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-analytics-api/internal/domain"
	"github.com/vfg2006/campaign-analytics-api/internal/scheduler"
	"github.com/vfg2006/campaign-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-analytics-api/pkg/middleware"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeAnalysis      = "analysis"
	CronJobTypeDatasetImport = "dataset-import"
	CronJobTypeAll           = "all"
)

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	AnalysisSyncService      *scheduler.AnalysisSyncService
	DatasetImportSyncService *scheduler.DatasetImportSyncService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		// Verificar permissões - apenas administradores podem executar cron jobs
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || userClaims.UserRoleID != 1 {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem executar cron jobs", nil)
			return
		}

		// Obter o tipo de cron job da URL
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		// Validar o tipo de cron job
		switch cronType {
		case CronJobTypeAnalysis:
			// Executar o recálculo das análises
			if services.AnalysisSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de recálculo de análises não disponível", nil)
				return
			}
			services.AnalysisSyncService.TriggerManualSync()

		case CronJobTypeDatasetImport:
			// Executar a importação de novos datasets
			if services.DatasetImportSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de importação de datasets não disponível", nil)
				return
			}
			services.DatasetImportSyncService.TriggerManualSync()

		case CronJobTypeAll:
			// Executar ambas as sincronizações
			if services.DatasetImportSyncService != nil {
				services.DatasetImportSyncService.TriggerManualSync()
			}
			if services.AnalysisSyncService != nil {
				services.AnalysisSyncService.TriggerManualSync()
			}

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: analysis, dataset-import, all", nil)
			return
		}

		// Responder com sucesso
		response := map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		// Verificar permissões - apenas administradores podem ver status das crons
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || userClaims.UserRoleID != 1 {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem verificar status de cron jobs", nil)
			return
		}

		status := map[string]any{
			"analysis":       services.AnalysisSyncService.GetStatus(),
			"dataset-import": services.DatasetImportSyncService.GetStatus(),
		}

		json.NewEncoder(w).Encode(status)
	}
}
