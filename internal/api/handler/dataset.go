package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/campaign-analytics-api/internal/usecases/ingesting"
	"github.com/vfg2006/campaign-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-analytics-api/pkg/log"
)

type ImportDatasetRequest struct {
	Filename string `json:"filename"`
}

// ImportDataset importa um arquivo CSV do diretório de dados
func ImportDataset(service ingesting.Ingester) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req ImportDatasetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if req.Filename == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nome do arquivo não fornecido", nil)
			return
		}

		logger.WithField("filename", req.Filename).Info("datasets: importing dataset file")

		datasetImport, err := service.ImportFile(r.Context(), req.Filename)
		if err != nil {
			switch {
			case errors.Is(err, ingesting.ErrDatasetNotFound):
				apiErrors.WriteError(w, apiErrors.ErrDatasetNotFound, "Arquivo de dataset não encontrado", nil)

			case errors.Is(err, ingesting.ErrDatasetAlreadyLoaded):
				apiErrors.WriteError(w, apiErrors.ErrDatasetAlreadyLoaded, "Dataset já importado anteriormente", nil)

			default:
				logger.WithFields(log.Fields{
					"filename": req.Filename,
					"error":    err.Error(),
				}).Error("datasets: failed to import dataset file")

				apiErrors.WriteError(w, apiErrors.ErrDatasetUnreadable, "Erro ao importar dataset", nil)
			}
			return
		}

		logger.WithFields(log.Fields{
			"import_id": datasetImport.ID,
			"rows_kept": datasetImport.Quality.RowsKept,
		}).Info("datasets: dataset imported successfully")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(datasetImport); err != nil {
			logger.WithError(err).Error("datasets: failed to encode response")
		}
	})
}

// ListDatasetImports lista o histórico de importações de datasets
func ListDatasetImports(service ingesting.Ingester) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		imports, err := service.ListImports()
		if err != nil {
			logger.WithError(err).Error("datasets: failed to list dataset imports")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar importações", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(imports); err != nil {
			logger.WithError(err).Error("datasets: failed to encode response")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}

// GetDatasetImport retorna uma importação de dataset pelo ID,
// incluindo o relatório de qualidade da limpeza
func GetDatasetImport(service ingesting.Ingester) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da importação não fornecido", nil)
			return
		}

		datasetImport, err := service.GetImport(id)
		if err != nil {
			logger.WithFields(log.Fields{
				"import_id": id,
				"error":     err.Error(),
			}).Error("datasets: failed to get dataset import")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar importação", nil)
			return
		}

		if datasetImport == nil {
			apiErrors.WriteError(w, apiErrors.ErrDatasetNotFound, "Importação não encontrada", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(datasetImport); err != nil {
			logger.WithError(err).Error("datasets: failed to encode response")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}

// DeleteDatasetImport remove uma importação e todos os seus registros
func DeleteDatasetImport(service ingesting.Ingester) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da importação não fornecido", nil)
			return
		}

		logger.WithField("import_id", id).Info("datasets: deleting dataset import")

		if err := service.DeleteImport(id); err != nil {
			if errors.Is(err, ingesting.ErrDatasetNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrDatasetNotFound, "Importação não encontrada", nil)
				return
			}

			logger.WithFields(log.Fields{
				"import_id": id,
				"error":     err.Error(),
			}).Error("datasets: failed to delete dataset import")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao remover importação", nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}
