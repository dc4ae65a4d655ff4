package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/campaign-analytics-api/internal/usecases/analyzing"
	"github.com/vfg2006/campaign-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-analytics-api/pkg/log"
)

// GetOverallInsights retorna o resumo geral de KPIs do dataset
func GetOverallInsights(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		logger.Info("insights: fetching overall metrics")

		overall, err := service.GetOverallMetrics()
		if err != nil {
			logger.WithError(err).Error("insights: failed to get overall metrics")
			apiErrors.WriteError(w, apiErrors.ErrAnalysisUnavailable, "Erro ao calcular métricas gerais", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(overall); err != nil {
			logger.WithError(err).Error("insights: failed to encode response")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}

// GetCampaignInsights retorna as métricas agrupadas por campanha
func GetCampaignInsights(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		logger.Info("insights: fetching campaign metrics")

		groups, err := service.GetCampaignMetrics()
		if err != nil {
			logger.WithError(err).Error("insights: failed to get campaign metrics")
			apiErrors.WriteError(w, apiErrors.ErrAnalysisUnavailable, "Erro ao calcular métricas por campanha", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(groups); err != nil {
			logger.WithError(err).Error("insights: failed to encode response")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}

// GetCampaignInsightByID retorna as métricas de uma campanha específica
func GetCampaignInsightByID(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		logger.WithField("campaign_id", id).Info("insights: fetching campaign metrics by ID")

		group, err := service.GetCampaignMetricsByID(id)
		if err != nil {
			if errors.Is(err, analyzing.ErrCampaignNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrCampaignNotFound, "Campanha não encontrada", nil)
				return
			}

			logger.WithFields(log.Fields{
				"campaign_id": id,
				"error":       err.Error(),
			}).Error("insights: failed to get campaign metrics by ID")

			apiErrors.WriteError(w, apiErrors.ErrAnalysisUnavailable, "Erro ao calcular métricas da campanha", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(group); err != nil {
			logger.WithError(err).Error("insights: failed to encode response")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}

// GetInsightsByDimension retorna as métricas agrupadas por uma dimensão
// demográfica (gender, age ou segment), informada via query string
func GetInsightsByDimension(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		dimension := r.URL.Query().Get("dimension")
		if dimension == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Parâmetro dimension não fornecido", nil)
			return
		}

		logger.WithField("dimension", dimension).Info("insights: fetching metrics by dimension")

		groups, err := service.GetMetricsByDimension(dimension)
		if err != nil {
			if errors.Is(err, analyzing.ErrUnknownDimension) {
				apiErrors.WriteError(w, apiErrors.ErrUnknownDimension, "Dimensão inválida. Valores aceitos: gender, age, segment", nil)
				return
			}

			logger.WithFields(log.Fields{
				"dimension": dimension,
				"error":     err.Error(),
			}).Error("insights: failed to get metrics by dimension")

			apiErrors.WriteError(w, apiErrors.ErrAnalysisUnavailable, "Erro ao calcular métricas por dimensão", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(groups); err != nil {
			logger.WithError(err).Error("insights: failed to encode response")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}

// GetTimeInsights retorna as métricas agrupadas no tempo
// (granularity=monthly ou granularity=day_of_week)
func GetTimeInsights(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		granularity := r.URL.Query().Get("granularity")
		if granularity == "" {
			granularity = "monthly"
		}

		logger.WithField("granularity", granularity).Info("insights: fetching time metrics")

		groups, err := service.GetTimeMetrics(granularity)
		if err != nil {
			if errors.Is(err, analyzing.ErrUnknownDimension) {
				apiErrors.WriteError(w, apiErrors.ErrUnknownDimension, "Granularidade inválida. Valores aceitos: monthly, day_of_week", nil)
				return
			}

			logger.WithFields(log.Fields{
				"granularity": granularity,
				"error":       err.Error(),
			}).Error("insights: failed to get time metrics")

			apiErrors.WriteError(w, apiErrors.ErrAnalysisUnavailable, "Erro ao calcular métricas temporais", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(groups); err != nil {
			logger.WithError(err).Error("insights: failed to encode response")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}

// GetAvailablePeriods retorna os períodos mensais presentes no dataset
func GetAvailablePeriods(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		logger.Info("insights: fetching available periods")

		periods, err := service.GetAvailablePeriods()
		if err != nil {
			logger.WithError(err).Error("insights: failed to get available periods")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar períodos disponíveis", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(periods); err != nil {
			logger.WithError(err).Error("insights: failed to encode response")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}
