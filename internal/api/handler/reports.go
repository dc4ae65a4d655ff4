package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/campaign-analytics-api/internal/usecases/analyzing"
	"github.com/vfg2006/campaign-analytics-api/internal/usecases/reporting"
	"github.com/vfg2006/campaign-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-analytics-api/pkg/log"
)

// GetTopCampaigns retorna o ranking de campanhas por ROI (by=roi, padrão)
// ou por menor CPA (by=cpa). O tamanho do ranking é controlado por limit.
func GetTopCampaigns(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		by := r.URL.Query().Get("by")
		if by == "" {
			by = "roi"
		}

		limit := 0
		if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
			parsed, err := strconv.Atoi(limitStr)
			if err != nil || parsed <= 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro limit inválido", nil)
				return
			}
			limit = parsed
		}

		logger.WithFields(log.Fields{
			"by":    by,
			"limit": limit,
		}).Info("reports: fetching top campaigns")

		var (
			report interface{}
			err    error
		)

		switch by {
		case "roi":
			report, err = service.TopCampaignsByROI(limit)
		case "cpa":
			report, err = service.TopCampaignsByLowestCPA(limit)
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Critério inválido. Valores aceitos: roi, cpa", nil)
			return
		}

		if err != nil {
			logger.WithFields(log.Fields{
				"by":    by,
				"error": err.Error(),
			}).Error("reports: failed to build top campaigns report")

			apiErrors.WriteError(w, apiErrors.ErrAnalysisUnavailable, "Erro ao montar ranking de campanhas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logger.WithError(err).Error("reports: failed to encode response")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}

// GetOverallReport retorna o resumo geral pronto para exibição
func GetOverallReport(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		logger.Info("reports: fetching overall summary")

		report, err := service.OverallSummary()
		if err != nil {
			logger.WithError(err).Error("reports: failed to build overall summary")
			apiErrors.WriteError(w, apiErrors.ErrAnalysisUnavailable, "Erro ao montar resumo geral", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logger.WithError(err).Error("reports: failed to encode response")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}

// GetROIByDimension retorna a série de ROI por dimensão demográfica
func GetROIByDimension(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		dimension := r.URL.Query().Get("dimension")
		if dimension == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Parâmetro dimension não fornecido", nil)
			return
		}

		logger.WithField("dimension", dimension).Info("reports: fetching ROI by dimension")

		report, err := service.ROIByDimension(dimension)
		if err != nil {
			if errors.Is(err, analyzing.ErrUnknownDimension) {
				apiErrors.WriteError(w, apiErrors.ErrUnknownDimension, "Dimensão inválida. Valores aceitos: gender, age, segment", nil)
				return
			}

			logger.WithFields(log.Fields{
				"dimension": dimension,
				"error":     err.Error(),
			}).Error("reports: failed to build ROI by dimension report")

			apiErrors.WriteError(w, apiErrors.ErrAnalysisUnavailable, "Erro ao montar relatório por dimensão", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logger.WithError(err).Error("reports: failed to encode response")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}

// GetMonthlyROITrend retorna a evolução mensal do ROI
func GetMonthlyROITrend(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		logger.Info("reports: fetching monthly ROI trend")

		report, err := service.MonthlyROITrend()
		if err != nil {
			logger.WithError(err).Error("reports: failed to build monthly ROI trend")
			apiErrors.WriteError(w, apiErrors.ErrAnalysisUnavailable, "Erro ao montar tendência mensal de ROI", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logger.WithError(err).Error("reports: failed to encode response")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}

// GetDayOfWeekROI retorna o ROI por dia da semana
func GetDayOfWeekROI(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		logger.Info("reports: fetching ROI by day of week")

		report, err := service.DayOfWeekROI()
		if err != nil {
			logger.WithError(err).Error("reports: failed to build ROI by day of week")
			apiErrors.WriteError(w, apiErrors.ErrAnalysisUnavailable, "Erro ao montar relatório por dia da semana", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logger.WithError(err).Error("reports: failed to encode response")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}

// ExportReport exporta a tabela completa de métricas de um relatório em CSV
func ExportReport(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		name := httprouter.ParamsFromContext(r.Context()).ByName("name")
		logger.WithField("report", name).Info("reports: exporting report as CSV")

		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s.csv", name))

		if err := service.ExportCSV(name, w); err != nil {
			if errors.Is(err, reporting.ErrUnknownReport) {
				w.Header().Del("Content-Disposition")
				w.Header().Set("Content-Type", "application/json")
				apiErrors.WriteError(w, apiErrors.ErrUnknownReport, "Relatório desconhecido. Valores aceitos: campaigns, gender, age, segment, monthly, day_of_week", nil)
				return
			}

			logger.WithFields(log.Fields{
				"report": name,
				"error":  err.Error(),
			}).Error("reports: failed to export report")
		}
	})
}
