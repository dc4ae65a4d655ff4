package analyzing

import (
	"github.com/vfg2006/campaign-analytics-api/internal/domain"
)

// Analyzer define a interface de consulta das análises de ROI e KPIs
type Analyzer interface {
	// GetOverallMetrics obtém o resumo geral do dataset
	GetOverallMetrics() (*domain.OverallReport, error)

	// GetCampaignMetrics obtém as métricas agrupadas por campanha
	GetCampaignMetrics() ([]*domain.GroupMetrics, error)

	// GetCampaignMetricsByID obtém as métricas de uma campanha específica
	GetCampaignMetricsByID(campaignID string) (*domain.GroupMetrics, error)

	// GetMetricsByDimension obtém as métricas agrupadas por uma dimensão
	// demográfica (gender, age ou segment)
	GetMetricsByDimension(dimension string) ([]*domain.GroupMetrics, error)

	// GetTimeMetrics obtém as métricas agrupadas no tempo
	// (monthly ou day_of_week)
	GetTimeMetrics(granularity string) ([]*domain.GroupMetrics, error)

	// GetAvailablePeriods retorna os períodos mensais presentes no dataset
	GetAvailablePeriods() (*domain.AvailablePeriods, error)
}

// Recomputer define a interface usada pelo agendador para recalcular análises
type Recomputer interface {
	// RecomputeScope recalcula e persiste o snapshot de um escopo
	RecomputeScope(scope domain.MetricScope) error

	// AllScopes lista os escopos de análise existentes
	AllScopes() []domain.MetricScope
}

// CombinedAnalyzer combina consulta e recálculo de análises
type CombinedAnalyzer interface {
	Analyzer
	Recomputer
}
