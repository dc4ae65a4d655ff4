package domain

import (
	"time"

	"github.com/vfg2006/campaign-analytics-api/pkg/utils"
)

// MetricScope identifica a dimensão de agrupamento de uma análise
type MetricScope string

const (
	ScopeOverall   MetricScope = "overall"
	ScopeCampaign  MetricScope = "campaign"
	ScopeGender    MetricScope = "gender"
	ScopeAge       MetricScope = "age"
	ScopeSegment   MetricScope = "segment"
	ScopeMonthly   MetricScope = "monthly"
	ScopeDayOfWeek MetricScope = "day_of_week"
)

// Faixas de classificação de desempenho por ROAS
const (
	TierLossMaking       = "Loss Making"
	TierBreakEven        = "Break Even"
	TierProfitable       = "Profitable"
	TierHighlyProfitable = "Highly Profitable"
)

// PerformanceTier classifica um ROAS em uma faixa de desempenho.
// Limites fechados à esquerda: ROAS exatamente 1 já é Break Even.
func PerformanceTier(roas float64) string {
	switch {
	case roas < 1:
		return TierLossMaking
	case roas < 2:
		return TierBreakEven
	case roas < 5:
		return TierProfitable
	default:
		return TierHighlyProfitable
	}
}

// GroupTotals é o acumulado bruto de um grupo retornado pelo banco
type GroupTotals struct {
	Key    string `json:"key"`
	Totals Totals `json:"totals"`
}

// GroupMetrics é o resultado da análise de uma fatia do dataset
type GroupMetrics struct {
	Key             string      `json:"key"`
	Totals          Totals      `json:"totals"`
	Metrics         *KPIMetrics `json:"metrics"`
	SpendShare      float64     `json:"spend_share"`
	ConversionShare float64     `json:"conversion_share"`
	EfficiencyScore float64     `json:"efficiency_score"`
	Tier            string      `json:"performance_tier"`
}

// ComputeShares preenche spend_share, conversion_share e efficiency_score de
// cada grupo em relação aos totais gerais do conjunto
func ComputeShares(groups []*GroupMetrics) {
	var totalSpend float64
	var totalConversions int64

	for _, g := range groups {
		totalSpend += g.Totals.Spend
		totalConversions += g.Totals.ApprovedConversions
	}

	for _, g := range groups {
		if totalSpend > 0 {
			g.SpendShare = utils.RoundWithFourDecimalPlaces(g.Totals.Spend / totalSpend)
		}
		if totalConversions > 0 {
			g.ConversionShare = utils.RoundWithFourDecimalPlaces(
				float64(g.Totals.ApprovedConversions) / float64(totalConversions),
			)
		}
		if g.SpendShare > 0 {
			g.EfficiencyScore = utils.RoundWithFourDecimalPlaces(g.ConversionShare / g.SpendShare)
		}
	}
}

// AnalysisSnapshot representa um resultado de análise persistido no banco
type AnalysisSnapshot struct {
	ID        int64           `json:"id"`
	Scope     MetricScope     `json:"scope"`
	Groups    []*GroupMetrics `json:"groups"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
