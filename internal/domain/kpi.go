package domain

import (
	"github.com/vfg2006/campaign-analytics-api/pkg/utils"
)

// Totals acumula os valores brutos de uma fatia do dataset (uma campanha,
// um segmento demográfico, um mês ou o dataset inteiro)
type Totals struct {
	Spend               float64 `json:"spend"`
	Impressions         int64   `json:"impressions"`
	Clicks              int64   `json:"clicks"`
	TotalConversions    int64   `json:"total_conversion"`
	ApprovedConversions int64   `json:"approved_conversion"`
}

// Add acumula os valores de uma linha limpa
func (t *Totals) Add(r *AdRecord) {
	t.Spend += r.Spent
	t.Impressions += r.Impressions
	t.Clicks += r.Clicks
	t.TotalConversions += r.TotalConversions
	t.ApprovedConversions += r.ApprovedConversions
}

// KPIMetrics contém as métricas derivadas de um Totals.
// CPA é nulo quando não houve conversões aprovadas: custo por aquisição
// não é definido sem aquisições, e zero daria a falsa impressão de custo zero.
type KPIMetrics struct {
	Revenue                float64  `json:"revenue"`
	Profit                 float64  `json:"profit"`
	ROI                    float64  `json:"roi"`
	ROAS                   float64  `json:"roas"`
	CTR                    float64  `json:"ctr"`
	ConversionRate         float64  `json:"conversion_rate"`
	ApprovedConversionRate float64  `json:"approved_conversion_rate"`
	CPC                    *float64 `json:"cpc"`
	CPM                    float64  `json:"cpm"`
	CPA                    *float64 `json:"cpa"`
}

// ComputeKPIMetrics deriva todas as métricas a partir dos totais acumulados.
// conversionValue é a receita assumida por conversão aprovada.
// Todas as divisões são protegidas contra denominador zero.
func ComputeKPIMetrics(t Totals, conversionValue float64) *KPIMetrics {
	m := &KPIMetrics{}

	m.Revenue = float64(t.ApprovedConversions) * conversionValue
	m.Profit = m.Revenue - t.Spend

	if t.Spend > 0 {
		m.ROI = utils.RoundWithFourDecimalPlaces(m.Profit / t.Spend)
		m.ROAS = utils.RoundWithFourDecimalPlaces(m.Revenue / t.Spend)
	}

	if t.Impressions > 0 {
		m.CTR = utils.RoundWithFourDecimalPlaces(float64(t.Clicks) / float64(t.Impressions))
		m.CPM = utils.RoundWithFourDecimalPlaces(t.Spend / float64(t.Impressions) * 1000)
	}

	if t.Clicks > 0 {
		m.ConversionRate = utils.RoundWithFourDecimalPlaces(float64(t.TotalConversions) / float64(t.Clicks))
		cpc := utils.RoundWithFourDecimalPlaces(t.Spend / float64(t.Clicks))
		m.CPC = &cpc
	}

	if t.TotalConversions > 0 {
		m.ApprovedConversionRate = utils.RoundWithFourDecimalPlaces(
			float64(t.ApprovedConversions) / float64(t.TotalConversions),
		)
	}

	if t.ApprovedConversions > 0 {
		cpa := utils.RoundWithFourDecimalPlaces(t.Spend / float64(t.ApprovedConversions))
		m.CPA = &cpa
	}

	return m
}
