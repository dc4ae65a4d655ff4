package domain

// ReportPoint é um ponto de uma série pronta para gráfico
type ReportPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// Report é uma série ordenada pronta para renderização no dashboard.
// Metric indica qual métrica os valores representam (roi, cpa, roas...).
type Report struct {
	Name   string        `json:"name"`
	Metric string        `json:"metric"`
	Points []ReportPoint `json:"points"`
}

// OverallReport é o resumo geral de desempenho do dataset
type OverallReport struct {
	Totals  Totals      `json:"totals"`
	Metrics *KPIMetrics `json:"metrics"`
}
