package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeKPIMetrics(t *testing.T) {
	tests := []struct {
		name            string
		totals          Totals
		conversionValue float64
		validate        func(t *testing.T, m *KPIMetrics)
	}{
		{
			name: "Campanha com dados completos - todas as métricas derivadas das somas",
			totals: Totals{
				Spend:               500.0,
				Impressions:         100000,
				Clicks:              250,
				TotalConversions:    20,
				ApprovedConversions: 10,
			},
			conversionValue: 100.0,
			validate: func(t *testing.T, m *KPIMetrics) {
				assert.Equal(t, 1000.0, m.Revenue)
				assert.Equal(t, 500.0, m.Profit)
				assert.Equal(t, 1.0, m.ROI)
				assert.Equal(t, 2.0, m.ROAS)
				assert.Equal(t, 0.0025, m.CTR)
				assert.Equal(t, 5.0, m.CPM)
				assert.Equal(t, 0.08, m.ConversionRate)
				assert.Equal(t, 0.5, m.ApprovedConversionRate)

				assert.NotNil(t, m.CPC)
				assert.Equal(t, 2.0, *m.CPC)

				assert.NotNil(t, m.CPA)
				assert.Equal(t, 50.0, *m.CPA)
			},
		},
		{
			name:            "Totais zerados - divisões protegidas, CPC e CPA nulos",
			totals:          Totals{},
			conversionValue: 100.0,
			validate: func(t *testing.T, m *KPIMetrics) {
				assert.Equal(t, 0.0, m.Revenue)
				assert.Equal(t, 0.0, m.Profit)
				assert.Equal(t, 0.0, m.ROI)
				assert.Equal(t, 0.0, m.ROAS)
				assert.Equal(t, 0.0, m.CTR)
				assert.Nil(t, m.CPC)
				assert.Nil(t, m.CPA)
			},
		},
		{
			name: "Gasto sem conversões aprovadas - CPA nulo, prejuízo total",
			totals: Totals{
				Spend:               300.0,
				Impressions:         50000,
				Clicks:              100,
				TotalConversions:    5,
				ApprovedConversions: 0,
			},
			conversionValue: 100.0,
			validate: func(t *testing.T, m *KPIMetrics) {
				assert.Equal(t, 0.0, m.Revenue)
				assert.Equal(t, -300.0, m.Profit)
				assert.Equal(t, -1.0, m.ROI)
				assert.Equal(t, 0.0, m.ROAS)
				assert.Nil(t, m.CPA)
				assert.Equal(t, 0.0, m.ApprovedConversionRate)
			},
		},
		{
			name: "Conversões sem gasto - receita sem ROI definido",
			totals: Totals{
				Spend:               0,
				Impressions:         1000,
				Clicks:              10,
				TotalConversions:    2,
				ApprovedConversions: 2,
			},
			conversionValue: 100.0,
			validate: func(t *testing.T, m *KPIMetrics) {
				assert.Equal(t, 200.0, m.Revenue)
				assert.Equal(t, 200.0, m.Profit)
				assert.Equal(t, 0.0, m.ROI)
				assert.Equal(t, 0.0, m.ROAS)

				assert.NotNil(t, m.CPA)
				assert.Equal(t, 0.0, *m.CPA)
			},
		},
		{
			name: "Valor de conversão customizado altera receita e ROI",
			totals: Totals{
				Spend:               100.0,
				Impressions:         10000,
				Clicks:              50,
				TotalConversions:    4,
				ApprovedConversions: 4,
			},
			conversionValue: 50.0,
			validate: func(t *testing.T, m *KPIMetrics) {
				assert.Equal(t, 200.0, m.Revenue)
				assert.Equal(t, 100.0, m.Profit)
				assert.Equal(t, 1.0, m.ROI)
				assert.Equal(t, 2.0, m.ROAS)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := ComputeKPIMetrics(tt.totals, tt.conversionValue)
			tt.validate(t, m)
		})
	}
}

func TestPerformanceTier(t *testing.T) {
	tests := []struct {
		name string
		roas float64
		want string
	}{
		{"ROAS negativo", -0.5, TierLossMaking},
		{"ROAS zero", 0, TierLossMaking},
		{"ROAS abaixo de 1", 0.99, TierLossMaking},
		{"ROAS exatamente 1", 1.0, TierBreakEven},
		{"ROAS entre 1 e 2", 1.5, TierBreakEven},
		{"ROAS exatamente 2", 2.0, TierProfitable},
		{"ROAS entre 2 e 5", 4.99, TierProfitable},
		{"ROAS exatamente 5", 5.0, TierHighlyProfitable},
		{"ROAS alto", 12.3, TierHighlyProfitable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PerformanceTier(tt.roas))
		})
	}
}

func TestComputeShares(t *testing.T) {
	groups := []*GroupMetrics{
		{
			Key: "916",
			Totals: Totals{
				Spend:               750.0,
				ApprovedConversions: 30,
			},
		},
		{
			Key: "936",
			Totals: Totals{
				Spend:               250.0,
				ApprovedConversions: 10,
			},
		},
	}

	ComputeShares(groups)

	assert.Equal(t, 0.75, groups[0].SpendShare)
	assert.Equal(t, 0.75, groups[0].ConversionShare)
	assert.Equal(t, 1.0, groups[0].EfficiencyScore)

	assert.Equal(t, 0.25, groups[1].SpendShare)
	assert.Equal(t, 0.25, groups[1].ConversionShare)
	assert.Equal(t, 1.0, groups[1].EfficiencyScore)
}

func TestComputeSharesEmptyTotals(t *testing.T) {
	groups := []*GroupMetrics{
		{Key: "916"},
		{Key: "936"},
	}

	ComputeShares(groups)

	// Sem gasto e sem conversões, as participações ficam zeradas
	for _, g := range groups {
		assert.Equal(t, 0.0, g.SpendShare)
		assert.Equal(t, 0.0, g.ConversionShare)
		assert.Equal(t, 0.0, g.EfficiencyScore)
	}
}

func TestTotalsAdd(t *testing.T) {
	totals := Totals{}

	totals.Add(&AdRecord{
		Spent:               10.5,
		Impressions:         1000,
		Clicks:              20,
		TotalConversions:    3,
		ApprovedConversions: 1,
	})
	totals.Add(&AdRecord{
		Spent:               4.5,
		Impressions:         500,
		Clicks:              5,
		TotalConversions:    1,
		ApprovedConversions: 1,
	})

	assert.Equal(t, 15.0, totals.Spend)
	assert.Equal(t, int64(1500), totals.Impressions)
	assert.Equal(t, int64(25), totals.Clicks)
	assert.Equal(t, int64(4), totals.TotalConversions)
	assert.Equal(t, int64(2), totals.ApprovedConversions)
}
