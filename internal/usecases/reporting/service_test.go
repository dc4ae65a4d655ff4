package reporting

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/campaign-analytics-api/internal/domain"
	"github.com/vfg2006/campaign-analytics-api/internal/usecases/analyzing/mocks"
	"go.uber.org/mock/gomock"
)

func floatPtr(f float64) *float64 {
	return &f
}

func campaignGroup(key string, roi float64, cpa *float64) *domain.GroupMetrics {
	return &domain.GroupMetrics{
		Key: key,
		Metrics: &domain.KPIMetrics{
			ROI: roi,
			CPA: cpa,
		},
	}
}

func TestTopCampaignsByROI(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAnalyzer := mocks.NewMockAnalyzer(ctrl)

	mockAnalyzer.EXPECT().
		GetCampaignMetrics().
		Return([]*domain.GroupMetrics{
			campaignGroup("916", 0.5, nil),
			campaignGroup("936", 2.1, nil),
			campaignGroup("1178", 1.3, nil),
		}, nil)

	service := NewService(mockAnalyzer)

	report, err := service.TopCampaignsByROI(2)
	require.NoError(t, err)

	assert.Equal(t, "top_campaigns_by_roi", report.Name)
	assert.Equal(t, "roi", report.Metric)

	// Ordenado por ROI decrescente e limitado a duas campanhas
	require.Len(t, report.Points, 2)
	assert.Equal(t, "936", report.Points[0].Label)
	assert.Equal(t, 2.1, report.Points[0].Value)
	assert.Equal(t, "1178", report.Points[1].Label)
	assert.Equal(t, 1.3, report.Points[1].Value)
}

func TestTopCampaignsByROIUsesDefaultLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAnalyzer := mocks.NewMockAnalyzer(ctrl)

	groups := make([]*domain.GroupMetrics, 0, 15)
	for i := 0; i < 15; i++ {
		groups = append(groups, campaignGroup(string(rune('a'+i)), float64(i), nil))
	}

	mockAnalyzer.EXPECT().
		GetCampaignMetrics().
		Return(groups, nil)

	service := NewService(mockAnalyzer)

	report, err := service.TopCampaignsByROI(0)
	require.NoError(t, err)
	assert.Len(t, report.Points, DefaultTopLimit)
}

func TestTopCampaignsByLowestCPA(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAnalyzer := mocks.NewMockAnalyzer(ctrl)

	mockAnalyzer.EXPECT().
		GetCampaignMetrics().
		Return([]*domain.GroupMetrics{
			campaignGroup("916", 1.0, floatPtr(80.0)),
			// Campanha sem conversões aprovadas não tem CPA e fica fora
			campaignGroup("936", 1.0, nil),
			campaignGroup("1178", 1.0, floatPtr(25.0)),
		}, nil)

	service := NewService(mockAnalyzer)

	report, err := service.TopCampaignsByLowestCPA(10)
	require.NoError(t, err)

	assert.Equal(t, "top_campaigns_by_cpa", report.Name)
	assert.Equal(t, "cpa", report.Metric)

	require.Len(t, report.Points, 2)
	assert.Equal(t, "1178", report.Points[0].Label)
	assert.Equal(t, 25.0, report.Points[0].Value)
	assert.Equal(t, "916", report.Points[1].Label)
	assert.Equal(t, 80.0, report.Points[1].Value)
}

func TestROIByDimension(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAnalyzer := mocks.NewMockAnalyzer(ctrl)

	mockAnalyzer.EXPECT().
		GetMetricsByDimension("gender").
		Return([]*domain.GroupMetrics{
			campaignGroup("M", 1.2, nil),
			campaignGroup("F", 0.8, nil),
		}, nil)

	service := NewService(mockAnalyzer)

	report, err := service.ROIByDimension("gender")
	require.NoError(t, err)

	assert.Equal(t, "roi_by_gender", report.Name)
	require.Len(t, report.Points, 2)
	assert.Equal(t, "M", report.Points[0].Label)
	assert.Equal(t, "F", report.Points[1].Label)
}

func TestMonthlyROITrendSortsChronologically(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAnalyzer := mocks.NewMockAnalyzer(ctrl)

	// Períodos fora de ordem, incluindo virada de ano
	mockAnalyzer.EXPECT().
		GetTimeMetrics("monthly").
		Return([]*domain.GroupMetrics{
			campaignGroup("01-2017", 1.1, nil),
			campaignGroup("12-2016", 0.9, nil),
			campaignGroup("08-2017", 1.5, nil),
		}, nil)

	service := NewService(mockAnalyzer)

	report, err := service.MonthlyROITrend()
	require.NoError(t, err)

	assert.Equal(t, "monthly_roi_trend", report.Name)
	require.Len(t, report.Points, 3)
	assert.Equal(t, "12-2016", report.Points[0].Label)
	assert.Equal(t, "01-2017", report.Points[1].Label)
	assert.Equal(t, "08-2017", report.Points[2].Label)
}

func TestDayOfWeekROIFillsFixedAxis(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAnalyzer := mocks.NewMockAnalyzer(ctrl)

	// Apenas dois dias com dados
	mockAnalyzer.EXPECT().
		GetTimeMetrics("day_of_week").
		Return([]*domain.GroupMetrics{
			campaignGroup("Wednesday", 1.7, nil),
			campaignGroup("Sunday", 0.4, nil),
		}, nil)

	service := NewService(mockAnalyzer)

	report, err := service.DayOfWeekROI()
	require.NoError(t, err)

	require.Len(t, report.Points, 7)

	labels := make([]string, 0, 7)
	for _, p := range report.Points {
		labels = append(labels, p.Label)
	}
	assert.Equal(t, []string{
		"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
	}, labels)

	// Dias sem dados ficam zerados
	assert.Equal(t, 0.0, report.Points[0].Value)
	assert.Equal(t, 1.7, report.Points[2].Value)
	assert.Equal(t, 0.4, report.Points[6].Value)
}

func TestExportCSV(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAnalyzer := mocks.NewMockAnalyzer(ctrl)

	mockAnalyzer.EXPECT().
		GetCampaignMetrics().
		Return([]*domain.GroupMetrics{
			{
				Key: "916",
				Totals: domain.Totals{
					Spend:               100.5,
					Impressions:         10000,
					Clicks:              50,
					TotalConversions:    5,
					ApprovedConversions: 2,
				},
				Metrics: &domain.KPIMetrics{
					Revenue:        200,
					Profit:         99.5,
					ROI:            0.99,
					ROAS:           1.99,
					CTR:            0.005,
					ConversionRate: 0.1,
					CPA:            floatPtr(50.25),
				},
				SpendShare:      1,
				ConversionShare: 1,
				EfficiencyScore: 1,
				Tier:            domain.TierBreakEven,
			},
		}, nil)

	service := NewService(mockAnalyzer)

	var buf bytes.Buffer
	err := service.ExportCSV("campaigns", &buf)
	require.NoError(t, err)

	lines := buf.String()
	assert.Contains(t, lines, "key,spend,impressions,clicks,total_conversion,approved_conversion")
	assert.Contains(t, lines, "916,100.5,10000,50,5,2,200,99.5,0.99,1.99,0.005,0.1,50.25,1,1,1,Break Even")
}

func TestExportCSVNilCPAEmptyColumn(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAnalyzer := mocks.NewMockAnalyzer(ctrl)

	mockAnalyzer.EXPECT().
		GetMetricsByDimension("gender").
		Return([]*domain.GroupMetrics{
			{
				Key:     "Unknown",
				Metrics: &domain.KPIMetrics{},
				Tier:    domain.TierLossMaking,
			},
		}, nil)

	service := NewService(mockAnalyzer)

	var buf bytes.Buffer
	err := service.ExportCSV("gender", &buf)
	require.NoError(t, err)

	// Coluna de CPA vazia quando não há conversões aprovadas
	assert.Contains(t, buf.String(), "Unknown,0,0,0,0,0,0,0,0,0,0,0,,0,0,0,Loss Making")
}

func TestExportCSVUnknownReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAnalyzer := mocks.NewMockAnalyzer(ctrl)
	service := NewService(mockAnalyzer)

	var buf bytes.Buffer
	err := service.ExportCSV("inexistente", &buf)

	assert.ErrorIs(t, err, ErrUnknownReport)
	assert.Zero(t, buf.Len())
}
