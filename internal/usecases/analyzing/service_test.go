package analyzing

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/campaign-analytics-api/infrastructure/repository/mocks"
	"github.com/vfg2006/campaign-analytics-api/internal/config"
	"github.com/vfg2006/campaign-analytics-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func testConfig() *config.Config {
	return &config.Config{
		Analysis: config.Analysis{
			ConversionValue: 100.0,
		},
	}
}

func TestGetOverallMetrics(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRecordRepo := mocks.NewMockAdRecordRepository(ctrl)

	mockRecordRepo.EXPECT().
		GetOverallTotals().
		Return(&domain.Totals{
			Spend:               1000.0,
			Impressions:         500000,
			Clicks:              1200,
			TotalConversions:    60,
			ApprovedConversions: 30,
		}, nil)

	service := NewService(testConfig(), mockRecordRepo)

	overall, err := service.GetOverallMetrics()
	require.NoError(t, err)

	assert.Equal(t, 3000.0, overall.Metrics.Revenue)
	assert.Equal(t, 2000.0, overall.Metrics.Profit)
	assert.Equal(t, 2.0, overall.Metrics.ROI)
	assert.Equal(t, 3.0, overall.Metrics.ROAS)
}

func TestGetCampaignMetricsComputesSharesAndTiers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRecordRepo := mocks.NewMockAdRecordRepository(ctrl)

	mockRecordRepo.EXPECT().
		GetTotalsGroupedBy(domain.ScopeCampaign).
		Return([]*domain.GroupTotals{
			{
				Key: "916",
				Totals: domain.Totals{
					Spend:               100.0,
					Impressions:         10000,
					Clicks:              100,
					TotalConversions:    10,
					ApprovedConversions: 6,
				},
			},
			{
				Key: "936",
				Totals: domain.Totals{
					Spend:               300.0,
					Impressions:         30000,
					Clicks:              200,
					TotalConversions:    8,
					ApprovedConversions: 2,
				},
			},
		}, nil)

	service := NewService(testConfig(), mockRecordRepo)

	groups, err := service.GetCampaignMetrics()
	require.NoError(t, err)
	require.Len(t, groups, 2)

	first, second := groups[0], groups[1]

	// Campanha 916: receita 600, ROAS 6 -> Highly Profitable
	assert.Equal(t, "916", first.Key)
	assert.Equal(t, 600.0, first.Metrics.Revenue)
	assert.Equal(t, domain.TierHighlyProfitable, first.Tier)
	assert.Equal(t, 0.25, first.SpendShare)
	assert.Equal(t, 0.75, first.ConversionShare)
	assert.Equal(t, 3.0, first.EfficiencyScore)

	// Campanha 936: receita 200, ROAS 0.6667 -> Loss Making
	assert.Equal(t, "936", second.Key)
	assert.Equal(t, domain.TierLossMaking, second.Tier)
	assert.Equal(t, 0.75, second.SpendShare)
	assert.Equal(t, 0.25, second.ConversionShare)
}

func TestGetCampaignMetricsByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRecordRepo := mocks.NewMockAdRecordRepository(ctrl)

	mockRecordRepo.EXPECT().
		GetTotalsGroupedBy(domain.ScopeCampaign).
		Return([]*domain.GroupTotals{
			{Key: "916", Totals: domain.Totals{Spend: 10}},
			{Key: "936", Totals: domain.Totals{Spend: 20}},
		}, nil).
		Times(2)

	service := NewService(testConfig(), mockRecordRepo)

	group, err := service.GetCampaignMetricsByID("936")
	require.NoError(t, err)
	assert.Equal(t, "936", group.Key)

	_, err = service.GetCampaignMetricsByID("999")
	assert.ErrorIs(t, err, ErrCampaignNotFound)
}

func TestGetMetricsByDimensionValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRecordRepo := mocks.NewMockAdRecordRepository(ctrl)
	service := NewService(testConfig(), mockRecordRepo)

	_, err := service.GetMetricsByDimension("country")
	assert.ErrorIs(t, err, ErrUnknownDimension)

	_, err = service.GetTimeMetrics("weekly")
	assert.ErrorIs(t, err, ErrUnknownDimension)
}

func TestGetScopeUsesSnapshotCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRecordRepo := mocks.NewMockAdRecordRepository(ctrl)
	mockSnapshotRepo := mocks.NewMockAnalysisSnapshotRepository(ctrl)

	cached := &domain.AnalysisSnapshot{
		Scope: domain.ScopeGender,
		Groups: []*domain.GroupMetrics{
			{Key: "M", Metrics: &domain.KPIMetrics{ROI: 1.5}},
		},
	}

	// Snapshot presente: o banco de registros não é consultado
	mockSnapshotRepo.EXPECT().
		GetByScope(domain.ScopeGender).
		Return(cached, nil)

	service := NewService(testConfig(), mockRecordRepo)
	cachedService := service.(*Service).WithCache(mockSnapshotRepo)

	groups, err := cachedService.GetMetricsByDimension("gender")
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, "M", groups[0].Key)
	assert.Equal(t, 1.5, groups[0].Metrics.ROI)
}

func TestGetScopeRecomputesOnCacheMiss(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRecordRepo := mocks.NewMockAdRecordRepository(ctrl)
	mockSnapshotRepo := mocks.NewMockAnalysisSnapshotRepository(ctrl)

	mockSnapshotRepo.EXPECT().
		GetByScope(domain.ScopeAge).
		Return(nil, nil)

	mockRecordRepo.EXPECT().
		GetTotalsGroupedBy(domain.ScopeAge).
		Return([]*domain.GroupTotals{
			{Key: "30-34", Totals: domain.Totals{Spend: 50, ApprovedConversions: 1}},
		}, nil)

	// Resultado recalculado é salvo como snapshot
	mockSnapshotRepo.EXPECT().
		SaveOrUpdate(gomock.Any()).
		DoAndReturn(func(snapshot *domain.AnalysisSnapshot) error {
			assert.Equal(t, domain.ScopeAge, snapshot.Scope)
			assert.Len(t, snapshot.Groups, 1)
			return nil
		})

	service := NewService(testConfig(), mockRecordRepo)
	cachedService := service.(*Service).WithCache(mockSnapshotRepo)

	groups, err := cachedService.GetMetricsByDimension("age")
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, "30-34", groups[0].Key)
}

func TestRecomputeScopePersistsSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRecordRepo := mocks.NewMockAdRecordRepository(ctrl)
	mockSnapshotRepo := mocks.NewMockAnalysisSnapshotRepository(ctrl)

	mockRecordRepo.EXPECT().
		GetTotalsGroupedBy(domain.ScopeSegment).
		Return([]*domain.GroupTotals{
			{Key: "M_30-34", Totals: domain.Totals{Spend: 10}},
		}, nil)

	mockSnapshotRepo.EXPECT().
		SaveOrUpdate(gomock.Any()).
		Return(nil)

	service := NewService(testConfig(), mockRecordRepo)
	cachedService := service.(*Service).WithCache(mockSnapshotRepo)

	err := cachedService.RecomputeScope(domain.ScopeSegment)
	require.NoError(t, err)
}

func TestRecomputeScopePropagatesRepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRecordRepo := mocks.NewMockAdRecordRepository(ctrl)

	repoErr := errors.New("conexão perdida")
	mockRecordRepo.EXPECT().
		GetOverallTotals().
		Return(nil, repoErr)

	service := NewService(testConfig(), mockRecordRepo)

	err := service.RecomputeScope(domain.ScopeOverall)
	assert.ErrorIs(t, err, repoErr)
}

func TestAllScopesCoversEveryDimension(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRecordRepo := mocks.NewMockAdRecordRepository(ctrl)
	service := NewService(testConfig(), mockRecordRepo)

	scopes := service.AllScopes()

	assert.Contains(t, scopes, domain.ScopeOverall)
	assert.Contains(t, scopes, domain.ScopeCampaign)
	assert.Contains(t, scopes, domain.ScopeGender)
	assert.Contains(t, scopes, domain.ScopeAge)
	assert.Contains(t, scopes, domain.ScopeSegment)
	assert.Contains(t, scopes, domain.ScopeMonthly)
	assert.Contains(t, scopes, domain.ScopeDayOfWeek)
}
