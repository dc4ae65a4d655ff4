package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/campaign-analytics-api/internal/domain"
	analyzingmocks "github.com/vfg2006/campaign-analytics-api/internal/usecases/analyzing/mocks"
	"go.uber.org/mock/gomock"
)

func TestAnalysisSyncService_processScopes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRecomputer := analyzingmocks.NewMockRecomputer(ctrl)

	service := &AnalysisSyncService{
		config: AnalysisSyncConfig{
			MaxConcurrentJobs: 2,
		},
		recomputer: mockRecomputer,
	}

	scopes := []domain.MetricScope{
		domain.ScopeOverall,
		domain.ScopeCampaign,
		domain.ScopeGender,
		domain.ScopeMonthly,
	}

	// Cada escopo é recalculado exatamente uma vez
	for _, scope := range scopes {
		mockRecomputer.EXPECT().
			RecomputeScope(scope).
			Return(nil)
	}

	service.processScopes(scopes)
}

func TestAnalysisSyncService_processScopesContinuesOnError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRecomputer := analyzingmocks.NewMockRecomputer(ctrl)

	service := &AnalysisSyncService{
		config: AnalysisSyncConfig{
			MaxConcurrentJobs: 1,
		},
		recomputer: mockRecomputer,
	}

	// Erro em um escopo não interrompe os demais
	mockRecomputer.EXPECT().
		RecomputeScope(domain.ScopeOverall).
		Return(assert.AnError)
	mockRecomputer.EXPECT().
		RecomputeScope(domain.ScopeCampaign).
		Return(nil)

	service.processScopes([]domain.MetricScope{
		domain.ScopeOverall,
		domain.ScopeCampaign,
	})
}

func TestAnalysisSyncService_syncAllScopes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRecomputer := analyzingmocks.NewMockRecomputer(ctrl)

	service := &AnalysisSyncService{
		config: AnalysisSyncConfig{
			CronSchedule:      "0 3 * * *",
			MaxConcurrentJobs: 2,
			SyncEnabled:       true,
		},
		recomputer: mockRecomputer,
	}

	mockRecomputer.EXPECT().
		AllScopes().
		Return([]domain.MetricScope{domain.ScopeOverall, domain.ScopeGender})

	mockRecomputer.EXPECT().
		RecomputeScope(domain.ScopeOverall).
		Return(nil)
	mockRecomputer.EXPECT().
		RecomputeScope(domain.ScopeGender).
		Return(nil)

	service.syncAllScopes()

	status := service.GetStatus()
	assert.Equal(t, false, status["sync_running"])
	assert.Equal(t, "0 3 * * *", status["sync_cron"])
	assert.Equal(t, true, status["sync_enabled"])
	assert.Equal(t, 2, status["sync_max_concurrent"])
	assert.False(t, service.lastSyncStartedAt.IsZero())
	assert.False(t, service.lastSyncCompletedAt.IsZero())
}

func TestAnalysisSyncService_syncAllScopesSkipsWhenRunning(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRecomputer := analyzingmocks.NewMockRecomputer(ctrl)

	service := &AnalysisSyncService{
		config: AnalysisSyncConfig{
			MaxConcurrentJobs: 1,
		},
		recomputer:  mockRecomputer,
		syncRunning: true,
	}

	// Nenhuma chamada ao recomputer é esperada
	service.syncAllScopes()
}
