package scheduler

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/campaign-analytics-api/internal/domain"
	ingestingmocks "github.com/vfg2006/campaign-analytics-api/internal/usecases/ingesting/mocks"
	"go.uber.org/mock/gomock"
)

func TestDatasetImportSyncService_importNewFiles(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIngester := ingestingmocks.NewMockIngester(ctrl)

	service := &DatasetImportSyncService{
		config: DatasetImportSyncConfig{
			CronSchedule: "*/30 * * * *",
			SyncEnabled:  true,
		},
		ingester: mockIngester,
	}

	mockIngester.EXPECT().
		ImportNewFiles(gomock.Any()).
		Return([]*domain.DatasetImport{
			{ID: "abc123", Filename: "data.csv"},
		}, nil)

	service.importNewFiles(context.Background())

	status := service.GetStatus()
	assert.Equal(t, false, status["sync_running"])
	assert.Equal(t, "*/30 * * * *", status["sync_cron"])
	assert.False(t, service.lastSyncCompletedAt.IsZero())
}

func TestDatasetImportSyncService_importNewFilesNoNewData(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIngester := ingestingmocks.NewMockIngester(ctrl)

	service := &DatasetImportSyncService{
		ingester: mockIngester,
	}

	// Sem arquivos novos, o recálculo das análises não é disparado
	mockIngester.EXPECT().
		ImportNewFiles(gomock.Any()).
		Return([]*domain.DatasetImport{}, nil)

	service.importNewFiles(context.Background())

	assert.False(t, service.lastSyncCompletedAt.IsZero())
}

func TestDatasetImportSyncService_importNewFilesError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIngester := ingestingmocks.NewMockIngester(ctrl)

	service := &DatasetImportSyncService{
		ingester: mockIngester,
	}

	mockIngester.EXPECT().
		ImportNewFiles(gomock.Any()).
		Return(nil, assert.AnError)

	service.importNewFiles(context.Background())

	// Importação com erro não marca a conclusão
	assert.True(t, service.lastSyncCompletedAt.IsZero())
	assert.False(t, service.syncRunning)
}

func TestDatasetImportSyncService_importNewFilesSkipsWhenRunning(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIngester := ingestingmocks.NewMockIngester(ctrl)

	service := &DatasetImportSyncService{
		ingester:    mockIngester,
		syncRunning: true,
	}

	// Nenhuma chamada ao ingester é esperada
	service.importNewFiles(context.Background())
}
