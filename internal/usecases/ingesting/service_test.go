package ingesting

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	datasetmocks "github.com/vfg2006/campaign-analytics-api/infrastructure/dataset/mocks"
	"github.com/vfg2006/campaign-analytics-api/infrastructure/repository/mocks"
	"github.com/vfg2006/campaign-analytics-api/internal/config"
	"github.com/vfg2006/campaign-analytics-api/internal/domain"
	"go.uber.org/mock/gomock"
)

// writeTempCSV cria um arquivo real para o teste, já que a importação
// verifica a existência do arquivo no disco
func writeTempCSV(t *testing.T, filename string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), filename)
	err := os.WriteFile(path, []byte("ad_id,campaign_id\n708746,916\n"), 0o600)
	require.NoError(t, err)

	return path
}

func TestImportFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLoader := datasetmocks.NewMockLoader(ctrl)
	mockRecordRepo := mocks.NewMockAdRecordRepository(ctrl)
	mockImportRepo := mocks.NewMockDatasetImportRepository(ctrl)

	path := writeTempCSV(t, "data.csv")
	records := []*domain.AdRecord{{AdID: "708746", CampaignID: "916"}}
	quality := &domain.QualityReport{RowsRead: 2, RowsKept: 1, DuplicatesRemoved: 1}

	mockLoader.EXPECT().
		Resolve("data.csv").
		Return(path, nil)

	mockLoader.EXPECT().
		Load(path).
		Return(records, quality, "checksum-abc", nil)

	// Conteúdo inédito: nenhuma importação com o mesmo checksum
	mockImportRepo.EXPECT().
		GetByChecksum("checksum-abc").
		Return(nil, nil)

	mockRecordRepo.EXPECT().
		BulkInsert(gomock.Any(), gomock.Any(), records).
		Return(nil)

	mockImportRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(datasetImport *domain.DatasetImport) error {
			assert.NotEmpty(t, datasetImport.ID)
			assert.Equal(t, "data.csv", datasetImport.Filename)
			assert.Equal(t, "checksum-abc", datasetImport.Checksum)
			assert.Equal(t, quality, datasetImport.Quality)
			return nil
		})

	mockRecordRepo.EXPECT().
		CountAll().
		Return(int64(1), nil)

	service := NewService(&config.Config{}, mockLoader, mockRecordRepo, mockImportRepo)

	datasetImport, err := service.ImportFile(context.Background(), "data.csv")
	require.NoError(t, err)
	assert.Equal(t, "data.csv", datasetImport.Filename)
}

func TestImportFileAlreadyLoaded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLoader := datasetmocks.NewMockLoader(ctrl)
	mockRecordRepo := mocks.NewMockAdRecordRepository(ctrl)
	mockImportRepo := mocks.NewMockDatasetImportRepository(ctrl)

	path := writeTempCSV(t, "data.csv")

	mockLoader.EXPECT().
		Resolve("data.csv").
		Return(path, nil)

	mockLoader.EXPECT().
		Load(path).
		Return([]*domain.AdRecord{}, &domain.QualityReport{}, "checksum-abc", nil)

	// Mesmo checksum já importado: a importação é rejeitada sem tocar no banco
	mockImportRepo.EXPECT().
		GetByChecksum("checksum-abc").
		Return(&domain.DatasetImport{ID: "abc123", Checksum: "checksum-abc"}, nil)

	service := NewService(&config.Config{}, mockLoader, mockRecordRepo, mockImportRepo)

	_, err := service.ImportFile(context.Background(), "data.csv")
	assert.ErrorIs(t, err, ErrDatasetAlreadyLoaded)
}

func TestImportFileNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLoader := datasetmocks.NewMockLoader(ctrl)
	mockRecordRepo := mocks.NewMockAdRecordRepository(ctrl)
	mockImportRepo := mocks.NewMockDatasetImportRepository(ctrl)

	mockLoader.EXPECT().
		Resolve("missing.csv").
		Return(filepath.Join(t.TempDir(), "missing.csv"), nil)

	service := NewService(&config.Config{}, mockLoader, mockRecordRepo, mockImportRepo)

	_, err := service.ImportFile(context.Background(), "missing.csv")
	assert.ErrorIs(t, err, ErrDatasetNotFound)
}

func TestImportFileUndoesRecordsWhenAuditFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLoader := datasetmocks.NewMockLoader(ctrl)
	mockRecordRepo := mocks.NewMockAdRecordRepository(ctrl)
	mockImportRepo := mocks.NewMockDatasetImportRepository(ctrl)

	path := writeTempCSV(t, "data.csv")
	records := []*domain.AdRecord{{AdID: "708746", CampaignID: "916"}}

	mockLoader.EXPECT().
		Resolve("data.csv").
		Return(path, nil)

	mockLoader.EXPECT().
		Load(path).
		Return(records, &domain.QualityReport{RowsKept: 1}, "checksum-abc", nil)

	mockImportRepo.EXPECT().
		GetByChecksum("checksum-abc").
		Return(nil, nil)

	var insertedImportID string
	mockRecordRepo.EXPECT().
		BulkInsert(gomock.Any(), gomock.Any(), records).
		DoAndReturn(func(_ context.Context, importID string, _ []*domain.AdRecord) error {
			insertedImportID = importID
			return nil
		})

	mockImportRepo.EXPECT().
		Create(gomock.Any()).
		Return(assert.AnError)

	// Falha no registro de auditoria remove os registros já inseridos
	mockRecordRepo.EXPECT().
		DeleteByImportID(gomock.Any()).
		DoAndReturn(func(importID string) (int64, error) {
			assert.Equal(t, insertedImportID, importID)
			return 1, nil
		})

	service := NewService(&config.Config{}, mockLoader, mockRecordRepo, mockImportRepo)

	_, err := service.ImportFile(context.Background(), "data.csv")
	assert.Error(t, err)
}

func TestDeleteImport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLoader := datasetmocks.NewMockLoader(ctrl)
	mockRecordRepo := mocks.NewMockAdRecordRepository(ctrl)
	mockImportRepo := mocks.NewMockDatasetImportRepository(ctrl)

	mockImportRepo.EXPECT().
		GetByID("abc123").
		Return(&domain.DatasetImport{ID: "abc123", Filename: "data.csv"}, nil)

	mockImportRepo.EXPECT().
		Delete("abc123").
		Return(nil)

	service := NewService(&config.Config{}, mockLoader, mockRecordRepo, mockImportRepo)

	err := service.DeleteImport("abc123")
	require.NoError(t, err)
}

func TestDeleteImportNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLoader := datasetmocks.NewMockLoader(ctrl)
	mockRecordRepo := mocks.NewMockAdRecordRepository(ctrl)
	mockImportRepo := mocks.NewMockDatasetImportRepository(ctrl)

	mockImportRepo.EXPECT().
		GetByID("nope").
		Return(nil, nil)

	service := NewService(&config.Config{}, mockLoader, mockRecordRepo, mockImportRepo)

	err := service.DeleteImport("nope")
	assert.ErrorIs(t, err, ErrDatasetNotFound)
}

func TestImportNewFilesSkipsAlreadyLoaded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLoader := datasetmocks.NewMockLoader(ctrl)
	mockRecordRepo := mocks.NewMockAdRecordRepository(ctrl)
	mockImportRepo := mocks.NewMockDatasetImportRepository(ctrl)

	newPath := writeTempCSV(t, "new.csv")
	oldPath := writeTempCSV(t, "old.csv")

	mockLoader.EXPECT().
		ListFiles().
		Return([]string{"new.csv", "old.csv"}, nil)

	// new.csv é inédito
	mockLoader.EXPECT().Resolve("new.csv").Return(newPath, nil)
	mockLoader.EXPECT().
		Load(newPath).
		Return([]*domain.AdRecord{{AdID: "1"}}, &domain.QualityReport{RowsKept: 1}, "checksum-new", nil)
	mockImportRepo.EXPECT().GetByChecksum("checksum-new").Return(nil, nil)
	mockRecordRepo.EXPECT().BulkInsert(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	mockImportRepo.EXPECT().Create(gomock.Any()).Return(nil)
	mockRecordRepo.EXPECT().CountAll().Return(int64(1), nil)

	// old.csv já foi importado antes
	mockLoader.EXPECT().Resolve("old.csv").Return(oldPath, nil)
	mockLoader.EXPECT().
		Load(oldPath).
		Return([]*domain.AdRecord{}, &domain.QualityReport{}, "checksum-old", nil)
	mockImportRepo.EXPECT().
		GetByChecksum("checksum-old").
		Return(&domain.DatasetImport{ID: "old123"}, nil)

	service := NewService(&config.Config{}, mockLoader, mockRecordRepo, mockImportRepo)

	imports, err := service.ImportNewFiles(context.Background())
	require.NoError(t, err)

	// Apenas o arquivo novo entra no resultado
	require.Len(t, imports, 1)
	assert.Equal(t, "new.csv", imports[0].Filename)
}
