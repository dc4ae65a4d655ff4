package ingesting

import (
	"context"
	"errors"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-analytics-api/infrastructure/dataset"
	"github.com/vfg2006/campaign-analytics-api/infrastructure/repository"
	"github.com/vfg2006/campaign-analytics-api/internal/config"
	"github.com/vfg2006/campaign-analytics-api/internal/domain"
	"github.com/vfg2006/campaign-analytics-api/pkg/utils"
)

var (
	// ErrDatasetNotFound indica que o arquivo não existe no diretório de dados
	ErrDatasetNotFound = errors.New("arquivo de dataset não encontrado")

	// ErrDatasetAlreadyLoaded indica que o mesmo conteúdo já foi importado
	ErrDatasetAlreadyLoaded = errors.New("dataset já importado anteriormente")
)

// Ingester importa arquivos CSV de campanhas para o banco
type Ingester interface {
	// ImportFile importa um arquivo do diretório de dados
	ImportFile(ctx context.Context, filename string) (*domain.DatasetImport, error)

	// ImportNewFiles importa os arquivos do diretório de dados que ainda não
	// foram processados
	ImportNewFiles(ctx context.Context) ([]*domain.DatasetImport, error)

	// ListImports lista o histórico de importações
	ListImports() ([]*domain.DatasetImport, error)

	// GetImport busca uma importação pelo ID
	GetImport(id string) (*domain.DatasetImport, error)

	// DeleteImport remove uma importação e seus registros do banco
	DeleteImport(id string) error
}

type Service struct {
	cfg        *config.Config
	loader     dataset.Loader
	recordRepo repository.AdRecordRepository
	importRepo repository.DatasetImportRepository
}

func NewService(
	cfg *config.Config,
	loader dataset.Loader,
	recordRepo repository.AdRecordRepository,
	importRepo repository.DatasetImportRepository,
) Ingester {
	return &Service{
		cfg:        cfg,
		loader:     loader,
		recordRepo: recordRepo,
		importRepo: importRepo,
	}
}

func (s *Service) ImportFile(ctx context.Context, filename string) (*domain.DatasetImport, error) {
	path, err := s.loader.Resolve(filename)
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(path); err != nil {
		return nil, ErrDatasetNotFound
	}

	records, quality, checksum, err := s.loader.Load(path)
	if err != nil {
		return nil, err
	}

	// Importações são idempotentes: o mesmo conteúdo não entra duas vezes
	existing, err := s.importRepo.GetByChecksum(checksum)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		logrus.WithFields(logrus.Fields{
			"filename":  filename,
			"import_id": existing.ID,
		}).Info("Dataset com mesmo checksum já importado, ignorando")
		return nil, ErrDatasetAlreadyLoaded
	}

	importID, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	if err := s.recordRepo.BulkInsert(ctx, importID, records); err != nil {
		return nil, err
	}

	datasetImport := &domain.DatasetImport{
		ID:       importID,
		Filename: filename,
		Checksum: checksum,
		Quality:  quality,
	}

	if err := s.importRepo.Create(datasetImport); err != nil {
		// Sem o registro de auditoria a importação não é válida; desfazer
		if _, cleanupErr := s.recordRepo.DeleteByImportID(importID); cleanupErr != nil {
			logrus.WithError(cleanupErr).Error("Erro ao remover registros de importação incompleta")
		}
		return nil, err
	}

	totalRecords, err := s.recordRepo.CountAll()
	if err != nil {
		logrus.WithError(err).Warn("Erro ao contar registros após importação")
	}

	logrus.WithFields(logrus.Fields{
		"import_id":     importID,
		"filename":      filename,
		"rows_kept":     quality.RowsKept,
		"total_records": totalRecords,
	}).Info("Importação de dataset concluída")

	return datasetImport, nil
}

func (s *Service) ImportNewFiles(ctx context.Context) ([]*domain.DatasetImport, error) {
	files, err := s.loader.ListFiles()
	if err != nil {
		return nil, err
	}

	imports := make([]*domain.DatasetImport, 0)
	for _, filename := range files {
		datasetImport, err := s.ImportFile(ctx, filename)
		if err != nil {
			if errors.Is(err, ErrDatasetAlreadyLoaded) {
				continue
			}
			logrus.WithError(err).WithField("filename", filename).Error("Erro ao importar arquivo")
			continue
		}

		imports = append(imports, datasetImport)
	}

	return imports, nil
}

func (s *Service) ListImports() ([]*domain.DatasetImport, error) {
	return s.importRepo.List()
}

func (s *Service) GetImport(id string) (*domain.DatasetImport, error) {
	return s.importRepo.GetByID(id)
}

func (s *Service) DeleteImport(id string) error {
	datasetImport, err := s.importRepo.GetByID(id)
	if err != nil {
		return err
	}
	if datasetImport == nil {
		return ErrDatasetNotFound
	}

	// Os ad_records da importação caem em cascata pela chave estrangeira
	if err := s.importRepo.Delete(id); err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"import_id": id,
		"filename":  datasetImport.Filename,
	}).Info("Importação de dataset removida")

	return nil
}
