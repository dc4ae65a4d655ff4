package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/campaign-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-analytics-api/internal/domain"
)

const (
	datasetImportsTable = "dataset_imports"
)

type DatasetImportRepository interface {
	Create(datasetImport *domain.DatasetImport) error
	GetByID(id string) (*domain.DatasetImport, error)
	GetByChecksum(checksum string) (*domain.DatasetImport, error)
	List() ([]*domain.DatasetImport, error)
	Delete(id string) error
}

type datasetImportRepository struct {
	conn *postgres.Connection
}

func NewDatasetImportRepository(conn *postgres.Connection) DatasetImportRepository {
	return &datasetImportRepository{
		conn: conn,
	}
}

func (r *datasetImportRepository) Create(datasetImport *domain.DatasetImport) error {
	var qualityJSON []byte
	var err error

	if datasetImport.Quality != nil {
		qualityJSON, err = json.Marshal(datasetImport.Quality)
		if err != nil {
			return fmt.Errorf("erro ao serializar relatório de qualidade para JSON: %w", err)
		}
	}

	query, args, err := squirrel.StatementBuilder.
		Insert(datasetImportsTable).
		Columns("id", "filename", "checksum", "quality_report").
		Values(
			datasetImport.ID,
			datasetImport.Filename,
			datasetImport.Checksum,
			qualityJSON,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *datasetImportRepository) GetByID(id string) (*domain.DatasetImport, error) {
	return r.getByField("id", id)
}

func (r *datasetImportRepository) GetByChecksum(checksum string) (*domain.DatasetImport, error) {
	return r.getByField("checksum", checksum)
}

func (r *datasetImportRepository) getByField(field, value string) (*domain.DatasetImport, error) {
	query, args, err := squirrel.
		Select("id, filename, checksum, quality_report, imported_at").
		From(datasetImportsTable).
		Where(squirrel.Eq{field: value}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	datasetImport, err := scanDatasetImport(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear importação: %w", err)
	}

	return datasetImport, nil
}

func (r *datasetImportRepository) List() ([]*domain.DatasetImport, error) {
	query, args, err := squirrel.
		Select("id, filename, checksum, quality_report, imported_at").
		From(datasetImportsTable).
		OrderBy("imported_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	imports := make([]*domain.DatasetImport, 0)
	for rows.Next() {
		datasetImport, err := scanDatasetImport(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear importações: %w", err)
		}
		imports = append(imports, datasetImport)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return imports, nil
}

func (r *datasetImportRepository) Delete(id string) error {
	query, args, err := squirrel.
		Delete(datasetImportsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func scanDatasetImport(scan func(dest ...any) error) (*domain.DatasetImport, error) {
	datasetImport := &domain.DatasetImport{}
	var qualityJSON []byte

	err := scan(
		&datasetImport.ID,
		&datasetImport.Filename,
		&datasetImport.Checksum,
		&qualityJSON,
		&datasetImport.ImportedAt,
	)
	if err != nil {
		return nil, err
	}

	if qualityJSON != nil {
		quality := &domain.QualityReport{}
		if err := json.Unmarshal(qualityJSON, quality); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de quality_report: %w", err)
		}
		datasetImport.Quality = quality
	}

	return datasetImport, nil
}
