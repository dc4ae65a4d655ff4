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
	analysisSnapshotsTable = "analysis_snapshots"
)

type AnalysisSnapshotRepository interface {
	GetByScope(scope domain.MetricScope) (*domain.AnalysisSnapshot, error)
	SaveOrUpdate(snapshot *domain.AnalysisSnapshot) error
}

type analysisSnapshotRepository struct {
	conn *postgres.Connection
}

func NewAnalysisSnapshotRepository(conn *postgres.Connection) AnalysisSnapshotRepository {
	return &analysisSnapshotRepository{
		conn: conn,
	}
}

func (r *analysisSnapshotRepository) GetByScope(scope domain.MetricScope) (*domain.AnalysisSnapshot, error) {
	query, args, err := squirrel.
		Select("id, scope, groups, created_at, updated_at").
		From(analysisSnapshotsTable).
		Where(squirrel.Eq{"scope": string(scope)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	snapshot := &domain.AnalysisSnapshot{}
	var groupsJSON []byte
	var scopeStr string

	row := r.conn.QueryRow(query, args...)
	err = row.Scan(
		&snapshot.ID,
		&scopeStr,
		&groupsJSON,
		&snapshot.CreatedAt,
		&snapshot.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear snapshot: %w", err)
	}

	snapshot.Scope = domain.MetricScope(scopeStr)

	if groupsJSON != nil {
		if err := json.Unmarshal(groupsJSON, &snapshot.Groups); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de groups: %w", err)
		}
	}

	return snapshot, nil
}

func (r *analysisSnapshotRepository) SaveOrUpdate(snapshot *domain.AnalysisSnapshot) error {
	groupsJSON, err := json.Marshal(snapshot.Groups)
	if err != nil {
		return fmt.Errorf("erro ao serializar groups para JSON: %w", err)
	}

	query := squirrel.StatementBuilder.
		Insert(analysisSnapshotsTable).
		Columns("scope", "groups").
		Values(
			string(snapshot.Scope),
			groupsJSON,
		).
		Suffix(`
			ON CONFLICT (scope) DO UPDATE SET
				groups = EXCLUDED.groups,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}
