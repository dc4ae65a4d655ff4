package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/campaign-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-analytics-api/internal/domain"
)

const (
	adRecordsTable = "ad_records"

	// Tamanho do lote de inserção. O limite do Postgres é 65535 parâmetros
	// por statement; 500 linhas x 13 colunas fica bem abaixo disso.
	insertBatchSize = 500
)

type AdRecordRepository interface {
	BulkInsert(ctx context.Context, importID string, records []*domain.AdRecord) error
	DeleteByImportID(importID string) (int64, error)
	CountAll() (int64, error)
	GetOverallTotals() (*domain.Totals, error)
	GetTotalsGroupedBy(scope domain.MetricScope) ([]*domain.GroupTotals, error)
	GetAvailablePeriods() (*domain.AvailablePeriods, error)
}

type adRecordRepository struct {
	conn *postgres.Connection
}

func NewAdRecordRepository(conn *postgres.Connection) AdRecordRepository {
	return &adRecordRepository{
		conn: conn,
	}
}

// Expressões SQL de agrupamento por escopo de análise
var groupExpressions = map[domain.MetricScope]string{
	domain.ScopeCampaign:  "campaign_id",
	domain.ScopeGender:    "gender",
	domain.ScopeAge:       "age",
	domain.ScopeSegment:   "gender || '_' || age",
	domain.ScopeMonthly:   "to_char(reporting_start, 'MM-YYYY')",
	domain.ScopeDayOfWeek: "trim(to_char(reporting_start, 'Day'))",
}

// scopeNeedsDate indica os escopos que dependem da data de início e portanto
// precisam excluir linhas cuja data não pôde ser interpretada na limpeza
func scopeNeedsDate(scope domain.MetricScope) bool {
	return scope == domain.ScopeMonthly || scope == domain.ScopeDayOfWeek
}

func (r *adRecordRepository) BulkInsert(ctx context.Context, importID string, records []*domain.AdRecord) error {
	if len(records) == 0 {
		return nil
	}

	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for start := 0; start < len(records); start += insertBatchSize {
			end := start + insertBatchSize
			if end > len(records) {
				end = len(records)
			}

			builder := squirrel.StatementBuilder.
				Insert(adRecordsTable).
				Columns(
					"import_id", "ad_id", "campaign_id", "fb_campaign_id",
					"age", "gender", "interest",
					"impressions", "clicks", "spent",
					"total_conversion", "approved_conversion",
					"reporting_start", "reporting_end", "duration_days", "ctr",
				).
				PlaceholderFormat(squirrel.Dollar)

			for _, record := range records[start:end] {
				builder = builder.Values(
					importID,
					record.AdID,
					record.CampaignID,
					record.FBCampaignID,
					record.Age,
					record.Gender,
					record.Interest,
					record.Impressions,
					record.Clicks,
					record.Spent,
					record.TotalConversions,
					record.ApprovedConversions,
					nullableDate(record.ReportingStart),
					nullableDate(record.ReportingEnd),
					record.DurationDays,
					record.CTR,
				)
			}

			query, args, err := builder.ToSql()
			if err != nil {
				return fmt.Errorf("erro ao construir a query: %w", err)
			}

			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				if pqErr, ok := err.(*pq.Error); ok {
					return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
				}
				return fmt.Errorf("erro ao inserir lote de registros: %w", err)
			}
		}

		return nil
	})
}

func (r *adRecordRepository) DeleteByImportID(importID string) (int64, error) {
	query, args, err := squirrel.
		Delete(adRecordsTable).
		Where(squirrel.Eq{"import_id": importID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}

func (r *adRecordRepository) CountAll() (int64, error) {
	var count int64
	err := r.conn.QueryRow(fmt.Sprintf("SELECT COUNT(*) FROM %s", adRecordsTable)).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("erro ao contar registros: %w", err)
	}

	return count, nil
}

func (r *adRecordRepository) GetOverallTotals() (*domain.Totals, error) {
	query, args, err := squirrel.
		Select(
			"COALESCE(SUM(spent), 0)",
			"COALESCE(SUM(impressions), 0)",
			"COALESCE(SUM(clicks), 0)",
			"COALESCE(SUM(total_conversion), 0)",
			"COALESCE(SUM(approved_conversion), 0)",
		).
		From(adRecordsTable).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	totals := &domain.Totals{}
	err = r.conn.QueryRow(query, args...).Scan(
		&totals.Spend,
		&totals.Impressions,
		&totals.Clicks,
		&totals.TotalConversions,
		&totals.ApprovedConversions,
	)
	if err != nil {
		return nil, fmt.Errorf("erro ao escanear totais: %w", err)
	}

	return totals, nil
}

func (r *adRecordRepository) GetTotalsGroupedBy(scope domain.MetricScope) ([]*domain.GroupTotals, error) {
	expression, ok := groupExpressions[scope]
	if !ok {
		return nil, fmt.Errorf("escopo de agrupamento desconhecido: %s", scope)
	}

	builder := squirrel.
		Select(
			fmt.Sprintf("%s AS group_key", expression),
			"COALESCE(SUM(spent), 0)",
			"COALESCE(SUM(impressions), 0)",
			"COALESCE(SUM(clicks), 0)",
			"COALESCE(SUM(total_conversion), 0)",
			"COALESCE(SUM(approved_conversion), 0)",
		).
		From(adRecordsTable).
		GroupBy(expression).
		OrderBy("group_key ASC").
		PlaceholderFormat(squirrel.Dollar)

	if scopeNeedsDate(scope) {
		builder = builder.Where("reporting_start IS NOT NULL")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	groups := make([]*domain.GroupTotals, 0)
	for rows.Next() {
		group := &domain.GroupTotals{}
		if err := rows.Scan(
			&group.Key,
			&group.Totals.Spend,
			&group.Totals.Impressions,
			&group.Totals.Clicks,
			&group.Totals.TotalConversions,
			&group.Totals.ApprovedConversions,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear totais agrupados: %w", err)
		}
		groups = append(groups, group)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return groups, nil
}

func (r *adRecordRepository) GetAvailablePeriods() (*domain.AvailablePeriods, error) {
	query := fmt.Sprintf(`
		SELECT DISTINCT to_char(reporting_start, 'MM-YYYY') AS period
		FROM %s
		WHERE reporting_start IS NOT NULL
		ORDER BY period ASC
	`, adRecordsTable)

	rows, err := r.conn.Query(query)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	periods := &domain.AvailablePeriods{}
	yearsSeen := make(map[string]bool)
	monthsSeen := make(map[string]bool)

	for rows.Next() {
		var period string
		if err := rows.Scan(&period); err != nil {
			return nil, fmt.Errorf("erro ao escanear período: %w", err)
		}

		periods.Periods = append(periods.Periods, period)

		// period está no formato mm-yyyy
		if len(period) == 7 {
			month, year := period[:2], period[3:]
			if !monthsSeen[month] {
				monthsSeen[month] = true
				periods.Months = append(periods.Months, month)
			}
			if !yearsSeen[year] {
				yearsSeen[year] = true
				periods.Years = append(periods.Years, year)
			}
		}
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return periods, nil
}

// nullableDate converte datas opcionais para o formato aceito pelo banco
func nullableDate(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return t.Format(time.DateOnly)
}
