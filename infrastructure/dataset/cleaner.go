package dataset

import (
	"strconv"
	"strings"
	"time"

	"github.com/vfg2006/campaign-analytics-api/internal/domain"
	"github.com/vfg2006/campaign-analytics-api/pkg/utils"
)

// Formatos de data aceitos nas colunas reporting_start/reporting_end
var dateLayouts = []string{
	"2006-01-02",
	"02/01/2006",
}

// Cleaner aplica as regras de limpeza sobre as linhas brutas do dataset
type Cleaner struct{}

func NewCleaner() *Cleaner {
	return &Cleaner{}
}

// Clean valida e normaliza as linhas brutas, removendo duplicadas e
// preenchendo o relatório de qualidade da importação.
//
// Regras:
//   - numéricos ausentes ou ilegíveis viram 0; negativos são zerados
//   - gender é normalizado para maiúsculas; categóricos ausentes viram "Unknown"
//   - datas ilegíveis viram nulas e a linha permanece
//   - linhas integralmente duplicadas são descartadas
func (c *Cleaner) Clean(rows []RawRow) ([]*domain.AdRecord, *domain.QualityReport) {
	quality := &domain.QualityReport{RowsRead: len(rows)}

	records := make([]*domain.AdRecord, 0, len(rows))
	seen := make(map[string]bool, len(rows))

	for _, row := range rows {
		record := c.cleanRow(row, quality)

		key := record.DedupKey()
		if seen[key] {
			quality.DuplicatesRemoved++
			continue
		}
		seen[key] = true

		records = append(records, record)
	}

	quality.RowsKept = len(records)

	return records, quality
}

func (c *Cleaner) cleanRow(row RawRow, quality *domain.QualityReport) *domain.AdRecord {
	record := &domain.AdRecord{
		AdID:         strings.TrimSpace(row["ad_id"]),
		CampaignID:   strings.TrimSpace(row["campaign_id"]),
		FBCampaignID: strings.TrimSpace(row["fb_campaign_id"]),
	}

	record.Gender = c.cleanCategorical(row["gender"], true, quality)
	record.Age = c.cleanCategorical(row["age"], false, quality)

	record.Interest = int(c.cleanInteger(row["interest"], quality))
	record.Impressions = c.cleanInteger(row["impressions"], quality)
	record.Clicks = c.cleanInteger(row["clicks"], quality)
	record.Spent = c.cleanFloat(row["spent"], quality)
	record.TotalConversions = c.cleanInteger(row["total_conversion"], quality)
	record.ApprovedConversions = c.cleanInteger(row["approved_conversion"], quality)

	record.ReportingStart = c.cleanDate(row["reporting_start"], quality)
	record.ReportingEnd = c.cleanDate(row["reporting_end"], quality)

	if record.ReportingStart != nil && record.ReportingEnd != nil {
		days := int(record.ReportingEnd.Sub(*record.ReportingStart).Hours() / 24)
		record.DurationDays = &days

		if days < 0 {
			quality.NegativeDurations++
		}
	}

	// CTR da linha, com guarda de divisão por zero
	if record.Impressions > 0 {
		record.CTR = utils.RoundWithFourDecimalPlaces(
			float64(record.Clicks) / float64(record.Impressions),
		)
	}

	return record
}

func (c *Cleaner) cleanCategorical(value string, uppercase bool, quality *domain.QualityReport) string {
	value = strings.TrimSpace(value)
	if value == "" {
		quality.MissingFilled++
		return "Unknown"
	}

	if uppercase {
		value = strings.ToUpper(value)
	}

	return value
}

func (c *Cleaner) cleanInteger(value string, quality *domain.QualityReport) int64 {
	value = strings.TrimSpace(value)
	if value == "" {
		quality.MissingFilled++
		return 0
	}

	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		quality.MissingFilled++
		return 0
	}

	if parsed < 0 {
		quality.NegativesClamped++
		return 0
	}

	return int64(parsed)
}

func (c *Cleaner) cleanFloat(value string, quality *domain.QualityReport) float64 {
	value = strings.TrimSpace(value)
	if value == "" {
		quality.MissingFilled++
		return 0
	}

	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		quality.MissingFilled++
		return 0
	}

	if parsed < 0 {
		quality.NegativesClamped++
		return 0
	}

	return parsed
}

func (c *Cleaner) cleanDate(value string, quality *domain.QualityReport) *time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		quality.InvalidDates++
		return nil
	}

	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return &parsed
		}
	}

	quality.InvalidDates++
	return nil
}
