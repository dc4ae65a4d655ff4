package dataset

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRow() RawRow {
	return RawRow{
		"ad_id":               "708746",
		"campaign_id":         "916",
		"fb_campaign_id":      "103916",
		"age":                 "30-34",
		"gender":              "M",
		"interest":            "15",
		"impressions":         "7350",
		"clicks":              "1",
		"spent":               "1.43",
		"total_conversion":    "2",
		"approved_conversion": "1",
		"reporting_start":     "2017-08-17",
		"reporting_end":       "2017-08-19",
	}
}

func TestCleanerValidRow(t *testing.T) {
	cleaner := NewCleaner()

	records, quality := cleaner.Clean([]RawRow{validRow()})

	require.Len(t, records, 1)
	record := records[0]

	assert.Equal(t, "708746", record.AdID)
	assert.Equal(t, "916", record.CampaignID)
	assert.Equal(t, "30-34", record.Age)
	assert.Equal(t, "M", record.Gender)
	assert.Equal(t, 15, record.Interest)
	assert.Equal(t, int64(7350), record.Impressions)
	assert.Equal(t, int64(1), record.Clicks)
	assert.Equal(t, 1.43, record.Spent)
	assert.Equal(t, int64(2), record.TotalConversions)
	assert.Equal(t, int64(1), record.ApprovedConversions)

	require.NotNil(t, record.ReportingStart)
	assert.Equal(t, time.Date(2017, 8, 17, 0, 0, 0, 0, time.UTC), *record.ReportingStart)

	require.NotNil(t, record.DurationDays)
	assert.Equal(t, 2, *record.DurationDays)

	// CTR da linha: 1/7350 arredondado em quatro casas
	assert.Equal(t, 0.0001, record.CTR)

	assert.Equal(t, 1, quality.RowsRead)
	assert.Equal(t, 1, quality.RowsKept)
	assert.Equal(t, 0, quality.DuplicatesRemoved)
}

func TestCleanerNormalizesCategoricals(t *testing.T) {
	cleaner := NewCleaner()

	row := validRow()
	row["gender"] = "  m "
	row["age"] = " 45-49 "

	records, _ := cleaner.Clean([]RawRow{row})

	require.Len(t, records, 1)
	assert.Equal(t, "M", records[0].Gender)
	assert.Equal(t, "45-49", records[0].Age)
}

func TestCleanerFillsMissingCategoricals(t *testing.T) {
	cleaner := NewCleaner()

	row := validRow()
	row["gender"] = ""
	row["age"] = "   "

	records, quality := cleaner.Clean([]RawRow{row})

	require.Len(t, records, 1)
	assert.Equal(t, "Unknown", records[0].Gender)
	assert.Equal(t, "Unknown", records[0].Age)
	assert.Equal(t, 2, quality.MissingFilled)
}

func TestCleanerNumericRules(t *testing.T) {
	tests := []struct {
		name           string
		field          string
		value          string
		wantClicks     int64
		wantMissing    int
		wantNegClamped int
	}{
		{"Ausente vira zero", "clicks", "", 0, 1, 0},
		{"Ilegível vira zero", "clicks", "abc", 0, 1, 0},
		{"Negativo é zerado", "clicks", "-5", 0, 0, 1},
		{"Decimal é truncado para inteiro", "clicks", "3.7", 3, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cleaner := NewCleaner()

			row := validRow()
			row[tt.field] = tt.value

			records, quality := cleaner.Clean([]RawRow{row})

			require.Len(t, records, 1)
			assert.Equal(t, tt.wantClicks, records[0].Clicks)
			assert.Equal(t, tt.wantMissing, quality.MissingFilled)
			assert.Equal(t, tt.wantNegClamped, quality.NegativesClamped)
		})
	}
}

func TestCleanerClampsNegativeSpend(t *testing.T) {
	cleaner := NewCleaner()

	row := validRow()
	row["spent"] = "-10.50"

	records, quality := cleaner.Clean([]RawRow{row})

	require.Len(t, records, 1)
	assert.Equal(t, 0.0, records[0].Spent)
	assert.Equal(t, 1, quality.NegativesClamped)
}

func TestCleanerInvalidDates(t *testing.T) {
	cleaner := NewCleaner()

	row := validRow()
	row["reporting_start"] = "17/99/2017"
	row["reporting_end"] = ""

	records, quality := cleaner.Clean([]RawRow{row})

	require.Len(t, records, 1)
	assert.Nil(t, records[0].ReportingStart)
	assert.Nil(t, records[0].ReportingEnd)
	assert.Nil(t, records[0].DurationDays)
	assert.Equal(t, 2, quality.InvalidDates)

	// Linha permanece no dataset mesmo sem datas
	assert.Equal(t, 1, quality.RowsKept)
}

func TestCleanerAcceptsBrazilianDateFormat(t *testing.T) {
	cleaner := NewCleaner()

	row := validRow()
	row["reporting_start"] = "17/08/2017"

	records, quality := cleaner.Clean([]RawRow{row})

	require.Len(t, records, 1)
	require.NotNil(t, records[0].ReportingStart)
	assert.Equal(t, time.Date(2017, 8, 17, 0, 0, 0, 0, time.UTC), *records[0].ReportingStart)
	assert.Equal(t, 0, quality.InvalidDates)
}

func TestCleanerCountsNegativeDurations(t *testing.T) {
	cleaner := NewCleaner()

	row := validRow()
	row["reporting_start"] = "2017-08-19"
	row["reporting_end"] = "2017-08-17"

	records, quality := cleaner.Clean([]RawRow{row})

	require.Len(t, records, 1)
	require.NotNil(t, records[0].DurationDays)
	assert.Equal(t, -2, *records[0].DurationDays)
	assert.Equal(t, 1, quality.NegativeDurations)
}

func TestCleanerRemovesDuplicates(t *testing.T) {
	cleaner := NewCleaner()

	rows := []RawRow{validRow(), validRow(), validRow()}

	// Linha com mesmo ad_id mas métricas diferentes não é duplicada
	distinct := validRow()
	distinct["clicks"] = "2"
	rows = append(rows, distinct)

	records, quality := cleaner.Clean(rows)

	assert.Len(t, records, 2)
	assert.Equal(t, 4, quality.RowsRead)
	assert.Equal(t, 2, quality.RowsKept)
	assert.Equal(t, 2, quality.DuplicatesRemoved)
}
