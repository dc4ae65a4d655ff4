package domain

import (
	"time"
)

// QualityReport resume o resultado da limpeza de um arquivo importado
type QualityReport struct {
	RowsRead          int `json:"rows_read"`
	RowsKept          int `json:"rows_kept"`
	DuplicatesRemoved int `json:"duplicates_removed"`
	NegativesClamped  int `json:"negatives_clamped"`
	MissingFilled     int `json:"missing_filled"`
	InvalidDates      int `json:"invalid_dates"`
	NegativeDurations int `json:"negative_durations"`
}

// DatasetImport representa uma importação de dataset registrada no banco
type DatasetImport struct {
	ID         string         `json:"id"`
	Filename   string         `json:"filename"`
	Checksum   string         `json:"checksum"`
	Quality    *QualityReport `json:"quality_report"`
	ImportedAt time.Time      `json:"imported_at"`
}

// AvailablePeriods representa os períodos mensais presentes no dataset
type AvailablePeriods struct {
	Periods []string `json:"periods"` // Lista de períodos no formato mm-yyyy
	Years   []string `json:"years"`   // Lista de anos únicos disponíveis
	Months  []string `json:"months"`  // Lista de meses únicos disponíveis
}
