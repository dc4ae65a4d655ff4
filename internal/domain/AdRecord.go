package domain

import (
	"fmt"
	"time"
)

// AdRecord representa uma linha limpa do dataset de campanhas armazenada no banco
type AdRecord struct {
	ID                  int64      `json:"id"`
	ImportID            string     `json:"import_id"`
	AdID                string     `json:"ad_id"`
	CampaignID          string     `json:"campaign_id"`
	FBCampaignID        string     `json:"fb_campaign_id"`
	Age                 string     `json:"age"`
	Gender              string     `json:"gender"`
	Interest            int        `json:"interest"`
	Impressions         int64      `json:"impressions"`
	Clicks              int64      `json:"clicks"`
	Spent               float64    `json:"spent"`
	TotalConversions    int64      `json:"total_conversion"`
	ApprovedConversions int64      `json:"approved_conversion"`
	ReportingStart      *time.Time `json:"reporting_start"`
	ReportingEnd        *time.Time `json:"reporting_end"`
	DurationDays        *int       `json:"campaign_duration_days"`
	CTR                 float64    `json:"ctr"`
	CreatedAt           time.Time  `json:"created_at"`
}

// Segment retorna o segmento demográfico no formato GENERO_faixa (ex: "M_30-34")
func (r *AdRecord) Segment() string {
	return fmt.Sprintf("%s_%s", r.Gender, r.Age)
}

// Month retorna o período mensal da linha no formato mm-yyyy, ou vazio quando
// a data de início não pôde ser interpretada na limpeza
func (r *AdRecord) Month() string {
	if r.ReportingStart == nil {
		return ""
	}
	return r.ReportingStart.Format("01-2006")
}

// DayOfWeek retorna o dia da semana da data de início (Monday..Sunday)
func (r *AdRecord) DayOfWeek() string {
	if r.ReportingStart == nil {
		return ""
	}
	return r.ReportingStart.Weekday().String()
}

// DedupKey identifica linhas duplicadas: todas as colunas originais iguais
func (r *AdRecord) DedupKey() string {
	start, end := "", ""
	if r.ReportingStart != nil {
		start = r.ReportingStart.Format(time.DateOnly)
	}
	if r.ReportingEnd != nil {
		end = r.ReportingEnd.Format(time.DateOnly)
	}

	return fmt.Sprintf("%s|%s|%s|%s|%s|%d|%d|%d|%.4f|%d|%d|%s|%s",
		r.AdID, r.CampaignID, r.FBCampaignID, r.Age, r.Gender, r.Interest,
		r.Impressions, r.Clicks, r.Spent, r.TotalConversions, r.ApprovedConversions,
		start, end,
	)
}
