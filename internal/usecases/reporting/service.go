package reporting

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"time"

	"github.com/vfg2006/campaign-analytics-api/internal/domain"
	"github.com/vfg2006/campaign-analytics-api/internal/usecases/analyzing"
)

// ErrUnknownReport indica um nome de relatório não suportado
var ErrUnknownReport = errors.New("relatório desconhecido")

// DefaultTopLimit é o tamanho padrão dos rankings de campanhas
const DefaultTopLimit = 10

// Eixo fixo do relatório por dia da semana
var weekdayOrder = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// Reporter monta séries prontas para gráficos a partir das análises
type Reporter interface {
	OverallSummary() (*domain.OverallReport, error)
	TopCampaignsByROI(limit int) (*domain.Report, error)
	TopCampaignsByLowestCPA(limit int) (*domain.Report, error)
	ROIByDimension(dimension string) (*domain.Report, error)
	MonthlyROITrend() (*domain.Report, error)
	DayOfWeekROI() (*domain.Report, error)

	// ExportCSV escreve a tabela completa de métricas de um relatório
	ExportCSV(name string, w io.Writer) error
}

type Service struct {
	analyzer analyzing.Analyzer
}

func NewService(analyzer analyzing.Analyzer) Reporter {
	return &Service{
		analyzer: analyzer,
	}
}

func (s *Service) OverallSummary() (*domain.OverallReport, error) {
	return s.analyzer.GetOverallMetrics()
}

// TopCampaignsByROI retorna as campanhas de maior retorno sobre investimento
func (s *Service) TopCampaignsByROI(limit int) (*domain.Report, error) {
	if limit <= 0 {
		limit = DefaultTopLimit
	}

	groups, err := s.analyzer.GetCampaignMetrics()
	if err != nil {
		return nil, err
	}

	sorted := make([]*domain.GroupMetrics, len(groups))
	copy(sorted, groups)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Metrics.ROI > sorted[j].Metrics.ROI
	})

	if len(sorted) > limit {
		sorted = sorted[:limit]
	}

	report := &domain.Report{
		Name:   "top_campaigns_by_roi",
		Metric: "roi",
	}
	for _, group := range sorted {
		report.Points = append(report.Points, domain.ReportPoint{
			Label: group.Key,
			Value: group.Metrics.ROI,
		})
	}

	return report, nil
}

// TopCampaignsByLowestCPA retorna as campanhas de menor custo por aquisição.
// Campanhas sem conversões aprovadas não têm CPA e ficam fora do ranking.
func (s *Service) TopCampaignsByLowestCPA(limit int) (*domain.Report, error) {
	if limit <= 0 {
		limit = DefaultTopLimit
	}

	groups, err := s.analyzer.GetCampaignMetrics()
	if err != nil {
		return nil, err
	}

	withCPA := make([]*domain.GroupMetrics, 0, len(groups))
	for _, group := range groups {
		if group.Metrics.CPA != nil {
			withCPA = append(withCPA, group)
		}
	}

	sort.SliceStable(withCPA, func(i, j int) bool {
		return *withCPA[i].Metrics.CPA < *withCPA[j].Metrics.CPA
	})

	if len(withCPA) > limit {
		withCPA = withCPA[:limit]
	}

	report := &domain.Report{
		Name:   "top_campaigns_by_cpa",
		Metric: "cpa",
	}
	for _, group := range withCPA {
		report.Points = append(report.Points, domain.ReportPoint{
			Label: group.Key,
			Value: *group.Metrics.CPA,
		})
	}

	return report, nil
}

func (s *Service) ROIByDimension(dimension string) (*domain.Report, error) {
	groups, err := s.analyzer.GetMetricsByDimension(dimension)
	if err != nil {
		return nil, err
	}

	report := &domain.Report{
		Name:   fmt.Sprintf("roi_by_%s", dimension),
		Metric: "roi",
	}
	for _, group := range groups {
		report.Points = append(report.Points, domain.ReportPoint{
			Label: group.Key,
			Value: group.Metrics.ROI,
		})
	}

	return report, nil
}

// MonthlyROITrend retorna a evolução mensal do ROI em ordem cronológica
func (s *Service) MonthlyROITrend() (*domain.Report, error) {
	groups, err := s.analyzer.GetTimeMetrics("monthly")
	if err != nil {
		return nil, err
	}

	sorted := make([]*domain.GroupMetrics, len(groups))
	copy(sorted, groups)
	sort.SliceStable(sorted, func(i, j int) bool {
		return monthSortKey(sorted[i].Key).Before(monthSortKey(sorted[j].Key))
	})

	report := &domain.Report{
		Name:   "monthly_roi_trend",
		Metric: "roi",
	}
	for _, group := range sorted {
		report.Points = append(report.Points, domain.ReportPoint{
			Label: group.Key,
			Value: group.Metrics.ROI,
		})
	}

	return report, nil
}

// DayOfWeekROI retorna o ROI por dia da semana no eixo fixo Monday..Sunday,
// preenchendo com zero os dias sem dados
func (s *Service) DayOfWeekROI() (*domain.Report, error) {
	groups, err := s.analyzer.GetTimeMetrics("day_of_week")
	if err != nil {
		return nil, err
	}

	byDay := make(map[string]*domain.GroupMetrics, len(groups))
	for _, group := range groups {
		byDay[group.Key] = group
	}

	report := &domain.Report{
		Name:   "roi_by_day_of_week",
		Metric: "roi",
	}
	for _, day := range weekdayOrder {
		value := 0.0
		if group, ok := byDay[day]; ok {
			value = group.Metrics.ROI
		}
		report.Points = append(report.Points, domain.ReportPoint{
			Label: day,
			Value: value,
		})
	}

	return report, nil
}

// Relatórios exportáveis e seus provedores de grupos
func (s *Service) exportableGroups(name string) ([]*domain.GroupMetrics, error) {
	switch name {
	case "campaigns":
		return s.analyzer.GetCampaignMetrics()
	case "gender", "age", "segment":
		return s.analyzer.GetMetricsByDimension(name)
	case "monthly":
		return s.analyzer.GetTimeMetrics("monthly")
	case "day_of_week":
		return s.analyzer.GetTimeMetrics("day_of_week")
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownReport, name)
	}
}

// ExportCSV escreve a tabela completa de métricas de um relatório
func (s *Service) ExportCSV(name string, w io.Writer) error {
	groups, err := s.exportableGroups(name)
	if err != nil {
		return err
	}

	writer := csv.NewWriter(w)
	defer writer.Flush()

	header := []string{
		"key", "spend", "impressions", "clicks", "total_conversion", "approved_conversion",
		"revenue", "profit", "roi", "roas", "ctr", "conversion_rate", "cpa",
		"spend_share", "conversion_share", "efficiency_score", "performance_tier",
	}
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, group := range groups {
		cpa := ""
		if group.Metrics.CPA != nil {
			cpa = formatFloat(*group.Metrics.CPA)
		}

		row := []string{
			group.Key,
			formatFloat(group.Totals.Spend),
			strconv.FormatInt(group.Totals.Impressions, 10),
			strconv.FormatInt(group.Totals.Clicks, 10),
			strconv.FormatInt(group.Totals.TotalConversions, 10),
			strconv.FormatInt(group.Totals.ApprovedConversions, 10),
			formatFloat(group.Metrics.Revenue),
			formatFloat(group.Metrics.Profit),
			formatFloat(group.Metrics.ROI),
			formatFloat(group.Metrics.ROAS),
			formatFloat(group.Metrics.CTR),
			formatFloat(group.Metrics.ConversionRate),
			cpa,
			formatFloat(group.SpendShare),
			formatFloat(group.ConversionShare),
			formatFloat(group.EfficiencyScore),
			group.Tier,
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	return writer.Error()
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// monthSortKey converte um período mm-yyyy para data, para ordenação cronológica
func monthSortKey(period string) time.Time {
	parsed, err := time.Parse("01-2006", period)
	if err != nil {
		return time.Time{}
	}
	return parsed
}
