package analyzing

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-analytics-api/infrastructure/repository"
	"github.com/vfg2006/campaign-analytics-api/internal/config"
	"github.com/vfg2006/campaign-analytics-api/internal/domain"
)

var (
	// ErrUnknownDimension indica uma dimensão de agrupamento não suportada
	ErrUnknownDimension = errors.New("dimensão de agrupamento desconhecida")

	// ErrCampaignNotFound indica que a campanha não existe no dataset
	ErrCampaignNotFound = errors.New("campanha não encontrada")
)

// Dimensões demográficas aceitas em GetMetricsByDimension
var demographicScopes = map[string]domain.MetricScope{
	"gender":  domain.ScopeGender,
	"age":     domain.ScopeAge,
	"segment": domain.ScopeSegment,
}

// Granularidades aceitas em GetTimeMetrics
var timeScopes = map[string]domain.MetricScope{
	"monthly":     domain.ScopeMonthly,
	"day_of_week": domain.ScopeDayOfWeek,
}

// Chave do grupo único do escopo overall
const overallKey = "overall"

// Service implementa Analyzer e Recomputer sobre os registros limpos do banco
type Service struct {
	cfg          *config.Config
	recordRepo   repository.AdRecordRepository
	snapshotRepo repository.AnalysisSnapshotRepository
	useCache     bool
}

// NewService cria uma nova instância do serviço de análises
func NewService(
	cfg *config.Config,
	recordRepo repository.AdRecordRepository,
) CombinedAnalyzer {
	return &Service{
		cfg:        cfg,
		recordRepo: recordRepo,
		useCache:   false, // Inicialmente não usa cache
	}
}

// WithCache habilita o cache de snapshots de análise
func (s *Service) WithCache(snapshotRepo repository.AnalysisSnapshotRepository) *Service {
	s.snapshotRepo = snapshotRepo
	s.useCache = snapshotRepo != nil
	return s
}

// AllScopes lista os escopos de análise existentes
func (s *Service) AllScopes() []domain.MetricScope {
	return []domain.MetricScope{
		domain.ScopeOverall,
		domain.ScopeCampaign,
		domain.ScopeGender,
		domain.ScopeAge,
		domain.ScopeSegment,
		domain.ScopeMonthly,
		domain.ScopeDayOfWeek,
	}
}

func (s *Service) GetOverallMetrics() (*domain.OverallReport, error) {
	groups, err := s.getScope(domain.ScopeOverall)
	if err != nil {
		return nil, err
	}

	if len(groups) == 0 {
		return &domain.OverallReport{
			Metrics: domain.ComputeKPIMetrics(domain.Totals{}, s.cfg.Analysis.ConversionValue),
		}, nil
	}

	return &domain.OverallReport{
		Totals:  groups[0].Totals,
		Metrics: groups[0].Metrics,
	}, nil
}

func (s *Service) GetCampaignMetrics() ([]*domain.GroupMetrics, error) {
	return s.getScope(domain.ScopeCampaign)
}

func (s *Service) GetCampaignMetricsByID(campaignID string) (*domain.GroupMetrics, error) {
	groups, err := s.getScope(domain.ScopeCampaign)
	if err != nil {
		return nil, err
	}

	for _, group := range groups {
		if group.Key == campaignID {
			return group, nil
		}
	}

	return nil, ErrCampaignNotFound
}

func (s *Service) GetMetricsByDimension(dimension string) ([]*domain.GroupMetrics, error) {
	scope, ok := demographicScopes[dimension]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownDimension, dimension)
	}

	return s.getScope(scope)
}

func (s *Service) GetTimeMetrics(granularity string) ([]*domain.GroupMetrics, error) {
	scope, ok := timeScopes[granularity]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownDimension, granularity)
	}

	return s.getScope(scope)
}

func (s *Service) GetAvailablePeriods() (*domain.AvailablePeriods, error) {
	return s.recordRepo.GetAvailablePeriods()
}

// RecomputeScope recalcula e persiste o snapshot de um escopo
func (s *Service) RecomputeScope(scope domain.MetricScope) error {
	groups, err := s.computeScope(scope)
	if err != nil {
		return err
	}

	if !s.useCache {
		return nil
	}

	snapshot := &domain.AnalysisSnapshot{
		Scope:  scope,
		Groups: groups,
	}

	if err := s.snapshotRepo.SaveOrUpdate(snapshot); err != nil {
		return fmt.Errorf("erro ao salvar snapshot do escopo %s: %w", scope, err)
	}

	logrus.WithFields(logrus.Fields{
		"scope":  scope,
		"groups": len(groups),
	}).Debug("Snapshot de análise recalculado")

	return nil
}

// getScope retorna os grupos de um escopo, usando o cache quando habilitado.
// Snapshot ausente dispara o recálculo e o salvamento do resultado.
func (s *Service) getScope(scope domain.MetricScope) ([]*domain.GroupMetrics, error) {
	if s.useCache {
		snapshot, err := s.snapshotRepo.GetByScope(scope)
		if err != nil {
			logrus.WithError(err).WithField("scope", scope).Warn("Erro ao buscar snapshot, recalculando")
		} else if snapshot != nil {
			return snapshot.Groups, nil
		}

		groups, err := s.computeScope(scope)
		if err != nil {
			return nil, err
		}

		if err := s.snapshotRepo.SaveOrUpdate(&domain.AnalysisSnapshot{
			Scope:  scope,
			Groups: groups,
		}); err != nil {
			logrus.WithError(err).WithField("scope", scope).Warn("Erro ao salvar snapshot de análise")
		}

		return groups, nil
	}

	return s.computeScope(scope)
}

// computeScope agrega os registros limpos e deriva as métricas do escopo.
// As métricas são derivadas das somas dos grupos, não da média das linhas.
func (s *Service) computeScope(scope domain.MetricScope) ([]*domain.GroupMetrics, error) {
	conversionValue := s.cfg.Analysis.ConversionValue

	if scope == domain.ScopeOverall {
		totals, err := s.recordRepo.GetOverallTotals()
		if err != nil {
			return nil, err
		}

		metrics := domain.ComputeKPIMetrics(*totals, conversionValue)
		group := &domain.GroupMetrics{
			Key:     overallKey,
			Totals:  *totals,
			Metrics: metrics,
			Tier:    domain.PerformanceTier(metrics.ROAS),
		}

		return []*domain.GroupMetrics{group}, nil
	}

	groupTotals, err := s.recordRepo.GetTotalsGroupedBy(scope)
	if err != nil {
		return nil, err
	}

	groups := make([]*domain.GroupMetrics, 0, len(groupTotals))
	for _, gt := range groupTotals {
		metrics := domain.ComputeKPIMetrics(gt.Totals, conversionValue)
		groups = append(groups, &domain.GroupMetrics{
			Key:     gt.Key,
			Totals:  gt.Totals,
			Metrics: metrics,
			Tier:    domain.PerformanceTier(metrics.ROAS),
		})
	}

	domain.ComputeShares(groups)

	return groups, nil
}
