package insighting

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketing-dashboard-api/infrastructure/integrator/analytics"
	"github.com/vfg2006/marketing-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/marketing-dashboard-api/internal/config"
	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
	"github.com/vfg2006/marketing-dashboard-api/pkg/utils"
)

// Service implementa Insighter, com suporte opcional a cache de snapshots
type Service struct {
	cfg                *config.Config
	analyticsService   analytics.AnalyticsIntegrator
	snapshotRepository repository.MetricSnapshotRepository
	useCache           bool
}

// NewService cria uma nova instância do serviço de insights
func NewService(
	cfg *config.Config,
	analyticsService analytics.AnalyticsIntegrator,
) Insighter {
	return &Service{
		cfg:              cfg,
		analyticsService: analyticsService,
		useCache:         false, // Inicialmente não usa cache
	}
}

// WithCache habilita o uso do cache de snapshots mensais
func (s *Service) WithCache(snapshotRepo repository.MetricSnapshotRepository) *Service {
	s.snapshotRepository = snapshotRepo
	s.useCache = snapshotRepo != nil
	return s
}

// GetAudiencePerformance obtém os segmentos de audiência com seus registros mensais
func (s *Service) GetAudiencePerformance(referenceYear int) ([]*domain.EntityInsight, error) {
	return s.getPerformance(domain.EntityTypeAudience, referenceYear, s.analyticsService.GetAudiencePerformance)
}

// GetChannelPerformance obtém os canais de marketing com seus registros mensais
func (s *Service) GetChannelPerformance(referenceYear int) ([]*domain.EntityInsight, error) {
	return s.getPerformance(domain.EntityTypeChannel, referenceYear, s.analyticsService.GetChannelPerformance)
}

// getPerformance serve os registros do cache de snapshots quando habilitado e
// populado; caso contrário faz uma única busca no backend de analytics e
// alimenta o cache com o resultado (melhor esforço).
func (s *Service) getPerformance(
	entityType domain.EntityType,
	referenceYear int,
	fetch func() ([]*domain.EntityInsight, error),
) ([]*domain.EntityInsight, error) {
	if s.useCache {
		cached, err := s.getPerformanceFromCache(entityType, referenceYear)
		if err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"entity_type": entityType,
				"year":        referenceYear,
			}).Warn("insights: erro ao consultar o cache de snapshots, buscando do backend")
		} else if len(cached) > 0 {
			return cached, nil
		}
	}

	entities, err := fetch()
	if err != nil {
		logrus.WithError(err).WithField("entity_type", entityType).Error("insights: erro ao buscar performance do backend de analytics")
		return nil, err
	}

	if s.useCache {
		s.saveSnapshots(entityType, referenceYear, entities)
	}

	return entities, nil
}

// getPerformanceFromCache reconstrói as entidades a partir dos snapshots
// mensais do ano de referência
func (s *Service) getPerformanceFromCache(entityType domain.EntityType, referenceYear int) ([]*domain.EntityInsight, error) {
	byID := make(map[string]*domain.EntityInsight)
	order := make([]string, 0)

	for month := 1; month <= 12; month++ {
		period := utils.Period(referenceYear, month)

		snapshots, err := s.snapshotRepository.GetByTypeAndPeriod(entityType, period)
		if err != nil {
			return nil, fmt.Errorf("erro ao buscar snapshots do período %s: %w", period, err)
		}

		for _, snapshot := range snapshots {
			entity, ok := byID[snapshot.EntityID]
			if !ok {
				entity = &domain.EntityInsight{
					ID:             snapshot.EntityID,
					Name:           snapshot.EntityName,
					MonthlyRecords: make([]*domain.MonthlyMetrics, 0, 12),
				}
				byID[snapshot.EntityID] = entity
				order = append(order, snapshot.EntityID)
			}

			if snapshot.Metrics != nil {
				record := *snapshot.Metrics
				record.Month = month
				entity.MonthlyRecords = append(entity.MonthlyRecords, &record)
			}
		}
	}

	entities := make([]*domain.EntityInsight, 0, len(order))
	for _, id := range order {
		entities = append(entities, byID[id])
	}

	return entities, nil
}

// saveSnapshots persiste no cache os registros vindos do backend.
// Falha de escrita é logada e não interrompe a resposta.
func (s *Service) saveSnapshots(entityType domain.EntityType, referenceYear int, entities []*domain.EntityInsight) {
	saved := 0

	for _, entity := range entities {
		if !entity.IsValid() {
			continue
		}

		for _, record := range entity.MonthlyRecords {
			if !record.HasValidMonth() {
				continue
			}

			snapshot := &domain.MetricSnapshotEntry{
				EntityID:   entity.ID,
				EntityType: entityType,
				EntityName: entity.Name,
				Period:     utils.Period(referenceYear, record.Month),
				Metrics:    record,
			}

			if err := s.snapshotRepository.SaveOrUpdate(snapshot); err != nil {
				logrus.WithError(err).WithFields(logrus.Fields{
					"entity_id": entity.ID,
					"period":    snapshot.Period,
				}).Warn("insights: erro ao salvar snapshot no cache")
				continue
			}
			saved++
		}
	}

	if saved > 0 {
		logrus.WithFields(logrus.Fields{
			"entity_type": entityType,
			"snapshots":   saved,
		}).Debug("insights: snapshots persistidos no cache")
	}
}

// GetCampaigns obtém a lista de campanhas com o total_spend derivado
func (s *Service) GetCampaigns() ([]*domain.Campaign, error) {
	campaigns, err := s.analyticsService.GetCampaigns()
	if err != nil {
		logrus.WithError(err).Error("insights: erro ao buscar campanhas do backend de analytics")
		return nil, err
	}

	return campaigns, nil
}

// GetClusterRows obtém os clusters de audiência como linhas de exibição
func (s *Service) GetClusterRows() ([]*domain.ClusterRow, error) {
	rows, err := s.analyticsService.GetClusterRows()
	if err != nil {
		logrus.WithError(err).Error("insights: erro ao buscar clusters do backend de analytics")
		return nil, err
	}

	return rows, nil
}

// GetAvailablePeriods retorna os períodos distintos presentes na tabela de snapshots
func (s *Service) GetAvailablePeriods() (*domain.AvailablePeriods, error) {
	if !s.useCache {
		// Sem cache não há tabela de snapshots para consultar
		return &domain.AvailablePeriods{
			Periods: []string{},
			Years:   []string{},
			Months:  []string{},
		}, nil
	}

	periods, err := s.snapshotRepository.GetAllPeriods()
	if err != nil {
		logrus.WithError(err).Error("insights: erro ao buscar períodos disponíveis")
		return nil, err
	}

	yearsSet := make(map[string]bool)
	monthsSet := make(map[string]bool)
	years := make([]string, 0)
	months := make([]string, 0)

	for _, period := range periods {
		parts := strings.SplitN(period, "-", 2)
		if len(parts) != 2 {
			continue
		}

		if !monthsSet[parts[0]] {
			monthsSet[parts[0]] = true
			months = append(months, parts[0])
		}

		if !yearsSet[parts[1]] {
			yearsSet[parts[1]] = true
			years = append(years, parts[1])
		}
	}

	sort.Strings(months)
	sort.Strings(years)

	return &domain.AvailablePeriods{
		Periods: periods,
		Years:   years,
		Months:  months,
	}, nil
}
