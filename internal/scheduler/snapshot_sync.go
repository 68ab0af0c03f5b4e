// Package scheduler contém o serviço de agendamento da sincronização de snapshots
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketing-dashboard-api/infrastructure/integrator/analytics"
	"github.com/vfg2006/marketing-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/marketing-dashboard-api/internal/config"
	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
	"github.com/vfg2006/marketing-dashboard-api/pkg/utils"
)

// SnapshotSyncConfig representa a configuração do agendador de snapshots
type SnapshotSyncConfig struct {
	CronSchedule        string
	RequestDelaySeconds int
	SyncEnabled         bool
	MonthLookback       int
	RetentionMonths     int
}

// SnapshotSyncService gerencia o agendamento e execução da sincronização dos
// snapshots mensais de métricas vindos do backend de analytics
type SnapshotSyncService struct {
	scheduler           *gocron.Scheduler
	config              SnapshotSyncConfig
	snapshotRepo        repository.MetricSnapshotRepository
	analyticsService    analytics.AnalyticsIntegrator
	syncRunning         bool
	syncMutex           sync.Mutex
	lastRunID           string
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewSnapshotSyncService cria uma nova instância do serviço de sincronização de snapshots
func NewSnapshotSyncService(
	snapshotRepo repository.MetricSnapshotRepository,
	analyticsService analytics.AnalyticsIntegrator,
	appConfig *config.Config,
) *SnapshotSyncService {
	syncConfig := SnapshotSyncConfig{
		CronSchedule:        appConfig.SnapshotSync.CronSchedule,
		RequestDelaySeconds: appConfig.SnapshotSync.RequestDelaySeconds,
		SyncEnabled:         appConfig.SnapshotSync.Enabled,
		MonthLookback:       appConfig.SnapshotSync.MonthLookback,
		RetentionMonths:     appConfig.SnapshotSync.RetentionMonths,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":         syncConfig.CronSchedule,
		"request_delay_seconds": syncConfig.RequestDelaySeconds,
		"sync_enabled":          syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de snapshots carregada")

	return &SnapshotSyncService{
		scheduler:        scheduler,
		config:           syncConfig,
		snapshotRepo:     snapshotRepo,
		analyticsService: analyticsService,
		syncRunning:      false,
	}
}

// Start inicia o agendador
func (s *SnapshotSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de snapshots desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização de snapshots")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncSnapshots()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de snapshots: %w", err)
	}

	s.scheduler.StartAsync()

	// Parar o agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de snapshots")
		s.scheduler.Stop()
	}()

	return nil
}

// syncSnapshots busca a performance de audiências e canais no backend e
// persiste um snapshot por entidade/mês do ano de referência
func (s *SnapshotSyncService) syncSnapshots() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de snapshots já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	runID, err := utils.GenerateID()
	if err != nil {
		runID = "unknown"
	}

	startTime := time.Now()
	s.lastSyncStartedAt = startTime
	s.lastRunID = runID

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	logger := logrus.WithField("run_id", runID)
	logger.Info("Iniciando sincronização de snapshots de métricas")

	total := s.syncEntityType(logger, domain.EntityTypeAudience, startTime, s.analyticsService.GetAudiencePerformance)

	// Pausa entre chamadas para não sobrecarregar o backend
	time.Sleep(time.Duration(s.config.RequestDelaySeconds) * time.Second)

	total += s.syncEntityType(logger, domain.EntityTypeChannel, startTime, s.analyticsService.GetChannelPerformance)

	if s.config.RetentionMonths > 0 {
		deleted, err := s.snapshotRepo.DeleteOlderThan(s.config.RetentionMonths)
		if err != nil {
			logger.WithError(err).Warn("Erro ao remover snapshots antigos")
		} else if deleted > 0 {
			logger.WithField("deleted", deleted).Info("Snapshots antigos removidos")
		}
	}

	logger.WithFields(logrus.Fields{
		"snapshots":   total,
		"duration_ms": time.Since(startTime).Milliseconds(),
	}).Info("Sincronização de snapshots concluída")
}

// syncEntityType sincroniza os snapshots de um tipo de entidade e retorna
// quantos foram salvos. O backend reporta apenas o número do mês, sem ano:
// os registros pertencem ao ano corrente. A janela de lookback apenas
// preenche períodos do ano anterior ainda sem snapshot; um snapshot
// histórico nunca é sobrescrito com dados rotulados de novo.
func (s *SnapshotSyncService) syncEntityType(
	logger *logrus.Entry,
	entityType domain.EntityType,
	now time.Time,
	fetch func() ([]*domain.EntityInsight, error),
) int {
	entities, err := fetch()
	if err != nil {
		logger.WithError(err).WithField("entity_type", entityType).Error("Erro ao buscar performance do backend de analytics")
		return 0
	}

	saved := s.persistSnapshots(logger, entityType, now.Year(), entities, false)

	if s.config.MonthLookback > 0 && int(now.Month()) <= s.config.MonthLookback {
		saved += s.persistSnapshots(logger, entityType, now.Year()-1, entities, true)
	}

	logger.WithFields(logrus.Fields{
		"entity_type": entityType,
		"entities":    len(entities),
		"snapshots":   saved,
	}).Info("Snapshots do tipo de entidade sincronizados")

	return saved
}

// persistSnapshots grava um snapshot por registro mensal válido sob o ano
// informado. Com backfillOnly, períodos que já possuem snapshot são mantidos
// intactos.
func (s *SnapshotSyncService) persistSnapshots(
	logger *logrus.Entry,
	entityType domain.EntityType,
	referenceYear int,
	entities []*domain.EntityInsight,
	backfillOnly bool,
) int {
	saved := 0
	for _, entity := range entities {
		if !entity.IsValid() {
			continue
		}

		for _, record := range entity.MonthlyRecords {
			if !record.HasValidMonth() {
				continue
			}

			period := utils.Period(referenceYear, record.Month)

			if backfillOnly {
				existing, err := s.snapshotRepo.GetByEntityAndPeriod(entity.ID, entityType, period)
				if err != nil {
					logger.WithError(err).WithFields(logrus.Fields{
						"entity_id": entity.ID,
						"period":    period,
					}).Warn("Erro ao verificar snapshot existente, pulando backfill")
					continue
				}
				if existing != nil {
					continue
				}
			}

			snapshot := &domain.MetricSnapshotEntry{
				EntityID:   entity.ID,
				EntityType: entityType,
				EntityName: entity.Name,
				Period:     period,
				Metrics:    record,
			}

			if err := s.snapshotRepo.SaveOrUpdate(snapshot); err != nil {
				logger.WithError(err).WithFields(logrus.Fields{
					"entity_id": entity.ID,
					"period":    period,
				}).Warn("Erro ao salvar snapshot")
				continue
			}
			saved++
		}
	}

	return saved
}

// TriggerManualSync inicia manualmente uma sincronização de snapshots
func (s *SnapshotSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de snapshots já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual de snapshots")
	go s.syncSnapshots()
}

// GetStatus retorna o status atual da sincronização
func (s *SnapshotSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_running":           s.syncRunning,
		"sync_cron":              s.config.CronSchedule,
		"sync_enabled":           s.config.SyncEnabled,
		"last_run_id":            s.lastRunID,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
