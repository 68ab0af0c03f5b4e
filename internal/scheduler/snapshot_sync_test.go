package scheduler

import (
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	analyticsmocks "github.com/vfg2006/marketing-dashboard-api/infrastructure/integrator/analytics/mocks"
	"github.com/vfg2006/marketing-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
	"github.com/vfg2006/marketing-dashboard-api/pkg/log"
	"go.uber.org/mock/gomock"
)

func floatPtr(v float64) *float64 { return &v }

func testLogger() *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logrus.NewEntry(logger)
}

func TestSnapshotSyncService_syncEntityType(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSnapshotRepo := mocks.NewMockMetricSnapshotRepository(ctrl)
	mockAnalytics := analyticsmocks.NewMockAnalyticsIntegrator(ctrl)

	service := &SnapshotSyncService{
		config:           SnapshotSyncConfig{RequestDelaySeconds: 0},
		snapshotRepo:     mockSnapshotRepo,
		analyticsService: mockAnalytics,
	}

	tests := []struct {
		name     string
		entities []*domain.EntityInsight
		setup    func()
		expected int
	}{
		{
			name: "Salva um snapshot por registro mensal válido",
			entities: []*domain.EntityInsight{
				{
					ID:   "AUD001",
					Name: "Lookalike Compradores",
					MonthlyRecords: []*domain.MonthlyMetrics{
						{Month: 1, ROI: floatPtr(2.5)},
						{Month: 2, ROI: floatPtr(3.1)},
					},
				},
			},
			setup: func() {
				mockSnapshotRepo.EXPECT().
					SaveOrUpdate(gomock.Any()).
					DoAndReturn(func(entry *domain.MetricSnapshotEntry) error {
						assert.Equal(t, "AUD001", entry.EntityID)
						assert.Equal(t, domain.EntityTypeAudience, entry.EntityType)
						assert.Equal(t, "01-2024", entry.Period)
						return nil
					})
				mockSnapshotRepo.EXPECT().
					SaveOrUpdate(gomock.Any()).
					DoAndReturn(func(entry *domain.MetricSnapshotEntry) error {
						assert.Equal(t, "02-2024", entry.Period)
						return nil
					})
			},
			expected: 2,
		},
		{
			name: "Ignora entidade sem identificador e registro sem mês válido",
			entities: []*domain.EntityInsight{
				{
					Name: "Sem ID",
					MonthlyRecords: []*domain.MonthlyMetrics{
						{Month: 1, ROI: floatPtr(1.0)},
					},
				},
				{
					ID:   "AUD002",
					Name: "Retargeting",
					MonthlyRecords: []*domain.MonthlyMetrics{
						{Month: 13, ROI: floatPtr(1.0)},
						{Month: 3, ROI: floatPtr(4.2)},
					},
				},
			},
			setup: func() {
				mockSnapshotRepo.EXPECT().
					SaveOrUpdate(gomock.Any()).
					DoAndReturn(func(entry *domain.MetricSnapshotEntry) error {
						assert.Equal(t, "AUD002", entry.EntityID)
						assert.Equal(t, "03-2024", entry.Period)
						return nil
					})
			},
			expected: 1,
		},
		{
			name:     "Lista vazia não persiste nada",
			entities: []*domain.EntityInsight{},
			setup:    func() {},
			expected: 0,
		},
	}

	now := time.Date(2024, 8, 15, 5, 0, 0, 0, time.UTC)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			fetch := func() ([]*domain.EntityInsight, error) {
				return tt.entities, nil
			}

			saved := service.syncEntityType(testLogger(), domain.EntityTypeAudience, now, fetch)
			assert.Equal(t, tt.expected, saved)
		})
	}
}

func TestSnapshotSyncService_syncEntityType_LookbackNaoSobrescreveAnoAnterior(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSnapshotRepo := mocks.NewMockMetricSnapshotRepository(ctrl)

	service := &SnapshotSyncService{
		config:       SnapshotSyncConfig{MonthLookback: 12},
		snapshotRepo: mockSnapshotRepo,
	}

	entities := []*domain.EntityInsight{
		{
			ID:   "AUD001",
			Name: "Lookalike Compradores",
			MonthlyRecords: []*domain.MonthlyMetrics{
				{Month: 6, ROI: floatPtr(2.5)},
			},
		},
	}

	// O registro é do ano corrente e só pode ser gravado sob ele
	mockSnapshotRepo.EXPECT().
		SaveOrUpdate(gomock.Any()).
		DoAndReturn(func(entry *domain.MetricSnapshotEntry) error {
			assert.Equal(t, "06-2026", entry.Period)
			return nil
		})

	// O ano anterior já tem snapshot histórico: precisa permanecer intacto
	mockSnapshotRepo.EXPECT().
		GetByEntityAndPeriod("AUD001", domain.EntityTypeAudience, "06-2025").
		Return(&domain.MetricSnapshotEntry{
			EntityID: "AUD001",
			Period:   "06-2025",
			Metrics:  &domain.MonthlyMetrics{Month: 6, ROI: floatPtr(9.9)},
		}, nil)

	now := time.Date(2026, 6, 10, 5, 0, 0, 0, time.UTC)

	fetch := func() ([]*domain.EntityInsight, error) {
		return entities, nil
	}

	saved := service.syncEntityType(testLogger(), domain.EntityTypeAudience, now, fetch)
	assert.Equal(t, 1, saved)
}

func TestSnapshotSyncService_syncEntityType_LookbackPreenchePeriodoVazio(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSnapshotRepo := mocks.NewMockMetricSnapshotRepository(ctrl)

	service := &SnapshotSyncService{
		config:       SnapshotSyncConfig{MonthLookback: 2},
		snapshotRepo: mockSnapshotRepo,
	}

	entities := []*domain.EntityInsight{
		{
			ID:   "CH1",
			Name: "Paid Search",
			MonthlyRecords: []*domain.MonthlyMetrics{
				{Month: 1, CTR: floatPtr(0.4)},
			},
		},
	}

	mockSnapshotRepo.EXPECT().
		SaveOrUpdate(gomock.Any()).
		DoAndReturn(func(entry *domain.MetricSnapshotEntry) error {
			assert.Equal(t, "01-2026", entry.Period)
			return nil
		})

	// Sem snapshot histórico, o período do ano anterior é preenchido
	mockSnapshotRepo.EXPECT().
		GetByEntityAndPeriod("CH1", domain.EntityTypeChannel, "01-2025").
		Return(nil, nil)

	mockSnapshotRepo.EXPECT().
		SaveOrUpdate(gomock.Any()).
		DoAndReturn(func(entry *domain.MetricSnapshotEntry) error {
			assert.Equal(t, "01-2025", entry.Period)
			return nil
		})

	now := time.Date(2026, 1, 10, 5, 0, 0, 0, time.UTC)

	fetch := func() ([]*domain.EntityInsight, error) {
		return entities, nil
	}

	saved := service.syncEntityType(testLogger(), domain.EntityTypeChannel, now, fetch)
	assert.Equal(t, 2, saved)
}

func TestSnapshotSyncService_syncEntityType_ForaDaJanelaNaoConsultaAnoAnterior(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSnapshotRepo := mocks.NewMockMetricSnapshotRepository(ctrl)

	service := &SnapshotSyncService{
		config:       SnapshotSyncConfig{MonthLookback: 1},
		snapshotRepo: mockSnapshotRepo,
	}

	entities := []*domain.EntityInsight{
		{
			ID:   "AUD002",
			Name: "Retargeting",
			MonthlyRecords: []*domain.MonthlyMetrics{
				{Month: 3, ROI: floatPtr(4.2)},
			},
		},
	}

	// Em março a janela de lookback de um mês já fechou: nenhuma consulta
	// nem escrita sob o ano anterior
	mockSnapshotRepo.EXPECT().
		SaveOrUpdate(gomock.Any()).
		DoAndReturn(func(entry *domain.MetricSnapshotEntry) error {
			assert.Equal(t, "03-2026", entry.Period)
			return nil
		})

	now := time.Date(2026, 3, 10, 5, 0, 0, 0, time.UTC)

	fetch := func() ([]*domain.EntityInsight, error) {
		return entities, nil
	}

	saved := service.syncEntityType(testLogger(), domain.EntityTypeAudience, now, fetch)
	assert.Equal(t, 1, saved)
}

func TestSnapshotSyncService_syncEntityType_BackendError(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSnapshotRepo := mocks.NewMockMetricSnapshotRepository(ctrl)

	service := &SnapshotSyncService{
		config:       SnapshotSyncConfig{},
		snapshotRepo: mockSnapshotRepo,
	}

	fetch := func() ([]*domain.EntityInsight, error) {
		return nil, assert.AnError
	}

	now := time.Date(2024, 8, 15, 5, 0, 0, 0, time.UTC)

	saved := service.syncEntityType(testLogger(), domain.EntityTypeChannel, now, fetch)
	assert.Zero(t, saved)
}

func TestSnapshotSyncService_TriggerManualSync_IgnoresWhenRunning(t *testing.T) {
	log.SetupTestLogger()

	service := &SnapshotSyncService{
		config:      SnapshotSyncConfig{},
		syncRunning: true,
	}

	// Com a sincronização em andamento, a solicitação manual não pode disparar
	// uma nova goroutine de sync (que quebraria por falta de dependências)
	service.TriggerManualSync()

	status := service.GetStatus()
	assert.Equal(t, true, status["sync_running"])
}

func TestSnapshotSyncService_GetStatus(t *testing.T) {
	startedAt := time.Date(2024, 6, 1, 5, 0, 0, 0, time.UTC)

	service := &SnapshotSyncService{
		config: SnapshotSyncConfig{
			CronSchedule: "0 5 * * *",
			SyncEnabled:  true,
		},
		lastRunID:         "abc123",
		lastSyncStartedAt: startedAt,
	}

	status := service.GetStatus()

	assert.Equal(t, false, status["sync_running"])
	assert.Equal(t, "0 5 * * *", status["sync_cron"])
	assert.Equal(t, true, status["sync_enabled"])
	assert.Equal(t, "abc123", status["last_run_id"])
	assert.Equal(t, startedAt, status["last_sync_started_at"])
}
