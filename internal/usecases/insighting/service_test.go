package insighting

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	analyticsmocks "github.com/vfg2006/marketing-dashboard-api/infrastructure/integrator/analytics/mocks"
	"github.com/vfg2006/marketing-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/marketing-dashboard-api/internal/config"
	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func floatPtr(f float64) *float64 {
	return &f
}

func TestService_GetAudiencePerformance_WithoutCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAnalytics := analyticsmocks.NewMockAnalyticsIntegrator(ctrl)

	expected := []*domain.EntityInsight{
		{ID: "aud-1", Name: "Jovens urbanos", MonthlyRecords: []*domain.MonthlyMetrics{{Month: 1, ROI: floatPtr(2.0)}}},
	}

	mockAnalytics.EXPECT().
		GetAudiencePerformance().
		Return(expected, nil)

	service := NewService(&config.Config{}, mockAnalytics)

	entities, err := service.GetAudiencePerformance(2024)
	require.NoError(t, err)
	assert.Equal(t, expected, entities)
}

func TestService_GetAudiencePerformance_CacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAnalytics := analyticsmocks.NewMockAnalyticsIntegrator(ctrl)
	mockSnapshotRepo := mocks.NewMockMetricSnapshotRepository(ctrl)

	// Cache populado em janeiro; demais meses vazios
	mockSnapshotRepo.EXPECT().
		GetByTypeAndPeriod(domain.EntityTypeAudience, "01-2024").
		Return([]*domain.MetricSnapshotEntry{
			{
				EntityID:   "aud-1",
				EntityType: domain.EntityTypeAudience,
				EntityName: "Jovens urbanos",
				Period:     "01-2024",
				Metrics:    &domain.MonthlyMetrics{ROI: floatPtr(3.5)},
			},
		}, nil)

	for month := 2; month <= 12; month++ {
		period := periodFor(month)
		mockSnapshotRepo.EXPECT().
			GetByTypeAndPeriod(domain.EntityTypeAudience, period).
			Return(nil, nil)
	}

	// Com cache populado o backend não deve ser chamado
	service := NewService(&config.Config{}, mockAnalytics).(*Service).WithCache(mockSnapshotRepo)

	entities, err := service.GetAudiencePerformance(2024)
	require.NoError(t, err)

	require.Len(t, entities, 1)
	assert.Equal(t, "aud-1", entities[0].ID)
	require.Len(t, entities[0].MonthlyRecords, 1)
	assert.Equal(t, 1, entities[0].MonthlyRecords[0].Month)
	require.NotNil(t, entities[0].MonthlyRecords[0].ROI)
	assert.Equal(t, 3.5, *entities[0].MonthlyRecords[0].ROI)
}

func TestService_GetAudiencePerformance_CacheMissFallsBackToBackend(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAnalytics := analyticsmocks.NewMockAnalyticsIntegrator(ctrl)
	mockSnapshotRepo := mocks.NewMockMetricSnapshotRepository(ctrl)

	for month := 1; month <= 12; month++ {
		mockSnapshotRepo.EXPECT().
			GetByTypeAndPeriod(domain.EntityTypeAudience, periodFor(month)).
			Return(nil, nil)
	}

	fetched := []*domain.EntityInsight{
		{ID: "aud-2", MonthlyRecords: []*domain.MonthlyMetrics{{Month: 6, CTR: floatPtr(1.2)}}},
	}

	mockAnalytics.EXPECT().
		GetAudiencePerformance().
		Return(fetched, nil)

	// O resultado do backend alimenta o cache
	mockSnapshotRepo.EXPECT().
		SaveOrUpdate(gomock.Any()).
		DoAndReturn(func(snapshot *domain.MetricSnapshotEntry) error {
			assert.Equal(t, "aud-2", snapshot.EntityID)
			assert.Equal(t, "06-2024", snapshot.Period)
			return nil
		})

	service := NewService(&config.Config{}, mockAnalytics).(*Service).WithCache(mockSnapshotRepo)

	entities, err := service.GetAudiencePerformance(2024)
	require.NoError(t, err)
	assert.Equal(t, fetched, entities)
}

func TestService_GetChannelPerformance_BackendError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAnalytics := analyticsmocks.NewMockAnalyticsIntegrator(ctrl)

	mockAnalytics.EXPECT().
		GetChannelPerformance().
		Return(nil, errors.New("backend indisponível"))

	service := NewService(&config.Config{}, mockAnalytics)

	entities, err := service.GetChannelPerformance(2024)
	assert.Error(t, err)
	assert.Nil(t, entities)
}

func TestService_GetAvailablePeriods(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAnalytics := analyticsmocks.NewMockAnalyticsIntegrator(ctrl)
	mockSnapshotRepo := mocks.NewMockMetricSnapshotRepository(ctrl)

	mockSnapshotRepo.EXPECT().
		GetAllPeriods().
		Return([]string{"11-2023", "12-2023", "01-2024"}, nil)

	service := NewService(&config.Config{}, mockAnalytics).(*Service).WithCache(mockSnapshotRepo)

	periods, err := service.GetAvailablePeriods()
	require.NoError(t, err)

	assert.Equal(t, []string{"11-2023", "12-2023", "01-2024"}, periods.Periods)
	assert.Equal(t, []string{"2023", "2024"}, periods.Years)
	assert.Equal(t, []string{"01", "11", "12"}, periods.Months)
}

func TestService_GetAvailablePeriods_WithoutCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAnalytics := analyticsmocks.NewMockAnalyticsIntegrator(ctrl)

	service := NewService(&config.Config{}, mockAnalytics)

	periods, err := service.GetAvailablePeriods()
	require.NoError(t, err)
	assert.Empty(t, periods.Periods)
	assert.Empty(t, periods.Years)
	assert.Empty(t, periods.Months)
}

func periodFor(month int) string {
	months := []string{"", "01", "02", "03", "04", "05", "06", "07", "08", "09", "10", "11", "12"}
	return months[month] + "-2024"
}
