package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
	"github.com/vfg2006/marketing-dashboard-api/internal/usecases/charting"
	"github.com/vfg2006/marketing-dashboard-api/internal/usecases/insighting/mocks"
	"github.com/vfg2006/marketing-dashboard-api/pkg/log"
	"go.uber.org/mock/gomock"
)

func floatPtr(v float64) *float64 { return &v }

func TestGetAudienceSeries(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockInsighter := mocks.NewMockInsighter(ctrl)
	chartService := charting.NewService()

	entities := []*domain.EntityInsight{
		{
			ID:   "A",
			Name: "Lookalike Compradores",
			MonthlyRecords: []*domain.MonthlyMetrics{
				{Month: 1, ROI: floatPtr(2.5)},
			},
		},
		{
			ID:   "B",
			Name: "Retargeting",
			MonthlyRecords: []*domain.MonthlyMetrics{
				{Month: 2, ROI: floatPtr(3.0)},
			},
		},
	}

	mockInsighter.EXPECT().
		GetAudiencePerformance(2024).
		Return(entities, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/audiences/series?metric=roi&year=2024", nil)
	rec := httptest.NewRecorder()

	GetAudienceSeries(mockInsighter, chartService).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	// Meses distintos viram linhas distintas; a entidade ausente no mês fica null
	expected := `{"rows":[{"dateKey":"2024-01-01","A":2.5,"B":null},{"dateKey":"2024-02-01","A":null,"B":3}]}`
	assert.JSONEq(t, expected, rec.Body.String())
}

func TestGetAudienceSeries_MetricaDesconhecidaUsaROI(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockInsighter := mocks.NewMockInsighter(ctrl)
	chartService := charting.NewService()

	entities := []*domain.EntityInsight{
		{
			ID: "A",
			MonthlyRecords: []*domain.MonthlyMetrics{
				{Month: 3, ROI: floatPtr(1.8), CTR: floatPtr(0.2)},
			},
		},
	}

	mockInsighter.EXPECT().
		GetAudiencePerformance(2024).
		Return(entities, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/audiences/series?metric=engagement&year=2024", nil)
	rec := httptest.NewRecorder()

	GetAudienceSeries(mockInsighter, chartService).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"rows":[{"dateKey":"2024-03-01","A":1.8}]}`, rec.Body.String())
}

func TestGetChannelSeries_ErroDoBackend(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockInsighter := mocks.NewMockInsighter(ctrl)
	chartService := charting.NewService()

	mockInsighter.EXPECT().
		GetChannelPerformance(gomock.Any()).
		Return(nil, assert.AnError)

	req := httptest.NewRequest(http.MethodGet, "/v1/channels/series?metric=spend", nil)
	rec := httptest.NewRecorder()

	GetChannelSeries(mockInsighter, chartService).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "SRV_003")
}

func TestGetAudienceSeries_AnoInvalido(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockInsighter := mocks.NewMockInsighter(ctrl)
	chartService := charting.NewService()

	req := httptest.NewRequest(http.MethodGet, "/v1/audiences/series?year=24", nil)
	rec := httptest.NewRecorder()

	GetAudienceSeries(mockInsighter, chartService).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VAL_003")
}
