package charting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
)

func TestService_BuildQuadrant(t *testing.T) {
	builder := NewService()

	entities := []*domain.EntityInsight{
		{
			ID:   "A",
			Name: "Jovens urbanos",
			MonthlyRecords: []*domain.MonthlyMetrics{
				{Month: 1, ROI: floatPtr(2.0), TotalSpend: floatPtr(100)},
				{Month: 2, ROI: floatPtr(4.0), TotalSpend: floatPtr(300)},
			},
		},
		{
			ID:   "B",
			Name: "Profissionais",
			MonthlyRecords: []*domain.MonthlyMetrics{
				{Month: 1, ROI: floatPtr(1.0), TotalSpend: floatPtr(500)},
			},
		},
		{
			ID:   "C",
			Name: "Aposentados",
			MonthlyRecords: []*domain.MonthlyMetrics{
				{Month: 1, ROI: floatPtr(6.0), TotalSpend: floatPtr(50)},
			},
		},
	}

	chart := builder.BuildQuadrant(entities, MetricSpend, MetricROI)

	require.Len(t, chart.Points, 3)

	// A: média de spend (100+300)/2 = 200, média de roi (2+4)/2 = 3
	assert.Equal(t, "A", chart.Points[0].EntityID)
	assert.Equal(t, 200.0, chart.Points[0].X)
	assert.Equal(t, 3.0, chart.Points[0].Y)

	// Medianas das linhas de referência: spend {50,200,500} -> 200; roi {1,3,6} -> 3
	assert.Equal(t, 200.0, chart.MedianX)
	assert.Equal(t, 3.0, chart.MedianY)
}

func TestService_BuildQuadrant_SkipsUnresolvableEntities(t *testing.T) {
	builder := NewService()

	entities := []*domain.EntityInsight{
		{
			ID: "A",
			MonthlyRecords: []*domain.MonthlyMetrics{
				{Month: 1, ROI: floatPtr(2.0), CTR: floatPtr(1.0)},
			},
		},
		{
			// Sem CTR em nenhum registro: fora dos pontos e das medianas
			ID: "B",
			MonthlyRecords: []*domain.MonthlyMetrics{
				{Month: 1, ROI: floatPtr(9.0)},
			},
		},
		{
			// Sem ID: descartada
			MonthlyRecords: []*domain.MonthlyMetrics{
				{Month: 1, ROI: floatPtr(5.0), CTR: floatPtr(5.0)},
			},
		},
	}

	chart := builder.BuildQuadrant(entities, MetricCTR, MetricROI)

	require.Len(t, chart.Points, 1)
	assert.Equal(t, "A", chart.Points[0].EntityID)
	assert.Equal(t, 1.0, chart.MedianX)
	assert.Equal(t, 2.0, chart.MedianY)
}

func TestService_BuildQuadrant_EmptyInput(t *testing.T) {
	builder := NewService()

	chart := builder.BuildQuadrant(nil, MetricROI, MetricSpend)

	assert.Empty(t, chart.Points)
	assert.Equal(t, 0.0, chart.MedianX)
	assert.Equal(t, 0.0, chart.MedianY)
}

func TestMedian(t *testing.T) {
	assert.Equal(t, 0.0, median(nil))
	assert.Equal(t, 5.0, median([]float64{5}))
	assert.Equal(t, 2.0, median([]float64{3, 1, 2}))
	assert.Equal(t, 2.5, median([]float64{4, 1, 2, 3}))
}
