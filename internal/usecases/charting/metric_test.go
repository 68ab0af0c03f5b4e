package charting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
)

func TestParseMetric(t *testing.T) {
	tests := []struct {
		input    string
		expected Metric
	}{
		{"roi", MetricROI},
		{"conversion_rate", MetricConversionRate},
		{"conversion", MetricConversionRate},
		{"acquisition_cost", MetricAcquisitionCost},
		{"cpa", MetricAcquisitionCost},
		{"ctr", MetricCTR},
		{"spend", MetricSpend},
		{"total_spend", MetricSpend},
		// Desconhecido e vazio caem no padrão documentado
		{"impressions", MetricROI},
		{"", MetricROI},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseMetric(tt.input))
		})
	}
}

func TestResolveValue_CPA(t *testing.T) {
	tests := []struct {
		name     string
		record   *domain.MonthlyMetrics
		expected *float64
	}{
		{
			name: "Estimativa completa: (custo * campanhas) / (clicks * conversão)",
			record: &domain.MonthlyMetrics{
				Month:           1,
				AcquisitionCost: floatPtr(5),
				CampaignCount:   floatPtr(2),
				Clicks:          floatPtr(100),
				ConversionRate:  floatPtr(0.1),
			},
			expected: floatPtr(1.0),
		},
		{
			name: "Clicks zero - devolve o acquisition_cost bruto (guarda de divisão por zero)",
			record: &domain.MonthlyMetrics{
				Month:           1,
				AcquisitionCost: floatPtr(5),
				CampaignCount:   floatPtr(2),
				Clicks:          floatPtr(0),
				ConversionRate:  floatPtr(0.1),
			},
			expected: floatPtr(5),
		},
		{
			name: "Conversão zero - devolve o acquisition_cost bruto",
			record: &domain.MonthlyMetrics{
				Month:           1,
				AcquisitionCost: floatPtr(7.5),
				Clicks:          floatPtr(50),
				ConversionRate:  floatPtr(0),
			},
			expected: floatPtr(7.5),
		},
		{
			name: "Sem campaign_count - assume pelo menos uma campanha",
			record: &domain.MonthlyMetrics{
				Month:           1,
				AcquisitionCost: floatPtr(4),
				Clicks:          floatPtr(10),
				ConversionRate:  floatPtr(0.2),
			},
			expected: floatPtr(2.0),
		},
		{
			name: "Sem acquisition_cost - valor ausente",
			record: &domain.MonthlyMetrics{
				Month:          1,
				Clicks:         floatPtr(100),
				ConversionRate: floatPtr(0.1),
			},
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value := ResolveValue(tt.record, MetricAcquisitionCost)

			if tt.expected == nil {
				assert.Nil(t, value)
				return
			}

			require.NotNil(t, value)
			assert.InDelta(t, *tt.expected, *value, 1e-9)
		})
	}
}

func TestResolveValue_VerbatimFields(t *testing.T) {
	record := &domain.MonthlyMetrics{
		Month:          6,
		ROI:            floatPtr(3.2),
		ConversionRate: floatPtr(0.04),
		CTR:            floatPtr(1.8),
		TotalSpend:     floatPtr(900),
	}

	assert.Equal(t, 3.2, *ResolveValue(record, MetricROI))
	assert.Equal(t, 0.04, *ResolveValue(record, MetricConversionRate))
	assert.Equal(t, 1.8, *ResolveValue(record, MetricCTR))
	assert.Equal(t, 900.0, *ResolveValue(record, MetricSpend))
	assert.Nil(t, ResolveValue(nil, MetricROI))
}
