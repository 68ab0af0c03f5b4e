package charting

import (
	"sort"

	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
)

// BuildQuadrant posiciona cada entidade em um gráfico de dispersão: o valor
// de cada eixo é a média da métrica resolvida sobre os registros mensais
// válidos da entidade. Entidades sem valor resolvível em algum dos eixos
// ficam fora dos pontos e do cálculo das medianas.
func (s *Service) BuildQuadrant(entities []*domain.EntityInsight, xMetric, yMetric Metric) *domain.QuadrantChart {
	points := make([]*domain.QuadrantPoint, 0, len(entities))
	xs := make([]float64, 0, len(entities))
	ys := make([]float64, 0, len(entities))

	for _, entity := range entities {
		if !entity.IsValid() {
			continue
		}

		x, okX := averageMetric(entity.MonthlyRecords, xMetric)
		y, okY := averageMetric(entity.MonthlyRecords, yMetric)
		if !okX || !okY {
			continue
		}

		points = append(points, &domain.QuadrantPoint{
			EntityID: entity.ID,
			Name:     entity.Name,
			X:        x,
			Y:        y,
		})
		xs = append(xs, x)
		ys = append(ys, y)
	}

	return &domain.QuadrantChart{
		Points:  points,
		MedianX: median(xs),
		MedianY: median(ys),
	}
}

// averageMetric calcula a média da métrica sobre os registros com mês válido
// e valor presente. Retorna false quando nenhum registro contribui.
func averageMetric(records []*domain.MonthlyMetrics, metric Metric) (float64, bool) {
	sum := 0.0
	count := 0

	for _, record := range records {
		if !record.HasValidMonth() {
			continue
		}

		value := ResolveValue(record, metric)
		if value == nil {
			continue
		}

		sum += *value
		count++
	}

	if count == 0 {
		return 0, false
	}

	return sum / float64(count), true
}

// median calcula a mediana usada como linha de referência do quadrante.
// Lista vazia retorna zero.
func median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}

	return (sorted[mid-1] + sorted[mid]) / 2
}
