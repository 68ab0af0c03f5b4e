// Package charting transforma coleções de registros mensais esparsos em
// tabelas densas e ordenadas, prontas para renderização como gráficos de
// séries temporais multi-linha.
package charting

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
)

// SeriesBuilder define a interface do construtor de séries de métricas
type SeriesBuilder interface {
	// BuildSeries monta a tabela densa de séries para a métrica selecionada
	BuildSeries(entities []*domain.EntityInsight, metric Metric, referenceYear int) *domain.ChartSeries

	// BuildQuadrant posiciona cada entidade em um gráfico de dispersão por
	// duas métricas e calcula as medianas das linhas de referência
	BuildQuadrant(entities []*domain.EntityInsight, xMetric, yMetric Metric) *domain.QuadrantChart
}

// Service implementa SeriesBuilder. É puro e sem estado: cada chamada aloca
// um resultado novo e não toca em estado compartilhado, então é seguro
// invocá-lo concorrentemente de múltiplos handlers.
type Service struct{}

// NewService cria uma nova instância do construtor de séries
func NewService() SeriesBuilder {
	return &Service{}
}

// BuildSeries agrupa os registros mensais de todas as entidades por chave de
// data sintetizada (referenceYear + mês zero-padded) e produz uma linha por
// mês distinto, ordenada ascendentemente, com um slot por entidade.
//
// A função nunca retorna erro: entidade sem ID ou registro sem mês válido é
// descartado e o restante da tabela é produzido normalmente. Um ponto de
// dado quebrado não pode apagar um gráfico inteiro que funciona.
func (s *Service) BuildSeries(entities []*domain.EntityInsight, metric Metric, referenceYear int) *domain.ChartSeries {
	rowsByDate := make(map[string]*domain.ChartRow)
	entityIDs := make([]string, 0, len(entities))
	skipped := 0

	for _, entity := range entities {
		if !entity.IsValid() {
			skipped++
			continue
		}
		entityIDs = append(entityIDs, entity.ID)

		for _, record := range entity.MonthlyRecords {
			if !record.HasValidMonth() {
				skipped++
				continue
			}

			dateKey := DateKey(referenceYear, record.Month)

			row, ok := rowsByDate[dateKey]
			if !ok {
				row = &domain.ChartRow{
					DateKey: dateKey,
					Values:  make(map[string]*float64),
				}
				rowsByDate[dateKey] = row
			}

			row.Values[entity.ID] = ResolveValue(record, metric)
		}
	}

	if skipped > 0 {
		logrus.WithFields(logrus.Fields{
			"skipped": skipped,
			"metric":  metric,
		}).Debug("charting: entradas malformadas descartadas na montagem da série")
	}

	rows := make([]*domain.ChartRow, 0, len(rowsByDate))
	for _, row := range rowsByDate {
		// Toda entidade válida ganha um slot em toda linha; ausência de dado
		// naquele mês fica como nil, nunca coagida a zero
		for _, id := range entityIDs {
			if _, ok := row.Values[id]; !ok {
				row.Values[id] = nil
			}
		}
		rows = append(rows, row)
	}

	// A chave YYYY-MM-01 é zero-padded, então ordenação lexicográfica é
	// ordenação cronológica
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].DateKey < rows[j].DateKey
	})

	return &domain.ChartSeries{Rows: rows}
}

// DateKey sintetiza a chave de data ordenável a partir do ano de referência
// e do número do mês. Os dados de origem carregam apenas o mês.
func DateKey(referenceYear, month int) string {
	return fmt.Sprintf("%04d-%02d-01", referenceYear, month)
}
