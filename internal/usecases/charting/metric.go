package charting

import (
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
)

// Metric é o conjunto fechado de métricas selecionáveis nos gráficos do dashboard
type Metric string

const (
	MetricROI             Metric = "roi"
	MetricConversionRate  Metric = "conversion_rate"
	MetricAcquisitionCost Metric = "acquisition_cost"
	MetricCTR             Metric = "ctr"
	MetricSpend           Metric = "spend"
)

// ParseMetric resolve o nome de métrica vindo da query string para o enum
// fechado, aceitando os apelidos usados pela UI ("conversion", "cpa",
// "total_spend"). Valor desconhecido cai explicitamente em roi — nunca um
// erro, para que um parâmetro quebrado não apague o gráfico inteiro.
func ParseMetric(name string) Metric {
	switch name {
	case "roi", "":
		return MetricROI
	case "conversion_rate", "conversion":
		return MetricConversionRate
	case "acquisition_cost", "cpa":
		return MetricAcquisitionCost
	case "ctr":
		return MetricCTR
	case "spend", "total_spend":
		return MetricSpend
	}

	logrus.WithField("metric", name).Warn("charting: métrica desconhecida, usando roi como padrão")
	return MetricROI
}

// ResolveValue extrai da entrada mensal o valor da métrica selecionada.
// Para acquisition_cost o valor é a estimativa de custo por aquisição
// (ver estimateCPA); para as demais métricas é o campo homônimo do
// registro, sem transformação. Campo ausente retorna nil, nunca zero.
func ResolveValue(record *domain.MonthlyMetrics, metric Metric) *float64 {
	if record == nil {
		return nil
	}

	switch metric {
	case MetricConversionRate:
		return record.ConversionRate
	case MetricAcquisitionCost:
		return estimateCPA(record)
	case MetricCTR:
		return record.CTR
	case MetricSpend:
		return record.TotalSpend
	default:
		return record.ROI
	}
}

// estimateCPA calcula o custo estimado por cliente adquirido. O custo de
// aquisição reportado é por campanha, então inflamos pelo número de
// campanhas e dividimos pelas conversões estimadas (clicks * taxa de
// conversão). Quando clicks ou conversion_rate não são positivos, a divisão
// seria inválida e devolvemos o acquisition_cost bruto como aproximação.
func estimateCPA(record *domain.MonthlyMetrics) *float64 {
	if record.AcquisitionCost == nil {
		return nil
	}

	if record.Clicks == nil || *record.Clicks <= 0 ||
		record.ConversionRate == nil || *record.ConversionRate <= 0 {
		return record.AcquisitionCost
	}

	campaigns := 1.0
	if record.CampaignCount != nil && *record.CampaignCount > 1 {
		campaigns = *record.CampaignCount
	}

	estimated := (*record.AcquisitionCost * campaigns) / (*record.Clicks * *record.ConversionRate)
	return &estimated
}
