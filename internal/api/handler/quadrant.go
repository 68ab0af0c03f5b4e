package handler

import (
	"net/http"

	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
	"github.com/vfg2006/marketing-dashboard-api/internal/usecases/charting"
	"github.com/vfg2006/marketing-dashboard-api/internal/usecases/insighting"
	"github.com/vfg2006/marketing-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/marketing-dashboard-api/pkg/log"
	"github.com/vfg2006/marketing-dashboard-api/pkg/utils"
)

// GetAudienceQuadrant posiciona as audiências em um gráfico de dispersão por
// duas métricas (?x=&y=&year=) com linhas de referência nas medianas
func GetAudienceQuadrant(insightService insighting.Insighter, chartService charting.SeriesBuilder) http.Handler {
	return quadrantHandler("audiences-quadrant", insightService.GetAudiencePerformance, chartService)
}

// GetChannelQuadrant posiciona os canais em um gráfico de dispersão
func GetChannelQuadrant(insightService insighting.Insighter, chartService charting.SeriesBuilder) http.Handler {
	return quadrantHandler("channels-quadrant", insightService.GetChannelPerformance, chartService)
}

func quadrantHandler(
	prefix string,
	fetch func(referenceYear int) ([]*domain.EntityInsight, error),
	chartService charting.SeriesBuilder,
) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		year, err := utils.ParseYear(r.URL.Query().Get("year"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		// Eixos padrão do dashboard: investimento x retorno
		xMetric := charting.MetricSpend
		yMetric := charting.MetricROI
		if x := r.URL.Query().Get("x"); x != "" {
			xMetric = charting.ParseMetric(x)
		}
		if y := r.URL.Query().Get("y"); y != "" {
			yMetric = charting.ParseMetric(y)
		}

		entities, err := fetch(year)
		if err != nil {
			logger.WithError(err).WithFields(log.Fields{
				"x":    xMetric,
				"y":    yMetric,
				"year": year,
			}).Errorf("%s: erro ao buscar dados de performance", prefix)

			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao buscar dados de performance", nil)
			return
		}

		quadrant := chartService.BuildQuadrant(entities, xMetric, yMetric)

		logger.WithFields(log.Fields{
			"x":      xMetric,
			"y":      yMetric,
			"year":   year,
			"points": len(quadrant.Points),
		}).Infof("%s: quadrante montado com sucesso", prefix)

		writeJSON(w, logger, quadrant)
	})
}
