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

// GetAudienceSeries monta a tabela de séries temporais das audiências para a
// métrica selecionada na query string (?metric=&year=)
func GetAudienceSeries(insightService insighting.Insighter, chartService charting.SeriesBuilder) http.Handler {
	return seriesHandler("audiences-series", insightService.GetAudiencePerformance, chartService)
}

// GetChannelSeries monta a tabela de séries temporais dos canais
func GetChannelSeries(insightService insighting.Insighter, chartService charting.SeriesBuilder) http.Handler {
	return seriesHandler("channels-series", insightService.GetChannelPerformance, chartService)
}

func seriesHandler(
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

		metric := charting.ParseMetric(r.URL.Query().Get("metric"))

		entities, err := fetch(year)
		if err != nil {
			logger.WithError(err).WithFields(log.Fields{
				"metric": metric,
				"year":   year,
			}).Errorf("%s: erro ao buscar dados de performance", prefix)

			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao buscar dados de performance", nil)
			return
		}

		series := chartService.BuildSeries(entities, metric, year)

		logger.WithFields(log.Fields{
			"metric":   metric,
			"year":     year,
			"entities": len(entities),
			"rows":     len(series.Rows),
		}).Infof("%s: série montada com sucesso", prefix)

		writeJSON(w, logger, series)
	})
}
