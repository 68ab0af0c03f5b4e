package handler

import (
	"net/http"

	"github.com/vfg2006/marketing-dashboard-api/internal/usecases/insighting"
	"github.com/vfg2006/marketing-dashboard-api/pkg/log"
)

// GetAvailablePeriods retorna os períodos (meses e anos) com snapshots disponíveis
func GetAvailablePeriods(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("insights-periods: buscando períodos disponíveis")

		availablePeriods, err := service.GetAvailablePeriods()
		if err != nil {
			logger.WithError(err).Error("insights-periods: erro ao buscar períodos disponíveis")
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		logger.WithFields(log.Fields{
			"total_periods": len(availablePeriods.Periods),
			"years":         availablePeriods.Years,
			"months":        availablePeriods.Months,
		}).Info("insights-periods: períodos disponíveis recuperados com sucesso")

		writeJSON(w, logger, availablePeriods)
	})
}
