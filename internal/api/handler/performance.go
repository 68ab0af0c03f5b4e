package handler

import (
	"encoding/json"
	"net/http"

	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
	"github.com/vfg2006/marketing-dashboard-api/internal/usecases/insighting"
	"github.com/vfg2006/marketing-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/marketing-dashboard-api/pkg/log"
	"github.com/vfg2006/marketing-dashboard-api/pkg/utils"
)

// GetAudiencePerformance retorna os segmentos de audiência com seus registros mensais brutos
func GetAudiencePerformance(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		year, err := utils.ParseYear(r.URL.Query().Get("year"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		entities, err := service.GetAudiencePerformance(year)
		if err != nil {
			logger.WithError(err).Error("audiences: erro ao buscar performance de audiências")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao buscar performance de audiências", nil)
			return
		}

		logger.WithFields(log.Fields{
			"year":     year,
			"entities": len(entities),
		}).Info("audiences: performance recuperada com sucesso")

		writeJSON(w, logger, &domain.EntityPerformanceResponse{Entities: entities})
	})
}

// GetChannelPerformance retorna os canais de marketing com seus registros mensais brutos
func GetChannelPerformance(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		year, err := utils.ParseYear(r.URL.Query().Get("year"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		entities, err := service.GetChannelPerformance(year)
		if err != nil {
			logger.WithError(err).Error("channels: erro ao buscar performance de canais")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao buscar performance de canais", nil)
			return
		}

		logger.WithFields(log.Fields{
			"year":     year,
			"entities": len(entities),
		}).Info("channels: performance recuperada com sucesso")

		writeJSON(w, logger, &domain.EntityPerformanceResponse{Entities: entities})
	})
}

// writeJSON codifica a resposta de sucesso como JSON
func writeJSON(w http.ResponseWriter, logger log.Logger, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.WithError(err).Error("erro ao codificar resposta")
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
