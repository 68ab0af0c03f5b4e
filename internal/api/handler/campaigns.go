package handler

import (
	"net/http"

	"github.com/vfg2006/marketing-dashboard-api/internal/usecases/insighting"
	"github.com/vfg2006/marketing-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/marketing-dashboard-api/pkg/log"
)

// GetCampaigns retorna a lista de campanhas com o investimento total derivado
func GetCampaigns(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		campaigns, err := service.GetCampaigns()
		if err != nil {
			logger.WithError(err).Error("campaigns: erro ao buscar campanhas")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao buscar campanhas", nil)
			return
		}

		logger.WithField("campaigns", len(campaigns)).Info("campaigns: campanhas recuperadas com sucesso")

		writeJSON(w, logger, campaigns)
	})
}
