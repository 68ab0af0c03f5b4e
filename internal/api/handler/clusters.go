package handler

import (
	"net/http"

	"github.com/vfg2006/marketing-dashboard-api/internal/usecases/insighting"
	"github.com/vfg2006/marketing-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/marketing-dashboard-api/pkg/log"
)

// GetClusters retorna os clusters de audiência como linhas de exibição,
// com a participação de cada cluster no investimento total
func GetClusters(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		clusters, err := service.GetClusterRows()
		if err != nil {
			logger.WithError(err).Error("clusters: erro ao buscar clusters")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao buscar clusters", nil)
			return
		}

		logger.WithField("clusters", len(clusters)).Info("clusters: clusters recuperados com sucesso")

		writeJSON(w, logger, clusters)
	})
}
