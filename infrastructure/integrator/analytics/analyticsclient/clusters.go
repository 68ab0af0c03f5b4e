package analyticsclient

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	analyticsdomain "github.com/vfg2006/marketing-dashboard-api/infrastructure/integrator/analytics/domain"
)

// GetClusters busca os clusters de audiência calculados pelo backend
func (c *AnalyticsClient) GetClusters() (*analyticsdomain.ClustersResponse, error) {
	body, err := c.get("/v1/clusters")
	if err != nil {
		logrus.WithError(err).Error("analytics: erro ao buscar clusters de audiência")
		return nil, err
	}

	var response analyticsdomain.ClustersResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar clusters")
	}

	return &response, nil
}
