package analyticsclient

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	analyticsdomain "github.com/vfg2006/marketing-dashboard-api/infrastructure/integrator/analytics/domain"
)

// GetCampaigns busca a lista de campanhas para a tabela do dashboard
func (c *AnalyticsClient) GetCampaigns() (*analyticsdomain.CampaignsResponse, error) {
	body, err := c.get("/v1/campaigns")
	if err != nil {
		logrus.WithError(err).Error("analytics: erro ao buscar campanhas")
		return nil, err
	}

	var response analyticsdomain.CampaignsResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar campanhas")
	}

	return &response, nil
}
