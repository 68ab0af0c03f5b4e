package analyticsclient

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	analyticsdomain "github.com/vfg2006/marketing-dashboard-api/infrastructure/integrator/analytics/domain"
)

// GetChannelPerformance busca os registros mensais de todos os canais de marketing
func (c *AnalyticsClient) GetChannelPerformance() (*analyticsdomain.PerformanceResponse, error) {
	body, err := c.get("/v1/channel-performance")
	if err != nil {
		logrus.WithError(err).Error("analytics: erro ao buscar performance de canais")
		return nil, err
	}

	var response analyticsdomain.PerformanceResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar performance de canais")
	}

	return &response, nil
}
