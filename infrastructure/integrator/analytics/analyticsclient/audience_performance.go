package analyticsclient

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	analyticsdomain "github.com/vfg2006/marketing-dashboard-api/infrastructure/integrator/analytics/domain"
)

// GetAudiencePerformance busca os registros mensais de todos os segmentos de audiência
func (c *AnalyticsClient) GetAudiencePerformance() (*analyticsdomain.PerformanceResponse, error) {
	body, err := c.get("/v1/audience-performance")
	if err != nil {
		logrus.WithError(err).Error("analytics: erro ao buscar performance de audiências")
		return nil, err
	}

	var response analyticsdomain.PerformanceResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar performance de audiências")
	}

	return &response, nil
}
