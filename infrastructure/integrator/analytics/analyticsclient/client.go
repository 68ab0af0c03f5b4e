package analyticsclient

import (
	"fmt"
	"io"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	analyticsdomain "github.com/vfg2006/marketing-dashboard-api/infrastructure/integrator/analytics/domain"
	"github.com/vfg2006/marketing-dashboard-api/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Client define as chamadas disponíveis no backend de analytics.
// Cada busca lógica é uma única requisição: não há retry interno, apenas o
// timeout configurável do cliente HTTP.
type Client interface {
	GetAudiencePerformance() (*analyticsdomain.PerformanceResponse, error)
	GetChannelPerformance() (*analyticsdomain.PerformanceResponse, error)
	GetCampaigns() (*analyticsdomain.CampaignsResponse, error)
	GetClusters() (*analyticsdomain.ClustersResponse, error)
}

type AnalyticsClient struct {
	Cfg        *config.Config
	HTTPClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	return &AnalyticsClient{
		Cfg: cfg,
		HTTPClient: &http.Client{
			Timeout: time.Duration(cfg.Analytics.TimeoutSeconds) * time.Second,
		},
	}
}

// get faz uma requisição autenticada ao backend e devolve o corpo em caso de 2xx
func (c *AnalyticsClient) get(path string) ([]byte, error) {
	url := fmt.Sprintf("%s%s", c.Cfg.Analytics.BaseURL, path)

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar a requisição")
	}

	req.Header.Set("Authorization", "Bearer "+c.Cfg.Analytics.APIKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao chamar o backend de analytics: %s", path)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler a resposta do backend de analytics")
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.Errorf("backend de analytics retornou status %d para %s: %s", resp.StatusCode, path, body)
	}

	return body, nil
}
