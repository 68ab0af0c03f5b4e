package analytics

import (
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketing-dashboard-api/infrastructure/integrator/analytics/analyticsclient"
	analyticsdomain "github.com/vfg2006/marketing-dashboard-api/infrastructure/integrator/analytics/domain"
	"github.com/vfg2006/marketing-dashboard-api/internal/config"
	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
	"github.com/vfg2006/marketing-dashboard-api/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

// AnalyticsIntegrator define a interface para obter dados agregados do backend de analytics
type AnalyticsIntegrator interface {
	// GetAudiencePerformance obtém os registros mensais de todos os segmentos de audiência
	GetAudiencePerformance() ([]*domain.EntityInsight, error)

	// GetChannelPerformance obtém os registros mensais de todos os canais
	GetChannelPerformance() ([]*domain.EntityInsight, error)

	// GetCampaigns obtém a lista de campanhas
	GetCampaigns() ([]*domain.Campaign, error)

	// GetClusterRows obtém os clusters de audiência já transformados em linhas de exibição
	GetClusterRows() ([]*domain.ClusterRow, error)
}

type Integrator struct {
	cfg    *config.Config
	Client analyticsclient.Client
}

func New(cfg *config.Config, client analyticsclient.Client) *Integrator {
	return &Integrator{
		cfg:    cfg,
		Client: client,
	}
}

func (s *Integrator) GetAudiencePerformance() ([]*domain.EntityInsight, error) {
	resp, err := s.Client.GetAudiencePerformance()
	if err != nil {
		return nil, err
	}

	return factoryEntityInsights(resp), nil
}

func (s *Integrator) GetChannelPerformance() ([]*domain.EntityInsight, error) {
	resp, err := s.Client.GetChannelPerformance()
	if err != nil {
		return nil, err
	}

	return factoryEntityInsights(resp), nil
}

// GetCampaigns mapeia as campanhas do backend, derivando o total_spend
// quando o backend não o reporta
func (s *Integrator) GetCampaigns() ([]*domain.Campaign, error) {
	resp, err := s.Client.GetCampaigns()
	if err != nil {
		return nil, err
	}

	campaigns := make([]*domain.Campaign, 0, len(resp.Campaigns))
	for _, raw := range resp.Campaigns {
		campaign := &domain.Campaign{
			ID:                 raw.ID,
			Name:               raw.Name,
			Channel:            raw.Channel,
			Audience:           raw.Audience,
			CampaignCount:      raw.CampaignCount,
			AvgAcquisitionCost: raw.AvgAcquisitionCost,
			TotalSpend:         raw.TotalSpend,
		}
		campaign.DeriveTotalSpend()
		campaigns = append(campaigns, campaign)
	}

	return campaigns, nil
}

// GetClusterRows transforma a resposta da API de clusters nas linhas de
// exibição do dashboard, calculando a participação de cada cluster no
// investimento total
func (s *Integrator) GetClusterRows() ([]*domain.ClusterRow, error) {
	resp, err := s.Client.GetClusters()
	if err != nil {
		return nil, err
	}

	totalSpend := 0.0
	for _, cluster := range resp.Clusters {
		if cluster.Metrics.TotalSpend != nil {
			totalSpend += *cluster.Metrics.TotalSpend
		}
	}

	rows := make([]*domain.ClusterRow, 0, len(resp.Clusters))
	for _, cluster := range resp.Clusters {
		row := &domain.ClusterRow{
			ClusterID:   cluster.ID,
			Label:       cluster.Label,
			EntityCount: len(cluster.Entities),
			AvgROI:      cluster.Metrics.AvgROI,
			AvgCPA:      cluster.Metrics.AvgCPA,
			AvgCTR:      cluster.Metrics.AvgCTR,
		}

		if cluster.Metrics.TotalSpend != nil && totalSpend > 0 {
			share := utils.RoundWithTwoDecimalPlace(*cluster.Metrics.TotalSpend / totalSpend * 100)
			row.ShareOfSpend = &share
		}

		rows = append(rows, row)
	}

	logrus.WithField("clusters", len(rows)).Debug("analytics: clusters transformados em linhas de exibição")
	return rows, nil
}

// factoryEntityInsights converte a resposta bruta do backend para o domínio
// interno. A única validação é a presença do id; registros malformados são
// responsabilidade do construtor de séries.
func factoryEntityInsights(resp *analyticsdomain.PerformanceResponse) []*domain.EntityInsight {
	if resp == nil {
		return nil
	}

	entities := make([]*domain.EntityInsight, 0, len(resp.Entities))
	for _, raw := range resp.Entities {
		if raw.ID == "" {
			logrus.Warn("analytics: entidade sem id descartada na conversão")
			continue
		}

		records := make([]*domain.MonthlyMetrics, 0, len(raw.MonthlyRecords))
		for _, record := range raw.MonthlyRecords {
			records = append(records, &domain.MonthlyMetrics{
				Month:           record.Month,
				ROI:             record.ROI,
				ConversionRate:  record.ConversionRate,
				AcquisitionCost: record.AcquisitionCost,
				CTR:             record.CTR,
				Clicks:          record.Clicks,
				CampaignCount:   record.CampaignCount,
				TotalSpend:      record.TotalSpend,
			})
		}

		entities = append(entities, &domain.EntityInsight{
			ID:             raw.ID,
			Name:           raw.Name,
			MonthlyRecords: records,
		})
	}

	return entities
}
