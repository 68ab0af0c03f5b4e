package insighting

import (
	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/service.go -package=mocks

// Insighter define a interface de consulta aos dados agregados que
// alimentam o dashboard
type Insighter interface {
	// GetAudiencePerformance obtém os segmentos de audiência com seus registros
	// mensais para o ano de referência
	GetAudiencePerformance(referenceYear int) ([]*domain.EntityInsight, error)

	// GetChannelPerformance obtém os canais de marketing com seus registros
	// mensais para o ano de referência
	GetChannelPerformance(referenceYear int) ([]*domain.EntityInsight, error)

	// GetCampaigns obtém a lista de campanhas com o total_spend derivado
	GetCampaigns() ([]*domain.Campaign, error)

	// GetClusterRows obtém os clusters de audiência como linhas de exibição
	GetClusterRows() ([]*domain.ClusterRow, error)

	// GetAvailablePeriods retorna os períodos (meses e anos) disponíveis na tabela de snapshots
	GetAvailablePeriods() (*domain.AvailablePeriods, error)
}
