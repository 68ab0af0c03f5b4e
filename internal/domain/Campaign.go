package domain

// Campaign representa uma campanha de marketing retornada pelo backend de
// analytics para a tabela de campanhas do dashboard.
type Campaign struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	Channel            string   `json:"channel,omitempty"`
	Audience           string   `json:"audience,omitempty"`
	CampaignCount      *float64 `json:"campaign_count,omitempty"`
	AvgAcquisitionCost *float64 `json:"avg_acquisition_cost,omitempty"`
	TotalSpend         *float64 `json:"total_spend,omitempty"`
}

// DeriveTotalSpend preenche o campo calculado total_spend quando o backend
// não o reporta: total_spend = avg_acquisition_cost * campaign_count.
// Se algum insumo estiver ausente, o campo permanece nil (nunca zero).
func (c *Campaign) DeriveTotalSpend() {
	if c.TotalSpend != nil {
		return
	}

	if c.AvgAcquisitionCost == nil || c.CampaignCount == nil {
		return
	}

	total := *c.AvgAcquisitionCost * *c.CampaignCount
	c.TotalSpend = &total
}
