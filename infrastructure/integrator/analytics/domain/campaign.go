package analyticsdomain

// CampaignsResponse é o corpo bruto do endpoint de campanhas
type CampaignsResponse struct {
	Campaigns []Campaign `json:"campaigns"`
}

// Campaign é uma campanha como reportada pelo backend. O total_spend pode
// vir ausente — nesse caso o dashboard o deriva do custo médio de aquisição
// e da contagem de campanhas.
type Campaign struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	Channel            string   `json:"channel,omitempty"`
	Audience           string   `json:"audience,omitempty"`
	CampaignCount      *float64 `json:"campaign_count,omitempty"`
	AvgAcquisitionCost *float64 `json:"avg_acquisition_cost,omitempty"`
	TotalSpend         *float64 `json:"total_spend,omitempty"`
}
