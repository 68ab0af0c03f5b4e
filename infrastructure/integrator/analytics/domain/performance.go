package analyticsdomain

// PerformanceResponse é o corpo bruto retornado pelos endpoints de
// performance do backend de analytics
type PerformanceResponse struct {
	Entities []Entity `json:"entities"`
}

// Entity é uma entidade como reportada pelo backend: id estável e lista
// esparsa de registros mensais
type Entity struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	MonthlyRecords []MonthlyRecord `json:"monthlyRecords"`
}

// MonthlyRecord carrega os campos numéricos opcionais de um mês.
// O backend omite campos sem dado em vez de enviar zero.
type MonthlyRecord struct {
	Month           int      `json:"month"`
	ROI             *float64 `json:"roi,omitempty"`
	ConversionRate  *float64 `json:"conversion_rate,omitempty"`
	AcquisitionCost *float64 `json:"acquisition_cost,omitempty"`
	CTR             *float64 `json:"ctr,omitempty"`
	Clicks          *float64 `json:"clicks,omitempty"`
	CampaignCount   *float64 `json:"campaign_count,omitempty"`
	TotalSpend      *float64 `json:"total_spend,omitempty"`
}
