package domain

// MonthlyMetrics representa as métricas reportadas de uma entidade para um mês do calendário.
// O backend de analytics envia apenas o número do mês (1-12), sem ano explícito;
// os campos numéricos são opcionais e podem vir ausentes para qualquer registro.
type MonthlyMetrics struct {
	Month           int      `json:"month"`
	ROI             *float64 `json:"roi,omitempty"`
	ConversionRate  *float64 `json:"conversion_rate,omitempty"`
	AcquisitionCost *float64 `json:"acquisition_cost,omitempty"`
	CTR             *float64 `json:"ctr,omitempty"`
	Clicks          *float64 `json:"clicks,omitempty"`
	CampaignCount   *float64 `json:"campaign_count,omitempty"`
	TotalSpend      *float64 `json:"total_spend,omitempty"`
}

// HasValidMonth indica se o registro carrega um mês de calendário válido.
// Registros sem mês (ou com mês fora de 1-12) são considerados malformados
// e descartados silenciosamente pelo construtor de séries.
func (m *MonthlyMetrics) HasValidMonth() bool {
	return m != nil && m.Month >= 1 && m.Month <= 12
}
