package domain

// ClusterRow é uma linha de exibição derivada da resposta da API de
// clusters: o dashboard mostra cada cluster de audiência como uma linha
// de tabela com suas métricas médias.
type ClusterRow struct {
	ClusterID    string   `json:"cluster_id"`
	Label        string   `json:"label"`
	EntityCount  int      `json:"entity_count"`
	AvgROI       *float64 `json:"avg_roi,omitempty"`
	AvgCPA       *float64 `json:"avg_cpa,omitempty"`
	AvgCTR       *float64 `json:"avg_ctr,omitempty"`
	ShareOfSpend *float64 `json:"share_of_spend,omitempty"`
}
