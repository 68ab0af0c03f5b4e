package analyticsdomain

// ClustersResponse é o corpo bruto do endpoint de clusters de audiência
type ClustersResponse struct {
	Clusters []Cluster `json:"clusters"`
}

// Cluster é um agrupamento de audiências calculado pelo backend
type Cluster struct {
	ID       string         `json:"id"`
	Label    string         `json:"label"`
	Entities []string       `json:"entities"`
	Metrics  ClusterMetrics `json:"metrics"`
}

// ClusterMetrics são as métricas médias do cluster
type ClusterMetrics struct {
	AvgROI     *float64 `json:"avg_roi,omitempty"`
	AvgCPA     *float64 `json:"avg_cpa,omitempty"`
	AvgCTR     *float64 `json:"avg_ctr,omitempty"`
	TotalSpend *float64 `json:"total_spend,omitempty"`
}
