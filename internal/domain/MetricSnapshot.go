package domain

import (
	"time"
)

// MetricSnapshotEntry representa um snapshot mensal de métricas de uma
// entidade armazenado no banco. Serve de cache local para os dados já
// agregados do backend de analytics.
type MetricSnapshotEntry struct {
	ID         int64           `json:"id"`
	EntityID   string          `json:"entity_id"`
	EntityType EntityType      `json:"entity_type"`
	EntityName string          `json:"entity_name,omitempty"`
	Period     string          `json:"period"` // Período no formato mm-yyyy
	Metrics    *MonthlyMetrics `json:"metrics"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}
