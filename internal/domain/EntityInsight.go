package domain

// EntityType identifica o tipo de entidade rastreada pelo dashboard
type EntityType string

const (
	EntityTypeAudience EntityType = "audience"
	EntityTypeChannel  EntityType = "channel"
)

// EntityInsight representa uma entidade de marketing (segmento de audiência ou
// canal) com sua lista esparsa de registros mensais de métricas.
// A lista não é necessariamente contígua nem ordenada por mês.
type EntityInsight struct {
	ID             string            `json:"id"`
	Name           string            `json:"name,omitempty"`
	MonthlyRecords []*MonthlyMetrics `json:"monthlyRecords"`
}

// IsValid indica se a entidade carrega um identificador estável.
// Entidades sem ID são descartadas pelo construtor de séries.
func (e *EntityInsight) IsValid() bool {
	return e != nil && e.ID != ""
}

// EntityPerformanceResponse é a fronteira de entrada descrita pelo backend
// de analytics: uma coleção de entidades já agregadas.
type EntityPerformanceResponse struct {
	Entities []*EntityInsight `json:"entities"`
}
