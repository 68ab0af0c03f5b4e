package domain

import (
	"bytes"
	"encoding/json"
	"sort"
)

// ChartRow representa um mês do calendário na tabela densa de séries: uma
// chave de data ordenável (YYYY-MM-01) e um slot de valor por entidade.
// Dados ausentes para uma entidade naquele mês são nil, nunca zero —
// a camada de exibição renderiza ausência como "N/A".
type ChartRow struct {
	DateKey string
	Values  map[string]*float64
}

// ChartSeries é a tabela pronta para renderização: uma linha por dateKey
// distinto, ordenadas ascendentemente, uma coluna por entidade.
type ChartSeries struct {
	Rows []*ChartRow `json:"rows"`
}

// MarshalJSON achata a linha no formato esperado pelo renderizador de
// gráficos: { "dateKey": "...", "<entityId>": number|null, ... }.
// As chaves de entidade são emitidas em ordem lexicográfica para que a
// serialização seja determinística.
func (r *ChartRow) MarshalJSON() ([]byte, error) {
	ids := make([]string, 0, len(r.Values))
	for id := range r.Values {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var buf bytes.Buffer
	buf.WriteByte('{')

	key, err := json.Marshal("dateKey")
	if err != nil {
		return nil, err
	}
	buf.Write(key)
	buf.WriteByte(':')

	value, err := json.Marshal(r.DateKey)
	if err != nil {
		return nil, err
	}
	buf.Write(value)

	for _, id := range ids {
		buf.WriteByte(',')

		key, err := json.Marshal(id)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')

		value, err := json.Marshal(r.Values[id])
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// QuadrantPoint representa uma entidade posicionada em um gráfico de
// dispersão por duas métricas agregadas.
type QuadrantPoint struct {
	EntityID string  `json:"entity_id"`
	Name     string  `json:"name,omitempty"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
}

// QuadrantChart é a resposta do gráfico de quadrantes: os pontos e as
// medianas usadas como linhas de referência dos eixos.
type QuadrantChart struct {
	Points  []*QuadrantPoint `json:"points"`
	MedianX float64          `json:"median_x"`
	MedianY float64          `json:"median_y"`
}
