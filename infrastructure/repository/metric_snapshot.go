package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/marketing-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
)

const (
	metricSnapshotsTable = "metric_snapshots ms"
)

//go:generate mockgen -source=metric_snapshot.go -destination=mocks/metric_snapshot.go -package=mocks

// MetricSnapshotRepository é o cache local dos snapshots mensais de métricas
// já agregadas pelo backend de analytics
type MetricSnapshotRepository interface {
	GetByTypeAndPeriod(entityType domain.EntityType, period string) ([]*domain.MetricSnapshotEntry, error)
	GetByEntityAndPeriod(entityID string, entityType domain.EntityType, period string) (*domain.MetricSnapshotEntry, error)
	SaveOrUpdate(snapshot *domain.MetricSnapshotEntry) error
	DeleteOlderThan(months int) (int64, error)
	GetAllPeriods() ([]string, error)
}

type metricSnapshotRepository struct {
	conn postgres.Queryer
}

func NewMetricSnapshotRepository(conn postgres.Queryer) MetricSnapshotRepository {
	return &metricSnapshotRepository{
		conn: conn,
	}
}

func (r *metricSnapshotRepository) GetByTypeAndPeriod(entityType domain.EntityType, period string) ([]*domain.MetricSnapshotEntry, error) {
	query, args, err := squirrel.
		Select("ms.id, ms.entity_id, ms.entity_type, ms.entity_name, ms.period, ms.metrics, ms.created_at, ms.updated_at").
		From(metricSnapshotsTable).
		Where(squirrel.Eq{"ms.entity_type": entityType, "ms.period": period}).
		OrderBy("ms.entity_id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	snapshots := make([]*domain.MetricSnapshotEntry, 0)
	for rows.Next() {
		snapshot, err := r.scanSnapshotRows(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear metric snapshots: %w", err)
		}
		snapshots = append(snapshots, snapshot)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return snapshots, nil
}

func (r *metricSnapshotRepository) GetByEntityAndPeriod(entityID string, entityType domain.EntityType, period string) (*domain.MetricSnapshotEntry, error) {
	query, args, err := squirrel.
		Select("ms.id, ms.entity_id, ms.entity_type, ms.entity_name, ms.period, ms.metrics, ms.created_at, ms.updated_at").
		From(metricSnapshotsTable).
		Where(squirrel.Eq{"ms.entity_id": entityID, "ms.entity_type": entityType, "ms.period": period}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	snapshot, err := r.scanSnapshot(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear metric snapshot: %w", err)
	}

	return snapshot, nil
}

func (r *metricSnapshotRepository) SaveOrUpdate(snapshot *domain.MetricSnapshotEntry) error {
	var metricsJSON []byte
	var err error

	if snapshot.Metrics != nil {
		metricsJSON, err = json.Marshal(snapshot.Metrics)
		if err != nil {
			return fmt.Errorf("erro ao serializar métricas para JSON: %w", err)
		}
	}

	query := squirrel.StatementBuilder.
		Insert("metric_snapshots").
		Columns("entity_id", "entity_type", "entity_name", "period", "metrics").
		Values(
			snapshot.EntityID,
			snapshot.EntityType,
			snapshot.EntityName,
			snapshot.Period,
			metricsJSON,
		).
		Suffix(`
			ON CONFLICT (entity_id, entity_type, period) DO UPDATE SET
				entity_name = EXCLUDED.entity_name,
				metrics = EXCLUDED.metrics,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *metricSnapshotRepository) DeleteOlderThan(months int) (int64, error) {
	// O período é mm-yyyy, então a comparação precisa reordenar para ano+mês
	cutoffTime := time.Now().AddDate(0, -months, 0)
	cutoff := fmt.Sprintf("%04d%02d", cutoffTime.Year(), int(cutoffTime.Month()))

	query := squirrel.Delete("metric_snapshots").
		Where(squirrel.Expr("substring(period from 4 for 4) || substring(period from 1 for 2) < ?", cutoff)).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(sqlQuery, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}

func (r *metricSnapshotRepository) GetAllPeriods() ([]string, error) {
	query, args, err := squirrel.
		Select("DISTINCT ms.period").
		From(metricSnapshotsTable).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	periods := make([]string, 0)
	for rows.Next() {
		var period string
		if err := rows.Scan(&period); err != nil {
			return nil, fmt.Errorf("erro ao escanear período: %w", err)
		}
		periods = append(periods, period)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	// Ordenar cronologicamente: o período é mm-yyyy, então comparar por ano primeiro
	sort.Slice(periods, func(i, j int) bool {
		pi := strings.SplitN(periods[i], "-", 2)
		pj := strings.SplitN(periods[j], "-", 2)
		if len(pi) == 2 && len(pj) == 2 && pi[1] != pj[1] {
			return pi[1] < pj[1]
		}
		return periods[i] < periods[j]
	})

	return periods, nil
}

func (r *metricSnapshotRepository) scanSnapshot(row *sql.Row) (*domain.MetricSnapshotEntry, error) {
	snapshot := &domain.MetricSnapshotEntry{}
	var metricsJSON []byte

	err := row.Scan(
		&snapshot.ID,
		&snapshot.EntityID,
		&snapshot.EntityType,
		&snapshot.EntityName,
		&snapshot.Period,
		&metricsJSON,
		&snapshot.CreatedAt,
		&snapshot.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if metricsJSON != nil {
		metrics := &domain.MonthlyMetrics{}
		if err := json.Unmarshal(metricsJSON, metrics); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de metrics: %w", err)
		}
		snapshot.Metrics = metrics
	}

	return snapshot, nil
}

func (r *metricSnapshotRepository) scanSnapshotRows(rows *sql.Rows) (*domain.MetricSnapshotEntry, error) {
	snapshot := &domain.MetricSnapshotEntry{}
	var metricsJSON []byte

	err := rows.Scan(
		&snapshot.ID,
		&snapshot.EntityID,
		&snapshot.EntityType,
		&snapshot.EntityName,
		&snapshot.Period,
		&metricsJSON,
		&snapshot.CreatedAt,
		&snapshot.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if metricsJSON != nil {
		metrics := &domain.MonthlyMetrics{}
		if err := json.Unmarshal(metricsJSON, metrics); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de metrics: %w", err)
		}
		snapshot.Metrics = metrics
	}

	return snapshot, nil
}
