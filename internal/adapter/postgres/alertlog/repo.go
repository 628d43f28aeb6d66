// Package alertlog implements the alert delivery log using PostgreSQL.
// The log is append-only: records are written once per delivery attempt and
// the repository exposes no update or delete operations.
package alertlog

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/mjsalles/alertahub-backend/internal/adapter/postgres"
	"github.com/mjsalles/alertahub-backend/internal/domain"
)

// Repo provides delivery record persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new alert log repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const recordColumns = `id, contact_id, contact_name, phone, message, status, error_message, provider_message_id, created_at`

const createSQL = `
INSERT INTO alert_log (id, contact_id, contact_name, phone, message, status, error_message, provider_message_id, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING ` + recordColumns

const listRecentSQL = `
SELECT ` + recordColumns + `
FROM alert_log
ORDER BY created_at DESC, id
LIMIT $1`

// Create appends a delivery record and returns the persisted row.
func (r *Repo) Create(ctx context.Context, record *domain.DeliveryRecord) (*domain.DeliveryRecord, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	createdAt := record.CreatedAt.UTC().Truncate(time.Microsecond)

	row := querier.QueryRow(ctx, createSQL,
		record.ID,
		record.ContactID,
		record.ContactName,
		record.Phone,
		record.Message,
		string(record.Status),
		record.ErrorMessage,
		record.ProviderMessageID,
		createdAt,
	)

	created, err := scanRecord(row)
	if err != nil {
		return nil, postgres.MapError(err, "delivery_record", record.ID.String())
	}

	return created, nil
}

// ListRecent returns the newest delivery records, newest first.
func (r *Repo) ListRecent(ctx context.Context, limit int) ([]*domain.DeliveryRecord, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listRecentSQL, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent delivery records: %w", err)
	}
	defer rows.Close()

	var records []*domain.DeliveryRecord
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("list recent delivery records: %w", err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list recent delivery records: %w", err)
	}

	return records, nil
}

// scanRecord scans a single delivery record row from pgx.Row.
func scanRecord(row pgx.Row) (*domain.DeliveryRecord, error) {
	var (
		rec    domain.DeliveryRecord
		status string
	)

	if err := row.Scan(
		&rec.ID,
		&rec.ContactID,
		&rec.ContactName,
		&rec.Phone,
		&rec.Message,
		&status,
		&rec.ErrorMessage,
		&rec.ProviderMessageID,
		&rec.CreatedAt,
	); err != nil {
		return nil, err
	}

	rec.Status = domain.DeliveryStatus(status)

	return &rec, nil
}
