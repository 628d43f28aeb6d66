// Package operator implements the Operator repository using PostgreSQL.
package operator

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/mjsalles/alertahub-backend/internal/adapter/postgres"
	"github.com/mjsalles/alertahub-backend/internal/domain"
)

// Repo provides operator persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new operator repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const operatorColumns = `id, email, password_hash, name, created_at`

const createSQL = `
INSERT INTO operators (id, email, password_hash, name, created_at)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + operatorColumns

const getByIDSQL = `
SELECT ` + operatorColumns + `
FROM operators
WHERE id = $1`

const getByEmailSQL = `
SELECT ` + operatorColumns + `
FROM operators
WHERE email = $1`

// Create inserts a new operator and returns the persisted domain.Operator.
// Email uniqueness is enforced by a DB constraint; a duplicate results in
// domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, operator *domain.Operator) (*domain.Operator, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	createdAt := operator.CreatedAt.UTC().Truncate(time.Microsecond)

	row := querier.QueryRow(ctx, createSQL,
		operator.ID,
		operator.Email,
		operator.PasswordHash,
		operator.Name,
		createdAt,
	)

	created, err := scanOperator(row)
	if err != nil {
		return nil, postgres.MapError(err, "operator", operator.Email)
	}

	return created, nil
}

// GetByID returns an operator by primary key.
// Returns domain.ErrNotFound if the operator does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Operator, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, getByIDSQL, id)

	operator, err := scanOperator(row)
	if err != nil {
		return nil, postgres.MapError(err, "operator", id.String())
	}

	return operator, nil
}

// GetByEmail returns an operator by email. The caller must lower-case the
// email first; the store compares exactly.
// Returns domain.ErrNotFound if no operator has this email.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.Operator, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, getByEmailSQL, email)

	operator, err := scanOperator(row)
	if err != nil {
		return nil, postgres.MapError(err, "operator", email)
	}

	return operator, nil
}

// scanOperator scans a single operator row from pgx.Row.
func scanOperator(row pgx.Row) (*domain.Operator, error) {
	var o domain.Operator

	if err := row.Scan(&o.ID, &o.Email, &o.PasswordHash, &o.Name, &o.CreatedAt); err != nil {
		return nil, err
	}

	return &o, nil
}
