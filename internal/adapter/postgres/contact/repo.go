// Package contact implements the Contact repository using PostgreSQL.
package contact

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/mjsalles/alertahub-backend/internal/adapter/postgres"
	"github.com/mjsalles/alertahub-backend/internal/domain"
)

// Repo provides contact persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new contact repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const contactColumns = `id, name, alias, phone, notes, created_at`

const createSQL = `
INSERT INTO contacts (id, name, alias, phone, notes, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + contactColumns

const getByIDSQL = `
SELECT ` + contactColumns + `
FROM contacts
WHERE id = $1`

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new contact and returns the persisted domain.Contact.
// The caller is expected to have normalized the phone; the digits-only shape
// is additionally enforced by a DB check constraint (domain.ErrValidation on
// violation).
func (r *Repo) Create(ctx context.Context, contact *domain.Contact) (*domain.Contact, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	createdAt := contact.CreatedAt.UTC().Truncate(time.Microsecond)

	row := querier.QueryRow(ctx, createSQL,
		contact.ID,
		contact.Name,
		contact.Alias,
		contact.Phone,
		contact.Notes,
		createdAt,
	)

	created, err := scanContact(row)
	if err != nil {
		return nil, postgres.MapError(err, "contact", contact.ID.String())
	}

	return created, nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a contact by primary key.
// Returns domain.ErrNotFound if the contact does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Contact, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, getByIDSQL, id)

	contact, err := scanContact(row)
	if err != nil {
		return nil, postgres.MapError(err, "contact", id.String())
	}

	return contact, nil
}

// List returns contacts matching the filter, newest first. The free-text
// query matches name, alias and phone case-insensitively. Ordering includes
// the primary key so pages are deterministic for equal timestamps.
func (r *Repo) List(ctx context.Context, filter domain.ContactFilter) ([]*domain.Contact, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	builder := sq.Select("id", "name", "alias", "phone", "notes", "created_at").
		From("contacts").
		OrderBy("created_at DESC", "id").
		PlaceholderFormat(sq.Dollar)

	if filter.Query != "" {
		pattern := "%" + filter.Query + "%"
		builder = builder.Where(sq.Or{
			sq.ILike{"name": pattern},
			sq.ILike{"alias": pattern},
			sq.ILike{"phone": pattern},
		})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build contact list query: %w", err)
	}

	rows, err := querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	defer rows.Close()

	contacts, err := scanContacts(rows)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}

	return contacts, nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

// scanContact scans a single contact row from pgx.Row.
func scanContact(row pgx.Row) (*domain.Contact, error) {
	var c domain.Contact

	if err := row.Scan(&c.ID, &c.Name, &c.Alias, &c.Phone, &c.Notes, &c.CreatedAt); err != nil {
		return nil, err
	}

	return &c, nil
}

// scanContacts scans all contact rows from pgx.Rows.
func scanContacts(rows pgx.Rows) ([]*domain.Contact, error) {
	var contacts []*domain.Contact

	for rows.Next() {
		contact, err := scanContact(rows)
		if err != nil {
			return nil, err
		}
		contacts = append(contacts, contact)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return contacts, nil
}
