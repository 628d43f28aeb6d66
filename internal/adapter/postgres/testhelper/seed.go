package testhelper

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mjsalles/alertahub-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// uniquePhone returns a valid, effectively unique 13-digit phone number.
func uniquePhone() string {
	return fmt.Sprintf("55%011d", time.Now().UnixNano()%100000000000)
}

// SeedOperator creates an operator row with a fixed bcrypt hash of "password".
// Returns a filled domain.Operator.
func SeedOperator(t *testing.T, pool *pgxpool.Pool) domain.Operator {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	op := domain.Operator{
		ID:    uuid.New(),
		Email: "operator-" + suffix + "@example.com",
		// bcrypt("password"), cost 10. Precomputed so seeding stays cheap.
		PasswordHash: "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy",
		Name:         "Operator " + suffix,
		CreatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO operators (id, email, password_hash, name, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		op.ID, op.Email, op.PasswordHash, op.Name, op.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedOperator insert operator: %v", err)
	}

	return op
}

// SeedContact creates a contact row with a unique valid phone.
// Returns a filled domain.Contact.
func SeedContact(t *testing.T, pool *pgxpool.Pool) domain.Contact {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	contact := domain.Contact{
		ID:        uuid.New(),
		Name:      "Contact " + suffix,
		Alias:     "alias-" + suffix,
		Phone:     uniquePhone(),
		Notes:     "seeded contact",
		CreatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO contacts (id, name, alias, phone, notes, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		contact.ID, contact.Name, contact.Alias, contact.Phone, contact.Notes, contact.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedContact insert contact: %v", err)
	}

	return contact
}

// SeedDeliveryRecord creates an alert_log row snapshotting the given contact.
// Returns a filled domain.DeliveryRecord.
func SeedDeliveryRecord(t *testing.T, pool *pgxpool.Pool, contact domain.Contact, status domain.DeliveryStatus) domain.DeliveryRecord {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	rec := domain.DeliveryRecord{
		ID:          uuid.New(),
		ContactID:   contact.ID,
		ContactName: contact.Name,
		Phone:       contact.Phone,
		Message:     "seeded alert " + uniqueSuffix(),
		Status:      status,
		CreatedAt:   now,
	}
	if status == domain.StatusSuccess {
		rec.ProviderMessageID = "wamid." + uniqueSuffix()
	}
	if status == domain.StatusFailed {
		rec.ErrorMessage = "provider rejected message"
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO alert_log (id, contact_id, contact_name, phone, message, status, error_message, provider_message_id, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		rec.ID, rec.ContactID, rec.ContactName, rec.Phone, rec.Message, string(rec.Status),
		rec.ErrorMessage, rec.ProviderMessageID, rec.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedDeliveryRecord insert alert_log: %v", err)
	}

	return rec
}
