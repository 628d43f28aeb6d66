package domain

import (
	"time"

	"github.com/google/uuid"
)

// DeliveryStatus is the outcome of a single delivery attempt. The values are
// the exact strings carried on the wire and stored in the alert log.
type DeliveryStatus string

const (
	// StatusSuccess means the provider accepted the message.
	StatusSuccess DeliveryStatus = "SUCCESS"
	// StatusFailed means the provider rejected the message or the call failed.
	StatusFailed DeliveryStatus = "FAILED"
	// StatusPendingConfig means provider credentials are still the
	// administrative placeholder; nothing was sent.
	StatusPendingConfig DeliveryStatus = "PENDING_CONFIG"
	// StatusNotFound means the target contact does not exist.
	StatusNotFound DeliveryStatus = "NOT_FOUND"
	// StatusError means an unexpected fault occurred while processing the
	// contact (store unavailable, malformed provider response, ...).
	StatusError DeliveryStatus = "ERROR"
)

// String implements fmt.Stringer.
func (s DeliveryStatus) String() string { return string(s) }

// IsSuccess reports whether the status counts as a successful delivery.
func (s DeliveryStatus) IsSuccess() bool { return s == StatusSuccess }

// DeliveryRecord is one append-only row of the alert log: a delivery attempt
// with a snapshot of the contact at send time. Records are never updated or
// deleted; later contact edits must not rewrite history.
type DeliveryRecord struct {
	ID                uuid.UUID
	ContactID         uuid.UUID
	ContactName       string
	Phone             string
	Message           string
	Status            DeliveryStatus
	ErrorMessage      string
	ProviderMessageID string
	CreatedAt         time.Time
}
