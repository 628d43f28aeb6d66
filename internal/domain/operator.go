package domain

import (
	"time"

	"github.com/google/uuid"
)

// Operator is a dashboard user who may register contacts and send alerts.
// Email is stored lower-cased and is unique.
type Operator struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Name         string
	CreatedAt    time.Time
}
