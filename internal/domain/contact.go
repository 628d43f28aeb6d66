package domain

import (
	"time"

	"github.com/google/uuid"
)

// Contact is a registered alert recipient. Phone is stored in canonical
// digits-only form; Alias and Notes default to empty strings.
type Contact struct {
	ID        uuid.UUID
	Name      string
	Alias     string
	Phone     string
	Notes     string
	CreatedAt time.Time
}

// ContactFilter narrows contact listing. An empty filter matches everything.
type ContactFilter struct {
	// Query is matched case-insensitively against name, alias and phone.
	Query string
}
