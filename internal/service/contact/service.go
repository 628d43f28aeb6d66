// Package contact implements contact registration and lookup on top of the
// contact repository.
package contact

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/mjsalles/alertahub-backend/internal/domain"
)

// contactRepo defines the repository interface needed by the contact service.
type contactRepo interface {
	Create(ctx context.Context, contact *domain.Contact) (*domain.Contact, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Contact, error)
	List(ctx context.Context, filter domain.ContactFilter) ([]*domain.Contact, error)
}

// Service implements contact operations.
type Service struct {
	log  *slog.Logger
	repo contactRepo
}

// NewService creates a new contact service instance.
func NewService(logger *slog.Logger, repo contactRepo) *Service {
	return &Service{
		log:  logger.With("service", "contact"),
		repo: repo,
	}
}

// Register validates and stores a new contact. The phone number is reduced
// to its canonical digits-only form before persisting; alias and notes
// default to empty strings.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*domain.Contact, error) {
	input.Normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	contact := &domain.Contact{
		ID:        uuid.New(),
		Name:      input.Name,
		Alias:     input.Alias,
		Phone:     input.Phone,
		Notes:     input.Notes,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, contact)
	if err != nil {
		return nil, fmt.Errorf("contact.Register: %w", err)
	}

	s.log.InfoContext(ctx, "contact registered",
		slog.String("contact_id", created.ID.String()),
	)

	return created, nil
}

// Get returns a contact by id. Returns domain.ErrNotFound if absent.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Contact, error) {
	contact, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("contact.Get: %w", err)
	}
	return contact, nil
}

// List returns contacts matching the optional free-text query, newest first.
func (s *Service) List(ctx context.Context, query string) ([]*domain.Contact, error) {
	contacts, err := s.repo.List(ctx, domain.ContactFilter{Query: query})
	if err != nil {
		return nil, fmt.Errorf("contact.List: %w", err)
	}
	return contacts, nil
}
