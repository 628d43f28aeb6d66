package contact

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/mjsalles/alertahub-backend/internal/domain"
)

var _ contactRepo = &contactRepoMock{}

type contactRepoMock struct {
	CreateFunc  func(ctx context.Context, contact *domain.Contact) (*domain.Contact, error)
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Contact, error)
	ListFunc    func(ctx context.Context, filter domain.ContactFilter) ([]*domain.Contact, error)

	calls struct {
		Create []struct {
			Ctx     context.Context
			Contact *domain.Contact
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		List []struct {
			Ctx    context.Context
			Filter domain.ContactFilter
		}
	}
	lockCreate  sync.RWMutex
	lockGetByID sync.RWMutex
	lockList    sync.RWMutex
}

func (mock *contactRepoMock) Create(ctx context.Context, contact *domain.Contact) (*domain.Contact, error) {
	if mock.CreateFunc == nil {
		panic("contactRepoMock.CreateFunc: method is nil but contactRepo.Create was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Contact *domain.Contact
	}{Ctx: ctx, Contact: contact}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, contact)
}

func (mock *contactRepoMock) CreateCalls() []struct {
	Ctx     context.Context
	Contact *domain.Contact
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *contactRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Contact, error) {
	if mock.GetByIDFunc == nil {
		panic("contactRepoMock.GetByIDFunc: method is nil but contactRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *contactRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *contactRepoMock) List(ctx context.Context, filter domain.ContactFilter) ([]*domain.Contact, error) {
	if mock.ListFunc == nil {
		panic("contactRepoMock.ListFunc: method is nil but contactRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.ContactFilter
	}{Ctx: ctx, Filter: filter}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, filter)
}

func (mock *contactRepoMock) ListCalls() []struct {
	Ctx    context.Context
	Filter domain.ContactFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}
