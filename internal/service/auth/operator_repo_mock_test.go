package auth

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/mjsalles/alertahub-backend/internal/domain"
)

var _ operatorRepo = &operatorRepoMock{}

type operatorRepoMock struct {
	CreateFunc     func(ctx context.Context, operator *domain.Operator) (*domain.Operator, error)
	GetByIDFunc    func(ctx context.Context, id uuid.UUID) (*domain.Operator, error)
	GetByEmailFunc func(ctx context.Context, email string) (*domain.Operator, error)

	calls struct {
		Create []struct {
			Ctx      context.Context
			Operator *domain.Operator
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetByEmail []struct {
			Ctx   context.Context
			Email string
		}
	}
	lockCreate     sync.RWMutex
	lockGetByID    sync.RWMutex
	lockGetByEmail sync.RWMutex
}

func (mock *operatorRepoMock) Create(ctx context.Context, operator *domain.Operator) (*domain.Operator, error) {
	if mock.CreateFunc == nil {
		panic("operatorRepoMock.CreateFunc: method is nil but operatorRepo.Create was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Operator *domain.Operator
	}{Ctx: ctx, Operator: operator}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, operator)
}

func (mock *operatorRepoMock) CreateCalls() []struct {
	Ctx      context.Context
	Operator *domain.Operator
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *operatorRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Operator, error) {
	if mock.GetByIDFunc == nil {
		panic("operatorRepoMock.GetByIDFunc: method is nil but operatorRepo.GetByID was just called")
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

func (mock *operatorRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *operatorRepoMock) GetByEmail(ctx context.Context, email string) (*domain.Operator, error) {
	if mock.GetByEmailFunc == nil {
		panic("operatorRepoMock.GetByEmailFunc: method is nil but operatorRepo.GetByEmail was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Email string
	}{Ctx: ctx, Email: email}
	mock.lockGetByEmail.Lock()
	mock.calls.GetByEmail = append(mock.calls.GetByEmail, callInfo)
	mock.lockGetByEmail.Unlock()
	return mock.GetByEmailFunc(ctx, email)
}

func (mock *operatorRepoMock) GetByEmailCalls() []struct {
	Ctx   context.Context
	Email string
} {
	mock.lockGetByEmail.RLock()
	calls := mock.calls.GetByEmail
	mock.lockGetByEmail.RUnlock()
	return calls
}
