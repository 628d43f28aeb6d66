package alert

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/mjsalles/alertahub-backend/internal/domain"
)

var _ contactGetter = &contactGetterMock{}

type contactGetterMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Contact, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
}

func (mock *contactGetterMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Contact, error) {
	if mock.GetByIDFunc == nil {
		panic("contactGetterMock.GetByIDFunc: method is nil but contactGetter.GetByID was just called")
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

func (mock *contactGetterMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}
