package alert

import (
	"context"
	"sync"

	"github.com/mjsalles/alertahub-backend/internal/domain"
)

var _ deliveryLog = &deliveryLogMock{}

type deliveryLogMock struct {
	CreateFunc     func(ctx context.Context, record *domain.DeliveryRecord) (*domain.DeliveryRecord, error)
	ListRecentFunc func(ctx context.Context, limit int) ([]*domain.DeliveryRecord, error)

	calls struct {
		Create []struct {
			Ctx    context.Context
			Record *domain.DeliveryRecord
		}
		ListRecent []struct {
			Ctx   context.Context
			Limit int
		}
	}
	lockCreate     sync.RWMutex
	lockListRecent sync.RWMutex
}

func (mock *deliveryLogMock) Create(ctx context.Context, record *domain.DeliveryRecord) (*domain.DeliveryRecord, error) {
	if mock.CreateFunc == nil {
		panic("deliveryLogMock.CreateFunc: method is nil but deliveryLog.Create was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Record *domain.DeliveryRecord
	}{Ctx: ctx, Record: record}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, record)
}

func (mock *deliveryLogMock) CreateCalls() []struct {
	Ctx    context.Context
	Record *domain.DeliveryRecord
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *deliveryLogMock) ListRecent(ctx context.Context, limit int) ([]*domain.DeliveryRecord, error) {
	if mock.ListRecentFunc == nil {
		panic("deliveryLogMock.ListRecentFunc: method is nil but deliveryLog.ListRecent was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Limit int
	}{Ctx: ctx, Limit: limit}
	mock.lockListRecent.Lock()
	mock.calls.ListRecent = append(mock.calls.ListRecent, callInfo)
	mock.lockListRecent.Unlock()
	return mock.ListRecentFunc(ctx, limit)
}

func (mock *deliveryLogMock) ListRecentCalls() []struct {
	Ctx   context.Context
	Limit int
} {
	mock.lockListRecent.RLock()
	calls := mock.calls.ListRecent
	mock.lockListRecent.RUnlock()
	return calls
}
