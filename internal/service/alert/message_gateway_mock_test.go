package alert

import (
	"context"
	"sync"

	"github.com/mjsalles/alertahub-backend/internal/messaging"
)

var _ messageGateway = &messageGatewayMock{}

type messageGatewayMock struct {
	SendFunc func(ctx context.Context, phone string, message string) (messaging.Result, error)

	calls struct {
		Send []struct {
			Ctx     context.Context
			Phone   string
			Message string
		}
	}
	lockSend sync.RWMutex
}

func (mock *messageGatewayMock) Send(ctx context.Context, phone string, message string) (messaging.Result, error) {
	if mock.SendFunc == nil {
		panic("messageGatewayMock.SendFunc: method is nil but messageGateway.Send was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Phone   string
		Message string
	}{Ctx: ctx, Phone: phone, Message: message}
	mock.lockSend.Lock()
	mock.calls.Send = append(mock.calls.Send, callInfo)
	mock.lockSend.Unlock()
	return mock.SendFunc(ctx, phone, message)
}

func (mock *messageGatewayMock) SendCalls() []struct {
	Ctx     context.Context
	Phone   string
	Message string
} {
	mock.lockSend.RLock()
	calls := mock.calls.Send
	mock.lockSend.RUnlock()
	return calls
}
