package auth

import (
	"sync"

	internalauth "github.com/mjsalles/alertahub-backend/internal/auth"
)

var _ jwtManager = &jwtManagerMock{}

type jwtManagerMock struct {
	GenerateFunc func(identity internalauth.Identity) (string, error)
	ValidateFunc func(token string) (internalauth.Identity, error)

	calls struct {
		Generate []struct {
			Identity internalauth.Identity
		}
		Validate []struct {
			Token string
		}
	}
	lockGenerate sync.RWMutex
	lockValidate sync.RWMutex
}

func (mock *jwtManagerMock) Generate(identity internalauth.Identity) (string, error) {
	if mock.GenerateFunc == nil {
		panic("jwtManagerMock.GenerateFunc: method is nil but jwtManager.Generate was just called")
	}
	callInfo := struct {
		Identity internalauth.Identity
	}{Identity: identity}
	mock.lockGenerate.Lock()
	mock.calls.Generate = append(mock.calls.Generate, callInfo)
	mock.lockGenerate.Unlock()
	return mock.GenerateFunc(identity)
}

func (mock *jwtManagerMock) GenerateCalls() []struct {
	Identity internalauth.Identity
} {
	mock.lockGenerate.RLock()
	calls := mock.calls.Generate
	mock.lockGenerate.RUnlock()
	return calls
}

func (mock *jwtManagerMock) Validate(token string) (internalauth.Identity, error) {
	if mock.ValidateFunc == nil {
		panic("jwtManagerMock.ValidateFunc: method is nil but jwtManager.Validate was just called")
	}
	callInfo := struct {
		Token string
	}{Token: token}
	mock.lockValidate.Lock()
	mock.calls.Validate = append(mock.calls.Validate, callInfo)
	mock.lockValidate.Unlock()
	return mock.ValidateFunc(token)
}

func (mock *jwtManagerMock) ValidateCalls() []struct {
	Token string
} {
	mock.lockValidate.RLock()
	calls := mock.calls.Validate
	mock.lockValidate.RUnlock()
	return calls
}
