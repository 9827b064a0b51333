package gateway

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type Mock_Handle struct {
	mock.Mock
}

func (m *Mock_Handle) Close() error {
	ret := m.Called()

	var r0 error
	if rf, ok := ret.Get(0).(func() error); ok {
		r0 = rf()
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

func (m *Mock_Handle) Kind() BackendKind {
	ret := m.Called()

	var r0 BackendKind
	if rf, ok := ret.Get(0).(func() BackendKind); ok {
		r0 = rf()
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(BackendKind)
		}
	}

	return r0
}

func (m *Mock_Handle) Connect(ctx context.Context) error {
	ret := m.Called(ctx)

	var r0 error
	if rf, ok := ret.Get(0).(func(ctx context.Context) error); ok {
		r0 = rf(ctx)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

func (m *Mock_Handle) OnError(err error) {
	m.Called(err)
}

func (m *Mock_Handle) OnClose() {
	m.Called()
}

func (m *Mock_Handle) IsAvailable() bool {
	ret := m.Called()

	var r0 bool
	if rf, ok := ret.Get(0).(func() bool); ok {
		r0 = rf()
	} else {
		r0 = ret.Get(0).(bool)
	}

	return r0
}

func (m *Mock_Handle) Status() Status {
	ret := m.Called()

	var r0 Status
	if rf, ok := ret.Get(0).(func() Status); ok {
		r0 = rf()
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(Status)
		}
	}

	return r0
}

type Mock_UserBackend struct {
	Mock_Handle
}

func (m *Mock_UserBackend) ListUsers(ctx context.Context) ([]User, error) {
	ret := m.Called(ctx)

	var r0 []User
	if rf, ok := ret.Get(0).(func(ctx context.Context) []User); ok {
		r0 = rf(ctx)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]User)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(ctx context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (m *Mock_UserBackend) GetUser(ctx context.Context, id int64) (*User, error) {
	ret := m.Called(ctx, id)

	var r0 *User
	if rf, ok := ret.Get(0).(func(ctx context.Context, id int64) *User); ok {
		r0 = rf(ctx, id)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*User)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(ctx context.Context, id int64) error); ok {
		r1 = rf(ctx, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (m *Mock_UserBackend) CreateUser(ctx context.Context, request *CreateUserRequest) (*User, error) {
	ret := m.Called(ctx, request)

	var r0 *User
	if rf, ok := ret.Get(0).(func(ctx context.Context, request *CreateUserRequest) *User); ok {
		r0 = rf(ctx, request)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*User)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(ctx context.Context, request *CreateUserRequest) error); ok {
		r1 = rf(ctx, request)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

type Mock_CounterBackend struct {
	Mock_Handle
}

func (m *Mock_CounterBackend) CounterValue(ctx context.Context) (int64, error) {
	ret := m.Called(ctx)

	var r0 int64
	if rf, ok := ret.Get(0).(func(ctx context.Context) int64); ok {
		r0 = rf(ctx)
	} else {
		r0 = ret.Get(0).(int64)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(ctx context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (m *Mock_CounterBackend) IncrementCounter(ctx context.Context) (int64, error) {
	ret := m.Called(ctx)

	var r0 int64
	if rf, ok := ret.Get(0).(func(ctx context.Context) int64); ok {
		r0 = rf(ctx)
	} else {
		r0 = ret.Get(0).(int64)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(ctx context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

type Mock_BrokerBackend struct {
	Mock_Handle
}

func (m *Mock_BrokerBackend) Publish(ctx context.Context, body []byte) error {
	ret := m.Called(ctx, body)

	var r0 error
	if rf, ok := ret.Get(0).(func(ctx context.Context, body []byte) error); ok {
		r0 = rf(ctx, body)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

func (m *Mock_BrokerBackend) QueueStatus(ctx context.Context) (*QueueStatusResponse, error) {
	ret := m.Called(ctx)

	var r0 *QueueStatusResponse
	if rf, ok := ret.Get(0).(func(ctx context.Context) *QueueStatusResponse); ok {
		r0 = rf(ctx)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*QueueStatusResponse)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(ctx context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}
