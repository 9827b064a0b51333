package gateway

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type Mock_UserStore struct {
	mock.Mock
}

func (m *Mock_UserStore) ListUsers(ctx context.Context) ([]User, error) {
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

func (m *Mock_UserStore) GetUser(ctx context.Context, id int64) (*User, error) {
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

func (m *Mock_UserStore) CreateUser(ctx context.Context, request *CreateUserRequest) (*User, error) {
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

type Mock_Service struct {
	mock.Mock
}

func (m *Mock_Service) ListUsers(ctx context.Context) (*UserListResponse, error) {
	ret := m.Called(ctx)

	var r0 *UserListResponse
	if rf, ok := ret.Get(0).(func(ctx context.Context) *UserListResponse); ok {
		r0 = rf(ctx)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*UserListResponse)
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

func (m *Mock_Service) GetUser(ctx context.Context, id int64) (*UserResponse, error) {
	ret := m.Called(ctx, id)

	var r0 *UserResponse
	if rf, ok := ret.Get(0).(func(ctx context.Context, id int64) *UserResponse); ok {
		r0 = rf(ctx, id)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*UserResponse)
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

func (m *Mock_Service) CreateUser(ctx context.Context, request *CreateUserRequest) (*UserResponse, error) {
	ret := m.Called(ctx, request)

	var r0 *UserResponse
	if rf, ok := ret.Get(0).(func(ctx context.Context, request *CreateUserRequest) *UserResponse); ok {
		r0 = rf(ctx, request)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*UserResponse)
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

func (m *Mock_Service) CounterValue(ctx context.Context) (*CounterResponse, error) {
	ret := m.Called(ctx)

	var r0 *CounterResponse
	if rf, ok := ret.Get(0).(func(ctx context.Context) *CounterResponse); ok {
		r0 = rf(ctx)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*CounterResponse)
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

func (m *Mock_Service) IncrementCounter(ctx context.Context) (*CounterResponse, error) {
	ret := m.Called(ctx)

	var r0 *CounterResponse
	if rf, ok := ret.Get(0).(func(ctx context.Context) *CounterResponse); ok {
		r0 = rf(ctx)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*CounterResponse)
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

func (m *Mock_Service) Publish(ctx context.Context, request *PublishRequest) error {
	ret := m.Called(ctx, request)

	var r0 error
	if rf, ok := ret.Get(0).(func(ctx context.Context, request *PublishRequest) error); ok {
		r0 = rf(ctx, request)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

func (m *Mock_Service) QueueStatus(ctx context.Context) (*QueueStatusResponse, error) {
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
