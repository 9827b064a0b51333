// Package memstore is the in-process substitute for the document store. It
// holds user records for the lifetime of the process only and is reset on
// restart by design.
package memstore

import (
	"context"
	"sync"

	"github.com/cafebazaar/service-gateway/pkg/gateway"
)

type memoryStore struct {
	mu    sync.Mutex
	users []gateway.User
}

func New() gateway.UserStore {
	return &memoryStore{}
}

func (m *memoryStore) ListUsers(ctx context.Context) ([]gateway.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	result := make([]gateway.User, len(m.users))
	copy(result, m.users)

	return result, nil
}

func (m *memoryStore) GetUser(ctx context.Context, id int64) (*gateway.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, user := range m.users {
		if user.ID == id {
			result := user
			return &result, nil
		}
	}

	return nil, gateway.ErrNotFound
}

// CreateUser assigns ids as current-max+1 under the mutex, so ids stay
// unique and strictly increasing no matter how many requests append
// concurrently.
func (m *memoryStore) CreateUser(ctx context.Context,
	request *gateway.CreateUserRequest) (*gateway.User, error) {

	m.mu.Lock()
	defer m.mu.Unlock()

	var maxID int64
	for _, user := range m.users {
		if user.ID > maxID {
			maxID = user.ID
		}
	}

	user := gateway.User{
		ID:    maxID + 1,
		Name:  request.Name,
		Email: request.Email,
	}
	m.users = append(m.users, user)

	return &user, nil
}
