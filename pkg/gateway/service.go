package gateway

import (
	"context"
	"time"
)

type StoragePath string

const (
	StorageMongo  StoragePath = "mongo"
	StorageMemory StoragePath = "memory"
	StorageCache       StoragePath = "cache"
	StorageUnavailable StoragePath = "not available"
)

type User struct {
	ID    int64  `json:"id" bson:"id"`
	Name  string `json:"name" bson:"name"`
	Email string `json:"email" bson:"email"`
}

type CreateUserRequest struct {
	Name  string
	Email string
}

type UserResponse struct {
	User    *User
	Storage StoragePath
}

type UserListResponse struct {
	Users   []User
	Storage StoragePath
}

type CounterResponse struct {
	Value   int64
	Storage StoragePath
}

type PublishRequest struct {
	Body []byte
}

type QueueStatusResponse struct {
	Status    Status
	Queue     string
	Messages  int
	Consumers int
}

// UserStore is implemented both by the document store backend and by the
// in-memory substitute used while the document store is down.
type UserStore interface {
	ListUsers(ctx context.Context) ([]User, error)
	GetUser(ctx context.Context, id int64) (*User, error)
	CreateUser(ctx context.Context, request *CreateUserRequest) (*User, error)
}

type Counter interface {
	CounterValue(ctx context.Context) (int64, error)
	IncrementCounter(ctx context.Context) (int64, error)
}

type Publisher interface {
	Publish(ctx context.Context, body []byte) error
	QueueStatus(ctx context.Context) (*QueueStatusResponse, error)
}

type UserBackend interface {
	Handle
	UserStore
}

type CounterBackend interface {
	Handle
	Counter
}

type BrokerBackend interface {
	Handle
	Publisher
}

// Service is the capability surface consumed by the transport layer. Every
// operation decides per call whether to take the live backend or its
// fallback; callers never see which path was chosen except through the
// Storage marker on the response.
type Service interface {
	ListUsers(ctx context.Context) (*UserListResponse, error)
	GetUser(ctx context.Context, id int64) (*UserResponse, error)
	CreateUser(ctx context.Context, request *CreateUserRequest) (*UserResponse, error)
	CounterValue(ctx context.Context) (*CounterResponse, error)
	IncrementCounter(ctx context.Context) (*CounterResponse, error)
	Publish(ctx context.Context, request *PublishRequest) error
	QueueStatus(ctx context.Context) (*QueueStatusResponse, error)
}

type UserCreatedEvent struct {
	Event     string    `json:"event"`
	User      User      `json:"user"`
	Timestamp time.Time `json:"timestamp"`
}
