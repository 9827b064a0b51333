// Package core routes every capability to either its live backend or its
// fallback. The path is re-evaluated on each request, so a backend that
// recovers mid-session is used by the very next request. A live attempt
// that fails at runtime demotes the handle through OnError and the request
// finishes on the fallback path, so subsequent requests in the same burst
// skip the doomed backend.
package core

import (
	"context"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/cafebazaar/service-gateway/pkg/gateway"
)

const userCreatedEvent = "user_created"

type coreService struct {
	documentStore gateway.UserBackend
	substitute    gateway.UserStore
	cache         gateway.CounterBackend
	broker        gateway.BrokerBackend

	publishTimeout time.Duration
}

type Option func(s *coreService)

func WithPublishTimeout(timeout time.Duration) Option {
	return func(s *coreService) {
		s.publishTimeout = timeout
	}
}

func New(documentStore gateway.UserBackend,
	substitute gateway.UserStore,
	cache gateway.CounterBackend,
	broker gateway.BrokerBackend,
	options ...Option) gateway.Service {

	result := &coreService{
		documentStore:  documentStore,
		substitute:     substitute,
		cache:          cache,
		broker:         broker,
		publishTimeout: 5 * time.Second,
	}

	for _, option := range options {
		option(result)
	}

	return result
}

func (s *coreService) ListUsers(ctx context.Context) (*gateway.UserListResponse, error) {
	if s.documentStore.IsAvailable() {
		users, err := s.documentStore.ListUsers(ctx)
		if err == nil {
			return &gateway.UserListResponse{Users: users, Storage: gateway.StorageMongo}, nil
		}

		s.documentStore.OnError(err)
	}

	users, err := s.substitute.ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	return &gateway.UserListResponse{Users: users, Storage: gateway.StorageMemory}, nil
}

func (s *coreService) GetUser(ctx context.Context, id int64) (*gateway.UserResponse, error) {
	if s.documentStore.IsAvailable() {
		user, err := s.documentStore.GetUser(ctx, id)
		if err == nil {
			return &gateway.UserResponse{User: user, Storage: gateway.StorageMongo}, nil
		}
		if err == gateway.ErrNotFound {
			// The backend answered; a missing record is not a fault.
			return nil, err
		}

		s.documentStore.OnError(err)
	}

	user, err := s.substitute.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	return &gateway.UserResponse{User: user, Storage: gateway.StorageMemory}, nil
}

func (s *coreService) CreateUser(ctx context.Context,
	request *gateway.CreateUserRequest) (*gateway.UserResponse, error) {

	if request == nil || request.Name == "" || request.Email == "" {
		return nil, errors.Wrap(gateway.ErrValidation, "name and email are required")
	}

	if s.documentStore.IsAvailable() {
		user, err := s.documentStore.CreateUser(ctx, request)
		if err == nil {
			s.announceUserCreated(*user)
			return &gateway.UserResponse{User: user, Storage: gateway.StorageMongo}, nil
		}

		s.documentStore.OnError(err)
	}

	user, err := s.substitute.CreateUser(ctx, request)
	if err != nil {
		return nil, err
	}

	return &gateway.UserResponse{User: user, Storage: gateway.StorageMemory}, nil
}

// announceUserCreated publishes the creation event without ever affecting
// the request it accompanies: it runs on its own goroutine with its own
// deadline, and a publish failure is only logged.
func (s *coreService) announceUserCreated(user gateway.User) {
	if !s.broker.IsAvailable() {
		return
	}

	body, err := json.Marshal(gateway.UserCreatedEvent{
		Event:     userCreatedEvent,
		User:      user,
		Timestamp: time.Now().UTC(),
	})
	if err != nil {
		log.WithError(err).Error("failed to encode user_created event")
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.publishTimeout)
		defer cancel()

		if err := s.broker.Publish(ctx, body); err != nil {
			log.WithError(err).Warn("best-effort user_created publish failed")
		}
	}()
}

func (s *coreService) CounterValue(ctx context.Context) (*gateway.CounterResponse, error) {
	if s.cache.IsAvailable() {
		value, err := s.cache.CounterValue(ctx)
		if err == nil {
			return &gateway.CounterResponse{Value: value, Storage: gateway.StorageCache}, nil
		}

		s.cache.OnError(err)
	}

	return &gateway.CounterResponse{Value: 0, Storage: gateway.StorageUnavailable}, nil
}

// IncrementCounter has no fallback: a local approximation would silently
// diverge from the shared value other processes observe, so an unavailable
// cache surfaces as ErrUnavailable and the counter is left untouched.
func (s *coreService) IncrementCounter(ctx context.Context) (*gateway.CounterResponse, error) {
	if !s.cache.IsAvailable() {
		return nil, gateway.ErrUnavailable
	}

	value, err := s.cache.IncrementCounter(ctx)
	if err != nil {
		s.cache.OnError(err)
		return nil, gateway.ErrUnavailable
	}

	return &gateway.CounterResponse{Value: value, Storage: gateway.StorageCache}, nil
}

func (s *coreService) Publish(ctx context.Context, request *gateway.PublishRequest) error {
	if request == nil || len(request.Body) == 0 {
		return errors.Wrap(gateway.ErrValidation, "message body is required")
	}

	if !s.broker.IsAvailable() {
		return gateway.ErrUnavailable
	}

	if err := s.broker.Publish(ctx, request.Body); err != nil {
		s.broker.OnError(err)
		return gateway.ErrUnavailable
	}

	return nil
}

func (s *coreService) QueueStatus(ctx context.Context) (*gateway.QueueStatusResponse, error) {
	if s.broker.IsAvailable() {
		status, err := s.broker.QueueStatus(ctx)
		if err == nil {
			return status, nil
		}

		s.broker.OnError(err)
	}

	return &gateway.QueueStatusResponse{Status: s.broker.Status()}, nil
}
