package redis

import (
	"context"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"

	"github.com/cafebazaar/service-gateway/internal/backend"
	"github.com/cafebazaar/service-gateway/pkg/gateway"
)

const counterKey = "gateway:counter"

// Config resolves the cache connection once at startup: either a full
// connection URL, or a host/port tuple with optional credentials.
type Config struct {
	URL      string
	Host     string
	Port     int
	Username string
	Password string
}

type cacheHandle struct {
	mu        sync.Mutex
	client    *redis.Client
	available bool

	config Config
	retry  backend.RetryPolicy
}

type Option func(h *cacheHandle)

func WithRetryPolicy(policy backend.RetryPolicy) Option {
	return func(h *cacheHandle) {
		h.retry = policy
	}
}

func New(config Config, options ...Option) gateway.CounterBackend {
	result := &cacheHandle{
		config: config,
		retry:  backend.DefaultRetryPolicy(),
	}

	for _, option := range options {
		option(result)
	}

	return result
}

func (h *cacheHandle) Kind() gateway.BackendKind {
	return gateway.BackendCache
}

func (h *cacheHandle) clientOptions() (*redis.Options, error) {
	if h.config.URL != "" {
		opts, err := redis.ParseURL(h.config.URL)
		if err != nil {
			return nil, err
		}

		opts.MaxRetries = -1
		return opts, nil
	}

	return &redis.Options{
		Addr:     fmt.Sprintf("%s:%d", h.config.Host, h.config.Port),
		Username: h.config.Username,
		Password: h.config.Password,

		// The handle owns the retry budget; the client must not add its own.
		MaxRetries: -1,
	}, nil
}

// Connect establishes the cache session, spending the handle's retry budget
// on the initial ping. A failed attempt leaves the handle unavailable and is
// reported back for logging only; it is never fatal.
func (h *cacheHandle) Connect(ctx context.Context) error {
	opts, err := h.clientOptions()
	if err != nil {
		log.WithError(err).WithField("event", "connect_failure").
			Error("cache: malformed connection config")
		return err
	}

	client := redis.NewClient(opts)

	err = h.retry.Do(ctx, func(ctx context.Context) error {
		return client.Ping(ctx).Err()
	})
	if err != nil {
		_ = client.Close()

		log.WithError(err).WithField("event", "connect_failure").
			Error("cache: connection failed")
		return err
	}

	h.mu.Lock()
	h.client = client
	h.available = true
	h.mu.Unlock()

	log.WithField("event", "connect_success").Info("cache: connected")
	return nil
}

func (h *cacheHandle) OnError(err error) {
	log.WithError(err).WithField("event", "backend_error").
		Warn("cache: session error, marking unavailable")
	h.demote()
}

func (h *cacheHandle) OnClose() {
	log.WithField("event", "backend_close").Warn("cache: session closed")
	h.demote()
}

func (h *cacheHandle) demote() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.client != nil {
		_ = h.client.Close()
		h.client = nil
	}
	h.available = false
}

func (h *cacheHandle) IsAvailable() bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.available
}

func (h *cacheHandle) Status() gateway.Status {
	if h.IsAvailable() {
		return gateway.StatusConnected
	}
	return gateway.StatusNotConnected
}

func (h *cacheHandle) session() *redis.Client {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.client
}

func (h *cacheHandle) CounterValue(ctx context.Context) (int64, error) {
	client := h.session()
	if client == nil {
		return 0, gateway.ErrNotConnected
	}

	result, err := client.Get(ctx, counterKey).Int64()
	if err == redis.Nil {
		return 0, nil
	}

	return result, err
}

// IncrementCounter relies on the backend's native atomic INCR; this layer
// never read-modify-writes the counter.
func (h *cacheHandle) IncrementCounter(ctx context.Context) (int64, error) {
	client := h.session()
	if client == nil {
		return 0, gateway.ErrNotConnected
	}

	return client.Incr(ctx, counterKey).Result()
}

func (h *cacheHandle) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.available = false
	if h.client != nil {
		err := h.client.Close()
		h.client = nil

		return err
	}

	return nil
}
