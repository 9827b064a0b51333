// Package mongo implements the document store handle and the live path of
// the user storage capability.
package mongo

import (
	"context"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/cafebazaar/service-gateway/internal/backend"
	"github.com/cafebazaar/service-gateway/pkg/gateway"
)

const usersCollection = "users"

type Config struct {
	URL      string
	Database string
}

type documentStoreHandle struct {
	mu        sync.Mutex
	client    *mongo.Client
	available bool

	config         Config
	retry          backend.RetryPolicy
	connectTimeout time.Duration
}

type Option func(h *documentStoreHandle)

func WithRetryPolicy(policy backend.RetryPolicy) Option {
	return func(h *documentStoreHandle) {
		h.retry = policy
	}
}

func WithConnectTimeout(timeout time.Duration) Option {
	return func(h *documentStoreHandle) {
		h.connectTimeout = timeout
	}
}

func New(config Config, options ...Option) gateway.UserBackend {
	result := &documentStoreHandle{
		config:         config,
		retry:          backend.DefaultRetryPolicy(),
		connectTimeout: 5 * time.Second,
	}

	for _, option := range options {
		option(result)
	}

	return result
}

func (h *documentStoreHandle) Kind() gateway.BackendKind {
	return gateway.BackendDocumentStore
}

// Connect dials the document store and verifies the session with a ping.
// Failure leaves the handle unavailable; it is reported for logging only
// and never aborts startup.
func (h *documentStoreHandle) Connect(ctx context.Context) error {
	opts := options.Client().
		ApplyURI(h.config.URL).
		SetConnectTimeout(h.connectTimeout).
		SetServerSelectionTimeout(h.connectTimeout)

	client, err := mongo.Connect(opts)
	if err != nil {
		log.WithError(err).WithField("event", "connect_failure").
			Error("documentstore: malformed connection config")
		return err
	}

	err = h.retry.Do(ctx, func(ctx context.Context) error {
		return client.Ping(ctx, readpref.Primary())
	})
	if err != nil {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = client.Disconnect(disconnectCtx)

		log.WithError(err).WithField("event", "connect_failure").
			Error("documentstore: connection failed")
		return err
	}

	h.mu.Lock()
	h.client = client
	h.available = true
	h.mu.Unlock()

	log.WithField("event", "connect_success").Info("documentstore: connected")
	return nil
}

func (h *documentStoreHandle) OnError(err error) {
	log.WithError(err).WithField("event", "backend_error").
		Warn("documentstore: session error, marking unavailable")
	h.demote()
}

func (h *documentStoreHandle) OnClose() {
	log.WithField("event", "backend_close").Warn("documentstore: session closed")
	h.demote()
}

func (h *documentStoreHandle) demote() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.client != nil {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = h.client.Disconnect(ctx)
		h.client = nil
	}
	h.available = false
}

func (h *documentStoreHandle) IsAvailable() bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.available
}

func (h *documentStoreHandle) Status() gateway.Status {
	if h.IsAvailable() {
		return gateway.StatusConnected
	}
	return gateway.StatusNotConnected
}

func (h *documentStoreHandle) users() *mongo.Collection {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.client == nil {
		return nil
	}

	return h.client.Database(h.config.Database).Collection(usersCollection)
}

func (h *documentStoreHandle) ListUsers(ctx context.Context) ([]gateway.User, error) {
	coll := h.users()
	if coll == nil {
		return nil, gateway.ErrNotConnected
	}

	cursor, err := coll.Find(ctx, bson.D{},
		options.Find().SetSort(bson.D{{Key: "id", Value: 1}}))
	if err != nil {
		return nil, err
	}

	var result []gateway.User
	if err := cursor.All(ctx, &result); err != nil {
		return nil, err
	}

	return result, nil
}

func (h *documentStoreHandle) GetUser(ctx context.Context, id int64) (*gateway.User, error) {
	coll := h.users()
	if coll == nil {
		return nil, gateway.ErrNotConnected
	}

	var result gateway.User
	err := coll.FindOne(ctx, bson.M{"id": id}).Decode(&result)
	if err == mongo.ErrNoDocuments {
		return nil, gateway.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// CreateUser assigns ids as current-max+1, mirroring the substitute store so
// a mid-session storage switch keeps the id sequence recognizable.
func (h *documentStoreHandle) CreateUser(ctx context.Context,
	request *gateway.CreateUserRequest) (*gateway.User, error) {

	coll := h.users()
	if coll == nil {
		return nil, gateway.ErrNotConnected
	}

	var last gateway.User
	err := coll.FindOne(ctx, bson.D{},
		options.FindOne().SetSort(bson.D{{Key: "id", Value: -1}})).Decode(&last)
	if err != nil && err != mongo.ErrNoDocuments {
		return nil, err
	}

	user := gateway.User{
		ID:    last.ID + 1,
		Name:  request.Name,
		Email: request.Email,
	}

	if _, err := coll.InsertOne(ctx, user); err != nil {
		return nil, err
	}

	return &user, nil
}

func (h *documentStoreHandle) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.available = false
	if h.client != nil {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()

		err := h.client.Disconnect(ctx)
		h.client = nil

		return err
	}

	return nil
}
