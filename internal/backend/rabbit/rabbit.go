// Package rabbit implements the message broker handle. The broker is the
// only backend with a configuration-driven permanent-disable state: when
// the enable flag is off the handle never performs network I/O and reports
// "disabled" rather than "not connected".
package rabbit

import (
	"context"
	"fmt"
	"net/url"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"
	log "github.com/sirupsen/logrus"

	"github.com/cafebazaar/service-gateway/internal/backend"
	"github.com/cafebazaar/service-gateway/pkg/gateway"
)

type Config struct {
	Enabled  bool
	Scheme   string
	Host     string
	Port     int
	Username string
	Password string
	Queue    string
}

// URL renders the AMQP connection URL. Scheme defaults to plain amqp;
// "amqps" selects TLS.
func (c Config) URL() string {
	scheme := c.Scheme
	if scheme == "" {
		scheme = "amqp"
	}

	u := url.URL{
		Scheme: scheme,
		Host:   fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:   "/",
	}
	if c.Username != "" {
		u.User = url.UserPassword(c.Username, c.Password)
	}

	return u.String()
}

type brokerHandle struct {
	mu        sync.Mutex
	conn      *amqp.Connection
	channel   *amqp.Channel
	available bool

	config Config
	retry  backend.RetryPolicy
}

type Option func(h *brokerHandle)

func WithRetryPolicy(policy backend.RetryPolicy) Option {
	return func(h *brokerHandle) {
		h.retry = policy
	}
}

func New(config Config, options ...Option) gateway.BrokerBackend {
	result := &brokerHandle{
		config: config,
		retry:  backend.DefaultRetryPolicy(),
	}

	for _, option := range options {
		option(result)
	}

	return result
}

func (h *brokerHandle) Kind() gateway.BackendKind {
	return gateway.BackendBroker
}

// Connect dials the broker and declares the durable queue. When the enable
// flag is off it returns immediately without touching the network.
func (h *brokerHandle) Connect(ctx context.Context) error {
	if !h.config.Enabled {
		log.WithField("event", "backend_disabled").Info("broker: disabled by configuration")
		return nil
	}

	var conn *amqp.Connection
	err := h.retry.Do(ctx, func(ctx context.Context) error {
		var dialErr error
		conn, dialErr = amqp.Dial(h.config.URL())
		return dialErr
	})
	if err != nil {
		log.WithError(err).WithField("event", "connect_failure").
			Error("broker: connection failed")
		return err
	}

	channel, err := conn.Channel()
	if err == nil {
		_, err = channel.QueueDeclare(h.config.Queue, true, false, false, false, nil)
	}
	if err != nil {
		_ = conn.Close()

		log.WithError(err).WithField("event", "connect_failure").
			Error("broker: channel setup failed")
		return err
	}

	h.mu.Lock()
	h.conn = conn
	h.channel = channel
	h.available = true
	h.mu.Unlock()

	go h.watchClose(conn)

	log.WithField("event", "connect_success").Info("broker: connected")
	return nil
}

// watchClose translates the connection's close notification into the
// handle's explicit state transitions.
func (h *brokerHandle) watchClose(conn *amqp.Connection) {
	err, ok := <-conn.NotifyClose(make(chan *amqp.Error, 1))
	if !ok || err == nil {
		h.onSessionClose(conn, nil)
		return
	}

	h.onSessionClose(conn, err)
}

func (h *brokerHandle) onSessionClose(conn *amqp.Connection, err *amqp.Error) {
	h.mu.Lock()
	if h.conn != conn {
		// A newer session replaced the one that closed.
		h.mu.Unlock()
		return
	}
	h.conn = nil
	h.channel = nil
	h.available = false
	h.mu.Unlock()

	if err != nil {
		log.WithError(err).WithField("event", "backend_error").
			Warn("broker: connection lost")
		return
	}

	log.WithField("event", "backend_close").Warn("broker: connection closed")
}

func (h *brokerHandle) OnError(err error) {
	log.WithError(err).WithField("event", "backend_error").
		Warn("broker: session error, marking unavailable")
	h.demote()
}

func (h *brokerHandle) OnClose() {
	log.WithField("event", "backend_close").Warn("broker: session closed")
	h.demote()
}

func (h *brokerHandle) demote() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.conn != nil {
		_ = h.conn.Close()
		h.conn = nil
		h.channel = nil
	}
	h.available = false
}

func (h *brokerHandle) IsAvailable() bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.available
}

func (h *brokerHandle) Status() gateway.Status {
	if !h.config.Enabled {
		return gateway.StatusDisabled
	}
	if h.IsAvailable() {
		return gateway.StatusConnected
	}
	return gateway.StatusNotConnected
}

func (h *brokerHandle) session() *amqp.Channel {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.channel
}

// Publish enqueues one persistent message on the configured queue.
func (h *brokerHandle) Publish(ctx context.Context, body []byte) error {
	if !h.config.Enabled {
		return gateway.ErrDisabled
	}

	channel := h.session()
	if channel == nil {
		return gateway.ErrNotConnected
	}

	return channel.PublishWithContext(ctx, "", h.config.Queue, false, false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		})
}

// QueueStatus inspects the queue passively; it never creates or alters it.
func (h *brokerHandle) QueueStatus(ctx context.Context) (*gateway.QueueStatusResponse, error) {
	if !h.config.Enabled {
		return nil, gateway.ErrDisabled
	}

	channel := h.session()
	if channel == nil {
		return nil, gateway.ErrNotConnected
	}

	queue, err := channel.QueueDeclarePassive(h.config.Queue, true, false, false, false, nil)
	if err != nil {
		return nil, err
	}

	return &gateway.QueueStatusResponse{
		Status:    gateway.StatusConnected,
		Queue:     queue.Name,
		Messages:  queue.Messages,
		Consumers: queue.Consumers,
	}, nil
}

func (h *brokerHandle) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.available = false
	if h.conn != nil {
		err := h.conn.Close()
		h.conn = nil
		h.channel = nil

		return err
	}

	return nil
}
