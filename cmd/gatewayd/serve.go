package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/profile"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cafebazaar/service-gateway/internal/backend"
	mongoBackend "github.com/cafebazaar/service-gateway/internal/backend/mongo"
	rabbitBackend "github.com/cafebazaar/service-gateway/internal/backend/rabbit"
	redisBackend "github.com/cafebazaar/service-gateway/internal/backend/redis"
	"github.com/cafebazaar/service-gateway/internal/core"
	"github.com/cafebazaar/service-gateway/internal/eventlog"
	"github.com/cafebazaar/service-gateway/internal/memstore"
	"github.com/cafebazaar/service-gateway/internal/registry"
	"github.com/cafebazaar/service-gateway/internal/transport/rest"
	"github.com/cafebazaar/service-gateway/pkg/gateway"
)

const connectTimeout = 30 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "start Server",
	Run:   serve,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve(cmd *cobra.Command, args []string) {
	config := loadConfigOrPanic(cmd)

	if config.Profiling {
		defer profile.Start().Stop()
	}

	events := openEventLogOrPanic(config)
	log.AddHook(eventlog.NewHook(events))

	documentStore, cache, broker := makeHandles(config)

	// Each handle connects on its own; a failed backend is an expected
	// steady state and never delays or aborts startup.
	connectAsync(documentStore, cache, broker)

	svc := core.New(documentStore, memstore.New(), cache, broker)
	reg := registry.New(documentStore, cache, broker)

	server := rest.New(svc, reg, events, config.HTTPListenPort)
	startServerOrPanic(server)
	log.WithField("port", config.HTTPListenPort).Info("gateway listening")

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs

	shutdownServerOrPanic(server)
	closeHandles(documentStore, cache, broker)

	if err := events.Close(); err != nil {
		log.WithError(err).Error("failed to close event log")
	}
}

func makeHandles(config *Config) (gateway.UserBackend, gateway.CounterBackend, gateway.BrokerBackend) {
	retryPolicy := backend.RetryPolicy{
		Attempts: config.ConnectAttempts,
		Backoff:  config.ConnectBackoff,
	}

	documentStore := mongoBackend.New(
		mongoBackend.Config{
			URL:      config.MongoURL,
			Database: config.MongoDatabase,
		},
		mongoBackend.WithRetryPolicy(retryPolicy))

	cache := redisBackend.New(
		redisBackend.Config{
			URL:      config.RedisURL,
			Host:     config.RedisHost,
			Port:     config.RedisPort,
			Username: config.RedisUsername,
			Password: config.RedisPassword,
		},
		redisBackend.WithRetryPolicy(retryPolicy))

	broker := rabbitBackend.New(
		rabbitBackend.Config{
			Enabled:  config.RabbitEnabled,
			Scheme:   config.RabbitScheme,
			Host:     config.RabbitHost,
			Port:     config.RabbitPort,
			Username: config.RabbitUsername,
			Password: config.RabbitPassword,
			Queue:    config.RabbitQueue,
		},
		rabbitBackend.WithRetryPolicy(retryPolicy))

	return documentStore, cache, broker
}

func connectAsync(handles ...gateway.Handle) {
	for _, handle := range handles {
		go func(h gateway.Handle) {
			ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
			defer cancel()

			// Failures are logged by the handle itself.
			_ = h.Connect(ctx)
		}(handle)
	}
}

func closeHandles(handles ...gateway.Handle) {
	for _, handle := range handles {
		if err := handle.Close(); err != nil {
			log.WithError(err).WithField("backend", handle.Kind()).
				Error("failed to close backend handle")
		}
	}
}

func loadConfigOrPanic(cmd *cobra.Command) *Config {
	config, err := LoadConfig(cmd, "GATEWAY")
	if err != nil {
		log.WithError(err).Panic("Failed to load configurations")
	}
	return config
}

func openEventLogOrPanic(config *Config) *eventlog.Log {
	events, err := eventlog.Open(config.EventLogFile)
	if err != nil {
		log.WithError(err).Panic("Failed to open event log")
	}
	return events
}

func startServerOrPanic(server gateway.Server) {
	err := server.Start()
	if err != nil {
		panicWithError(err, "failed to start server")
	}
}

func shutdownServerOrPanic(server gateway.Server) {
	if err := server.Close(); err != nil {
		panicWithError(err, "failed to close server")
	}
}

func panicWithError(err error, format string, args ...interface{}) {
	log.WithError(err).Panicf(format, args...)
}
