// Package rest is the thin route layer over the core: it parses requests,
// dispatches to the capability service and renders the availability
// snapshot. No degradation decisions happen here.
package rest

import (
	"fmt"
	"net"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/cafebazaar/service-gateway/internal/eventlog"
	"github.com/cafebazaar/service-gateway/pkg/gateway"
)

const logTailLines = 50

type restServer struct {
	listenPort int
	svc        gateway.Service
	registry   gateway.Registry
	events     *eventlog.Log

	engine   *gin.Engine
	server   *http.Server
	listener net.Listener
	wg       sync.WaitGroup
}

func New(svc gateway.Service, registry gateway.Registry,
	events *eventlog.Log, listenPort int) gateway.Server {

	result := &restServer{
		listenPort: listenPort,
		svc:        svc,
		registry:   registry,
		events:     events,
	}

	gin.SetMode(gin.ReleaseMode)
	result.engine = gin.New()
	result.engine.Use(recovery())
	result.registerRoutes()

	return result
}

// recovery is the last-resort boundary: no request processing error may
// crash the process; anything unhandled renders as a generic failure.
func recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.WithField("panic", r).Error("recovered from panic while handling request")
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"success": false,
					"error":   "internal server error",
				})
			}
		}()

		c.Next()
	}
}

func (s *restServer) registerRoutes() {
	s.engine.GET("/", s.handleWelcome)
	s.engine.GET("/health", s.handleHealth)
	s.engine.GET("/info", s.handleInfo)
	s.engine.GET("/logs", s.handleLogs)

	api := s.engine.Group("/api")
	api.GET("/users", s.handleListUsers)
	api.GET("/users/:id", s.handleGetUser)
	api.POST("/users", s.handleCreateUser)
	api.GET("/counter", s.handleCounterValue)
	api.POST("/counter/increment", s.handleIncrementCounter)
	api.POST("/messages", s.handlePublish)
	api.GET("/queue", s.handleQueueStatus)
}

func (s *restServer) Start() error {
	var err error

	s.listener, err = net.Listen("tcp", fmt.Sprintf(":%d", s.listenPort))
	if err != nil {
		return err
	}

	s.server = &http.Server{Handler: s.engine}

	started := make(chan struct{})
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		close(started)

		if err := s.server.Serve(s.listener); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Error("http server terminated unexpectedly")
		}
	}()
	<-started

	return nil
}

func (s *restServer) Close() error {
	if s.server == nil {
		return nil
	}

	err := s.server.Close()
	s.wg.Wait()

	return err
}
