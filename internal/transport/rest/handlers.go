package rest

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/cafebazaar/service-gateway/pkg/gateway"
)

const serviceName = "service-gateway"

func (s *restServer) handleWelcome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"service":  serviceName,
		"message":  "welcome to the service gateway",
		"backends": s.registry.Snapshot(),
	})
}

func (s *restServer) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"status":   "ok",
		"backends": s.registry.Snapshot(),
	})
}

func (s *restServer) handleInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"service":  serviceName,
		"backends": s.registry.Snapshot(),
	})
}

func (s *restServer) handleLogs(c *gin.Context) {
	lines, err := s.events.Tail(logTailLines)
	if err != nil {
		renderError(c, err)
		return
	}

	if lines == nil {
		lines = []string{}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"lines":   lines,
	})
}

func (s *restServer) handleListUsers(c *gin.Context) {
	response, err := s.svc.ListUsers(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}

	users := response.Users
	if users == nil {
		users = []gateway.User{}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"storage": response.Storage,
		"users":   users,
	})
}

func (s *restServer) handleGetUser(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		renderError(c, errors.Wrap(gateway.ErrValidation, "id must be an integer"))
		return
	}

	response, err := s.svc.GetUser(c.Request.Context(), id)
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"storage": response.Storage,
		"user":    response.User,
	})
}

type createUserBody struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (s *restServer) handleCreateUser(c *gin.Context) {
	var body createUserBody
	if err := c.ShouldBindJSON(&body); err != nil {
		renderError(c, errors.Wrap(gateway.ErrValidation, "invalid request body"))
		return
	}

	response, err := s.svc.CreateUser(c.Request.Context(),
		&gateway.CreateUserRequest{Name: body.Name, Email: body.Email})
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"storage": response.Storage,
		"user":    response.User,
	})
}

func (s *restServer) handleCounterValue(c *gin.Context) {
	response, err := s.svc.CounterValue(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"storage": response.Storage,
		"value":   response.Value,
	})
}

func (s *restServer) handleIncrementCounter(c *gin.Context) {
	response, err := s.svc.IncrementCounter(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"storage": response.Storage,
		"value":   response.Value,
	})
}

type publishBody struct {
	Message json.RawMessage `json:"message"`
}

func (s *restServer) handlePublish(c *gin.Context) {
	var body publishBody
	if err := c.ShouldBindJSON(&body); err != nil {
		renderError(c, errors.Wrap(gateway.ErrValidation, "invalid request body"))
		return
	}

	err := s.svc.Publish(c.Request.Context(), &gateway.PublishRequest{Body: body.Message})
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"success": true,
	})
}

func (s *restServer) handleQueueStatus(c *gin.Context) {
	response, err := s.svc.QueueStatus(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"status":    response.Status,
		"queue":     response.Queue,
		"messages":  response.Messages,
		"consumers": response.Consumers,
	})
}

func renderError(c *gin.Context, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, gateway.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, gateway.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, gateway.ErrUnavailable), errors.Is(err, gateway.ErrDisabled):
		status = http.StatusServiceUnavailable
	}

	c.JSON(status, gin.H{
		"success": false,
		"error":   err.Error(),
	})
}
