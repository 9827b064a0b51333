package mongo_test

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/suite"

	"github.com/cafebazaar/service-gateway/internal/backend"
	mongoBackend "github.com/cafebazaar/service-gateway/internal/backend/mongo"
	"github.com/cafebazaar/service-gateway/pkg/gateway"
)

type DocumentStoreHandleTestSuite struct {
	suite.Suite

	handle gateway.UserBackend
}

func TestDocumentStoreHandleTestSuite(t *testing.T) {
	suite.Run(t, new(DocumentStoreHandleTestSuite))
}

func (s *DocumentStoreHandleTestSuite) SetupTest() {
	s.handle = mongoBackend.New(
		mongoBackend.Config{URL: "mongodb://127.0.0.1:1", Database: "gateway"},
		mongoBackend.WithRetryPolicy(backend.RetryPolicy{Attempts: 1, Backoff: time.Millisecond}),
		mongoBackend.WithConnectTimeout(100*time.Millisecond),
	)
}

func (s *DocumentStoreHandleTestSuite) TearDownTest() {
	s.Nil(s.handle.Close())
}

func (s *DocumentStoreHandleTestSuite) TestShouldNotBeAvailableBeforeConnect() {
	s.False(s.handle.IsAvailable())
	s.Equal(gateway.StatusNotConnected, s.handle.Status())
}

func (s *DocumentStoreHandleTestSuite) TestKindShouldBeDocumentStore() {
	s.Equal(gateway.BackendDocumentStore, s.handle.Kind())
}

func (s *DocumentStoreHandleTestSuite) TestConnectShouldFailGracefullyOnUnreachableHost() {
	s.NotNil(s.handle.Connect(context.Background()))
	s.False(s.handle.IsAvailable())
	s.Equal(gateway.StatusNotConnected, s.handle.Status())
}

func (s *DocumentStoreHandleTestSuite) TestListUsersWithoutSessionShouldReturnErrNotConnected() {
	_, err := s.handle.ListUsers(context.Background())
	s.Equal(gateway.ErrNotConnected, err)
}

func (s *DocumentStoreHandleTestSuite) TestGetUserWithoutSessionShouldReturnErrNotConnected() {
	_, err := s.handle.GetUser(context.Background(), 1)
	s.Equal(gateway.ErrNotConnected, err)
}

func (s *DocumentStoreHandleTestSuite) TestCreateUserWithoutSessionShouldReturnErrNotConnected() {
	_, err := s.handle.CreateUser(context.Background(),
		&gateway.CreateUserRequest{Name: "Ann", Email: "ann@x.com"})
	s.Equal(gateway.ErrNotConnected, err)
}

func (s *DocumentStoreHandleTestSuite) TestOnErrorShouldKeepHandleUnavailable() {
	s.handle.OnError(errors.New("server selection error"))
	s.False(s.handle.IsAvailable())
}

func (s *DocumentStoreHandleTestSuite) TestOnCloseShouldKeepHandleUnavailable() {
	s.handle.OnClose()
	s.False(s.handle.IsAvailable())
}
