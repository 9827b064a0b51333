package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/suite"

	"github.com/cafebazaar/service-gateway/internal/backend"
	redisBackend "github.com/cafebazaar/service-gateway/internal/backend/redis"
	"github.com/cafebazaar/service-gateway/pkg/gateway"
)

type CacheHandleTestSuite struct {
	suite.Suite

	db     *miniredis.Miniredis
	handle gateway.CounterBackend
}

func TestCacheHandleTestSuite(t *testing.T) {
	suite.Run(t, new(CacheHandleTestSuite))
}

func (s *CacheHandleTestSuite) SetupTest() {
	var err error

	s.db, err = miniredis.Run()
	if err != nil {
		s.FailNow("failed to create miniredis db")
	}

	s.handle = redisBackend.New(
		redisBackend.Config{URL: "redis://" + s.db.Addr()},
		redisBackend.WithRetryPolicy(backend.RetryPolicy{Attempts: 1, Backoff: time.Millisecond}),
	)
}

func (s *CacheHandleTestSuite) TearDownTest() {
	s.Nil(s.handle.Close())
	s.db.Close()
}

func (s *CacheHandleTestSuite) connect() {
	s.Nil(s.handle.Connect(context.Background()))
}

func (s *CacheHandleTestSuite) TestShouldNotBeAvailableBeforeConnect() {
	s.False(s.handle.IsAvailable())
	s.Equal(gateway.StatusNotConnected, s.handle.Status())
}

func (s *CacheHandleTestSuite) TestConnectShouldMakeHandleAvailable() {
	s.connect()
	s.True(s.handle.IsAvailable())
	s.Equal(gateway.StatusConnected, s.handle.Status())
}

func (s *CacheHandleTestSuite) TestConnectShouldFailGracefullyOnRefusedConnection() {
	handle := redisBackend.New(
		redisBackend.Config{Host: "127.0.0.1", Port: 1},
		redisBackend.WithRetryPolicy(backend.RetryPolicy{Attempts: 2, Backoff: time.Millisecond}),
	)

	s.NotNil(handle.Connect(context.Background()))
	s.False(handle.IsAvailable())
	s.Equal(gateway.StatusNotConnected, handle.Status())
}

func (s *CacheHandleTestSuite) TestConnectShouldFailGracefullyOnMalformedURL() {
	handle := redisBackend.New(redisBackend.Config{URL: "not-a-redis-url"})

	s.NotNil(handle.Connect(context.Background()))
	s.False(handle.IsAvailable())
}

func (s *CacheHandleTestSuite) TestKindShouldBeCache() {
	s.Equal(gateway.BackendCache, s.handle.Kind())
}

func (s *CacheHandleTestSuite) TestCounterValueShouldBeZeroOnFreshDatabase() {
	s.connect()

	value, err := s.handle.CounterValue(context.Background())
	s.Nil(err)
	s.Zero(value)
}

func (s *CacheHandleTestSuite) TestCounterValueShouldReturnStoredValue() {
	s.connect()
	s.Nil(s.db.Set("gateway:counter", "5"))

	value, err := s.handle.CounterValue(context.Background())
	s.Nil(err)
	s.Equal(int64(5), value)
}

func (s *CacheHandleTestSuite) TestIncrementShouldAdvanceStoredValue() {
	s.connect()
	s.Nil(s.db.Set("gateway:counter", "5"))

	value, err := s.handle.IncrementCounter(context.Background())
	s.Nil(err)
	s.Equal(int64(6), value)
}

func (s *CacheHandleTestSuite) TestCounterValueWithoutSessionShouldReturnErrNotConnected() {
	_, err := s.handle.CounterValue(context.Background())
	s.Equal(gateway.ErrNotConnected, err)
}

func (s *CacheHandleTestSuite) TestIncrementWithoutSessionShouldReturnErrNotConnected() {
	_, err := s.handle.IncrementCounter(context.Background())
	s.Equal(gateway.ErrNotConnected, err)
}

func (s *CacheHandleTestSuite) TestOnErrorShouldDemoteHandle() {
	s.connect()

	s.handle.OnError(errors.New("connection reset"))

	s.False(s.handle.IsAvailable())
	s.Equal(gateway.StatusNotConnected, s.handle.Status())

	_, err := s.handle.CounterValue(context.Background())
	s.Equal(gateway.ErrNotConnected, err)
}

func (s *CacheHandleTestSuite) TestOnCloseShouldDemoteHandle() {
	s.connect()

	s.handle.OnClose()

	s.False(s.handle.IsAvailable())
}

func (s *CacheHandleTestSuite) TestReconnectAfterDemotionShouldRestoreAvailability() {
	s.connect()
	s.handle.OnError(errors.New("connection reset"))
	s.False(s.handle.IsAvailable())

	s.connect()
	s.True(s.handle.IsAvailable())

	_, err := s.handle.IncrementCounter(context.Background())
	s.Nil(err)
}

func (s *CacheHandleTestSuite) TestCloseShouldMakeHandleUnavailable() {
	s.connect()
	s.Nil(s.handle.Close())
	s.False(s.handle.IsAvailable())
}
