package backend_test

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/suite"

	"github.com/cafebazaar/service-gateway/internal/backend"
)

type RetryPolicyTestSuite struct {
	suite.Suite
}

func TestRetryPolicyTestSuite(t *testing.T) {
	suite.Run(t, new(RetryPolicyTestSuite))
}

func (s *RetryPolicyTestSuite) TestShouldNotRetryAfterSuccess() {
	policy := backend.RetryPolicy{Attempts: 3, Backoff: time.Millisecond}

	calls := 0
	err := policy.Do(context.Background(), func(ctx context.Context) error {
		calls++
		return nil
	})

	s.Nil(err)
	s.Equal(1, calls)
}

func (s *RetryPolicyTestSuite) TestShouldSpendWholeBudgetOnPersistentFailure() {
	policy := backend.RetryPolicy{Attempts: 3, Backoff: time.Millisecond}
	failure := errors.New("connection refused")

	calls := 0
	err := policy.Do(context.Background(), func(ctx context.Context) error {
		calls++
		return failure
	})

	s.Equal(failure, err)
	s.Equal(3, calls)
}

func (s *RetryPolicyTestSuite) TestShouldSucceedOnLaterAttempt() {
	policy := backend.RetryPolicy{Attempts: 3, Backoff: time.Millisecond}

	calls := 0
	err := policy.Do(context.Background(), func(ctx context.Context) error {
		calls++
		if calls < 2 {
			return errors.New("connection refused")
		}
		return nil
	})

	s.Nil(err)
	s.Equal(2, calls)
}

func (s *RetryPolicyTestSuite) TestShouldStopOnCancelledContext() {
	policy := backend.RetryPolicy{Attempts: 10, Backoff: time.Hour}

	ctx, cancel := context.WithCancel(context.Background())

	calls := 0
	done := make(chan error, 1)
	go func() {
		done <- policy.Do(ctx, func(ctx context.Context) error {
			calls++
			return errors.New("connection refused")
		})
	}()

	cancel()

	s.Equal(context.Canceled, <-done)
	s.Equal(1, calls)
}

func (s *RetryPolicyTestSuite) TestShouldApplyDefaultsForZeroValues() {
	policy := backend.RetryPolicy{}

	s.Equal(backend.DefaultConnectAttempts, backend.DefaultRetryPolicy().Attempts)

	calls := 0
	err := policy.Do(context.Background(), func(ctx context.Context) error {
		calls++
		return nil
	})

	s.Nil(err)
	s.Equal(1, calls)
}
