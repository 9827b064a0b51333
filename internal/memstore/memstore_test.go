package memstore_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/cafebazaar/service-gateway/internal/memstore"
	"github.com/cafebazaar/service-gateway/pkg/gateway"
)

type MemoryStoreTestSuite struct {
	suite.Suite

	store gateway.UserStore
}

func TestMemoryStoreTestSuite(t *testing.T) {
	suite.Run(t, new(MemoryStoreTestSuite))
}

func (s *MemoryStoreTestSuite) SetupTest() {
	s.store = memstore.New()
}

func (s *MemoryStoreTestSuite) create(name, email string) *gateway.User {
	user, err := s.store.CreateUser(context.Background(),
		&gateway.CreateUserRequest{Name: name, Email: email})
	s.Nil(err)
	s.NotNil(user)

	return user
}

func (s *MemoryStoreTestSuite) TestListShouldBeEmptyOnFreshStore() {
	users, err := s.store.ListUsers(context.Background())
	s.Nil(err)
	s.Empty(users)
}

func (s *MemoryStoreTestSuite) TestFirstCreateShouldAssignIDOne() {
	user := s.create("Ann", "ann@x.com")
	s.Equal(int64(1), user.ID)
}

func (s *MemoryStoreTestSuite) TestSecondCreateShouldAssignIDTwo() {
	s.create("Ann", "ann@x.com")
	user := s.create("Bob", "bob@x.com")
	s.Equal(int64(2), user.ID)
}

func (s *MemoryStoreTestSuite) TestListShouldReturnUsersInAppendOrder() {
	s.create("Ann", "ann@x.com")
	s.create("Bob", "bob@x.com")
	s.create("Cleo", "cleo@x.com")

	users, err := s.store.ListUsers(context.Background())
	s.Nil(err)
	s.Len(users, 3)
	s.Equal([]int64{1, 2, 3}, []int64{users[0].ID, users[1].ID, users[2].ID})
	s.Equal("Ann", users[0].Name)
	s.Equal("Cleo", users[2].Name)
}

func (s *MemoryStoreTestSuite) TestGetShouldReturnNotFoundOnMissingID() {
	_, err := s.store.GetUser(context.Background(), 42)
	s.Equal(gateway.ErrNotFound, err)
}

func (s *MemoryStoreTestSuite) TestGetShouldReturnCreatedUser() {
	created := s.create("Ann", "ann@x.com")

	user, err := s.store.GetUser(context.Background(), created.ID)
	s.Nil(err)
	s.Equal("Ann", user.Name)
	s.Equal("ann@x.com", user.Email)
}

func (s *MemoryStoreTestSuite) TestConcurrentCreatesShouldAssignUniqueIDs() {
	const workers = 32

	var wg sync.WaitGroup
	ids := make(chan int64, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			user, err := s.store.CreateUser(context.Background(),
				&gateway.CreateUserRequest{Name: "Ann", Email: "ann@x.com"})
			if err == nil {
				ids <- user.ID
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool)
	for id := range ids {
		s.False(seen[id])
		seen[id] = true
	}
	s.Len(seen, workers)
}

func (s *MemoryStoreTestSuite) TestListShouldReturnACopy() {
	s.create("Ann", "ann@x.com")

	users, err := s.store.ListUsers(context.Background())
	s.Nil(err)
	users[0].Name = "mutated"

	fresh, err := s.store.ListUsers(context.Background())
	s.Nil(err)
	s.Equal("Ann", fresh[0].Name)
}
