package mock

import (
	"context"
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/mvolkova/pekarnya/internal/database"
)

// MockDB is a mock implementation of database.DB for testing.
type MockDB struct {
	mu sync.RWMutex

	users      map[uint]*database.User
	nextUserID uint

	// Error simulation
	CreateUserError        error
	GetUserByIDError       error
	GetUserByUsernameError error
	UpdateUserProfileError error
}

var _ database.DB = (*MockDB)(nil)

// NewMockDB creates a new MockDB instance.
func NewMockDB() *MockDB {
	return &MockDB{
		users:      make(map[uint]*database.User),
		nextUserID: 1,
	}
}

// Reset clears all data and errors from the mock database.
func (m *MockDB) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.users = make(map[uint]*database.User)
	m.nextUserID = 1

	m.CreateUserError = nil
	m.GetUserByIDError = nil
	m.GetUserByUsernameError = nil
	m.UpdateUserProfileError = nil
}

func (m *MockDB) CreateUser(_ context.Context, username, passwordHash string) (*database.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.CreateUserError != nil {
		return nil, m.CreateUserError
	}

	for _, u := range m.users {
		if u.Username == username {
			return nil, database.ErrUsernameTaken
		}
	}

	user := &database.User{
		Model: gorm.Model{
			ID:        m.nextUserID,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Username:     username,
		PasswordHash: passwordHash,
	}
	m.users[user.ID] = user
	m.nextUserID++

	copied := *user
	return &copied, nil
}

func (m *MockDB) GetUserByID(_ context.Context, id uint) (*database.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.GetUserByIDError != nil {
		return nil, m.GetUserByIDError
	}

	user, ok := m.users[id]
	if !ok {
		return nil, database.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (m *MockDB) GetUserByUsername(_ context.Context, username string) (*database.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.GetUserByUsernameError != nil {
		return nil, m.GetUserByUsernameError
	}

	for _, u := range m.users {
		if u.Username == username {
			copied := *u
			return &copied, nil
		}
	}
	return nil, database.ErrUserNotFound
}

func (m *MockDB) UpdateUserProfile(_ context.Context, id uint, name, gender string) (*database.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.UpdateUserProfileError != nil {
		return nil, m.UpdateUserProfileError
	}

	user, ok := m.users[id]
	if !ok {
		return nil, database.ErrUserNotFound
	}
	user.Name = name
	user.Gender = gender
	user.UpdatedAt = time.Now()

	copied := *user
	return &copied, nil
}
