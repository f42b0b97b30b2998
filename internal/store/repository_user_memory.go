package store

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/go-user-signup/internal/logger"
	"github.com/MKhiriev/go-user-signup/internal/utils"
	"github.com/MKhiriev/go-user-signup/models"
)

// memoryUserRepository is a process-local [UserRepository]. Emails are
// compared case-sensitively, as in the SQL backends.
type memoryUserRepository struct {
	mu      sync.RWMutex
	users   map[string]models.User
	byEmail map[string]string
	phoneID int64

	ids    *utils.UUIDGenerator
	now    func() time.Time
	logger *logger.Logger
}

// NewMemoryUserRepository constructs an empty in-memory [UserRepository].
func NewMemoryUserRepository(logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating in-memory user repository")
	return &memoryUserRepository{
		users:   make(map[string]models.User),
		byEmail: make(map[string]string),
		ids:     utils.NewUUIDGenerator(),
		now:     time.Now,
		logger:  logger,
	}
}

// ExistsByEmail implements [UserRepository].
func (m *memoryUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.byEmail[email]
	return ok, nil
}

// Save implements [UserRepository].
func (m *memoryUserRepository) Save(ctx context.Context, user models.User) (models.User, error) {
	if err := ctx.Err(); err != nil {
		return models.User{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now().UTC()
	if user.IsNew() {
		if _, taken := m.byEmail[user.Email]; taken {
			return models.User{}, ErrEmailAlreadyExists
		}
		user.ID = m.ids.Generate()
		user.CreatedAt = now
		user.IsActive = true
	} else {
		stored, ok := m.users[user.ID]
		if !ok {
			return models.User{}, ErrNoUserWasFound
		}
		if owner, taken := m.byEmail[user.Email]; taken && owner != user.ID {
			return models.User{}, ErrEmailAlreadyExists
		}
		user.CreatedAt = stored.CreatedAt
		delete(m.byEmail, stored.Email)
	}
	user.ModifiedAt = now

	phones := make([]models.Phone, len(user.Phones))
	for i, phone := range user.Phones {
		m.phoneID++
		phone.ID = m.phoneID
		phones[i] = phone
	}
	user.Phones = phones

	m.users[user.ID] = user
	m.byEmail[user.Email] = user.ID

	m.logger.Debug().Str("id", user.ID).Msg("user stored in memory")

	return cloneUser(user), nil
}

// FindByID implements [UserRepository].
func (m *memoryUserRepository) FindByID(ctx context.Context, id string) (models.User, error) {
	if err := ctx.Err(); err != nil {
		return models.User{}, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	user, ok := m.users[id]
	if !ok {
		return models.User{}, ErrNoUserWasFound
	}

	return cloneUser(user), nil
}

func cloneUser(user models.User) models.User {
	user.Phones = slices.Clone(user.Phones)
	return user
}
