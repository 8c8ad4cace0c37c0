package memory

import (
	"sync"

	"librarian/internal/domain"
)

// UserRepo is a map-backed repository.UserRepository used by tests
type UserRepo struct {
	mu    sync.RWMutex
	users map[int64]*domain.User
}

// NewUserRepo creates an empty in-memory user repository
func NewUserRepo() *UserRepo {
	return &UserRepo{users: make(map[int64]*domain.User)}
}

// GetUser returns a user by Telegram id
func (r *UserRepo) GetUser(userID int64) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[userID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return copyUser(u), nil
}

// FindByName returns a user by name and surname
func (r *UserRepo) FindByName(name, surname string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Name == name && u.Surname == surname {
			return copyUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

// CreateUser inserts a new user, failing on a duplicate id
func (r *UserRepo) CreateUser(user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.UserID]; ok {
		return domain.ErrAlreadyExists
	}
	r.users[user.UserID] = copyUser(user)
	return nil
}

// AddBorrowed appends a title to the user's borrowed set. Idempotent.
func (r *UserRepo) AddBorrowed(userID int64, title string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[userID]
	if !ok {
		return domain.ErrUserNotFound
	}
	if !u.HasBorrowed(title) {
		u.Borrowed = append(u.Borrowed, title)
	}
	return nil
}

// RemoveBorrowed removes a title from the user's borrowed set. Idempotent.
func (r *UserRepo) RemoveBorrowed(userID int64, title string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[userID]
	if !ok {
		return domain.ErrUserNotFound
	}

	titles := u.Borrowed[:0]
	for _, t := range u.Borrowed {
		if t != title {
			titles = append(titles, t)
		}
	}
	u.Borrowed = titles
	return nil
}

func copyUser(u *domain.User) *domain.User {
	cp := *u
	cp.Borrowed = append([]string(nil), u.Borrowed...)
	return &cp
}
