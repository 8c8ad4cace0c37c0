package service

import (
	"librarian/internal/domain"
	"librarian/internal/repository"
)

// AccountService handles registration and login
type AccountService struct {
	userRepo repository.UserRepository
}

// NewAccountService creates a new account service
func NewAccountService(userRepo repository.UserRepository) *AccountService {
	return &AccountService{userRepo: userRepo}
}

// Register creates a new user record for the session.
// Returns domain.ErrAlreadyExists if the id is already registered.
func (s *AccountService) Register(userID int64, name, surname, password string) error {
	return s.userRepo.CreateUser(&domain.User{
		UserID:   userID,
		Name:     name,
		Surname:  surname,
		Password: password,
	})
}

// IsRegistered reports whether the session has a user record
func (s *AccountService) IsRegistered(userID int64) (bool, error) {
	_, err := s.userRepo.GetUser(userID)
	if err == domain.ErrUserNotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// GetUser returns the user record for the session
func (s *AccountService) GetUser(userID int64) (*domain.User, error) {
	return s.userRepo.GetUser(userID)
}

// Login authenticates by name and surname rather than by the caller's
// session id, matching the original flow. Returns
// domain.ErrInvalidCredentials for an unknown pair or a wrong password.
func (s *AccountService) Login(name, surname, password string) (*domain.User, error) {
	u, err := s.userRepo.FindByName(name, surname)
	if err == domain.ErrUserNotFound {
		return nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if !s.Verify(u, password) {
		return nil, domain.ErrInvalidCredentials
	}
	return u, nil
}

// Verify compares the stored credential with the provided one.
// Plain equality, as in the original; a hashed strategy can replace this
// predicate without touching the callers.
func (s *AccountService) Verify(u *domain.User, password string) bool {
	return u.Password == password
}
