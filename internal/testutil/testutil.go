package testutil

import (
	"librarian/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestUser creates a test user
func NewTestUser(userID int64, name, surname, password string) *domain.User {
	return &domain.User{
		UserID:   userID,
		Name:     name,
		Surname:  surname,
		Password: password,
	}
}

// NewTestBook creates an available test book
func NewTestBook(title, author string) domain.Book {
	return domain.Book{
		Title:     title,
		Author:    author,
		Available: true,
	}
}
