package repository

import (
	"librarian/internal/domain"
)

// UserRepository defines user data operations
type UserRepository interface {
	GetUser(userID int64) (*domain.User, error)
	FindByName(name, surname string) (*domain.User, error)
	CreateUser(user *domain.User) error
	AddBorrowed(userID int64, title string) error
	RemoveBorrowed(userID int64, title string) error
}

// BookRepository defines catalog data operations
type BookRepository interface {
	ListBooks() ([]domain.Book, error)
	GetBook(title string) (*domain.Book, error)
	SetBorrowed(title, borrower string) error
	SetReturned(title string) error
	SeedBooks(books []domain.Book) error
}
