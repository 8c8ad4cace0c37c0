package testutil

import (
	"librarian/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock for UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetUser(userID int64) (*domain.User, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindByName(name, surname string) (*domain.User, error) {
	args := m.Called(name, surname)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) CreateUser(user *domain.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) AddBorrowed(userID int64, title string) error {
	args := m.Called(userID, title)
	return args.Error(0)
}

func (m *MockUserRepository) RemoveBorrowed(userID int64, title string) error {
	args := m.Called(userID, title)
	return args.Error(0)
}

// MockBookRepository is a mock for BookRepository
type MockBookRepository struct {
	mock.Mock
}

func (m *MockBookRepository) ListBooks() ([]domain.Book, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Book), args.Error(1)
}

func (m *MockBookRepository) GetBook(title string) (*domain.Book, error) {
	args := m.Called(title)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Book), args.Error(1)
}

func (m *MockBookRepository) SetBorrowed(title, borrower string) error {
	args := m.Called(title, borrower)
	return args.Error(0)
}

func (m *MockBookRepository) SetReturned(title string) error {
	args := m.Called(title)
	return args.Error(0)
}

func (m *MockBookRepository) SeedBooks(books []domain.Book) error {
	args := m.Called(books)
	return args.Error(0)
}
