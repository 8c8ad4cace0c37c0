package service

import (
	"librarian/internal/domain"
	"librarian/internal/repository"

	"go.uber.org/zap"
)

// CatalogService handles read-only catalog access and startup seeding
type CatalogService struct {
	bookRepo repository.BookRepository
	logger   *zap.Logger
}

// NewCatalogService creates a new catalog service
func NewCatalogService(bookRepo repository.BookRepository, logger *zap.Logger) *CatalogService {
	return &CatalogService{bookRepo: bookRepo, logger: logger}
}

// List returns the whole catalog in insertion order
func (s *CatalogService) List() ([]domain.Book, error) {
	return s.bookRepo.ListBooks()
}

// Find looks a book up by exact, case-sensitive title
func (s *CatalogService) Find(title string) (*domain.Book, error) {
	return s.bookRepo.GetBook(title)
}

// Seed loads the static book list into an empty catalog
func (s *CatalogService) Seed(books []domain.Book) error {
	if err := s.bookRepo.SeedBooks(books); err != nil {
		s.logger.Error("Failed to seed catalog", zap.Error(err))
		return err
	}

	s.logger.Info("Catalog seeded", zap.Int("books", len(books)))
	return nil
}
