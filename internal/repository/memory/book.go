package memory

import (
	"sync"

	"librarian/internal/domain"
)

// BookRepo is a map-backed repository.BookRepository used by tests.
// Insertion order is preserved for ListBooks.
type BookRepo struct {
	mu    sync.RWMutex
	books map[string]*domain.Book
	order []string
}

// NewBookRepo creates an empty in-memory book repository
func NewBookRepo() *BookRepo {
	return &BookRepo{books: make(map[string]*domain.Book)}
}

// ListBooks returns all catalog entries in insertion order
func (r *BookRepo) ListBooks() ([]domain.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	books := make([]domain.Book, 0, len(r.order))
	for _, title := range r.order {
		books = append(books, *r.books[title])
	}
	return books, nil
}

// GetBook returns a book by exact title match
func (r *BookRepo) GetBook(title string) (*domain.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.books[title]
	if !ok {
		return nil, domain.ErrBookNotFound
	}
	cp := *b
	return &cp, nil
}

// SetBorrowed marks a book as held by the given borrower
func (r *BookRepo) SetBorrowed(title, borrower string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.books[title]
	if !ok {
		return domain.ErrBookNotFound
	}
	b.Available = false
	b.Borrower = borrower
	return nil
}

// SetReturned marks a book as available again
func (r *BookRepo) SetReturned(title string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.books[title]
	if !ok {
		return domain.ErrBookNotFound
	}
	b.Available = true
	b.Borrower = ""
	return nil
}

// SeedBooks loads the initial catalog if the store is still empty
func (r *BookRepo) SeedBooks(books []domain.Book) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.books) > 0 {
		return nil
	}
	for _, b := range books {
		cp := b
		r.books[b.Title] = &cp
		r.order = append(r.order, b.Title)
	}
	return nil
}
