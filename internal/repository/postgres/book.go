package postgres

import (
	"database/sql"

	"librarian/internal/domain"
)

// BookRepo implements repository.BookRepository
type BookRepo struct {
	db *sql.DB
}

// NewBookRepo creates a new book repository
func NewBookRepo(db *sql.DB) *BookRepo {
	return &BookRepo{db: db}
}

// ListBooks returns all catalog entries in insertion order
func (r *BookRepo) ListBooks() ([]domain.Book, error) {
	query := `SELECT title, author, available, borrower FROM books ORDER BY id`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var books []domain.Book
	for rows.Next() {
		var b domain.Book
		var borrower sql.NullString
		if err := rows.Scan(&b.Title, &b.Author, &b.Available, &borrower); err != nil {
			return nil, err
		}
		if borrower.Valid {
			b.Borrower = borrower.String
		}
		books = append(books, b)
	}

	return books, rows.Err()
}

// GetBook returns a book by exact title match
func (r *BookRepo) GetBook(title string) (*domain.Book, error) {
	query := `SELECT title, author, available, borrower FROM books WHERE title = $1`

	var b domain.Book
	var borrower sql.NullString
	err := r.db.QueryRow(query, title).Scan(&b.Title, &b.Author, &b.Available, &borrower)

	if err == sql.ErrNoRows {
		return nil, domain.ErrBookNotFound
	}
	if err != nil {
		return nil, err
	}

	if borrower.Valid {
		b.Borrower = borrower.String
	}
	return &b, nil
}

// SetBorrowed marks a book as held by the given borrower
func (r *BookRepo) SetBorrowed(title, borrower string) error {
	query := `UPDATE books SET available = FALSE, borrower = $2 WHERE title = $1`
	return r.execOnTitle(query, title, borrower)
}

// SetReturned marks a book as available again
func (r *BookRepo) SetReturned(title string) error {
	query := `UPDATE books SET available = TRUE, borrower = NULL WHERE title = $1`
	return r.execOnTitle(query, title)
}

func (r *BookRepo) execOnTitle(query string, args ...interface{}) error {
	res, err := r.db.Exec(query, args...)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrBookNotFound
	}
	return nil
}

// SeedBooks loads the initial catalog if the table is still empty
func (r *BookRepo) SeedBooks(books []domain.Book) error {
	var count int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM books`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	query := `INSERT INTO books (title, author, available, borrower) VALUES ($1, $2, $3, NULL)`
	for _, b := range books {
		if _, err := r.db.Exec(query, b.Title, b.Author, b.Available); err != nil {
			return err
		}
	}
	return nil
}
