package postgres

import (
	"database/sql"
	"testing"

	"librarian/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestBookRepo_GetBook(t *testing.T) {
	tests := []struct {
		name         string
		title        string
		mockRows     *sqlmock.Rows
		mockError    error
		expectedErr  error
		expectedBook *domain.Book
	}{
		{
			name:  "available book",
			title: "Война и мир",
			mockRows: sqlmock.NewRows([]string{"title", "author", "available", "borrower"}).
				AddRow("Война и мир", "Лев Толстой", true, nil),
			expectedBook: &domain.Book{Title: "Война и мир", Author: "Лев Толстой", Available: true},
		},
		{
			name:  "borrowed book",
			title: "Обломов",
			mockRows: sqlmock.NewRows([]string{"title", "author", "available", "borrower"}).
				AddRow("Обломов", "Иван Гончаров", false, "Anna Ivanova"),
			expectedBook: &domain.Book{Title: "Обломов", Author: "Иван Гончаров", Available: false, Borrower: "Anna Ivanova"},
		},
		{
			name:        "unknown title",
			title:       "Нет такой",
			mockError:   sql.ErrNoRows,
			expectedErr: domain.ErrBookNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			assert.NoError(t, err)
			defer db.Close()

			repo := NewBookRepo(db)

			query := "SELECT title, author, available, borrower FROM books WHERE title = \\$1"

			if tt.mockError != nil {
				mock.ExpectQuery(query).WithArgs(tt.title).WillReturnError(tt.mockError)
			} else {
				mock.ExpectQuery(query).WithArgs(tt.title).WillReturnRows(tt.mockRows)
			}

			book, err := repo.GetBook(tt.title)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, book)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedBook, book)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestBookRepo_ListBooks(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewBookRepo(db)

	rows := sqlmock.NewRows([]string{"title", "author", "available", "borrower"}).
		AddRow("Война и мир", "Лев Толстой", true, nil).
		AddRow("Обломов", "Иван Гончаров", false, "Anna Ivanova")
	mock.ExpectQuery("SELECT title, author, available, borrower FROM books ORDER BY id").
		WillReturnRows(rows)

	books, err := repo.ListBooks()

	assert.NoError(t, err)
	assert.Len(t, books, 2)
	assert.Equal(t, "Война и мир", books[0].Title)
	assert.True(t, books[0].Available)
	assert.Equal(t, "Anna Ivanova", books[1].Borrower)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookRepo_SetBorrowed(t *testing.T) {
	tests := []struct {
		name         string
		rowsAffected int64
		expectedErr  error
	}{
		{
			name:         "existing title",
			rowsAffected: 1,
		},
		{
			name:         "unknown title",
			rowsAffected: 0,
			expectedErr:  domain.ErrBookNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			assert.NoError(t, err)
			defer db.Close()

			repo := NewBookRepo(db)

			mock.ExpectExec("UPDATE books SET available = FALSE, borrower = \\$2").
				WithArgs("Война и мир", "Anna Ivanova").
				WillReturnResult(sqlmock.NewResult(0, tt.rowsAffected))

			err = repo.SetBorrowed("Война и мир", "Anna Ivanova")

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestBookRepo_SetReturned(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewBookRepo(db)

	mock.ExpectExec("UPDATE books SET available = TRUE, borrower = NULL").
		WithArgs("Война и мир").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.SetReturned("Война и мир")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookRepo_SeedBooks_EmptyTable(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewBookRepo(db)

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM books").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec("INSERT INTO books").
		WithArgs("Война и мир", "Лев Толстой", true).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err = repo.SeedBooks([]domain.Book{
		{Title: "Война и мир", Author: "Лев Толстой", Available: true},
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookRepo_SeedBooks_AlreadySeeded(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewBookRepo(db)

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM books").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(44))

	// No INSERTs expected when the table already has rows
	err = repo.SeedBooks([]domain.Book{
		{Title: "Война и мир", Author: "Лев Толстой", Available: true},
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
