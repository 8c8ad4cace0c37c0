package postgres

import (
	"database/sql"
	"testing"

	"librarian/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestUserRepo_GetUser(t *testing.T) {
	tests := []struct {
		name             string
		userID           int64
		mockRows         *sqlmock.Rows
		mockError        error
		expectedErr      error
		expectedBorrowed []string
	}{
		{
			name:   "user without borrowed books",
			userID: 123,
			mockRows: sqlmock.NewRows([]string{"user_id", "name", "surname", "password", "borrowed_books"}).
				AddRow(int64(123), "Anna", "Ivanova", "p1", ""),
			expectedBorrowed: nil,
		},
		{
			name:   "user with borrowed books",
			userID: 123,
			mockRows: sqlmock.NewRows([]string{"user_id", "name", "surname", "password", "borrowed_books"}).
				AddRow(int64(123), "Anna", "Ivanova", "p1", "Война и мир,Обломов"),
			expectedBorrowed: []string{"Война и мир", "Обломов"},
		},
		{
			name:        "user not exists",
			userID:      789,
			mockError:   sql.ErrNoRows,
			expectedErr: domain.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			assert.NoError(t, err)
			defer db.Close()

			repo := NewUserRepo(db)

			query := "SELECT user_id, name, surname, password, borrowed_books FROM users WHERE user_id = \\$1"

			if tt.mockError != nil {
				mock.ExpectQuery(query).WithArgs(tt.userID).WillReturnError(tt.mockError)
			} else {
				mock.ExpectQuery(query).WithArgs(tt.userID).WillReturnRows(tt.mockRows)
			}

			user, err := repo.GetUser(tt.userID)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.userID, user.UserID)
				assert.Equal(t, tt.expectedBorrowed, user.Borrowed)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepo_FindByName(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewUserRepo(db)

	query := "SELECT user_id, name, surname, password, borrowed_books FROM users WHERE name = \\$1 AND surname = \\$2"
	rows := sqlmock.NewRows([]string{"user_id", "name", "surname", "password", "borrowed_books"}).
		AddRow(int64(123), "Anna", "Ivanova", "p1", "")
	mock.ExpectQuery(query).WithArgs("Anna", "Ivanova").WillReturnRows(rows)

	user, err := repo.FindByName("Anna", "Ivanova")

	assert.NoError(t, err)
	assert.Equal(t, int64(123), user.UserID)
	assert.Equal(t, "p1", user.Password)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_FindByName_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewUserRepo(db)

	query := "SELECT user_id, name, surname, password, borrowed_books FROM users WHERE name = \\$1 AND surname = \\$2"
	mock.ExpectQuery(query).WithArgs("Boris", "Petrov").WillReturnError(sql.ErrNoRows)

	user, err := repo.FindByName("Boris", "Petrov")

	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	assert.Nil(t, user)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_CreateUser(t *testing.T) {
	tests := []struct {
		name         string
		rowsAffected int64
		expectedErr  error
	}{
		{
			name:         "new user",
			rowsAffected: 1,
		},
		{
			name:         "duplicate user",
			rowsAffected: 0,
			expectedErr:  domain.ErrAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			assert.NoError(t, err)
			defer db.Close()

			repo := NewUserRepo(db)

			mock.ExpectExec("INSERT INTO users").
				WithArgs(int64(123), "Anna", "Ivanova", "p1", "").
				WillReturnResult(sqlmock.NewResult(0, tt.rowsAffected))

			err = repo.CreateUser(&domain.User{
				UserID:   123,
				Name:     "Anna",
				Surname:  "Ivanova",
				Password: "p1",
			})

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

// The CSV column must be read and rewritten inside one transaction holding
// the row lock; a plain read-modify-write lets two concurrent borrows of
// different titles by the same user overwrite each other.
const lockQuery = "SELECT borrowed_books FROM users WHERE user_id = \\$1 FOR UPDATE"

func TestUserRepo_AddBorrowed(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewUserRepo(db)

	mock.ExpectBegin()
	mock.ExpectQuery(lockQuery).WithArgs(int64(123)).
		WillReturnRows(sqlmock.NewRows([]string{"borrowed_books"}).AddRow("Обломов"))
	mock.ExpectExec("UPDATE users SET borrowed_books").
		WithArgs("Обломов,Война и мир", int64(123)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err = repo.AddBorrowed(123, "Война и мир")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_AddBorrowed_AlreadyHeld(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewUserRepo(db)

	mock.ExpectBegin()
	mock.ExpectQuery(lockQuery).WithArgs(int64(123)).
		WillReturnRows(sqlmock.NewRows([]string{"borrowed_books"}).AddRow("Война и мир"))
	// No UPDATE expected: the set mutation is idempotent
	mock.ExpectRollback()

	err = repo.AddBorrowed(123, "Война и мир")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_AddBorrowed_UnknownUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewUserRepo(db)

	mock.ExpectBegin()
	mock.ExpectQuery(lockQuery).WithArgs(int64(999)).WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	err = repo.AddBorrowed(999, "Война и мир")

	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_RemoveBorrowed(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewUserRepo(db)

	mock.ExpectBegin()
	mock.ExpectQuery(lockQuery).WithArgs(int64(123)).
		WillReturnRows(sqlmock.NewRows([]string{"borrowed_books"}).AddRow("Обломов,Война и мир"))
	mock.ExpectExec("UPDATE users SET borrowed_books").
		WithArgs("Обломов", int64(123)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err = repo.RemoveBorrowed(123, "Война и мир")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// With the row lock held, a second mutation of the same user's set starts
// from the value the first one committed rather than a stale read.
func TestUserRepo_BorrowedMutationsAreSequenced(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewUserRepo(db)

	mock.ExpectBegin()
	mock.ExpectQuery(lockQuery).WithArgs(int64(123)).
		WillReturnRows(sqlmock.NewRows([]string{"borrowed_books"}).AddRow("Обломов"))
	mock.ExpectExec("UPDATE users SET borrowed_books").
		WithArgs("Обломов,Война и мир", int64(123)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	mock.ExpectBegin()
	mock.ExpectQuery(lockQuery).WithArgs(int64(123)).
		WillReturnRows(sqlmock.NewRows([]string{"borrowed_books"}).AddRow("Обломов,Война и мир"))
	mock.ExpectExec("UPDATE users SET borrowed_books").
		WithArgs("Обломов,Война и мир,Идиот", int64(123)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	assert.NoError(t, repo.AddBorrowed(123, "Война и мир"))
	assert.NoError(t, repo.AddBorrowed(123, "Идиот"))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSplitTitles(t *testing.T) {
	tests := []struct {
		name     string
		csv      string
		expected []string
	}{
		{
			name:     "empty string",
			csv:      "",
			expected: nil,
		},
		{
			name:     "single title",
			csv:      "Война и мир",
			expected: []string{"Война и мир"},
		},
		{
			name:     "several titles",
			csv:      "Война и мир,Обломов",
			expected: []string{"Война и мир", "Обломов"},
		},
		{
			name:     "stray empty segments",
			csv:      ",Война и мир,",
			expected: []string{"Война и мир"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, splitTitles(tt.csv))
		})
	}
}
