package postgres

import (
	"database/sql"
	"strings"

	"librarian/internal/domain"
)

// UserRepo implements repository.UserRepository
type UserRepo struct {
	db *sql.DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

// GetUser returns a user by Telegram id
func (r *UserRepo) GetUser(userID int64) (*domain.User, error) {
	query := `SELECT user_id, name, surname, password, borrowed_books FROM users WHERE user_id = $1`

	var u domain.User
	var borrowed string
	err := r.db.QueryRow(query, userID).Scan(&u.UserID, &u.Name, &u.Surname, &u.Password, &borrowed)

	if err == sql.ErrNoRows {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	u.Borrowed = splitTitles(borrowed)
	return &u, nil
}

// FindByName returns a user by name and surname.
// Login authenticates by this pair rather than by session id.
func (r *UserRepo) FindByName(name, surname string) (*domain.User, error) {
	query := `SELECT user_id, name, surname, password, borrowed_books FROM users WHERE name = $1 AND surname = $2`

	var u domain.User
	var borrowed string
	err := r.db.QueryRow(query, name, surname).Scan(&u.UserID, &u.Name, &u.Surname, &u.Password, &borrowed)

	if err == sql.ErrNoRows {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	u.Borrowed = splitTitles(borrowed)
	return &u, nil
}

// CreateUser inserts a new user record. Fails with domain.ErrAlreadyExists
// if the id is already registered; the existing record is left untouched.
func (r *UserRepo) CreateUser(user *domain.User) error {
	query := `
		INSERT INTO users (user_id, name, surname, password, borrowed_books)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id) DO NOTHING
	`
	res, err := r.db.Exec(query, user.UserID, user.Name, user.Surname, user.Password, joinTitles(user.Borrowed))
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrAlreadyExists
	}
	return nil
}

// AddBorrowed appends a title to the user's borrowed set. Idempotent.
func (r *UserRepo) AddBorrowed(userID int64, title string) error {
	return r.mutateBorrowed(userID, func(titles []string) []string {
		for _, t := range titles {
			if t == title {
				return titles
			}
		}
		return append(titles, title)
	})
}

// RemoveBorrowed removes a title from the user's borrowed set. Idempotent.
func (r *UserRepo) RemoveBorrowed(userID int64, title string) error {
	return r.mutateBorrowed(userID, func(titles []string) []string {
		kept := make([]string, 0, len(titles))
		for _, t := range titles {
			if t != title {
				kept = append(kept, t)
			}
		}
		return kept
	})
}

// mutateBorrowed rewrites the CSV column under a row lock. The read and the
// write must be one atomic step: two concurrent edits of the same user's set
// would otherwise overwrite each other and silently drop a title.
func (r *UserRepo) mutateBorrowed(userID int64, edit func([]string) []string) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var borrowed string
	query := `SELECT borrowed_books FROM users WHERE user_id = $1 FOR UPDATE`
	err = tx.QueryRow(query, userID).Scan(&borrowed)

	if err == sql.ErrNoRows {
		return domain.ErrUserNotFound
	}
	if err != nil {
		return err
	}

	updated := joinTitles(edit(splitTitles(borrowed)))
	if updated == borrowed {
		return nil
	}

	if _, err := tx.Exec(`UPDATE users SET borrowed_books = $1 WHERE user_id = $2`, updated, userID); err != nil {
		return err
	}
	return tx.Commit()
}

// borrowed_books is a CSV column, same layout as the original schema
func splitTitles(csv string) []string {
	if csv == "" {
		return nil
	}
	parts := strings.Split(csv, ",")
	titles := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			titles = append(titles, p)
		}
	}
	return titles
}

func joinTitles(titles []string) string {
	return strings.Join(titles, ",")
}
