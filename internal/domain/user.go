package domain

// User represents a registered reader, keyed by Telegram user id
type User struct {
	UserID   int64
	Name     string
	Surname  string
	Password string
	Borrowed []string // titles currently held, in borrow order
}

// DisplayName returns the name recorded on borrowed books
func (u *User) DisplayName() string {
	return u.Name + " " + u.Surname
}

// HasBorrowed reports whether the user currently holds the title
func (u *User) HasBorrowed(title string) bool {
	for _, t := range u.Borrowed {
		if t == title {
			return true
		}
	}
	return false
}
