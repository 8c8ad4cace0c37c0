package domain

// Book represents a catalog entry. Title is the unique key.
type Book struct {
	Title     string
	Author    string
	Available bool
	Borrower  string // display name of the current holder, empty while available
}
