package domain

import "errors"

// All conditions below are recoverable by the user re-issuing a command;
// handlers map them to reply messages, none is fatal to the process.
var (
	ErrBookNotFound       = errors.New("book not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrAlreadyExists      = errors.New("user already registered")
	ErrAlreadyBorrowed    = errors.New("book already borrowed")
	ErrNotBorrowedByUser  = errors.New("book not borrowed by this user")
	ErrInvalidCredentials = errors.New("invalid name, surname or password")
)
