package service

import (
	"fmt"
	"sync"

	"librarian/internal/domain"
	"librarian/internal/repository"

	"go.uber.org/zap"
)

// LendingService applies borrow and return operations, keeping the catalog
// and the per-user borrowed sets consistent.
type LendingService struct {
	bookRepo repository.BookRepository
	userRepo repository.UserRepository
	logger   *zap.Logger

	// one mutex per title; check-then-mutate is a critical section,
	// otherwise two concurrent borrows of the same title both succeed
	titleLocks sync.Map
}

// NewLendingService creates a new lending service
func NewLendingService(bookRepo repository.BookRepository, userRepo repository.UserRepository, logger *zap.Logger) *LendingService {
	return &LendingService{
		bookRepo: bookRepo,
		userRepo: userRepo,
		logger:   logger,
	}
}

// Borrow reserves a title for the user.
// Returns domain.ErrBookNotFound or domain.ErrAlreadyBorrowed; of two
// concurrent borrows of one available title exactly one succeeds.
func (s *LendingService) Borrow(userID int64, title string) error {
	user, err := s.userRepo.GetUser(userID)
	if err != nil {
		return fmt.Errorf("borrow %q: %w", title, err)
	}

	lock := s.lockTitle(title)
	lock.Lock()
	defer lock.Unlock()

	book, err := s.bookRepo.GetBook(title)
	if err != nil {
		return fmt.Errorf("borrow %q: %w", title, err)
	}
	if !book.Available {
		return domain.ErrAlreadyBorrowed
	}

	if err := s.bookRepo.SetBorrowed(title, user.DisplayName()); err != nil {
		return fmt.Errorf("borrow %q: %w", title, err)
	}

	if err := s.userRepo.AddBorrowed(userID, title); err != nil {
		// roll the catalog back so the two stores do not diverge
		if rbErr := s.bookRepo.SetReturned(title); rbErr != nil {
			s.logger.Error("Failed to roll back borrow",
				zap.String("title", title),
				zap.Int64("user_id", userID),
				zap.Error(rbErr),
			)
		}
		return fmt.Errorf("borrow %q: %w", title, err)
	}

	s.logger.Info("Book borrowed",
		zap.String("title", title),
		zap.Int64("user_id", userID),
		zap.String("borrower", user.DisplayName()),
	)
	return nil
}

// Return releases a title held by the user.
// Only the recorded borrower may release a book; anyone else gets
// domain.ErrNotBorrowedByUser.
func (s *LendingService) Return(userID int64, title string) error {
	user, err := s.userRepo.GetUser(userID)
	if err != nil {
		return fmt.Errorf("return %q: %w", title, err)
	}

	lock := s.lockTitle(title)
	lock.Lock()
	defer lock.Unlock()

	book, err := s.bookRepo.GetBook(title)
	if err != nil {
		return fmt.Errorf("return %q: %w", title, err)
	}
	if book.Available || book.Borrower != user.DisplayName() {
		return domain.ErrNotBorrowedByUser
	}

	if err := s.bookRepo.SetReturned(title); err != nil {
		return fmt.Errorf("return %q: %w", title, err)
	}

	if err := s.userRepo.RemoveBorrowed(userID, title); err != nil {
		if rbErr := s.bookRepo.SetBorrowed(title, user.DisplayName()); rbErr != nil {
			s.logger.Error("Failed to roll back return",
				zap.String("title", title),
				zap.Int64("user_id", userID),
				zap.Error(rbErr),
			)
		}
		return fmt.Errorf("return %q: %w", title, err)
	}

	s.logger.Info("Book returned",
		zap.String("title", title),
		zap.Int64("user_id", userID),
	)
	return nil
}

func (s *LendingService) lockTitle(title string) *sync.Mutex {
	lock, _ := s.titleLocks.LoadOrStore(title, &sync.Mutex{})
	return lock.(*sync.Mutex)
}
