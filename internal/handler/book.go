package handler

import (
	"errors"

	"librarian/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleListBooks sends the whole catalog with availability status
func (h *Handler) handleListBooks(c tele.Context) error {
	books, err := h.catalog.List()
	if err != nil {
		h.logger.Error("Failed to list books", zap.Error(err))
		return c.Send(msgInternalError)
	}
	return c.Send(formatBookList(books))
}

// askForTitle enters the book-query flow with the given intent.
// All book flows are behind the registration guard.
func (h *Handler) askForTitle(c tele.Context, intent, prompt string) error {
	userID := c.Sender().ID

	ok, err := h.requireRegistered(c)
	if !ok {
		return err
	}

	h.sessions.SetScratch(userID, domain.ScratchIntent, intent)
	h.sessions.SetState(userID, domain.StateBookQuery)
	return c.Send(prompt)
}

// handleBookQuery resolves the title reply of a find, borrow or return
// flow and unconditionally returns the session to idle.
func (h *Handler) handleBookQuery(c tele.Context, title string) error {
	userID := c.Sender().ID
	intent := h.sessions.Scratch(userID, domain.ScratchIntent)
	h.sessions.Reset(userID)

	switch intent {
	case domain.IntentBorrow:
		return h.borrowBook(c, title)
	case domain.IntentReturn:
		return h.returnBook(c, title)
	default:
		return h.findBook(c, title)
	}
}

func (h *Handler) findBook(c tele.Context, title string) error {
	book, err := h.catalog.Find(title)
	if errors.Is(err, domain.ErrBookNotFound) {
		return c.Send("❌ Книга не найдена в библиотеке.")
	}
	if err != nil {
		h.logger.Error("Failed to find book", zap.Error(err), zap.String("title", title))
		return c.Send(msgInternalError)
	}
	return c.Send(formatBookStatus(book))
}

func (h *Handler) borrowBook(c tele.Context, title string) error {
	userID := c.Sender().ID

	err := h.lending.Borrow(userID, title)
	switch {
	case err == nil:
		return c.Send("Вы успешно зарезервировали книгу «" + title + "». Не забудьте вернуть её вовремя!")
	case errors.Is(err, domain.ErrBookNotFound):
		return c.Send("Книга не найдена в библиотеке.")
	case errors.Is(err, domain.ErrAlreadyBorrowed):
		return c.Send("Эта книга уже занята.")
	default:
		h.logger.Error("Failed to borrow book",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.String("title", title),
		)
		return c.Send(msgInternalError)
	}
}

func (h *Handler) returnBook(c tele.Context, title string) error {
	userID := c.Sender().ID

	err := h.lending.Return(userID, title)
	switch {
	case err == nil:
		return c.Send("Вы вернули книгу «" + title + "». Спасибо!")
	case errors.Is(err, domain.ErrBookNotFound):
		return c.Send("Книга не найдена в библиотеке.")
	case errors.Is(err, domain.ErrNotBorrowedByUser):
		return c.Send("Эта книга не числится за вами.")
	default:
		h.logger.Error("Failed to return book",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.String("title", title),
		)
		return c.Send(msgInternalError)
	}
}
