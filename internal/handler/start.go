package handler

import (
	"errors"

	"librarian/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleStart handles the /start command. It unconditionally resets the
// dialog, so a session stuck mid-flow always has a way out.
func (h *Handler) handleStart(c tele.Context) error {
	userID := c.Sender().ID

	h.logger.Info("User started bot",
		zap.Int64("user_id", userID),
		zap.String("username", c.Sender().Username),
	)

	h.sessions.Reset(userID)

	user, err := h.account.GetUser(userID)
	if errors.Is(err, domain.ErrUserNotFound) {
		return c.Send(
			"🔹 Добро пожаловать! Пожалуйста, выберите опцию:\n\n- Вход\n- Регистрация",
			startMarkup(),
		)
	}
	if err != nil {
		h.logger.Error("Failed to load user", zap.Error(err), zap.Int64("user_id", userID))
		return c.Send(msgInternalError)
	}

	// Known session: ask straight for the password. Name and surname are
	// prefilled from the record so the final login step can verify them.
	h.sessions.SetScratch(userID, domain.ScratchName, user.Name)
	h.sessions.SetScratch(userID, domain.ScratchSurname, user.Surname)
	h.sessions.SetState(userID, domain.StateLoginPassword)

	return c.Send("🔑 Введите ваш пароль для входа:", startMarkup())
}
