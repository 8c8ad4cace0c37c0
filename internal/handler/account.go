package handler

import (
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleProfile shows the user's record and borrowed titles
func (h *Handler) handleProfile(c tele.Context) error {
	userID := c.Sender().ID

	ok, err := h.requireRegistered(c)
	if !ok {
		return err
	}

	user, err := h.account.GetUser(userID)
	if err != nil {
		h.logger.Error("Failed to load profile", zap.Error(err), zap.Int64("user_id", userID))
		return c.Send(msgInternalError)
	}

	return c.Send(formatProfile(user), menuMarkup())
}

// handleLogout resets the dialog and shows the start keyboard
func (h *Handler) handleLogout(c tele.Context) error {
	userID := c.Sender().ID

	ok, err := h.requireRegistered(c)
	if !ok {
		return err
	}

	h.sessions.Reset(userID)
	return c.Send(
		"Вы вышли из системы. Чтобы вернуться, пожалуйста, выполните вход.",
		startMarkup(),
	)
}
