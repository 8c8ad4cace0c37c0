package handler

import (
	"errors"
	"strings"

	"librarian/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleText routes every plain text message. Menu labels win over dialog
// state, matching the original handler registration order; everything else
// is fed to the active flow.
func (h *Handler) handleText(c tele.Context) error {
	text := strings.TrimSpace(c.Text())

	// Commands are routed separately
	if strings.HasPrefix(text, "/") {
		return nil
	}

	switch text {
	case btnRegister:
		return h.startRegistration(c)
	case btnLogin:
		return h.startLogin(c)
	case btnList:
		return h.handleListBooks(c)
	case btnFind:
		return h.askForTitle(c, domain.IntentFind, "Введите название книги, которую хотите найти:")
	case btnBorrow:
		return h.askForTitle(c, domain.IntentBorrow, "Введите название книги, которую хотите зарезервировать:")
	case btnReturn:
		return h.askForTitle(c, domain.IntentReturn, "Введите название книги, которую хотите вернуть:")
	case btnProfile:
		return h.handleProfile(c)
	case btnLogout:
		return h.handleLogout(c)
	}

	return h.continueFlow(c, text)
}

// continueFlow advances the session's active flow with one more input.
// Unrecognized text in the idle state is a no-op.
func (h *Handler) continueFlow(c tele.Context, text string) error {
	userID := c.Sender().ID

	switch h.sessions.State(userID) {
	case domain.StateRegisterName:
		h.sessions.SetScratch(userID, domain.ScratchName, text)
		h.sessions.SetState(userID, domain.StateRegisterSurname)
		return c.Send("Введите вашу фамилию:")

	case domain.StateRegisterSurname:
		h.sessions.SetScratch(userID, domain.ScratchSurname, text)
		h.sessions.SetState(userID, domain.StateRegisterPassword)
		return c.Send("Придумайте пароль:")

	case domain.StateRegisterPassword:
		return h.finishRegistration(c, text)

	case domain.StateLoginName:
		h.sessions.SetScratch(userID, domain.ScratchName, text)
		h.sessions.SetState(userID, domain.StateLoginSurname)
		return c.Send("Введите вашу фамилию:")

	case domain.StateLoginSurname:
		h.sessions.SetScratch(userID, domain.ScratchSurname, text)
		h.sessions.SetState(userID, domain.StateLoginPassword)
		return c.Send("Введите ваш пароль:")

	case domain.StateLoginPassword:
		return h.finishLogin(c, text)

	case domain.StateBookQuery:
		return h.handleBookQuery(c, text)

	default:
		return nil
	}
}

// startRegistration enters the registration flow
func (h *Handler) startRegistration(c tele.Context) error {
	h.sessions.SetState(c.Sender().ID, domain.StateRegisterName)
	return c.Send("🔹 Давайте зарегистрируемся! Введите ваше имя:")
}

// finishRegistration is the final registration step: the incoming text is
// the chosen password. A session that is already registered is turned away
// and its scratch discarded.
func (h *Handler) finishRegistration(c tele.Context, password string) error {
	userID := c.Sender().ID

	name := h.sessions.Scratch(userID, domain.ScratchName)
	surname := h.sessions.Scratch(userID, domain.ScratchSurname)
	h.sessions.Reset(userID)

	err := h.account.Register(userID, name, surname, password)
	if errors.Is(err, domain.ErrAlreadyExists) {
		return c.Send("⛔ Вы уже зарегистрированы. Используйте вход.", startMarkup())
	}
	if err != nil {
		h.logger.Error("Failed to register user", zap.Error(err), zap.Int64("user_id", userID))
		return c.Send(msgInternalError)
	}

	h.logger.Info("User registered", zap.Int64("user_id", userID))
	return c.Send("✅ Регистрация завершена! Добро пожаловать.", menuMarkup())
}

// startLogin enters the login flow
func (h *Handler) startLogin(c tele.Context) error {
	h.sessions.SetState(c.Sender().ID, domain.StateLoginName)
	return c.Send("🔑 Введите ваше имя:")
}

// finishLogin is the final login step. Authentication is by the name and
// surname collected in scratch, not by the session id, as in the original.
// On a mismatch the state is left unchanged so the user can retry the
// password right away.
func (h *Handler) finishLogin(c tele.Context, password string) error {
	userID := c.Sender().ID

	name := h.sessions.Scratch(userID, domain.ScratchName)
	surname := h.sessions.Scratch(userID, domain.ScratchSurname)

	user, err := h.account.Login(name, surname, password)
	if errors.Is(err, domain.ErrInvalidCredentials) {
		return c.Send("❌ Неверное имя, фамилия или пароль. Попробуйте ещё раз.")
	}
	if err != nil {
		h.logger.Error("Failed to log user in", zap.Error(err), zap.Int64("user_id", userID))
		return c.Send(msgInternalError)
	}

	h.logger.Info("User logged in",
		zap.Int64("user_id", userID),
		zap.Int64("account_id", user.UserID),
	)
	h.sessions.Reset(userID)
	return c.Send("✅ Успешный вход, "+user.Name+"!", menuMarkup())
}
