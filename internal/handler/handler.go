package handler

import (
	"librarian/internal/dialog"
	"librarian/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Reply texts shared by several handlers
const (
	msgNotRegistered = "⛔ Вы не зарегистрированы. Пожалуйста, зарегистрируйтесь для доступа ко всем функциям."
	msgInternalError = "Произошла ошибка. Попробуйте позже."
)

// Menu button labels; reply-keyboard presses arrive as plain text
const (
	btnLogin    = "🔑 Войти"
	btnRegister = "📝 Регистрация"
	btnList     = "📚 Список книг"
	btnFind     = "🔍 Найти книгу"
	btnBorrow   = "📖 Взять книгу"
	btnReturn   = "↩️ Вернуть книгу"
	btnProfile  = "👤 Личный кабинет"
	btnLogout   = "🚪 Выход"
)

// Handler manages all bot interactions
type Handler struct {
	bot      *tele.Bot
	catalog  *service.CatalogService
	account  *service.AccountService
	lending  *service.LendingService
	sessions *dialog.Store
	logger   *zap.Logger
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	catalog *service.CatalogService,
	account *service.AccountService,
	lending *service.LendingService,
	sessions *dialog.Store,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:      bot,
		catalog:  catalog,
		account:  account,
		lending:  lending,
		sessions: sessions,
		logger:   logger,
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle(tele.OnText, h.handleText)
}

// requireRegistered checks the registration guard for a flow. When the
// session is unregistered it sends the fixed refusal and returns false;
// dialog state stays idle.
func (h *Handler) requireRegistered(c tele.Context) (bool, error) {
	userID := c.Sender().ID

	registered, err := h.account.IsRegistered(userID)
	if err != nil {
		h.logger.Error("Failed to check registration", zap.Error(err), zap.Int64("user_id", userID))
		return false, c.Send(msgInternalError)
	}
	if !registered {
		return false, c.Send(msgNotRegistered, startMarkup())
	}
	return true, nil
}

// startMarkup returns the keyboard shown to unauthenticated sessions
func startMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{ResizeKeyboard: true}
	menu.Reply(
		menu.Row(menu.Text(btnLogin)),
		menu.Row(menu.Text(btnRegister)),
	)
	return menu
}

// menuMarkup returns the main menu keyboard
func menuMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{ResizeKeyboard: true}
	menu.Reply(
		menu.Row(menu.Text(btnList)),
		menu.Row(menu.Text(btnFind), menu.Text(btnBorrow)),
		menu.Row(menu.Text(btnReturn)),
		menu.Row(menu.Text(btnProfile), menu.Text(btnLogout)),
	)
	return menu
}
