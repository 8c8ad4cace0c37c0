package domain

// DialogState represents the current step of a multi-message flow
type DialogState string

const (
	StateIdle DialogState = "idle"

	StateRegisterName     DialogState = "register_name"
	StateRegisterSurname  DialogState = "register_surname"
	StateRegisterPassword DialogState = "register_password"

	StateLoginName     DialogState = "login_name"
	StateLoginSurname  DialogState = "login_surname"
	StateLoginPassword DialogState = "login_password"

	StateBookQuery DialogState = "book_query"
)

// Scratch keys used by the flows
const (
	ScratchName    = "name"
	ScratchSurname = "surname"
	ScratchIntent  = "intent"
)

// Values for the ScratchIntent key while in StateBookQuery
const (
	IntentFind   = "find"
	IntentBorrow = "borrow"
	IntentReturn = "return"
)
