package telegram

const (
	sessionPrefix = "telegram_"

	cmdStart = "/start"
	cmdHelp  = "/help"

	msgHelp = "I collect your name, academic year and query, then forward the query to the right university unit.\n\n" +
		"Send /start to begin, or just tell me your name."
	msgError = "Sorry, something went wrong while handling your message. Please try again."
)
