package gsheets

const (
	ValueInputRaw        = "RAW"
	InsertDataInsertRows = "INSERT_ROWS"
)

// TokenFile is where the OAuth Desktop flow stores its token, relative to the working directory.
const TokenFile = "token.json"
