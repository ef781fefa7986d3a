package constants

const (
	MSG_SUCCESS     = "Success"
	MSG_WRONG_EMAIL = "Wrong Email"
	MSG_WRONG_HOUR  = "Wrong Hour"
	MSG_RESERVED    = "Reserved"

	ERROR_INPUT              = "Invalid input data"
	ERROR_QUERY              = "Query failed"
	DATA_INPUT_IS_NOT_NUMBER = "Param is not a number"
)
