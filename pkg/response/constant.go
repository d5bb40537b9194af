package response

const (
	MessageSuccess      = "Success"
	DefaultErrorMessage = "something went wrong"
)

const (
	InternalServerErrorCode = 500
	TooManyRequestsCode     = 429
)
