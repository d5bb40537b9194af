package response

// Resp is the standard JSON response body.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}

// Err is an error carrying its own HTTP status and body code. Delivery
// layers map domain errors onto Err values; Error() renders anything else
// as a bad request.
type Err struct {
	Status  int
	Code    int
	Message string
}

// NewErr builds a typed HTTP error.
func NewErr(status, code int, message string) *Err {
	return &Err{Status: status, Code: code, Message: message}
}

// Error implements the error interface.
func (e *Err) Error() string {
	return e.Message
}
