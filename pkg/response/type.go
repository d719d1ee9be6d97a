package response

// Resp is the standard JSON response body.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}

const (
	// MessageSuccess is the message carried by successful responses.
	MessageSuccess = "Success"

	// InternalServerErrorCode hides internals behind a generic code.
	InternalServerErrorCode = 500

	// DefaultErrorMessage is the generic user-facing failure text.
	DefaultErrorMessage = "Internal server error"
)
