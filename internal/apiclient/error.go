package apiclient

import (
	"net/http"

	"github.com/kart-io/skillswap/pkg/utils/json"
)

// NetworkErrorMessage is shown for any failure before an HTTP status is
// available (DNS, refused connection, timeout).
const NetworkErrorMessage = "Network error. Please check your connection and try again."

// APIError is a failed API call. Status 0 means the request never produced
// an HTTP response.
type APIError struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
	Detail  string `json:"detail,omitempty"`

	cause error
}

func (e *APIError) Error() string {
	return e.Message
}

// Unwrap exposes the transport error behind a status-0 failure.
func (e *APIError) Unwrap() error {
	return e.cause
}

// IsNetwork reports whether the call failed before reaching the server.
func (e *APIError) IsNetwork() bool {
	return e.Status == 0
}

// NetworkError wraps a transport failure in the fixed user-facing message.
func NetworkError(cause error) *APIError {
	return &APIError{Message: NetworkErrorMessage, Status: 0, cause: cause}
}

// errorBody is the wire shape of an API error response.
type errorBody struct {
	Message string `json:"message"`
	Detail  string `json:"detail"`
}

func parseError(status int, raw []byte) *APIError {
	var body errorBody
	if err := json.Unmarshal(raw, &body); err == nil && body.Message != "" {
		return &APIError{Message: body.Message, Status: status, Detail: body.Detail}
	}
	// 响应体不可解析时退回到状态码文案
	msg := http.StatusText(status)
	if msg == "" {
		msg = "Request failed."
	}
	return &APIError{Message: msg, Status: status}
}
