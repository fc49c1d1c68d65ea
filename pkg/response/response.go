package response

import "net/http"

// ErrorKind is a machine-readable error category returned to API callers.
// Each kind maps to the HTTP status the endpoint contract promises.
type ErrorKind string

const (
	ErrorKindValidation ErrorKind = "validation_error"
	ErrorKindNotFound   ErrorKind = "not_found"
	ErrorKindProvider   ErrorKind = "provider_error"
	ErrorKindUnapproved ErrorKind = "unapproved"
	ErrorKindTimeout    ErrorKind = "timeout"
	ErrorKindInternal   ErrorKind = "internal_error"
)

var kindToStatus = map[ErrorKind]int{
	ErrorKindValidation: http.StatusBadRequest,
	ErrorKindNotFound:   http.StatusNotFound,
	ErrorKindProvider:   http.StatusInternalServerError,
	ErrorKindUnapproved: http.StatusBadRequest,
	ErrorKindTimeout:    http.StatusRequestTimeout,
	ErrorKindInternal:   http.StatusInternalServerError,
}

// HTTPStatus returns the status code for the kind; unknown kinds are 500.
func (k ErrorKind) HTTPStatus() int {
	if s, ok := kindToStatus[k]; ok {
		return s
	}
	return http.StatusInternalServerError
}

// ErrorBody is the JSON error payload shared by all endpoints.
type ErrorBody struct {
	Code  ErrorKind `json:"code"`
	Error string    `json:"error"`
}

func NewError(kind ErrorKind, msg string) *ErrorBody {
	return &ErrorBody{Code: kind, Error: msg}
}

// Message is the generic success payload for endpoints that only
// acknowledge an action.
type Message struct {
	Message string `json:"message"`
}

func OK(msg string) *Message {
	return &Message{Message: msg}
}
