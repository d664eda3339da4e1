package model

// Envelope status values.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// ErrorDetails is the machine-readable part of an error response.
type ErrorDetails struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Response is the envelope every endpoint answers with.
// Data is set only on success and Errors only on failure.
type Response[T any] struct {
	Status  string        `json:"status"`
	Message string        `json:"message"`
	Data    *T            `json:"data"`
	Errors  *ErrorDetails `json:"errors"`
}

// Success wraps data in a success envelope.
func Success[T any](message string, data T) Response[T] {
	return Response[T]{
		Status:  StatusSuccess,
		Message: message,
		Data:    &data,
	}
}

// Empty is a success envelope without data.
func Empty(message string) Response[struct{}] {
	return Response[struct{}]{
		Status:  StatusSuccess,
		Message: message,
	}
}

// Failure builds an error envelope for the given kind.
func Failure(kind ErrorKind, message, detail string) Response[struct{}] {
	return Response[struct{}]{
		Status:  StatusError,
		Message: message,
		Errors: &ErrorDetails{
			Code:    string(kind),
			Message: detail,
		},
	}
}
