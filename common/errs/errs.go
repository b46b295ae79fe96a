package errs

import (
	"errors"
	"fmt"
	"net/http"
)

type HttpError struct {
	Code    int
	Message string
	Data    any
}

func (e *HttpError) Error() string {
	return fmt.Sprintf("code %d: %s, data: %v", e.Code, e.Message, e.Data)
}

func NotFound(message string) *HttpError {
	return &HttpError{Code: http.StatusNotFound, Message: message}
}

func BadRequest(message string, data any) *HttpError {
	return &HttpError{Code: http.StatusBadRequest, Message: message, Data: data}
}

// IsNotFound reports whether err is an HttpError carrying a 404, the
// terminal not-found class of the error taxonomy.
func IsNotFound(err error) bool {
	var httpErr *HttpError
	return errors.As(err, &httpErr) && httpErr.Code == http.StatusNotFound
}
