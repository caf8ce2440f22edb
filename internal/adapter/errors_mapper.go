package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

var statusErrors = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrNotFound,
	http.StatusConflict:            ErrConflict,
	http.StatusUnprocessableEntity: ErrUnprocessable,
	http.StatusInternalServerError: ErrInternalServerError,
	http.StatusBadGateway:          ErrBadGateway,
	http.StatusServiceUnavailable:  ErrServiceUnavailable,
}

// StatusError is a non-2xx server answer. It unwraps to the sentinel error
// registered for its status, so errors.Is(err, ErrNotFound) works on it.
type StatusError struct {
	Status int
	Body   string
	kind   error
}

func (e *StatusError) Error() string {
	if e.kind != nil {
		return fmt.Sprintf("%s: %s", e.kind, e.Body)
	}
	return fmt.Sprintf("http %d: %s", e.Status, e.Body)
}

func (e *StatusError) Unwrap() error {
	return e.kind
}

func mapHTTPError(resp *resty.Response) error {
	status := resp.StatusCode()
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(status)
	}

	return &StatusError{Status: status, Body: body, kind: statusErrors[status]}
}
