package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"syscall"
)

// StatusError is a non-2xx backend answer
type StatusError struct {
	StatusCode int
	Detail     string
	Method     string
	Path       string
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	msg := fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.StatusCode, http.StatusText(e.StatusCode))
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

// TransportError is a request that never got an HTTP answer
type TransportError struct {
	Method string
	Path   string
	Err    error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.Path, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// newStatusError reads the error body. FastAPI answers {"detail": "..."};
// validation errors carry a list there, which is kept as raw JSON.
func newStatusError(method, path string, resp *http.Response) *StatusError {
	e := &StatusError{StatusCode: resp.StatusCode, Method: method, Path: path}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil || len(body) == 0 {
		return e
	}

	var payload struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && len(payload.Detail) > 0 {
		var s string
		if json.Unmarshal(payload.Detail, &s) == nil {
			e.Detail = s
		} else {
			e.Detail = string(payload.Detail)
		}
		return e
	}

	e.Detail = strings.TrimSpace(string(body))
	return e
}

// StatusCode returns the HTTP status of err, or 0 when err is not a StatusError
func StatusCode(err error) int {
	var se *StatusError
	if errors.As(err, &se) {
		return se.StatusCode
	}
	return 0
}

// IsNotFound reports a 404 answer
func IsNotFound(err error) bool {
	return StatusCode(err) == http.StatusNotFound
}

// IsForbidden reports a 403 answer (the backend uses it for inactive projects)
func IsForbidden(err error) bool {
	return StatusCode(err) == http.StatusForbidden
}

// IsBadRequest reports a 400 or 422 answer
func IsBadRequest(err error) bool {
	code := StatusCode(err)
	return code == http.StatusBadRequest || code == http.StatusUnprocessableEntity
}

// ErrorCode classifies connection failures
type ErrorCode int

const (
	ErrUnknown ErrorCode = iota
	ErrConnectionRefused
	ErrTimeout
	ErrHostNotFound
	ErrUnauthorized
	ErrServer
)

// ConnectionError is a classified failure with a hint for the user
type ConnectionError struct {
	Code    ErrorCode
	Message string
	Hint    string
}

// Error implements the error interface.
func (e *ConnectionError) Error() string {
	if e.Hint != "" {
		return e.Message + ". " + e.Hint
	}
	return e.Message
}

// Classify maps common failures to a ConnectionError. baseURL is used in hints.
func Classify(err error, baseURL string) *ConnectionError {
	if err == nil {
		return nil
	}

	var errno syscall.Errno
	if errors.As(err, &errno) && errno == syscall.ECONNREFUSED {
		return &ConnectionError{
			Code:    ErrConnectionRefused,
			Message: "Connection refused",
			Hint:    "Is the UGC API running at " + baseURL + "?",
		}
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return &ConnectionError{
			Code:    ErrHostNotFound,
			Message: "Host not found",
			Hint:    "Check api.base_url in the config file or UGCCTL_API_URL",
		}
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &ConnectionError{
			Code:    ErrTimeout,
			Message: "Request timed out",
			Hint:    "Increase api.timeout or check the server load",
		}
	}

	switch code := StatusCode(err); {
	case code == http.StatusUnauthorized:
		return &ConnectionError{
			Code:    ErrUnauthorized,
			Message: "Unauthorized",
			Hint:    "Set api.token in the config file or UGCCTL_API_TOKEN",
		}
	case code >= 500:
		return &ConnectionError{
			Code:    ErrServer,
			Message: fmt.Sprintf("Server error (%d)", code),
			Hint:    "Check the UGC API logs",
		}
	}

	return &ConnectionError{Code: ErrUnknown, Message: err.Error()}
}
