package platform

import "fmt"

// ErrorDomain is the domain of errors raised by the location service.
const ErrorDomain = "kCLErrorDomain"

// Error is a platform error with a domain-scoped code.
type Error struct {
	Domain  string
	Code    int
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s error %d", e.Domain, e.Code)
	}
	return fmt.Sprintf("%s error %d: %s", e.Domain, e.Code, e.Message)
}

// NewError returns a location service error with the given code.
func NewError(code int, message string) *Error {
	return &Error{Domain: ErrorDomain, Code: code, Message: message}
}
