package core

import (
	"errors"
	"fmt"
)

// General error codes
const (
	NOERROR   int = 0
	EMISSING  int = 122 // resource or collaborator does not exist
	EINVALID  int = 123 // validation failed
	EINTERNAL int = 125 // internal error
)

func errorText(ecode int) string {
	switch ecode {
	case NOERROR:
		return "OK"
	case EMISSING:
		return "not found"
	case EINVALID:
		return "invalid"
	case EINTERNAL:
		return "internal error"
	}
	return "undefined error"
}

// AppError is an error with an associated error code and a user-message.
type AppError interface {
	error
	ErrorCode() int
	UserMessage() string
}

type appError struct {
	error
	code int
	msg  string
}

func (e appError) Unwrap() error {
	return e.error
}

func (e appError) Error() string {
	return fmt.Sprintf("[%d] %v", e.code, e.error)
}

func (e appError) ErrorCode() int {
	return e.code
}

func (e appError) UserMessage() string {
	return e.msg
}

var _ AppError = appError{}

// Error creates an error with an error code and a user-message.
func Error(code int, format string, v ...interface{}) error {
	return appError{
		errors.New(errorText(code)),
		code,
		fmt.Sprintf(format, v...),
	}
}

// WrapError wraps an error in an app error, featuring an error code and
// a user message. If err is nil, an error denoting NOERROR is returned.
func WrapError(err error, code int, format string, v ...interface{}) error {
	if err == nil {
		err = errors.New(errorText(code))
	}
	return appError{err, code, fmt.Sprintf(format, v...)}
}

// Code returns the error code associated with an error.
// If no code is found, it returns EINTERNAL.
// If err is nil, NOERROR is returned.
func Code(err error) int {
	if err == nil {
		return NOERROR
	}
	if e := AppError(nil); errors.As(err, &e) {
		return e.ErrorCode()
	}
	return EINTERNAL
}

// UserMessage returns the user message associated with an error.
// If no message is found, it falls back to the text for Code(err).
// If err is nil, it returns "".
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	if e := AppError(nil); errors.As(err, &e) {
		return e.UserMessage()
	}
	return errorText(Code(err))
}
