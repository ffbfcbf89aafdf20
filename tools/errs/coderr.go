package errs

import (
	"strconv"

	"github.com/pkg/errors"
)

// CodeError is the JSON body every rejected request gets back.
type CodeError struct {
	Code   int    `json:"code"`
	Msg    string `json:"msg"`
	Detail string `json:"detail,omitempty"`
}

func NewCodeError(code int, msg string) CodeError {
	return CodeError{Code: code, Msg: msg}
}

func (e CodeError) Error() string {
	return strconv.Itoa(e.Code) + ": " + e.Msg
}

func (e CodeError) WithDetail(detail string) CodeError {
	d := detail
	if e.Detail != "" {
		d = e.Detail + ", " + detail
	}
	return CodeError{Code: e.Code, Msg: e.Msg, Detail: d}
}

// Wrap attaches this code error to an underlying cause.
func (e CodeError) Wrap(cause error) error {
	return errors.Wrap(cause, e.Error())
}

// Handshake and admin rejection values.
var (
	ErrInvalidRole     = NewCodeError(1400, "invalid role")
	ErrMissingSession  = NewCodeError(1401, "missing session")
	ErrInvalidToken    = NewCodeError(1402, "invalid token")
	ErrSessionNotFound = NewCodeError(1404, "session not found")
)
