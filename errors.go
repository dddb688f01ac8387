package flagset

import (
	"github.com/pkg/errors"
)

// Returned by a value when text can't be converted to its type.
var ErrSyntax = errors.New("invalid syntax")

// Default help flag was provided, and should be handled.
var ErrDefaultHelp = errors.New("help flag")

type userError struct {
	msg string
	err error
}

func (ue userError) Error() string {
	if ue.err == nil {
		return ue.msg
	}
	return ue.msg + ": " + ue.err.Error()
}

func (ue userError) Unwrap() error {
	return ue.err
}
