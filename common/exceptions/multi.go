package exceptions

import (
	"errors"
	"strings"
)

type MultiError interface {
	error
	Unwrap() []error
}

type multiError struct {
	errors []error
}

func (e *multiError) Error() string {
	messages := make([]string, 0, len(e.errors))
	for _, err := range e.errors {
		messages = append(messages, err.Error())
	}
	return strings.Join(messages, " | ")
}

func (e *multiError) Unwrap() []error {
	return e.errors
}

// Errors joins the non-nil errors. It returns nil when none is left and the
// error itself when only one is.
func Errors(errs ...error) error {
	var filtered []error
	for _, err := range errs {
		if err == nil {
			continue
		}
		if multi, isMulti := err.(*multiError); isMulti {
			filtered = append(filtered, multi.errors...)
			continue
		}
		filtered = append(filtered, err)
	}
	switch len(filtered) {
	case 0:
		return nil
	case 1:
		return filtered[0]
	}
	return &multiError{filtered}
}

// IsMulti reports whether err, or every error joined into it, matches one of
// the targets.
func IsMulti(err error, targetList ...error) bool {
	if multiErr, isMulti := err.(MultiError); isMulti {
		inner := multiErr.Unwrap()
		if len(inner) == 0 {
			return false
		}
		for _, it := range inner {
			if !IsMulti(it, targetList...) {
				return false
			}
		}
		return true
	}
	for _, target := range targetList {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
