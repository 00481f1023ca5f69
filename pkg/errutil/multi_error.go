// Package errutil contains utilities for working with errors.
package errutil

import "strings"

// Multi combines multiple errors into one. Nil errors are dropped; if no
// error is left, Multi returns nil, and if one is left, it is returned as is.
//
// Errors returned by Multi are flattened when passed to Multi again, and can
// be inspected with errors.Is and errors.As.
func Multi(errs ...error) error {
	var nonNil []error
	for _, err := range errs {
		if multi, ok := err.(multiError); ok {
			nonNil = append(nonNil, multi...)
		} else if err != nil {
			nonNil = append(nonNil, err)
		}
	}
	switch len(nonNil) {
	case 0:
		return nil
	case 1:
		return nonNil[0]
	default:
		return multiError(nonNil)
	}
}

type multiError []error

func (me multiError) Error() string {
	msgs := make([]string, len(me))
	for i, e := range me {
		msgs[i] = e.Error()
	}
	return "multiple errors: " + strings.Join(msgs, "; ")
}

func (me multiError) Unwrap() []error { return me }
