package schema

import (
	"context"

	"github.com/finalsatan/schema/i18n"
)

// UseSchema applies a one-argument transform to the value and returns its
// result, letting a conjunction coerce data mid-pipeline. A returned *Error
// is wrapped like a nested validator failure; any other error or a panic
// becomes a host failure.
type UseSchema struct {
	fn     func(any) (any, error)
	errMsg string
}

// Use wraps a transform function. Ready-made transforms live in codec/.
func Use(fn func(any) (any, error)) *UseSchema {
	return &UseSchema{fn: fn}
}

// WithError overrides the messages produced when the transform fails.
func (u *UseSchema) WithError(msg string) *UseSchema {
	u.errMsg = msg
	return u
}

func (u *UseSchema) String() string { return "Use(" + funcName(u.fn) + ")" }

func (u *UseSchema) Validate(ctx context.Context, data any) (any, error) {
	res, err := safeTransform(u.fn, data)
	if err == nil {
		return res, nil
	}
	if se, ok := AsError(err); ok {
		return nil, se.wrap("", u.errMsg)
	}
	return nil, newError(i18n.T(CodeHostFailure, map[string]string{
		"target": funcName(u.fn),
		"data":   display(data),
		"cause":  err.Error(),
	}), u.errMsg)
}

func safeTransform(fn func(any) (any, error), data any) (res any, err error) {
	defer func() {
		if r := recover(); r != nil {
			res, err = nil, recoveredError(r)
		}
	}()
	return fn(data)
}
