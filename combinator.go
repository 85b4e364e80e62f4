package schema

import (
	"context"
	"strings"

	"github.com/finalsatan/schema/i18n"
)

// AndSchema is the sequential conjunction: data is piped through each
// sub-schema in listed order, each step replacing the value with the previous
// step's result. One element may coerce the value and a later one validate
// the coerced form. The first failing step wins.
type AndSchema struct {
	args           []any
	errMsg         string
	allowWrongKeys bool
}

// And builds a conjunction over the given sub-schema descriptions.
func And(args ...any) *AndSchema {
	return &AndSchema{args: args, allowWrongKeys: true}
}

// WithError overrides auto-generated messages for every sub-schema.
func (a *AndSchema) WithError(msg string) *AndSchema {
	a.errMsg = msg
	return a
}

// DisallowWrongKeys propagates the strict wrong-key policy to every
// sub-schema.
func (a *AndSchema) DisallowWrongKeys() *AndSchema {
	a.allowWrongKeys = false
	return a
}

func (a *AndSchema) String() string { return "And(" + displayArgs(a.args) + ")" }

func (a *AndSchema) Validate(ctx context.Context, data any) (any, error) {
	for _, arg := range a.args {
		sub := &Schema{desc: arg, errMsg: a.errMsg, allowWrongKeys: a.allowWrongKeys}
		res, err := sub.Validate(ctx, data)
		if err != nil {
			return nil, err
		}
		data = res
	}
	return data, nil
}

// OrSchema is the first-success disjunction: each alternative sees the
// original data and the first success returns immediately. When every
// alternative fails, only the last attempt's diagnostics survive, prefixed
// with a synthetic no-match message.
type OrSchema struct {
	args           []any
	errMsg         string
	allowWrongKeys bool
}

// Or builds a disjunction over the given sub-schema descriptions.
func Or(args ...any) *OrSchema {
	return &OrSchema{args: args, allowWrongKeys: true}
}

// WithError overrides auto-generated messages for every alternative.
func (o *OrSchema) WithError(msg string) *OrSchema {
	o.errMsg = msg
	return o
}

// DisallowWrongKeys propagates the strict wrong-key policy to every
// alternative.
func (o *OrSchema) DisallowWrongKeys() *OrSchema {
	o.allowWrongKeys = false
	return o
}

func (o *OrSchema) String() string { return "Or(" + displayArgs(o.args) + ")" }

func (o *OrSchema) Validate(ctx context.Context, data any) (any, error) {
	var last *Error
	for _, arg := range o.args {
		sub := &Schema{desc: arg, errMsg: o.errMsg, allowWrongKeys: o.allowWrongKeys}
		res, err := sub.Validate(ctx, data)
		if err == nil {
			return res, nil
		}
		last, _ = AsError(err)
	}
	e := &Error{
		Autos: []string{i18n.T(CodeNoMatch, map[string]string{
			"schema": o.String(),
			"data":   display(data),
		})},
		Customs: []string{o.errMsg},
	}
	if last != nil {
		e.Autos = append(e.Autos, last.Autos...)
		e.Customs = append(e.Customs, last.Customs...)
	}
	return nil, e
}

func displayArgs(args []any) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = display(a)
	}
	return strings.Join(parts, ", ")
}
