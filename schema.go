package schema

import (
	"context"
	"fmt"
	"reflect"

	"github.com/finalsatan/schema/i18n"
)

// Validator is the validate capability shared by every schema-like node.
// Nested *Schema, combinators, Use wrappers, Optional markers, and user code
// all satisfy it. Validate returns the (possibly transformed) value or an
// *Error describing the failure chain.
type Validator interface {
	Validate(ctx context.Context, data any) (any, error)
}

// Schema wraps an arbitrary description value together with an optional
// custom error message and the wrong-key policy for keyed mappings. A node is
// immutable once the construction chain finishes; Validate never mutates it.
type Schema struct {
	desc           any
	errMsg         string
	allowWrongKeys bool
}

// New wraps a description: a literal, a reflect.Type (see Type), a predicate
// func, a Validator, a slice/array of alternatives, or a key->schema map.
func New(desc any) *Schema {
	return &Schema{desc: desc, allowWrongKeys: true}
}

// WithError overrides every auto-generated message produced under this node.
func (s *Schema) WithError(msg string) *Schema {
	s.errMsg = msg
	return s
}

// DisallowWrongKeys makes keyed-mapping validation reject input keys that
// match no schema key. The default policy silently drops them.
func (s *Schema) DisallowWrongKeys() *Schema {
	s.allowWrongKeys = false
	return s
}

func (s *Schema) String() string { return "Schema(" + display(s.desc) + ")" }

// Type returns the type marker for T, usable anywhere a description is
// expected. Interface types test satisfaction, concrete types identity.
func Type[T any]() reflect.Type { return reflect.TypeOf((*T)(nil)).Elem() }

// sub wraps a nested description, inheriting the error override and
// wrong-key policy of the current node.
func (s *Schema) sub(desc any) *Schema {
	return &Schema{desc: desc, errMsg: s.errMsg, allowWrongKeys: s.allowWrongKeys}
}

// Validate checks data against the wrapped description, dispatching on its
// flavor. It returns a freshly built value for containers and mappings and
// the input unchanged for leaves.
func (s *Schema) Validate(ctx context.Context, data any) (any, error) {
	switch flavorOf(s.desc) {
	case flavorIterable:
		return s.validateIterable(ctx, data)
	case flavorMapping:
		return s.validateMapping(ctx, data)
	case flavorType:
		return s.validateType(data)
	case flavorValidator:
		return s.validateValidator(ctx, data)
	case flavorCallable:
		return s.validateCallable(ctx, data)
	}
	if equal(s.desc, data) {
		return data, nil
	}
	return nil, newError(i18n.T(CodeMismatch, map[string]string{
		"schema": display(s.desc),
		"data":   display(data),
	}), s.errMsg)
}

func (s *Schema) validateType(data any) (any, error) {
	t := s.desc.(reflect.Type)
	if instanceOf(data, t) {
		return data, nil
	}
	return nil, newError(i18n.T(CodeInstanceOf, map[string]string{
		"data": display(data),
		"type": t.String(),
	}), s.errMsg)
}

func (s *Schema) validateValidator(ctx context.Context, data any) (any, error) {
	v := s.desc.(Validator)
	res, err := safeValidate(ctx, v, data)
	if err == nil {
		return res, nil
	}
	if se, ok := AsError(err); ok {
		return nil, se.wrap("", s.errMsg)
	}
	return nil, newError(i18n.T(CodeHostFailure, map[string]string{
		"target": display(s.desc) + ".Validate",
		"data":   display(data),
		"cause":  err.Error(),
	}), s.errMsg)
}

func (s *Schema) validateCallable(ctx context.Context, data any) (any, error) {
	name := funcName(s.desc)
	verdict, err := callPredicate(s.desc, data)
	if err != nil {
		if se, ok := AsError(err); ok {
			return nil, se.wrap("", s.errMsg)
		}
		return nil, newError(i18n.T(CodeHostFailure, map[string]string{
			"target": name,
			"data":   display(data),
			"cause":  err.Error(),
		}), s.errMsg)
	}
	if verdict {
		return data, nil
	}
	return nil, newError(i18n.T(CodePredicateFalse, map[string]string{
		"pred": name,
		"data": display(data),
	}), s.errMsg)
}

func (s *Schema) validateIterable(ctx context.Context, data any) (any, error) {
	st := reflect.TypeOf(s.desc)
	dv := reflect.ValueOf(data)
	if data == nil || dv.Kind() != st.Kind() {
		return nil, newError(i18n.T(CodeInstanceOf, map[string]string{
			"data": display(data),
			"type": st.Kind().String(),
		}), s.errMsg)
	}

	// Each element must match any of the listed alternatives.
	sv := reflect.ValueOf(s.desc)
	alts := make([]any, sv.Len())
	for i := range alts {
		alts[i] = sv.Index(i).Interface()
	}
	alt := Or(alts...).WithError(s.errMsg)

	elemType := dv.Type().Elem()
	if dv.Kind() == reflect.Slice {
		out := reflect.MakeSlice(dv.Type(), 0, dv.Len())
		for i := 0; i < dv.Len(); i++ {
			res, err := alt.Validate(ctx, dv.Index(i).Interface())
			if err != nil {
				return nil, err
			}
			rv, ok := toValue(res, elemType)
			if !ok {
				return nil, newError(fmt.Sprintf("cannot place %s into %s", display(res), dv.Type()), s.errMsg)
			}
			out = reflect.Append(out, rv)
		}
		return out.Interface(), nil
	}
	out := reflect.New(dv.Type()).Elem()
	for i := 0; i < dv.Len(); i++ {
		res, err := alt.Validate(ctx, dv.Index(i).Interface())
		if err != nil {
			return nil, err
		}
		rv, ok := toValue(res, elemType)
		if !ok {
			return nil, newError(fmt.Sprintf("cannot place %s into %s", display(res), dv.Type()), s.errMsg)
		}
		out.Index(i).Set(rv)
	}
	return out.Interface(), nil
}

// ---- helpers ----

// instanceOf is the runtime membership test behind the type flavor: interface
// satisfaction for interface types, type identity otherwise, with generic
// containers ([]any, map[K]any style) matching on kind alone.
func instanceOf(data any, t reflect.Type) bool {
	dt := reflect.TypeOf(data)
	if t.Kind() == reflect.Interface {
		if dt == nil {
			return t.NumMethod() == 0
		}
		return dt.Implements(t)
	}
	if dt == nil {
		return false
	}
	if dt == t {
		return true
	}
	switch t.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		if dt.Kind() == t.Kind() && t.Elem().Kind() == reflect.Interface && t.Elem().NumMethod() == 0 {
			return true
		}
	}
	return false
}

// equal is value equality with nil handled explicitly (DeepEqual reports two
// untyped nils as unequal).
func equal(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return reflect.DeepEqual(a, b)
}

// toValue adapts v for storage in a slot of type t, producing the typed zero
// value for nil in nilable slots.
func toValue(v any, t reflect.Type) (reflect.Value, bool) {
	if v == nil {
		switch t.Kind() {
		case reflect.Interface, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
			return reflect.Zero(t), true
		}
		return reflect.Value{}, false
	}
	rv := reflect.ValueOf(v)
	if rv.Type().AssignableTo(t) {
		return rv, true
	}
	return reflect.Value{}, false
}

// safeValidate shields the engine from panicking delegates.
func safeValidate(ctx context.Context, v Validator, data any) (res any, err error) {
	defer func() {
		if r := recover(); r != nil {
			res, err = nil, recoveredError(r)
		}
	}()
	return v.Validate(ctx, data)
}

// callPredicate invokes a predicate, mapping panics and unsupported
// signatures to plain errors so the dispatcher can synthesize a host failure.
// A returned *Error counts as a raised validation failure, not a verdict.
func callPredicate(fn, data any) (verdict bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			verdict, err = false, recoveredError(r)
		}
	}()
	switch f := fn.(type) {
	case func(any) bool:
		return f(data), nil
	case func(any) error:
		if e := f(data); e != nil {
			return false, e
		}
		return true, nil
	}
	fv := reflect.ValueOf(fn)
	ft := fv.Type()
	if ft.NumIn() != 1 || ft.IsVariadic() || ft.NumOut() < 1 || ft.Out(0).Kind() != reflect.Bool {
		return false, fmt.Errorf("unsupported predicate signature %s", ft)
	}
	av, ok := toValue(data, ft.In(0))
	if !ok {
		return false, fmt.Errorf("argument %s is not assignable to %s", display(data), ft.In(0))
	}
	return fv.Call([]reflect.Value{av})[0].Bool(), nil
}

// recoveredError converts a recovered panic value into an error, preserving
// a panicked *Error as a validation failure.
func recoveredError(r any) error {
	if se, ok := r.(*Error); ok {
		return se
	}
	if e, ok := r.(error); ok {
		return fmt.Errorf("panic: %w", e)
	}
	return fmt.Errorf("panic: %v", r)
}
