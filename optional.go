package schema

import (
	"context"
	"fmt"
)

// OptionalSchema marks a mapping key as not required for coverage. Used
// standalone it behaves exactly like its wrapped description. With a default
// it also supplies a (key, value) insertion applied after the coverage
// checks of the surrounding mapping pass.
type OptionalSchema struct {
	inner      Schema
	key        any
	def        any
	hasDefault bool
}

// Optional wraps a description as an optional mapping key.
func Optional(desc any) *OptionalSchema {
	return &OptionalSchema{inner: Schema{desc: desc, allowWrongKeys: true}}
}

// WithError overrides auto-generated messages under the wrapped description.
func (o *OptionalSchema) WithError(msg string) *OptionalSchema {
	o.inner.errMsg = msg
	return o
}

// DisallowWrongKeys propagates the strict wrong-key policy to the wrapped
// description.
func (o *OptionalSchema) DisallowWrongKeys() *OptionalSchema {
	o.inner.allowWrongKeys = false
	return o
}

// Default declares the value inserted under the wrapped key when no input
// pair covers it. The wrapped description must be a plain literal so the
// insertion key is well defined; anything else panics at construction time.
func (o *OptionalSchema) Default(v any) *OptionalSchema {
	if flavorOf(o.inner.desc) != flavorComparable {
		panic(fmt.Sprintf("schema: Optional default needs a plain literal key, %s is too complex", display(o.inner.desc)))
	}
	o.key = o.inner.desc
	o.def = v
	o.hasDefault = true
	return o
}

func (o *OptionalSchema) String() string { return "Optional(" + display(o.inner.desc) + ")" }

func (o *OptionalSchema) Validate(ctx context.Context, data any) (any, error) {
	return o.inner.Validate(ctx, data)
}
