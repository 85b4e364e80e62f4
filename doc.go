// Package schema provides:
//
//   - Declarative structural validation of arbitrary values against schema
//     descriptions built from literals, reflect.Type markers, predicates,
//     nested containers, keyed mappings, and combinators (And/Or/Use/Optional)
//   - A chainable error model via *Error (auto/custom diagnostic chains plus
//     missing/invalid/wrong key detail, deduplicated rendering)
//   - A Source boundary (JSONBytes/YAMLBytes + ValidateFrom) for validating
//     serialized payloads without hand-wiring a decoder
//
// Design policy:
//   - Keep only public APIs in the root package; put the message catalog under
//     i18n/ and ready-made Use transforms under codec/.
//   - Schema nodes are immutable after construction; a single node is safe for
//     unlimited concurrent Validate calls.
//   - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	s := schema.New(map[any]any{
//		"name": schema.Type[string](),
//		schema.Optional("count").Default(0): schema.Type[int](),
//	})
//	v, err := s.Validate(ctx, input)
//	v, err = schema.ValidateFrom(ctx, s, schema.JSONBytes(data))
//
// JSON sources decode numbers to float64, so schemas aimed at JSON payloads
// should use float64 literals and schema.Type[float64]().
package schema
