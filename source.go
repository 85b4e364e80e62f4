package schema

import (
	"context"

	gojson "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/finalsatan/schema/i18n"
)

// Source abstracts over serialized inputs the engine can validate. Decoding
// is in-memory; the engine itself stays a pure value-to-value mapping.
type Source interface {
	Decode() (any, error)
}

// JSONBytes wraps a JSON document. Objects decode to map[string]any and
// numbers to float64.
func JSONBytes(b []byte) Source { return jsonSource{data: b} }

type jsonSource struct{ data []byte }

func (s jsonSource) Decode() (any, error) {
	var v any
	if err := gojson.Unmarshal(s.data, &v); err != nil {
		return nil, err
	}
	return v, nil
}

// YAMLBytes wraps a YAML document. Mappings decode to map[string]any and
// integers to int.
func YAMLBytes(b []byte) Source { return yamlSource{data: b} }

type yamlSource struct{ data []byte }

func (s yamlSource) Decode() (any, error) {
	var v any
	if err := yaml.Unmarshal(s.data, &v); err != nil {
		return nil, err
	}
	return v, nil
}

// ValidateFrom decodes src and validates the result with v. Decode failures
// surface on the error chain as host failures.
func ValidateFrom(ctx context.Context, v Validator, src Source) (any, error) {
	if v == nil {
		return nil, newError("nil validator", "")
	}
	data, err := src.Decode()
	if err != nil {
		return nil, newError(i18n.T(CodeHostFailure, map[string]string{
			"target": "Decode",
			"data":   "",
			"cause":  err.Error(),
		}), "")
	}
	return v.Validate(ctx, data)
}
