package codec

import (
	"fmt"
	"strconv"
)

// Atoi converts a string to int, for use under schema.Use in pipelines like
// And(Type[string](), Use(codec.Atoi)).
func Atoi(v any) (any, error) {
	s, ok := v.(string)
	if !ok {
		return nil, fmt.Errorf("codec: Atoi expects a string, got %T", v)
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil, err
	}
	return n, nil
}

// ParseFloat converts a string to float64.
func ParseFloat(v any) (any, error) {
	s, ok := v.(string)
	if !ok {
		return nil, fmt.Errorf("codec: ParseFloat expects a string, got %T", v)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}
	return f, nil
}
