package codec

import (
	"fmt"
	"time"
)

// TimeRFC3339 converts an RFC3339 string to time.Time.
func TimeRFC3339(v any) (any, error) {
	s, ok := v.(string)
	if !ok {
		return nil, fmt.Errorf("codec: TimeRFC3339 expects a string, got %T", v)
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, err
	}
	return t, nil
}
