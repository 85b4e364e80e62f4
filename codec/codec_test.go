package codec

import (
	"testing"
	"time"
)

func TestAtoi(t *testing.T) {
	v, err := Atoi("42")
	if err != nil || v != 42 {
		t.Fatalf("Atoi(\"42\"): v=%v err=%v", v, err)
	}
	if _, err := Atoi("x"); err == nil {
		t.Fatalf("expected error for non-numeric text")
	}
	if _, err := Atoi(42); err == nil {
		t.Fatalf("expected error for non-string input")
	}
}

func TestParseFloat(t *testing.T) {
	v, err := ParseFloat("2.5")
	if err != nil || v != 2.5 {
		t.Fatalf("ParseFloat(\"2.5\"): v=%v err=%v", v, err)
	}
	if _, err := ParseFloat("x"); err == nil {
		t.Fatalf("expected error for non-numeric text")
	}
}

func TestTimeRFC3339(t *testing.T) {
	v, err := TimeRFC3339("2025-01-01T00:00:00Z")
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	if !v.(time.Time).Equal(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected time: %v", v)
	}
	if _, err := TimeRFC3339("yesterday"); err == nil {
		t.Fatalf("expected error for non-RFC3339 text")
	}
}
