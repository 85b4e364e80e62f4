package schema_test

import (
	"context"
	"strings"
	"testing"
	"time"

	schema "github.com/finalsatan/schema"
	"github.com/finalsatan/schema/codec"
)

func TestOr_FirstSuccessWins(t *testing.T) {
	ctx := context.Background()
	s := schema.Or(schema.Type[int](), schema.Type[string]())

	if v, err := s.Validate(ctx, 5); err != nil || v != 5 {
		t.Fatalf("Or(int,string)(5): v=%v err=%v", v, err)
	}
	if v, err := s.Validate(ctx, "x"); err != nil || v != "x" {
		t.Fatalf("Or(int,string)(\"x\"): v=%v err=%v", v, err)
	}
	if _, err := s.Validate(ctx, 5.0); err == nil {
		t.Fatalf("expected failure for float64")
	}
}

func TestOr_LastAttemptDiagnostics(t *testing.T) {
	ctx := context.Background()
	_, err := schema.Or(schema.Type[int](), schema.Type[string]()).Validate(ctx, 5.0)
	if err == nil {
		t.Fatalf("expected failure")
	}
	se, ok := schema.AsError(err)
	if !ok {
		t.Fatalf("expected *schema.Error, got %T", err)
	}
	if len(se.Autos) < 2 {
		t.Fatalf("expected synthetic message plus last attempt chain, got %v", se.Autos)
	}
	if !strings.Contains(se.Autos[0], "did not validate") {
		t.Fatalf("missing no-match prefix: %v", se.Autos[0])
	}
	// Only the last alternative (string) survives in the chain.
	if !strings.Contains(err.Error(), "string") {
		t.Fatalf("expected last attempt's diagnostics: %v", err)
	}
}

func TestOr_CustomOverride(t *testing.T) {
	ctx := context.Background()
	_, err := schema.Or(schema.Type[int](), schema.Type[string]()).WithError("want int or string").Validate(ctx, 5.0)
	if err == nil {
		t.Fatalf("expected failure")
	}
	if err.Error() != "want int or string" {
		t.Fatalf("override not rendered alone: %q", err.Error())
	}
}

func TestAnd_TransformPipeline(t *testing.T) {
	ctx := context.Background()
	s := schema.And(schema.Type[string](), schema.Use(codec.Atoi))

	v, err := s.Validate(ctx, "42")
	if err != nil {
		t.Fatalf("pipeline err: %v", err)
	}
	if v != 42 {
		t.Fatalf("expected 42, got %v (%T)", v, v)
	}

	if _, err := s.Validate(ctx, "x"); err == nil {
		t.Fatalf("expected transform failure for non-numeric text")
	}
	if _, err := s.Validate(ctx, 42); err == nil {
		t.Fatalf("expected first step to reject non-string")
	}
}

func TestAnd_GateThenCheck(t *testing.T) {
	ctx := context.Background()
	small := func(v any) bool {
		n, ok := v.(int)
		return ok && n < 10
	}
	s := schema.And(schema.Type[int](), small)

	if v, err := s.Validate(ctx, 7); err != nil || v != 7 {
		t.Fatalf("And(int,small)(7): v=%v err=%v", v, err)
	}
	if _, err := s.Validate(ctx, 12); err == nil {
		t.Fatalf("expected failure for 12")
	}
}

func TestUse_WrapsFailures(t *testing.T) {
	ctx := context.Background()

	_, err := schema.Use(codec.Atoi).WithError("not a number").Validate(ctx, "x")
	if err == nil {
		t.Fatalf("expected failure")
	}
	if err.Error() != "not a number" {
		t.Fatalf("override not rendered alone: %q", err.Error())
	}

	// Panics inside the transform surface as host failures.
	boom := func(v any) (any, error) { panic("transform broke") }
	_, err = schema.Use(boom).Validate(ctx, 1)
	if err == nil {
		t.Fatalf("expected host failure")
	}
	if !strings.Contains(err.Error(), "transform broke") {
		t.Fatalf("panic detail lost: %v", err)
	}
}

func TestUse_TimeRFC3339(t *testing.T) {
	ctx := context.Background()
	s := schema.And(schema.Type[string](), schema.Use(codec.TimeRFC3339))

	v, err := s.Validate(ctx, "2025-01-01T00:00:00Z")
	if err != nil {
		t.Fatalf("time pipeline err: %v", err)
	}
	got, ok := v.(time.Time)
	if !ok {
		t.Fatalf("expected time.Time, got %T", v)
	}
	if !got.Equal(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected time: %v", got)
	}
	if _, err := s.Validate(ctx, "yesterday"); err == nil {
		t.Fatalf("expected failure for non-RFC3339 text")
	}
}
