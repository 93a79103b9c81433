package httpsdk

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorString(t *testing.T) {
	err := NewConfigError("token missing")
	want := "httpsdk: config: token missing"
	if err.Error() != want {
		t.Errorf("got %q, want %q", err.Error(), want)
	}
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewNetworkError(cause)
	if !errors.Is(err, cause) {
		t.Error("expected cause to be reachable via errors.Is")
	}
}

func TestKindChecks(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		check func(error) bool
	}{
		{"config", NewConfigError("x"), IsConfig},
		{"serialization", NewSerializationError(errors.New("x")), IsSerialization},
		{"deserialization", NewDeserializationError(errors.New("x")), IsDeserialization},
		{"network", NewNetworkError(errors.New("x")), IsNetwork},
		{"illegal_state", NewIllegalStateError("x"), IsIllegalState},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if !tc.check(tc.err) {
				t.Errorf("check failed for %v", tc.err)
			}
			if tc.check(errors.New("plain")) {
				t.Error("check matched a plain error")
			}
		})
	}
}

func TestKindChecksThroughWrapping(t *testing.T) {
	err := fmt.Errorf("stage 2: %w", NewNetworkError(errors.New("timeout")))
	if !IsNetwork(err) {
		t.Error("expected IsNetwork to see through fmt.Errorf wrapping")
	}
}

func TestCoerceKeepsExisting(t *testing.T) {
	orig := NewSerializationError(errors.New("bad value"))
	got := coerce(orig, KindConfig)
	if got.Kind != KindSerialization {
		t.Errorf("coerce reclassified an existing *Error: %v", got.Kind)
	}
}

func TestCoerceWrapsPlain(t *testing.T) {
	plain := errors.New("oops")
	got := coerce(plain, KindConfig)
	if got.Kind != KindConfig || !errors.Is(got, plain) {
		t.Errorf("coerce: got kind=%v err=%v", got.Kind, got.Err)
	}
}

func TestKindString(t *testing.T) {
	if KindIllegalState.String() != "illegal_state" {
		t.Errorf("got %q", KindIllegalState.String())
	}
	if Kind(99).String() != "unknown" {
		t.Errorf("got %q", Kind(99).String())
	}
}
