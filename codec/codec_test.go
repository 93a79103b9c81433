package codec

import (
	"net/url"
	"reflect"
	"testing"

	"github.com/sdkpipe/sdkpipe/httpsdk"
)

// Codecs serve both pipeline directions, so the interesting property is the
// round trip: marshal then unmarshal yields the original value.

func TestJSONRoundTrip(t *testing.T) {
	type user struct {
		Name  string   `json:"name"`
		Age   int      `json:"age"`
		Tags  []string `json:"tags,omitempty"`
		Email *string  `json:"email,omitempty"`
	}
	email := "a@example.com"

	tests := []struct {
		name string
		in   user
	}{
		{"full", user{Name: "alice", Age: 30, Tags: []string{"a", "b"}, Email: &email}},
		{"minimal", user{Name: "bob"}},
		{"zero", user{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			raw, err := JSON{}.Marshal(tc.in)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			var out user
			if err := (JSON{}).Unmarshal(raw, &out); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if !reflect.DeepEqual(out, tc.in) {
				t.Errorf("round trip: got %+v, want %+v", out, tc.in)
			}
		})
	}
}

func TestJSONIndent(t *testing.T) {
	raw, err := JSON{Indent: "  "}.Marshal(map[string]int{"a": 1})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := "{\n  \"a\": 1\n}"
	if string(raw) != want {
		t.Errorf("got %q, want %q", raw, want)
	}
}

func TestJSONMarshalUnencodable(t *testing.T) {
	_, err := JSON{}.Marshal(make(chan int))
	if err == nil {
		t.Fatal("expected error for unencodable value")
	}
}

func TestJSONContentType(t *testing.T) {
	if got := (JSON{}).ContentType(); got != "application/json" {
		t.Errorf("got %q", got)
	}
}

func TestTextRoundTrip(t *testing.T) {
	raw, err := Text{}.Marshal("hello")
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var out string
	if err := (Text{}).Unmarshal(raw, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out != "hello" {
		t.Errorf("got %q", out)
	}
}

func TestTextUnsupported(t *testing.T) {
	if _, err := (Text{}).Marshal(42); err == nil {
		t.Error("expected error encoding int")
	}
	var n int
	if err := (Text{}).Unmarshal(httpsdk.Raw("x"), &n); err == nil {
		t.Error("expected error decoding into *int")
	}
}

func TestFormRoundTrip(t *testing.T) {
	in := map[string]string{"grant_type": "client_credentials", "scope": "read write"}

	raw, err := Form{}.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var out map[string]string
	if err := (Form{}).Unmarshal(raw, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !reflect.DeepEqual(out, in) {
		t.Errorf("round trip: got %v, want %v", out, in)
	}
}

func TestFormValues(t *testing.T) {
	in := url.Values{"a": {"1", "2"}}

	raw, err := Form{}.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var out url.Values
	if err := (Form{}).Unmarshal(raw, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !reflect.DeepEqual(out, in) {
		t.Errorf("round trip: got %v, want %v", out, in)
	}
}
