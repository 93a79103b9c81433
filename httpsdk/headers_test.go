package httpsdk

import (
	"reflect"
	"testing"
)

func TestHeadersAdd(t *testing.T) {
	h := Headers{}.Add("x-a", "1").Add("x-b", "2")

	if got := h.Get("X-A"); got != "1" {
		t.Errorf("Get(X-A): got %q", got)
	}
	if got := h.Get("x-b"); got != "2" {
		t.Errorf("Get(x-b): got %q", got)
	}
	if got := h.Names(); !reflect.DeepEqual(got, []string{"X-A", "X-B"}) {
		t.Errorf("Names: got %v", got)
	}
}

func TestHeadersAddAccumulates(t *testing.T) {
	h := Headers{}.Add("x-a", "1").Add("x-a", "2")

	if got := h.Values("x-a"); !reflect.DeepEqual(got, []string{"1", "2"}) {
		t.Errorf("Values: got %v", got)
	}
	if h.Len() != 1 {
		t.Errorf("Len: got %d", h.Len())
	}
}

func TestHeadersSetOverrides(t *testing.T) {
	h := Headers{}.Add("x-a", "1").Add("x-a", "2").Set("x-a", "3")

	if got := h.Values("x-a"); !reflect.DeepEqual(got, []string{"3"}) {
		t.Errorf("Values after Set: got %v", got)
	}
}

func TestHeadersImmutable(t *testing.T) {
	base := Headers{}.Add("x-a", "1")
	_ = base.Add("x-b", "2")
	_ = base.Set("x-a", "changed")

	if base.Len() != 1 || base.Get("x-a") != "1" {
		t.Errorf("base mutated: names=%v x-a=%q", base.Names(), base.Get("x-a"))
	}
}

func TestHeadersMerge(t *testing.T) {
	a := Headers{}.Add("x-a", "1").Add("x-b", "2")
	b := Headers{}.Add("x-a", "3").Add("x-c", "4")

	merged := a.Merge(b)

	if got := merged.Values("x-a"); !reflect.DeepEqual(got, []string{"1", "3"}) {
		t.Errorf("x-a values: got %v", got)
	}
	if got := merged.Names(); !reflect.DeepEqual(got, []string{"X-A", "X-B", "X-C"}) {
		t.Errorf("merged order: got %v", got)
	}
}

func TestHeadersFrom(t *testing.T) {
	h := HeadersFrom(map[string]string{"x-b": "2", "x-a": "1"})

	// Sorted for determinism, since map iteration order is not stable.
	if got := h.Names(); !reflect.DeepEqual(got, []string{"X-A", "X-B"}) {
		t.Errorf("Names: got %v", got)
	}
}

func TestHeadersZeroValue(t *testing.T) {
	var h Headers
	if h.Has("anything") || h.Get("anything") != "" || h.Len() != 0 {
		t.Error("zero Headers should be empty and usable")
	}
}
