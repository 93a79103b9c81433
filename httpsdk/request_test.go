package httpsdk

import (
	"strings"
	"testing"
)

func TestURLLiteral(t *testing.T) {
	u := URLOf("https://api.example.com/status")
	got, err := u.Resolve()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "https://api.example.com/status" {
		t.Errorf("Resolve: got %q", got)
	}
}

func TestURLTemplate(t *testing.T) {
	u := Template("https://api.example.com/users/{id}/posts/{post}").
		WithParam("id", "42").
		WithParam("post", "7")

	got, err := u.Resolve()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "https://api.example.com/users/42/posts/7" {
		t.Errorf("Resolve: got %q", got)
	}
}

func TestURLTemplateUnbound(t *testing.T) {
	u := Template("https://api.example.com/users/{id}")
	_, err := u.Resolve()
	if err == nil {
		t.Fatal("expected error for unbound parameter")
	}
	if !IsConfig(err) {
		t.Errorf("expected config error, got %v", err)
	}
	if !strings.Contains(err.Error(), "id") {
		t.Errorf("error should name the missing parameter: %v", err)
	}
}

func TestURLWithParamImmutable(t *testing.T) {
	base := Template("https://api.example.com/{a}").WithParam("a", "1")
	_ = base.WithParam("a", "2")

	got, _ := base.Resolve()
	if got != "https://api.example.com/1" {
		t.Errorf("base URL mutated: %q", got)
	}
}

func TestRequestWithBody(t *testing.T) {
	type payload struct{ Name string }

	req := NewRequest[payload](MethodPost, URLOf("https://api.example.com"))
	if req.Body != nil {
		t.Fatal("new request should have no body")
	}

	withBody := req.WithBody(payload{Name: "alice"})
	if withBody.Body == nil || withBody.Body.Name != "alice" {
		t.Errorf("WithBody: got %+v", withBody.Body)
	}
	if req.Body != nil {
		t.Error("original request mutated by WithBody")
	}
}

func TestRequestWithHeaderImmutable(t *testing.T) {
	req := NewRequest[Raw](MethodGet, URLOf("https://api.example.com"))
	withHeader := req.WithHeader("x-a", "1")

	if req.Headers.Has("x-a") {
		t.Error("original request mutated by WithHeader")
	}
	if withHeader.Headers.Get("x-a") != "1" {
		t.Error("header not added")
	}
}
