package httpsdk

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// Method is the HTTP request verb.
type Method string

const (
	MethodGet     Method = "GET"
	MethodPost    Method = "POST"
	MethodPut     Method = "PUT"
	MethodPatch   Method = "PATCH"
	MethodDelete  Method = "DELETE"
	MethodHead    Method = "HEAD"
	MethodOptions Method = "OPTIONS"
)

var placeholderRe = regexp.MustCompile(`\{([^{}]+)\}`)

// URL is a target address: a literal string or a template with {name}
// placeholders. URL values are immutable; WithParam returns a new value.
type URL struct {
	raw    string
	params map[string]string
}

// URLOf creates a URL from a literal string.
func URLOf(raw string) URL {
	return URL{raw: raw}
}

// Template creates a URL from a template string such as
// "https://api.example.com/users/{id}". Bind placeholders with WithParam.
func Template(raw string) URL {
	return URL{raw: raw}
}

// WithParam returns a copy of the URL with a placeholder value bound.
func (u URL) WithParam(name, value string) URL {
	params := make(map[string]string, len(u.params)+1)
	for k, v := range u.params {
		params[k] = v
	}
	params[name] = value
	return URL{raw: u.raw, params: params}
}

// Resolve expands all placeholders and returns the final address. An
// unresolved placeholder is a configuration error.
func (u URL) Resolve() (string, error) {
	if !strings.Contains(u.raw, "{") {
		return u.raw, nil
	}
	var missing []string
	out := placeholderRe.ReplaceAllStringFunc(u.raw, func(m string) string {
		name := m[1 : len(m)-1]
		if v, ok := u.params[name]; ok {
			return v
		}
		missing = append(missing, name)
		return m
	})
	if len(missing) > 0 {
		return "", NewConfigError(fmt.Sprintf("url template %q: unbound parameter(s): %s", u.raw, strings.Join(missing, ", ")))
	}
	return out, nil
}

// String returns the resolved address, or the raw template when placeholders
// remain unbound. Use Resolve when the error matters.
func (u URL) String() string {
	s, err := u.Resolve()
	if err != nil {
		return u.raw
	}
	return s
}

// Request is an outbound HTTP request with a typed optional body. Requests
// are immutable: every With* method returns a new value and never touches
// the receiver.
type Request[B any] struct {
	// Method is the HTTP verb.
	Method Method
	// URL is the target address.
	URL URL
	// Headers are the request headers, in insertion order.
	Headers Headers
	// Body is the typed payload; nil means no body.
	Body *B
}

// NewRequest creates a request with no headers and no body.
func NewRequest[B any](method Method, url URL) Request[B] {
	return Request[B]{Method: method, URL: url}
}

// WithHeader returns a copy of the request with one header value added.
// Existing values for the same name are kept; the new value supplements them.
func (r Request[B]) WithHeader(name, value string) Request[B] {
	r.Headers = r.Headers.Add(name, value)
	return r
}

// WithHeaders returns a copy of the request with all given headers merged in.
// Upstream headers are neither removed nor reordered.
func (r Request[B]) WithHeaders(h Headers) Request[B] {
	r.Headers = r.Headers.Merge(h)
	return r
}

// WithBody returns a copy of the request carrying the given body.
func (r Request[B]) WithBody(body B) Request[B] {
	r.Body = &body
	return r
}

// sortedKeys returns map keys in deterministic order.
func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
