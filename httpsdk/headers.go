package httpsdk

import "net/textproto"

// Headers is an ordered, case-insensitive multi-value header collection.
// Names keep the order in which they were first added; values for one name
// keep the order in which they were added. Headers values are immutable:
// Add, Set, and Merge return new collections.
type Headers struct {
	names  []string
	values map[string][]string
}

// HeadersFrom builds a Headers collection from a map. Map iteration order is
// not stable, so names are added in sorted order for determinism.
func HeadersFrom(m map[string]string) Headers {
	var h Headers
	for _, k := range sortedKeys(m) {
		h = h.Add(k, m[k])
	}
	return h
}

func (h Headers) clone() Headers {
	out := Headers{
		names:  make([]string, len(h.names)),
		values: make(map[string][]string, len(h.values)),
	}
	copy(out.names, h.names)
	for k, vs := range h.values {
		out.values[k] = append([]string(nil), vs...)
	}
	return out
}

// Add returns a copy with value appended to the values of name. Existing
// values for the same name are kept; later-added values supplement them.
func (h Headers) Add(name, value string) Headers {
	key := textproto.CanonicalMIMEHeaderKey(name)
	out := h.clone()
	if _, ok := out.values[key]; !ok {
		out.names = append(out.names, key)
	}
	out.values[key] = append(out.values[key], value)
	return out
}

// Set returns a copy with the values of name replaced by value. This is the
// explicit override; stages that merge headers use Add semantics.
func (h Headers) Set(name, value string) Headers {
	key := textproto.CanonicalMIMEHeaderKey(name)
	out := h.clone()
	if _, ok := out.values[key]; !ok {
		out.names = append(out.names, key)
	}
	out.values[key] = []string{value}
	return out
}

// Merge returns a copy with all of other's values added, preserving both
// collections' ordering. Values for names present in both accumulate.
func (h Headers) Merge(other Headers) Headers {
	out := h.clone()
	for _, name := range other.names {
		for _, v := range other.values[name] {
			if _, ok := out.values[name]; !ok {
				out.names = append(out.names, name)
			}
			out.values[name] = append(out.values[name], v)
		}
	}
	return out
}

// Get returns the first value for name, or "" when absent.
func (h Headers) Get(name string) string {
	vs := h.values[textproto.CanonicalMIMEHeaderKey(name)]
	if len(vs) == 0 {
		return ""
	}
	return vs[0]
}

// Values returns all values for name in insertion order.
func (h Headers) Values(name string) []string {
	vs := h.values[textproto.CanonicalMIMEHeaderKey(name)]
	return append([]string(nil), vs...)
}

// Has reports whether name has at least one value.
func (h Headers) Has(name string) bool {
	return len(h.values[textproto.CanonicalMIMEHeaderKey(name)]) > 0
}

// Names returns the header names in insertion order.
func (h Headers) Names() []string {
	return append([]string(nil), h.names...)
}

// Len returns the number of distinct header names.
func (h Headers) Len() int {
	return len(h.names)
}
