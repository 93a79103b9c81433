package codec

import (
	"fmt"
	"net/url"

	"github.com/sdkpipe/sdkpipe/httpsdk"
)

// Form handles application/x-www-form-urlencoded payloads built from
// url.Values or map[string]string.
type Form struct{}

// Marshal implements httpsdk.Marshaller.
func (Form) Marshal(v any) (httpsdk.Raw, error) {
	switch t := v.(type) {
	case url.Values:
		return httpsdk.Raw(t.Encode()), nil
	case map[string]string:
		values := make(url.Values, len(t))
		for k, val := range t {
			values.Set(k, val)
		}
		return httpsdk.Raw(values.Encode()), nil
	default:
		return nil, fmt.Errorf("codec/form: cannot encode %T", v)
	}
}

// ContentType implements httpsdk.Marshaller.
func (Form) ContentType() string { return "application/x-www-form-urlencoded" }

// Unmarshal implements httpsdk.Unmarshaller. The target must be *url.Values
// or *map[string]string; multi-value keys keep their first value in the map
// form.
func (Form) Unmarshal(data httpsdk.Raw, v any) error {
	values, err := url.ParseQuery(string(data))
	if err != nil {
		return fmt.Errorf("codec/form: %w", err)
	}
	switch t := v.(type) {
	case *url.Values:
		*t = values
		return nil
	case *map[string]string:
		m := make(map[string]string, len(values))
		for k := range values {
			m[k] = values.Get(k)
		}
		*t = m
		return nil
	default:
		return fmt.Errorf("codec/form: cannot decode into %T", v)
	}
}
