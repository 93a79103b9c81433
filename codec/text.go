package codec

import (
	"fmt"

	"github.com/sdkpipe/sdkpipe/httpsdk"
)

// Text handles plain-text payloads: strings, byte slices, and values
// implementing fmt.Stringer.
type Text struct{}

// Marshal implements httpsdk.Marshaller.
func (Text) Marshal(v any) (httpsdk.Raw, error) {
	switch t := v.(type) {
	case string:
		return httpsdk.Raw(t), nil
	case []byte:
		return httpsdk.Raw(t), nil
	case httpsdk.Raw:
		return t, nil
	case fmt.Stringer:
		return httpsdk.Raw(t.String()), nil
	default:
		return nil, fmt.Errorf("codec/text: cannot encode %T", v)
	}
}

// ContentType implements httpsdk.Marshaller.
func (Text) ContentType() string { return "text/plain; charset=utf-8" }

// Unmarshal implements httpsdk.Unmarshaller. The target must be *string or
// *[]byte.
func (Text) Unmarshal(data httpsdk.Raw, v any) error {
	switch t := v.(type) {
	case *string:
		*t = string(data)
		return nil
	case *[]byte:
		*t = append((*t)[:0], data...)
		return nil
	case *httpsdk.Raw:
		*t = append((*t)[:0], data...)
		return nil
	default:
		return fmt.Errorf("codec/text: cannot decode into %T", v)
	}
}
