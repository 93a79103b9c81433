package codec

import (
	"encoding/json"

	"github.com/sdkpipe/sdkpipe/httpsdk"
)

// JSON marshals and unmarshals JSON payloads. The zero value is ready to use
// and safe for concurrent reuse.
type JSON struct {
	// Indent enables indented output when non-empty.
	Indent string
}

// Marshal implements httpsdk.Marshaller.
func (c JSON) Marshal(v any) (httpsdk.Raw, error) {
	if c.Indent != "" {
		data, err := json.MarshalIndent(v, "", c.Indent)
		return httpsdk.Raw(data), err
	}
	data, err := json.Marshal(v)
	return httpsdk.Raw(data), err
}

// ContentType implements httpsdk.Marshaller.
func (JSON) ContentType() string { return "application/json" }

// Unmarshal implements httpsdk.Unmarshaller.
func (JSON) Unmarshal(data httpsdk.Raw, v any) error {
	return json.Unmarshal(data, v)
}
