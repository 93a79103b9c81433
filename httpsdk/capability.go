package httpsdk

import "context"

// Transport sends a wire-level request and returns the raw result. It is the
// only capability permitted to perform I/O; implementations must honor
// context cancellation by aborting the underlying network call. A Transport
// reused across concurrent pipeline invocations must be stateless or
// internally synchronized.
type Transport interface {
	Send(ctx context.Context, req Request[Raw]) (Result[Raw], error)
}

// HeaderSource produces headers to merge into a request. Failures (a missing
// credential, invalid configuration) surface as config-kind errors.
type HeaderSource interface {
	Headers(ctx context.Context) (Headers, error)
}

// Marshaller encodes a typed request body into its wire format. ContentType
// returns the header value to accompany encoded bodies, or "" when the wire
// format does not require one.
type Marshaller interface {
	Marshal(v any) (Raw, error)
	ContentType() string
}

// Unmarshaller decodes a wire-format payload into the caller's target value.
// An Unmarshaller holds no per-call state and may be reused across many
// invocations.
type Unmarshaller interface {
	Unmarshal(data Raw, v any) error
}

// TransportFunc adapts a function to the Transport interface.
type TransportFunc func(ctx context.Context, req Request[Raw]) (Result[Raw], error)

// Send implements Transport.
func (f TransportFunc) Send(ctx context.Context, req Request[Raw]) (Result[Raw], error) {
	return f(ctx, req)
}

// HeaderSourceFunc adapts a function to the HeaderSource interface.
type HeaderSourceFunc func(ctx context.Context) (Headers, error)

// Headers implements HeaderSource.
func (f HeaderSourceFunc) Headers(ctx context.Context) (Headers, error) {
	return f(ctx)
}
