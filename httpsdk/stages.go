package httpsdk

import (
	"context"
	"fmt"

	"github.com/sdkpipe/sdkpipe/pipe"
)

// WithHeaders returns a stage that merges the source's headers into the
// request. Headers set by upstream stages are neither removed nor reordered;
// duplicate names accumulate as multi-value headers. A failing source stops
// the pipeline with a config-kind error — never a silent no-op.
func WithHeaders[B any](src HeaderSource) pipe.Stage[Request[B], Request[B]] {
	return func(ctx context.Context, req Request[B]) (Request[B], error) {
		h, err := src.Headers(ctx)
		if err != nil {
			var zero Request[B]
			return zero, coerce(err, KindConfig)
		}
		return req.WithHeaders(h), nil
	}
}

// MarshalBody returns a stage that encodes the request's typed body into its
// wire format. A request with no body passes through unchanged. When the
// marshaller declares a content type and none is set yet, one is added; an
// explicit upstream Content-Type wins.
func MarshalBody[B any](m Marshaller) pipe.Stage[Request[B], Request[Raw]] {
	return func(_ context.Context, req Request[B]) (Request[Raw], error) {
		out := Request[Raw]{Method: req.Method, URL: req.URL, Headers: req.Headers}
		if req.Body == nil {
			return out, nil
		}
		// A body that is already wire bytes passes through untouched.
		if raw, ok := any(*req.Body).(Raw); ok {
			out.Body = &raw
			return out, nil
		}
		raw, err := m.Marshal(*req.Body)
		if err != nil {
			var zero Request[Raw]
			return zero, coerce(err, KindSerialization)
		}
		out.Body = &raw
		if ct := m.ContentType(); ct != "" && !out.Headers.Has("Content-Type") {
			out.Headers = out.Headers.Set("Content-Type", ct)
		}
		return out, nil
	}
}

// Send returns a stage wrapping the transport capability. Network-level
// failures are translated into network-kind errors; a transport error is
// never propagated bare. The transport stage is the only stage performing
// I/O.
func Send(t Transport) pipe.Stage[Request[Raw], Result[Raw]] {
	return func(ctx context.Context, req Request[Raw]) (Result[Raw], error) {
		res, err := t.Send(ctx, req)
		if err != nil {
			var zero Result[Raw]
			return zero, coerce(err, KindNetwork)
		}
		return res, nil
	}
}

// DecodeBody returns a stage decoding the result's raw body into T. A result
// with no body is forwarded with an absent typed body — not an error.
// Malformed payloads produce a deserialization-kind error. Construct the
// stage once per target type and reuse it; it holds no per-call state.
func DecodeBody[T any](u Unmarshaller) pipe.Stage[Result[Raw], Result[T]] {
	return func(_ context.Context, res Result[Raw]) (Result[T], error) {
		out := Result[T]{Request: res.Request, Status: res.Status, Headers: res.Headers}
		if res.Body == nil || len(*res.Body) == 0 {
			return out, nil
		}
		var v T
		if err := u.Unmarshal(*res.Body, &v); err != nil {
			var zero Result[T]
			return zero, coerce(err, KindDeserialization)
		}
		out.Body = &v
		return out, nil
	}
}

// DecodeRequiredBody is DecodeBody for operations whose response must carry a
// body. An absent or empty body is a contract violation and produces an
// illegal-state error.
func DecodeRequiredBody[T any](u Unmarshaller) pipe.Stage[Result[Raw], Result[T]] {
	decode := DecodeBody[T](u)
	return func(ctx context.Context, res Result[Raw]) (Result[T], error) {
		if res.Body == nil || len(*res.Body) == 0 {
			var zero Result[T]
			return zero, NewIllegalStateError(fmt.Sprintf("response %d carried no body", res.Status))
		}
		return decode(ctx, res)
	}
}

// ExpectStatus returns a stage that forwards the result only when pred
// accepts its status code, and otherwise fails with an illegal-state error.
func ExpectStatus[B any](pred func(int) bool) pipe.Stage[Result[B], Result[B]] {
	return func(_ context.Context, res Result[B]) (Result[B], error) {
		if !pred(res.Status) {
			var zero Result[B]
			return zero, NewIllegalStateError(fmt.Sprintf("unexpected status %d", res.Status))
		}
		return res, nil
	}
}

// ExpectSuccess returns a stage that rejects non-2xx results.
func ExpectSuccess[B any]() pipe.Stage[Result[B], Result[B]] {
	return ExpectStatus[B](func(status int) bool {
		return status >= 200 && status < 300
	})
}
