package httpsdk

import "github.com/sdkpipe/sdkpipe/pipe"

// Exchange composes the response-type-agnostic prefix of a pipeline:
// header injection, body marshalling, and transport. The returned stage is
// stateless and safely shareable across many operations and concurrent
// invocations; build it once per client and attach decoders per operation.
func Exchange[B any](src HeaderSource, m Marshaller, t Transport) pipe.Stage[Request[B], Result[Raw]] {
	return pipe.Join3(WithHeaders[B](src), MarshalBody[B](m), Send(t))
}

// Returning attaches a typed decoder to a prefix at the point where the
// response type becomes statically known. The response body is optional; use
// ReturningRequired for operations whose response must carry one.
func Returning[B, T any](prefix pipe.Stage[Request[B], Result[Raw]], u Unmarshaller) pipe.Stage[Request[B], Result[T]] {
	return pipe.Join(prefix, DecodeBody[T](u))
}

// ReturningRequired is Returning with a mandatory response body: an absent
// or empty body fails with an illegal-state error.
func ReturningRequired[B, T any](prefix pipe.Stage[Request[B], Result[Raw]], u Unmarshaller) pipe.Stage[Request[B], Result[T]] {
	return pipe.Join(prefix, DecodeRequiredBody[T](u))
}
