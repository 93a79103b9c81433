// Package httpsdk provides the building blocks for HTTP API client SDKs:
// immutable request/result value types, a uniform error currency, small
// capability interfaces (transport, header source, marshaller,
// unmarshaller), and the pipeline stages built from them.
//
// Stages compose through the pipe package; each stage either forwards a
// transformed value or stops the pipeline with an *Error. Only the transport
// stage performs I/O — every other stage is a pure data transformation.
//
// # Assembling a pipeline
//
// The prefix (headers → marshal → transport) is independent of the response
// type and is built once per client; the typed decoder attaches per
// operation:
//
//	prefix := httpsdk.Exchange[CreateUserRequest](
//	    headers.Bearer(token),
//	    codec.JSON{},
//	    tr,
//	)
//	createUser := httpsdk.ReturningRequired[CreateUserRequest, User](prefix, codec.JSON{})
//
//	req := httpsdk.NewRequest[CreateUserRequest](httpsdk.MethodPost, httpsdk.URLOf(url)).
//	    WithBody(CreateUserRequest{Name: "Alice"})
//	res, err := createUser(ctx, req)
//
// The assembled pipeline's surface is a single function: request in,
// result or *Error out. Translating the error into anything else is the
// caller's explicit, final step — the pipeline never does it on their
// behalf, and no stage retries or recovers from another stage's error
// implicitly (see the resilience package for explicit recovery wrappers).
package httpsdk
