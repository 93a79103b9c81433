package httpsdk

// Raw is a transport-format payload prior to structural decoding. It is
// opaque to the transport and header stages.
type Raw []byte

// Result is the outcome of one request/response cycle with a typed optional
// body. Like Request, a Result is never mutated after creation.
type Result[B any] struct {
	// Request is the wire-level request that produced this result, as it was
	// handed to the transport (headers merged, body marshalled).
	Request Request[Raw]
	// Status is the HTTP status code.
	Status int
	// Headers are the response headers.
	Headers Headers
	// Body is the typed payload; nil means the response carried no body.
	Body *B
}

// IsSuccess returns true if the status code is 2xx.
func (r Result[B]) IsSuccess() bool {
	return r.Status >= 200 && r.Status < 300
}

// IsError returns true if the status code is 4xx or 5xx.
func (r Result[B]) IsError() bool {
	return r.Status >= 400
}
