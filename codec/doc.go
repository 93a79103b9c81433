// Package codec provides marshaller and unmarshaller capabilities for
// common wire formats: JSON, plain text, and URL-encoded forms. Every codec
// is a stateless value implementing both httpsdk.Marshaller and
// httpsdk.Unmarshaller, so one instance can serve both directions of a
// pipeline and be shared across concurrent invocations.
package codec
