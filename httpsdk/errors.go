package httpsdk

import (
	"errors"
	"fmt"
)

// Kind classifies pipeline errors.
type Kind int

const (
	// KindConfig indicates invalid or missing configuration (e.g. an absent
	// credential, an unresolved URL template parameter).
	KindConfig Kind = iota
	// KindSerialization indicates a request body that could not be encoded.
	KindSerialization
	// KindDeserialization indicates a response body that could not be decoded.
	KindDeserialization
	// KindNetwork indicates a transport-level failure (connection refused,
	// timeout, TLS failure).
	KindNetwork
	// KindIllegalState indicates a contract violation, such as a response
	// expected to carry a body carrying none.
	KindIllegalState
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindSerialization:
		return "serialization"
	case KindDeserialization:
		return "deserialization"
	case KindNetwork:
		return "network"
	case KindIllegalState:
		return "illegal_state"
	default:
		return "unknown"
	}
}

// Error is the single error currency flowing through a pipeline. Every stage
// failure is an *Error; raw errors from capabilities are wrapped, never
// propagated bare and never discarded.
type Error struct {
	// Kind classifies the error.
	Kind Kind
	// Message describes the error.
	Message string
	// Err is the underlying cause, if any.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("httpsdk: %s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewConfigError creates a configuration/validation error.
func NewConfigError(msg string) *Error {
	return &Error{Kind: KindConfig, Message: msg}
}

// NewSerializationError creates a serialization error.
func NewSerializationError(err error) *Error {
	return &Error{Kind: KindSerialization, Message: err.Error(), Err: err}
}

// NewDeserializationError creates a deserialization error.
func NewDeserializationError(err error) *Error {
	return &Error{Kind: KindDeserialization, Message: err.Error(), Err: err}
}

// NewNetworkError creates a network/transport error.
func NewNetworkError(err error) *Error {
	return &Error{Kind: KindNetwork, Message: err.Error(), Err: err}
}

// NewIllegalStateError creates a contract-violation error.
func NewIllegalStateError(msg string) *Error {
	return &Error{Kind: KindIllegalState, Message: msg}
}

// coerce returns err unchanged when it already is (or wraps) an *Error;
// otherwise it wraps err under the given kind so the pipeline's error
// contract holds at every stage boundary.
func coerce(err error, kind Kind) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return &Error{Kind: kind, Message: err.Error(), Err: err}
}

// IsConfig checks if an error is a configuration error.
func IsConfig(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindConfig
}

// IsSerialization checks if an error is a serialization error.
func IsSerialization(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindSerialization
}

// IsDeserialization checks if an error is a deserialization error.
func IsDeserialization(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindDeserialization
}

// IsNetwork checks if an error is a network error.
func IsNetwork(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindNetwork
}

// IsIllegalState checks if an error is a contract-violation error.
func IsIllegalState(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindIllegalState
}
