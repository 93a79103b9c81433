// Package transport implements the wire-level send capability on net/http.
//
// A Client joins relative request URLs onto a configured base URL, copies
// headers preserving their order, and maps the response back into the SDK's
// result type. Response statuses are never turned into errors here; status
// policy belongs to downstream stages.
package transport
