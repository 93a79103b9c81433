// Package util holds small generic helpers used across the SDK, chiefly
// around optional values: request and result bodies are pointers, and Ptr
// and Deref keep that ergonomic at call sites.
package util
