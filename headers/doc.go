// Package headers provides httpsdk.HeaderSource implementations for common
// SDK needs: fixed headers, environment-backed credentials, bearer tokens,
// API keys, per-call request IDs, and freshly signed JWTs. Combine sources
// with Join; a failing source always surfaces a config-kind error rather
// than silently producing nothing.
package headers
