package headers

import (
	"context"

	"github.com/google/uuid"
	"github.com/sdkpipe/sdkpipe/httpsdk"
)

// Bearer returns a source producing an Authorization header with a fixed
// bearer token.
func Bearer(token string) httpsdk.HeaderSource {
	return Pair("Authorization", "Bearer "+token)
}

// BearerFunc returns a source that obtains the bearer token per call, for
// tokens that rotate or are fetched lazily. A token lookup failure is a
// config-kind error.
func BearerFunc(fn func(ctx context.Context) (string, error)) httpsdk.HeaderSource {
	return httpsdk.HeaderSourceFunc(func(ctx context.Context) (httpsdk.Headers, error) {
		token, err := fn(ctx)
		if err != nil {
			return httpsdk.Headers{}, err
		}
		return httpsdk.Headers{}.Add("Authorization", "Bearer "+token), nil
	})
}

// APIKey returns a source producing an API key header. An empty header name
// defaults to "X-API-Key".
func APIKey(name, key string) httpsdk.HeaderSource {
	if name == "" {
		name = "X-API-Key"
	}
	return Pair(name, key)
}

// RequestID returns a source producing a fresh UUID per call under the given
// header name ("X-Request-Id" when empty). Unlike most sources this one is
// deliberately non-deterministic.
func RequestID(name string) httpsdk.HeaderSource {
	if name == "" {
		name = "X-Request-Id"
	}
	return httpsdk.HeaderSourceFunc(func(context.Context) (httpsdk.Headers, error) {
		return httpsdk.Headers{}.Add(name, uuid.NewString()), nil
	})
}
