package headers

import (
	"context"

	"github.com/sdkpipe/sdkpipe/httpsdk"
)

// Static returns a source producing the same fixed headers on every call.
func Static(m map[string]string) httpsdk.HeaderSource {
	h := httpsdk.HeadersFrom(m)
	return httpsdk.HeaderSourceFunc(func(context.Context) (httpsdk.Headers, error) {
		return h, nil
	})
}

// Pair returns a source producing a single fixed header.
func Pair(name, value string) httpsdk.HeaderSource {
	h := httpsdk.Headers{}.Add(name, value)
	return httpsdk.HeaderSourceFunc(func(context.Context) (httpsdk.Headers, error) {
		return h, nil
	})
}

// Join combines several sources into one. Sources are consulted in order and
// their headers merged with accumulate semantics; the first failing source
// stops the chain.
func Join(sources ...httpsdk.HeaderSource) httpsdk.HeaderSource {
	return httpsdk.HeaderSourceFunc(func(ctx context.Context) (httpsdk.Headers, error) {
		var out httpsdk.Headers
		for _, src := range sources {
			h, err := src.Headers(ctx)
			if err != nil {
				return httpsdk.Headers{}, err
			}
			out = out.Merge(h)
		}
		return out, nil
	})
}
