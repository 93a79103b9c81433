package headers

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/sdkpipe/sdkpipe/httpsdk"
)

// FromEnv returns a source that reads header values from environment
// variables at call time. The mapping is header name → variable name. A
// missing or empty variable is a config-kind error: a required credential
// that is absent must fail loudly, never silently no-op.
func FromEnv(mapping map[string]string) httpsdk.HeaderSource {
	return httpsdk.HeaderSourceFunc(func(context.Context) (httpsdk.Headers, error) {
		var h httpsdk.Headers
		for _, name := range sortedKeys(mapping) {
			envVar := mapping[name]
			value := os.Getenv(envVar)
			if value == "" {
				return httpsdk.Headers{}, httpsdk.NewConfigError(fmt.Sprintf("header %q: environment variable %s is not set", name, envVar))
			}
			h = h.Add(name, value)
		}
		return h, nil
	})
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
