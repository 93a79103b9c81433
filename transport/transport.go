package transport

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	"golang.org/x/net/http2"

	"github.com/sdkpipe/sdkpipe/httpsdk"
	"github.com/sdkpipe/sdkpipe/logger"
)

// Client sends wire-level requests over net/http. It implements
// httpsdk.Transport and is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	config     Config
	log        *logger.Logger
}

var _ httpsdk.Transport = (*Client)(nil)

// New creates a transport client with the given configuration. A nil log
// disables logging.
func New(cfg Config, log *logger.Logger) (*Client, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, httpsdk.NewConfigError(err.Error())
	}
	if log == nil {
		log = logger.Nop()
	}

	tr := http.DefaultTransport.(*http.Transport).Clone()
	if cfg.MaxIdleConns > 0 {
		tr.MaxIdleConns = cfg.MaxIdleConns
	}

	if cfg.TLS != nil {
		tlsCfg, err := cfg.TLS.Build()
		if err != nil {
			return nil, httpsdk.NewConfigError(err.Error())
		}
		if tlsCfg != nil {
			tr.TLSClientConfig = tlsCfg
		}
	}

	if cfg.EnableHTTP2 {
		if err := http2.ConfigureTransport(tr); err != nil {
			return nil, httpsdk.NewConfigError(fmt.Sprintf("configure http2: %v", err))
		}
	}

	return &Client{
		httpClient: &http.Client{
			Transport: tr,
			Timeout:   cfg.Timeout,
		},
		config: cfg,
		log:    log.WithComponent("transport"),
	}, nil
}

// Send executes a single request/response cycle. Non-2xx statuses are not
// errors here; the result carries the status for downstream stages to judge.
func (c *Client) Send(ctx context.Context, req httpsdk.Request[httpsdk.Raw]) (httpsdk.Result[httpsdk.Raw], error) {
	var zero httpsdk.Result[httpsdk.Raw]

	httpReq, err := c.buildRequest(ctx, req)
	if err != nil {
		return zero, err
	}

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.log.Debug("request failed", logger.ErrorFields("send", err))
		if ctx.Err() != nil {
			return zero, httpsdk.NewNetworkError(fmt.Errorf("request canceled: %w", err))
		}
		return zero, httpsdk.NewNetworkError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return zero, httpsdk.NewNetworkError(fmt.Errorf("read response body: %w", err))
	}

	c.log.Debug("request completed", map[string]interface{}{
		logger.FieldMethod:   string(req.Method),
		logger.FieldURL:      httpReq.URL.String(),
		logger.FieldStatus:   resp.StatusCode,
		logger.FieldDuration: time.Since(start).Milliseconds(),
	})

	result := httpsdk.Result[httpsdk.Raw]{
		Request: req,
		Status:  resp.StatusCode,
		Headers: fromHTTPHeaders(resp.Header),
	}
	if len(body) > 0 {
		raw := httpsdk.Raw(body)
		result.Body = &raw
	}
	return result, nil
}

// Unwrap returns the underlying *http.Client for advanced use cases.
func (c *Client) Unwrap() *http.Client {
	return c.httpClient
}

func (c *Client) buildRequest(ctx context.Context, req httpsdk.Request[httpsdk.Raw]) (*http.Request, error) {
	resolved, err := req.URL.Resolve()
	if err != nil {
		return nil, err
	}

	url := resolved
	if c.config.BaseURL != "" && !isAbsolute(resolved) {
		url = strings.TrimRight(c.config.BaseURL, "/") + "/" + strings.TrimLeft(resolved, "/")
	}

	var body io.Reader
	if req.Body != nil {
		body = bytes.NewReader(*req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, string(req.Method), url, body)
	if err != nil {
		return nil, httpsdk.NewConfigError(fmt.Sprintf("create request: %v", err))
	}

	for _, name := range req.Headers.Names() {
		for _, v := range req.Headers.Values(name) {
			httpReq.Header.Add(name, v)
		}
	}
	if c.config.UserAgent != "" && !req.Headers.Has("User-Agent") {
		httpReq.Header.Set("User-Agent", c.config.UserAgent)
	}

	return httpReq, nil
}

func isAbsolute(url string) bool {
	return strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://")
}

func fromHTTPHeaders(h http.Header) httpsdk.Headers {
	names := make([]string, 0, len(h))
	for name := range h {
		names = append(names, name)
	}
	sort.Strings(names)

	out := httpsdk.Headers{}
	for _, name := range names {
		for _, v := range h[name] {
			out = out.Add(name, v)
		}
	}
	return out
}
