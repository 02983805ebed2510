// Package httpclient provides the HTTP transport layer for the OpenAPI
// clients: configurable timeouts, proxy, TLS, default headers, multipart
// bodies, and typed error classification.
//
// The client is a thin, synchronous wrapper over net/http. It resolves
// request paths against a base URL, merges headers in precedence order
// (client defaults, then request headers, then auth), and returns the
// complete response with its elapsed time. It performs no retries; retry
// policy belongs to the caller.
//
//	client, err := httpclient.New(httpclient.Config{
//	    BaseURL: "https://api.example.com",
//	    Timeout: 30 * time.Second,
//	})
//
//	resp, err := client.Do(ctx, httpclient.Request{
//	    Method: http.MethodGet,
//	    Path:   "/v1/status",
//	})
package httpclient
