// Package http builds the outbound HTTP client used for the metadata provider.
package http

import (
	"net"
	"net/http"
	"time"
)

// NewHTTPClient creates a client for upstream API calls.
// http.DefaultClient has no timeout, so callers always pass one here.
// The transport honours HTTP_PROXY and keeps idle connections for reuse across
// the parallel browse and details fan-outs.
func NewHTTPClient(timeout time.Duration) *http.Client {
	t := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 16,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
	}
	return &http.Client{Timeout: timeout, Transport: t}
}
