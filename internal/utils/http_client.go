package utils

import (
	"net"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with mirror-specific defaults.
//
// Example usage:
//
//	client := utils.NewHTTPClient(30 * time.Second)
//	resp, err := client.R().Post("https://api.dropboxapi.com/2/files/list_folder")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an HTTPClient whose transport gives up when
// connecting, the TLS handshake or waiting for response headers takes longer
// than timeout. Reading the body is not bounded, so a download can stream for
// as long as its context allows. A zero or negative timeout leaves resty's
// default transport in place.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient(timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetHeader("User-Agent", "remote-mirror")
	if timeout > 0 {
		client.SetTransport(NewHeaderTimeoutTransport(timeout))
	}
	return &HTTPClient{Client: client}
}

// NewHeaderTimeoutTransport clones http.DefaultTransport and bounds every
// phase up to the response headers by timeout.
func NewHeaderTimeoutTransport(timeout time.Duration) *http.Transport {
	tr := http.DefaultTransport.(*http.Transport).Clone()
	dialer := &net.Dialer{Timeout: timeout, KeepAlive: 30 * time.Second}
	tr.DialContext = dialer.DialContext
	tr.TLSHandshakeTimeout = timeout
	tr.ResponseHeaderTimeout = timeout
	return tr
}
