package utils

import (
	"crypto/tls"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().Get("https://example.com")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates and returns a new HTTPClient instance
// with a default-configured underlying resty.Client.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}

// HTTPClientOptions configure a client for one system under test.
type HTTPClientOptions struct {
	BaseURL            string
	Timeout            time.Duration
	UserAgent          string
	InsecureSkipVerify bool

	// Username and Password enable basic authentication when Username is
	// set. A non-empty Domain is prefixed as DOMAIN\user.
	Domain   string
	Username string
	Password string
}

// NewConfiguredHTTPClient returns an HTTPClient set up from opts.
func NewConfiguredHTTPClient(opts HTTPClientOptions) *HTTPClient {
	client := NewHTTPClient()
	client.SetBaseURL(opts.BaseURL)
	if opts.Timeout > 0 {
		client.SetTimeout(opts.Timeout)
	}
	if opts.UserAgent != "" {
		client.SetHeader("User-Agent", opts.UserAgent)
	}
	if opts.InsecureSkipVerify {
		client.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true}) //nolint:gosec // lab SUTs use self-signed certificates
	}
	if opts.Username != "" {
		user := opts.Username
		if opts.Domain != "" {
			user = opts.Domain + `\` + opts.Username
		}
		client.SetBasicAuth(user, opts.Password)
	}
	return client
}
