package activesync

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/transport_mock.go -package=mock

// Transport performs the HTTP exchanges of a Client.
type Transport interface {
	// Send issues a framed command and returns the response with its body
	// decoded. It fails with ErrTransport when the exchange cannot be
	// completed or the server answers non-2xx without a usable body, and
	// with ErrDecode when the body cannot be decoded. The response is
	// returned alongside ErrDecode so that callers can inspect the raw
	// bytes.
	Send(ctx context.Context, req *RawRequest) (*RawResponse, error)

	// Options issues an HTTP OPTIONS request to the ActiveSync endpoint.
	// The response has headers only.
	Options(ctx context.Context) (*RawResponse, error)

	// Autodiscover posts an XML document to the autodiscover endpoint. The
	// body is always sent as text, never WBXML.
	Autodiscover(ctx context.Context, body, contentType string) (*RawResponse, error)
}
